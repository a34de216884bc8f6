package quiz

import "math/rand"

// Rounds tracks the wrong-answer retry loop of a drill: every question
// is asked once per round, wrong answers requeue, and the drill ends
// after a clean round.
type Rounds struct {
	rng   *rand.Rand
	queue []int64
	pos   int
	wrong []int64
	round int
}

// NewRounds starts round 1 over a shuffled copy of ids.
func NewRounds(ids []int64, rng *rand.Rand) *Rounds {
	queue := make([]int64, len(ids))
	copy(queue, ids)
	r := &Rounds{rng: rng, queue: queue, round: 1}
	r.shuffle()
	return r
}

func (r *Rounds) shuffle() {
	r.rng.Shuffle(len(r.queue), func(i, j int) {
		r.queue[i], r.queue[j] = r.queue[j], r.queue[i]
	})
}

// Current returns the question up next, or false at end of round.
func (r *Rounds) Current() (int64, bool) {
	if r.pos >= len(r.queue) {
		return 0, false
	}
	return r.queue[r.pos], true
}

// Record logs the outcome for the current question and advances.
func (r *Rounds) Record(correct bool) {
	if r.pos >= len(r.queue) {
		return
	}
	if !correct {
		r.wrong = append(r.wrong, r.queue[r.pos])
	}
	r.pos++
}

// EndOfRound reports whether every question in the round was asked.
func (r *Rounds) EndOfRound() bool {
	return r.pos >= len(r.queue)
}

// Finished reports whether the drill is over: a completed round with no
// wrong answers.
func (r *Rounds) Finished() bool {
	return r.EndOfRound() && len(r.wrong) == 0
}

// NextRound requeues the wrong answers as a new shuffled round. Returns
// false when there is nothing left to retry.
func (r *Rounds) NextRound() bool {
	if len(r.wrong) == 0 {
		return false
	}
	r.queue, r.wrong = r.wrong, nil
	r.pos = 0
	r.round++
	r.shuffle()
	return true
}

// Round returns the 1-based round number.
func (r *Rounds) Round() int {
	return r.round
}

// Position returns the 1-based position within the round and its size.
func (r *Rounds) Position() (int, int) {
	pos := r.pos + 1
	if pos > len(r.queue) {
		pos = len(r.queue)
	}
	return pos, len(r.queue)
}

// RoundCorrect returns how many questions were answered correctly in
// the current round so far.
func (r *Rounds) RoundCorrect() int {
	return r.pos - len(r.wrong)
}

// WrongCount returns how many questions must be retried.
func (r *Rounds) WrongCount() int {
	return len(r.wrong)
}
