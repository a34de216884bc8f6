package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <set>",
	Short: "Show per-question answer statistics for a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		set := args[0]
		if _, err := st.GetSet(ctx, set); err != nil {
			return fmt.Errorf("set %s: %w", set, err)
		}
		questions, err := st.QuestionsInSet(ctx, set)
		if err != nil {
			return fmt.Errorf("questions in %s: %w", set, err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "QUESTION\tPROB\tCORRECT\tWRONG\tLAST ANSWERED")
		for _, q := range questions {
			last := "never"
			if q.LastAnsweredAt.Valid {
				last = humanize.Time(q.LastAnsweredAt.Time)
			}
			fmt.Fprintf(w, "%s\t%.3f\t%d\t%d\t%s\n",
				q.Name, q.Probability, q.NumCorrect, q.NumIncorrect, last)
		}
		return w.Flush()
	},
}
