package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List question sets",
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
		sets, err := st.AllSets(ctx)
		if err != nil {
			return fmt.Errorf("list sets: %w", err)
		}
		if len(sets) == 0 {
			fmt.Println("no sets loaded; run `quizdrill load <dir>` first")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tQUESTIONS\tMEAN PROB")
		for _, set := range sets {
			questions, err := st.QuestionsInSet(ctx, set.Name)
			if err != nil {
				return fmt.Errorf("questions in %s: %w", set.Name, err)
			}
			mean := 0.0
			for _, q := range questions {
				mean += q.Probability
			}
			if len(questions) > 0 {
				mean /= float64(len(questions))
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%.3f\n", set.Name, set.SetType, len(questions), mean)
		}
		return w.Flush()
	},
}
