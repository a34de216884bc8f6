package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <set>",
	Short: "Delete a set's answer history and reset its probabilities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete answer history without --yes")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		set := args[0]
		deleted, err := st.ResetSet(cmd.Context(), set)
		if err != nil {
			return fmt.Errorf("reset %s: %w", set, err)
		}
		fmt.Printf("deleted %d answers from %s\n", deleted, set)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting the answer history")
}
