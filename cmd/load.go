package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizdrill/internal/content"
)

var loadCmd = &cobra.Command{
	Use:   "load [dir]",
	Short: "Import question set files into the database",
	Long:  "Load parses every .yaml/.yml set file in the directory and imports the sets and questions it finds. Existing questions are left untouched.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
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

		models, parseErrs := content.LoadDir(dir)
		for _, perr := range parseErrs {
			fmt.Fprintln(os.Stderr, "skipping:", perr)
		}
		if len(models) == 0 {
			return fmt.Errorf("no set files found in %s", dir)
		}

		im := &content.Importer{Store: st}
		stats, err := im.ImportAll(cmd.Context(), models)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("imported %d sets, %d questions (%d already present)\n",
			stats.Sets, stats.Questions, stats.Skipped)
		return nil
	},
}
