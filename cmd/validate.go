package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riutiz/cardtable/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [spreadsheet]",
	Short: "Check a card library workbook without writing JSON",
	Long: `Validate checks that the workbook has a "Card Library" worksheet with the
expected columns, and warns about rows that will be skipped, duplicate card
names, and AD or Endurance values that will be kept as text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cmd.SilenceUsage = true
		out := cmd.OutOrStdout()

		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "%s Workbook '%s' is valid.\n", colorize.GreenString("✅"), path)
		} else {
			fmt.Fprintf(out, "%s Workbook '%s' has %d validation errors:\n",
				colorize.RedString("❌"), path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\n"+colorize.YellowString("Warnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
