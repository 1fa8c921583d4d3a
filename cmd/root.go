package cmd

import (
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riutiz/cardtable/internal/config"
	"github.com/riutiz/cardtable/internal/convert"
)

// appConfig is loaded before any command runs
var appConfig = config.Default()

// RootCmd converts a card library workbook when called without a subcommand
var RootCmd = &cobra.Command{
	Use:   "cardtable <input-spreadsheet> [output-json]",
	Short: "Convert the card library spreadsheet to JSON for the game client",
	Long: `Cardtable reads the "Card Library" worksheet of an xlsx workbook and writes
the cards as a JSON array for the game client.

Rows without a card name are skipped. Card ids are assigned from 1 in row order.
The output defaults to cards.json, or to default_output from the config file.

Examples:
  cardtable Card_Library_v15.xlsx
  cardtable Card_Library_v15.xlsx public/data/cards.json`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupEnvironment(verbose)

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || appConfig.NoColor {
			colorize.NoColor = true
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Usage is only useful for argument errors
		cmd.SilenceUsage = true

		output := appConfig.DefaultOutput
		if len(args) > 1 {
			output = args[1]
		}

		_, err := convert.Run(convert.Request{
			Input:   args[0],
			Output:  output,
			Options: normalizeOptions(cmd),
		}, cmd.OutOrStdout())
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().Bool("allow-missing-name", false,
		"Produce an empty card list instead of failing when the Card Name column is missing")

	RootCmd.AddCommand(validateCmd)
}

// normalizeOptions merges command flags over the config file
func normalizeOptions(cmd *cobra.Command) convert.Options {
	allow, _ := cmd.Flags().GetBool("allow-missing-name")
	return convert.Options{AllowMissingName: allow || appConfig.AllowMissingName}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
