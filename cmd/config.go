package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riutiz/cardtable/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardtable config file",
	Long:  `Commands for creating and editing the cardtable config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Init(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

// configSetOutputCmd represents the config set-output command
var configSetOutputCmd = &cobra.Command{
	Use:   "set-output [path]",
	Short: "Set the default JSON output path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetDefaultOutput(args[0]); err != nil {
			return fmt.Errorf("error setting default output: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default output set to: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetOutputCmd)
}
