package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aliashist/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the vault's rename-tracking settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(vault.Root())
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
