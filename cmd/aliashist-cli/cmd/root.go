package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aliashist/internal/adapters/filesystem"
	"aliashist/internal/config"
)

var (
	vaultPath string
	vault     *filesystem.Vault
)

var rootCmd = &cobra.Command{
	Use:   "aliashist-cli",
	Short: "CLI for tracking prior file names as front-matter aliases",
	Long: `aliashist-cli watches a markdown vault for renames and records prior
names of a file (or its enclosing folder) into the file's front matter,
so old names survive as aliases for link redirection.

It provides commands to run the watch daemon, inspect a file's recorded
aliases, and show the vault's tracking settings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		vault = filesystem.NewVault(vaultPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}
