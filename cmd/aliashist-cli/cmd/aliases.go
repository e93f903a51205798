package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"aliashist/internal/adapters/filesystem"
	"aliashist/internal/application"
	"aliashist/internal/ports"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases <path>",
	Short: "List the recorded aliases of a vault file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := vault.Resolve(args[0])
		if file == nil {
			return fmt.Errorf("no such file: %s", args[0])
		}

		editor := filesystem.NewEditor(vault)
		var aliases []string
		err := editor.Read(file.Path, func(meta ports.Metadata) {
			aliases, _ = meta.StringList(application.AliasKey)
		})
		if err != nil {
			return err
		}

		if len(aliases) == 0 {
			fmt.Println("No aliases recorded.")
			return nil
		}
		for _, alias := range aliases {
			fmt.Println(alias)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
}
