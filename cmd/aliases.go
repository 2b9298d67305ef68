package cmd

import (
	"fmt"

	"github.com/mkarkia/filesort/internal/alias"
	"github.com/spf13/cobra"
)

// aliasesCmd prints the derived alias table without scanning anything.
var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Print the alias table derived from the target directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAliases(targetDir)
	},
}

func init() {
	rootCmd.AddCommand(aliasesCmd)

	aliasesCmd.Flags().StringVarP(
		&targetDir,
		"target",
		"t",
		"",
		"target directory for sorted files",
	)
	aliasesCmd.MarkFlagRequired("target")
}

func runAliases(target string) error {
	table, err := alias.Build(target)
	if err != nil {
		return fmt.Errorf("build alias table: %w", err)
	}
	if len(table) == 0 {
		return fmt.Errorf("target directory %s has no subdirectories", target)
	}

	for _, key := range table.Keys() {
		fmt.Printf("%s -> %s\n", key, table[key])
	}
	return nil
}
