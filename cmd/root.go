package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/mkarkia/filesort/internal/alias"
	"github.com/mkarkia/filesort/internal/match"
	"github.com/mkarkia/filesort/internal/mover"
	"github.com/mkarkia/filesort/internal/namer"
	"github.com/spf13/cobra"
)

var (
	targetDir   string
	moveFiles   bool
	suggestions bool
)

var rootCmd = &cobra.Command{
	Use:   "filesort -t TARGET [flags] SOURCE...",
	Short: "Sort loose files into alias-named subdirectories",
	Long: `filesort derives aliases from the immediate subdirectories of the
target directory (a name like "Movies, Films" yields one alias per
comma segment), matches loose files in the source directories against
those aliases with whole-word matching, and moves each unambiguous
match into its destination with a collision-free name. Without -Y it
only reports what it would do.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSort(targetDir, args, moveFiles, suggestions)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(
		&targetDir,
		"target",
		"t",
		"",
		"target directory for sorted files",
	)
	rootCmd.MarkFlagRequired("target")

	rootCmd.Flags().BoolVarP(
		&moveFiles,
		"move",
		"Y",
		false,
		"move files; without this flag matches are only reported",
	)

	rootCmd.Flags().BoolVar(
		&suggestions,
		"suggest",
		false,
		"print the closest alias for files that matched nothing",
	)
}

func runSort(target string, sources []string, move, suggest bool) error {
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", target)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no directories given to be scanned")
	}
	for _, p := range sources {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			return fmt.Errorf("not a directory: %s", p)
		}
	}

	fmt.Printf("Using %s as sorting target directory\n", target)

	table, err := alias.Build(target)
	if err != nil {
		return fmt.Errorf("build alias table: %w", err)
	}
	if len(table) == 0 {
		return fmt.Errorf("target directory %s has no subdirectories", target)
	}

	fmt.Println("Finding matches...")

	result, err := match.Search(table, sources)
	if err != nil {
		return fmt.Errorf("search candidates: %w", err)
	}

	if len(result.Candidates) > 0 {
		fmt.Println("Matches:")

		// Sorted order keeps output stable and lets each Destination
		// call observe the moves made before it.
		for _, path := range sortedPaths(result.Candidates) {
			dest := table[result.Candidates[path]]
			newPath, err := namer.Destination(path, dest)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}

			if move {
				if err := mover.Move(path, newPath); err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
					continue
				}
				fmt.Printf("Moved %s to %s\n", path, newPath)
			} else {
				fmt.Printf("Not moving %s to %s\n", path, newPath)
			}
		}
	}

	if len(result.Ambiguous) > 0 {
		fmt.Println("Multiple matches (not moved):")
		for _, p := range result.Ambiguous {
			fmt.Println(p)
		}
	}

	if suggest {
		printSuggestions(table, result.Unmatched)
	}

	return nil
}

func printSuggestions(table alias.Table, unmatched []match.Unmatched) {
	keys := table.Keys()
	printed := false
	for _, u := range unmatched {
		key, ok := match.Suggest(u.Normalized, keys)
		if !ok {
			continue
		}
		if !printed {
			fmt.Println("No match (closest alias):")
			printed = true
		}
		fmt.Printf("%s ~ %s\n", u.Path, key)
	}
}

func sortedPaths(candidates map[string]string) []string {
	paths := make([]string, 0, len(candidates))
	for p := range candidates {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
