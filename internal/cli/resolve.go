package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/alternate/internal/engine"
)

var relativeOutput bool

var findCmd = &cobra.Command{
	Use:   "find <file>",
	Short: "Print the alternate of a file",
	Long: `Print the path of the existing alternate of a file.

Candidates are tried in the order their projections are declared, and the
first one that exists wins. When none exists the attempted paths are
reported and the command exits with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

var createCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Print the alternate of a file, creating it if missing",
	Long: `Print the path of the alternate of a file. When no alternate exists,
the first candidate is created (with parent directories), seeded from the
projection's template when it has one. Existing files are never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

var candidatesCmd = &cobra.Command{
	Use:   "candidates <file>",
	Short: "List every candidate alternate of a file",
	Long: `List every candidate alternate of a file in resolution order, showing
which exist and which one find would return.`,
	Args: cobra.ExactArgs(1),
	RunE: runCandidates,
}

func init() {
	for _, cmd := range []*cobra.Command{findCmd, createCmd} {
		cmd.Flags().BoolVarP(&relativeOutput, "relative", "r", false,
			"Print the path relative to the current directory")
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	result, err := eng.Resolve(cmd.Context(), &engine.ResolveRequest{CWD: cwd, File: args[0]})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), choosePath(result.Path, result.RelPath))
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	result, err := eng.ResolveOrCreate(cmd.Context(), &engine.CreateRequest{CWD: cwd, File: args[0]})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}
	if result.Created {
		PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Created %s", result.RelPath))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), choosePath(result.Path, result.RelPath))
	return nil
}

func runCandidates(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	result, err := eng.Candidates(cmd.Context(), &engine.CandidatesRequest{CWD: cwd, File: args[0]})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	PrintLabelValue(out, "Config", result.Config)
	if len(result.Candidates) == 0 {
		PrintEmptyState(out, fmt.Sprintf("%s didn't match any known patterns", args[0]))
		return nil
	}
	selected := false
	for _, c := range result.Candidates {
		PrintCandidate(out, c.RelPath, c.Pattern, c.Exists, c.Selected)
		selected = selected || c.Selected
	}
	if !selected {
		PrintInfo(out, fmt.Sprintf("None exist; create would write %s", result.Candidates[0].RelPath))
	}
	return nil
}
