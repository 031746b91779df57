package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/alternate/internal/engine"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns [dir]",
	Short: "List the patterns of the nearest projection file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPatterns,
}

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate the nearest projection file",
	Long: `Validate the nearest projection file and report every entry that
cannot be used. Exits with status 1 when any entry is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runPatterns(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	result, err := eng.Patterns(cmd.Context(), &engine.PatternsRequest{CWD: cwd, Dir: optionalArg(args)})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	PrintLabelValue(out, "Config", result.Config)
	if len(result.Patterns) == 0 {
		PrintEmptyState(out, "No patterns")
	}
	for i, p := range result.Patterns {
		fprintf(out, infoColor, "%d. %s\n", i+1, p.Main)
		fprintf(out, dimColor, "   ↔ %s\n", p.Alternate)
		if len(p.Template) > 0 {
			fprintf(out, dimColor, "   template: %s\n", PrintCount(len(p.Template), "line", "lines"))
		}
	}
	for _, p := range result.Problems {
		PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("skipped %s: %s", p.Main, p.Error))
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	result, err := eng.Check(cmd.Context(), &engine.CheckRequest{CWD: cwd, Dir: optionalArg(args)})
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else if result.OK() {
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s: %s, %s",
			result.Config,
			PrintCount(result.Entries, "entry", "entries"),
			PrintCount(result.Patterns, "pattern", "patterns")))
	} else {
		for _, p := range result.Problems {
			PrintError(cmd.ErrOrStderr(), fmt.Sprintf("%s: %s", p.Main, p.Error))
		}
	}

	if !result.OK() {
		mains := make([]string, len(result.Problems))
		for i, p := range result.Problems {
			mains[i] = p.Main
		}
		return fmt.Errorf("%w: %s in %s (%s)", engine.ErrValidation,
			PrintCount(len(result.Problems), "invalid entry", "invalid entries"),
			result.Config, strings.Join(mains, ", "))
	}
	return nil
}
