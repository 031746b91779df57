package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/alternate/internal/engine"
	"github.com/danieljhkim/alternate/internal/projection"
)

var (
	initPreset string
	initForce  bool
	initList   bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter .projections.json",
	Long: `Write a starter .projections.json from a preset.

The file goes to the given directory, or the repository root, or the
current directory outside a repository. An existing file is left alone
unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initPreset, "preset", "p", "",
		"Preset to write ("+strings.Join(engine.PresetNames(), ", ")+")")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"Overwrite an existing projection file")
	initCmd.Flags().BoolVarP(&initList, "list", "l", false,
		"List available presets")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initList {
		return listPresets(cmd)
	}
	if initPreset == "" {
		return fmt.Errorf("%w: --preset is required (available: %s)",
			engine.ErrValidation, strings.Join(engine.PresetNames(), ", "))
	}

	eng, err := newEngine(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cwd, err := workingDir()
	if err != nil {
		return err
	}

	result, err := eng.Init(cmd.Context(), &engine.InitRequest{
		CWD:    cwd,
		Dir:    optionalArg(args),
		Preset: initPreset,
		Force:  initForce,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}

	verb := "Wrote"
	if result.Overwritten {
		verb = "Overwrote"
	}
	PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s %s (%s preset, %s)",
		verb, result.Path, result.Preset, PrintCount(result.Entries, "projection", "projections")))
	return nil
}

func listPresets(cmd *cobra.Command) error {
	presets := projection.Presets()
	if jsonOutput {
		type presetInfo struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		out := make([]presetInfo, len(presets))
		for i, p := range presets {
			out[i] = presetInfo{Name: p.Name, Description: p.Description}
		}
		return outputJSON(cmd.OutOrStdout(), out)
	}

	for _, p := range presets {
		PrintLabelValue(cmd.OutOrStdout(), p.Name, p.Description)
	}
	return nil
}
