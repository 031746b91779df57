package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	configPath string
	verbose    bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for alternate.
var rootCmd = &cobra.Command{
	Use:     "alternate",
	Version: "dev",
	Short:   "Jump between a file and its alternate",
	Long: `alternate finds the alternate of a file: its test when given an
implementation, its implementation when given a test.

Mappings come from the nearest .projections.json (or .yaml, .yml, .hcl)
above the file, where each key is a glob for main files and "alternate"
names one or more templates built from {dirname}, {basename} and {}.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	// Build complete help output
	var help strings.Builder

	// Add long description if present
	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	// Add usage
	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	// Add grouped commands
	for _, group := range cmd.Groups() {
		// Color the group title
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	// Add ungrouped commands (Additional Commands section)
	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	// Add flags
	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	// Add usage footer
	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	// Set custom help function to color group titles
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Projection file to use instead of searching (env: ALTERNATE_PROJECTIONS)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log resolution details to stderr (env: ALTERNATE_LOG=debug)")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "resolution",
		Title: "Resolution:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "configuration",
		Title: "Configuration:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the alternate CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	// Add help command to CLI & Tooling group
	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				return rootCmd.Help()
			}
			return target.Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	// Add completion command to CLI & Tooling group
	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for alternate for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Resolution commands
	findCmd.GroupID = "resolution"
	createCmd.GroupID = "resolution"
	candidatesCmd.GroupID = "resolution"
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(candidatesCmd)

	// Configuration commands
	patternsCmd.GroupID = "configuration"
	checkCmd.GroupID = "configuration"
	initCmd.GroupID = "configuration"
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
