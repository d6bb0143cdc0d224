// Package commands wires the trybuild CLI commands to the harness
// components.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/rexhoffman/trybuild/internal/cli"
	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/storage"
	"github.com/rexhoffman/trybuild/internal/ui"
)

// Commands holds all CLI commands.
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	Review   *ReviewCommand
}

// NewCommands creates all commands with dependencies.
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewReviewViewer()

	return &Commands{
		Run:      NewRunCommand(cfg),
		List:     NewListCommand(cfg),
		Failures: NewFailuresCommand(jsonStorage, formatter),
		Review:   NewReviewCommand(jsonStorage, viewer),
	}
}

// Register registers all commands with cobra.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the declared build tests",
		Long:    "Expand the declared pass and compile-fail patterns, build each test against the synthetic project and compare diagnostics with golden fixtures.",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringArrayVarP(&flags.Pass, "pass", "p", nil, "Path or glob pattern of a test expected to build and run")
	runCmd.Flags().StringArrayVarP(&flags.CompileFail, "compile-fail", "c", nil, "Path or glob pattern of a test expected to fail to build")
	runCmd.Flags().StringVar(&flags.TargetDir, "target-dir", "", "Override the shared build-artifact directory")
	runCmd.Flags().StringVar(&flags.StagingDir, "wip-dir", "", "Override the staging directory for bootstrapped fixtures")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar during the run")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List expanded test cases",
		Long:    "Expand the declared patterns and print the concrete test list without running anything.",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringArrayVarP(&flags.Pass, "pass", "p", nil, "Path or glob pattern of a test expected to build and run")
	listCmd.Flags().StringArrayVarP(&flags.CompileFail, "compile-fail", "c", nil, "Path or glob pattern of a test expected to fail to build")
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "Show failures from the last run",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)

	reviewCmd := &cobra.Command{
		Use:     "review",
		Short:   "Review staged fixtures interactively",
		Long:    "Open an interactive viewer over the fixtures staged by the last run; promote or discard each one.",
		RunE:    c.Review.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(reviewCmd)
}
