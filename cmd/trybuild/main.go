package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rexhoffman/trybuild/internal/cli"
	"github.com/rexhoffman/trybuild/internal/cli/commands"
	"github.com/rexhoffman/trybuild/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "trybuild",
		Short:   "Snapshot test harness for build-time behavior",
		Long:    `trybuild builds declared test sources against a synthetic project and verifies that each one passes or fails to compile with diagnostics matching its golden fixture.`,
		Version: version,
	}

	cfg, err := config.Discover(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
