package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"fpt/internal/cli"
	"fpt/internal/cli/commands"
	"fpt/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "fpt",
		Short:         "Floating-point test fixture toolkit",
		Long:          `Generate per-test fixtures from a floating-point test corpus, run the arithmetic program against them and compare its output.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Defaults, .env and FPT_* environment; flags are applied per command
	cfg := config.New()
	cfg.LoadEnv()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg, afero.NewOsFs())
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	code, printErr := cli.ExitCode(err)
	if printErr {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
