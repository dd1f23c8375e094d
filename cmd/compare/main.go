package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"fpt/internal/cli"
	"fpt/internal/cli/commands"
	"fpt/internal/config"
)

func main() {
	cfg := config.New()
	cfg.LoadEnv()

	var flags cli.Flags
	cmd := commands.NewCommands(cfg, afero.NewOsFs()).Compare.Command(&flags, cfg)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	code, printErr := cli.ExitCode(err)
	if printErr {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
