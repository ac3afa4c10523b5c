// Package main is the entry of the application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mulled-tools/mulled/pkg/cmdhelper"
	"github.com/mulled-tools/mulled/pkg/commands"
)

func main() {
	app := cli.Command{
		Name:                  "mulled",
		Usage:                 "mulled generates and checks multi-package BioContainers image names",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Commands: []*cli.Command{
			commands.NewVersionCommand().ToCLI(),
			commands.NewGenerateCommand().ToCLI(),
			commands.NewCheckCommand().ToCLI(),
			commands.NewInteractiveCommand().ToCLI(),
			commands.NewServerCommand().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(ctx, os.Args)
}
