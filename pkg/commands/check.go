package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/mulled-tools/mulled/pkg/cmdhelper"
	"github.com/mulled-tools/mulled/pkg/commands/internal/options"
	"github.com/mulled-tools/mulled/pkg/errdefs"
	"github.com/mulled-tools/mulled/pkg/xlog"
)

// checkConcurrency bounds the number of parallel registry lookups.
const checkConcurrency = 4

// NewCheckCommand returns a CheckCommand with default values.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{
		Common:   options.NewCommon(),
		Registry: options.NewRegistry(),
	}
}

// CheckCommand checks whether already-generated image names exist on
// the registry.
type CheckCommand struct {
	Common   *options.Common
	Registry *options.Registry
}

// ToCLI transforms to a *cli.Command.
func (c *CheckCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check whether image names exist on the registry",
		UsageText: `mulled check [OPTIONS] IMAGE...

# Check a single generated name
$ mulled check mulled-v2-1f09f39f20b1c4ee36581dc81cc323c70e661633:bd74d08a359024829a7aec1638a28607bbcd8a58-0
`,
		ArgsUsage: "IMAGE...",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.MinimumNArgs(1)),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *CheckCommand) Flags() []cli.Flag {
	flags := []cli.Flag{}
	flags = append(flags, c.Registry.Flags()...)
	flags = append(flags, c.Common.Flags()...)
	return flags
}

// Run is the main function for the current command.
func (c *CheckCommand) Run(ctx context.Context, cmd *cli.Command) error {
	c.Common.Setup()

	client, err := c.Registry.NewClient(c.Common)
	if err != nil {
		return err
	}

	images := cmd.Args().Slice()
	statuses := make([]string, len(images))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)
	for i, image := range images {
		g.Go(func() error {
			exists, err := client.ImageExists(gctx, image)
			switch {
			case errors.Is(err, errdefs.ErrUnavailable):
				xlog.C(gctx).Warnf("existence check failed for %s: %v", image, err)
				statuses[i] = "unknown"
			case err != nil:
				return err
			case exists:
				statuses[i] = "found"
			default:
				statuses[i] = "not found"
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, image := range images {
		cmdhelper.Fprintf(cmd.Writer, "%s: %s", image, statuses[i])
	}
	return nil
}
