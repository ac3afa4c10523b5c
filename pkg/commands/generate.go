package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mulled-tools/mulled/pkg/cmdhelper"
	"github.com/mulled-tools/mulled/pkg/commands/internal/options"
	"github.com/mulled-tools/mulled/pkg/mulled"
	"github.com/mulled-tools/mulled/pkg/xlog"
)

// NewGenerateCommand returns a GenerateCommand with default values.
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		Common:   options.NewCommon(),
		Registry: options.NewRegistry(),
	}
}

// GenerateCommand generates the mulled-v2 image name for a set of
// package specifications.
type GenerateCommand struct {
	Common   *options.Common
	Registry *options.Registry

	BaseImage   string `json:"base_image,omitempty" yaml:"base_image,omitempty"`
	BuildNumber int64  `json:"build_number,omitempty" yaml:"build_number,omitempty"`
	Check       bool   `json:"check,omitempty" yaml:"check,omitempty"`
}

// ToCLI transforms to a *cli.Command.
func (c *GenerateCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate the mulled-v2 image name for the given package specifications",
		UsageText: `mulled generate [OPTIONS] SPEC...

# Generate the image name for a package set
$ mulled generate samtools==1.15 chromap==0.2.1

# Generate with a non-default build number and check quay.io
$ mulled generate --build-number 3 --check samtools=1.15 samclip=0.4.0
`,
		ArgsUsage: "SPEC...",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.MinimumNArgs(1)),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *GenerateCommand) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "base-image",
			Usage:       "override the mulled-v2 repository segment with a base image name",
			Destination: &c.BaseImage,
			Value:       c.BaseImage,
		},
		&cli.IntFlag{
			Name:        "build-number",
			Aliases:     []string{"n"},
			Usage:       "incremental build number of the image, starts at zero",
			Destination: &c.BuildNumber,
			Value:       c.BuildNumber,
		},
		&cli.BoolFlag{
			Name:        "check",
			Usage:       "check whether the generated image already exists on the registry",
			Destination: &c.Check,
			Value:       c.Check,
		},
	}
	flags = append(flags, c.Registry.Flags()...)
	flags = append(flags, c.Common.Flags()...)
	return flags
}

// Run is the main function for the current command.
func (c *GenerateCommand) Run(ctx context.Context, cmd *cli.Command) error {
	c.Common.Setup()

	targets, err := mulled.ParseSpecifications(cmd.Args().Slice())
	if err != nil {
		return err
	}
	image, err := mulled.ImageName(targets,
		mulled.WithBaseImage(c.BaseImage),
		mulled.WithBuildNumber(c.BuildNumber),
	)
	if err != nil {
		return err
	}
	cmdhelper.Fprintf(cmd.Writer, "%s", image)

	if !c.Check {
		return nil
	}
	client, err := c.Registry.NewClient(c.Common)
	if err != nil {
		return err
	}
	exists, err := client.ImageExists(ctx, image)
	if err != nil {
		// degrade to "not found" but keep the cause visible
		xlog.C(ctx).Warnf("existence check failed: %v", err)
	}
	cmdhelper.Fprintf(cmd.Writer, "%s %s", client.ImageURL(image), existsMarker(exists))
	return nil
}

func existsMarker(exists bool) string {
	if exists {
		return "✓"
	}
	return "✗"
}
