package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v3"

	"github.com/mulled-tools/mulled/pkg/cmdhelper"
	"github.com/mulled-tools/mulled/pkg/commands/internal/options"
	"github.com/mulled-tools/mulled/pkg/errdefs"
	"github.com/mulled-tools/mulled/pkg/mulled"
	"github.com/mulled-tools/mulled/pkg/xlog"
)

// NewInteractiveCommand returns an InteractiveCommand with default
// values.
func NewInteractiveCommand() *InteractiveCommand {
	return &InteractiveCommand{
		Common:   options.NewCommon(),
		Registry: options.NewRegistry(),
	}
}

// InteractiveCommand builds an image name from (tool, version) pairs
// collected with interactive prompts, then reports whether the image
// already exists on the registry.
type InteractiveCommand struct {
	Common   *options.Common
	Registry *options.Registry
}

// ToCLI transforms to a *cli.Command.
func (c *InteractiveCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Build an image name from interactively entered tool/version pairs",
		UsageText: `mulled interactive

# Enter tools one by one, finish with an empty tool name:
$ mulled interactive
Tool #1 name (empty to finish): samtools
Tool #1 version: 1.15
Tool #2 name (empty to finish): chromap
Tool #2 version: 0.2.1
Tool #3 name (empty to finish):
`,
		Flags:  c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *InteractiveCommand) Flags() []cli.Flag {
	flags := []cli.Flag{}
	flags = append(flags, c.Registry.Flags()...)
	flags = append(flags, c.Common.Flags()...)
	return flags
}

// Run is the main function for the current command.
func (c *InteractiveCommand) Run(ctx context.Context, cmd *cli.Command) error {
	c.Common.Setup()

	targets, err := c.promptTargets()
	if err != nil {
		return err
	}
	baseImage, buildNumber, err := c.promptNameOptions()
	if err != nil {
		return err
	}

	image, err := mulled.ImageName(targets,
		mulled.WithBaseImage(baseImage),
		mulled.WithBuildNumber(buildNumber),
	)
	if err != nil {
		return err
	}
	cmdhelper.Fprintf(cmd.Writer, "%s", image)

	client, err := c.Registry.NewClient(c.Common)
	if err != nil {
		return err
	}
	exists, err := client.ImageExists(ctx, image)
	if err != nil {
		xlog.C(ctx).Warnf("existence check failed: %v", err)
	}
	cmdhelper.Fprintf(cmd.Writer, "%s %s", client.ImageURL(image), existsMarker(exists))
	return nil
}

// promptTargets collects (tool, version) pairs until the tool name is
// left empty. The pairs feed the generator directly, bypassing the
// specification string parser.
func (c *InteractiveCommand) promptTargets() ([]mulled.Target, error) {
	targets := []mulled.Target{}
	for {
		toolPrompt := promptui.Prompt{
			Label: fmt.Sprintf("Tool #%d name (empty to finish)", len(targets)+1),
		}
		tool, err := toolPrompt.Run()
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(tool) == "" {
			break
		}

		versionPrompt := promptui.Prompt{
			Label: fmt.Sprintf("Tool #%d version", len(targets)+1),
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return errors.New("version must not be empty")
				}
				return nil
			},
		}
		version, err := versionPrompt.Run()
		if err != nil {
			return nil, err
		}
		targets = append(targets, mulled.NewTarget(tool, version))
	}
	if len(targets) == 0 {
		return nil, errdefs.Newf(errdefs.ErrEmptyTargetSet, "no (tool, version) pairs entered")
	}
	return targets, nil
}

func (c *InteractiveCommand) promptNameOptions() (string, int64, error) {
	basePrompt := promptui.Prompt{
		Label: "Base image override (optional)",
	}
	baseImage, err := basePrompt.Run()
	if err != nil {
		return "", 0, err
	}

	buildPrompt := promptui.Prompt{
		Label:   "Build number",
		Default: "0",
		Validate: func(input string) error {
			_, err := cast.ToInt64E(input)
			return err
		},
	}
	answer, err := buildPrompt.Run()
	if err != nil {
		return "", 0, err
	}
	buildNumber, err := cast.ToInt64E(answer)
	if err != nil {
		return "", 0, errdefs.NewE(errdefs.ErrInvalidParameter, err)
	}
	return baseImage, buildNumber, nil
}
