// Package options defines flag groups shared by the cli commands.
package options

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mulled-tools/mulled/pkg/xlog"
)

// NewCommon returns a *Common with default values.
func NewCommon() *Common {
	return &Common{}
}

// Common are options that are common to all commands.
type Common struct {
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Common) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Sources:     cli.EnvVars("MULLED_DEBUG"),
			Usage:       "enable debug mode",
			Destination: &o.Debug,
		},
	}
}

// Setup applies the common options to the process-wide state.
func (o *Common) Setup() {
	if o.Debug {
		xlog.SetLevel(slog.LevelDebug)
	}
}
