package cmdhelper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	"github.com/mulled-tools/mulled/pkg/cmdhelper"
)

func run(check cmdhelper.ActionFunc, args ...string) error {
	cmd := &cli.Command{
		Name:   "test",
		Before: cli.BeforeFunc(check),
		Action: func(context.Context, *cli.Command) error { return nil },
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestNoArgs(t *testing.T) {
	assert.NoError(t, run(cmdhelper.NoArgs()))
	assert.Error(t, run(cmdhelper.NoArgs(), "extra"))
}

func TestExactArgs(t *testing.T) {
	assert.NoError(t, run(cmdhelper.ExactArgs(2), "a", "b"))
	assert.Error(t, run(cmdhelper.ExactArgs(2), "a"))
	assert.Error(t, run(cmdhelper.ExactArgs(2), "a", "b", "c"))
}

func TestMinimumNArgs(t *testing.T) {
	assert.NoError(t, run(cmdhelper.MinimumNArgs(1), "a"))
	assert.NoError(t, run(cmdhelper.MinimumNArgs(1), "a", "b"))
	assert.Error(t, run(cmdhelper.MinimumNArgs(1)))
}
