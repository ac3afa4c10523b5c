package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulled-tools/mulled/pkg/errdefs"
)

func runGenerate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewGenerateCommand().ToCLI()
	cmd.Writer = buf
	err := cmd.Run(t.Context(), append([]string{"generate"}, args...))
	return buf.String(), err
}

func TestGenerateCommand(t *testing.T) {
	output, err := runGenerate(t, "chromap==0.2.1", "samtools==1.15")
	require.NoError(t, err)
	assert.Equal(t, testServerImage+"\n", output)
}

func TestGenerateCommandBuildNumber(t *testing.T) {
	output, err := runGenerate(t, "--build-number", "3", "chromap==0.2.1", "samtools==1.15")
	require.NoError(t, err)
	assert.Equal(t,
		"mulled-v2-1f09f39f20b1c4ee36581dc81cc323c70e661633:bd74d08a359024829a7aec1638a28607bbcd8a58-3\n",
		output)
}

func TestGenerateCommandMalformedSpecification(t *testing.T) {
	_, err := runGenerate(t, "samtools")
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrMalformedSpecification)
}

func TestGenerateCommandNoArgs(t *testing.T) {
	_, err := runGenerate(t)
	require.Error(t, err)
}
