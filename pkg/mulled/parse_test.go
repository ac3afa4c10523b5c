package mulled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulled-tools/mulled/pkg/errdefs"
	"github.com/mulled-tools/mulled/pkg/mulled"
)

func TestParseSpecifications(t *testing.T) {
	testcases := []struct {
		name  string
		specs []string
		want  []mulled.Target
	}{
		{
			name:  "double equals",
			specs: []string{"foo==0.1.2", "bar==1.1"},
			want:  []mulled.Target{{Name: "foo", Version: "0.1.2"}, {Name: "bar", Version: "1.1"}},
		},
		{
			name:  "single equals",
			specs: []string{"foo=0.1.2", "bar=1.1"},
			want:  []mulled.Target{{Name: "foo", Version: "0.1.2"}, {Name: "bar", Version: "1.1"}},
		},
		{
			name:  "surrounding whitespace is trimmed",
			specs: []string{" foo == 0.1.2 "},
			want:  []mulled.Target{{Name: "foo", Version: "0.1.2"}},
		},
		{
			name:  "four segment version",
			specs: []string{"pysam==0.16.0.1"},
			want:  []mulled.Target{{Name: "pysam", Version: "0.16.0.1"}},
		},
		{
			name:  "empty input",
			specs: nil,
			want:  []mulled.Target{},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mulled.ParseSpecifications(tc.specs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSpecificationsMalformed(t *testing.T) {
	testcases := []struct {
		name  string
		specs []string
	}{
		{"less-than constraint", []string{"foo<0.1.2", "bar==1.1"}},
		{"greater-than constraint", []string{"foo=0.1.2", "bar>1.1"}},
		{"missing separator", []string{"foo"}},
		{"empty tool name", []string{"==1.1"}},
		{"empty version", []string{"foo=="}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mulled.ParseSpecifications(tc.specs)
			require.Error(t, err)
			assert.ErrorIs(t, err, errdefs.ErrMalformedSpecification)
			assert.ErrorContains(t, err, "expected format")
		})
	}
}

func TestParseSpecificationsNoncompliantVersion(t *testing.T) {
	testcases := []struct {
		name  string
		specs []string
	}{
		{"letter inside release segment", []string{"foo==0a.1.2", "bar==1.1"}},
		{"letters around digit", []string{"foo==0.1.2", "bar==1.b1b"}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mulled.ParseSpecifications(tc.specs)
			require.Error(t, err)
			assert.ErrorIs(t, err, errdefs.ErrInvalidVersion)
			assert.ErrorContains(t, err, "PEP440")
		})
	}
}

func TestParseSpecificationsFailFast(t *testing.T) {
	// the valid entry before the bad one must not leak out
	got, err := mulled.ParseSpecifications([]string{"foo==0.1.2", "bar>1.1"})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "bar>1.1")
}

func TestParseSpecificationsVersionSideEquals(t *testing.T) {
	// only the first separator splits; "===" leaves "=1.0" as version
	_, err := mulled.ParseSpecifications([]string{"foo===1.0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrInvalidVersion)
}
