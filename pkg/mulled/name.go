package mulled

import (
	"crypto/sha1" //nolint:gosec // the mulled v2 naming scheme is defined over SHA-1
	"encoding/hex"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/mulled-tools/mulled/pkg/errdefs"
)

// RepositoryPrefix starts the repository segment of every generated
// name that has no base image override.
const RepositoryPrefix = "mulled-v2-"

// NameOption configures image name generation.
type NameOption func(*nameOptions)

type nameOptions struct {
	baseImage   string
	buildNumber int64
}

// WithBaseImage overrides the default "mulled-v2-<hash>" repository
// segment with the given base image name. Empty means no override.
func WithBaseImage(image string) NameOption {
	return func(o *nameOptions) {
		o.baseImage = strings.TrimSpace(image)
	}
}

// WithBuildNumber sets the incremental build number rendered at the end
// of the tag. It starts at zero, which is also the default.
func WithBuildNumber(n int64) NameOption {
	return func(o *nameOptions) {
		o.buildNumber = n
	}
}

// ImageName generates the name:tag of a BioContainers mulled version 2
// image from the given targets.
//
// The result only depends on the multiset of targets, never on their
// order. Duplicate targets are not deduplicated; they feed the hashes
// as duplicate lines.
func ImageName(targets []Target, opts ...NameOption) (string, error) {
	if len(targets) == 0 {
		return "", errdefs.Newf(errdefs.ErrEmptyTargetSet,
			"at least one (tool, version) target is required")
	}
	o := &nameOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.buildNumber < 0 {
		return "", errdefs.Newf(errdefs.ErrInvalidParameter,
			"build number must not be negative, got %d", o.buildNumber)
	}

	// Stable sort keeps duplicate names in input order, matching the
	// ordering the existing build infrastructure hashes with.
	ordered := slices.Clone(targets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})

	names := lo.Map(ordered, func(t Target, _ int) string { return t.Name })
	versions := lo.Map(ordered, func(t Target, _ int) string { return t.Version })

	repository := RepositoryPrefix + sha1Hex(strings.Join(names, "\n"))
	if o.baseImage != "" {
		repository = o.baseImage
	}
	versionHash := sha1Hex(strings.Join(versions, "\n"))

	return fmt.Sprintf("%s:%s-%d", repository, versionHash, o.buildNumber), nil
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s)) //nolint:gosec // fixed external format
	return hex.EncodeToString(sum[:])
}
