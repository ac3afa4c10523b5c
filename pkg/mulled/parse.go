package mulled

import (
	"regexp"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"

	"github.com/mulled-tools/mulled/pkg/errdefs"
)

// splitPattern splits a specification on the first "==" or "=". Any
// later separator occurrences belong to the version part.
var splitPattern = regexp.MustCompile(`==?`)

// ParseSpecifications parses (tool, version) targets from specification
// strings like "samtools==1.15" or "samtools=1.15", preserving input
// order.
//
// Parsing is fail-fast: the first malformed or invalid entry aborts the
// whole batch and nothing is returned for the entries before it.
func ParseSpecifications(specs []string) ([]Target, error) {
	targets := make([]Target, 0, len(specs))
	for _, spec := range specs {
		target, err := parseSpecification(spec)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func parseSpecification(spec string) (Target, error) {
	parts := splitPattern.Split(spec, 2)
	if len(parts) != 2 {
		return Target{}, errdefs.Newf(errdefs.ErrMalformedSpecification,
			"specification %q does not have the expected format <tool==version> or <tool=version>", spec)
	}
	tool := strings.TrimSpace(parts[0])
	version := strings.TrimSpace(parts[1])
	if tool == "" || version == "" {
		return Target{}, errdefs.Newf(errdefs.ErrMalformedSpecification,
			"specification %q does not have the expected format <tool==version> or <tool=version>", spec)
	}
	if _, err := pep440.Parse(version); err != nil {
		return Target{}, errdefs.Newf(errdefs.ErrInvalidVersion,
			"not a PEP440 version spec: %q in %q", version, spec)
	}
	return Target{Name: tool, Version: version}, nil
}
