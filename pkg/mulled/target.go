package mulled

import "strings"

// Target is one (tool, version) pair of a multi-package image, the
// canonical hash input for name generation.
type Target struct {
	// Name is the package name of the tool, e.g. "samtools".
	Name string
	// Version is the requested version of the tool, e.g. "1.15".
	Version string
}

// NewTarget builds a Target from a tool name and version, trimming
// surrounding whitespace from both.
func NewTarget(name, version string) Target {
	return Target{
		Name:    strings.TrimSpace(name),
		Version: strings.TrimSpace(version),
	}
}

// String renders the target in the build-target form "name=version".
func (t Target) String() string {
	return t.Name + "=" + t.Version
}
