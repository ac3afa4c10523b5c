// Package mulled generates deterministic BioContainers "mulled" version 2
// image names for multi-package container images.
//
// A mulled-v2 name is a pure function of the requested (tool, version)
// pairs: the repository segment is a SHA-1 over the sorted tool names and
// the tag segment is a SHA-1 over their versions, so any two callers
// requesting the same package set derive the same name regardless of
// input order. The encoding is a compatibility surface shared with the
// existing BioContainers build infrastructure and must not change.
package mulled
