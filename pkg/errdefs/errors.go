package errdefs

import "errors"

var (
	// ErrMalformedSpecification signals that a package specification string
	// does not follow the <tool==version> or <tool=version> format.
	ErrMalformedSpecification = errors.New("malformed specification")

	// ErrInvalidVersion signals that a version string does not comply with
	// the PEP 440 version grammar.
	ErrInvalidVersion = errors.New("invalid version format")

	// ErrEmptyTargetSet signals that an image name was requested for zero
	// build targets.
	ErrEmptyTargetSet = errors.New("empty target set")

	// ErrInvalidParameter signals that the user input is invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound signals that the requested object doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable signals that the registry could not be reached, as
	// opposed to a confirmed "not found" answer.
	ErrUnavailable = errors.New("unavailable")
)
