package mechanics

import "errors"

// ErrInvalidArgument is the root of every argument-validation failure in this
// package. The specific sentinels below wrap it, so callers may test either.
var ErrInvalidArgument = errors.New("mechanics: invalid argument")

// Sentinel errors for mechanism modeling.
var (
	// ErrEmptyName indicates an empty frame, edge or component name.
	ErrEmptyName = wrapInvalid("empty name")

	// ErrNilFrame indicates an absent reference frame.
	ErrNilFrame = wrapInvalid("nil reference frame")

	// ErrNilEdge indicates an absent modeling edge.
	ErrNilEdge = wrapInvalid("nil modeling edge")

	// ErrNilComponent indicates an absent component.
	ErrNilComponent = wrapInvalid("nil component")

	// ErrUnknownArchetype indicates an archetype outside the catalog.
	ErrUnknownArchetype = wrapInvalid("unknown archetype")

	// ErrUnknownDomain indicates a domain other than Rotational or Translational.
	ErrUnknownDomain = wrapInvalid("unknown domain")

	// ErrDomainMismatch indicates an edge added to a topology of another domain.
	ErrDomainMismatch = wrapInvalid("edge domain does not match topology")

	// ErrDuplicateComponent indicates a second component (or edge) registered under a taken name.
	ErrDuplicateComponent = wrapInvalid("duplicate component name")

	// ErrFrameConflict indicates two distinct frame objects sharing one name.
	ErrFrameConflict = wrapInvalid("frame name bound to a different frame")

	// ErrEdgeNotFound indicates an edge that is not part of the topology.
	ErrEdgeNotFound = wrapInvalid("edge not in topology")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = wrapInvalid("negative weight")
)

// invalidError is a named sentinel that unwraps to ErrInvalidArgument.
type invalidError struct{ msg string }

func wrapInvalid(msg string) error { return &invalidError{msg: "mechanics: " + msg} }

func (e *invalidError) Error() string { return e.msg }

func (e *invalidError) Unwrap() error { return ErrInvalidArgument }
