package schem

import "errors"

// Sentinel errors for the schem package.
var (
	// ErrInvalidTransform is returned when a Transform is constructed
	// with a non-positive zoom factor.
	ErrInvalidTransform = errors.New("schem: invalid transform")

	// ErrUnknownAnchor is returned when an anchor name is looked up
	// on an Element that does not define it.
	ErrUnknownAnchor = errors.New("schem: unknown anchor")

	// ErrDegenerateGeometry is returned when a segment's geometry is
	// too degenerate to place, e.g. an arrow whose tail and head
	// coincide so no direction can be derived.
	ErrDegenerateGeometry = errors.New("schem: degenerate geometry")

	// ErrUnknownBackend is returned when no output backend is
	// registered for a requested format.
	ErrUnknownBackend = errors.New("schem: no backend registered for format")
)
