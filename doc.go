// Package schem provides a declarative schematic-diagram composition
// library for Go.
//
// # Overview
//
// schem places circuit elements (resistors, op-amps, sources, ...) one
// after another, resolving each element's global position from a cursor,
// a direction, and named anchor points. Elements are authored once in a
// local coordinate frame as lists of drawing segments; the engine applies
// an affine transform (rotate, zoom, shift) to produce global geometry,
// tracks the overall bounding box, and renders through a pluggable
// output surface (SVG, PNG raster).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/schem"
//	    "github.com/gogpu/schem/elements"
//	    _ "github.com/gogpu/schem/backend/svg"
//	)
//
//	d := schem.NewDrawing()
//	d.Add(elements.Resistor(), schem.Right(), schem.WithLabel("R1"))
//	d.Add(elements.Capacitor(), schem.Down())
//	d.Add(elements.Ground())
//	d.Save("rc.svg")
//
// # Coordinate System
//
// Drawing space uses mathematical coordinates:
//   - X increases right
//   - Y increases up
//   - Angles in degrees, 0 is right, increases counter-clockwise
//
// Output backends convert to their own device coordinates (SVG and
// raster images are y-down; the backends flip).
//
// # Architecture
//
// The library is organized into:
//   - Root package: Point, Transform, Segment family, Element, Drawing
//   - elements/: the element catalog (data consuming the core contract)
//   - textmeasure/: font loading and text measurement
//   - backend/svg, backend/raster: output surfaces
package schem

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
