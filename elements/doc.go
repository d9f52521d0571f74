// Package elements is the catalog of circuit element shapes consumed
// by the schem engine. Each constructor returns a fresh Element built
// from local-space segments and named anchors; placement never mutates
// a returned element, but constructors are cheap, so build one per
// placement.
//
// Two-terminal elements (resistors, capacitors, ...) are authored
// without leads, spanning the local x-axis from the origin to their
// natural length; the drawing driver stretches their leads to the
// requested span.
package elements
