package elements

import "github.com/gogpu/schem"

// Source proportions.
const (
	srcRad  = 0.5
	plusLen = 0.2
)

// source is the bare circle shared by the source family.
func source(name string) *schem.Element {
	e := schem.NewElement(name)
	e.Add(schem.Circle(schem.Pt(srcRad, 0), srcRad))
	return e.SetEndpoints(schem.Pt(2*srcRad, 0))
}

// Source is a plain circular source.
//
// Anchors: start, end.
func Source() *schem.Element {
	return source("source")
}

// SourceV is a voltage source with +/- marks. The plus sign sits
// toward the end terminal.
//
// Anchors: start, end.
func SourceV() *schem.Element {
	e := source("source_v")
	const px = srcRad * 1.4 // plus center
	const mx = srcRad * 0.6 // minus center
	e.Add(
		schem.Line(schem.Pt(px-plusLen/2, 0), schem.Pt(px+plusLen/2, 0)),
		schem.Line(schem.Pt(px, -plusLen/2), schem.Pt(px, plusLen/2)),
		schem.Line(schem.Pt(mx-plusLen/2, 0), schem.Pt(mx+plusLen/2, 0)),
	)
	return e
}

// SourceI is a current source with an inline arrow pointing toward
// the end terminal.
//
// Anchors: start, end.
func SourceI() *schem.Element {
	e := source("source_i")
	e.Add(schem.Arrow(schem.Pt(srcRad*0.5, 0), schem.Pt(srcRad*1.5, 0)))
	return e
}

// SourceSin is an AC source with a sine cycle inside, drawn as a pair
// of half-circle arcs.
//
// Anchors: start, end.
func SourceSin() *schem.Element {
	e := source("source_sin")
	const q = srcRad / 2
	e.Add(
		schem.Arc(schem.Pt(srcRad-q/2, 0), q, q, 0, 180),
		schem.Arc(schem.Pt(srcRad+q/2, 0), q, q, 180, 360),
	)
	return e
}

// SourceControlled is a diamond-shaped controlled source.
//
// Anchors: start, end.
func SourceControlled() *schem.Element {
	e := schem.NewElement("source_controlled")
	e.Add(schem.Poly(
		schem.Pt(0, 0),
		schem.Pt(srcRad, srcRad),
		schem.Pt(2*srcRad, 0),
		schem.Pt(srcRad, -srcRad),
	))
	return e.SetEndpoints(schem.Pt(2*srcRad, 0))
}

// BatteryCell is a single long/short plate pair.
//
// Anchors: start, end.
func BatteryCell() *schem.Element {
	e := schem.NewElement("battery_cell")
	e.Add(
		schem.Line(schem.Pt(0, resHeight), schem.Pt(0, -resHeight)),
		schem.Line(schem.Pt(capGap, resHeight*0.5), schem.Pt(capGap, -resHeight*0.5)),
	)
	return e.SetEndpoints(schem.Pt(capGap, 0))
}

// Battery is two stacked cells.
//
// Anchors: start, end.
func Battery() *schem.Element {
	e := schem.NewElement("battery")
	e.Add(
		schem.Line(schem.Pt(0, resHeight), schem.Pt(0, -resHeight)),
		schem.Line(schem.Pt(capGap, resHeight*0.5), schem.Pt(capGap, -resHeight*0.5)),
		schem.Line(schem.Pt(capGap*2, resHeight), schem.Pt(capGap*2, -resHeight)),
		schem.Line(schem.Pt(capGap*3, resHeight*0.5), schem.Pt(capGap*3, -resHeight*0.5)),
	)
	return e.SetEndpoints(schem.Pt(capGap*3, 0))
}

// Lamp is a source circle with a cross inside.
//
// Anchors: start, end.
func Lamp() *schem.Element {
	e := source("lamp")
	const o = srcRad * 0.707 // cos45 offset to the rim
	e.Add(
		schem.Line(schem.Pt(srcRad-o, o), schem.Pt(srcRad+o, -o)),
		schem.Line(schem.Pt(srcRad-o, -o), schem.Pt(srcRad+o, o)),
	)
	return e
}

// MeterV is a voltmeter: a source circle with a V.
//
// Anchors: start, end.
func MeterV() *schem.Element {
	e := source("meter_v")
	e.Add(schem.Label(schem.Pt(srcRad, 0), "V"))
	return e
}

// MeterA is an ammeter: a source circle with an A.
//
// Anchors: start, end.
func MeterA() *schem.Element {
	e := source("meter_a")
	e.Add(schem.Label(schem.Pt(srcRad, 0), "A"))
	return e
}
