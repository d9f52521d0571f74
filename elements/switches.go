package elements

import "github.com/gogpu/schem"

// Switch proportions.
const (
	swDot = 0.12
	swLen = 1.0
)

// Switch is a single-pole single-throw switch, drawn open.
//
// Anchors: start, end.
func Switch() *schem.Element {
	e := schem.NewElement("switch")
	e.Add(
		schem.Circle(schem.Pt(swDot, 0), swDot/2),
		schem.Circle(schem.Pt(swLen-swDot, 0), swDot/2),
		schem.Line(schem.Pt(swDot*1.5, swDot/2), schem.Pt(swLen-swDot*1.8, swDot*3.5)),
	)
	return e.SetEndpoints(schem.Pt(swLen, 0))
}

// SwitchClosed is a single-pole single-throw switch, drawn closed.
//
// Anchors: start, end.
func SwitchClosed() *schem.Element {
	e := schem.NewElement("switch_closed")
	e.Add(
		schem.Circle(schem.Pt(swDot, 0), swDot/2),
		schem.Circle(schem.Pt(swLen-swDot, 0), swDot/2),
		schem.Line(schem.Pt(swDot*1.5, swDot/2), schem.Pt(swLen-swDot*1.5, swDot/2)),
	)
	return e.SetEndpoints(schem.Pt(swLen, 0))
}

// Button is a momentary push button.
//
// Anchors: start, end.
func Button() *schem.Element {
	e := schem.NewElement("button")
	e.Add(
		schem.Circle(schem.Pt(swDot, 0), swDot/2),
		schem.Circle(schem.Pt(swLen-swDot, 0), swDot/2),
		schem.Line(schem.Pt(swDot, swDot*2.5), schem.Pt(swLen-swDot, swDot*2.5)),
		schem.Line(schem.Pt(swLen/2, swDot*2.5), schem.Pt(swLen/2, swDot*4)),
	)
	return e.SetEndpoints(schem.Pt(swLen, 0))
}
