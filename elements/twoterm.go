package elements

import (
	"github.com/gogpu/schem"
)

// Shared two-terminal proportions, in drawing units.
const (
	resHeight = 0.25     // body half height
	resWidth  = 1.0 / 6  // zigzag pitch
	capGap    = 0.18     // capacitor plate separation
	indWidth  = 0.25     // inductor loop width
	dioHeight = resHeight * 1.4
)

// Wire is a plain stretchable wire: the body is empty and the leads
// span the whole placement.
//
// Anchors: start, end.
func Wire() *schem.Element {
	e := schem.NewElement("wire")
	return e.SetEndpoints(schem.Pt(0, 0))
}

// Resistor is a zigzag resistor.
//
// Anchors: start, end.
func Resistor() *schem.Element {
	e := schem.NewElement("resistor")
	e.Add(schem.Line(
		schem.Pt(0, 0),
		schem.Pt(0.5*resWidth, resHeight),
		schem.Pt(1.5*resWidth, -resHeight),
		schem.Pt(2.5*resWidth, resHeight),
		schem.Pt(3.5*resWidth, -resHeight),
		schem.Pt(4.5*resWidth, resHeight),
		schem.Pt(5.5*resWidth, -resHeight),
		schem.Pt(6*resWidth, 0),
	))
	return e.SetEndpoints(schem.Pt(6*resWidth, 0))
}

// ResistorBox is a box-style (IEC) resistor.
//
// Anchors: start, end.
func ResistorBox() *schem.Element {
	e := schem.NewElement("resistor_box")
	e.Add(schem.Poly(
		schem.Pt(0, resHeight),
		schem.Pt(1, resHeight),
		schem.Pt(1, -resHeight),
		schem.Pt(0, -resHeight),
	))
	return e.SetEndpoints(schem.Pt(1, 0))
}

// Capacitor has two flat plates.
//
// Anchors: start, end.
func Capacitor() *schem.Element {
	e := schem.NewElement("capacitor")
	e.Add(schem.Line(
		schem.Pt(0, resHeight), schem.Pt(0, -resHeight),
		schem.Gap,
		schem.Pt(capGap, resHeight), schem.Pt(capGap, -resHeight),
	))
	return e.SetEndpoints(schem.Pt(capGap, 0))
}

// CapacitorCurved has a flat and a curved plate (polarized).
//
// Anchors: start, end.
func CapacitorCurved() *schem.Element {
	e := schem.NewElement("capacitor_curved")
	e.Add(
		schem.Line(schem.Pt(0, resHeight), schem.Pt(0, -resHeight)),
		schem.Arc(schem.Pt(capGap*2.8, 0), capGap*5.5, resHeight*2.5, 105, 255),
	)
	return e.SetEndpoints(schem.Pt(capGap, 0))
}

// Inductor is a row of four half-circle loops.
//
// Anchors: start, end.
func Inductor() *schem.Element {
	e := schem.NewElement("inductor")
	for i := 0; i < 4; i++ {
		center := schem.Pt(indWidth/2+float64(i)*indWidth, 0)
		e.Add(schem.Arc(center, indWidth, indWidth, 0, 180))
	}
	return e.SetEndpoints(schem.Pt(4*indWidth, 0))
}

// Diode points along the placement direction.
//
// Anchors: start, end.
func Diode() *schem.Element {
	e := schem.NewElement("diode")
	e.Add(
		schem.Poly(
			schem.Pt(0, resHeight),
			schem.Pt(dioHeight, 0),
			schem.Pt(0, -resHeight),
		),
		schem.Line(schem.Pt(dioHeight, resHeight), schem.Pt(dioHeight, -resHeight)),
	)
	return e.SetEndpoints(schem.Pt(dioHeight, 0))
}

// DiodeFilled is a diode with a filled body.
//
// Anchors: start, end.
func DiodeFilled() *schem.Element {
	e := Diode()
	e.SetStyle(schem.Style{Fill: schem.Some("black")})
	return e
}

// LED is a diode with radiation arrows.
//
// Anchors: start, end.
func LED() *schem.Element {
	e := Diode()
	e.Add(
		schem.Arrow(schem.Pt(dioHeight*0.3, resHeight*1.2), schem.Pt(dioHeight*0.8, resHeight*2.2)).WithHead(0.12, 0.12),
		schem.Arrow(schem.Pt(dioHeight*0.7, resHeight*1.0), schem.Pt(dioHeight*1.2, resHeight*2.0)).WithHead(0.12, 0.12),
	)
	return e
}

// Fuse is a box with a wire through it.
//
// Anchors: start, end.
func Fuse() *schem.Element {
	e := schem.NewElement("fuse")
	const fuseH = resHeight * 0.6
	e.Add(
		schem.Poly(
			schem.Pt(0, fuseH), schem.Pt(1, fuseH),
			schem.Pt(1, -fuseH), schem.Pt(0, -fuseH),
		),
		schem.Line(schem.Pt(0, 0), schem.Pt(1, 0)),
	)
	return e.SetEndpoints(schem.Pt(1, 0))
}

// GapLabel is an open gap annotated with a label, used for indicating
// a voltage across two points.
//
// Anchors: start, end.
func GapLabel(text string) *schem.Element {
	e := schem.NewElement("gap_label")
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Gap, schem.Pt(1, 0)),
		schem.Label(schem.Pt(0.5, 0), text),
	)
	return e.SetEndpoints(schem.Pt(1, 0))
}

// ArrowWire is a stretchable wire ending in an arrowhead. The arrow's
// local coordinates run backward from the element end: the baked-in
// correction that the end reference doubles so the head lands exactly
// on the placement end after lead extension.
//
// Anchors: start, end.
func ArrowWire() *schem.Element {
	e := Wire()
	e.Add(schem.Arrow(schem.Pt(-0.3, 0), schem.Pt(0, 0)).WithRef(schem.RefEnd))
	return e
}

// WireDot is a wire with a connector dot at its far end. The dot's
// end reference keeps it pinned to the placement end through lead
// extension, and swaps to the start if the element is mirrored.
//
// Anchors: start, end.
func WireDot() *schem.Element {
	e := Wire()
	e.Add(schem.Circle(schem.Pt(0, 0), 0.075).
		WithRef(schem.RefEnd).
		WithStyle(schem.Style{Fill: schem.Some("black")}))
	return e
}
