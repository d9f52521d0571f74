package elements

import "github.com/gogpu/schem"

// One-terminal proportions.
const (
	gndGap   = 0.12
	gndLead  = 0.4
	dotRad   = 0.075
	railLead = 0.3
)

// Ground is an earth-ground symbol. It always points down, regardless
// of the drawing direction, and leaves the cursor at its connection
// point.
//
// Anchors: start.
func Ground() *schem.Element {
	e := schem.NewElement("ground")
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(0, -gndLead)),
		schem.Line(schem.Pt(-resHeight, -gndLead), schem.Pt(resHeight, -gndLead)),
		schem.Line(schem.Pt(-resHeight*0.7, -gndLead-gndGap), schem.Pt(resHeight*0.7, -gndLead-gndGap)),
		schem.Line(schem.Pt(-resHeight*0.2, -gndLead-gndGap*2), schem.Pt(resHeight*0.2, -gndLead-gndGap*2)),
	)
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}

// GroundSignal is a signal-ground triangle.
//
// Anchors: start.
func GroundSignal() *schem.Element {
	e := schem.NewElement("ground_signal")
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(0, -gndLead)),
		schem.Poly(
			schem.Pt(-resHeight, -gndLead),
			schem.Pt(resHeight, -gndLead),
			schem.Pt(0, -gndLead-resHeight*1.2),
		),
	)
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}

// Dot is a filled junction dot. The cursor does not move.
//
// Anchors: start, center.
func Dot() *schem.Element {
	e := schem.NewElement("dot")
	e.Add(schem.Circle(schem.Pt(0, 0), dotRad).
		WithStyle(schem.Style{Fill: schem.Some("black"), ZOrder: schem.Some(4)}))
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetAnchor("center", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}

// OpenDot is an unfilled terminal dot.
//
// Anchors: start, center.
func OpenDot() *schem.Element {
	e := schem.NewElement("open_dot")
	e.Add(schem.Circle(schem.Pt(0, 0), dotRad).
		WithStyle(schem.Style{Fill: schem.Some("white"), ZOrder: schem.Some(4)}))
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetAnchor("center", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}

// Arrowhead is a bare arrowhead aligned with the current direction.
//
// Anchors: start.
func Arrowhead() *schem.Element {
	e := schem.NewElement("arrowhead")
	e.Add(schem.Arrow(schem.Pt(-0.3, 0), schem.Pt(0, 0)).WithHead(0.3, 0.3))
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e
}

// Vdd is a positive supply rail stub pointing up.
//
// Anchors: start.
func Vdd() *schem.Element {
	e := schem.NewElement("vdd")
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(0, railLead)),
		schem.Line(schem.Pt(-resHeight*0.8, railLead), schem.Pt(resHeight*0.8, railLead)),
	)
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}

// Vss is a negative supply rail stub pointing down.
//
// Anchors: start.
func Vss() *schem.Element {
	e := schem.NewElement("vss")
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(0, -railLead)),
		schem.Line(schem.Pt(-resHeight*0.8, -railLead), schem.Pt(resHeight*0.8, -railLead)),
	)
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}

// TextLabel is a free-standing text label. The cursor does not move.
//
// Anchors: start.
func TextLabel(text string) *schem.Element {
	e := schem.NewElement("label")
	e.Add(schem.Label(schem.Pt(0, 0), text))
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}

// Antenna is a mast with a V top.
//
// Anchors: start.
func Antenna() *schem.Element {
	e := schem.NewElement("antenna")
	const mast = 0.6
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(0, mast)),
		schem.Line(schem.Pt(-0.25, mast+0.3), schem.Pt(0, mast), schem.Pt(0.25, mast+0.3)),
	)
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}
