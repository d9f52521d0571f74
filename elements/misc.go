package elements

import "github.com/gogpu/schem"

// Speaker is a driver box with a cone, two inputs on the left.
//
// Anchors: in1, in2.
func Speaker() *schem.Element {
	const sph = 0.5
	e := schem.NewElement("speaker")
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(resHeight, 0)),
		schem.Line(schem.Pt(0, -sph), schem.Pt(resHeight, -sph)),
		schem.Poly(
			schem.Pt(resHeight, sph/2),
			schem.Pt(resHeight, -sph*1.5),
			schem.Pt(resHeight*2, -sph*1.5),
			schem.Pt(resHeight*2, sph/2),
		),
		schem.OpenPoly(
			schem.Pt(resHeight*2, sph/2),
			schem.Pt(resHeight*3.5, sph*1.25),
			schem.Pt(resHeight*3.5, -sph*2.25),
			schem.Pt(resHeight*2, -sph*1.5),
		),
	)
	e.SetAnchor("in1", schem.Pt(0, 0))
	e.SetAnchor("in2", schem.Pt(0, -sph))
	e.SetDrop(schem.Pt(0, -sph))
	return e
}

// Mic is a microphone capsule: a flat face with a half-circle shell,
// two inputs on the right.
//
// Anchors: in1, in2.
func Mic() *schem.Element {
	const sph = 0.5
	e := schem.NewElement("mic")
	e.Add(
		schem.Line(schem.Pt(0, 0), schem.Pt(resHeight, 0)),
		schem.Line(schem.Pt(0, -sph), schem.Pt(resHeight, -sph)),
		schem.Line(schem.Pt(-resHeight*2, resHeight), schem.Pt(-resHeight*2, -resHeight*3)),
		schem.Arc(schem.Pt(-resHeight*2, -resHeight), resHeight*4, resHeight*4, 270, 90),
	)
	e.SetAnchor("in1", schem.Pt(resHeight, 0))
	e.SetAnchor("in2", schem.Pt(resHeight, -sph))
	e.SetDrop(schem.Pt(0, -sph))
	return e
}

// Motor is a two-terminal circle between shaft plates.
//
// Anchors: start, end.
func Motor() *schem.Element {
	const mw = 0.22
	e := schem.NewElement("motor")
	e.Add(
		schem.Line(schem.Pt(mw, 0), schem.Pt(mw+0.05, 0)),
		schem.Line(schem.Pt(1-mw-0.05, 0), schem.Pt(1-mw, 0)),
		schem.Circle(schem.Pt(0.5, 0), 0.5-mw),
		schem.Line(schem.Pt(0, -mw), schem.Pt(0, mw), schem.Pt(mw, mw), schem.Pt(mw, -mw), schem.Pt(0, -mw)),
		schem.Line(schem.Pt(1-mw, -mw), schem.Pt(1-mw, mw), schem.Pt(1, mw), schem.Pt(1, -mw), schem.Pt(1-mw, -mw)),
	)
	return e.SetEndpoints(schem.Pt(1, 0))
}

// LoopCurrent is a circular arc with an arrowhead marking a loop
// current's direction. Direction is counter-clockwise unless mirrored.
//
// Anchors: start.
func LoopCurrent() *schem.Element {
	e := schem.NewElement("loop_current")
	e.Add(schem.Arc(schem.Pt(0, 0), 0.75, 0.75, 35, 325).WithArrow(schem.ArrowCCW))
	e.SetAnchor("start", schem.Pt(0, 0))
	e.SetDrop(schem.Pt(0, 0))
	return e.SetTheta(0)
}
