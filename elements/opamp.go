package elements

import (
	"math"

	"github.com/gogpu/schem"
)

// Op-amp proportions: an equilateral-ish triangle with the back edge
// oaBack tall.
var (
	oaBack    = 2.5
	oaLen     = oaBack * math.Sqrt(3) / 2
	oaSignX   = oaLen / 8
	oaSignLen = 0.2
)

// Opamp is an operational amplifier triangle with +/- input marks.
// The non-inverting (+) input is in2 at the lower left.
//
// Anchors: in1, in2, out, center, vd, vs, n1, n2, n1a, n2a.
func Opamp() *schem.Element {
	e := schem.NewElement("opamp")
	e.Add(
		schem.Line(
			schem.Pt(0, 0),
			schem.Pt(0, oaBack/2),
			schem.Pt(oaLen, 0),
			schem.Pt(0, -oaBack/2),
			schem.Pt(0, 0),
			schem.Gap,
			schem.Pt(oaLen, 0),
		),
		// Minus mark at the upper (inverting) input.
		schem.Line(schem.Pt(oaSignX-oaSignLen/2, oaBack/4), schem.Pt(oaSignX+oaSignLen/2, oaBack/4)),
		// Plus mark at the lower (non-inverting) input.
		schem.Line(schem.Pt(oaSignX-oaSignLen/2, -oaBack/4), schem.Pt(oaSignX+oaSignLen/2, -oaBack/4)),
		schem.Line(schem.Pt(oaSignX, -oaBack/4-oaSignLen/2), schem.Pt(oaSignX, -oaBack/4+oaSignLen/2)),
	)

	e.SetAnchor("out", schem.Pt(oaLen, 0))
	e.SetAnchor("in1", schem.Pt(0, oaBack/4))
	e.SetAnchor("in2", schem.Pt(0, -oaBack/4))
	e.SetAnchor("center", schem.Pt(oaLen/2, 0))
	e.SetAnchor("vd", schem.Pt(oaLen/3, 0.84))
	e.SetAnchor("vs", schem.Pt(oaLen/3, -0.84))
	e.SetAnchor("n1", schem.Pt(oaLen*2/3, -0.42))
	e.SetAnchor("n2", schem.Pt(oaLen*2/3, 0.42))
	e.SetAnchor("n1a", schem.Pt(oaLen*0.9, -0.13))
	e.SetAnchor("n2a", schem.Pt(oaLen*0.9, 0.13))
	e.SetDrop(schem.Pt(oaLen, 0))
	return e
}
