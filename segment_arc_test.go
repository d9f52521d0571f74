package schem

import (
	"errors"
	"math"
	"testing"
)

func bboxAlmostEqual(a, b BBox, tol float64) bool {
	return math.Abs(a.XMin-b.XMin) < tol &&
		math.Abs(a.YMin-b.YMin) < tol &&
		math.Abs(a.XMax-b.XMax) < tol &&
		math.Abs(a.YMax-b.YMax) < tol
}

func TestArcBoundsHalfCircle(t *testing.T) {
	// Upper half of a unit circle (full axes 2x2).
	seg := Arc(Pt(0, 0), 2, 2, 0, 180)
	got := seg.Bounds()
	want := BBox{XMin: -1, YMin: 0, XMax: 1, YMax: 1}
	if !bboxAlmostEqual(got, want, 1e-3) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestArcBoundsFullEllipse(t *testing.T) {
	seg := Arc(Pt(1, 2), 4, 2, 0, 360)
	got := seg.Bounds()
	want := BBox{XMin: -1, YMin: 1, XMax: 3, YMax: 3}
	if !bboxAlmostEqual(got, want, 1e-3) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestArcBoundsRotatedEllipse(t *testing.T) {
	// A 4x2 ellipse rotated 90 degrees bounds like a 2x4 one.
	seg := Arc(Pt(0, 0), 4, 2, 0, 360).WithAngle(90)
	got := seg.Bounds()
	want := BBox{XMin: -1, YMin: -2, XMax: 1, YMax: 2}
	if !bboxAlmostEqual(got, want, 1e-3) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestArcMirror(t *testing.T) {
	seg := Arc(Pt(1, 0), 2, 2, 30, 120).WithArrow(ArrowCW)
	m := seg.Mirror(0).(*SegmentArc)
	if m.Center != Pt(-1, 0) {
		t.Errorf("Center = %v, want (-1,0)", m.Center)
	}
	if m.Theta1 != 60 || m.Theta2 != 150 {
		t.Errorf("sweep = (%v, %v), want (60, 150)", m.Theta1, m.Theta2)
	}
	if m.Arrow != ArrowCCW {
		t.Errorf("Arrow = %v, want ccw", m.Arrow)
	}
}

func TestArcFlip(t *testing.T) {
	seg := Arc(Pt(0, 1), 2, 2, 30, 120).WithArrow(ArrowCCW)
	f := seg.Flip().(*SegmentArc)
	if f.Center != Pt(0, -1) {
		t.Errorf("Center = %v, want (0,-1)", f.Center)
	}
	if f.Theta1 != -120 || f.Theta2 != -30 {
		t.Errorf("sweep = (%v, %v), want (-120, -30)", f.Theta1, f.Theta2)
	}
	if f.Arrow != ArrowCW {
		t.Errorf("Arrow = %v, want cw", f.Arrow)
	}
}

func TestArcMirrorInvolution(t *testing.T) {
	seg := Arc(Pt(0.5, 0), 1.5, 1, 20, 200).WithArrow(ArrowCW)
	m := seg.Mirror(0.25).(*SegmentArc).Mirror(0.25).(*SegmentArc)
	if !pointsAlmostEqual(m.Center, seg.Center) {
		t.Errorf("Center = %v, want %v", m.Center, seg.Center)
	}
	if !almostEqual(m.Theta1, seg.Theta1) || !almostEqual(m.Theta2, seg.Theta2) {
		t.Errorf("sweep = (%v, %v), want (%v, %v)", m.Theta1, m.Theta2, seg.Theta1, seg.Theta2)
	}
	if m.Arrow != seg.Arrow {
		t.Errorf("Arrow = %v, want %v", m.Arrow, seg.Arrow)
	}
}

func TestArcToGlobalFoldsRotation(t *testing.T) {
	seg := Arc(Pt(1, 0), 2, 1, 0, 90).WithAngle(15)
	tf := Transform{Theta: 30, Shift: Pt(5, 5), Zoom: 2}
	g := seg.ToGlobal(tf, Style{}).(*SegmentArc)
	if g.Angle != 45 {
		t.Errorf("Angle = %v, want 45", g.Angle)
	}
	if g.Width != 4 || g.Height != 2 {
		t.Errorf("axes = (%v, %v), want (4, 2)", g.Width, g.Height)
	}
	// Sweep bounds stay expressed on the unrotated ellipse.
	if g.Theta1 != 0 || g.Theta2 != 90 {
		t.Errorf("sweep = (%v, %v), want (0, 90)", g.Theta1, g.Theta2)
	}
}

func TestCircleRefMirrorsButNotFlips(t *testing.T) {
	seg := Circle(Pt(1, 0), 0.1).WithRef(RefEnd)
	if got := seg.Mirror(0.5).(*SegmentCircle).EndRef; got != RefStart {
		t.Errorf("Mirror EndRef = %v, want start", got)
	}
	if got := seg.Flip().(*SegmentCircle).EndRef; got != RefEnd {
		t.Errorf("Flip EndRef = %v, want end", got)
	}
}

func TestCircleToGlobalUsesRef(t *testing.T) {
	tf := Transform{LocalShift: Pt(1, 0), Zoom: 1}
	seg := Circle(Pt(0, 0), 0.5).WithRef(RefEnd)
	g := seg.ToGlobal(tf, Style{}).(*SegmentCircle)
	if !pointsAlmostEqual(g.Center, Pt(2, 0)) {
		t.Errorf("Center = %v, want (2,0)", g.Center)
	}
}

func TestArrowDegenerate(t *testing.T) {
	seg := Arrow(Pt(1, 1), Pt(1, 1))
	err := seg.Draw(&recordingSurface{}, Identity(), Style{})
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestArrowMirrorSwapsRef(t *testing.T) {
	seg := Arrow(Pt(-0.3, 0), Pt(0, 0)).WithRef(RefEnd)
	m := seg.Mirror(0.5).(*SegmentArrow)
	if m.EndRef != RefStart {
		t.Errorf("EndRef = %v, want start", m.EndRef)
	}
	if !pointsAlmostEqual(m.Tail, Pt(1.3, 0)) || !pointsAlmostEqual(m.Head, Pt(1, 0)) {
		t.Errorf("arrow = %v -> %v", m.Tail, m.Head)
	}
}
