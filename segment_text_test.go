package schem

import "testing"

// fixedMeasurer reports constant extents in points.
type fixedMeasurer struct {
	w, h float64
}

func (m fixedMeasurer) Measure(text, font string, size float64) (float64, float64) {
	return m.w, m.h
}

func TestTextBoundsAlignment(t *testing.T) {
	// 36x18 points at 2/72 units per point: 1.0 x 0.5 drawing units.
	meas := fixedMeasurer{w: 36, h: 18}
	m := TextBBoxMargin

	tests := []struct {
		name  string
		align Align
		want  BBox
	}{
		{
			"left bottom",
			Align{H: HLeft, V: VBottom},
			BBox{XMin: -m, YMin: -m, XMax: 1 + m, YMax: 0.5 + m},
		},
		{
			"center center",
			Align{H: HCenter, V: VCenter},
			BBox{XMin: -0.5 - m, YMin: -0.25 - m, XMax: 0.5 + m, YMax: 0.25 + m},
		},
		{
			"right top",
			Align{H: HRight, V: VTop},
			BBox{XMin: -1 - m, YMin: -0.5 - m, XMax: m, YMax: m},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := Label(Pt(0, 0), "hello").WithAlign(tt.align)
			seg.Measurer = meas
			got := seg.Bounds()
			if !bboxAlmostEqual(got, tt.want, 1e-9) {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTextBoundsMoveWithAnchor(t *testing.T) {
	seg := Label(Pt(2, 3), "x")
	seg.Measurer = fixedMeasurer{w: 36, h: 36}
	b := seg.Bounds()
	cx, cy := (b.XMin+b.XMax)/2, (b.YMin+b.YMax)/2
	if !almostEqual(cx, 2) || !almostEqual(cy, 3) {
		t.Errorf("centered bbox center = (%v, %v), want (2, 3)", cx, cy)
	}
}

func TestTextMirrorMovesAnchorOnly(t *testing.T) {
	seg := Label(Pt(1, 0), "out").WithRotation(45)
	m := seg.Mirror(0).(*SegmentText)
	if m.Pos != Pt(-1, 0) {
		t.Errorf("Pos = %v, want (-1,0)", m.Pos)
	}
	if m.Text != "out" || m.Rotation != 45 {
		t.Errorf("text attributes changed: %+v", m)
	}
}

func TestTextToGlobalKeepsRotation(t *testing.T) {
	seg := Label(Pt(0, 0), "label")
	tf := Transform{Theta: 90, Shift: Pt(1, 1), Zoom: 1}
	g := seg.ToGlobal(tf, Style{}).(*SegmentText)
	if g.Rotation != 0 {
		t.Errorf("Rotation = %v, want 0 (labels stay screen-aligned)", g.Rotation)
	}
	if !pointsAlmostEqual(g.Pos, Pt(1, 1)) {
		t.Errorf("Pos = %v, want (1,1)", g.Pos)
	}
}

func TestApproxMeasurer(t *testing.T) {
	var m approxMeasurer
	w1, h := m.Measure("i", "sans-serif", 12)
	w2, _ := m.Measure("W", "sans-serif", 12)
	if w1 <= 0 || h <= 0 {
		t.Fatalf("Measure(i) = (%v, %v)", w1, h)
	}
	if w2 <= w1 {
		t.Errorf("W (%v) should be wider than i (%v)", w2, w1)
	}

	// Two lines stack.
	_, h1 := m.Measure("a", "sans-serif", 12)
	_, h2 := m.Measure("a\nb", "sans-serif", 12)
	if h2 <= h1 {
		t.Errorf("two-line height %v should exceed one-line %v", h2, h1)
	}
}

func TestSetTextMeasurer(t *testing.T) {
	defer SetTextMeasurer(nil)

	SetTextMeasurer(fixedMeasurer{w: 7, h: 9})
	w, h := Measurer().Measure("anything", "f", 10)
	if w != 7 || h != 9 {
		t.Errorf("Measure = (%v, %v), want (7, 9)", w, h)
	}

	SetTextMeasurer(nil)
	if _, ok := Measurer().(approxMeasurer); !ok {
		t.Errorf("Measurer() = %T, want approxMeasurer", Measurer())
	}
}
