package schem

import "testing"

func TestEmptyBBox(t *testing.T) {
	b := EmptyBBox()
	if !b.IsEmpty() {
		t.Error("EmptyBBox().IsEmpty() = false")
	}
	if (BBox{XMin: 0, YMin: 0, XMax: 1, YMax: 1}).IsEmpty() {
		t.Error("unit box reported empty")
	}
}

func TestBBoxUnionIdentity(t *testing.T) {
	b := BBox{XMin: -1, YMin: 0, XMax: 2, YMax: 3}
	if got := EmptyBBox().Union(b); got != b {
		t.Errorf("empty ∪ b = %+v, want %+v", got, b)
	}
	if got := b.Union(EmptyBBox()); got != b {
		t.Errorf("b ∪ empty = %+v, want %+v", got, b)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := BBox{XMin: 0, YMin: 0, XMax: 1, YMax: 1}
	b := BBox{XMin: -1, YMin: 0.5, XMax: 0.5, YMax: 2}
	got := a.Union(b)
	want := BBox{XMin: -1, YMin: 0, XMax: 1, YMax: 2}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestBBoxExpand(t *testing.T) {
	b := BBox{XMin: 0, YMin: 0, XMax: 1, YMax: 1}.Expand(0.25)
	want := BBox{XMin: -0.25, YMin: -0.25, XMax: 1.25, YMax: 1.25}
	if b != want {
		t.Errorf("Expand = %+v, want %+v", b, want)
	}
}

func TestBBoxDimensions(t *testing.T) {
	b := BBox{XMin: -1, YMin: 2, XMax: 3, YMax: 5}
	if got := b.Width(); got != 4 {
		t.Errorf("Width = %v", got)
	}
	if got := b.Height(); got != 3 {
		t.Errorf("Height = %v", got)
	}
}

func TestPointsBBoxSkipsGaps(t *testing.T) {
	b := pointsBBox([]Point{Pt(0, 0), Gap, Pt(2, 1)})
	want := BBox{XMin: 0, YMin: 0, XMax: 2, YMax: 1}
	if b != want {
		t.Errorf("pointsBBox = %+v, want %+v", b, want)
	}
}

func TestPolyMirrorReversesWinding(t *testing.T) {
	p := Poly(Pt(0, 0), Pt(1, 0), Pt(0.5, 1))
	m := p.Mirror(0.5).(*SegmentPoly)
	want := []Point{Pt(0.5, 1), Pt(0, 0), Pt(1, 0)}
	for i := range want {
		if !pointsAlmostEqual(m.Verts[i], want[i]) {
			t.Errorf("verts[%d] = %v, want %v", i, m.Verts[i], want[i])
		}
	}
}

func TestPolyToGlobalScalesCornerRadius(t *testing.T) {
	p := Poly(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)).WithCornerRadius(0.1)
	g := p.ToGlobal(Transform{Zoom: 2}, Style{}).(*SegmentPoly)
	if !almostEqual(g.CornerRadius, 0.2) {
		t.Errorf("CornerRadius = %v, want 0.2", g.CornerRadius)
	}
}
