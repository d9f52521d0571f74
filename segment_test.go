package schem

import (
	"testing"
)

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	polylines [][]Point
	polygons  [][]Point
	circles   []Point
	arcs      []float64 // theta1, theta2 pairs
	arrows    [][2]Point
	texts     []string
}

func (r *recordingSurface) Polyline(pts []Point, st ResolvedStyle) {
	r.polylines = append(r.polylines, pts)
}

func (r *recordingSurface) Polygon(pts []Point, closed bool, st ResolvedStyle) {
	r.polygons = append(r.polygons, pts)
}

func (r *recordingSurface) Circle(center Point, radius float64, st ResolvedStyle) {
	r.circles = append(r.circles, center)
}

func (r *recordingSurface) Arc(center Point, w, h, theta1, theta2, angle float64, arrow ArrowDir, st ResolvedStyle) {
	r.arcs = append(r.arcs, theta1, theta2)
}

func (r *recordingSurface) Arrow(tail, head Point, hw, hl float64, st ResolvedStyle) {
	r.arrows = append(r.arrows, [2]Point{tail, head})
}

func (r *recordingSurface) Text(s string, pos Point, align Align, rotation float64, st ResolvedStyle) {
	r.texts = append(r.texts, s)
}

func TestLineMirrorReversesPath(t *testing.T) {
	seg := Line(Pt(0, 0), Pt(1, 0), Pt(1, 1))
	m := seg.Mirror(0.5).(*SegmentLine)
	want := []Point{Pt(0, 1), Pt(0, 0), Pt(1, 0)}
	if len(m.Path) != len(want) {
		t.Fatalf("len = %d, want %d", len(m.Path), len(want))
	}
	for i := range want {
		if !pointsAlmostEqual(m.Path[i], want[i]) {
			t.Errorf("path[%d] = %v, want %v", i, m.Path[i], want[i])
		}
	}
}

func TestLineMirrorInvolution(t *testing.T) {
	seg := Line(Pt(0, 0), Pt(0.3, 0.5), Pt(1, 0))
	m := seg.Mirror(0.5).(*SegmentLine).Mirror(0.5).(*SegmentLine)
	for i := range seg.Path {
		if !pointsAlmostEqual(m.Path[i], seg.Path[i]) {
			t.Errorf("path[%d] = %v, want %v", i, m.Path[i], seg.Path[i])
		}
	}
}

func TestLineFlip(t *testing.T) {
	seg := Line(Pt(0, 1), Pt(1, -2))
	f := seg.Flip().(*SegmentLine)
	if f.Path[0] != Pt(0, -1) || f.Path[1] != Pt(1, 2) {
		t.Errorf("flip path = %v", f.Path)
	}
}

func TestLineFillSuppressedOnOpenPath(t *testing.T) {
	surf := &recordingSurface{}
	seg := Line(Pt(0, 0), Pt(1, 0), Pt(1, 1)).
		WithStyle(Style{Fill: Some("red")})
	if err := seg.Draw(surf, Identity(), Style{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(surf.polygons) != 0 {
		t.Errorf("open path was filled: %v", surf.polygons)
	}
	if len(surf.polylines) != 1 {
		t.Errorf("polylines = %d, want 1", len(surf.polylines))
	}
}

func TestLineFillAppliedOnClosedPath(t *testing.T) {
	surf := &recordingSurface{}
	seg := Line(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 0)).
		WithStyle(Style{Fill: Some("red")})
	if err := seg.Draw(surf, Identity(), Style{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(surf.polygons) != 1 {
		t.Errorf("polygons = %d, want 1", len(surf.polygons))
	}
	if len(surf.polylines) != 0 {
		t.Errorf("polylines = %d, want 0", len(surf.polylines))
	}
}

func TestLineGapSplitsStrokes(t *testing.T) {
	surf := &recordingSurface{}
	seg := Line(Pt(0, 0), Pt(1, 0), Gap, Pt(2, 0), Pt(3, 0))
	if err := seg.Draw(surf, Identity(), Style{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(surf.polylines) != 2 {
		t.Fatalf("polylines = %d, want 2", len(surf.polylines))
	}
	if surf.polylines[0][1] != Pt(1, 0) || surf.polylines[1][0] != Pt(2, 0) {
		t.Errorf("strokes = %v", surf.polylines)
	}
}

func TestLineGapDropsShortStroke(t *testing.T) {
	surf := &recordingSurface{}
	// The middle stroke is a single point, too short to draw.
	seg := Line(Pt(0, 0), Pt(1, 0), Gap, Pt(5, 5), Gap, Pt(2, 0), Pt(3, 0))
	if err := seg.Draw(surf, Identity(), Style{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(surf.polylines) != 2 {
		t.Errorf("polylines = %d, want 2", len(surf.polylines))
	}
}

func TestPathClosed(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want bool
	}{
		{"open", []Point{Pt(0, 0), Pt(1, 0)}, false},
		{"closed triangle", []Point{Pt(0, 0), Pt(1, 0), Pt(0.5, 1), Pt(0, 0)}, true},
		{"interior revisit", []Point{Pt(0, 0), Pt(1, 0), Pt(0, 0), Pt(2, 2)}, true},
		{"gaps ignored", []Point{Pt(0, 0), Gap, Pt(1, 0), Gap, Pt(2, 0)}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathClosed(tt.pts); got != tt.want {
				t.Errorf("pathClosed(%v) = %v, want %v", tt.pts, got, tt.want)
			}
		})
	}
}

func TestLineToGlobalBakesStyle(t *testing.T) {
	def := Style{Color: Some("blue"), LineWidth: Some(3.0)}
	seg := Line(Pt(0, 0), Pt(1, 0))
	g := seg.ToGlobal(Identity(), def).(*SegmentLine)

	// Re-resolving against an empty default must reproduce the values.
	st := g.Style.Resolve(Style{}, zorderLine)
	if st.Color != "blue" {
		t.Errorf("Color = %q, want blue", st.Color)
	}
	if st.LineWidth != 3.0 {
		t.Errorf("LineWidth = %v, want 3", st.LineWidth)
	}
}
