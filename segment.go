package schem

// Segment is one indivisible drawable unit of an Element. A segment is
// authored in local element coordinates; Mirror, Flip and ToGlobal
// return new values, never mutate.
//
// Segment is a sealed interface: the variants live in this package and
// element catalogs build them through their exported constructors.
type Segment interface {
	// Bounds returns the bounding box of the untransformed segment.
	Bounds() BBox

	// Mirror returns a copy reflected about the vertical line
	// x = axisX. Where point order is directional (line paths, polygon
	// vertices) the order is reversed so the path still reads
	// left-to-right; winding-sensitive tags (arc arrows, start/end
	// references) are remapped.
	Mirror(axisX float64) Segment

	// Flip returns a copy reflected about the x-axis.
	Flip() Segment

	// ToGlobal returns a copy transformed into global coordinates via
	// tf, with the style override chain collapsed against def.
	ToGlobal(tf Transform, def Style) Segment

	// Draw transforms the segment with tf, resolves style against def,
	// and emits it to surf.
	Draw(surf Surface, tf Transform, def Style) error

	// validate reports construction-time geometry errors. It also
	// seals the interface.
	validate() error
}

// SegmentLine is a straight polyline through Path. The path may contain
// Gap markers splitting it into disjoint strokes. When Style.Fill is
// set and the transformed path is closed (contains a repeated point),
// the path is filled; an open path silently suppresses the fill.
type SegmentLine struct {
	Path  []Point
	Style Style
}

// Line builds a polyline segment through the given points.
func Line(pts ...Point) *SegmentLine {
	return &SegmentLine{Path: pts}
}

// WithStyle returns the segment with its style overrides replaced.
func (s *SegmentLine) WithStyle(st Style) *SegmentLine {
	c := *s
	c.Style = st
	return &c
}

// End returns the last point of the untransformed path.
func (s *SegmentLine) End() Point {
	return s.Path[len(s.Path)-1]
}

// Bounds implements Segment.
func (s *SegmentLine) Bounds() BBox {
	return pointsBBox(s.Path)
}

// Mirror implements Segment. The path order is reversed so that
// traversal direction survives the reflection.
func (s *SegmentLine) Mirror(axisX float64) Segment {
	path := make([]Point, len(s.Path))
	for i, p := range s.Path {
		path[len(path)-1-i] = p.MirrorX(axisX)
	}
	return &SegmentLine{Path: path, Style: s.Style}
}

// Flip implements Segment.
func (s *SegmentLine) Flip() Segment {
	path := make([]Point, len(s.Path))
	for i, p := range s.Path {
		path[i] = p.Flip()
	}
	return &SegmentLine{Path: path, Style: s.Style}
}

// ToGlobal implements Segment.
func (s *SegmentLine) ToGlobal(tf Transform, def Style) Segment {
	return &SegmentLine{
		Path:  tf.ApplyAll(s.Path),
		Style: s.Style.Resolve(def, zorderLine).asStyle(),
	}
}

// Draw implements Segment.
func (s *SegmentLine) Draw(surf Surface, tf Transform, def Style) error {
	if err := s.validate(); err != nil {
		return err
	}
	st := s.Style.Resolve(def, zorderLine)
	path := tf.ApplyAll(s.Path)

	if st.Fill != "" && !pathClosed(path) {
		// Nothing to fill on an open path.
		Logger().Warn("schem: fill suppressed on open path", "points", len(path))
		st.Fill = ""
	}

	for _, stroke := range splitGaps(path) {
		if st.Fill != "" {
			surf.Polygon(stroke, false, st)
		} else {
			surf.Polyline(stroke, st)
		}
	}
	return nil
}

func (s *SegmentLine) validate() error {
	return nil
}

// pathClosed reports whether the point sequence revisits a coordinate,
// which is how a fillable (closed) path is detected. Uses a seen-set
// over exact coordinates, O(n).
func pathClosed(pts []Point) bool {
	seen := make(map[Point]struct{}, len(pts))
	for _, p := range pts {
		if p.IsGap() {
			continue
		}
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// splitGaps splits a path at Gap markers into contiguous strokes.
// Strokes shorter than two points are dropped.
func splitGaps(pts []Point) [][]Point {
	var out [][]Point
	start := 0
	flush := func(end int) {
		if end-start >= 2 {
			out = append(out, pts[start:end])
		}
	}
	for i, p := range pts {
		if p.IsGap() {
			flush(i)
			start = i + 1
		}
	}
	flush(len(pts))
	return out
}
