package schem

import "math"

// SegmentPoly is a polygon through Verts, optionally closed and
// optionally drawn with rounded corners.
type SegmentPoly struct {
	Verts        []Point
	Closed       bool
	CornerRadius float64
	Style        Style
}

// Poly builds a closed polygon segment through the given vertices.
func Poly(verts ...Point) *SegmentPoly {
	return &SegmentPoly{Verts: verts, Closed: true}
}

// OpenPoly builds an unclosed polygon segment (drawn as a polyline but
// fillable and styled with join semantics).
func OpenPoly(verts ...Point) *SegmentPoly {
	return &SegmentPoly{Verts: verts, Closed: false}
}

// WithStyle returns the segment with its style overrides replaced.
func (s *SegmentPoly) WithStyle(st Style) *SegmentPoly {
	c := *s
	c.Style = st
	return &c
}

// WithCornerRadius returns the segment with rounded corners of radius r.
func (s *SegmentPoly) WithCornerRadius(r float64) *SegmentPoly {
	c := *s
	c.CornerRadius = r
	return &c
}

// End returns the last vertex of the untransformed polygon.
func (s *SegmentPoly) End() Point {
	return s.Verts[len(s.Verts)-1]
}

// Bounds implements Segment.
func (s *SegmentPoly) Bounds() BBox {
	return pointsBBox(s.Verts)
}

// Mirror implements Segment. Vertex order is reversed so winding
// survives the reflection.
func (s *SegmentPoly) Mirror(axisX float64) Segment {
	verts := make([]Point, len(s.Verts))
	for i, p := range s.Verts {
		verts[len(verts)-1-i] = p.MirrorX(axisX)
	}
	c := *s
	c.Verts = verts
	return &c
}

// Flip implements Segment.
func (s *SegmentPoly) Flip() Segment {
	verts := make([]Point, len(s.Verts))
	for i, p := range s.Verts {
		verts[i] = p.Flip()
	}
	c := *s
	c.Verts = verts
	return &c
}

// ToGlobal implements Segment. The corner radius scales with zoom.
func (s *SegmentPoly) ToGlobal(tf Transform, def Style) Segment {
	return &SegmentPoly{
		Verts:        tf.ApplyAll(s.Verts),
		Closed:       s.Closed,
		CornerRadius: s.CornerRadius * tf.Zoom,
		Style:        s.Style.Resolve(def, zorderShape).asStyle(),
	}
}

// Draw implements Segment.
func (s *SegmentPoly) Draw(surf Surface, tf Transform, def Style) error {
	if err := s.validate(); err != nil {
		return err
	}
	st := s.Style.Resolve(def, zorderShape)
	verts := tf.ApplyAll(s.Verts)
	if s.CornerRadius > 0 {
		verts = roundCorners(verts, s.CornerRadius*tf.Zoom)
	}
	surf.Polygon(verts, s.Closed, st)
	return nil
}

func (s *SegmentPoly) validate() error {
	return nil
}

// roundCorners replaces each corner of a convex polygon with a
// circular arc of the given radius (clamped to fit the shorter
// adjacent edge). Adapted from the proportion-point construction:
// https://stackoverflow.com/questions/24771828
func roundCorners(verts []Point, radius float64) []Point {
	n := len(verts)
	var poly []Point
	for v := n - 1; v >= 0; v-- {
		p1 := verts[v]
		p2 := verts[(v-1+n)%n]
		p3 := verts[(v-2+n)%n]

		d1 := p2.Sub(p1)
		d2 := p2.Sub(p3)

		angle := (math.Atan2(d1.Y, d1.X) - math.Atan2(d2.Y, d2.X)) / 2
		tan := math.Abs(math.Tan(angle))
		if tan == 0 {
			continue
		}
		r := radius
		segment := r / tan

		length1 := d1.Length()
		length2 := d2.Length()
		length := math.Min(length1, length2)
		if segment > length {
			segment = length
			r = length * tan
		}

		proportion := func(p Point, seg, length float64, d Point) Point {
			factor := seg / length
			return Point{X: p.X - d.X*factor, Y: p.Y - d.Y*factor}
		}
		p1cross := proportion(p2, segment, length1, d1)
		p2cross := proportion(p2, segment, length2, d2)

		d := Point{
			X: p2.X*2 - p1cross.X - p2cross.X,
			Y: p2.Y*2 - p1cross.Y - p2cross.Y,
		}
		hyp := math.Hypot(segment, r)
		center := proportion(p2, hyp, d.Length(), d)

		start := math.Atan2(p1cross.Y-center.Y, p1cross.X-center.X)
		end := math.Atan2(p2cross.Y-center.Y, p2cross.X-center.X)
		for end < start {
			end += 2 * math.Pi
		}

		const steps = 100
		for i := 0; i < steps; i++ {
			ph := start + (end-start)*float64(i)/float64(steps-1)
			poly = append(poly, Point{
				X: center.X + math.Cos(ph)*r,
				Y: center.Y + math.Sin(ph)*r,
			})
		}
	}
	if len(poly) > 0 {
		poly = append(poly, poly[0])
	}
	return poly
}
