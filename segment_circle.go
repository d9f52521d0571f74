package schem

// SegmentCircle is a circle of Radius about Center. The EndRef tag
// marks circles used as connector dots after lead extension: it
// controls local-shift handling in the Transform (see Ref) and swaps
// under horizontal mirroring so a dot at an element's input stays at
// the input when the element is drawn mirrored.
type SegmentCircle struct {
	Center Point
	Radius float64
	EndRef Ref
	Style  Style
}

// Circle builds a circle segment.
func Circle(center Point, radius float64) *SegmentCircle {
	return &SegmentCircle{Center: center, Radius: radius}
}

// WithStyle returns the segment with its style overrides replaced.
func (s *SegmentCircle) WithStyle(st Style) *SegmentCircle {
	c := *s
	c.Style = st
	return &c
}

// WithRef returns the segment tagged with the given endpoint reference.
func (s *SegmentCircle) WithRef(ref Ref) *SegmentCircle {
	c := *s
	c.EndRef = ref
	return &c
}

// End returns the untransformed center.
func (s *SegmentCircle) End() Point {
	return s.Center
}

// Bounds implements Segment.
func (s *SegmentCircle) Bounds() BBox {
	return BBox{
		XMin: s.Center.X - s.Radius,
		YMin: s.Center.Y - s.Radius,
		XMax: s.Center.X + s.Radius,
		YMax: s.Center.Y + s.Radius,
	}
}

// Mirror implements Segment. The endpoint reference swaps.
func (s *SegmentCircle) Mirror(axisX float64) Segment {
	c := *s
	c.Center = s.Center.MirrorX(axisX)
	c.EndRef = s.EndRef.mirror()
	return &c
}

// Flip implements Segment. The endpoint reference does not swap.
func (s *SegmentCircle) Flip() Segment {
	c := *s
	c.Center = s.Center.Flip()
	return &c
}

// ToGlobal implements Segment. The radius scales with zoom.
func (s *SegmentCircle) ToGlobal(tf Transform, def Style) Segment {
	return &SegmentCircle{
		Center: tf.Apply(s.Center, s.EndRef),
		Radius: s.Radius * tf.Zoom,
		EndRef: s.EndRef,
		Style:  s.Style.Resolve(def, zorderShape).asStyle(),
	}
}

// Draw implements Segment.
func (s *SegmentCircle) Draw(surf Surface, tf Transform, def Style) error {
	if err := s.validate(); err != nil {
		return err
	}
	st := s.Style.Resolve(def, zorderShape)
	surf.Circle(tf.Apply(s.Center, s.EndRef), s.Radius*tf.Zoom, st)
	return nil
}

func (s *SegmentCircle) validate() error {
	return nil
}
