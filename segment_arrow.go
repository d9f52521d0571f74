package schem

import "fmt"

// Default arrowhead proportions in drawing units.
const (
	defaultHeadWidth  = 0.2
	defaultHeadLength = 0.2
)

// SegmentArrow is a straight arrow from Tail to Head with a filled
// arrowhead. Like SegmentCircle, it carries an endpoint reference for
// lead-extension handling.
type SegmentArrow struct {
	Tail, Head Point
	HeadWidth  float64
	HeadLength float64
	EndRef     Ref
	Style      Style
}

// Arrow builds an arrow segment with default head proportions.
func Arrow(tail, head Point) *SegmentArrow {
	return &SegmentArrow{
		Tail: tail, Head: head,
		HeadWidth:  defaultHeadWidth,
		HeadLength: defaultHeadLength,
	}
}

// WithHead returns the segment with explicit arrowhead proportions.
func (s *SegmentArrow) WithHead(width, length float64) *SegmentArrow {
	c := *s
	c.HeadWidth = width
	c.HeadLength = length
	return &c
}

// WithStyle returns the segment with its style overrides replaced.
func (s *SegmentArrow) WithStyle(st Style) *SegmentArrow {
	c := *s
	c.Style = st
	return &c
}

// WithRef returns the segment tagged with the given endpoint reference.
func (s *SegmentArrow) WithRef(ref Ref) *SegmentArrow {
	c := *s
	c.EndRef = ref
	return &c
}

// End returns the untransformed head.
func (s *SegmentArrow) End() Point {
	return s.Head
}

// Bounds implements Segment. The box is padded vertically by the head
// width so the arrowhead flare is covered.
func (s *SegmentArrow) Bounds() BBox {
	hw := s.HeadWidth
	if hw == 0 {
		hw = 0.1
	}
	b := pointsBBox([]Point{s.Tail, s.Head})
	b.YMin -= hw
	b.YMax += hw
	return b
}

// Mirror implements Segment. The endpoint reference swaps.
func (s *SegmentArrow) Mirror(axisX float64) Segment {
	c := *s
	c.Tail = s.Tail.MirrorX(axisX)
	c.Head = s.Head.MirrorX(axisX)
	c.EndRef = s.EndRef.mirror()
	return &c
}

// Flip implements Segment. The endpoint reference does not swap.
func (s *SegmentArrow) Flip() Segment {
	c := *s
	c.Tail = s.Tail.Flip()
	c.Head = s.Head.Flip()
	return &c
}

// ToGlobal implements Segment.
func (s *SegmentArrow) ToGlobal(tf Transform, def Style) Segment {
	return &SegmentArrow{
		Tail:       tf.Apply(s.Tail, s.EndRef),
		Head:       tf.Apply(s.Head, s.EndRef),
		HeadWidth:  s.HeadWidth * tf.Zoom,
		HeadLength: s.HeadLength * tf.Zoom,
		EndRef:     s.EndRef,
		Style:      s.Style.Resolve(def, zorderShape).asStyle(),
	}
}

// Draw implements Segment.
func (s *SegmentArrow) Draw(surf Surface, tf Transform, def Style) error {
	if err := s.validate(); err != nil {
		return err
	}
	st := s.Style.Resolve(def, zorderShape)
	surf.Arrow(tf.Apply(s.Tail, s.EndRef), tf.Apply(s.Head, s.EndRef),
		s.HeadWidth*tf.Zoom, s.HeadLength*tf.Zoom, st)
	return nil
}

// validate rejects a zero-length arrow: with coincident tail and head
// no direction for the arrowhead can be derived.
func (s *SegmentArrow) validate() error {
	if s.Tail == s.Head {
		return fmt.Errorf("%w: arrow tail and head coincide at %v", ErrDegenerateGeometry, s.Tail)
	}
	return nil
}
