package schem

// Text bounding-box tuning. The point-to-drawing-unit factor keeps
// label point sizes independent of the drawing's physical scale; the
// margin pads the measured extent. Both are empirical values tuned for
// the default sans font and exposed as variables so callers with other
// fonts can adjust.
var (
	// TextUnitsPerPoint converts typographic points to drawing units.
	TextUnitsPerPoint = 2.0 / 72.0

	// TextBBoxMargin pads text bounding boxes on every side, in
	// drawing units.
	TextBBoxMargin = 0.1
)

// SegmentText is a text label anchored at Pos. Alignment shifts the
// bounding box around the anchor without changing its size. Extents
// come from the active TextMeasurer.
type SegmentText struct {
	Pos      Point
	Text     string
	Align    Align
	Rotation float64
	Style    Style

	// Measurer overrides the package-wide measurer when non-nil.
	Measurer TextMeasurer
}

// Label builds a centered text segment at pos.
func Label(pos Point, text string) *SegmentText {
	return &SegmentText{
		Pos: pos, Text: text,
		Align: Align{H: HCenter, V: VCenter},
	}
}

// WithAlign returns the segment with the given alignment.
func (s *SegmentText) WithAlign(a Align) *SegmentText {
	c := *s
	c.Align = a
	return &c
}

// WithRotation returns the segment rotated by deg degrees.
func (s *SegmentText) WithRotation(deg float64) *SegmentText {
	c := *s
	c.Rotation = deg
	return &c
}

// WithStyle returns the segment with its style overrides replaced.
func (s *SegmentText) WithStyle(st Style) *SegmentText {
	c := *s
	c.Style = st
	return &c
}

// End returns the untransformed anchor position.
func (s *SegmentText) End() Point {
	return s.Pos
}

func (s *SegmentText) measurer() TextMeasurer {
	if s.Measurer != nil {
		return s.Measurer
	}
	return Measurer()
}

// Bounds implements Segment. The measured point extents are converted
// to drawing units, shifted per the alignment, and padded by
// TextBBoxMargin.
func (s *SegmentText) Bounds() BBox {
	st := s.Style.Resolve(Style{}, zorderText)
	w, h := s.measurer().Measure(s.Text, st.Font, st.FontSize)
	w *= TextUnitsPerPoint
	h *= TextUnitsPerPoint

	x, y := s.Pos.X, s.Pos.Y
	switch s.Align.H {
	case HCenter:
		x -= w / 2
	case HRight:
		x -= w
	}
	switch s.Align.V {
	case VCenter:
		y -= h / 2
	case VTop:
		y -= h
	}
	m := TextBBoxMargin
	return BBox{XMin: x - m, YMin: y - m, XMax: x + w + m, YMax: y + h + m}
}

// Mirror implements Segment. Only the anchor moves; text is never
// drawn mirrored.
func (s *SegmentText) Mirror(axisX float64) Segment {
	c := *s
	c.Pos = s.Pos.MirrorX(axisX)
	return &c
}

// Flip implements Segment.
func (s *SegmentText) Flip() Segment {
	c := *s
	c.Pos = s.Pos.Flip()
	return &c
}

// ToGlobal implements Segment. Rotation is kept as authored; transform
// rotation does not rotate labels, which stay screen-aligned.
func (s *SegmentText) ToGlobal(tf Transform, def Style) Segment {
	c := *s
	c.Pos = tf.Apply(s.Pos, RefNone)
	c.Style = s.Style.Resolve(def, zorderText).asStyle()
	return &c
}

// Draw implements Segment.
func (s *SegmentText) Draw(surf Surface, tf Transform, def Style) error {
	if err := s.validate(); err != nil {
		return err
	}
	st := s.Style.Resolve(def, zorderText)
	surf.Text(s.Text, tf.Apply(s.Pos, RefNone), s.Align, s.Rotation, st)
	return nil
}

func (s *SegmentText) validate() error {
	return nil
}
