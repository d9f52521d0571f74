package schem

import "fmt"

// Element is a named, reusable shape: an ordered list of segments in
// local coordinates plus named anchor points and placement parameters.
// Catalog entries construct one Element per call; placement only ever
// transforms copies, so a template shared between placements is never
// mutated. Mirror and Flip likewise build new Elements.
type Element struct {
	name     string
	segments []Segment
	anchors  map[string]Point
	style    Style

	drop   Opt[Point]
	theta  Opt[float64]
	extend bool
	endPt  Point
}

// NewElement creates an empty element with the given catalog name.
func NewElement(name string) *Element {
	return &Element{
		name:    name,
		anchors: make(map[string]Point),
	}
}

// Name returns the element's catalog name.
func (e *Element) Name() string { return e.name }

// Add appends segments to the element's local geometry.
func (e *Element) Add(segs ...Segment) *Element {
	e.segments = append(e.segments, segs...)
	return e
}

// SetAnchor defines a named anchor at a local point.
func (e *Element) SetAnchor(name string, p Point) *Element {
	e.anchors[name] = p
	return e
}

// SetDrop sets the local point where the cursor lands after placement.
func (e *Element) SetDrop(p Point) *Element {
	e.drop = Some(p)
	return e
}

// SetTheta sets a default placement angle in degrees, overriding the
// drawing's current direction (e.g. ground symbols always point down).
func (e *Element) SetTheta(deg float64) *Element {
	e.theta = Some(deg)
	return e
}

// SetStyle sets element-level style defaults applied to every segment
// that has no explicit override of its own.
func (e *Element) SetStyle(st Style) *Element {
	e.style = st
	return e
}

// SetEndpoints marks the element as a stretchable two-terminal device
// whose local geometry runs from the origin to end. At placement time
// the leads absorb extra length through the transform's local shift.
func (e *Element) SetEndpoints(end Point) *Element {
	e.extend = true
	e.endPt = end
	e.anchors["start"] = Point{}
	e.anchors["end"] = end
	return e
}

// TwoTerminal reports whether the element stretches between two
// terminals, and its local end point.
func (e *Element) TwoTerminal() (Point, bool) {
	return e.endPt, e.extend
}

// DefaultTheta returns the element's preferred placement angle, if any.
func (e *Element) DefaultTheta() (float64, bool) {
	return e.theta.Get()
}

// Segments returns the element's local segments. The slice is shared;
// treat it as read-only.
func (e *Element) Segments() []Segment { return e.segments }

// Anchor returns the local coordinates of a named anchor.
// An undefined name is a caller error and returns ErrUnknownAnchor.
func (e *Element) Anchor(name string) (Point, error) {
	p, ok := e.anchors[name]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q on element %q", ErrUnknownAnchor, name, e.name)
	}
	return p, nil
}

// AnchorNames returns the defined anchor names in unspecified order.
func (e *Element) AnchorNames() []string {
	names := make([]string, 0, len(e.anchors))
	for name := range e.anchors {
		names = append(names, name)
	}
	return names
}

// Bounds returns the local bounding box over all segments.
func (e *Element) Bounds() BBox {
	b := EmptyBBox()
	for _, s := range e.segments {
		b = b.Union(s.Bounds())
	}
	return b
}

// mirrorAxis is the vertical line the element reflects about: the
// start/end midline for two-terminal elements (so the terminals map
// onto each other), otherwise the bounding-box center.
func (e *Element) mirrorAxis() float64 {
	if e.extend {
		return e.endPt.X / 2
	}
	b := e.Bounds()
	if b.IsEmpty() {
		return 0
	}
	return (b.XMin + b.XMax) / 2
}

// Mirror returns a new element reflected horizontally. Segments and
// anchors reflect about the same axis, keeping connector geometry and
// anchor names mutually consistent.
func (e *Element) Mirror() *Element {
	axis := e.mirrorAxis()
	out := e.shell()
	for _, s := range e.segments {
		out.segments = append(out.segments, s.Mirror(axis))
	}
	for name, p := range e.anchors {
		out.anchors[name] = p.MirrorX(axis)
	}
	if d, ok := e.drop.Get(); ok {
		out.drop = Some(d.MirrorX(axis))
	}
	if e.extend {
		// The terminals map onto each other about the midline, so the
		// local start/end span is unchanged; only the body reverses.
		out.anchors["start"] = Point{}
		out.anchors["end"] = e.endPt
	}
	return out
}

// Flip returns a new element reflected vertically. Segments and
// anchors flip identically.
func (e *Element) Flip() *Element {
	out := e.shell()
	for _, s := range e.segments {
		out.segments = append(out.segments, s.Flip())
	}
	for name, p := range e.anchors {
		out.anchors[name] = p.Flip()
	}
	if d, ok := e.drop.Get(); ok {
		out.drop = Some(d.Flip())
	}
	out.endPt = e.endPt.Flip()
	if e.extend {
		out.anchors["start"] = Point{}
		out.anchors["end"] = out.endPt
	}
	return out
}

// withLeads returns a copy of a two-terminal element with straight
// lead segments appended on both sides of the body. The leads run into
// negative local space; the transform's local shift slides the whole
// element forward so the leads land between the placement terminals.
func (e *Element) withLeads(lead float64) *Element {
	if !e.extend || lead <= 0 {
		return e
	}
	out := e.shell()
	out.segments = append(out.segments, e.segments...)
	out.segments = append(out.segments,
		Line(Point{X: -lead}, Point{}),
		Line(Point{X: e.endPt.X}, Point{X: e.endPt.X + lead}),
	)
	for name, p := range e.anchors {
		out.anchors[name] = p
	}
	return out
}

// shell copies the element's placement parameters without geometry.
func (e *Element) shell() *Element {
	return &Element{
		name:    e.name,
		anchors: make(map[string]Point, len(e.anchors)),
		style:   e.style,
		drop:    e.drop,
		theta:   e.theta,
		extend:  e.extend,
		endPt:   e.endPt,
	}
}

// Placement is one resolved placement of an element: its concrete
// transform, globally-positioned segments with styles collapsed, and
// global anchor points.
type Placement struct {
	Name      string
	Transform Transform
	Segments  []Segment
	Anchors   map[string]Point
	BBox      BBox

	// Start and End are the global terminal positions. For
	// non-stretchable elements both equal the placement origin and
	// drop point respectively.
	Start, End Point
}

// Anchor returns the global coordinates of a named anchor.
func (p *Placement) Anchor(name string) (Point, error) {
	pt, ok := p.Anchors[name]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q on placement %q", ErrUnknownAnchor, name, p.Name)
	}
	return pt, nil
}

// Place materializes the element at the given transform. Segment
// styles resolve against the element defaults merged over def. The
// element itself is left untouched.
//
// Place fails fast on degenerate geometry; a failed placement aborts
// the drawing since downstream anchors would be undefined.
func (e *Element) Place(tf Transform, def Style) (*Placement, error) {
	style := e.style.Merge(def)

	pl := &Placement{
		Name:      e.name,
		Transform: tf,
		Segments:  make([]Segment, 0, len(e.segments)),
		Anchors:   make(map[string]Point, len(e.anchors)),
		BBox:      EmptyBBox(),
	}

	for _, s := range e.segments {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("placing %q: %w", e.name, err)
		}
		g := s.ToGlobal(tf, style)
		pl.Segments = append(pl.Segments, g)
		pl.BBox = pl.BBox.Union(g.Bounds())
	}
	for name, p := range e.anchors {
		// Terminal anchors of stretchable elements pin to the true
		// placement ends, before and after lead extension.
		ref := RefNone
		if e.extend {
			switch name {
			case "start":
				ref = RefStart
			case "end":
				ref = RefEnd
			}
		}
		pl.Anchors[name] = tf.Apply(p, ref)
	}

	pl.Start = tf.Apply(Point{}, RefStart)
	if e.extend {
		pl.End = tf.Apply(e.endPt, RefEnd)
	} else if d, ok := e.drop.Get(); ok {
		pl.End = tf.Apply(d, RefNone)
	} else {
		pl.End = pl.Start
	}

	Logger().Debug("schem: placed element",
		"name", e.name, "transform", tf.String(),
		"start", pl.Start, "end", pl.End)
	return pl, nil
}
