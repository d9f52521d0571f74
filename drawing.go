package schem

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Drawing is a composition session: a cursor position, a current
// direction, the accumulated placements, and the overall bounding box.
// Elements are placed strictly in call order; each placement depends
// only on the cursor state and anchors resolved so far.
//
// A Drawing is not safe for concurrent use.
type Drawing struct {
	unit  float64
	scale float64
	here  Point
	theta float64
	style Style

	placements []*Placement
	bbox       BBox
}

// NewDrawing creates an empty drawing with the cursor at the origin
// heading right.
func NewDrawing(opts ...DrawingOption) *Drawing {
	d := &Drawing{
		unit:  3,
		scale: 64,
		bbox:  EmptyBBox(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Here returns the current cursor position.
func (d *Drawing) Here() Point { return d.here }

// Theta returns the current direction in degrees.
func (d *Drawing) Theta() float64 { return d.theta }

// BBox returns the bounding box over all placements so far.
func (d *Drawing) BBox() BBox { return d.bbox }

// Placements returns the resolved placements in order.
func (d *Drawing) Placements() []*Placement { return d.placements }

// Add places an element at the current cursor, resolving its transform
// from the drawing state and the given placement options, and advances
// the cursor to the element's drop point. A placement failure aborts
// the drawing; there is no partial recovery.
func (d *Drawing) Add(e *Element, opts ...PlaceOption) (*Placement, error) {
	spec := placeSpec{zoom: 1}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.anchorErr != nil {
		return nil, spec.anchorErr
	}

	start := d.here
	if p, ok := spec.at.Get(); ok {
		start = p
	}

	theta := d.theta
	if t, ok := e.DefaultTheta(); ok {
		theta = t
	}
	if t, ok := spec.theta.Get(); ok {
		theta = t
	}

	var localShift Point
	elem := e
	endPt, twoTerm := e.TwoTerminal()
	if twoTerm {
		length, to, err := d.resolveLength(spec, start, theta)
		if err != nil {
			return nil, err
		}
		if to != nil {
			theta = math.Atan2(to.Y-start.Y, to.X-start.X) * 180 / math.Pi
		}
		lead := (length/spec.zoom - endPt.X) / 2
		if lead < 0 {
			lead = 0
		}
		localShift = Point{X: lead}
	}

	if spec.reverse {
		elem = elem.Mirror()
	}
	if spec.flip {
		elem = elem.Flip()
	}
	if twoTerm {
		elem = elem.withLeads(localShift.X)
	}

	shift := start
	if spec.ownAnchor != "" {
		a, err := elem.Anchor(spec.ownAnchor)
		if err != nil {
			return nil, err
		}
		// Terminal anchors of stretchable elements resolve with the
		// same start/end local-shift handling Place uses, so the
		// requested point lands on the true terminal.
		lshift := localShift
		if twoTerm {
			switch spec.ownAnchor {
			case "start":
				lshift = Point{}
			case "end":
				lshift = localShift.Mul(2)
			}
		}
		shift = start.Sub(a.Add(lshift).Mul(spec.zoom).Rotate(theta))
	}

	tf, err := NewTransform(theta, shift, localShift, spec.zoom)
	if err != nil {
		return nil, err
	}

	pl, err := elem.Place(tf, d.style)
	if err != nil {
		return nil, err
	}

	if spec.label != "" {
		d.attachLabel(pl, elem, tf, spec.label)
	}

	d.placements = append(d.placements, pl)
	d.bbox = d.bbox.Union(pl.BBox)
	d.here = pl.End
	d.theta = theta
	return pl, nil
}

// resolveLength determines the total span of a two-terminal placement
// in drawing units. Precedence: explicit To point, Tox/Toy projection
// along the current direction, explicit length, drawing unit.
// A To point also reorients the placement; the returned pointer is
// non-nil in that case.
func (d *Drawing) resolveLength(spec placeSpec, start Point, theta float64) (float64, *Point, error) {
	if to, ok := spec.to.Get(); ok {
		return start.Distance(to), &to, nil
	}
	rad := theta * math.Pi / 180
	if x, ok := spec.tox.Get(); ok {
		cos := math.Cos(rad)
		if math.Abs(cos) < 1e-9 {
			return 0, nil, fmt.Errorf("%w: Tox with vertical direction %v", ErrDegenerateGeometry, theta)
		}
		return (x - start.X) / cos, nil, nil
	}
	if y, ok := spec.toy.Get(); ok {
		sin := math.Sin(rad)
		if math.Abs(sin) < 1e-9 {
			return 0, nil, fmt.Errorf("%w: Toy with horizontal direction %v", ErrDegenerateGeometry, theta)
		}
		return (y - start.Y) / sin, nil, nil
	}
	if l, ok := spec.length.Get(); ok {
		return l, nil, nil
	}
	return d.unit, nil, nil
}

// attachLabel adds a text segment above the element body, materialized
// through the same transform so lead extension and zoom apply.
func (d *Drawing) attachLabel(pl *Placement, e *Element, tf Transform, text string) {
	b := e.Bounds()
	if b.IsEmpty() {
		b = BBox{}
	}
	local := Point{X: (b.XMin + b.XMax) / 2, Y: b.YMax + 0.15}
	seg := Label(local, text).WithAlign(Align{H: HCenter, V: VBottom})
	g := seg.ToGlobal(tf, d.style)
	pl.Segments = append(pl.Segments, g)
	pl.BBox = pl.BBox.Union(g.Bounds())
}

// Move displaces the cursor without placing anything.
func (d *Drawing) Move(dx, dy float64) {
	d.here = d.here.Add(Point{X: dx, Y: dy})
}

// MoveTo sets the cursor position.
func (d *Drawing) MoveTo(p Point) {
	d.here = p
}

// Render draws every placed segment onto surf, ordered by z-order so
// fills paint under strokes under text. Placement order ties.
func (d *Drawing) Render(surf Surface) error {
	type drawable struct {
		seg Segment
		z   int
	}
	var all []drawable
	for _, pl := range d.placements {
		for _, s := range pl.Segments {
			all = append(all, drawable{seg: s, z: zorderOf(s)})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].z < all[j].z })

	id := Identity()
	for _, dr := range all {
		if err := dr.seg.Draw(surf, id, Style{}); err != nil {
			return err
		}
	}
	return nil
}

// zorderOf resolves a segment's z-order the same way Draw will.
func zorderOf(s Segment) int {
	switch seg := s.(type) {
	case *SegmentLine:
		return seg.Style.Resolve(Style{}, zorderLine).ZOrder
	case *SegmentPoly:
		return seg.Style.Resolve(Style{}, zorderShape).ZOrder
	case *SegmentCircle:
		return seg.Style.Resolve(Style{}, zorderShape).ZOrder
	case *SegmentArc:
		return seg.Style.Resolve(Style{}, zorderShape).ZOrder
	case *SegmentArrow:
		return seg.Style.Resolve(Style{}, zorderShape).ZOrder
	case *SegmentText:
		return seg.Style.Resolve(Style{}, zorderText).ZOrder
	default:
		return zorderShape
	}
}

// WriteTo renders the drawing through the backend registered for the
// given format ("svg", "png") and writes the result to w.
func (d *Drawing) WriteTo(w io.Writer, format string) error {
	be, ok := BackendFor(format)
	if !ok {
		return fmt.Errorf("%w: %q (registered: %v)", ErrUnknownBackend, format, Backends())
	}
	surf := be.Begin(d.bbox.Expand(0.1), d.scale)
	if err := d.Render(surf); err != nil {
		return err
	}
	return be.Flush(w)
}

// Save renders the drawing to a file, choosing the backend from the
// file extension. Backends register themselves when their packages are
// imported:
//
//	import _ "github.com/gogpu/schem/backend/svg"
func (d *Drawing) Save(path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("schem: save: %w", err)
	}
	defer f.Close()
	if err := d.WriteTo(f, format); err != nil {
		return err
	}
	return f.Close()
}
