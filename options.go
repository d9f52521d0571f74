package schem

// DrawingOption configures a Drawing during creation.
type DrawingOption func(*Drawing)

// WithUnit sets the default span, in drawing units, of a two-terminal
// element placement (default 3).
func WithUnit(u float64) DrawingOption {
	return func(d *Drawing) { d.unit = u }
}

// WithScale sets the output device scale in device units per drawing
// unit (default 64).
func WithScale(s float64) DrawingOption {
	return func(d *Drawing) { d.scale = s }
}

// WithStyle sets the drawing-wide default style. Element and segment
// overrides still win per attribute.
func WithStyle(st Style) DrawingOption {
	return func(d *Drawing) { d.style = st }
}

// WithOrigin sets the initial cursor position.
func WithOrigin(p Point) DrawingOption {
	return func(d *Drawing) { d.here = p }
}

// placeSpec collects per-placement options before transform resolution.
type placeSpec struct {
	at        Opt[Point]
	theta     Opt[float64]
	length    Opt[float64]
	to        Opt[Point]
	tox       Opt[float64]
	toy       Opt[float64]
	zoom      float64
	reverse   bool
	flip      bool
	label     string
	ownAnchor string
	anchorErr error
}

// PlaceOption adjusts how one element is placed by Drawing.Add.
type PlaceOption func(*placeSpec)

// At places the element starting at an explicit point instead of the
// cursor.
func At(p Point) PlaceOption {
	return func(s *placeSpec) { s.at = Some(p) }
}

// AtAnchor places the element starting at a named anchor of an earlier
// placement.
func AtAnchor(pl *Placement, name string) PlaceOption {
	return func(s *placeSpec) {
		// Options cannot return errors; resolve eagerly and let Add
		// surface the failure.
		p, err := pl.Anchor(name)
		if err != nil {
			s.anchorErr = err
			return
		}
		s.at = Some(p)
	}
}

// Anchor aligns the element's own named anchor with the placement
// start point, instead of the element's local origin.
func Anchor(name string) PlaceOption {
	return func(s *placeSpec) { s.ownAnchor = name }
}

// Theta places the element at an explicit angle in degrees.
func Theta(deg float64) PlaceOption {
	return func(s *placeSpec) { s.theta = Some(deg) }
}

// Right orients the element along +x.
func Right() PlaceOption { return Theta(0) }

// Up orients the element along +y.
func Up() PlaceOption { return Theta(90) }

// Left orients the element along -x.
func Left() PlaceOption { return Theta(180) }

// Down orients the element along -y.
func Down() PlaceOption { return Theta(270) }

// L sets the total span of a two-terminal placement in drawing units.
func L(length float64) PlaceOption {
	return func(s *placeSpec) { s.length = Some(length) }
}

// To stretches a two-terminal element to end exactly at p, reorienting
// it toward p.
func To(p Point) PlaceOption {
	return func(s *placeSpec) { s.to = Some(p) }
}

// Tox stretches a two-terminal element along the current direction
// until its end reaches the vertical line x.
func Tox(x float64) PlaceOption {
	return func(s *placeSpec) { s.tox = Some(x) }
}

// Toy stretches a two-terminal element along the current direction
// until its end reaches the horizontal line y.
func Toy(y float64) PlaceOption {
	return func(s *placeSpec) { s.toy = Some(y) }
}

// Zoom scales the element uniformly.
func Zoom(z float64) PlaceOption {
	return func(s *placeSpec) { s.zoom = z }
}

// Reverse mirrors the element horizontally (e.g. a diode pointing the
// other way).
func Reverse() PlaceOption {
	return func(s *placeSpec) { s.reverse = true }
}

// Flip mirrors the element vertically.
func Flip() PlaceOption {
	return func(s *placeSpec) { s.flip = true }
}

// WithLabel attaches a text label above the element body.
func WithLabel(text string) PlaceOption {
	return func(s *placeSpec) { s.label = text }
}
