package schem

// Opt is an optional value: either unset, or holding a T.
// It implements the attribute-override chain used by segment styling:
// an explicit value on the segment wins over the element/drawing default,
// which wins over the built-in default.
type Opt[T any] struct {
	val T
	ok  bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, ok: true}
}

// Get returns the held value and whether one is set.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSet reports whether a value is set.
func (o Opt[T]) IsSet() bool {
	return o.ok
}

// Or returns o if set, otherwise other.
func (o Opt[T]) Or(other Opt[T]) Opt[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns the held value if set, otherwise def.
func (o Opt[T]) OrElse(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// Style holds optional drawing attributes. Unset fields fall back to
// the contextual default passed at transform/render time, then to the
// built-in default for the segment kind.
//
// Line styles use the conventional shorthand strings "-" (solid),
// "--" (dashed), ":" (dotted) and "-." (dash-dot). Colors and fills are
// passed through to the output surface unvalidated.
type Style struct {
	Color     Opt[string]
	Fill      Opt[string]
	LineWidth Opt[float64]
	LineStyle Opt[string]
	CapStyle  Opt[string]
	JoinStyle Opt[string]
	ZOrder    Opt[int]

	// Text attributes, ignored by non-text segments.
	Font     Opt[string]
	FontSize Opt[float64]
}

// Merge returns s with unset fields filled from def.
// Field by field, s wins when set.
func (s Style) Merge(def Style) Style {
	return Style{
		Color:     s.Color.Or(def.Color),
		Fill:      s.Fill.Or(def.Fill),
		LineWidth: s.LineWidth.Or(def.LineWidth),
		LineStyle: s.LineStyle.Or(def.LineStyle),
		CapStyle:  s.CapStyle.Or(def.CapStyle),
		JoinStyle: s.JoinStyle.Or(def.JoinStyle),
		ZOrder:    s.ZOrder.Or(def.ZOrder),
		Font:      s.Font.Or(def.Font),
		FontSize:  s.FontSize.Or(def.FontSize),
	}
}

// Built-in style defaults. Z-order layers fills and strokes under text.
const (
	defaultColor     = "black"
	defaultLineWidth = 2.0
	defaultLineStyle = "-"
	defaultCapStyle  = "round"
	defaultJoinStyle = "round"
	defaultFont      = "sans-serif"
	defaultFontSize  = 14.0

	zorderShape = 1
	zorderLine  = 2
	zorderText  = 3
)

// ResolvedStyle is a Style with every attribute resolved to a concrete
// value. Surfaces receive only resolved styles. An empty Fill means no
// fill.
type ResolvedStyle struct {
	Color     string
	Fill      string
	LineWidth float64
	LineStyle string
	CapStyle  string
	JoinStyle string
	ZOrder    int
	Font      string
	FontSize  float64
}

// Resolve collapses the override chain for a segment of the given
// built-in z-order: s wins over def, def wins over built-ins.
func (s Style) Resolve(def Style, zorder int) ResolvedStyle {
	m := s.Merge(def)
	return ResolvedStyle{
		Color:     m.Color.OrElse(defaultColor),
		Fill:      m.Fill.OrElse(""),
		LineWidth: m.LineWidth.OrElse(defaultLineWidth),
		LineStyle: m.LineStyle.OrElse(defaultLineStyle),
		CapStyle:  m.CapStyle.OrElse(defaultCapStyle),
		JoinStyle: m.JoinStyle.OrElse(defaultJoinStyle),
		ZOrder:    m.ZOrder.OrElse(zorder),
		Font:      m.Font.OrElse(defaultFont),
		FontSize:  m.FontSize.OrElse(defaultFontSize),
	}
}

// asStyle converts a ResolvedStyle back to a fully-set Style. Used when
// a transformed segment copy needs its resolution baked in so that a
// later Resolve with any default reproduces the same values.
func (r ResolvedStyle) asStyle() Style {
	s := Style{
		Color:     Some(r.Color),
		LineWidth: Some(r.LineWidth),
		LineStyle: Some(r.LineStyle),
		CapStyle:  Some(r.CapStyle),
		JoinStyle: Some(r.JoinStyle),
		ZOrder:    Some(r.ZOrder),
		Font:      Some(r.Font),
		FontSize:  Some(r.FontSize),
	}
	if r.Fill != "" {
		s.Fill = Some(r.Fill)
	}
	return s
}
