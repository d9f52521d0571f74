package schem

import (
	"io"
	"sync"
	"sync/atomic"
)

// HAlign is a horizontal text alignment.
type HAlign string

// Horizontal alignment values.
const (
	HLeft   HAlign = "left"
	HCenter HAlign = "center"
	HRight  HAlign = "right"
)

// VAlign is a vertical text alignment.
type VAlign string

// Vertical alignment values.
const (
	VTop    VAlign = "top"
	VCenter VAlign = "center"
	VBottom VAlign = "bottom"
)

// Align pairs horizontal and vertical text alignment.
type Align struct {
	H HAlign
	V VAlign
}

// ArrowDir tags the travel direction of an arrowhead on an arc.
type ArrowDir string

// Arc arrowhead directions. The empty value means no arrowhead.
const (
	ArrowNone ArrowDir = ""
	ArrowCW   ArrowDir = "cw"
	ArrowCCW  ArrowDir = "ccw"
)

// mirror returns the direction after a reflection (either axis):
// reflections invert winding, so cw and ccw swap.
func (a ArrowDir) mirror() ArrowDir {
	switch a {
	case ArrowCW:
		return ArrowCCW
	case ArrowCCW:
		return ArrowCW
	default:
		return ArrowNone
	}
}

// Surface is the minimal drawing capability consumed by segment
// rendering. Coordinates are global drawing coordinates (y up);
// implementations own the conversion to device space. Style values are
// fully resolved; unrecognized color or line-style strings are the
// surface's to reject or pass through.
type Surface interface {
	// Polyline strokes an open path. The point slice never contains
	// Gap markers; gapped paths arrive as multiple calls.
	Polyline(pts []Point, st ResolvedStyle)

	// Polygon strokes (and fills, when st.Fill is non-empty) a polygon.
	Polygon(pts []Point, closed bool, st ResolvedStyle)

	// Circle draws a circle of the given radius.
	Circle(center Point, radius float64, st ResolvedStyle)

	// Arc draws an elliptical arc. width and height are the full axes
	// of the ellipse, theta1/theta2 the sweep in degrees measured on
	// the unrotated ellipse, angle the rotation of the ellipse itself.
	// arrow optionally places an arrowhead at the sweep end indicated
	// by the travel direction.
	Arc(center Point, width, height, theta1, theta2, angle float64, arrow ArrowDir, st ResolvedStyle)

	// Arrow draws a straight shaft from tail to head with a filled
	// arrowhead of the given width and length at the head.
	Arrow(tail, head Point, headWidth, headLength float64, st ResolvedStyle)

	// Text draws a string anchored at pos with the given alignment and
	// rotation (degrees, counter-clockwise).
	Text(s string, pos Point, align Align, rotation float64, st ResolvedStyle)
}

// TextMeasurer reports the extents of a rendered string in typographic
// points. Implementations live in the textmeasure package; the engine
// uses measurement only for text bounding boxes.
type TextMeasurer interface {
	Measure(text, font string, size float64) (w, h float64)
}

// defaultMeasurer holds the measurer used by SegmentText bounding
// boxes when the segment carries none of its own. Stored atomically so
// SetTextMeasurer is safe to call concurrently with layout.
var defaultMeasurer atomic.Value // of TextMeasurer

// SetTextMeasurer installs the package-wide text measurer.
// Passing nil restores the built-in approximate measurer.
func SetTextMeasurer(m TextMeasurer) {
	if m == nil {
		m = approxMeasurer{}
	}
	defaultMeasurer.Store(&m)
}

// Measurer returns the current package-wide text measurer.
func Measurer() TextMeasurer {
	if v := defaultMeasurer.Load(); v != nil {
		return *v.(*TextMeasurer)
	}
	return approxMeasurer{}
}

// Backend produces an output surface and serializes the finished
// drawing. Backends register themselves from init functions in their
// packages (import for side effect), mirroring image format decoders.
type Backend interface {
	// Begin prepares a surface covering the given drawing extent at
	// the given device scale (device units per drawing unit).
	Begin(b BBox, scale float64) Surface

	// Flush writes the finished output to w.
	Flush(w io.Writer) error
}

// BackendFactory creates a new backend instance per render.
type BackendFactory func() Backend

var (
	backendMu sync.RWMutex
	backends  = make(map[string]BackendFactory)
)

// RegisterBackend registers a backend factory under a format name
// ("svg", "png"). A factory registered under an existing name replaces
// the previous one.
func RegisterBackend(format string, f BackendFactory) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backends[format] = f
}

// BackendFor returns a fresh backend for the format, or false when
// none is registered.
func BackendFor(format string) (Backend, bool) {
	backendMu.RLock()
	f, ok := backends[format]
	backendMu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}

// Backends returns the registered format names.
func Backends() []string {
	backendMu.RLock()
	defer backendMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}
