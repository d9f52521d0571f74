// Package svg renders schem drawings to Scalable Vector Graphics.
//
// Importing the package registers the backend under the "svg" format:
//
//	import _ "github.com/gogpu/schem/backend/svg"
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/gogpu/schem"
)

func init() {
	schem.RegisterBackend("svg", func() schem.Backend { return New() })
}

// Backend implements schem.Backend, buffering SVG output until Flush.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	bbox   schem.BBox
	scale  float64
}

// New creates an unstarted SVG backend.
func New() *Backend {
	return &Backend{}
}

// Begin implements schem.Backend.
func (b *Backend) Begin(box schem.BBox, scale float64) schem.Surface {
	if box.IsEmpty() {
		box = schem.BBox{XMax: 1, YMax: 1}
	}
	b.bbox = box
	b.scale = scale
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(box.Width()*scale, box.Height()*scale)
	return b
}

// Flush implements schem.Backend.
func (b *Backend) Flush(w io.Writer) error {
	b.canvas.End()
	_, err := w.Write(b.buf.Bytes())
	return err
}

// dev converts drawing coordinates (y up) to SVG device coordinates
// (y down).
func (b *Backend) dev(p schem.Point) (x, y float64) {
	return (p.X - b.bbox.XMin) * b.scale, (b.bbox.YMax - p.Y) * b.scale
}

// Polyline implements schem.Surface.
func (b *Backend) Polyline(pts []schem.Point, st schem.ResolvedStyle) {
	xs, ys := b.devSlices(pts)
	b.canvas.Polyline(xs, ys, strokeAttr(st, ""))
}

// Polygon implements schem.Surface.
func (b *Backend) Polygon(pts []schem.Point, closed bool, st schem.ResolvedStyle) {
	var d strings.Builder
	for i, p := range pts {
		x, y := b.dev(p)
		if i == 0 {
			fmt.Fprintf(&d, "M%.4f,%.4f", x, y)
		} else {
			fmt.Fprintf(&d, " L%.4f,%.4f", x, y)
		}
	}
	if closed {
		d.WriteString(" Z")
	}
	b.canvas.Path(d.String(), strokeAttr(st, st.Fill))
}

// Circle implements schem.Surface.
func (b *Backend) Circle(center schem.Point, radius float64, st schem.ResolvedStyle) {
	x, y := b.dev(center)
	b.canvas.Circle(x, y, radius*b.scale, strokeAttr(st, st.Fill))
}

// Arc implements schem.Surface. The sweep is emitted as a single SVG
// elliptical-arc path command; the arrowhead, when requested, is a
// small filled triangle aligned with the travel tangent.
func (b *Backend) Arc(center schem.Point, width, height, theta1, theta2, angle float64, arrow schem.ArrowDir, st schem.ResolvedStyle) {
	t1, t2 := paramSweep(width, height, theta1, theta2)

	start := ellipsePoint(center, width, height, angle, t1)
	end := ellipsePoint(center, width, height, angle, t2)
	sx, sy := b.dev(start)
	ex, ey := b.dev(end)

	large := 0
	if t2-t1 > math.Pi {
		large = 1
	}
	// Drawing-space CCW becomes sweep-flag 0 in SVG's y-down space.
	d := fmt.Sprintf("M%.4f,%.4f A%.4f,%.4f %.4f %d 0 %.4f,%.4f",
		sx, sy, width/2*b.scale, height/2*b.scale, -angle, large, ex, ey)
	b.canvas.Path(d, strokeAttr(st, ""))

	if arrow != schem.ArrowNone {
		tip, dir := arcArrowTip(center, width, height, angle, t1, t2, arrow)
		b.arrowHead(tip, dir, 0.2, 0.2, st)
	}
}

// Arrow implements schem.Surface.
func (b *Backend) Arrow(tail, head schem.Point, headWidth, headLength float64, st schem.ResolvedStyle) {
	dir := head.Sub(tail).Normalize()
	// Shorten the shaft so it does not poke through the head.
	shaftEnd := head.Sub(dir.Mul(headLength))
	x1, y1 := b.dev(tail)
	x2, y2 := b.dev(shaftEnd)
	b.canvas.Line(x1, y1, x2, y2, strokeAttr(st, ""))
	b.arrowHead(head, dir, headWidth, headLength, st)
}

// arrowHead draws a filled triangle with its tip at tip, pointing
// along dir. Sizes are in drawing units.
func (b *Backend) arrowHead(tip, dir schem.Point, width, length float64, st schem.ResolvedStyle) {
	perp := schem.Point{X: -dir.Y, Y: dir.X}
	base := tip.Sub(dir.Mul(length))
	p1 := base.Add(perp.Mul(width / 2))
	p2 := base.Sub(perp.Mul(width / 2))

	xs, ys := b.devSlices([]schem.Point{tip, p1, p2})
	b.canvas.Polygon(xs, ys, fmt.Sprintf(`style="fill:%s;stroke:none"`, st.Color))
}

// Text implements schem.Surface.
func (b *Backend) Text(s string, pos schem.Point, align schem.Align, rotation float64, st schem.ResolvedStyle) {
	x, y := b.dev(pos)
	sizePx := st.FontSize * schem.TextUnitsPerPoint * b.scale

	attrs := fmt.Sprintf(
		`style="font-family:%s;font-size:%.2fpx;fill:%s;text-anchor:%s;dominant-baseline:%s"`,
		st.Font, sizePx, st.Color, textAnchor(align.H), baseline(align.V))
	if rotation != 0 {
		attrs += fmt.Sprintf(` transform="rotate(%.4f,%.4f,%.4f)"`, -rotation, x, y)
	}
	b.canvas.Text(x, y, s, attrs)
}

func (b *Backend) devSlices(pts []schem.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = b.dev(p)
	}
	return xs, ys
}

// strokeAttr formats a resolved style as an SVG style attribute.
// An empty fill renders as fill:none.
func strokeAttr(st schem.ResolvedStyle, fill string) string {
	if fill == "" {
		fill = "none"
	}
	attr := fmt.Sprintf("style=\"stroke:%s;stroke-width:%.4g;fill:%s;stroke-linecap:%s;stroke-linejoin:%s",
		st.Color, st.LineWidth, fill, st.CapStyle, st.JoinStyle)
	if dash := dashArray(st.LineStyle); dash != "" {
		attr += ";stroke-dasharray:" + dash
	}
	return attr + "\""
}

// dashArray maps the conventional line-style shorthands to SVG dash
// arrays. Unrecognized values pass through as solid.
func dashArray(ls string) string {
	switch ls {
	case "--", "dashed":
		return "7,4"
	case ":", "dotted":
		return "2,3"
	case "-.", "dashdot":
		return "7,4,2,4"
	default:
		return ""
	}
}

func textAnchor(h schem.HAlign) string {
	switch h {
	case schem.HLeft:
		return "start"
	case schem.HRight:
		return "end"
	default:
		return "middle"
	}
}

func baseline(v schem.VAlign) string {
	switch v {
	case schem.VTop:
		return "hanging"
	case schem.VBottom:
		return "text-after-edge"
	default:
		return "middle"
	}
}

// paramSweep converts geometric sweep angles in degrees to parametric
// ellipse angles in radians, normalized so t2 >= t1.
func paramSweep(width, height, theta1, theta2 float64) (t1, t2 float64) {
	r1 := theta1 * math.Pi / 180
	r2 := theta2 * math.Pi / 180
	t1 = math.Atan2(width*math.Sin(r1), height*math.Cos(r1))
	t2 = math.Atan2(width*math.Sin(r2), height*math.Cos(r2))
	for t2 < t1 {
		t2 += 2 * math.Pi
	}
	return t1, t2
}

// ellipsePoint evaluates the rotated ellipse boundary at parametric
// angle t.
func ellipsePoint(center schem.Point, width, height, angle, t float64) schem.Point {
	phi := angle * math.Pi / 180
	cosphi, sinphi := math.Cos(phi), math.Sin(phi)
	rx, ry := width/2, height/2
	ct, st := math.Cos(t), math.Sin(t)
	return schem.Point{
		X: center.X + rx*ct*cosphi - ry*st*sinphi,
		Y: center.Y + rx*ct*sinphi + ry*st*cosphi,
	}
}

// arcArrowTip returns the arrowhead position and travel direction for
// an arc arrow: counter-clockwise travel ends at theta2, clockwise
// travel ends at theta1 with the tangent reversed.
func arcArrowTip(center schem.Point, width, height, angle, t1, t2 float64, dir schem.ArrowDir) (schem.Point, schem.Point) {
	const dt = 1e-3
	if dir == schem.ArrowCW {
		tip := ellipsePoint(center, width, height, angle, t1)
		prev := ellipsePoint(center, width, height, angle, t1+dt)
		return tip, tip.Sub(prev).Normalize()
	}
	tip := ellipsePoint(center, width, height, angle, t2)
	prev := ellipsePoint(center, width, height, angle, t2-dt)
	return tip, tip.Sub(prev).Normalize()
}
