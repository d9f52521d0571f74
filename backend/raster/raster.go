// Package raster renders schem drawings to PNG images using the
// golang.org/x/image vector rasterizer.
//
// Importing the package registers the backend under the "png" format:
//
//	import _ "github.com/gogpu/schem/backend/raster"
//
// Strokes are rendered as filled quads with round caps approximated by
// vertex disks; curves are flattened to polylines. Text uses an
// opentype face when a font has been installed with SetFont, otherwise
// a built-in bitmap face.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/schem"
)

func init() {
	schem.RegisterBackend("png", func() schem.Backend { return New() })
}

// fontData holds the optional opentype font installed with SetFont.
var fontData atomic.Pointer[opentype.Font]

// SetFont installs a TTF/OTF font for PNG text rendering. Pass nil to
// restore the built-in bitmap face.
func SetFont(data []byte) error {
	if data == nil {
		fontData.Store(nil)
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("raster: parse font: %w", err)
	}
	fontData.Store(f)
	return nil
}

// Backend implements schem.Backend over an RGBA image.
type Backend struct {
	img   *image.RGBA
	bbox  schem.BBox
	scale float64
}

// New creates an unstarted raster backend.
func New() *Backend {
	return &Backend{}
}

// Begin implements schem.Backend. The image is cleared to white.
func (b *Backend) Begin(box schem.BBox, scale float64) schem.Surface {
	if box.IsEmpty() {
		box = schem.BBox{XMax: 1, YMax: 1}
	}
	b.bbox = box
	b.scale = scale
	w := int(math.Ceil(box.Width() * scale))
	h := int(math.Ceil(box.Height() * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return b
}

// Flush implements schem.Backend.
func (b *Backend) Flush(w io.Writer) error {
	return png.Encode(w, b.img)
}

func (b *Backend) dev(p schem.Point) (x, y float64) {
	return (p.X - b.bbox.XMin) * b.scale, (b.bbox.YMax - p.Y) * b.scale
}

// fill rasterizes a closed device-space contour with the given color.
func (b *Backend) fill(contours [][]schem.Point, col color.RGBA) {
	r := vector.NewRasterizer(b.img.Bounds().Dx(), b.img.Bounds().Dy())
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		x, y := b.dev(pts[0])
		r.MoveTo(float32(x), float32(y))
		for _, p := range pts[1:] {
			px, py := b.dev(p)
			r.LineTo(float32(px), float32(py))
		}
		r.ClosePath()
	}
	r.Draw(b.img, b.img.Bounds(), image.NewUniform(col), image.Point{})
}

// stroke draws a polyline as one quad per edge plus cap/join disks.
func (b *Backend) stroke(pts []schem.Point, st schem.ResolvedStyle) {
	if len(pts) < 2 {
		return
	}
	col := parseColor(st.Color)
	hw := st.LineWidth / 2 / b.scale // half width in drawing units

	var quads [][]schem.Point
	for i := 0; i+1 < len(pts); i++ {
		p, q := pts[i], pts[i+1]
		dir := q.Sub(p)
		if dir.Length() == 0 {
			continue
		}
		n := schem.Point{X: -dir.Y, Y: dir.X}.Normalize().Mul(hw)
		quads = append(quads, []schem.Point{
			p.Add(n), q.Add(n), q.Sub(n), p.Sub(n),
		})
	}
	b.fill(quads, col)

	if st.CapStyle == "round" || st.JoinStyle == "round" {
		var disks [][]schem.Point
		for _, p := range pts {
			disks = append(disks, circlePoly(p, hw, 16))
		}
		b.fill(disks, col)
	}
}

// Polyline implements schem.Surface.
func (b *Backend) Polyline(pts []schem.Point, st schem.ResolvedStyle) {
	b.stroke(pts, st)
}

// Polygon implements schem.Surface.
func (b *Backend) Polygon(pts []schem.Point, closed bool, st schem.ResolvedStyle) {
	if st.Fill != "" {
		b.fill([][]schem.Point{pts}, parseColor(st.Fill))
	}
	outline := pts
	if closed && len(pts) > 0 {
		outline = append(append([]schem.Point{}, pts...), pts[0])
	}
	b.stroke(outline, st)
}

// Circle implements schem.Surface.
func (b *Backend) Circle(center schem.Point, radius float64, st schem.ResolvedStyle) {
	ring := circlePoly(center, radius, 64)
	if st.Fill != "" {
		b.fill([][]schem.Point{ring}, parseColor(st.Fill))
	}
	b.stroke(append(ring, ring[0]), st)
}

// Arc implements schem.Surface, flattening the sweep to a polyline.
func (b *Backend) Arc(center schem.Point, width, height, theta1, theta2, angle float64, arrow schem.ArrowDir, st schem.ResolvedStyle) {
	r1 := theta1 * math.Pi / 180
	r2 := theta2 * math.Pi / 180
	t1 := math.Atan2(width*math.Sin(r1), height*math.Cos(r1))
	t2 := math.Atan2(width*math.Sin(r2), height*math.Cos(r2))
	for t2 < t1 {
		t2 += 2 * math.Pi
	}

	phi := angle * math.Pi / 180
	cosphi, sinphi := math.Cos(phi), math.Sin(phi)
	rx, ry := width/2, height/2

	const steps = 64
	pts := make([]schem.Point, steps)
	for i := range pts {
		t := t1 + (t2-t1)*float64(i)/float64(steps-1)
		ct, sn := math.Cos(t), math.Sin(t)
		pts[i] = schem.Point{
			X: center.X + rx*ct*cosphi - ry*sn*sinphi,
			Y: center.Y + rx*ct*sinphi + ry*sn*cosphi,
		}
	}
	b.stroke(pts, st)

	if arrow != schem.ArrowNone {
		tip, dir := pts[len(pts)-1], pts[len(pts)-1].Sub(pts[len(pts)-2]).Normalize()
		if arrow == schem.ArrowCW {
			tip, dir = pts[0], pts[0].Sub(pts[1]).Normalize()
		}
		b.fillArrowHead(tip, dir, 0.2, 0.2, parseColor(st.Color))
	}
}

// Arrow implements schem.Surface.
func (b *Backend) Arrow(tail, head schem.Point, headWidth, headLength float64, st schem.ResolvedStyle) {
	dir := head.Sub(tail).Normalize()
	shaftEnd := head.Sub(dir.Mul(headLength))
	b.stroke([]schem.Point{tail, shaftEnd}, st)
	b.fillArrowHead(head, dir, headWidth, headLength, parseColor(st.Color))
}

func (b *Backend) fillArrowHead(tip, dir schem.Point, width, length float64, col color.RGBA) {
	perp := schem.Point{X: -dir.Y, Y: dir.X}
	base := tip.Sub(dir.Mul(length))
	b.fill([][]schem.Point{{
		tip,
		base.Add(perp.Mul(width / 2)),
		base.Sub(perp.Mul(width / 2)),
	}}, col)
}

// Text implements schem.Surface. Rotation is not supported by the
// bitmap path and is ignored; rotated labels are an SVG-backend
// feature.
func (b *Backend) Text(s string, pos schem.Point, align schem.Align, rotation float64, st schem.ResolvedStyle) {
	_ = rotation
	face, err := b.face(st.FontSize)
	if err != nil {
		schem.Logger().Warn("raster: text face unavailable", "err", err)
		return
	}

	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(parseColor(st.Color)),
		Face: face,
	}
	w := d.MeasureString(s)
	m := face.Metrics()

	x, y := b.dev(pos)
	fx := fixed.Int26_6(x * 64)
	fy := fixed.Int26_6(y * 64)

	switch align.H {
	case schem.HCenter:
		fx -= w / 2
	case schem.HRight:
		fx -= w
	}
	switch align.V {
	case schem.VCenter:
		fy += m.Ascent/2 - m.Descent/2
	case schem.VTop:
		fy += m.Ascent
	case schem.VBottom:
		fy -= m.Descent
	}

	d.Dot = fixed.Point26_6{X: fx, Y: fy}
	d.DrawString(s)
}

// face returns the text face at the given point size, scaled to device
// pixels.
func (b *Backend) face(sizePts float64) (font.Face, error) {
	f := fontData.Load()
	if f == nil {
		return basicfont.Face7x13, nil
	}
	sizePx := sizePts * schem.TextUnitsPerPoint * b.scale
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// circlePoly flattens a circle into an n-gon.
func circlePoly(center schem.Point, radius float64, n int) []schem.Point {
	pts := make([]schem.Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = schem.Point{
			X: center.X + radius*math.Cos(t),
			Y: center.Y + radius*math.Sin(t),
		}
	}
	return pts
}
