package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/schem"
)

func TestBackendRegistered(t *testing.T) {
	if _, ok := schem.BackendFor("png"); !ok {
		t.Fatal("png backend not registered")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"named black", "black", color.RGBA{0, 0, 0, 255}},
		{"named red", "red", color.RGBA{255, 0, 0, 255}},
		{"short hex", "#f00", color.RGBA{255, 0, 0, 255}},
		{"short hex alpha", "#f008", color.RGBA{255, 0, 0, 136}},
		{"long hex", "#00ff00", color.RGBA{0, 255, 0, 255}},
		{"long hex alpha", "#0000ff80", color.RGBA{0, 0, 255, 128}},
		{"no hash", "ff0000", color.RGBA{255, 0, 0, 255}},
		{"garbage", "definitely-not-a-color", color.RGBA{0, 0, 0, 255}},
		{"empty", "", color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseColor(tt.in); got != tt.want {
				t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBeginImageSize(t *testing.T) {
	b := New()
	b.Begin(schem.BBox{XMin: 0, YMin: 0, XMax: 2, YMax: 1}, 32)
	bounds := b.img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 32 {
		t.Errorf("image size = %dx%d, want 64x32", bounds.Dx(), bounds.Dy())
	}
}

func TestBeginEmptyBBox(t *testing.T) {
	b := New()
	b.Begin(schem.EmptyBBox(), 16)
	bounds := b.img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		t.Errorf("degenerate image %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestStrokeMarksPixels(t *testing.T) {
	b := New()
	surf := b.Begin(schem.BBox{XMax: 1, YMax: 1}, 32)
	st := schem.Style{}.Resolve(schem.Style{}, 2)
	surf.Polyline([]schem.Point{schem.Pt(0, 0.5), schem.Pt(1, 0.5)}, st)

	// The horizontal midline must contain non-white pixels.
	marked := false
	for x := 0; x < 32; x++ {
		r, g, bb, _ := b.img.At(x, 16).RGBA()
		if r != 0xffff || g != 0xffff || bb != 0xffff {
			marked = true
			break
		}
	}
	if !marked {
		t.Error("stroke left no pixels on the midline")
	}
}

func TestPolygonFillCoversInterior(t *testing.T) {
	b := New()
	surf := b.Begin(schem.BBox{XMax: 1, YMax: 1}, 32)
	st := schem.Style{Fill: schem.Some("red")}.Resolve(schem.Style{}, 1)
	surf.Polygon([]schem.Point{
		schem.Pt(0, 0), schem.Pt(1, 0), schem.Pt(1, 1), schem.Pt(0, 1),
	}, true, st)

	r, g, bb, _ := b.img.At(16, 16).RGBA()
	if r < 0x8000 || g > 0x4000 || bb > 0x4000 {
		t.Errorf("interior pixel = (%v, %v, %v), want red", r, g, bb)
	}
}

func TestFlushWritesPNG(t *testing.T) {
	b := New()
	surf := b.Begin(schem.BBox{XMax: 1, YMax: 1}, 8)
	st := schem.Style{}.Resolve(schem.Style{}, 2)
	surf.Polyline([]schem.Point{schem.Pt(0, 0), schem.Pt(1, 1)}, st)

	var buf bytes.Buffer
	if err := b.Flush(&buf); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}

func TestTextRendersWithBuiltinFace(t *testing.T) {
	b := New()
	surf := b.Begin(schem.BBox{XMax: 2, YMax: 1}, 32)
	st := schem.Style{}.Resolve(schem.Style{}, 3)
	surf.Text("X", schem.Pt(1, 0.5), schem.Align{H: schem.HCenter, V: schem.VCenter}, 0, st)

	marked := false
	for y := 0; y < 32 && !marked; y++ {
		for x := 0; x < 64; x++ {
			r, g, bb, _ := b.img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bb != 0xffff {
				marked = true
				break
			}
		}
	}
	if !marked {
		t.Error("text left no pixels")
	}
}

func TestSetFontRejectsGarbage(t *testing.T) {
	if err := SetFont([]byte("not a font")); err == nil {
		t.Error("SetFont accepted invalid data")
	}
	// nil restores the builtin face without error.
	if err := SetFont(nil); err != nil {
		t.Errorf("SetFont(nil) = %v", err)
	}
}

func TestEndToEndPNG(t *testing.T) {
	d := schem.NewDrawing(schem.WithUnit(1), schem.WithScale(16))
	e := schem.NewElement("seg")
	e.Add(schem.Line(schem.Pt(0, 0), schem.Pt(1, 0)))
	e.SetEndpoints(schem.Pt(1, 0))
	if _, err := d.Add(e, schem.Right()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var buf bytes.Buffer
	if err := d.WriteTo(&buf, "png"); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a png: %v", err)
	}
}
