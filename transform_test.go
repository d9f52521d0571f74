package schem

import (
	"errors"
	"testing"
)

func TestNewTransformValidation(t *testing.T) {
	tests := []struct {
		name    string
		zoom    float64
		wantErr bool
	}{
		{"unit zoom", 1, false},
		{"magnify", 2.5, false},
		{"shrink", 0.1, false},
		{"zero zoom", 0, true},
		{"negative zoom", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransform(0, Point{}, Point{}, tt.zoom)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTransform(zoom=%v) error = %v, wantErr %v", tt.zoom, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidTransform) {
				t.Errorf("error = %v, want ErrInvalidTransform", err)
			}
		})
	}
}

func TestIdentityTransform(t *testing.T) {
	id := Identity()
	for _, p := range []Point{Pt(0, 0), Pt(1, 2), Pt(-3.5, 0.25)} {
		if got := id.Apply(p, RefNone); got != p {
			t.Errorf("Identity().Apply(%v) = %v", p, got)
		}
	}
}

func TestTransformApplyOrder(t *testing.T) {
	// Local shift, then zoom, then rotation, then global shift.
	tf := Transform{
		Theta:      90,
		Shift:      Pt(10, 0),
		LocalShift: Pt(1, 0),
		Zoom:       2,
	}
	// (1,0)+(1,0) = (2,0); *2 = (4,0); rot90 = (0,4); +(10,0) = (10,4).
	got := tf.Apply(Pt(1, 0), RefNone)
	if !pointsAlmostEqual(got, Pt(10, 4)) {
		t.Errorf("Apply = %v, want (10,4)", got)
	}
}

func TestTransformRefHandling(t *testing.T) {
	tf := Transform{Shift: Pt(5, 5), LocalShift: Pt(1, 0), Zoom: 1}
	tests := []struct {
		name string
		ref  Ref
		want Point
	}{
		{"none gets single shift", RefNone, Pt(7, 5)},
		{"start skips shift", RefStart, Pt(6, 5)},
		{"end gets double shift", RefEnd, Pt(8, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tf.Apply(Pt(1, 0), tt.ref)
			if !pointsAlmostEqual(got, tt.want) {
				t.Errorf("Apply(ref=%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestTransformGapPassthrough(t *testing.T) {
	tf := Transform{Theta: 45, Shift: Pt(1, 1), LocalShift: Pt(2, 0), Zoom: 3}
	if got := tf.Apply(Gap, RefNone); !got.IsGap() {
		t.Errorf("Apply(Gap) = %v, want gap", got)
	}
}

func TestApplyAllPreservesOrderAndGaps(t *testing.T) {
	tf := Transform{Shift: Pt(1, 0), Zoom: 1}
	in := []Point{Pt(0, 0), Gap, Pt(2, 2)}
	out := tf.ApplyAll(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0] != Pt(1, 0) {
		t.Errorf("out[0] = %v", out[0])
	}
	if !out[1].IsGap() {
		t.Errorf("out[1] = %v, want gap", out[1])
	}
	if out[2] != Pt(3, 2) {
		t.Errorf("out[2] = %v", out[2])
	}
}

func TestRefMirror(t *testing.T) {
	tests := []struct {
		in, want Ref
	}{
		{RefStart, RefEnd},
		{RefEnd, RefStart},
		{RefNone, RefNone},
	}
	for _, tt := range tests {
		if got := tt.in.mirror(); got != tt.want {
			t.Errorf("%v.mirror() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
