package schem

import "testing"

func TestOpt(t *testing.T) {
	var unset Opt[int]
	if unset.IsSet() {
		t.Error("zero Opt reports set")
	}
	if got := unset.OrElse(7); got != 7 {
		t.Errorf("OrElse = %v, want 7", got)
	}
	set := Some(3)
	if got := set.OrElse(7); got != 3 {
		t.Errorf("OrElse = %v, want 3", got)
	}
	if got := unset.Or(set).OrElse(0); got != 3 {
		t.Errorf("Or = %v, want 3", got)
	}
	if got := Some(1).Or(set).OrElse(0); got != 1 {
		t.Errorf("Or = %v, want 1", got)
	}
}

func TestStyleResolveChain(t *testing.T) {
	seg := Style{Color: Some("red")}
	def := Style{Color: Some("blue"), LineWidth: Some(4.0)}

	st := seg.Resolve(def, zorderLine)
	if st.Color != "red" {
		t.Errorf("Color = %q, want segment override red", st.Color)
	}
	if st.LineWidth != 4.0 {
		t.Errorf("LineWidth = %v, want default 4", st.LineWidth)
	}
	if st.LineStyle != defaultLineStyle {
		t.Errorf("LineStyle = %q, want built-in %q", st.LineStyle, defaultLineStyle)
	}
	if st.ZOrder != zorderLine {
		t.Errorf("ZOrder = %v, want %v", st.ZOrder, zorderLine)
	}
}

func TestStyleResolveBuiltins(t *testing.T) {
	st := Style{}.Resolve(Style{}, zorderShape)
	if st.Color != defaultColor {
		t.Errorf("Color = %q", st.Color)
	}
	if st.Fill != "" {
		t.Errorf("Fill = %q, want none", st.Fill)
	}
	if st.LineWidth != defaultLineWidth {
		t.Errorf("LineWidth = %v", st.LineWidth)
	}
	if st.Font != defaultFont || st.FontSize != defaultFontSize {
		t.Errorf("Font = %q/%v", st.Font, st.FontSize)
	}
}

func TestResolvedAsStyleRoundTrip(t *testing.T) {
	orig := Style{
		Color: Some("green"), Fill: Some("yellow"),
		LineWidth: Some(1.5), ZOrder: Some(9),
	}.Resolve(Style{}, zorderShape)

	again := orig.asStyle().Resolve(Style{Color: Some("red")}, zorderText)
	if again != orig {
		t.Errorf("round trip = %+v, want %+v", again, orig)
	}
}

func TestZOrderOverride(t *testing.T) {
	st := Style{ZOrder: Some(10)}.Resolve(Style{}, zorderLine)
	if st.ZOrder != 10 {
		t.Errorf("ZOrder = %v, want 10", st.ZOrder)
	}
}
