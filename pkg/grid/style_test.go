package grid

import (
	"testing"

	"github.com/odvcencio/tessera/pkg/color"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.FG.IsDefault() || !s.BG.IsDefault() {
		t.Errorf("DefaultStyle() = %+v; want both channels default", s)
	}
	if s.Attrs != AttrNone {
		t.Errorf("Attrs = %b; want none", s.Attrs)
	}
	if s != (Style{}) {
		t.Errorf("DefaultStyle() = %+v; want the zero value", s)
	}
}

func TestStyle_SettersCopy(t *testing.T) {
	base := DefaultStyle()
	red := color.MustParseHex("#ff0000")

	styled := base.Foreground(red).Bold(true)

	if base != (Style{}) {
		t.Errorf("base mutated by setters: %+v", base)
	}
	if styled.FG != red {
		t.Errorf("FG = %v; want %v", styled.FG, red)
	}
	if !styled.Attrs.Has(AttrBold) {
		t.Error("Bold(true) did not set the flag")
	}
}

func TestStyle_AttrToggle(t *testing.T) {
	s := DefaultStyle().Bold(true).Underline(true).Italic(true)
	if !s.Attrs.Has(AttrBold | AttrUnderline | AttrItalic) {
		t.Fatalf("Attrs = %b; want bold, underline, italic", s.Attrs)
	}

	s = s.Underline(false)
	if s.Attrs.Has(AttrUnderline) {
		t.Error("Underline(false) left the flag set")
	}
	if !s.Attrs.Has(AttrBold) || !s.Attrs.Has(AttrItalic) {
		t.Errorf("Attrs = %b; clearing underline disturbed other flags", s.Attrs)
	}
}

func TestStyle_AllAttrFlags(t *testing.T) {
	s := DefaultStyle().
		Bold(true).
		Dim(true).
		Italic(true).
		Underline(true).
		Blink(true).
		Reverse(true).
		Strikethrough(true)

	want := AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse | AttrStrikethrough
	if s.Attrs != want {
		t.Errorf("Attrs = %b; want %b", s.Attrs, want)
	}
}

func TestAttr_Operations(t *testing.T) {
	a := AttrBold.With(AttrDim)
	if !a.Has(AttrBold) || !a.Has(AttrDim) {
		t.Errorf("With: %b missing a flag", a)
	}
	if a.Has(AttrBold | AttrItalic) {
		t.Error("Has reported a mask that is only partially set")
	}

	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("Without left the flag set")
	}
	if !a.Has(AttrDim) {
		t.Error("Without cleared an unrelated flag")
	}
}

func TestStyle_Equality(t *testing.T) {
	fg := color.MustParseHex("#123456")
	a := NewStyle(fg, color.Default).Bold(true)
	b := DefaultStyle().Foreground(fg).Bold(true)
	if a != b {
		t.Errorf("equivalent styles compare unequal: %+v vs %+v", a, b)
	}
	if a == a.Dim(true) {
		t.Error("styles with different attrs compare equal")
	}
}
