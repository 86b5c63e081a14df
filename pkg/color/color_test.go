package color

import (
	"testing"

	apperrors "github.com/odvcencio/tessera/pkg/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"green", "#00ff00", 0x00FF00FF},
		{"mixed", "#445566", 0x445566FF},
		{"black", "#000000", 0x000000FF},
		{"white", "#ffffff", 0xFFFFFFFF},
		{"uppercase", "#AABBCC", 0xAABBCCFF},
		{"mixed case", "#aAbBcC", 0xAABBCCFF},
		{"red", "#ff0000", 0xFF0000FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = 0x%08X, want 0x%08X", tt.input, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"fff",
		"#fff",
		"#12345",
		"#1234567",
		"445566",
		"0x445566",
		"#44556g",
		"#44 566",
		"##44556",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHex(input)
			if err == nil {
				t.Fatalf("ParseHex(%q) should fail", input)
			}
			if !apperrors.IsCode(err, apperrors.ErrCodeInvalidColorFormat) {
				t.Errorf("ParseHex(%q) error code = %v, want INVALID_COLOR_FORMAT", input, apperrors.GetCode(err))
			}
		})
	}
}

func TestMustParseHex_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex should panic on bad input")
		}
	}()
	MustParseHex("not-a-color")
}

func TestColor_Channels(t *testing.T) {
	c := FromRGB(0x11, 0x22, 0x33)

	if uint32(c) != 0x112233FF {
		t.Errorf("FromRGB packed = 0x%08X, want 0x112233FF", uint32(c))
	}
	if c.R() != 0x11 {
		t.Errorf("R() = 0x%02X, want 0x11", c.R())
	}
	if c.G() != 0x22 {
		t.Errorf("G() = 0x%02X, want 0x22", c.G())
	}
	if c.B() != 0x33 {
		t.Errorf("B() = 0x%02X, want 0x33", c.B())
	}
	if c.A() != 0xFF {
		t.Errorf("A() = 0x%02X, want 0xFF", c.A())
	}

	r, g, b := c.RGB()
	if r != 0x11 || g != 0x22 || b != 0x33 {
		t.Errorf("RGB() = %02X %02X %02X, want 11 22 33", r, g, b)
	}
}

func TestColor_HexRoundTrip(t *testing.T) {
	c := MustParseHex("#1a2b3c")
	if c.Hex() != "#1a2b3c" {
		t.Errorf("Hex() = %q, want #1a2b3c", c.Hex())
	}

	back, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("re-parsing Hex() output: %v", err)
	}
	if back != c {
		t.Errorf("round trip changed color: 0x%08X != 0x%08X", uint32(back), uint32(c))
	}
}

func TestColor_Default(t *testing.T) {
	if !Default.IsDefault() {
		t.Error("Default sentinel should report IsDefault")
	}
	if Default.String() != "default" {
		t.Errorf("Default.String() = %q, want \"default\"", Default.String())
	}

	c := FromRGB(1, 2, 3)
	if c.IsDefault() {
		t.Error("parsed color should not be default")
	}

	// Every parse and palette path produces alpha 0xFF
	if MustParseHex("#000000").IsDefault() {
		t.Error("parsed black is a real color, not the default sentinel")
	}
	if FromXterm256(0).IsDefault() {
		t.Error("palette black is a real color, not the default sentinel")
	}
}

func TestFromRGBA(t *testing.T) {
	c := FromRGBA(0xAA, 0xBB, 0xCC, 0x80)
	if uint32(c) != 0xAABBCC80 {
		t.Errorf("FromRGBA packed = 0x%08X, want 0xAABBCC80", uint32(c))
	}
	if c.A() != 0x80 {
		t.Errorf("A() = 0x%02X, want 0x80", c.A())
	}
}
