package core

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#00ff00", ColorGreen, false},
		{"0x0000FF", ColorBlue, false},
		{"white", ColorWhite, false},
		{"  Lime ", ColorGreen, false},
		{"#fff", 0, true},
		{"#gggggg", 0, true},
		{"not-a-color", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) should fail", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorChannels(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Errorf("RGB() = %#x, expected 0x123456", uint32(c))
	}

	r, g, b := c.RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Color.RGB() = (%#x, %#x, %#x), expected (0x12, 0x34, 0x56)", r, g, b)
	}

	if FromRGBA(c.RGBA()) != c {
		t.Error("FromRGBA(c.RGBA()) should return c")
	}
	if c.Hex() != "#123456" {
		t.Errorf("Hex() = %q, expected \"#123456\"", c.Hex())
	}
}

func TestColorYAML(t *testing.T) {
	var doc struct {
		A Color `yaml:"a"`
		B Color `yaml:"b"`
		C Color `yaml:"c"`
	}
	src := "a: '#00ff00'\nb: crimson\nc: 255\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if doc.A != ColorGreen {
		t.Errorf("a = %v, expected %v", doc.A, ColorGreen)
	}
	if doc.B != RGB(0xdc, 0x14, 0x3c) {
		t.Errorf("b = %v, expected crimson", doc.B)
	}
	if doc.C != ColorBlue {
		t.Errorf("c = %v, expected %v", doc.C, ColorBlue)
	}

	if err := yaml.Unmarshal([]byte("a: chartreuse-ish\n"), &doc); err == nil {
		t.Error("Unmarshal should reject unknown color names")
	}
}
