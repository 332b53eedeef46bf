package parser

import "testing"

// TestNormalizeValue covers the sentinel rules
func TestNormalizeValue(t *testing.T) {
	cases := map[string]string{
		"":        "-",
		"   ":     "-",
		"BSUP":    "BSUP",
		"  M1  ":  "M1",
		"-":       "-",
		"Pata 3 ": "Pata 3",
	}
	for in, want := range cases {
		if got := NormalizeValue(in); got != want {
			t.Errorf("NormalizeValue(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestParseNumber covers comma stripping and invalid input
func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"1,234":   1234,
		"":        0,
		"abc":     0,
		"5.5":     5.5,
		" 12 ":    12,
		"1,234.5": 1234.5,
		"-3":      -3,
	}
	for in, want := range cases {
		if got := ParseNumber(in); got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}
}
