package translit

import (
	"testing"

	"github.com/inglishlab/inglish"
)

var _ inglish.Transliterator = (*ITRANS)(nil)

func TestToRoman(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"copula", "है", "hai"},
		{"copula plural anusvara", "हैं", "hain"},
		{"inherent vowel", "करता", "karataa"},
		{"matra e", "के", "ke"},
		{"independent long vowel", "ऊपर", "uupara"},
		{"virama cluster", "शून्य", "shuunya"},
		{"negation", "नहीं", "nahiin"},
		{"combining nukta", "फ़ॉर", "fora"},
		{"precomposed nukta consonant", "\u095B\u093E", "zaa"},
		{"decomposed nukta consonant", "\u091C\u093C\u093E", "zaa"},
		{"precomposed matches decomposed", "\u095E\u0949\u0930", "fora"},
		{"danda", "जब।", "jaba."},
		{"devanagari digits", "१२३", "123"},
		{"mixed latin passthrough", "value है", "value hai"},
		{"word sequence", "जब तक", "jaba taka"},
		{"visarga", "दुःख", "duHkha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.ToRoman(tt.in)
			if err != nil {
				t.Fatalf("ToRoman(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ToRoman(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToRomanNoDevanagariLeft(t *testing.T) {
	tr := New()
	got, err := tr.ToRoman("फ़ॉर लूप के ऊपर iterate करता है")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		if r >= 0x0900 && r <= 0x097F {
			t.Fatalf("Devanagari rune %q left in output %q", r, got)
		}
	}
}
