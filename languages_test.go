package inglish

import "testing"

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"hi", "Hindi"},
		{"mr", "Marathi"},
		{"xx", "xx"},
	}
	for _, tt := range tests {
		if got := LanguageName(tt.code); got != tt.want {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	if !IsSupportedLanguage("hi") || !IsSupportedLanguage("mr") {
		t.Error("hi and mr must be supported")
	}
	if IsSupportedLanguage("en") {
		t.Error("en is a source language, not a target")
	}
}

func TestContainsDevanagari(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"for loop ke upar iterate karta hai", false},
		{"फ़ॉर लूप के ऊपर iterate करता है", true},
		{"", false},
		{"mixed ऐरे text", true},
	}
	for _, tt := range tests {
		if got := ContainsDevanagari(tt.text); got != tt.want {
			t.Errorf("ContainsDevanagari(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFixMarathiRoman(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"array ke upar iterate karta hai", "array cha vpar iterate karte"},
		{"yeh ek value hai", "yeh ek value ahe"},
		{"is mein chaar cheezein hain", "is mein chaar cheezein ahet"},
		{"har item ko do baar", "prati item la don baar"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FixMarathiRoman(tt.in); got != tt.want {
			t.Errorf("FixMarathiRoman(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFixMarathiDevanagari(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"iterate करता है", "iterate करते"},
		{"value है", "value आहे"},
		{"को दो", "ला दो"},
	}
	for _, tt := range tests {
		if got := FixMarathiDevanagari(tt.in); got != tt.want {
			t.Errorf("FixMarathiDevanagari(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
