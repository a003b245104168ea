package inglish

import "regexp"

// Language codes supported as translation targets.
const (
	LangHindi   = "hi"
	LangMarathi = "mr"
)

// languageNames maps supported target codes to display names.
var languageNames = map[string]string{
	LangHindi:   "Hindi",
	LangMarathi: "Marathi",
}

// LanguageName returns the display name for a target language code, or
// the code itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// IsSupportedLanguage reports whether code is a valid translation target.
func IsSupportedLanguage(code string) bool {
	_, ok := languageNames[code]
	return ok
}

// SupportedLanguages returns the valid target language codes.
func SupportedLanguages() []string {
	return []string{LangHindi, LangMarathi}
}

// ContainsDevanagari reports whether text has at least one rune in the
// Devanagari block (U+0900 to U+097F).
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// rewrite is one ordered find/replace step of a language fixup pass.
type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// marathiRoman converts the most common Hindi function words in Roman
// Hinglish to their Marathi equivalents. Order is significant: the
// compound "karta hai" forms must rewrite before the bare "hai".
var marathiRoman = []rewrite{
	{regexp.MustCompile(`(?i)\bkarta hai\b`), "karte"},
	{regexp.MustCompile(`(?i)\bkarti hai\b`), "karte"},
	{regexp.MustCompile(`(?i)\bhai\b`), "ahe"},
	{regexp.MustCompile(`(?i)\bhain\b`), "ahet"},
	{regexp.MustCompile(`(?i)\bke\b`), "cha"},
	{regexp.MustCompile(`(?i)\bko\b`), "la"},
	{regexp.MustCompile(`(?i)\bpar\b`), "vpar"},
	{regexp.MustCompile(`(?i)\bupar\b`), "vpar"},
	{regexp.MustCompile(`(?i)\bke saath\b`), "saath"},
	{regexp.MustCompile(`(?i)\bdo\b`), "don"},
	{regexp.MustCompile(`(?i)\bek\b`), "ek"},
	{regexp.MustCompile(`(?i)\bhar\b`), "prati"},
}

// marathiDevanagari is the Devanagari counterpart of marathiRoman.
var marathiDevanagari = []rewrite{
	{regexp.MustCompile(`करता है`), "करते"},
	{regexp.MustCompile(`करती है`), "करते"},
	{regexp.MustCompile(`हैं`), "आहे"},
	{regexp.MustCompile(`है`), "आहे"},
	{regexp.MustCompile(`के`), "च्या"},
	{regexp.MustCompile(`को`), "ला"},
	{regexp.MustCompile(`पर`), "वर"},
	{regexp.MustCompile(`के साथ`), "साठ"},
	{regexp.MustCompile(`द्वारा`), "द्वारे"},
	{regexp.MustCompile(`एक`), "एक"},
}

// FixMarathiRoman rewrites Hindi function words in Roman-script text
// to Marathi. Applied as a post-pass when the target language is "mr".
func FixMarathiRoman(text string) string {
	for _, r := range marathiRoman {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

// FixMarathiDevanagari rewrites Hindi function words in Devanagari
// text to Marathi.
func FixMarathiDevanagari(text string) string {
	for _, r := range marathiDevanagari {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}
