// Package translit provides Devanagari to Roman transliteration in a
// simplified ITRANS scheme. It serves the reverse direction of script
// conversion, which only runs when input already carries Devanagari
// (typically an LLM response); the forward direction never needs it.
package translit

import "strings"

// consonants maps each Devanagari consonant to its Roman form without
// the inherent vowel.
var consonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "ng",
	'च': "ch", 'छ': "chh", 'ज': "j", 'झ': "jh", 'ञ': "ny",
	'ट': "T", 'ठ': "Th", 'ड': "D", 'ढ': "Dh", 'ण': "N",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "sh", 'ष': "Sh", 'स': "s", 'ह': "h",
	// Precomposed nukta consonants (U+0958..U+095F). These are
	// composition exclusions, so they are spelled as escapes; the
	// decomposed base+nukta form is handled separately in ToRoman.
	'\u0958': "q", '\u0959': "Kh", '\u095A': "G", '\u095B': "z",
	'\u095C': "D", '\u095D': "Dh", '\u095E': "f", '\u095F': "y",
}

// vowels are the independent vowel letters.
var vowels = map[rune]string{
	'अ': "a", 'आ': "aa", 'इ': "i", 'ई': "ii",
	'उ': "u", 'ऊ': "uu", 'ऋ': "ri",
	'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",
	'ऑ': "o", 'ऍ': "e",
}

// matras are the dependent vowel signs that replace the inherent a.
var matras = map[rune]string{
	'ा': "aa", 'ि': "i", 'ी': "ii",
	'ु': "u", 'ू': "uu", 'ृ': "ri",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au",
	'ॉ': "o", 'ॅ': "e",
}

var digits = map[rune]string{
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

const (
	virama       = '्' // suppresses the inherent vowel
	anusvara     = 'ं'
	chandrabindu = 'ँ'
	visarga      = 'ः'
	nukta        = '़'
	danda        = '।'
	doubleDanda  = '॥'
)

// nuktaForms maps a base consonant to its nukta variant's Roman form,
// for text where the nukta arrives as a combining mark instead of a
// precomposed rune.
var nuktaForms = map[string]string{
	"k": "q", "kh": "Kh", "g": "G", "j": "z", "jh": "zh",
	"D": "D", "Dh": "Dh", "ph": "f",
}

// ITRANS transliterates Devanagari text to Roman script.
// The zero value is ready to use.
type ITRANS struct{}

// New returns an ITRANS transliterator.
func New() *ITRANS {
	return &ITRANS{}
}

// ToRoman converts Devanagari runs in text to Roman. Non-Devanagari
// runes pass through unchanged, so mixed input is safe. The conversion
// never fails; the error return satisfies the Transliterator contract.
func (t *ITRANS) ToRoman(text string) (string, error) {
	var b strings.Builder
	pending := "" // consonant awaiting its vowel

	flush := func(withInherent bool) {
		if pending == "" {
			return
		}
		b.WriteString(pending)
		if withInherent {
			b.WriteByte('a')
		}
		pending = ""
	}

	for _, r := range text {
		switch {
		case r == nukta:
			if alt, ok := nuktaForms[pending]; ok {
				pending = alt
			}
		case r == virama:
			flush(false)
		case r == anusvara:
			flush(true)
			b.WriteByte('n')
		case r == chandrabindu:
			flush(true)
			b.WriteByte('n')
		case r == visarga:
			flush(true)
			b.WriteByte('H')
		case r == danda, r == doubleDanda:
			flush(true)
			b.WriteByte('.')
		default:
			if m, ok := matras[r]; ok {
				if pending != "" {
					b.WriteString(pending)
					pending = ""
				}
				b.WriteString(m)
				continue
			}
			if c, ok := consonants[r]; ok {
				flush(true)
				pending = c
				continue
			}
			if v, ok := vowels[r]; ok {
				flush(true)
				b.WriteString(v)
				continue
			}
			if d, ok := digits[r]; ok {
				flush(true)
				b.WriteString(d)
				continue
			}
			// Latin text, spaces, punctuation, or Devanagari signs we
			// do not model pass through.
			flush(true)
			b.WriteRune(r)
		}
	}
	flush(true)
	return b.String(), nil
}
