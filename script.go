package inglish

import (
	"sort"
	"strconv"
	"strings"
)

// romanToDeva maps the closed set of Roman Hindi words the baseline
// produces to their Devanagari spellings. A general transliteration
// scheme is wrong for this direction: scheme rules suppress word-final
// 'a' ("karta" would render as कर्त instead of करता) and convert the
// digits inside sentinel keys, breaking restoration. The word set is
// small and closed, so a direct map is both simpler and correct.
// Tech verb roots (return, store, ...) are included because SOV
// reordering leaves them at sentence end outside any guarded term.
// Unknown Latin tokens stay Latin, which is the intended code-mixing.
var romanToDeva = map[string]string{
	// numbers
	"ek": "एक", "do": "दो", "teen": "तीन", "chaar": "चार",
	"paanch": "पाँच", "chhe": "छह", "saat": "सात",
	"aath": "आठ", "nau": "नौ", "das": "दस", "shunya": "शून्य",

	// pronouns, nominative
	"yeh": "यह", "voh": "वह", "ye": "ये", "ve": "वे",

	// pronouns, oblique
	"iske khud ka": "इसके खुद का",
	"khud ka":      "खुद का",
	"iske":         "इसके",
	"is":           "इस",
	"us":           "उस",
	"in":           "इन",
	"un":           "उन",

	// postpositions, multi-word
	"ke saath":   "के साथ",
	"ke upar":    "के ऊपर",
	"jab tak":    "जब तक",
	"kabhi nahi": "कभी नहीं",

	// postpositions, single word
	"mein": "में", "par": "पर", "ko": "को", "ka": "का", "se": "से",

	// linking verbs
	"hai": "है", "hain": "हैं", "tha": "था", "the": "थे",
	"ho": "हो", "gaya": "गया",

	// auxiliary verb fragments, left behind when pass 1 stashes the
	// verb root out of a compound phrase
	"karta hai": "करता है",
	"karta tha": "करता था",
	"karo":      "करो",
	"kiya":      "किया",

	// action verbs, multi-word
	"banata hai":        "बनाता है",
	"upyog karta hai":   "उपयोग करता है",
	"iterate karta hai": "iterate करता है",
	"jaari rehta hai":   "जारी रहता है",
	"ban jaata hai":     "बन जाता है",
	"upyog karo":        "उपयोग करो",
	"upyog kiya":        "उपयोग किया",
	"assign karo":       "असाइन करो",
	"assign kiya":       "असाइन किया",
	"iterate karo":      "iterate करो",
	"iterate kiya":      "iterate किया",

	// action verbs, single-word
	"banao": "बनाओ", "banaya": "बनाया",
	"badhao": "बढ़ाओ", "badhaya": "बढ़ाया", "ghatao": "घटाओ",

	// tech verb roots
	"return":  "रिटर्न",
	"store":   "स्टोर",
	"call":    "कॉल",
	"define":  "डिफाइन",
	"declare": "डिक्लेयर",
	"throw":   "थ्रो",
	"run":     "रन",
	"execute": "एग्जिक्यूट",

	// adjectives
	"har": "हर", "sabhi": "सभी", "kai": "कई", "naya": "नया", "wahi": "वही",
	"pehla": "पहला", "aakhri": "आखिरी", "agla": "अगला", "pichla": "पिछला",

	// conjunctions and adverbs
	"aur": "और", "ya": "या", "lekin": "लेकिन", "phir": "फिर",
	"baad": "बाद", "pehle": "पहले", "jab": "जब", "nahi": "नहीं",
	"bhi": "भी", "sirf": "सिर्फ", "hamesha": "हमेशा",

	// common nouns
	"naam": "नाम", "samay": "समय", "tarika": "तरीका",
}

type romanPair struct {
	roman string
	deva  string
}

// romanSorted is romanToDeva sorted longest-key-first so "iske khud ka"
// matches before "iske" and "ka". Equal lengths tie-break on the key
// for determinism.
var romanSorted = func() []romanPair {
	pairs := make([]romanPair, 0, len(romanToDeva))
	for r, d := range romanToDeva {
		pairs = append(pairs, romanPair{r, d})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if len(pairs[i].roman) != len(pairs[j].roman) {
			return len(pairs[i].roman) > len(pairs[j].roman)
		}
		return pairs[i].roman < pairs[j].roman
	})
	return pairs
}()

// Sentinel keys are STX + decimal index + ETX. Control bytes cannot
// occur in normal text and never satisfy a word boundary, so stashed
// content is inert under the word-level passes.
const (
	sentinelOpen  = "\x02"
	sentinelClose = "\x03"
)

func sentinelKey(i int) string {
	return sentinelOpen + strconv.Itoa(i) + sentinelClose
}

// Boundary byte sets for whole-word matching. A word starts after
// whitespace or a sentinel byte; what may follow differs between the
// stash pass and the word-map pass.
const (
	boundaryBeforeSet = " \t\n\x02\x03"
	stashAfterSet     = " \t\n\x02\x03.,!?;:"
	wordAfterSet      = " \t\n.,!?;:\x02"
)

func inSet(b byte, set string) bool {
	return strings.IndexByte(set, b) >= 0
}

// replaceWholeWord substitutes every case-insensitive occurrence of
// word in s whose neighbors satisfy the boundary sets, calling repl
// per match. Matching is a byte scan: the words are ASCII, and a
// multibyte rune on either side simply fails the boundary test.
func replaceWholeWord(s, word, afterSet string, repl func() string) string {
	n := len(word)
	if n == 0 || len(s) < n {
		return s
	}

	var b strings.Builder
	i := 0
	for i+n <= len(s) {
		if strings.EqualFold(s[i:i+n], word) &&
			(i == 0 || inSet(s[i-1], boundaryBeforeSet)) &&
			(i+n == len(s) || inSet(s[i+n], afterSet)) {
			b.WriteString(repl())
			i += n
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	b.WriteString(s[i:])
	return b.String()
}

// ScriptConverter converts Roman Hinglish to Devanagari and back.
// The forward direction is self-contained; the reverse direction needs
// an external Transliterator and fails without one only when the input
// actually contains Devanagari. Stateless after construction, safe for
// concurrent use.
type ScriptConverter struct {
	translit Transliterator
}

// NewScriptConverter builds a converter. translit may be nil when only
// the forward (Roman to Devanagari) direction is needed.
func NewScriptConverter(translit Transliterator) *ScriptConverter {
	return &ScriptConverter{translit: translit}
}

// ToDevanagari converts Roman Hinglish to Devanagari in three passes:
// stash glossary term phonetics behind sentinels, map the known Hindi
// words, restore the stash. termMap keys are lowercase English terms,
// values their phonetic Devanagari spellings.
func (c *ScriptConverter) ToDevanagari(text string, termMap map[string]string) string {
	if text == "" {
		return ""
	}

	// Pass 1: stash term phonetics, longest term first so "for loop"
	// is never shadowed by "loop".
	terms := make([]string, 0, len(termMap))
	for t := range termMap {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	var stashed []string
	result := text
	for _, term := range terms {
		deva := termMap[term]
		if deva == "" {
			continue
		}
		result = replaceWholeWord(result, term, stashAfterSet, func() string {
			stashed = append(stashed, deva)
			return sentinelKey(len(stashed) - 1)
		})
	}

	// Pass 2: word-level map, longest first.
	for _, p := range romanSorted {
		deva := p.deva
		result = replaceWholeWord(result, p.roman, wordAfterSet, func() string {
			return deva
		})
	}

	// Pass 3: restore.
	for i, deva := range stashed {
		result = strings.ReplaceAll(result, sentinelKey(i), deva)
	}
	return result
}

// ToRoman converts any Devanagari runs in text to Roman via the
// configured Transliterator, leaving Latin runs untouched. Input
// without Devanagari is returned unchanged and never needs the
// transliterator.
func (c *ScriptConverter) ToRoman(text string) (string, error) {
	if !ContainsDevanagari(text) {
		return text, nil
	}
	if c.translit == nil {
		return "", &TransliterationError{
			Reason: "no transliterator configured for Devanagari input",
		}
	}

	var b strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		j := i
		deva := runes[i] >= 0x0900 && runes[i] <= 0x097F
		for j < len(runes) && (runes[j] >= 0x0900 && runes[j] <= 0x097F) == deva {
			j++
		}
		run := string(runes[i:j])
		if deva {
			roman, err := c.translit.ToRoman(run)
			if err != nil {
				return "", err
			}
			b.WriteString(roman)
		} else {
			b.WriteString(run)
		}
		i = j
	}
	return b.String(), nil
}

// Convert renders text in the requested format. FormatRoman returns
// Roman (transliterating any Devanagari runs), FormatDevanagari runs
// the forward three-pass conversion. Any other format returns the text
// unchanged.
func (c *ScriptConverter) Convert(text string, format OutputFormat, termMap map[string]string) (string, error) {
	switch format {
	case FormatRoman:
		return c.ToRoman(text)
	case FormatDevanagari:
		return c.ToDevanagari(text, termMap), nil
	default:
		return text, nil
	}
}

// BilingualOutput derives both scripts from a single translated
// string. Text already containing Devanagari is taken as the
// Devanagari form and Roman is derived from it; otherwise the text is
// the Roman form and Devanagari is derived forward.
func (c *ScriptConverter) BilingualOutput(translated string, termMap map[string]string) (roman, devanagari string, err error) {
	if ContainsDevanagari(translated) {
		roman, err = c.ToRoman(translated)
		if err != nil {
			return "", "", err
		}
		return roman, translated, nil
	}
	return translated, c.ToDevanagari(translated, termMap), nil
}
