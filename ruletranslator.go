package inglish

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// grammarRule is one structural rewrite. Rules run in a fixed order;
// unless, when set, suppresses the rule for inputs it matches (RE2 has
// no lookaround, so exclusions are a separate pattern).
type grammarRule struct {
	pattern     *regexp.Regexp
	replacement string
	unless      *regexp.Regexp
}

func (r grammarRule) apply(s string) string {
	if r.unless != nil && r.unless.MatchString(s) {
		return s
	}
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// hindiWords maps lowercase English tokens to their Hinglish
// substitution. An empty value drops the word (English articles have
// no Hindi counterpart). Tokens absent from the table pass through
// untranslated; that residue is the code-mixing, not a failure.
var hindiWords = map[string]string{
	// articles and demonstratives
	"the":   "",
	"a":     "ek",
	"an":    "ek",
	"this":  "is",
	"that":  "us",
	"each":  "har",
	"every": "har",
	"all":   "sabhi",

	// copulas
	"is":   "hai",
	"are":  "hain",
	"was":  "tha",
	"were": "the",

	// numbers
	"zero":  "shunya",
	"one":   "ek",
	"two":   "do",
	"three": "teen",
	"four":  "chaar",
	"five":  "paanch",
	"six":   "chhah",
	"seven": "saat",
	"eight": "aath",
	"nine":  "nau",
	"ten":   "das",

	// third-person verbs
	"returns":   "return karta hai",
	"iterates":  "iterate karta hai",
	"stores":    "store karta hai",
	"creates":   "banata hai",
	"uses":      "upyog karta hai",
	"continues": "jaari rehta hai",
	"becomes":   "ban jaata hai",
	"calls":     "call karta hai",
	"runs":      "run karta hai",
	"executes":  "execute karta hai",
	"defines":   "define karta hai",
	"declares":  "declare karta hai",
	"throws":    "throw karta hai",

	// imperatives
	"call":      "call karo",
	"use":       "upyog karo",
	"create":    "banao",
	"assign":    "assign karo",
	"increment": "badhao",
	"decrement": "ghatao",

	// postpositions and prepositions
	"over":  "ke upar",
	"with":  "ke saath",
	"until": "jab tak",
	"in":    "mein",
	"on":    "par",
	"to":    "ko",
	"from":  "se",

	// conjunctions and adverbs
	"and":    "aur",
	"or":     "ya",
	"but":    "lekin",
	"then":   "phir",
	"when":   "jab",
	"not":    "nahi",
	"also":   "bhi",
	"only":   "sirf",
	"always": "hamesha",
	"never":  "kabhi nahi",

	// pronouns and adjectives
	"it":       "yeh",
	"its":      "iske",
	"they":     "ye",
	"own":      "khud ka",
	"new":      "naya",
	"same":     "wahi",
	"first":    "pehla",
	"last":     "aakhri",
	"next":     "agla",
	"previous": "pichla",
	"many":     "kai",
	"multiple": "kai",

	// common nouns
	"name": "naam",
	"time": "samay",
	"way":  "tarika",
}

// sovVerbPhrases are the multi-word Hindi verb phrases the reorder
// step knows how to relocate. Sorted longest-first at init so a longer
// phrase is never shadowed by a shorter one it contains. Bare
// "karta hai" is deliberately absent: moving it alone would strand the
// English verb root it belongs to.
var sovVerbPhrases = []string{
	"iterate karta hai",
	"execute karta hai",
	"declare karta hai",
	"return karta hai",
	"define karta hai",
	"upyog karta hai",
	"store karta hai",
	"throw karta hai",
	"jaari rehta hai",
	"call karta hai",
	"run karta hai",
	"ban jaata hai",
	"banata hai",
}

func init() {
	sort.SliceStable(sovVerbPhrases, func(i, j int) bool {
		return len(sovVerbPhrases[i]) > len(sovVerbPhrases[j])
	})
}

const placeholderDelim = "\x01"

var (
	placeholderTermPairRe = regexp.MustCompile(`(\x01\d+\x01) of (\x01\d+\x01)`)
	spaceBeforePunctRe    = regexp.MustCompile(`\s+([.,;!?:])`)
	multiSpaceRe          = regexp.MustCompile(`\s+`)
)

// RuleTranslator is the deterministic baseline: word substitution plus
// ordered grammar rewrites over bracket-guarded English, producing
// Roman-script Hinglish. It never fails; anything it cannot translate
// passes through verbatim. Stateless after construction, safe for
// concurrent use.
type RuleTranslator struct {
	preRules []grammarRule
}

// NewRuleTranslator builds the baseline translator.
func NewRuleTranslator() *RuleTranslator {
	return &RuleTranslator{
		preRules: []grammarRule{
			// possession: "X has Y." -> "X mein Y hain."
			// "has been" is the perfect tense, not possession.
			{
				pattern:     regexp.MustCompile(`(?i)^(.+) has (.+?)([.!?]?)$`),
				replacement: "$1 mein $2 hain$3",
				unless:      regexp.MustCompile(`(?i)\bhas been\b`),
			},
		},
	}
}

// Name identifies the translator in result metadata.
func (t *RuleTranslator) Name() string { return "baseline" }

// Translate converts guarded English to Roman Hinglish. Bracketed
// terms survive byte-for-byte; everything else is substituted and
// reordered. Empty input yields empty output.
func (t *RuleTranslator) Translate(guarded string) string {
	if guarded == "" {
		return ""
	}

	s := guarded
	for _, rule := range t.preRules {
		s = rule.apply(s)
	}

	// Protect bracketed terms behind numbered placeholders so word
	// substitution cannot touch them.
	var protected []string
	s = bracketRe.ReplaceAllStringFunc(s, func(m string) string {
		key := placeholderDelim + strconv.Itoa(len(protected)) + placeholderDelim
		protected = append(protected, m)
		return key
	})

	s = t.substituteWords(s)

	// "[X] of [Y]" -> "[Y] ka [X]", then any residual "of".
	s = placeholderTermPairRe.ReplaceAllString(s, "$2 ka $1")
	s = strings.ReplaceAll(s, " of ", " ka ")

	s = reorderSOV(s)

	for i, original := range protected {
		s = strings.ReplaceAll(s, placeholderDelim+strconv.Itoa(i)+placeholderDelim, original)
	}

	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = spaceBeforePunctRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// substituteWords maps each non-placeholder token through hindiWords,
// keeping trailing punctuation attached. An empty mapping drops the
// word; an unmapped word passes through unchanged.
func (t *RuleTranslator) substituteWords(s string) string {
	var out []string
	for _, tok := range strings.Fields(s) {
		if strings.Contains(tok, placeholderDelim) {
			out = append(out, tok)
			continue
		}

		core := tok
		suffix := ""
		for len(core) > 0 && strings.IndexByte(".,!?;:", core[len(core)-1]) >= 0 {
			suffix = string(core[len(core)-1]) + suffix
			core = core[:len(core)-1]
		}

		mapped, ok := hindiWords[strings.ToLower(core)]
		switch {
		case !ok:
			out = append(out, tok)
		case mapped == "":
			if suffix != "" {
				out = append(out, suffix)
			}
		default:
			out = append(out, mapped+suffix)
		}
	}
	return strings.Join(out, " ")
}

// reorderSOV moves the first known verb phrase to sentence-final
// position when it sits strictly between text on both sides,
// preserving trailing punctuation. Only one phrase is moved per
// sentence; multi-clause inputs keep their remaining phrases in place.
func reorderSOV(s string) string {
	body := s
	punct := ""
	for len(body) > 0 && strings.IndexByte(".!?", body[len(body)-1]) >= 0 {
		punct = string(body[len(body)-1]) + punct
		body = body[:len(body)-1]
	}
	body = strings.TrimRight(body, " ")

	for _, vp := range sovVerbPhrases {
		idx := strings.Index(body, vp)
		if idx <= 0 {
			continue
		}
		end := idx + len(vp)
		if end >= len(body) {
			continue
		}
		if body[idx-1] != ' ' || body[end] != ' ' {
			continue
		}

		rest := strings.TrimRight(body[:idx], " ") + " " + strings.TrimLeft(body[end:], " ")
		return strings.TrimRight(rest, " ") + " " + vp + punct
	}
	return s
}
