package inglish

import (
	"regexp"
	"strings"

	"github.com/inglishlab/inglish/glossary"
)

// trieNode is one level of the word trie built from a glossary. Keys
// are lowercase words; terminal marks the end of a glossary term, so a
// walk can record a match at "member variables" and keep going to
// "member variables list".
type trieNode struct {
	children map[string]*trieNode
	terminal bool
}

func (n *trieNode) insert(words []string) {
	cur := n
	for _, w := range words {
		if cur.children == nil {
			cur.children = make(map[string]*trieNode)
		}
		next, ok := cur.children[w]
		if !ok {
			next = &trieNode{}
			cur.children[w] = next
		}
		cur = next
	}
	cur.terminal = true
}

// Extractor finds domain technical terms in English text and guards
// them with brackets so downstream translation cannot alter them.
// Matching is case-insensitive over whitespace-delimited words, with
// supplementary regex patterns for things a word list cannot express
// (backtick code, CamelCase identifiers).
type Extractor struct {
	trie       *trieNode
	devanagari map[string]string
	patterns   []*regexp.Regexp
}

// NewExtractor builds an Extractor from a loaded glossary. Patterns
// are a supplementary signal: an invalid regex is skipped, not fatal.
func NewExtractor(g *glossary.Glossary) *Extractor {
	e := &Extractor{
		trie:       &trieNode{},
		devanagari: make(map[string]string),
	}

	add := func(entries []glossary.Entry) {
		for _, ent := range entries {
			lower := strings.ToLower(ent.Term)
			e.trie.insert(strings.Fields(lower))
			if ent.Devanagari != "" {
				e.devanagari[lower] = ent.Devanagari
			}
		}
	}
	add(g.Terms)
	add(g.CompoundTerms)

	for _, p := range g.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		e.patterns = append(e.patterns, re)
	}
	return e
}

// token is a cleaned word with its byte offsets in the original text.
// Offsets cover the word after surrounding punctuation is trimmed, so
// guarding "array." brackets only "array".
type token struct {
	word  string
	start int
	end   int
}

const tokenPunct = ".,!?;:()\"'"

func tokenize(text string) []token {
	var tokens []token
	i := 0
	for i < len(text) {
		for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n') {
			i++
		}
		if i >= len(text) {
			break
		}
		start := i
		for i < len(text) && text[i] != ' ' && text[i] != '\t' && text[i] != '\n' {
			i++
		}
		end := i

		for start < end && strings.IndexByte(tokenPunct, text[start]) >= 0 {
			start++
		}
		for end > start && strings.IndexByte(tokenPunct, text[end-1]) >= 0 {
			end--
		}
		if start < end {
			tokens = append(tokens, token{word: text[start:end], start: start, end: end})
		}
	}
	return tokens
}

// Extract finds all glossary terms and pattern matches in text,
// resolved to non-overlapping spans with longest-match preference,
// sorted by position.
func (e *Extractor) Extract(text string) []ExtractedTerm {
	tokens := tokenize(text)

	var candidates []Span
	for i := range tokens {
		node := e.trie
		for j := i; j < len(tokens); j++ {
			next, ok := node.children[strings.ToLower(tokens[j].word)]
			if !ok {
				break
			}
			node = next
			if node.terminal {
				candidates = append(candidates, Span{
					Text:  text[tokens[i].start:tokens[j].end],
					Start: tokens[i].start,
					End:   tokens[j].end,
				})
			}
		}
	}

	for _, re := range e.patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, Span{
				Text:  text[loc[0]:loc[1]],
				Start: loc[0],
				End:   loc[1],
			})
		}
	}

	resolved := ResolveSpans(candidates)
	terms := make([]ExtractedTerm, 0, len(resolved))
	for _, s := range resolved {
		terms = append(terms, ExtractedTerm{
			Term:       s.Text,
			Devanagari: e.devanagari[strings.ToLower(s.Text)],
			Start:      s.Start,
			End:        s.End,
		})
	}
	return terms
}

// Guard extracts terms from text and wraps each in brackets. Returns
// the guarded text alongside the extracted terms.
func (e *Extractor) Guard(text string) (string, []ExtractedTerm) {
	return e.GuardWith(text, nil)
}

// GuardWith wraps the given terms in brackets. A nil terms slice
// triggers extraction first; callers with precomputed spans skip it.
// Terms must be non-overlapping and sorted by start offset, as
// Extract produces them.
func (e *Extractor) GuardWith(text string, terms []ExtractedTerm) (string, []ExtractedTerm) {
	if terms == nil {
		terms = e.Extract(text)
	}

	guarded := text
	for i := len(terms) - 1; i >= 0; i-- {
		t := terms[i]
		guarded = guarded[:t.Start] + "[" + guarded[t.Start:t.End] + "]" + guarded[t.End:]
	}
	return guarded, terms
}

var bracketRe = regexp.MustCompile(`\[([^\]]+)\]`)

// Unguard strips bracket guards, leaving the terms in place.
func Unguard(text string) string {
	return bracketRe.ReplaceAllString(text, "$1")
}

// GuardedTerms returns the bracketed terms of text in order of
// appearance.
func GuardedTerms(text string) []string {
	matches := bracketRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	terms := make([]string, len(matches))
	for i, m := range matches {
		terms[i] = m[1]
	}
	return terms
}

// ValidateConstraints reports whether translated preserves exactly the
// guarded terms of source. Order may change (the target language
// reorders words) but the multiset of terms must survive intact.
func ValidateConstraints(source, translated string) bool {
	counts := make(map[string]int)
	for _, t := range GuardedTerms(source) {
		counts[t]++
	}
	for _, t := range GuardedTerms(translated) {
		counts[t]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
