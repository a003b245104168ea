// Package inglish provides code-mixed technical translation to Hindi/Marathi.
package inglish

import "context"

// OutputFormat selects which script(s) a pipeline produces.
type OutputFormat string

const (
	// FormatRoman produces Roman-script Hinglish only.
	FormatRoman OutputFormat = "roman"
	// FormatDevanagari produces Devanagari-script output only.
	FormatDevanagari OutputFormat = "devanagari"
	// FormatBoth produces both scripts (the default).
	FormatBoth OutputFormat = "both"
)

// Span is a half-open byte-offset range into an input string.
// Invariant: 0 <= Start < End <= len(input).
type Span struct {
	Text  string // matched text as it appears in the input
	Start int
	End   int
}

// ExtractedTerm is a technical term located in an input sentence.
// Devanagari holds the glossary's phonetic spelling, or "" when the
// glossary entry carries none.
type ExtractedTerm struct {
	Term       string
	Devanagari string
	Start      int
	End        int
}

// Config holds configuration for a translation pipeline.
type Config struct {
	Domain      string // glossary domain (default: "programming")
	TargetLang  string // "hi" or "mr" (default: "hi")
	GlossaryDir string // optional directory overriding the builtin glossaries
}

// Result is the output of a single pipeline translation.
type Result struct {
	OriginalEnglish       string   `json:"original_english"`
	IntermediateBracketed string   `json:"intermediate_bracketed"`
	HinglishRoman         string   `json:"hinglish_roman"`
	HinglishDevanagari    string   `json:"hinglish_devanagari"`
	Metadata              Metadata `json:"metadata"`
}

// Metadata describes how a Result was produced.
type Metadata struct {
	Domain         string   `json:"domain"`
	TargetLanguage string   `json:"target_language"`
	Translator     string   `json:"translator"` // "baseline" or "llm"
	TermsExtracted int      `json:"terms_extracted"`
	TechnicalTerms []string `json:"technical_terms"`
	// ConstraintOK is false when guarded terms were lost or altered
	// during translation. Reported, never fatal: the pipeline proceeds
	// with whatever text it has.
	ConstraintOK bool `json:"constraint_ok"`
	Cached       bool `json:"cached,omitempty"`
}

// Translation is a single bilingual translation from a Provider.
// Both fields keep the [bracket] guards of the request text; the
// pipeline validates and strips them.
type Translation struct {
	Roman      string
	Devanagari string
}

// TranslateRequest contains the parameters for a provider translation call.
type TranslateRequest struct {
	Texts      []string // bracket-guarded English sentences
	TargetLang string   // "hi" or "mr"
	Terms      []string // guarded technical terms, for prompt emphasis
}

// Provider is the interface for LLM translation backends.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) ([]Translation, error)
}

// TranslationCache is the interface for caching pipeline results.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Transliterator converts Devanagari text to Roman script. It is an
// external collaborator: the forward (Roman to Devanagari) path never
// needs it, and its absence is an error only when Devanagari input is
// actually encountered on the reverse path.
type Transliterator interface {
	ToRoman(devanagari string) (string, error)
}

// TextNode represents a translatable unit extracted from a document.
type TextNode struct {
	ID       string            // unique identifier
	Text     string            // original text content (trimmed)
	Hash     string            // SHA-256 hash of Text
	NodeType string            // content type: "html_text", "go_comment", etc.
	Metadata map[string]string // additional info (parent tag, position, etc.)
}

// ContentProcessor extracts translatable nodes from a document format
// and applies translations back.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error)
	ContentType() string
}
