package inglish

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/inglishlab/inglish/glossary"
)

// Pipeline sequences term extraction, translation, and script
// conversion. Construction loads the domain glossary and builds the
// immutable tries and tables; a built Pipeline is safe for concurrent
// use.
type Pipeline struct {
	config    Config
	format    OutputFormat
	extractor *Extractor
	baseline  *RuleTranslator
	converter *ScriptConverter
	provider  Provider
	cache     TranslationCache
	translit  Transliterator
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProvider sets an LLM translation backend. The rule-based
// baseline remains the fallback for any provider failure.
func WithProvider(p Provider) Option {
	return func(pl *Pipeline) { pl.provider = p }
}

// WithCache enables result caching.
func WithCache(c TranslationCache) Option {
	return func(pl *Pipeline) { pl.cache = c }
}

// WithTransliterator sets the engine used to derive Roman output from
// Devanagari provider responses. Without one, Devanagari input on the
// reverse path is an error; the forward path is unaffected.
func WithTransliterator(tr Transliterator) Option {
	return func(pl *Pipeline) { pl.translit = tr }
}

// WithOutputFormat restricts which scripts Translate fills in.
// The default is FormatBoth.
func WithOutputFormat(f OutputFormat) Option {
	return func(pl *Pipeline) { pl.format = f }
}

// New builds a translation pipeline for the configured domain and
// target language. Fails when the target language is unsupported or
// the domain glossary does not exist.
func New(config Config, opts ...Option) (*Pipeline, error) {
	if config.Domain == "" {
		config.Domain = "programming"
	}
	if config.TargetLang == "" {
		config.TargetLang = LangHindi
	}
	if !IsSupportedLanguage(config.TargetLang) {
		return nil, &TranslationError{
			Message: "unsupported target language " + config.TargetLang,
		}
	}

	g, err := glossary.Load(config.Domain, config.GlossaryDir)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		config:    config,
		format:    FormatBoth,
		extractor: NewExtractor(g),
		baseline:  NewRuleTranslator(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.converter = NewScriptConverter(p.translit)
	return p, nil
}

// Translate converts one English sentence to code-mixed output.
// Technical terms survive verbatim; Metadata.ConstraintOK reports
// whether that held, and the pipeline proceeds either way. Empty
// input yields an empty Result without error.
func (p *Pipeline) Translate(ctx context.Context, text string) (*Result, error) {
	if text == "" {
		return &Result{
			Metadata: Metadata{
				Domain:         p.config.Domain,
				TargetLanguage: p.config.TargetLang,
				Translator:     p.translatorName(),
				ConstraintOK:   true,
			},
		}, nil
	}

	key := CacheKey(HashText(text), p.config.Domain, p.config.TargetLang)
	if p.cache != nil {
		if raw, ok := p.cache.Get(key); ok {
			var cached Result
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				cached.Metadata.Cached = true
				return &cached, nil
			}
		}
	}

	guarded, terms := p.extractor.Guard(text)

	termMap := make(map[string]string, len(terms))
	termNames := make([]string, 0, len(terms))
	for _, t := range terms {
		termNames = append(termNames, t.Term)
		if t.Devanagari != "" {
			termMap[strings.ToLower(t.Term)] = t.Devanagari
		}
	}

	roman, deva, translator, constraintOK, err := p.translateGuarded(ctx, guarded, termNames, termMap)
	if err != nil {
		return nil, err
	}

	if p.config.TargetLang == LangMarathi {
		roman = FixMarathiRoman(roman)
		deva = FixMarathiDevanagari(deva)
	}

	switch p.format {
	case FormatRoman:
		deva = ""
	case FormatDevanagari:
		roman = ""
	}

	result := &Result{
		OriginalEnglish:       text,
		IntermediateBracketed: guarded,
		HinglishRoman:         roman,
		HinglishDevanagari:    deva,
		Metadata: Metadata{
			Domain:         p.config.Domain,
			TargetLanguage: p.config.TargetLang,
			Translator:     translator,
			TermsExtracted: len(terms),
			TechnicalTerms: termNames,
			ConstraintOK:   constraintOK,
		},
	}

	if p.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			// Cache failures degrade to uncached operation.
			_ = p.cache.Set(key, string(raw))
		}
	}
	return result, nil
}

// translateGuarded runs the provider when configured, falling back to
// the baseline on any provider failure, and converts the surviving
// translation to both scripts.
func (p *Pipeline) translateGuarded(ctx context.Context, guarded string, termNames []string, termMap map[string]string) (roman, deva, translator string, constraintOK bool, err error) {
	if p.provider != nil {
		translations, perr := p.provider.Translate(ctx, TranslateRequest{
			Texts:      []string{guarded},
			TargetLang: p.config.TargetLang,
			Terms:      termNames,
		})
		if perr == nil && len(translations) == 1 && translations[0].Roman != "" {
			tr := translations[0]
			constraintOK = ValidateConstraints(guarded, tr.Roman)
			roman = Unguard(tr.Roman)
			if tr.Devanagari != "" {
				deva = Unguard(tr.Devanagari)
			} else {
				deva = p.converter.ToDevanagari(roman, termMap)
			}
			return roman, deva, "llm", constraintOK, nil
		}
	}

	translated := p.baseline.Translate(guarded)
	constraintOK = ValidateConstraints(guarded, translated)
	final := Unguard(translated)

	roman, deva, err = p.converter.BilingualOutput(final, termMap)
	if err != nil {
		return "", "", "", false, err
	}
	return roman, deva, "baseline", constraintOK, nil
}

func (p *Pipeline) translatorName() string {
	if p.provider != nil {
		return "llm"
	}
	return "baseline"
}

// TranslateBatch translates texts in order. Results are positional:
// the i-th result corresponds to the i-th input.
func (p *Pipeline) TranslateBatch(ctx context.Context, texts []string) ([]*Result, error) {
	results := make([]*Result, 0, len(texts))
	for _, text := range texts {
		r, err := p.Translate(ctx, text)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// ExtractTerms exposes the extraction stage on its own, for callers
// that only need term discovery.
func (p *Pipeline) ExtractTerms(text string) []ExtractedTerm {
	return p.extractor.Extract(text)
}

// Domain returns the glossary domain this pipeline was built for.
func (p *Pipeline) Domain() string { return p.config.Domain }

// TargetLang returns the configured target language code.
func (p *Pipeline) TargetLang() string { return p.config.TargetLang }
