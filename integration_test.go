package inglish_test

import (
	"context"
	"strings"
	"testing"

	"github.com/inglishlab/inglish"
	"github.com/inglishlab/inglish/cache"
	"github.com/inglishlab/inglish/processor"
	"github.com/inglishlab/inglish/provider"
	"github.com/inglishlab/inglish/translit"
)

// Integration tests using all real components

func TestIntegration_ProviderTranslation(t *testing.T) {
	p, err := inglish.New(
		inglish.Config{Domain: "programming", TargetLang: inglish.LangHindi},
		inglish.WithProvider(provider.NewMockProvider()),
		inglish.WithCache(cache.NewInMemoryCache(3600)),
		inglish.WithTransliterator(translit.New()),
	)
	if err != nil {
		t.Fatal(err)
	}

	r, err := p.Translate(context.Background(), "The function returns a boolean value.")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if r.HinglishRoman != "function ek boolean value return karta hai." {
		t.Errorf("Roman = %q", r.HinglishRoman)
	}
	if r.HinglishDevanagari != "फंक्शन एक बूलियन व्हैल्यू रिटर्न करता है." {
		t.Errorf("Devanagari = %q", r.HinglishDevanagari)
	}
	if r.Metadata.Translator != "llm" {
		t.Errorf("Translator = %q", r.Metadata.Translator)
	}
	if !r.Metadata.ConstraintOK {
		t.Error("expected ConstraintOK")
	}
}

func TestIntegration_CacheRoundTrip(t *testing.T) {
	c := cache.NewInMemoryCache(3600)
	p, err := inglish.New(
		inglish.Config{Domain: "programming", TargetLang: inglish.LangHindi},
		inglish.WithCache(c),
	)
	if err != nil {
		t.Fatal(err)
	}

	text := "The for loop iterates over the array of integers."

	r1, err := p.Translate(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Metadata.Cached {
		t.Error("first translation should not be cached")
	}

	r2, err := p.Translate(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	if !r2.Metadata.Cached {
		t.Error("second translation should be cached")
	}
	if r2.HinglishRoman != r1.HinglishRoman {
		t.Errorf("cached Roman differs: %q vs %q", r2.HinglishRoman, r1.HinglishRoman)
	}
}

func TestIntegration_HTMLDocument(t *testing.T) {
	p, err := inglish.New(
		inglish.Config{Domain: "programming", TargetLang: inglish.LangHindi},
		inglish.WithOutputFormat(inglish.FormatRoman),
	)
	if err != nil {
		t.Fatal(err)
	}

	doc := &inglish.Document{
		Processor: processor.NewHTMLProcessor(),
		Content:   `<div><p>The array is sorted.</p><code>arr.sort()</code></div>`,
	}

	result, err := doc.Process(context.Background(), p)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if !strings.Contains(result.Content, "array hai sorted.") {
		t.Errorf("paragraph not translated: %s", result.Content)
	}
	if !strings.Contains(result.Content, "arr.sort()") {
		t.Errorf("code content altered: %s", result.Content)
	}
	if result.TotalNodes != 1 {
		t.Errorf("TotalNodes = %d, want 1", result.TotalNodes)
	}
}

func TestIntegration_GoSource(t *testing.T) {
	p, err := inglish.New(
		inglish.Config{Domain: "programming", TargetLang: inglish.LangHindi},
		inglish.WithOutputFormat(inglish.FormatRoman),
	)
	if err != nil {
		t.Fatal(err)
	}

	src := `package sample

// The function returns a boolean value.
func ok() bool { return true }
`
	doc := &inglish.Document{
		Processor: processor.NewGoProcessor(),
		Content:   src,
	}

	result, err := doc.Process(context.Background(), p)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if !strings.Contains(result.Content, "// function ek boolean value return karta hai.") {
		t.Errorf("comment not translated:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, "func ok() bool") {
		t.Errorf("code altered:\n%s", result.Content)
	}
}

func TestIntegration_MarathiBaseline(t *testing.T) {
	p, err := inglish.New(
		inglish.Config{Domain: "programming", TargetLang: inglish.LangMarathi},
	)
	if err != nil {
		t.Fatal(err)
	}

	r, err := p.Translate(context.Background(), "The function returns a boolean value.")
	if err != nil {
		t.Fatal(err)
	}
	if r.HinglishRoman != "function ek boolean value return karte." {
		t.Errorf("Roman = %q", r.HinglishRoman)
	}
}

func TestIntegration_ProviderFallbackToBaseline(t *testing.T) {
	broken := provider.NewMockProvider()
	broken.Err = &inglish.ProviderError{Message: "rate limited", Retryable: true}

	p, err := inglish.New(
		inglish.Config{Domain: "programming", TargetLang: inglish.LangHindi},
		inglish.WithProvider(broken),
	)
	if err != nil {
		t.Fatal(err)
	}

	r, err := p.Translate(context.Background(), "The function returns a boolean value.")
	if err != nil {
		t.Fatalf("fallback should not surface provider error: %v", err)
	}
	if r.Metadata.Translator != "baseline" {
		t.Errorf("Translator = %q, want baseline", r.Metadata.Translator)
	}
	if r.HinglishRoman != "function ek boolean value return karta hai." {
		t.Errorf("Roman = %q", r.HinglishRoman)
	}
}
