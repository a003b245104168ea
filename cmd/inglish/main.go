// Command inglish translates English technical text into code-mixed
// Hindi or Marathi, preserving technical vocabulary verbatim.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inglishlab/inglish"
	"github.com/inglishlab/inglish/cache"
	"github.com/inglishlab/inglish/processor"
	"github.com/inglishlab/inglish/provider"
	"github.com/inglishlab/inglish/translit"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = inglish.Version
	commit    = inglish.GitCommit
	buildDate = inglish.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inglish", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	domain := fs.String("domain", "programming", "Glossary domain (programming, physics)")
	lang := fs.String("lang", "hi", "Target language code (hi, mr)")
	format := fs.String("format", "both", "Output script: roman, devanagari, or both")
	glossaryDir := fs.String("glossary-dir", "", "Directory with glossary overrides")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	useLLM := fs.Bool("llm", false, "Translate via OpenAI instead of the rule engine")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "", "OpenAI model to use")
	rpm := fs.Int("rpm", 0, "Rate limit in requests per minute (0 to disable)")
	cacheTTL := fs.Int("cache-ttl", 3600, "Cache TTL in seconds (0 to disable)")
	content := fs.String("content", "text", "Input kind: text, html, or go")
	diffFile := fs.String("diff", "", "Compare with a previous version of the document")
	updateMode := fs.Bool("update", false, "With --diff, translate only new/changed content")
	batch := fs.Bool("batch", false, "Translate each input line separately")
	termsOnly := fs.Bool("terms", false, "Only extract technical terms, no translation")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", inglish.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	outFormat, err := parseFormat(*format)
	if err != nil {
		return err
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
		inputName = "stdin"
	} else {
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = string(data)
		inputName = filepath.Base(inputPath)
	}

	// Build the pipeline
	opts := []inglish.Option{
		inglish.WithOutputFormat(outFormat),
		inglish.WithTransliterator(translit.New()),
	}

	if *cacheTTL > 0 {
		opts = append(opts, inglish.WithCache(cache.NewInMemoryCache(*cacheTTL)))
	}

	if *useLLM {
		key := *apiKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
		}

		var llm inglish.Provider = provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey: key,
			Model:  *model,
		})
		llm = inglish.NewRetryableProvider(llm, inglish.DefaultRetryConfig())
		if *rpm > 0 {
			llm = inglish.NewRateLimitedProvider(llm, inglish.RateLimitConfig{RequestsPerMinute: *rpm})
		}
		opts = append(opts, inglish.WithProvider(llm))
	}

	pipeline, err := inglish.New(inglish.Config{
		Domain:      *domain,
		TargetLang:  *lang,
		GlossaryDir: *glossaryDir,
	}, opts...)
	if err != nil {
		return err
	}

	if *termsOnly {
		return runTerms(pipeline, input, inputName, stdout, *jsonOutput)
	}

	// Output destination
	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	ctx := context.Background()

	if *diffFile != "" {
		proc, err := processorFor(*content)
		if err != nil {
			return fmt.Errorf("--diff needs --content html or go: %w", err)
		}
		return runDiff(ctx, pipeline, proc, input, *diffFile, inputName, out, stderr, *quiet, *jsonOutput, *updateMode)
	}

	switch *content {
	case "html", "go":
		return runDocument(ctx, pipeline, *content, input, inputName, out, stderr, *quiet, *jsonOutput)
	case "text":
		// Fall through to sentence mode below.
	default:
		return fmt.Errorf("unknown content kind %q (want text, html, or go)", *content)
	}

	if !*quiet {
		fmt.Fprintf(stderr, "Translating %s to %s...\n", inputName, inglish.LanguageName(*lang))
	}

	start := time.Now()

	if *batch {
		texts := nonEmptyLines(input)
		results, err := pipeline.TranslateBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		if !*quiet {
			fmt.Fprintf(stderr, "Done in %v (%d lines)\n", time.Since(start).Round(time.Millisecond), len(results))
		}
		if *jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		for _, r := range results {
			writeResult(out, r)
		}
		return nil
	}

	result, err := pipeline.Translate(ctx, strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	if !*quiet {
		fmt.Fprintf(stderr, "Done in %v\n", time.Since(start).Round(time.Millisecond))
	}

	if *jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	writeResult(out, result)
	return nil
}

// parseFormat maps a flag value to an output format.
func parseFormat(s string) (inglish.OutputFormat, error) {
	switch s {
	case "roman":
		return inglish.FormatRoman, nil
	case "devanagari":
		return inglish.FormatDevanagari, nil
	case "both":
		return inglish.FormatBoth, nil
	}
	return "", fmt.Errorf("unknown format %q (want roman, devanagari, or both)", s)
}

// writeResult prints the scripts a result carries, one per line.
func writeResult(w io.Writer, r *inglish.Result) {
	if r.HinglishRoman != "" {
		fmt.Fprintln(w, r.HinglishRoman)
	}
	if r.HinglishDevanagari != "" {
		fmt.Fprintln(w, r.HinglishDevanagari)
	}
}

// runTerms extracts technical terms without translating.
func runTerms(p *inglish.Pipeline, input, inputName string, stdout io.Writer, jsonOut bool) error {
	terms := p.ExtractTerms(strings.TrimSpace(input))

	if jsonOut {
		type termsOutput struct {
			InputFile string                  `json:"input_file"`
			Domain    string                  `json:"domain"`
			Terms     []inglish.ExtractedTerm `json:"terms"`
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(termsOutput{InputFile: inputName, Domain: p.Domain(), Terms: terms})
	}

	fmt.Fprintf(stdout, "Found %d technical terms in %s:\n", len(terms), inputName)
	for i, term := range terms {
		fmt.Fprintf(stdout, "%3d. %q [%d:%d]", i+1, term.Term, term.Start, term.End)
		if term.Devanagari != "" {
			fmt.Fprintf(stdout, " -> %s", term.Devanagari)
		}
		fmt.Fprintln(stdout)
	}
	return nil
}

// processorFor picks the content processor for a document kind.
func processorFor(kind string) (inglish.ContentProcessor, error) {
	switch kind {
	case "html":
		return processor.NewHTMLProcessor(), nil
	case "go":
		return processor.NewGoProcessor(), nil
	}
	return nil, fmt.Errorf("no document processor for content kind %q", kind)
}

// runDocument translates a whole HTML or Go document.
func runDocument(ctx context.Context, p *inglish.Pipeline, kind, input, inputName string, out, stderr io.Writer, quiet, jsonOut bool) error {
	proc, err := processorFor(kind)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(stderr, "Translating %s (%s) to %s...\n", inputName, kind, inglish.LanguageName(p.TargetLang()))
	}

	start := time.Now()
	doc := &inglish.Document{Processor: proc, Content: input}
	result, err := doc.Process(ctx, p)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	if jsonOut {
		type docOutput struct {
			Content         string `json:"content"`
			TotalNodes      int    `json:"total_nodes"`
			TranslatedCount int    `json:"translated_count"`
			CachedCount     int    `json:"cached_count"`
			ElapsedMs       int64  `json:"elapsed_ms"`
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(docOutput{
			Content:         result.Content,
			TotalNodes:      result.TotalNodes,
			TranslatedCount: result.TranslatedCount,
			CachedCount:     result.CachedCount,
			ElapsedMs:       elapsed.Milliseconds(),
		})
	}

	fmt.Fprint(out, result.Content)

	if !quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Nodes found:  %d\n", result.TotalNodes)
		fmt.Fprintf(stderr, "  Translated:   %d\n", result.TranslatedCount)
		fmt.Fprintf(stderr, "  From cache:   %d\n", result.CachedCount)
	}

	return nil
}

// runDiff compares a document with a previous version. By default it
// only reports what changed; with update set it translates just the
// new and modified nodes and writes the patched document.
func runDiff(ctx context.Context, p *inglish.Pipeline, proc inglish.ContentProcessor, newContent, oldPath, inputName string, out, stderr io.Writer, quiet, jsonOut, update bool) error {
	oldData, err := os.ReadFile(oldPath) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return fmt.Errorf("reading previous version: %w", err)
	}

	_, oldNodes, err := proc.Extract(string(oldData))
	if err != nil {
		return fmt.Errorf("parsing previous version: %w", err)
	}

	parsed, newNodes, err := proc.Extract(newContent)
	if err != nil {
		return fmt.Errorf("parsing new version: %w", err)
	}

	diff := inglish.DiffContentDetailed(oldNodes, newNodes)
	stats := diff.Stats()
	needsTranslation := diff.NeedsTranslation()

	// Incremental mode: translate only the changed nodes and patch
	// them into the new document. Unchanged nodes stay as they are.
	var updated string
	translatedCount := 0
	if update && len(needsTranslation) > 0 {
		translations, _, translated, err := p.TranslateNodes(ctx, needsTranslation)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		translatedCount = translated
		updated, err = proc.Apply(parsed, newNodes, translations)
		if err != nil {
			return fmt.Errorf("applying translations: %w", err)
		}
	}

	if jsonOut {
		type diffOutput struct {
			InputFile    string `json:"input_file"`
			PreviousFile string `json:"previous_file"`
			Stats        struct {
				Added     int `json:"added"`
				Removed   int `json:"removed"`
				Modified  int `json:"modified"`
				Unchanged int `json:"unchanged"`
			} `json:"stats"`
			NeedsTranslation []string `json:"needs_translation"`
			TranslatedCount  int      `json:"translated_count,omitempty"`
			Content          string   `json:"content,omitempty"`
		}

		o := diffOutput{
			InputFile:    inputName,
			PreviousFile: filepath.Base(oldPath),
		}
		o.Stats.Added = stats.Added
		o.Stats.Removed = stats.Removed
		o.Stats.Modified = stats.Modified
		o.Stats.Unchanged = stats.Unchanged
		for _, n := range needsTranslation {
			o.NeedsTranslation = append(o.NeedsTranslation, n.Text)
		}
		o.TranslatedCount = translatedCount
		o.Content = updated

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	}

	if update {
		if updated != "" {
			fmt.Fprint(out, updated)
		} else {
			fmt.Fprint(out, newContent)
		}
		if !quiet {
			fmt.Fprintf(stderr, "\nIncremental update: %d translated, %d unchanged\n",
				translatedCount, stats.Unchanged)
		}
		return nil
	}

	fmt.Fprintf(out, "Diff: %s vs %s\n\n", inputName, filepath.Base(oldPath))
	fmt.Fprintf(out, "Summary:\n")
	fmt.Fprintf(out, "  Unchanged: %d\n", stats.Unchanged)
	fmt.Fprintf(out, "  Added:     %d\n", stats.Added)
	fmt.Fprintf(out, "  Removed:   %d\n", stats.Removed)
	fmt.Fprintf(out, "  Modified:  %d\n\n", stats.Modified)

	if !diff.HasChanges() {
		fmt.Fprintf(out, "No changes detected. All translations are up to date.\n")
		return nil
	}

	fmt.Fprintf(out, "Needs translation: %d strings\n\n", len(needsTranslation))

	for _, n := range diff.Added {
		fmt.Fprintf(out, "  + %q\n", truncate(n.Text, 50))
	}
	for _, m := range diff.Modified {
		fmt.Fprintf(out, "  ~ %q -> %q\n", truncate(m.Old.Text, 30), truncate(m.New.Text, 30))
	}
	for _, n := range diff.Removed {
		fmt.Fprintf(out, "  - %q\n", truncate(n.Text, 50))
	}

	return nil
}

// truncate shortens s to at most n characters for display.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// nonEmptyLines splits input into trimmed, non-empty lines.
func nonEmptyLines(input string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(input))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
