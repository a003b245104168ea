package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--version"}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "inglish") {
		t.Errorf("expected version output, got: %s", stdout.String())
	}
}

func TestRun_UnknownLang(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(inputFile, []byte("hello"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--lang", "fr", inputFile}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if !strings.Contains(err.Error(), "unsupported target language") {
		t.Errorf("expected unsupported language error, got: %v", err)
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--format", "latin"}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got: %v", err)
	}
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(inputFile, []byte("hello"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--llm", inputFile}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "API key required") {
		t.Errorf("expected API key error, got: %v", err)
	}
}

func TestRun_TranslateFile(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(inputFile, []byte("The function returns a boolean value.\n"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--quiet", inputFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "function ek boolean value return karta hai.") {
		t.Errorf("missing Roman output, got: %s", output)
	}
	if !strings.Contains(output, "फंक्शन") {
		t.Errorf("missing Devanagari output, got: %s", output)
	}
}

func TestRun_FormatRoman(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(inputFile, []byte("The function returns a boolean value."), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--quiet", "--format", "roman", inputFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "return karta hai") {
		t.Errorf("missing Roman output, got: %s", output)
	}
	if strings.Contains(output, "फंक्शन") {
		t.Errorf("Devanagari present despite --format roman: %s", output)
	}
}

func TestRun_TranslateJSON(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(inputFile, []byte("The array is sorted."), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--quiet", "--json", inputFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	var result struct {
		OriginalEnglish string `json:"original_english"`
		HinglishRoman   string `json:"hinglish_roman"`
		Metadata        struct {
			Translator   string `json:"translator"`
			ConstraintOK bool   `json:"constraint_ok"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if result.OriginalEnglish != "The array is sorted." {
		t.Errorf("original = %q", result.OriginalEnglish)
	}
	if result.Metadata.Translator != "baseline" {
		t.Errorf("translator = %q", result.Metadata.Translator)
	}
	if !result.Metadata.ConstraintOK {
		t.Error("expected constraint_ok true")
	}
}

func TestRun_Batch(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(inputFile, []byte("The array is sorted.\n\nThe condition is true.\n"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--quiet", "--batch", "--json", inputFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("batch translate failed: %v", err)
	}

	var results []struct {
		OriginalEnglish string `json:"original_english"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &results); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].OriginalEnglish != "The array is sorted." {
		t.Errorf("first result = %q", results[0].OriginalEnglish)
	}
}

func TestRun_TermsOnly(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(inputFile, []byte("The for loop iterates over the array."), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--terms", "--json", inputFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("terms extraction failed: %v", err)
	}

	var result struct {
		Domain string `json:"domain"`
		Terms  []struct {
			Term string `json:"Term"`
		} `json:"terms"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if result.Domain != "programming" {
		t.Errorf("domain = %q", result.Domain)
	}
	found := map[string]bool{}
	for _, term := range result.Terms {
		found[term.Term] = true
	}
	if !found["for loop"] || !found["array"] {
		t.Errorf("expected for loop and array, got %v", result.Terms)
	}
}

func TestRun_HTMLDocument(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "test.html")
	os.WriteFile(inputFile, []byte("<p>The array is sorted.</p><pre>keep me</pre>"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--quiet", "--content", "html", "--format", "roman", inputFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("html translate failed: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "array hai sorted") {
		t.Errorf("paragraph not translated: %s", output)
	}
	if !strings.Contains(output, "keep me") {
		t.Errorf("pre content altered: %s", output)
	}
}

func TestRun_Diff(t *testing.T) {
	tmpDir := t.TempDir()
	oldFile := filepath.Join(tmpDir, "old.html")
	newFile := filepath.Join(tmpDir, "new.html")
	os.WriteFile(oldFile, []byte("<p>The array is sorted.</p><p>Gone now.</p>"), 0644)
	os.WriteFile(newFile, []byte("<p>The array is sorted.</p><p>The condition is true.</p>"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--content", "html", "--diff", oldFile, "--json", newFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	var result struct {
		Stats struct {
			Added     int `json:"added"`
			Removed   int `json:"removed"`
			Modified  int `json:"modified"`
			Unchanged int `json:"unchanged"`
		} `json:"stats"`
		NeedsTranslation []string `json:"needs_translation"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	// The replaced paragraph sits at the same document position, so
	// the diff reports it as modified rather than added plus removed.
	if result.Stats.Unchanged != 1 || result.Stats.Modified != 1 ||
		result.Stats.Added != 0 || result.Stats.Removed != 0 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if len(result.NeedsTranslation) != 1 || result.NeedsTranslation[0] != "The condition is true." {
		t.Errorf("needs_translation = %v", result.NeedsTranslation)
	}
}

func TestRun_DiffUpdate(t *testing.T) {
	tmpDir := t.TempDir()
	oldFile := filepath.Join(tmpDir, "old.html")
	newFile := filepath.Join(tmpDir, "new.html")
	os.WriteFile(oldFile, []byte("<p>Unchanged line.</p>"), 0644)
	os.WriteFile(newFile, []byte("<p>Unchanged line.</p><p>The array is sorted.</p>"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--quiet", "--content", "html", "--format", "roman",
		"--diff", oldFile, "--update", newFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("diff update failed: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "array hai sorted.") {
		t.Errorf("new paragraph not translated: %s", output)
	}
	if !strings.Contains(output, "Unchanged line.") {
		t.Errorf("unchanged paragraph altered: %s", output)
	}
}

func TestRun_DiffRequiresDocumentContent(t *testing.T) {
	tmpDir := t.TempDir()
	oldFile := filepath.Join(tmpDir, "old.txt")
	newFile := filepath.Join(tmpDir, "new.txt")
	os.WriteFile(oldFile, []byte("a"), 0644)
	os.WriteFile(newFile, []byte("b"), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--diff", oldFile, newFile}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for --diff with text content")
	}
	if !strings.Contains(err.Error(), "--content html or go") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_OutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	inputFile := filepath.Join(tmpDir, "in.txt")
	outputFile := filepath.Join(tmpDir, "out.txt")
	os.WriteFile(inputFile, []byte("The array is sorted."), 0644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--quiet", "-o", outputFile, inputFile}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "array hai sorted") {
		t.Errorf("unexpected output file contents: %s", data)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when -o is set, got: %s", stdout.String())
	}
}
