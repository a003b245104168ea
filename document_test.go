package inglish

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// lineProcessor treats each input line as one text node.
type lineProcessor struct {
	extractErr error
	applyErr   error
}

func (lp *lineProcessor) Extract(content string) (interface{}, []TextNode, error) {
	if lp.extractErr != nil {
		return nil, nil, lp.extractErr
	}
	lines := strings.Split(content, "\n")
	nodes := make([]TextNode, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nodes = append(nodes, TextNode{
			ID:       strings.Repeat("l", i+1),
			Text:     line,
			Hash:     HashText(line),
			NodeType: "line",
		})
	}
	return lines, nodes, nil
}

func (lp *lineProcessor) Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error) {
	if lp.applyErr != nil {
		return "", lp.applyErr
	}
	lines := parsed.([]string)
	out := make([]string, len(lines))
	for i, line := range lines {
		if t, ok := translations[HashText(line)]; ok && t != "" {
			out[i] = t
		} else {
			out[i] = line
		}
	}
	return strings.Join(out, "\n"), nil
}

func (lp *lineProcessor) ContentType() string { return "line" }

func TestDocumentProcess(t *testing.T) {
	p, err := New(Config{Domain: "programming", TargetLang: LangHindi})
	if err != nil {
		t.Fatal(err)
	}

	doc := &Document{
		Processor: &lineProcessor{},
		Content:   "The function returns a boolean value.\n\nThe array is sorted.",
	}

	result, err := doc.Process(context.Background(), p)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.TotalNodes != 2 {
		t.Errorf("TotalNodes = %d, want 2", result.TotalNodes)
	}
	if result.TranslatedCount != 2 {
		t.Errorf("TranslatedCount = %d, want 2", result.TranslatedCount)
	}
	if !strings.Contains(result.Content, "function ek boolean value return karta hai.") {
		t.Errorf("First line not translated:\n%s", result.Content)
	}
	if strings.Contains(result.Content, "The function returns") {
		t.Errorf("Original text left in output:\n%s", result.Content)
	}
}

func TestDocumentProcess_ExtractError(t *testing.T) {
	p, err := New(Config{Domain: "programming", TargetLang: LangHindi})
	if err != nil {
		t.Fatal(err)
	}

	doc := &Document{
		Processor: &lineProcessor{extractErr: errors.New("bad input")},
		Content:   "whatever",
	}
	if _, err := doc.Process(context.Background(), p); err == nil {
		t.Fatal("expected extract error")
	}
}

func TestDocumentProcess_ApplyError(t *testing.T) {
	p, err := New(Config{Domain: "programming", TargetLang: LangHindi})
	if err != nil {
		t.Fatal(err)
	}

	doc := &Document{
		Processor: &lineProcessor{applyErr: errors.New("cannot render")},
		Content:   "The array is sorted.",
	}
	if _, err := doc.Process(context.Background(), p); err == nil {
		t.Fatal("expected apply error")
	}
}
