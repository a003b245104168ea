package processor

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"

	"github.com/inglishlab/inglish"
)

// GoProcessor extracts comments from Go source for translation.
// Only comments are touched: string literals in source are program
// data, and identifiers are exactly the technical vocabulary the
// pipeline guards.
type GoProcessor struct{}

// NewGoProcessor creates a Go source processor.
func NewGoProcessor() *GoProcessor {
	return &GoProcessor{}
}

// parsedGo holds the parsed AST between Extract and Apply.
type parsedGo struct {
	fset *token.FileSet
	file *ast.File
}

// Extract parses Go source and returns its comments as text nodes,
// deduplicated by content hash.
func (p *GoProcessor) Extract(content string) (interface{}, []TextNode, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", content, parser.ParseComments)
	if err != nil {
		return nil, nil, &inglish.ProcessorError{
			Message:     "failed to parse Go source",
			Cause:       err,
			ContentType: "go",
		}
	}

	var nodes []TextNode
	seenHashes := make(map[string]bool)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			text := commentText(c.Text)
			if text == "" {
				continue
			}

			hash := inglish.HashText(text)
			if seenHashes[hash] {
				continue
			}
			seenHashes[hash] = true

			nodes = append(nodes, TextNode{
				ID:       fmt.Sprintf("comment-%d", c.Pos()),
				Text:     text,
				Hash:     hash,
				NodeType: "go_comment",
				Metadata: map[string]string{
					"pos": fmt.Sprintf("%d", c.Pos()),
				},
			})
		}
	}

	return &parsedGo{fset: fset, file: file}, nodes, nil
}

// Apply rewrites translated comments into the source. translations
// maps a TextNode hash to its translated text.
func (p *GoProcessor) Apply(parsed interface{}, _ []TextNode, translations map[string]string) (string, error) {
	pg, ok := parsed.(*parsedGo)
	if !ok {
		return "", &inglish.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "go",
		}
	}

	for _, cg := range pg.file.Comments {
		for _, c := range cg.List {
			text := commentText(c.Text)
			if text == "" {
				continue
			}
			translated, ok := translations[inglish.HashText(text)]
			if !ok {
				continue
			}
			if strings.HasPrefix(c.Text, "//") {
				c.Text = "// " + translated
			} else if strings.HasPrefix(c.Text, "/*") {
				c.Text = "/* " + translated + " */"
			}
		}
	}

	var buf strings.Builder
	if err := printer.Fprint(&buf, pg.fset, pg.file); err != nil {
		return "", &inglish.ProcessorError{
			Message:     "failed to print Go source",
			Cause:       err,
			ContentType: "go",
		}
	}
	return buf.String(), nil
}

// ContentType returns "go".
func (p *GoProcessor) ContentType() string {
	return "go"
}

// commentText strips the comment markers, leaving the prose.
func commentText(comment string) string {
	if strings.HasPrefix(comment, "//") {
		return strings.TrimSpace(comment[2:])
	}
	if strings.HasPrefix(comment, "/*") && strings.HasSuffix(comment, "*/") {
		return strings.TrimSpace(comment[2 : len(comment)-2])
	}
	return ""
}

// Verify GoProcessor implements ContentProcessor
var _ ContentProcessor = (*GoProcessor)(nil)
