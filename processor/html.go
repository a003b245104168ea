package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/inglishlab/inglish"
	"golang.org/x/net/html"
)

// defaultIgnoredTags are elements whose text is never translated.
// script/style are not prose; code, pre, kbd and samp hold exactly the
// technical content the pipeline exists to preserve, so translating
// them would defeat the guarantee.
var defaultIgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"kbd":      true,
	"samp":     true,
	"noscript": true,
	"textarea": true,
}

// HTMLProcessor extracts and applies translations to HTML content.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates an HTML processor with the default ignored
// tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{ignoredTags: defaultIgnoredTags}
}

// NewHTMLProcessorWithIgnoredTags creates an HTML processor skipping
// the given tags instead of the defaults.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool, len(tags))
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{ignoredTags: ignored}
}

// parsedHTML holds the parsed document between Extract and Apply.
type parsedHTML struct {
	doc *goquery.Document
}

func (p *HTMLProcessor) skip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if p.ignoredTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "data-no-translate" {
			return true
		}
	}
	return false
}

// Extract parses HTML and returns its translatable text nodes,
// deduplicated by content hash. Text inside ignored tags and elements
// marked data-no-translate is left out.
func (p *HTMLProcessor) Extract(content string) (interface{}, []TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &inglish.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var nodes []TextNode
	seenHashes := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				hash := inglish.HashText(trimmed)
				if !seenHashes[hash] {
					seenHashes[hash] = true

					node := TextNode{
						ID:       fmt.Sprintf("node-%d", len(nodes)),
						Text:     trimmed,
						Hash:     hash,
						NodeType: "html_text",
						Metadata: map[string]string{},
					}
					if n.Parent != nil {
						node.Metadata["parent_tag"] = n.Parent.Data
					}
					nodes = append(nodes, node)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return &parsedHTML{doc: doc}, nodes, nil
}

// Apply writes translations back into the document. translations maps
// a TextNode hash to its translated text; every text node whose
// content hashes to a key is rewritten, so duplicated strings are all
// updated from one translation.
func (p *HTMLProcessor) Apply(parsed interface{}, _ []TextNode, translations map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &inglish.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				if translated, ok := translations[inglish.HashText(trimmed)]; ok {
					n.Data = preserveWhitespace(n.Data, translated)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	ph.doc.Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	out, err := ph.doc.Html()
	if err != nil {
		return "", &inglish.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}
	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

// preserveWhitespace keeps the original leading/trailing whitespace
// around the translated text.
func preserveWhitespace(original, translated string) string {
	leadingLen := len(original) - len(strings.TrimLeft(original, " \t\n\r"))
	leading := original[:leadingLen]

	trailingLen := len(original) - len(strings.TrimRight(original, " \t\n\r"))
	trailing := ""
	if trailingLen > 0 && trailingLen < len(original) {
		trailing = original[len(original)-trailingLen:]
	}
	return leading + translated + trailing
}

// Verify HTMLProcessor implements ContentProcessor
var _ ContentProcessor = (*HTMLProcessor)(nil)
