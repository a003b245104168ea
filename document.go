package inglish

import "context"

// Document pairs raw content with the processor that understands its
// format. It is the unit documentation tooling hands to the pipeline.
type Document struct {
	Processor ContentProcessor
	Content   string
}

// ProcessedContent is the result of translating a whole document.
type ProcessedContent struct {
	// Content is the document with translatable text replaced.
	Content string

	// TotalNodes is how many unique text nodes the processor found.
	TotalNodes int

	// TranslatedCount is how many nodes were freshly translated.
	TranslatedCount int

	// CachedCount is how many nodes were served from cache.
	CachedCount int
}

// Process extracts the document's text nodes, translates each through
// the pipeline, and applies the translations back into the document
// structure. Nodes with identical text share one translation.
func (d *Document) Process(ctx context.Context, p *Pipeline) (*ProcessedContent, error) {
	parsed, nodes, err := d.Processor.Extract(d.Content)
	if err != nil {
		return nil, err
	}

	translations, cached, translated, err := p.TranslateNodes(ctx, nodes)
	if err != nil {
		return nil, err
	}

	content, err := d.Processor.Apply(parsed, nodes, translations)
	if err != nil {
		return nil, err
	}

	return &ProcessedContent{
		Content:         content,
		TotalNodes:      len(nodes),
		TranslatedCount: translated,
		CachedCount:     cached,
	}, nil
}
