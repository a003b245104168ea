// Package processor extracts translatable text from document formats
// and applies translations back, so whole HTML pages or Go source
// files can be run through the translation pipeline node by node.
package processor

import "github.com/inglishlab/inglish"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = inglish.ContentProcessor

// TextNode is an alias to the main package type.
type TextNode = inglish.TextNode
