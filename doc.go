// Package inglish translates short technical English sentences into
// "Inglish", code-mixed Hindi/Marathi in Roman or Devanagari script,
// while guaranteeing that technical terms from a domain glossary are
// never garbled by translation or transliteration.
//
// The pipeline has three stages: term extraction/guarding (trie and
// regex matching with overlap resolution, then wrapping terms in
// brackets), rule-based translation (word substitution plus grammar
// reordering into SOV word order), and script conversion (a sentinel
// based three-pass Roman/Devanagari rewrite that keeps glossary
// loanwords phonetically correct).
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/inglishlab/inglish"
//	)
//
//	func main() {
//	    p, err := inglish.New(inglish.Config{
//	        Domain:     "programming",
//	        TargetLang: "hi",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := p.Translate(context.Background(),
//	        "The for loop iterates over the array.")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.HinglishRoman)
//	    fmt.Println(result.HinglishDevanagari)
//	}
//
// An optional LLM provider (see the provider subpackage) can replace the
// rule-based translator; it receives the bracket-guarded text and falls
// back to the baseline on any failure.
package inglish
