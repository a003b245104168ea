// Package cache provides translation result caching. Keys are built by
// inglish.CacheKey (text hash, domain, target language); values are
// JSON-encoded inglish.Result records.
package cache

import "github.com/inglishlab/inglish"

// TranslationCache is the interface for translation caching.
// This is an alias to the main package interface for convenience.
type TranslationCache = inglish.TranslationCache
