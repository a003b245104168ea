package inglish

import (
	"context"
	"encoding/json"
	"sync"
)

// parallelThreshold is the minimum node count before cache lookups
// fan out to goroutines. Small batches stay sequential.
const parallelThreshold = 5

// ParallelCacheLookup performs cache lookups in parallel using goroutines.
// Returns a map of node hash to cached Roman translation, and a slice of
// cache misses in original order.
func ParallelCacheLookup(cache TranslationCache, nodes []TextNode, domain, targetLang string) (map[string]string, []TextNode) {
	if cache == nil || len(nodes) == 0 {
		return make(map[string]string), nodes
	}

	type lookupResult struct {
		hash  string
		value string
		found bool
	}

	// Deduplicate nodes by hash first
	uniqueNodes := make(map[string]TextNode)
	for _, node := range nodes {
		if _, exists := uniqueNodes[node.Hash]; !exists {
			uniqueNodes[node.Hash] = node
		}
	}

	results := make(chan lookupResult, len(uniqueNodes))
	var wg sync.WaitGroup

	for hash := range uniqueNodes {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			key := CacheKey(h, domain, targetLang)
			raw, ok := cache.Get(key)
			if !ok {
				results <- lookupResult{hash: h}
				return
			}
			var cached Result
			if err := json.Unmarshal([]byte(raw), &cached); err != nil {
				results <- lookupResult{hash: h}
				return
			}
			results <- lookupResult{hash: h, value: cached.HinglishRoman, found: true}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	translations := make(map[string]string)
	missedHashes := make(map[string]bool)

	for result := range results {
		if result.found {
			translations[result.hash] = result.value
		} else {
			missedHashes[result.hash] = true
		}
	}

	// Build cache misses slice (preserving original order)
	var cacheMisses []TextNode
	seenMisses := make(map[string]bool)
	for _, node := range nodes {
		if missedHashes[node.Hash] && !seenMisses[node.Hash] {
			cacheMisses = append(cacheMisses, node)
			seenMisses[node.Hash] = true
		}
	}

	return translations, cacheMisses
}

// TranslateBatchParallel translates texts concurrently. Results are
// positional: the i-th result corresponds to the i-th input. workers
// bounds the number of in-flight translations; values below 1 fall
// back to a sensible default.
func (p *Pipeline) TranslateBatchParallel(ctx context.Context, texts []string, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = 4
	}
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([]*Result, len(texts))
	errs := make([]error, len(texts))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = p.Translate(ctx, text)
		}(i, text)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// TranslateNodes translates extracted text nodes and returns a map of
// node hash to Roman translation, suitable for ContentProcessor.Apply.
// Also returns how many translations were served from cache and how
// many were freshly translated. Cache lookups run in parallel for
// larger batches.
func (p *Pipeline) TranslateNodes(ctx context.Context, nodes []TextNode) (map[string]string, int, int, error) {
	if p.cache == nil || len(nodes) < parallelThreshold {
		return p.translateNodesSequential(ctx, nodes)
	}

	translations, cacheMisses := ParallelCacheLookup(p.cache, nodes, p.config.Domain, p.config.TargetLang)
	cachedCount := len(translations)

	translatedCount := 0
	for _, node := range cacheMisses {
		r, err := p.Translate(ctx, node.Text)
		if err != nil {
			return nil, 0, 0, err
		}
		translations[node.Hash] = r.HinglishRoman
		translatedCount++
	}

	return translations, cachedCount, translatedCount, nil
}

func (p *Pipeline) translateNodesSequential(ctx context.Context, nodes []TextNode) (map[string]string, int, int, error) {
	translations := make(map[string]string, len(nodes))
	cachedCount := 0
	translatedCount := 0

	for _, node := range nodes {
		if _, done := translations[node.Hash]; done {
			continue
		}
		r, err := p.Translate(ctx, node.Text)
		if err != nil {
			return nil, 0, 0, err
		}
		translations[node.Hash] = r.HinglishRoman
		if r.Metadata.Cached {
			cachedCount++
		} else {
			translatedCount++
		}
	}

	return translations, cachedCount, translatedCount, nil
}
