package inglish

import "strings"

// QualityMetrics summarizes how well a translation preserved the
// source. WordOverlap is only meaningful when a reference translation
// was supplied.
type QualityMetrics struct {
	// TerminologyPreservation is the fraction of distinct technical
	// terms from the original found (case-insensitive) in the
	// translation. 1.0 when the original has no terms.
	TerminologyPreservation float64 `json:"terminology_preservation"`
	// LengthRatio is translated word count over original word count.
	LengthRatio float64 `json:"length_ratio"`
	// WordOverlap is the fraction of distinct reference words present
	// in the translation. Zero when no reference was given.
	WordOverlap float64 `json:"word_overlap,omitempty"`
	// HasReference records whether WordOverlap was computed.
	HasReference bool `json:"has_reference,omitempty"`
}

// EvaluateQuality scores translated against original, and against an
// optional reference translation (pass "" for none). A crude signal
// for regression tracking, not a linguistic judgment.
func (p *Pipeline) EvaluateQuality(original, translated, reference string) QualityMetrics {
	var m QualityMetrics

	termSet := make(map[string]struct{})
	for _, t := range p.extractor.Extract(original) {
		termSet[strings.ToLower(t.Term)] = struct{}{}
	}

	if len(termSet) == 0 {
		m.TerminologyPreservation = 1.0
	} else {
		lower := strings.ToLower(translated)
		preserved := 0
		for term := range termSet {
			if strings.Contains(lower, term) {
				preserved++
			}
		}
		m.TerminologyPreservation = float64(preserved) / float64(len(termSet))
	}

	origWords := len(strings.Fields(original))
	if origWords == 0 {
		origWords = 1
	}
	m.LengthRatio = float64(len(strings.Fields(translated))) / float64(origWords)

	if reference != "" {
		transSet := wordSet(translated)
		refSet := wordSet(reference)
		overlap := 0
		for w := range transSet {
			if _, ok := refSet[w]; ok {
				overlap++
			}
		}
		denom := len(refSet)
		if denom == 0 {
			denom = 1
		}
		m.WordOverlap = float64(overlap) / float64(denom)
		m.HasReference = true
	}
	return m
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
