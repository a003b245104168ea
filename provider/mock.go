package provider

import "context"

// MockProvider is a scripted provider for testing.
type MockProvider struct {
	Translations map[string]Translation // guarded source text to translation
	Err          error                  // returned from every call when set
	CallCount    int                    // number of times Translate was called
	LastRequest  *TranslateRequest      // last request received
}

// NewMockProvider creates a mock with a few canned translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]Translation{
			"The [for loop] iterates over the [array].": {
				Roman:      "[for loop] [array] ke upar iterate karta hai.",
				Devanagari: "[फॉर लूप] [ऐरे] के ऊपर इटरेट करता है.",
			},
			"The [function] returns a [boolean] value.": {
				Roman:      "[function] ek [boolean] value return karta hai.",
				Devanagari: "[फंक्शन] एक [बूलियन] व्हैल्यू रिटर्न करता है.",
			},
			"The [function] returns a [boolean value].": {
				Roman:      "[function] ek [boolean value] return karta hai.",
				Devanagari: "[फंक्शन] एक [बूलियन व्हैल्यू] रिटर्न करता है.",
			},
		},
	}
}

// Translate returns scripted translations. Unknown texts echo the
// input as the Roman form, which mirrors the fallback-to-input
// behavior of a failed real translation.
func (m *MockProvider) Translate(_ context.Context, req TranslateRequest) ([]Translation, error) {
	m.CallCount++
	m.LastRequest = &req
	if m.Err != nil {
		return nil, m.Err
	}

	results := make([]Translation, len(req.Texts))
	for i, text := range req.Texts {
		if tr, ok := m.Translations[text]; ok {
			results[i] = tr
		} else {
			results[i] = Translation{Roman: text}
		}
	}
	return results, nil
}

// Reset clears the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
