package provider

import "context"

// FallbackProvider tries a sequence of providers in order, returning
// the first successful result. It fails only when every provider
// fails, returning the last error. The translation pipeline adds the
// rule-based baseline as the final safety net below this chain.
type FallbackProvider struct {
	providers []Provider
}

// NewFallbackProvider builds a chain from primary to last resort.
func NewFallbackProvider(providers ...Provider) *FallbackProvider {
	return &FallbackProvider{providers: providers}
}

// Translate walks the chain until a provider succeeds.
func (f *FallbackProvider) Translate(ctx context.Context, req TranslateRequest) ([]Translation, error) {
	var lastErr error
	for _, p := range f.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		translations, err := p.Translate(ctx, req)
		if err == nil {
			return translations, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Verify FallbackProvider implements Provider
var _ Provider = (*FallbackProvider)(nil)
