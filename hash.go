package inglish

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashText returns the SHA-256 hash of text as a hex string. Used for
// cache keys and document node change detection.
func HashText(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// CacheKey builds a deterministic cache key for a translation of text
// into targetLang under the given glossary domain.
func CacheKey(textHash, domain, targetLang string) string {
	return fmt.Sprintf("%s:%s:%s", textHash, domain, targetLang)
}
