package challenge

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips any markup from user-facing challenge copy. Catalog
// titles and descriptions come from external records and are echoed straight
// into the editor UI, so they pass through a strict no-elements policy on
// read. Rule strings are NOT sanitized here: the normalizer must preserve
// them byte for byte so their summaries round-trip.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
