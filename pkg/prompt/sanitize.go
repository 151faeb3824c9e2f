package prompt

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// StripHTML removes markup from an answer. The remaining text comes back
// entity-escaped, which Markdown viewers display as typed.
func StripHTML(raw string) string {
	return strings.TrimSpace(stripSanitizer().Sanitize(raw))
}

func stripSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
