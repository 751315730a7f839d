package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

func defaultPolicy() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

// Sanitized runs html through the bluemonday UGC policy and returns the
// surviving markup as a Raw producer. This is the safe path for embedding
// pre-rendered markup from untrusted sources.
func Sanitized(html string) Raw {
	return SanitizedWith(defaultPolicy(), html)
}

// SanitizedWith is Sanitized with a caller-supplied policy.
func SanitizedWith(policy *bluemonday.Policy, html string) Raw {
	return Raw(policy.Sanitize(html))
}
