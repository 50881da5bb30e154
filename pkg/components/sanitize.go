package components

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

func (g *Generator) sanitize(raw string) string {
	if g.policy == nil || raw == "" {
		return raw
	}
	return g.policy.Sanitize(raw)
}

// defaultPolicy allows user generated content plus the class and id
// attributes GOV.UK markup relies on.
func defaultPolicy() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowAttrs("aria-hidden", "aria-label").Globally()
		htmlPolicy = policy
	})
	return htmlPolicy
}
