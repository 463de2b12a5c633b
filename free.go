package emailverifier

import "strings"

// IsFreeDomain reports whether domain is a known consumer (B2C) free
// email provider, per spec.md §3's MiscFacts.is_b2c.
func (v *Verifier) IsFreeDomain(domain string) bool {
	_, ok := freeDomains[strings.ToLower(domain)]
	return ok
}
