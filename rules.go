package emailverifier

import (
	"encoding/json"
	"strings"
)

// RuleName enumerates the additive per-domain / per-MX-suffix overrides
// spec.md §6 defines for the rules table.
type RuleName string

const (
	RuleSkipCatchAll   RuleName = "SkipCatchAll"
	RuleSmtpTimeout35s RuleName = "SmtpTimeout35s"
	RuleHoneyPot       RuleName = "HoneyPot"
)

// ruleEntry mirrors one value of the by_domain / by_mx_suffix maps.
type ruleEntry struct {
	Rules []RuleName `json:"rules"`
}

// rulesTable is the parsed shape of the embedded rules.json asset.
type rulesTable struct {
	ByDomain   map[string]ruleEntry `json:"by_domain"`
	ByMxSuffix map[string]ruleEntry `json:"by_mx_suffix"`
}

var defaultRules = loadRulesTable(embeddedRules)

func loadRulesTable(raw []byte) *rulesTable {
	var t rulesTable
	if err := json.Unmarshal(raw, &t); err != nil {
		// A malformed embedded asset is a build-time mistake, not a runtime
		// condition callers should have to handle; fall back to no rules.
		return &rulesTable{}
	}
	return &t
}

// rulesFor collects every rule that applies to a (domain, mxHost) pair:
// a match on either the domain or any MX-host suffix is additive.
func (t *rulesTable) rulesFor(domain, mxHost string) map[RuleName]struct{} {
	out := map[RuleName]struct{}{}
	if entry, ok := t.ByDomain[domain]; ok {
		for _, r := range entry.Rules {
			out[r] = struct{}{}
		}
	}
	lowerHost := strings.ToLower(mxHost)
	for suffix, entry := range t.ByMxSuffix {
		if strings.HasSuffix(lowerHost, strings.ToLower(suffix)) {
			for _, r := range entry.Rules {
				out[r] = struct{}{}
			}
		}
	}
	return out
}

// has reports whether a specific rule applies to (domain, mxHost).
func (t *rulesTable) has(domain, mxHost string, rule RuleName) bool {
	_, ok := t.rulesFor(domain, mxHost)[rule]
	return ok
}

// isHoneypot reports whether the (domain, mxHost) pair is flagged as a
// honeypot MX, used by the host-selection step (C11, spec.md §4.4).
func (t *rulesTable) isHoneypot(domain, mxHost string) bool {
	return t.has(domain, mxHost, RuleHoneyPot)
}
