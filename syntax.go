package emailverifier

import (
	"net/mail"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Syntax is the C1 result: the parsed shape of an address, mirroring
// spec.md's Address data model.
type Syntax struct {
	Username   string `json:"username"`
	Domain     string `json:"domain"`
	Valid      bool   `json:"is_valid_syntax"`
	Address    string `json:"address,omitempty"`
	Normalized string `json:"normalized_email,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// suggestionMaxDistance is the Levenshtein cutoff spec.md §4.1 and §8.2
// describe ("edit distance < 3", i.e. <= 2).
const suggestionMaxDistance = 2

// ParseAddress parses raw into a Syntax value. It never returns an error:
// on failure to parse, it returns Syntax{Valid: false} so the orchestrator
// can short-circuit to Invalid without any network calls (spec.md §8.3).
func (v *Verifier) ParseAddress(raw string) Syntax {
	email := trimLower(raw)

	addr, err := mail.ParseAddress(email)
	if err != nil || !strings.Contains(addr.Address, "@") {
		return Syntax{Valid: false}
	}

	at := strings.LastIndex(addr.Address, "@")
	username := addr.Address[:at]
	domain := strings.TrimSuffix(addr.Address[at+1:], ".")
	if username == "" || domain == "" || !strings.Contains(domain, ".") {
		return Syntax{Valid: false}
	}

	canonical := username + "@" + domain
	s := Syntax{
		Username:   username,
		Domain:     domain,
		Valid:      true,
		Address:    canonical,
		Normalized: normalizeAddress(username, domain),
	}
	if v.domainSuggestEnabled {
		s.Suggestion = v.SuggestDomain(domain)
	}
	return s
}

// normalizeAddress applies provider-specific aliasing. Only Gmail (and its
// googlemail.com alias) defines normalization rules today; every other
// domain is returned as username@domain unchanged, which keeps the
// operation total and idempotent (spec.md §8.1, §8.2).
func normalizeAddress(username, domain string) string {
	if domain != "gmail.com" && domain != "googlemail.com" {
		return username + "@" + domain
	}
	local := username
	if tag := strings.IndexByte(local, '+'); tag >= 0 {
		local = local[:tag]
	}
	local = strings.ReplaceAll(local, ".", "")
	return local + "@gmail.com"
}

// SuggestDomain returns the closest popular-provider domain to domain
// within Levenshtein distance suggestionMaxDistance, or "" if domain is
// already one of them or nothing is close enough.
func (v *Verifier) SuggestDomain(domain string) string {
	if _, known := popularProviderDomains[domain]; known {
		return ""
	}
	best := ""
	bestDist := suggestionMaxDistance + 1
	for _, candidate := range popularProviderDomainList {
		dist := edlib.LevenshteinDistance(domain, candidate)
		if dist <= suggestionMaxDistance && dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	return best
}
