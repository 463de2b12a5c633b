package emailverifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
)

// allowedMethods encodes spec.md §3's per-provider variant support: Gmail is
// Smtp-only, HotmailB2B is Smtp-only (original_source/core/src/smtp/
// verif_method.rs's HotmailB2BVerifMethod enum has only a Smtp variant — no
// API option), HotmailB2C is Smtp|Headless, Yahoo is Smtp|Api|Headless,
// Mimecast/Proofpoint/Other fall back to Smtp-only.
var allowedMethods = map[Provider]map[MethodKind]bool{
	ProviderGmail:      {MethodSmtp: true},
	ProviderHotmailB2B: {MethodSmtp: true},
	ProviderHotmailB2C: {MethodSmtp: true, MethodHeadless: true},
	ProviderYahoo:      {MethodSmtp: true, MethodApi: true, MethodHeadless: true},
	ProviderMimecast:   {MethodSmtp: true},
	ProviderProofpoint: {MethodSmtp: true},
	ProviderOther:      {MethodSmtp: true},
}

// apiVerifierKeyForProvider maps a Provider to the apiVerifiers registry key
// EnableAPIVerifier registers under, since the HTTP-API strategy a provider
// uses isn't always named after the provider itself. Microsoft 365 is
// registered under its own vendor key rather than any Provider value:
// allowedMethods never routes a provider to it, matching the original,
// where check_microsoft365_api is never invoked from the method dispatcher.
func apiVerifierKeyForProvider(provider Provider) string {
	return string(provider)
}

// selectMethod implements C11's method choice: the configured method for
// provider if the provider supports it, else falls back to Smtp with the
// config's default profile.
func selectMethod(provider Provider, cfg VerificationConfig) VerificationMethod {
	if m, ok := cfg.MethodByProvider[provider]; ok {
		if allowed := allowedMethods[provider]; allowed != nil && allowed[m.Kind] {
			return m
		}
	}
	return VerificationMethod{
		Kind: MethodSmtp,
		Profile: SmtpProfile{
			FromEmail: cfg.FromEmail,
			HelloName: cfg.HelloName,
			Port:      cfg.SmtpPort,
			Timeout:   cfg.SmtpTimeout,
			Retries:   cfg.Retries,
		},
	}
}

// errNoCandidateHost is returned by selectHost when every MX candidate is
// honeypot-flagged (spec.md §8's fixture: "verification surfaces a
// no-candidate error and verdict Unknown").
var errNoCandidateHost = fmt.Errorf("no non-honeypot MX host candidate")

// selectHost implements spec.md §4.4: sort ascending by preference, drop
// honeypot-flagged hosts, then if >= 3 candidates remain pick a uniformly
// random index in [1, len-1) (excluding both ends), else pick the last.
func selectHost(mx *MxSet, domain string, rules *rulesTable) (string, error) {
	if mx == nil || len(mx.Records) == 0 {
		return "", errNoCandidateHost
	}

	sorted := make([]MxRecord, len(mx.Records))
	copy(sorted, mx.Records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Preference < sorted[j].Preference
	})

	var candidates []string
	for _, r := range sorted {
		if rules != nil && rules.isHoneypot(domain, r.Host) {
			continue
		}
		candidates = append(candidates, r.Host)
	}
	if len(candidates) == 0 {
		return "", errNoCandidateHost
	}
	if len(candidates) < 3 {
		return candidates[len(candidates)-1], nil
	}

	// Random index in [1, len-1), i.e. excluding the first and last entries.
	span := big.NewInt(int64(len(candidates) - 2))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return candidates[len(candidates)-1], nil
	}
	return candidates[1+n.Int64()], nil
}
