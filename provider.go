package emailverifier

import "strings"

// Provider is the C3 classification of a mail-exchanger hostname, per
// spec.md §3/§4.3.
type Provider string

const (
	ProviderGmail      Provider = "gmail"
	ProviderHotmailB2B Provider = "hotmailb2b"
	ProviderHotmailB2C Provider = "hotmailb2c"
	ProviderYahoo      Provider = "yahoo"
	ProviderMimecast   Provider = "mimecast"
	ProviderProofpoint Provider = "proofpoint"
	ProviderOther      Provider = "other"
)

// ClassifyProvider maps an MX hostname to a Provider by case-insensitive
// suffix match, first match wins, grounded directly on the suffix table in
// original_source/core/src/mx/mod.rs (is_gmail/is_hotmail_b2b/
// is_hotmail_b2c/is_yahoo/is_mimecast/is_proofpoint).
func ClassifyProvider(mxHost string) Provider {
	host := strings.ToLower(mxHost)
	if !strings.HasSuffix(host, ".") {
		host += "."
	}

	switch {
	case strings.HasSuffix(host, ".google.com."):
		return ProviderGmail
	case strings.HasSuffix(host, ".olc.protection.outlook.com."):
		return ProviderHotmailB2C
	case strings.HasSuffix(host, ".protection.outlook.com."):
		return ProviderHotmailB2B
	case strings.HasSuffix(host, ".yahoodns.net."):
		return ProviderYahoo
	case strings.HasSuffix(host, ".mimecast.com."):
		return ProviderMimecast
	case strings.HasSuffix(host, ".pphosted.com."), strings.HasSuffix(host, "ppe-hosted.com."):
		return ProviderProofpoint
	default:
		return ProviderOther
	}
}
