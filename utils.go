package emailverifier

import (
	"crypto/md5" //nolint:gosec // used for Gravatar hashing, not security
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// trimLower trims surrounding whitespace, lowercases, and Unicode-normalizes
// (NFC) the input, so two addresses that only differ by composed-vs-decomposed
// accent encoding (e.g. a local part with "é") compare and hash identically.
// Plain ASCII addresses are untouched by the NFC pass.
func trimLower(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// domainToASCII converts a domain to its IDNA ASCII (punycode) form; domains
// that are already ASCII, or fail conversion, are returned unchanged.
func domainToASCII(domain string) string {
	asciiDomain, err := idna.ToASCII(domain)
	if err != nil {
		return domain
	}
	return asciiDomain
}

func getMD5Hash(text string) (string, error) {
	hash := md5.Sum([]byte(text)) //nolint:gosec
	return hex.EncodeToString(hash[:]), nil
}

// randomAlphanumeric returns a cryptographically random alphanumeric string
// of length n, used for the catch-all probe's random local-part.
func randomAlphanumeric(n int) (string, error) {
	b := make([]byte, n)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphanumeric[idx.Int64()]
	}
	return string(b), nil
}

// trimTrailingDot strips the trailing "." some FQDNs carry, without
// affecting an already-bare hostname.
func trimTrailingDot(host string) string {
	return strings.TrimSuffix(host, ".")
}
