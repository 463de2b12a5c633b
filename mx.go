package emailverifier

import (
	"context"
	"net"
)

// MxRecord is one (preference, hostname) pair from a DNS MX lookup.
// Hostname retains its trailing dot, which the provider classifier (C3)
// requires.
type MxRecord struct {
	Preference uint16
	Host       string
}

// MxSet is the C2 result: the ordered collection of MX records for a
// domain. An empty MxSet is well-formed (spec.md §3) — it is not an error,
// it means the domain does not accept mail.
type MxSet struct {
	AcceptsMail bool       `json:"accepts_mail"`
	Records     []MxRecord `json:"-"`
}

// RecordHosts returns just the hostnames, in lookup order, for the
// VerificationReport's "records" field (spec.md §6).
func (m *MxSet) RecordHosts() []string {
	hosts := make([]string, len(m.Records))
	for i, r := range m.Records {
		hosts[i] = r.Host
	}
	return hosts
}

// CheckMX performs the C2 DNS MX lookup for domain using the system
// resolver configuration. "No records found" (NXDOMAIN) is reported as a
// well-formed empty MxSet, not an error (spec.md §4.2); any other resolver
// failure — timeout, SERVFAIL, network unreachable — is wrapped as
// MxError{Kind: MxErrorResolve} regardless of whether LookupMX also
// returned a (nil) record slice alongside it.
func (v *Verifier) CheckMX(ctx context.Context, domain string) (*MxSet, error) {
	if !v.mxCheckEnabled {
		return &MxSet{}, nil
	}

	asciiDomain := domainToASCII(domain)
	records, err := net.DefaultResolver.LookupMX(ctx, asciiDomain)
	if err != nil {
		if dnsErr, ok := err.(*net.DNSError); ok && dnsErr.IsNotFound {
			return &MxSet{}, nil
		}
		return nil, &MxError{Kind: MxErrorResolve, Err: err}
	}

	out := &MxSet{
		AcceptsMail: len(records) > 0,
		Records:     make([]MxRecord, len(records)),
	}
	for i, r := range records {
		out.Records[i] = MxRecord{Preference: r.Pref, Host: r.Host}
	}
	return out, nil
}
