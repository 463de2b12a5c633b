package emailverifier

import (
	"errors"
	"fmt"
)

// SyntaxError means the input could not be parsed as a mailbox address.
// It is terminal: the orchestrator reports Invalid and populates only the
// syntax field of the report.
type SyntaxError struct {
	Raw string
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on %q: %v", e.Raw, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// MxErrorKind distinguishes a resolver malfunction from a lookup failure;
// both surface to the orchestrator as Unknown. An empty result is not an
// error (see CheckMX).
type MxErrorKind int

const (
	MxErrorIo MxErrorKind = iota
	MxErrorResolve
)

func (k MxErrorKind) String() string {
	if k == MxErrorIo {
		return "io"
	}
	return "resolve"
}

// MxError wraps a DNS MX lookup failure.
type MxError struct {
	Kind MxErrorKind
	Err  error
}

func (e *MxError) Error() string {
	return fmt.Sprintf("mx %s error: %v", e.Kind, e.Err)
}

func (e *MxError) Unwrap() error { return e.Err }

// SmtpErrorKind enumerates the classified-vs-unclassified shapes an SMTP
// probe can fail with. SmtpErrorTransport, SmtpErrorTimeout and
// SmtpErrorUnclassified are retried by the retry controller (C7);
// SmtpErrorClassified (a semantically parsed reply, e.g. IpBlacklisted) is
// terminal per attempt.
type SmtpErrorKind int

const (
	SmtpErrorTransport SmtpErrorKind = iota
	SmtpErrorTimeout
	SmtpErrorUnclassified
	SmtpErrorClassified
)

// SmtpError is the error surfaced by the SMTP prober (C5). Description, when
// set, is the semantic reply category the parser (C4) assigned: IpBlacklisted
// or NeedsReverseDns, or IoIncomplete when the single reconnect also ended
// incomplete. Only IpBlacklisted and NeedsReverseDns are written to the
// optional `description` field of spec.md's VerificationReport.
type SmtpError struct {
	Kind        SmtpErrorKind
	Description ReplyCategory
	Err         error
}

func (e *SmtpError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("smtp error (%s): %v", e.Description, e.Err)
	}
	return fmt.Sprintf("smtp error: %v", e.Err)
}

func (e *SmtpError) Unwrap() error { return e.Err }

// Retriable reports whether the retry controller (C7) should attempt this
// probe again: connect/EHLO/MAIL_FROM transport failures, timeouts, and
// unclassified replies all qualify (spec.md §7); a transport failure that
// wraps a ProxyError, and a reply the parser classified into a semantic
// category (e.g. IpBlacklisted), do not.
func (e *SmtpError) Retriable() bool {
	var proxyErr *ProxyError
	if e.Kind == SmtpErrorTransport && errors.As(e.Err, &proxyErr) {
		return false
	}
	return e.Kind == SmtpErrorTransport || e.Kind == SmtpErrorUnclassified || e.Kind == SmtpErrorTimeout
}

// ProxyError means the SOCKS5 negotiation failed; it is not retried and
// surfaces the slot as Unknown.
type ProxyError struct {
	Err error
}

func (e *ProxyError) Error() string { return fmt.Sprintf("proxy error: %v", e.Err) }
func (e *ProxyError) Unwrap() error { return e.Err }

// HttpError means an HTTP-API verifier request (C8) failed: network error,
// JSON decode failure, or a missing cookie/acrumb. Not retried; the address
// falls back to no signal for the SMTP slot.
type HttpError struct {
	Provider string
	Err      error
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("http verifier (%s) error: %v", e.Provider, e.Err)
}

func (e *HttpError) Unwrap() error { return e.Err }

// HeadlessError means a WebDriver session, navigation, or element-lookup
// failed. Not retried.
type HeadlessError struct {
	Provider string
	Err      error
}

func (e *HeadlessError) Error() string {
	return fmt.Sprintf("headless verifier (%s) error: %v", e.Provider, e.Err)
}

func (e *HeadlessError) Unwrap() error { return e.Err }
