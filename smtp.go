package emailverifier

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"h12.io/socks"
)

// SmtpOutcome is the C5/C6 result: a completed (or partially completed)
// SMTP probe, mirroring spec.md §3's SmtpOutcome.
type SmtpOutcome struct {
	CanConnectSmtp bool `json:"can_connect_smtp"`
	IsDeliverable  bool `json:"is_deliverable"`
	IsCatchAll     bool `json:"is_catch_all"`
	HasFullInbox   bool `json:"has_full_inbox"`
	IsDisabled     bool `json:"is_disabled"`
}

// smtpDialFunc abstracts the transport so tests can inject a fake dialer
// instead of opening real sockets, the same seam
// other_examples/..._nomasrebotes-email-verifier__smtp_test.go uses for its
// dialSMTPFunc injection.
type smtpDialFunc func(ctx context.Context, addr string, proxy *Proxy) (net.Conn, error)

// dialSMTPTransport is the production smtpDialFunc: direct TCP, or SOCKS5
// when a proxy is configured, grounded on
// other_examples/53c67ff9_vikt0r0-email-verifier__smtp.go's use of
// h12.io/socks for exactly this purpose.
func dialSMTPTransport(ctx context.Context, addr string, proxy *Proxy) (net.Conn, error) {
	if proxy != nil {
		dial := socks.Dial(buildSocksURI(proxy))
		conn, err := dial("tcp", addr)
		if err != nil {
			return nil, &ProxyError{Err: err}
		}
		return conn, nil
	}
	var d net.Dialer
	return d.DialContext(ctx, "tcp", addr)
}

func buildSocksURI(p *Proxy) string {
	auth := ""
	if p.Username != "" {
		auth = p.Username
		if p.Password != "" {
			auth += ":" + p.Password
		}
		auth += "@"
	}
	return fmt.Sprintf("socks5://%s%s:%d", auth, p.Host, p.Port)
}

// probeSMTP runs the full C5 state machine once (plus the single
// reconnect-on-IoIncomplete allowed by spec.md §4.5/§9): CONNECT, EHLO,
// MAIL_FROM, an optional catch-all probe (C6), RCPT_TO(target), QUIT.
func probeSMTP(ctx context.Context, dial smtpDialFunc, host, domain, username string, profile SmtpProfile, proxy *Proxy, skipCatchAll bool) (*SmtpOutcome, *SmtpError) {
	host = trimTrailingDot(host)
	port := profile.Port
	if port == 0 {
		port = defaultSMTPPort
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	attemptCtx := ctx
	var cancel context.CancelFunc
	if profile.Timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, profile.Timeout)
		defer cancel()
	}

	outcome, smtpErr := dialAndConverse(attemptCtx, dial, addr, host, domain, username, profile, proxy, skipCatchAll)
	if smtpErr != nil && smtpErr.Kind == SmtpErrorClassified && smtpErr.Description == ReplyIoIncomplete {
		outcome, smtpErr = dialAndConverse(attemptCtx, dial, addr, host, domain, username, profile, proxy, skipCatchAll)
	}
	return outcome, smtpErr
}

func dialAndConverse(ctx context.Context, dial smtpDialFunc, addr, host, domain, username string, profile SmtpProfile, proxy *Proxy, skipCatchAll bool) (*SmtpOutcome, *SmtpError) {
	out := &SmtpOutcome{}

	conn, err := dial(ctx, addr, proxy)
	if err != nil {
		if ctx.Err() != nil {
			return out, &SmtpError{Kind: SmtpErrorTimeout, Err: err}
		}
		if proxyErr, ok := err.(*ProxyError); ok {
			return out, &SmtpError{Kind: SmtpErrorTransport, Err: proxyErr}
		}
		return out, &SmtpError{Kind: SmtpErrorTransport, Err: err}
	}
	out.CanConnectSmtp = true
	// The attempt's deadline also bounds the conversation, not just the dial.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	outcome, smtpErr := runSMTPConversation(conn, host, domain, username, profile, skipCatchAll, out)
	if smtpErr != nil && ctx.Err() != nil {
		smtpErr.Kind = SmtpErrorTimeout
	}
	return outcome, smtpErr
}

// runSMTPConversation drives EHLO/MAIL FROM/RCPT TO over an already-dialed
// connection, always closing it (via client.Close/Quit) before returning,
// so no abnormal exit path leaks the socket (spec.md §4.5 invariant, §8.9).
func runSMTPConversation(conn net.Conn, host, domain, username string, profile SmtpProfile, skipCatchAll bool, out *SmtpOutcome) (*SmtpOutcome, *SmtpError) {
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return out, &SmtpError{Kind: SmtpErrorTransport, Err: err}
	}
	defer func() {
		_ = client.Quit()
		_ = client.Close()
	}()

	helloName := profile.HelloName
	if helloName == "" {
		helloName = defaultHelloName
	}
	if err := client.Hello(helloName); err != nil {
		return out, &SmtpError{Kind: SmtpErrorTransport, Err: err}
	}

	fromEmail := profile.FromEmail
	if fromEmail == "" || !strings.Contains(fromEmail, "@") {
		// An invalid from_email is silently replaced with a safe default,
		// per spec.md §4.5; the probe proceeds.
		fromEmail = "user@example.org"
	}
	if err := client.Mail(fromEmail); err != nil {
		return out, &SmtpError{Kind: SmtpErrorTransport, Err: err}
	}

	if !skipCatchAll {
		randomLocal, rerr := randomAlphanumeric(15)
		if rerr == nil {
			if err := client.Rcpt(randomLocal + "@" + domain); err == nil {
				out.IsCatchAll = true
				out.IsDeliverable = true
				return out, nil
			}
		}
	}

	rcptErr := client.Rcpt(username + "@" + domain)
	if rcptErr == nil {
		out.IsDeliverable = true
		return out, nil
	}

	if IsDeliverableOverride(rcptErr.Error()) {
		out.IsDeliverable = true
		return out, nil
	}

	switch category := ParseReply(rcptErr.Error(), ReplyContext{Email: username + "@" + domain}); category {
	case ReplyInvalid:
		return out, nil
	case ReplyFullInbox:
		out.HasFullInbox = true
		return out, nil
	case ReplyDisabledAccount:
		out.IsDisabled = true
		return out, nil
	case ReplyIoIncomplete:
		return out, &SmtpError{Kind: SmtpErrorClassified, Description: ReplyIoIncomplete, Err: rcptErr}
	case ReplyIpBlacklisted, ReplyNeedsReverseDns:
		return out, &SmtpError{Kind: SmtpErrorClassified, Description: category, Err: rcptErr}
	default:
		return out, &SmtpError{Kind: SmtpErrorUnclassified, Err: rcptErr}
	}
}
