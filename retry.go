package emailverifier

import "context"

// withSMTPRetry implements C7: run probe up to attempts times (attempts is
// spec.md's `retries`, a total attempt count, not additional retries beyond
// the first). Retry only when the returned SmtpError is Retriable (an
// unclassified reply, a timeout, or a transport failure other than a proxy
// failure); any classified error (Invalid/FullInbox/Disabled/IpBlacklisted/
// NeedsReverseDns surfaced via the outcome or a returned SmtpError) short
// circuits immediately, since retrying would not change the answer
// (spec.md §4.8, §8.8).
func withSMTPRetry(ctx context.Context, attempts int, probe func(ctx context.Context) (*SmtpOutcome, *SmtpError)) (*SmtpOutcome, *SmtpError) {
	if attempts < 1 {
		attempts = 1
	}

	var outcome *SmtpOutcome
	var smtpErr *SmtpError
	for i := 0; i < attempts; i++ {
		outcome, smtpErr = probe(ctx)
		if smtpErr == nil || !smtpErr.Retriable() {
			return outcome, smtpErr
		}
		if ctx.Err() != nil {
			return outcome, smtpErr
		}
	}
	return outcome, smtpErr
}
