package emailverifier

// Verdict is the C12 final classification, spec.md §3/§4.12.
type Verdict string

const (
	VerdictSafe    Verdict = "safe"
	VerdictRisky   Verdict = "risky"
	VerdictInvalid Verdict = "invalid"
	VerdictUnknown Verdict = "unknown"
)

// calculateVerdict implements spec.md §4.12's table exactly, rules
// evaluated top to bottom, first match wins. smtpErr non-nil means the SMTP
// slot failed outright (transport/timeout/unclassified-after-retries);
// outcome is nil in that case.
func calculateVerdict(misc *MiscFacts, outcome *SmtpOutcome, smtpErr *SmtpError) Verdict {
	if smtpErr != nil || outcome == nil {
		return VerdictUnknown
	}

	if misc != nil && misc.IsDisposable || misc != nil && misc.IsRoleAccount || outcome.IsCatchAll || outcome.HasFullInbox {
		return VerdictRisky
	}

	if !outcome.IsDeliverable || !outcome.CanConnectSmtp || outcome.IsDisabled {
		return VerdictInvalid
	}

	return VerdictSafe
}
