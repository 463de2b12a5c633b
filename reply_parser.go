package emailverifier

import "strings"

// ReplyCategory is the C4 classification of a free-form SMTP reply string,
// per spec.md §4.5. The empty category means Unknown (no description).
type ReplyCategory string

const (
	ReplyInvalid         ReplyCategory = "Invalid"
	ReplyFullInbox       ReplyCategory = "FullInbox"
	ReplyDisabledAccount ReplyCategory = "DisabledAccount"
	ReplyIpBlacklisted   ReplyCategory = "IpBlacklisted"
	ReplyNeedsReverseDns ReplyCategory = "NeedsReverseDns"
	ReplyIoIncomplete    ReplyCategory = "IoIncomplete"
	ReplyUnknown         ReplyCategory = "Unknown"
)

// deliverableOverridePhrase is the one positive override: greylisting-style
// throttling is not a rejection.
const deliverableOverridePhrase = "the user you are trying to contact is receiving mail at a rate that"

// Phrase tables transliterated verbatim (in substance) from
// original_source/core/src/smtp/parser.rs's is_invalid/is_full_inbox/
// is_disabled_account/is_err_ip_blacklisted/is_err_needs_rdns functions.
var (
	invalidPhrases = []string{
		"address rejected", "unrouteable", "does not exist", "invalid address",
		"invalid email address", "invalid recipient", "may not exist",
		"recipient invalid", "recipient rejected", "unknown recipient",
		"undeliverable", "user unknown", "unknown user", "recipient unknown",
		"no such user", "mailbox not found", "invalid mailbox",
		"no mailbox", "no such mailbox", "mailbox unavailable",
		"mailbox is unavailable", "not a valid mailbox", "no such recipient",
		"have an account", "unknown local part", "no longer available",
		"dosn't exist", "could not be found", "no such person", "address error",
		"address is not handled",
	}

	fullInboxPhrases = []string{
		"insufficient", "mailbox full", "quote exceeded", "over quota",
		"too many messages",
	}

	disabledAccountPhrases = []string{
		"disabled", "discontinued",
	}

	ipBlacklistedPhrases = []string{
		"blacklist", "black list", "block list", "spam", "abusix",
		"relaying denied", "access denied", "administratively denied", "banned",
		"blocked", "connection rejected", "poor reputation", "junkmail",
		"refused by proofpoint", "dnsbl", "sbrs score too low", "spamhaus",
		"relay not permitted", "not yet authorized",
	}

	needsReverseDnsPhrases = []string{
		"cannot find your reverse hostname", "reverse dns entry",
	}
)

// ReplyContext carries the probed address into ParseReply, needed for the
// one phrase (spec.md §4.5) that interpolates the target mailbox rather
// than appearing as a fixed substring.
type ReplyContext struct {
	Email string
}

// ParseReply classifies a lower-cased SMTP reply string into a
// ReplyCategory. Categories are tried in the fixed precedence spec.md §4.5
// mandates: Invalid, FullInbox, DisabledAccount, IpBlacklisted,
// NeedsReverseDns, IoIncomplete, else Unknown. The formatted
// "mailbox {email} unknown" phrase (original_source/core/src/smtp/parser.rs)
// is checked by interpolating ctx.Email between "mailbox" and "unknown".
func ParseReply(msg string, ctx ReplyContext) ReplyCategory {
	msg = strings.ToLower(msg)

	if strings.Contains(msg, deliverableOverridePhrase) {
		return ReplyUnknown
	}
	if ctx.Email != "" && strings.Contains(msg, "mailbox "+strings.ToLower(ctx.Email)+" unknown") {
		return ReplyInvalid
	}
	if containsAny(msg, invalidPhrases) {
		return ReplyInvalid
	}
	if containsAny(msg, fullInboxPhrases) {
		return ReplyFullInbox
	}
	if containsAny(msg, disabledAccountPhrases) {
		return ReplyDisabledAccount
	}
	if containsAny(msg, ipBlacklistedPhrases) {
		return ReplyIpBlacklisted
	}
	if containsAny(msg, needsReverseDnsPhrases) {
		return ReplyNeedsReverseDns
	}
	if strings.Contains(msg, "incomplete") {
		return ReplyIoIncomplete
	}
	return ReplyUnknown
}

// IsDeliverableOverride reports whether msg is the one positive override
// (server-side rate throttling, not a rejection).
func IsDeliverableOverride(msg string) bool {
	return strings.Contains(strings.ToLower(msg), deliverableOverridePhrase)
}

func containsAny(haystack string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(haystack, p) {
			return true
		}
	}
	return false
}
