package emailverifier

const (
	defaultFromEmail = "reacher@gmail.com"
	defaultHelloName = "gmail.com"
	defaultSMTPPort  = 25

	gravatarBaseUrl    = "https://www.gravatar.com/avatar/"
	gravatarDefaultMd5 = "d5fe5cbcc31cff5f8ac010db72eb000c"

	disposableDataURL = "https://raw.githubusercontent.com/disposable-email-domains/disposable-email-domains/master/disposable_email_blocklist.conf"

	// Provider name constants, shared between MX classification and the
	// API-verifier registry keyed by these same strings.
	GMAIL        = "gmail"
	YAHOO        = "yahoo"
	HOTMAIL      = "hotmail"
	MICROSOFT365 = "microsoft365"
	MIMECAST     = "mimecast"
	PROOFPOINT   = "proofpoint"
	UNKNOWN      = "unknown"
)
