package emailverifier

import (
	"context"
	"net/http"
)

// smtpAPIVerifier is the C8 plug-in contract: one HTTP-API strategy that
// stands in for an SMTP probe for a given provider, the teacher's own
// interface shape (verifier.go's apiVerifiers map), generalized from a
// single Yahoo implementation to three vendors.
type smtpAPIVerifier interface {
	isAddressExist(ctx context.Context, address string) (*SmtpOutcome, error)
}

type gmailAPIVerifier struct{ client *http.Client }

func newGmailAPIVerifier(client *http.Client) *gmailAPIVerifier {
	return &gmailAPIVerifier{client: client}
}

func (g *gmailAPIVerifier) isAddressExist(ctx context.Context, address string) (*SmtpOutcome, error) {
	return checkGmailAPI(ctx, g.client, address)
}

type microsoft365APIVerifier struct{ client *http.Client }

func newMicrosoft365APIVerifier(client *http.Client) *microsoft365APIVerifier {
	return &microsoft365APIVerifier{client: client}
}

func (m *microsoft365APIVerifier) isAddressExist(ctx context.Context, address string) (*SmtpOutcome, error) {
	return checkMicrosoft365API(ctx, m.client, address)
}
