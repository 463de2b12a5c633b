package emailverifier

import (
	"context"
	"net/http"
	"net/url"
)

// checkGmailAPI implements C8's Gmail strategy: a HEAD request to the gxlu
// endpoint; a Set-Cookie header in the response means the address exists.
// Grounded on original_source/core/src/smtp/gmail.rs, translated into the
// teacher's smtpAPIVerifier plug-in shape.
func checkGmailAPI(ctx context.Context, client *http.Client, address string) (*SmtpOutcome, error) {
	endpoint := "https://mail.google.com/mail/gxlu?email=" + url.QueryEscape(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return nil, &HttpError{Provider: GMAIL, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &HttpError{Provider: GMAIL, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	exists := len(resp.Header.Values("Set-Cookie")) > 0
	return &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: exists}, nil
}
