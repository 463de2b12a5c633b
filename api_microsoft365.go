package emailverifier

import (
	"context"
	"net/http"
	"strings"
)

// checkMicrosoft365API implements C8's Microsoft 365 (OneDrive) strategy: a
// HEAD request to the tenant's personal OneDrive page. HTTP 403 means the
// address exists; any other status carries no signal (IsDeliverable stays
// false, but that is "unknown", not a confirmed non-existence — callers
// should treat a nil error with CanConnectSmtp=true and IsDeliverable=false
// from this verifier as "no signal", same as original_source/core/src/smtp/
// outlook/microsoft365.rs's `Option<bool>` return).
func checkMicrosoft365API(ctx context.Context, client *http.Client, address string) (*SmtpOutcome, error) {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return &SmtpOutcome{}, nil
	}
	local := address[:at]
	domain := address[at+1:]

	tenant := domain
	if dot := strings.IndexByte(domain, '.'); dot >= 0 {
		tenant = domain[:dot]
	}
	domainUnderscored := strings.ReplaceAll(domain, ".", "_")

	endpoint := "https://" + tenant + "-my.sharepoint.com/personal/" + local + "_" + domainUnderscored +
		"/_layouts/15/onedrive.aspx"

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return nil, &HttpError{Provider: MICROSOFT365, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &HttpError{Provider: MICROSOFT365, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusForbidden {
		return &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: true}, nil
	}
	return &SmtpOutcome{CanConnectSmtp: true}, nil
}
