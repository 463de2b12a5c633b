package emailverifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

const haveIBeenPwnedBaseURL = "https://haveibeenpwned.com/api/v3/breachedaccount/"

// CheckHaveIBeenPwned looks up address in the HaveIBeenPwned breach
// database (spec.md §4.11). It returns (nil, nil) when no API key is
// configured — the check is opt-in. A 200 response with a non-empty JSON
// array means the address has been seen in a breach; 404 means it hasn't;
// any other status leaves the fact unknown (nil, nil), never a false
// negative.
func (v *Verifier) CheckHaveIBeenPwned(ctx context.Context, address string) (*bool, error) {
	if v.haveIBeenPwnedAPIKey == "" {
		return nil, nil
	}

	endpoint := haveIBeenPwnedBaseURL + url.PathEscape(address) + "?truncateResponse=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &HttpError{Provider: "haveibeenpwned", Err: err}
	}
	req.Header.Set("hibp-api-key", v.haveIBeenPwnedAPIKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &HttpError{Provider: "haveibeenpwned", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusNotFound:
		pwned := false
		return &pwned, nil
	case http.StatusOK:
		var breaches []json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&breaches); err != nil {
			return nil, &HttpError{Provider: "haveibeenpwned", Err: err}
		}
		pwned := len(breaches) > 0
		return &pwned, nil
	default:
		return nil, nil
	}
}
