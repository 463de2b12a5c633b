package emailverifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
)

const (
	yahooSignupURL     = "https://login.yahoo.com/account/create?specId=yidReg&lang=en-US&src=&done=https%3A%2F%2Fwww.yahoo.com"
	yahooValidationURL = "https://login.yahoo.com/account/module/create?validateField=yid"
)

var (
	acrumbRe       = regexp.MustCompile(`s=([^&]+)&d`)
	sessionIndexRe = regexp.MustCompile(`name="sessionIndex"\s+value="([^"]*)"`)
)

// yahooAPIVerifier implements C8's Yahoo strategy, the two-request
// signup-validation flow described in
// original_source/core/src/smtp/yahoo/api.rs, translated onto the
// teacher's existing yahooAPIVerifier plug-in (EnableAPIVerifier(YAHOO)).
type yahooAPIVerifier struct {
	client *http.Client
}

func newYahooAPIVerifier(client *http.Client) *yahooAPIVerifier {
	return &yahooAPIVerifier{client: client}
}

func (y *yahooAPIVerifier) isAddressExist(ctx context.Context, address string) (*SmtpOutcome, error) {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return &SmtpOutcome{}, nil
	}
	localPart := address[:at]

	cookie, acrumb, sessionIndex, err := y.fetchSignupPage(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := y.validateUserID(ctx, cookie, acrumb, sessionIndex, localPart)
	if err != nil {
		return nil, err
	}
	return &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: exists}, nil
}

func (y *yahooAPIVerifier) fetchSignupPage(ctx context.Context) (cookie, acrumb, sessionIndex string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, yahooSignupURL, nil)
	if err != nil {
		return "", "", "", &HttpError{Provider: YAHOO, Err: err}
	}
	resp, err := y.client.Do(req)
	if err != nil {
		return "", "", "", &HttpError{Provider: YAHOO, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	cookie = strings.Join(resp.Header.Values("Set-Cookie"), "; ")
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", "", &HttpError{Provider: YAHOO, Err: err}
	}

	acrumbMatch := acrumbRe.FindSubmatch(body)
	if acrumbMatch == nil {
		return "", "", "", &HttpError{Provider: YAHOO, Err: errMissingAcrumb}
	}
	sessionMatch := sessionIndexRe.FindSubmatch(body)
	if sessionMatch == nil {
		return "", "", "", &HttpError{Provider: YAHOO, Err: errMissingSessionIndex}
	}

	return cookie, string(acrumbMatch[1]), string(sessionMatch[1]), nil
}

type yahooValidationEntry struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

func (y *yahooAPIVerifier) validateUserID(ctx context.Context, cookie, acrumb, sessionIndex, userID string) (bool, error) {
	payload, err := json.Marshal(map[string]string{
		"acrumb":       acrumb,
		"sessionIndex": sessionIndex,
		"specId":       "yidReg",
		"userId":       userID,
	})
	if err != nil {
		return false, &HttpError{Provider: YAHOO, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, yahooValidationURL, bytes.NewReader(payload))
	if err != nil {
		return false, &HttpError{Provider: YAHOO, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := y.client.Do(req)
	if err != nil {
		return false, &HttpError{Provider: YAHOO, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var entries []yahooValidationEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return false, &HttpError{Provider: YAHOO, Err: err}
	}

	for _, e := range entries {
		if e.Name == "userId" && (e.Error == "IDENTIFIER_EXISTS" || e.Error == "IDENTIFIER_NOT_AVAILABLE") {
			return true, nil
		}
	}
	return false, nil
}

var (
	errMissingAcrumb       = httpFieldError("yahoo signup page missing acrumb")
	errMissingSessionIndex = httpFieldError("yahoo signup page missing sessionIndex")
)

type httpFieldError string

func (e httpFieldError) Error() string { return string(e) }
