package emailverifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// webdriverSession is a minimal W3C WebDriver JSON-wire-protocol client.
// No ecosystem WebDriver binding appears anywhere in the retrieved example
// corpus (see DESIGN.md), so C9 talks the protocol directly over
// net/http/encoding/json rather than depending on an unverified module.
type webdriverSession struct {
	client    *http.Client
	addr      string
	sessionID string
}

func newWebdriverSession(ctx context.Context, addr string, client *http.Client) (*webdriverSession, error) {
	body := map[string]any{
		"capabilities": map[string]any{
			"alwaysMatch": map[string]any{
				"browserName": "chrome",
				"goog:chromeOptions": map[string]any{
					"args": []string{
						"--headless", "--disable-gpu", "--no-sandbox", "--disable-dev-shm-usage",
					},
				},
			},
		},
	}
	var resp struct {
		Value struct {
			SessionID string `json:"sessionId"`
		} `json:"value"`
	}
	if err := webdriverDo(ctx, client, http.MethodPost, addr+"/session", body, &resp); err != nil {
		return nil, err
	}
	return &webdriverSession{client: client, addr: addr, sessionID: resp.Value.SessionID}, nil
}

func (s *webdriverSession) url() string {
	return fmt.Sprintf("%s/session/%s", s.addr, s.sessionID)
}

func (s *webdriverSession) close(ctx context.Context) error {
	return webdriverDo(ctx, s.client, http.MethodDelete, s.url(), nil, nil)
}

func (s *webdriverSession) navigate(ctx context.Context, target string) error {
	return webdriverDo(ctx, s.client, http.MethodPost, s.url()+"/url", map[string]any{"url": target}, nil)
}

func (s *webdriverSession) findElement(ctx context.Context, cssSelector string) (string, error) {
	var resp struct {
		Value map[string]string `json:"value"`
	}
	err := webdriverDo(ctx, s.client, http.MethodPost, s.url()+"/element", map[string]any{
		"using": "css selector",
		"value": cssSelector,
	}, &resp)
	if err != nil {
		return "", err
	}
	for _, id := range resp.Value {
		return id, nil
	}
	return "", fmt.Errorf("element %q not found", cssSelector)
}

func (s *webdriverSession) sendKeys(ctx context.Context, elementID, text string) error {
	return webdriverDo(ctx, s.client, http.MethodPost, s.url()+"/element/"+elementID+"/value", map[string]any{
		"text": text,
	}, nil)
}

func (s *webdriverSession) click(ctx context.Context, elementID string) error {
	return webdriverDo(ctx, s.client, http.MethodPost, s.url()+"/element/"+elementID+"/click", nil, nil)
}

// visible reports whether cssSelector resolves to a displayed element;
// "not found" is reported as not-visible rather than an error, since
// headless flows poll for several selectors that are mutually exclusive.
func (s *webdriverSession) visible(ctx context.Context, cssSelector string) bool {
	id, err := s.findElement(ctx, cssSelector)
	if err != nil {
		return false
	}
	var resp struct {
		Value bool `json:"value"`
	}
	if err := webdriverDo(ctx, s.client, http.MethodGet, s.url()+"/element/"+id+"/displayed", nil, &resp); err != nil {
		return false
	}
	return resp.Value
}

func webdriverDo(ctx context.Context, client *http.Client, method, endpoint string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webdriver %s %s: status %d", method, endpoint, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// pollInterval is how often a headless flow re-checks its race conditions.
const pollInterval = 250 * time.Millisecond

// checkHotmailB2CHeadless implements C9's Hotmail B2C flow against
// https://account.live.com/password/reset, grounded on
// original_source/core/src/smtp/outlook/headless.rs.
func checkHotmailB2CHeadless(ctx context.Context, webdriverAddr, address string, client *http.Client) (*SmtpOutcome, error) {
	session, err := newWebdriverSession(ctx, webdriverAddr, client)
	if err != nil {
		return nil, &HeadlessError{Provider: HOTMAIL, Err: err}
	}
	defer func() {
		_ = session.close(context.Background())
	}()

	if err := session.navigate(ctx, "https://account.live.com/password/reset"); err != nil {
		return nil, &HeadlessError{Provider: HOTMAIL, Err: err}
	}
	signinField, err := session.findElement(ctx, "#iSigninName")
	if err != nil {
		return nil, &HeadlessError{Provider: HOTMAIL, Err: err}
	}
	if err := session.sendKeys(ctx, signinField, address); err != nil {
		return nil, &HeadlessError{Provider: HOTMAIL, Err: err}
	}
	submit, err := session.findElement(ctx, "#resetPwdHipAction")
	if err != nil {
		return nil, &HeadlessError{Provider: HOTMAIL, Err: err}
	}
	if err := session.click(ctx, submit); err != nil {
		return nil, &HeadlessError{Provider: HOTMAIL, Err: err}
	}

	for {
		if session.visible(ctx, "#pMemberNameErr") || session.visible(ctx, "#iSigninNameError") {
			return &SmtpOutcome{CanConnectSmtp: true}, nil
		}
		if session.visible(ctx, "#iSelectProofTitle") || session.visible(ctx, "#iEnterVerification") {
			return &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: true}, nil
		}
		select {
		case <-ctx.Done():
			return nil, &HeadlessError{Provider: HOTMAIL, Err: ctx.Err()}
		case <-time.After(pollInterval):
		}
	}
}

// checkYahooHeadless implements C9's Yahoo flow against
// https://login.yahoo.com/forgot, grounded on
// original_source/core/src/smtp/yahoo/headless.rs.
func checkYahooHeadless(ctx context.Context, webdriverAddr, address string, client *http.Client) (*SmtpOutcome, error) {
	session, err := newWebdriverSession(ctx, webdriverAddr, client)
	if err != nil {
		return nil, &HeadlessError{Provider: YAHOO, Err: err}
	}
	defer func() {
		_ = session.close(context.Background())
	}()

	if err := session.navigate(ctx, "https://login.yahoo.com/forgot"); err != nil {
		return nil, &HeadlessError{Provider: YAHOO, Err: err}
	}
	usernameField, err := session.findElement(ctx, "#username")
	if err != nil {
		return nil, &HeadlessError{Provider: YAHOO, Err: err}
	}
	if err := session.sendKeys(ctx, usernameField, address); err != nil {
		return nil, &HeadlessError{Provider: YAHOO, Err: err}
	}
	submit, err := session.findElement(ctx, `button[name="verifyYid"]`)
	if err != nil {
		return nil, &HeadlessError{Provider: YAHOO, Err: err}
	}
	if err := session.click(ctx, submit); err != nil {
		return nil, &HeadlessError{Provider: YAHOO, Err: err}
	}

	for {
		if session.visible(ctx, ".error-msg") {
			return &SmtpOutcome{CanConnectSmtp: true}, nil
		}
		if session.visible(ctx, ".ctx-account_is_locked") {
			return &SmtpOutcome{CanConnectSmtp: true, IsDisabled: true}, nil
		}
		if session.visible(ctx, ".recaptcha-challenge") || session.visible(ctx, "#email-verify-challenge") || session.visible(ctx, "#challenge-selector-challenge") {
			return &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: true}, nil
		}
		select {
		case <-ctx.Done():
			return nil, &HeadlessError{Provider: YAHOO, Err: ctx.Err()}
		case <-time.After(pollInterval):
		}
	}
}
