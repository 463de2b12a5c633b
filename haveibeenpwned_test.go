package emailverifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gock "gopkg.in/h2non/gock.v1"
)

func TestCheckHaveIBeenPwned_NoAPIKeyConfigured(t *testing.T) {
	v := NewVerifier()
	pwned, err := v.CheckHaveIBeenPwned(context.Background(), "someone@example.com")
	assert.NoError(t, err)
	assert.Nil(t, pwned)
}

func TestCheckHaveIBeenPwned_Breached(t *testing.T) {
	defer gock.Off()
	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/breachedaccount/someone@example.com").
		Reply(200).
		JSON([]map[string]string{{"Name": "Adobe"}})

	v := NewVerifier().HaveIBeenPwnedAPIKey("test-key")
	pwned, err := v.CheckHaveIBeenPwned(context.Background(), "someone@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, pwned)
	assert.True(t, *pwned)
}

func TestCheckHaveIBeenPwned_NotBreached(t *testing.T) {
	defer gock.Off()
	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/breachedaccount/clean@example.com").
		Reply(404)

	v := NewVerifier().HaveIBeenPwnedAPIKey("test-key")
	pwned, err := v.CheckHaveIBeenPwned(context.Background(), "clean@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, pwned)
	assert.False(t, *pwned)
}

func TestCheckHaveIBeenPwned_RateLimitedYieldsNoSignal(t *testing.T) {
	defer gock.Off()
	gock.New("https://haveibeenpwned.com").
		Get("/api/v3/breachedaccount/someone@example.com").
		Reply(429)

	v := NewVerifier().HaveIBeenPwnedAPIKey("test-key")
	pwned, err := v.CheckHaveIBeenPwned(context.Background(), "someone@example.com")
	assert.NoError(t, err)
	assert.Nil(t, pwned)
}
