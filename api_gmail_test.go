package emailverifier

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gock "gopkg.in/h2non/gock.v1"
)

func TestCheckGmailAPI_Exists(t *testing.T) {
	defer gock.Off()
	gock.New("https://mail.google.com").
		Head("/mail/gxlu").
		MatchParam("email", "someone@gmail.com").
		Reply(200).
		SetHeader("Set-Cookie", "COMPASS=abc123")

	client := &http.Client{}
	gock.InterceptClient(client)

	outcome, err := checkGmailAPI(context.Background(), client, "someone@gmail.com")
	assert.NoError(t, err)
	assert.True(t, outcome.CanConnectSmtp)
	assert.True(t, outcome.IsDeliverable)
}

func TestCheckGmailAPI_NotExists(t *testing.T) {
	defer gock.Off()
	gock.New("https://mail.google.com").
		Head("/mail/gxlu").
		Reply(200)

	client := &http.Client{}
	gock.InterceptClient(client)

	outcome, err := checkGmailAPI(context.Background(), client, "nobody@gmail.com")
	assert.NoError(t, err)
	assert.False(t, outcome.IsDeliverable)
}
