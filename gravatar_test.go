package emailverifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gock "gopkg.in/h2non/gock.v1"
)

func TestCheckGravatarOK(t *testing.T) {
	defer gock.Off()

	email := "alex@example.com"
	hash, err := getMD5Hash(trimLower(email))
	assert.NoError(t, err)

	gock.New("https://www.gravatar.com").
		Get("/avatar/" + hash).
		Reply(200).
		BodyString("not-the-default-avatar-bytes")

	verifier := NewVerifier().EnableGravatarCheck()
	gravatar, err := verifier.CheckGravatar(context.Background(), email)
	assert.NoError(t, err)
	assert.True(t, gravatar.HasGravatar)
	assert.NotEmpty(t, gravatar.GravatarUrl)
}

func TestCheckGravatarFailed(t *testing.T) {
	defer gock.Off()

	email := "nogravatar@example.com"
	hash, err := getMD5Hash(trimLower(email))
	assert.NoError(t, err)

	gock.New("https://www.gravatar.com").
		Get("/avatar/" + hash).
		Reply(404)

	verifier := NewVerifier().EnableGravatarCheck()
	gravatar, err := verifier.CheckGravatar(context.Background(), email)
	assert.NoError(t, err)
	assert.False(t, gravatar.HasGravatar)
	assert.Empty(t, gravatar.GravatarUrl)
}

func TestCheckGravatarDisabled(t *testing.T) {
	verifier := NewVerifier()
	gravatar, err := verifier.CheckGravatar(context.Background(), "anyone@example.com")
	assert.NoError(t, err)
	assert.Nil(t, gravatar)
}
