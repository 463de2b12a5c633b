package emailverifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// verifier is shared across this package's tests, following the teacher's
// own convention of a package-level Verifier configured once for the
// network-touching smoke tests.
var verifier = NewVerifier().EnableMXCheck()

func TestVerify_InvalidSyntax(t *testing.T) {
	ret, err := verifier.Verify(context.Background(), "foo@bar")
	assert.NoError(t, err)
	assert.Equal(t, VerdictInvalid, ret.IsReachable)
	assert.False(t, ret.Syntax.Valid)
	assert.Nil(t, ret.Mx)
	assert.Nil(t, ret.Smtp)
}

func TestVerify_AssignsUniqueTraceID(t *testing.T) {
	first, err := verifier.Verify(context.Background(), "foo@bar")
	assert.NoError(t, err)
	second, err := verifier.Verify(context.Background(), "foo@baz")
	assert.NoError(t, err)
	assert.NotEmpty(t, first.Debug.TraceID)
	assert.NotEqual(t, first.Debug.TraceID, second.Debug.TraceID)
}

func TestVerify_NoMxRecords(t *testing.T) {
	ret, err := verifier.Verify(context.Background(), "foo@domain-almost-certainly-unregistered-xyzzy123.test")
	assert.NoError(t, err)
	assert.Equal(t, VerdictInvalid, ret.IsReachable)
	assert.True(t, ret.Syntax.Valid)
	assert.Equal(t, "domain-almost-certainly-unregistered-xyzzy123.test", ret.Syntax.Domain)
	assert.NotNil(t, ret.Mx)
	assert.False(t, ret.Mx.AcceptsMail)
}

func TestVerify_MxButSmtpDisabled(t *testing.T) {
	ret, err := verifier.Verify(context.Background(), "someone@github.com")
	assert.NoError(t, err)
	assert.NotNil(t, ret.Mx)
	assert.True(t, ret.Mx.AcceptsMail)
	assert.Nil(t, ret.Smtp)
	assert.Equal(t, VerdictUnknown, ret.IsReachable)
}

func TestVerify_DisposableDomain(t *testing.T) {
	v := NewVerifier().EnableMXCheck().EnableSMTPCheck().AddDisposableDomains([]string{"iamdisposableemail.de"})
	ret, err := v.Verify(context.Background(), "exampleuser@iamdisposableemail.de")
	assert.NoError(t, err)
	assert.True(t, ret.Misc.IsDisposable)
}

func TestVerify_RoleAccount(t *testing.T) {
	ret, err := verifier.Verify(context.Background(), "admin@github.com")
	assert.NoError(t, err)
	assert.True(t, ret.Misc.IsRoleAccount)
}

func TestVerify_DomainSuggest(t *testing.T) {
	v := NewVerifier().DisableMXCheck().EnableDomainSuggest()
	ret, err := v.Verify(context.Background(), "someone@gmai.com")
	assert.NoError(t, err)
	assert.Equal(t, "gmail.com", ret.Syntax.Suggestion)
}

func TestVerify_DomainSuggest_NoMatchNeeded(t *testing.T) {
	v := NewVerifier().DisableMXCheck().EnableDomainSuggest()
	ret, err := v.Verify(context.Background(), "someone@gmail.com")
	assert.NoError(t, err)
	assert.Empty(t, ret.Syntax.Suggestion)
}

func TestAutoUpdateDisposable_StartStop(t *testing.T) {
	v := NewVerifier()
	v.EnableAutoUpdateDisposable()
	v.DisableAutoUpdateDisposable()
	v.stopCurrentSchedule() // idempotent when schedule is nil
}

func TestGmailNormalization(t *testing.T) {
	v := NewVerifier()
	s := v.ParseAddress("A.B.C+123@googlemail.com")
	assert.Equal(t, "abc@gmail.com", s.Normalized)

	s2 := v.ParseAddress(s.Normalized)
	assert.Equal(t, s.Normalized, s2.Normalized)
}
