package emailverifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateVerdict_SmtpError(t *testing.T) {
	err := &SmtpError{Kind: SmtpErrorUnclassified}
	assert.Equal(t, VerdictUnknown, calculateVerdict(&MiscFacts{}, nil, err))
}

func TestCalculateVerdict_Risky(t *testing.T) {
	cases := []*SmtpOutcome{
		{CanConnectSmtp: true, IsDeliverable: true, IsCatchAll: true},
		{CanConnectSmtp: true, IsDeliverable: false, HasFullInbox: true},
	}
	for _, outcome := range cases {
		assert.Equal(t, VerdictRisky, calculateVerdict(&MiscFacts{}, outcome, nil))
	}
	disposable := &MiscFacts{IsDisposable: true}
	assert.Equal(t, VerdictRisky, calculateVerdict(disposable, &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: true}, nil))

	roleAccount := &MiscFacts{IsRoleAccount: true}
	assert.Equal(t, VerdictRisky, calculateVerdict(roleAccount, &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: true}, nil))
}

func TestCalculateVerdict_Invalid(t *testing.T) {
	cases := []*SmtpOutcome{
		{CanConnectSmtp: true, IsDeliverable: false},
		{CanConnectSmtp: false},
		{CanConnectSmtp: true, IsDeliverable: true, IsDisabled: true},
	}
	for _, outcome := range cases {
		assert.Equal(t, VerdictInvalid, calculateVerdict(&MiscFacts{}, outcome, nil))
	}
}

func TestCalculateVerdict_Safe(t *testing.T) {
	outcome := &SmtpOutcome{CanConnectSmtp: true, IsDeliverable: true}
	assert.Equal(t, VerdictSafe, calculateVerdict(&MiscFacts{}, outcome, nil))
}
