package emailverifier

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerificationReport_RoundTrip_SuccessfulSmtp(t *testing.T) {
	original := VerificationReport{
		Input:       "someone@example.com",
		IsReachable: VerdictSafe,
		Misc: &MiscFacts{
			IsB2C:       true,
			GravatarURL: strPtrOrNil("https://www.gravatar.com/avatar/abc"),
		},
		Mx: &MxSet{AcceptsMail: true, Records: []MxRecord{{Preference: 10, Host: "mx1.example.com."}}},
		Smtp: &SmtpOutcome{
			CanConnectSmtp: true,
			IsDeliverable:  true,
		},
		Syntax: Syntax{
			Username: "someone",
			Domain:   "example.com",
			Valid:    true,
			Address:  "someone@example.com",
		},
		Debug: DebugTrace{
			ServerName: "mx1.example.com.",
			StartTime:  time.Unix(1000, 0).UTC(),
			EndTime:    time.Unix(1001, 0).UTC(),
			Duration:   time.Second,
			Smtp:       DebugSmtp{VerifMethod: "smtp", Host: "mx1.example.com."},
		},
	}

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var roundTripped VerificationReport
	assert.NoError(t, json.Unmarshal(data, &roundTripped))

	assert.Equal(t, original.Input, roundTripped.Input)
	assert.Equal(t, original.IsReachable, roundTripped.IsReachable)
	assert.Equal(t, original.Syntax.Address, roundTripped.Syntax.Address)
	assert.Equal(t, original.Mx.AcceptsMail, roundTripped.Mx.AcceptsMail)
	assert.Equal(t, original.Mx.RecordHosts(), roundTripped.Mx.RecordHosts())
	assert.Equal(t, original.Smtp.IsDeliverable, roundTripped.Smtp.IsDeliverable)
	assert.Equal(t, original.Misc.IsB2C, roundTripped.Misc.IsB2C)
	assert.Equal(t, original.Debug.ServerName, roundTripped.Debug.ServerName)
	assert.Equal(t, original.Debug.Duration, roundTripped.Debug.Duration)
}

func TestVerificationReport_MarshalJSON_MxErrorShape(t *testing.T) {
	report := VerificationReport{
		Input:       "someone@nonexistent-domain.invalid",
		IsReachable: VerdictUnknown,
		MxError:     "no records found",
		Syntax:      Syntax{Username: "someone", Domain: "nonexistent-domain.invalid", Valid: true},
	}
	data, err := json.Marshal(report)
	assert.NoError(t, err)

	var asMap map[string]any
	assert.NoError(t, json.Unmarshal(data, &asMap))
	mx := asMap["mx"].(map[string]any)
	assert.Equal(t, "no records found", mx["error"])
	assert.NotContains(t, mx, "accepts_mail")
}

func TestVerificationReport_MarshalJSON_SmtpErrorCarriesIpBlacklistedDescription(t *testing.T) {
	report := VerificationReport{
		Input:           "someone@example.com",
		SmtpError:       "connection refused",
		SmtpDescription: ReplyIpBlacklisted,
		Syntax:          Syntax{Valid: true},
	}
	data, err := json.Marshal(report)
	assert.NoError(t, err)

	var asMap map[string]any
	assert.NoError(t, json.Unmarshal(data, &asMap))
	smtp := asMap["smtp"].(map[string]any)
	assert.Equal(t, "connection refused", smtp["error"])
	assert.Equal(t, string(ReplyIpBlacklisted), smtp["description"])
}
