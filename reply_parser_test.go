package emailverifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReply_Categories(t *testing.T) {
	tests := []struct {
		msg  string
		want ReplyCategory
	}{
		{"550 5.1.1 user unknown", ReplyInvalid},
		{"550 no such mailbox", ReplyInvalid},
		{"452 4.2.2 mailbox full", ReplyFullInbox},
		{"550 5.2.1 account disabled", ReplyDisabledAccount},
		{"550 you are blacklisted", ReplyIpBlacklisted},
		{"450 cannot find your reverse hostname", ReplyNeedsReverseDns},
		{"421 connection incomplete", ReplyIoIncomplete},
		{"250 ok, completely unrelated text", ReplyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseReply(tt.msg, ReplyContext{}), tt.msg)
	}
}

func TestParseReply_InvalidPrecedesBlacklisted(t *testing.T) {
	msg := "550 user unknown, also blacklist"
	assert.Equal(t, ReplyInvalid, ParseReply(msg, ReplyContext{}))
}

func TestParseReply_InterpolatedMailboxUnknownPhrase(t *testing.T) {
	msg := "550 5.1.1 mailbox someone@example.com unknown"
	assert.Equal(t, ReplyInvalid, ParseReply(msg, ReplyContext{Email: "someone@example.com"}))
}

func TestParseReply_DeliverableOverride(t *testing.T) {
	msg := "452 the user you are trying to contact is receiving mail at a rate that prevents delivery"
	assert.True(t, IsDeliverableOverride(msg))
}
