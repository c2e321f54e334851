package smtp

import (
	smtpPkg "net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestMailer(sent *[]sentMail) *smtp {
	return &smtp{
		mail: "noreply@citizen.test",
		addr: "localhost:2525",
		send: func(addr string, _ smtpPkg.Auth, from string, to []string, msg []byte) error {
			*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
			return nil
		},
	}
}

func TestSendPasswordResetOTP(t *testing.T) {
	var sent []sentMail
	mailer := newTestMailer(&sent)

	require.NoError(t, mailer.SendPasswordResetOTP("jane@citizen.test", "", "A1B2C3"))

	require.Len(t, sent, 1)
	assert.Equal(t, "localhost:2525", sent[0].addr)
	assert.Equal(t, []string{"jane@citizen.test"}, sent[0].to)
	assert.Contains(t, sent[0].msg, "Subject: Password Reset - One-Time Password (OTP)")
	assert.Contains(t, sent[0].msg, "Dear User,")
	assert.Contains(t, sent[0].msg, "OTP: A1B2C3")
}

func TestSendMail_NoRecipients(t *testing.T) {
	var sent []sentMail
	mailer := newTestMailer(&sent)

	require.NoError(t, mailer.SendMail(nil, "subject", "body"))
	assert.Empty(t, sent)
}

func TestSendMail_Headers(t *testing.T) {
	var sent []sentMail
	mailer := newTestMailer(&sent)

	require.NoError(t, mailer.SendMail([]string{"a@x.test", "b@x.test"}, "New feedback", "hello"))

	require.Len(t, sent, 1)
	headers, body, found := strings.Cut(sent[0].msg, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "To: a@x.test, b@x.test")
	assert.Equal(t, "hello", body)
}
