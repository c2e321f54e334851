package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"strings"
)

type ItfSmtp interface {
	SendMail(to []string, subject string, body string) error
	SendPasswordResetOTP(userEmail string, name string, otp string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	addr string
	send func(addr string, a smtpPkg.Auth, from string, to []string, msg []byte) error
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	return &smtp{
		auth: smtpPkg.PlainAuth("", mail, os.Getenv("SMTP_PASSWORD"), host),
		mail: mail,
		addr: host + ":" + port,
		send: smtpPkg.SendMail,
	}
}

func (s *smtp) SendMail(to []string, subject string, body string) error {
	if len(to) == 0 {
		return nil
	}

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		s.mail, strings.Join(to, ", "), subject, body)

	return s.send(s.addr, s.auth, s.mail, to, []byte(message))
}

func (s *smtp) SendPasswordResetOTP(userEmail string, name string, otp string) error {
	if name == "" {
		name = "User"
	}

	body := fmt.Sprintf(`Dear %s,

You have requested to reset your password. Please use the following One-Time Password (OTP) to proceed:

OTP: %s

This OTP is valid for one hour. If you did not request a password reset, please disregard this email.

Best regards,
Citizen Complaints and Engagement Support Team
`, name, otp)

	return s.SendMail([]string{userEmail}, "Password Reset - One-Time Password (OTP)", body)
}
