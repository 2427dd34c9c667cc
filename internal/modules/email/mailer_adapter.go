package email

import (
	"context"
	"time"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/mailer"
)

// MailerAdapter exposes the SMTP mailer through the email.Service
// interface used by the side-effect dispatcher.
type MailerAdapter struct {
	mailer   mailer.Service
	fromAddr string
	fromName string
}

func NewMailerAdapter(m mailer.Service, fromAddr, fromName string) *MailerAdapter {
	return &MailerAdapter{mailer: m, fromAddr: fromAddr, fromName: fromName}
}

func (a *MailerAdapter) SendEmail(to string, toName string, subject string, htmlBody string, textBody string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return a.mailer.Send(ctx, mailer.Email{
		From:     a.fromAddr,
		FromName: a.fromName,
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}
