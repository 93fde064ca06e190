package mail

import (
	"context"
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/pslmedia/backoffice/pkg/config"
)

// Mailer delivers transactional mail. The reset flow must surface delivery
// failures to the caller; the trial-expiry alert is fire-and-forget.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type resendMailer struct {
	client   *resend.Client
	from     string
	fromName string
	log      *zap.SugaredLogger
}

func NewMailer(cfg *cfgpkg.Config, log *zap.SugaredLogger) Mailer {
	return &resendMailer{
		client:   resend.NewClient(cfg.Mail.ResendAPIKey),
		from:     cfg.Mail.FromAddress,
		fromName: cfg.Mail.FromName,
		log:      log,
	}
}

func (m *resendMailer) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    m.fromName + " <" + m.from + ">",
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}
	resp, err := m.client.Emails.Send(params)
	if err != nil {
		m.log.Errorw("mail send failed", "to", to, "subject", subject, "err", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	m.log.Infow("mail sent", "to", to, "subject", subject, "id", resp.Id)
	return nil
}

var Module = fx.Options(
	fx.Provide(NewMailer),
)
