package mail

import (
	"context"

	"go.uber.org/zap"
)

// Mailer sends outbound notification mail. Callers treat delivery as
// fire-and-forget; a failed send never fails the request that triggered it.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes outbound mail to the log instead of delivering it. It
// stands in wherever a real delivery backend is not configured.
type LogMailer struct {
	logger *zap.Logger
	from   string
}

// NewLogMailer creates a logging mailer
func NewLogMailer(logger *zap.Logger, from string) *LogMailer {
	return &LogMailer{
		logger: logger.Named("mail"),
		from:   from,
	}
}

// Send logs the mail that would have been delivered
func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.logger.Info("Outbound mail",
		zap.String("from", m.from),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}
