package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"gatherbot/internal/domain"
)

// Config holds configuration for the SES digest mailer.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	FromAddress     string
	FromName        string
	Recipient       string
}

// DigestMailer emails the weekly reminder digest via AWS SES. It is an
// optional second notification sink next to the Discord channel.
type DigestMailer struct {
	client    *ses.Client
	from      string
	fromName  string
	recipient string
	logger    *slog.Logger
}

func NewDigestMailer(cfg Config, logger *slog.Logger) (*DigestMailer, error) {
	if cfg.Recipient == "" || cfg.FromAddress == "" {
		return nil, fmt.Errorf("digest mailer requires a from address and a recipient")
	}
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	}
	return &DigestMailer{
		client:    ses.NewFromConfig(awsCfg),
		from:      cfg.FromAddress,
		fromName:  cfg.FromName,
		recipient: cfg.Recipient,
		logger:    logger,
	}, nil
}

func (m *DigestMailer) NotifyDigest(ctx context.Context, d *domain.Digest) error {
	subject := fmt.Sprintf("Upcoming events %s – %s",
		d.From.Format(domain.DateLayout), d.To.Format(domain.DateLayout))

	source := m.from
	if m.fromName != "" {
		source = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{m.recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(digestBody(d)),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}
	result, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send digest email via SES: %w", err)
	}
	m.logger.Info("digest email sent", "to", m.recipient, "message_id", aws.ToString(result.MessageId))
	return nil
}

func digestBody(d *domain.Digest) string {
	if d.Empty() {
		return fmt.Sprintf("No upcoming events between %s and %s.",
			d.From.Format(domain.DateLayout), d.To.Format(domain.DateLayout))
	}
	var b strings.Builder
	b.WriteString("Upcoming events in the next 14 days:\n\n")
	for _, e := range d.Events {
		fmt.Fprintf(&b, "- %s — %s", e.Name, e.Date.Format(domain.DateLayout))
		if e.EventTime != "" {
			fmt.Fprintf(&b, " %s", e.EventTime)
		}
		if e.Description != "" {
			fmt.Fprintf(&b, "\n  %s", e.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
