package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

var ErrMissingAPIKey = errors.New("resend API key is required")

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ResendSender delivers HTML mail through the Resend transactional API.
type ResendSender struct {
	client *resend.Client
	apiKey string
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		apiKey: apiKey,
		from:   from,
	}
}

// Send returns the upstream message id.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	if s.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}

	return sent.Id, nil
}
