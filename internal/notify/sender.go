package notify

import (
	"context"
	"errors"

	"github.com/go-resty/resty/v2"

	"github.com/waserda/kasir/internal/apperr"
)

var ErrDisabled = errors.New("notifications disabled")

type message struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

// HTTPSender posts receipts to a WhatsApp blast endpoint.
type HTTPSender struct {
	client *resty.Client
	url    string
}

func NewHTTPSender(url string) *HTTPSender {
	return &HTTPSender{
		client: resty.New().SetHeader("Content-Type", "application/json"),
		url:    url,
	}
}

// Send succeeds only on a 2xx answer. Every failure is a *apperr.NotificationError.
func (s *HTTPSender) Send(ctx context.Context, number, text string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(message{Number: number, Message: text}).
		Post(s.url)
	if err != nil {
		return &apperr.NotificationError{Err: err}
	}

	if !resp.IsSuccess() {
		return &apperr.NotificationError{StatusCode: resp.StatusCode()}
	}

	return nil
}

// DisabledSender fails every delivery so receipts stay resendable once the channel is on.
type DisabledSender struct{}

func (DisabledSender) Send(context.Context, string, string) error {
	return &apperr.NotificationError{Err: ErrDisabled}
}
