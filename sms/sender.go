package sms

import (
	"context"

	"github.com/sirupsen/logrus"

	"direct-chat-api/config/common"
)

// Sender delivers a one-time code to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, body string) error
}

// NewSender picks the Twilio gateway when credentials are configured and the
// log fallback otherwise, so development needs no SMS account.
func NewSender(cfg *common.Config, log *logrus.Logger) Sender {
	accountSID, authToken, fromNumber := cfg.GetTwilioConfig()
	if accountSID != "" && authToken != "" && fromNumber != "" {
		return NewTwilioSender(accountSID, authToken, fromNumber)
	}
	return &LogSender{Log: log}
}

// LogSender prints the message instead of sending it.
type LogSender struct {
	Log *logrus.Logger
}

func (s *LogSender) Send(ctx context.Context, phone, body string) error {
	s.Log.Infof("SMS to %s: %s", phone, body)
	return nil
}
