package sms

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

//go:generate mockgen -source=sender.go -destination=mocks/mock_sender.go -package=mocks

// ErrSendFailed - the provider rejected the message or was unreachable.
// Reported to the caller, never raised as a panic; callers decide whether
// the failure is fatal to the larger operation.
var ErrSendFailed = errors.New("sms: send failed")

// Sender delivers one SMS message.
type Sender interface {
	Send(to, body string) error
}

// TwilioSender sends messages through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	logger *logrus.Logger
}

// NewTwilioSender builds a sender with a bounded provider call; a Twilio
// request never outlives the given timeout.
func NewTwilioSender(accountSID, authToken, from string, timeout time.Duration, logger *logrus.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	client.Client.SetTimeout(timeout)
	return &TwilioSender{
		client: client,
		from:   from,
		logger: logger,
	}
}

func (s *TwilioSender) Send(to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.WithFields(logrus.Fields{
		"component": "sms",
		"to":        to,
		"sid":       sid,
	}).Info("SMS submitted to provider")
	return nil
}
