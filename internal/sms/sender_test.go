package sms

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twclient "github.com/twilio/twilio-go/client"
)

func TestNewTwilioSender_BoundsProviderCalls(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	sender := NewTwilioSender("AC123", "secret", "+15550100", 3*time.Second, logger)

	base, ok := sender.client.Client.(*twclient.Client)
	require.True(t, ok, "expected the default Twilio HTTP client")
	require.NotNil(t, base.HTTPClient)
	assert.Equal(t, 3*time.Second, base.HTTPClient.Timeout)
}
