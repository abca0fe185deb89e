package alert

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fireduino/fireduino-api/internal/config"
	sms_mocks "github.com/fireduino/fireduino-api/internal/sms/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func newTestWorker(t *testing.T) (*Worker, *sms_mocks.MockSender) {
	ctrl := gomock.NewController(t)
	sender := sms_mocks.NewMockSender(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		SMSMaxRetries: 3,
		SMSBaseDelay:  time.Millisecond,
	}

	return NewWorker(nil, sender, logger, cfg), sender
}

func TestDeliver_FirstAttemptSucceeds(t *testing.T) {
	worker, sender := newTestWorker(t)

	sender.EXPECT().Send("+639171234567", "FIRE ALERT").Return(nil).Times(1)

	worker.deliver(Job{ID: uuid.New(), To: "+639171234567", Body: "FIRE ALERT"})
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	worker, sender := newTestWorker(t)

	gomock.InOrder(
		sender.EXPECT().Send("+639171234567", "FIRE ALERT").Return(errors.New("timeout")),
		sender.EXPECT().Send("+639171234567", "FIRE ALERT").Return(errors.New("timeout")),
		sender.EXPECT().Send("+639171234567", "FIRE ALERT").Return(nil),
	)

	worker.deliver(Job{ID: uuid.New(), To: "+639171234567", Body: "FIRE ALERT"})
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	worker, sender := newTestWorker(t)

	sender.EXPECT().
		Send("+639171234567", "FIRE ALERT").
		Return(errors.New("timeout")).
		Times(3)

	worker.deliver(Job{ID: uuid.New(), To: "+639171234567", Body: "FIRE ALERT"})
}
