package ingest

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Event names emitted by the device gateway.
	EventFireDetected  = "fire_detected"
	EventSmokeDetected = "smoke_detected"

	dialRetryDelay  = 5 * time.Second
	dispatchTimeout = 30 * time.Second
)

// Event is one frame from the device gateway. Data carries the
// "{establishmentID}_{mac}" payload reported by the device.
type Event struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Listener consumes the device event feed over a websocket connection and
// hands fire events to the dispatcher.
type Listener struct {
	url        string
	dispatcher service.DispatchService
	logger     *logrus.Logger
}

func NewListener(url string, dispatcher service.DispatchService, logger *logrus.Logger) *Listener {
	return &Listener{
		url:        url,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start launches the consume loop in a goroutine. The connection is redialed
// with a delay after any failure until ctx is cancelled.
func (l *Listener) Start(ctx context.Context) {
	l.logger.WithField("url", l.url).Info("Starting device event listener...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				l.logger.Info("Stopping device event listener.")
				return
			default:
				if err := l.consume(ctx); err != nil && ctx.Err() == nil {
					l.logger.WithError(err).Warnf("Device event connection lost. Reconnecting in %v", dialRetryDelay)
					time.Sleep(dialRetryDelay)
				}
			}
		}
	}()
}

func (l *Listener) consume(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	l.logger.Info("Connected to device event gateway")

	// Announce ourselves as the API consumer of the feed.
	if err := conn.WriteJSON(Event{Event: "api"}); err != nil {
		return err
	}

	// Close the connection when the context ends so ReadMessage unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			l.logger.WithError(err).Warn("Dropping malformed device event frame")
			continue
		}

		l.handle(event)
	}
}

func (l *Listener) handle(event Event) {
	log := l.logger.WithFields(logrus.Fields{
		"component": "ingest",
		"event":     event.Event,
		"data":      event.Data,
	})

	establishmentID, mac, ok := parsePayload(event.Data)
	if !ok {
		log.Warn("Dropping device event with malformed payload")
		return
	}

	switch event.Event {
	case EventFireDetected:
		log.Info("Fire detected")
		// Dispatch on a detached context: the triggering event already
		// happened physically, so dispatch runs to completion even if this
		// connection drops mid-flight.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
			defer cancel()
			if _, err := l.dispatcher.DispatchFireEvent(ctx, establishmentID, mac); err != nil {
				log.WithError(err).Error("Fire event dispatch failed")
			}
		}()
	case EventSmokeDetected:
		// Extension point: no alert is wired for smoke yet.
		log.Warn("Smoke detected")
	default:
		log.Debug("Ignoring unknown device event")
	}
}

// parsePayload splits the "{establishmentID}_{mac}" device payload.
func parsePayload(data string) (int64, string, bool) {
	parts := strings.SplitN(data, "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return 0, "", false
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return id, parts[1], true
}
