package alert

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fireduino/fireduino-api/internal/config"
	"github.com/fireduino/fireduino-api/internal/sms"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker drains the alert queue and delivers each job through the SMS
// sender with bounded retries.
type Worker struct {
	redisClient *redis.Client
	sender      sms.Sender
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewWorker(redisClient *redis.Client, sender sms.Sender, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		sender:      sender,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start launches the queue-draining goroutine. It runs until ctx is
// cancelled; jobs already popped are delivered or retried to completion
// rather than silently dropped.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert worker.")
				return
			default:
				// BRPop with 0 blocks until a job arrives.
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop alert job from Redis")
					time.Sleep(w.cfg.SMSBaseDelay)
					continue
				}

				// result[0] is the key, result[1] the payload
				payload := result[1]
				var job Job
				if err := json.Unmarshal([]byte(payload), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert job from Redis")
					continue
				}

				w.deliver(job)
			}
		}
	}()
}

func (w *Worker) deliver(job Job) {
	log := w.logger.WithFields(logrus.Fields{
		"job_id": job.ID,
		"to":     job.To,
	})
	log.Debug("Delivering alert job...")

	maxRetries := w.cfg.SMSMaxRetries
	delay := w.cfg.SMSBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.sender.Send(job.To, job.Body)
		if err == nil {
			log.Info("Alert SMS delivered.")
			return
		}

		log.WithError(err).Warnf("Failed to send alert SMS. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		time.Sleep(delay)
		delay *= 2
	}

	log.Errorf("Failed to deliver alert SMS after %d retries.", maxRetries)
}
