package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	alertQueueKey = "alert_jobs"
)

// Job is one queued SMS delivery. The dispatch pipeline enqueues it and
// moves on; delivery happens on the worker, detached from the event that
// triggered it.
type Job struct {
	ID          uuid.UUID `json:"id"`
	To          string    `json:"to"`
	Body        string    `json:"body"`
	SMSRecordID *int64    `json:"sms_record_id,omitempty"`
	QueuedAt    time.Time `json:"queued_at"`
}

// Publisher enqueues alert jobs for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, job Job) error
}

// RedisPublisher is a Publisher backed by a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the job onto the left of the queue list.
func (p *RedisPublisher) Publish(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal alert job: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert job to Redis: %w", err)
	}
	return nil
}
