package mailqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Menwuyelet/jobboard/internal/logger"
)

// Sender delivers one composed email. Implementations live in internal/mail.
type Sender interface {
	Send(job EmailJob) error
}

// Consumer reads email jobs from the stream through a consumer group and
// hands them to a Sender. A job is acknowledged only after a successful send,
// so delivery is at-least-once; a failed send stays pending and is retried on
// the next claim.
type Consumer struct {
	rdb      *redis.Client
	sender   Sender
	stream   string
	group    string
	consumer string
}

func NewConsumer(rdb *redis.Client, sender Sender, stream, group, consumer string) *Consumer {
	if stream == "" {
		stream = defaultStream
	}
	if group == "" {
		group = "mailworkers"
	}
	return &Consumer{rdb: rdb, sender: sender, stream: stream, group: group, consumer: consumer}
}

// EnsureGroup creates the consumer group if it does not exist yet.
func (c *Consumer) EnsureGroup(ctx context.Context) error {
	err := c.rdb.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create consumer group: %w", err)
	}
	logger.Info("consumer group ready", "stream", c.stream, "group", c.group)
	return nil
}

// Run blocks reading the stream until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.EnsureGroup(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.consumer,
			Streams:  []string{c.stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Error("xreadgroup failed", "error", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				c.handle(ctx, msg)
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg redis.XMessage) {
	raw, ok := msg.Values["data"].(string)
	if !ok {
		logger.Warn("malformed queue message, dropping", "msgID", msg.ID)
		_ = c.rdb.XAck(ctx, c.stream, c.group, msg.ID).Err()
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		logger.Warn("undecodable email job, dropping", "msgID", msg.ID, "error", err)
		_ = c.rdb.XAck(ctx, c.stream, c.group, msg.ID).Err()
		return
	}

	logger.ExternalServiceCall("mail", "Send", "jobID", job.ID, "to", job.To)
	err := c.sender.Send(job)
	logger.ExternalServiceResult("mail", "Send", err, "jobID", job.ID)
	if err != nil {
		// Leave unacked; the pending entry will be retried.
		return
	}

	if err := c.rdb.XAck(ctx, c.stream, c.group, msg.ID).Err(); err != nil {
		logger.Error("failed to ack email job", "msgID", msg.ID, "error", err)
	}
}
