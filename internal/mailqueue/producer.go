package mailqueue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Menwuyelet/jobboard/internal/logger"
)

const defaultStream = "jobboard:mail:queue"

// maxStreamLen bounds the stream so a dead worker cannot grow it without limit.
const maxStreamLen = 100000

// Producer publishes email jobs to the Redis stream. It is used by the API
// process after a workflow transaction has committed.
type Producer struct {
	rdb    *redis.Client
	stream string
}

func NewProducer(rdb *redis.Client, stream string) *Producer {
	if stream == "" {
		stream = defaultStream
	}
	return &Producer{rdb: rdb, stream: stream}
}

// Enqueue appends one email job to the stream. Errors are returned so the
// caller can log them, but the triggering transaction has already committed
// and is never rolled back because of a queue failure.
func (p *Producer) Enqueue(ctx context.Context, job EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	logger.ExternalServiceCall("redis", "XADD", "stream", p.stream, "jobID", job.ID)
	msgID, err := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: maxStreamLen,
		Approx: true,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	logger.ExternalServiceResult("redis", "XADD", err, "msgID", msgID)
	if err != nil {
		return fmt.Errorf("xadd failed: %w", err)
	}
	return nil
}
