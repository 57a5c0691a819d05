package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/redis/go-redis/v9"
)

// submissionKeyPrefix is the namespace prefix for all keys of the submission guard.
const submissionKeyPrefix = "submission"

const (
	// pendingValue marks a key whose transaction is being broadcast.
	pendingValue = "pending"

	// donePrefix prefixes the transaction id of a confirmed submission.
	donePrefix = "done:"
)

// submissionGuardKey constructs the Redis key that holds the state of a
// submission key. The format is:
//
//	"submission:guard:<key>"
func submissionGuardKey(key string) string {
	return fmt.Sprintf("%s:guard:%s", submissionKeyPrefix, key)
}

// releaseScript deletes a claim only while it is still pending, so that a late
// release can never erase a confirmed submission.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Claim implements the stream.SubmissionGuard interface.
//
// The claim is taken with SET NX and expires after the configured TTL. A key
// already claimed fails with stream.ErrSubmissionInProgress, or with a
// *stream.DuplicateSubmissionError once its transaction was confirmed.
func (c *client) Claim(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	redisKey := submissionGuardKey(key)

	claimed, err := c.conn.SetNX(ctx, redisKey, pendingValue, c.cfg.claimTTL).Result()
	if err != nil {
		return err
	}
	if claimed {
		return nil
	}

	val, err := c.conn.Get(ctx, redisKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// The previous claim expired in between; the key is held by
			// whoever claims it next.
			return fmt.Errorf("%w: %s", stream.ErrSubmissionInProgress, key)
		}
		return err
	}

	if txID, ok := strings.CutPrefix(val, donePrefix); ok {
		return &stream.DuplicateSubmissionError{Key: key, TxID: txID}
	}
	return fmt.Errorf("%w: %s", stream.ErrSubmissionInProgress, key)
}

// Complete implements the stream.SubmissionGuard interface. The confirmed
// transaction id is kept for the configured TTL.
func (c *client) Complete(ctx context.Context, key, txID string) error {
	if key == "" {
		return nil
	}
	return c.conn.Set(ctx, submissionGuardKey(key), donePrefix+txID, c.cfg.claimTTL).Err()
}

// Release implements the stream.SubmissionGuard interface.
func (c *client) Release(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return releaseScript.Run(ctx, c.conn, []string{submissionGuardKey(key)}, pendingValue).Err()
}

// Compile-time assertion to ensure client implements the SubmissionGuard interface.
var _ stream.SubmissionGuard = new(client)
