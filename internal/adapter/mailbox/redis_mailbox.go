package mailbox

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"andicot_proforma/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// DefaultHandOffTTL bounds how long an untaken hand-off stays in Redis.
const DefaultHandOffTTL = 30 * time.Minute

var ErrEmptySessionID = errors.New("mailbox: empty session id")

const keyPrefix = "proforma:handoff:"

// RedisMailbox stores each slot under its own key so several API replicas
// share hand-offs. Take uses GETDEL, so a message is delivered at most once.
type RedisMailbox struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

var _ interfaces.IQuoteMailbox = (*RedisMailbox)(nil)

func NewRedisMailbox(rdb redis.UniversalClient, ttl time.Duration) *RedisMailbox {
	if ttl <= 0 {
		ttl = DefaultHandOffTTL
	}
	return &RedisMailbox{rdb: rdb, ttl: ttl}
}

func slotKey(sessionID string) string   { return keyPrefix + sessionID }
func signalKey(sessionID string) string { return keyPrefix + sessionID + ":signal" }

func (m *RedisMailbox) Publish(ctx context.Context, sessionID, message string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if err := m.rdb.Set(ctx, slotKey(sessionID), message, m.ttl).Err(); err != nil {
		return err
	}
	if err := m.rdb.Publish(ctx, signalKey(sessionID), "1").Err(); err != nil {
		// The slot is written; a consumer polling with Take still gets it.
		slog.Warn("[mailbox][redis] signal publish failed", "session_id", sessionID, "error", err)
	}
	return nil
}

func (m *RedisMailbox) TakeIfPresent(ctx context.Context, sessionID string) (string, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", false, nil
	}
	msg, err := m.rdb.GetDel(ctx, slotKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return msg, true, nil
}

func (m *RedisMailbox) Subscribe(ctx context.Context, sessionID string) (<-chan struct{}, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	sub := m.rdb.Subscribe(ctx, signalKey(sessionID))
	// Receive blocks until the subscription is confirmed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	msgs := sub.Channel()
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				signal(out)
			}
		}
	}()
	return out, nil
}
