package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	redigo "github.com/gomodule/redigo/redis"

	"chatguard/internal/repository"
)

const ignoreKey = "ignore"

// NewPool builds a redigo connection pool with optional AUTH and a
// borrow-time liveness check.
func NewPool(addr, password string) *redigo.Pool {
	return &redigo.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redigo.Conn, error) {
			c, err := redigo.Dial("tcp", addr)
			if err != nil {
				return nil, err
			}
			if password != "" {
				if _, err := c.Do("AUTH", password); err != nil {
					c.Close()
					return nil, err
				}
			}
			return c, nil
		},
		TestOnBorrow: func(c redigo.Conn, t time.Time) error {
			_, err := c.Do("PING")
			return err
		},
	}
}

// ChallengeStore implements repository.ChallengeStore on Redis: the pending
// answer is a string key with a TTL, the ignore set is a single sorted set
// scored with the "ignored until" Unix timestamp. Ignore entries are never
// evicted; expiry is decided lazily by comparing the score to the clock.
type ChallengeStore struct {
	pool *redigo.Pool
	now  func() time.Time
}

func NewChallengeStore(pool *redigo.Pool) *ChallengeStore {
	return &ChallengeStore{
		pool: pool,
		now:  time.Now,
	}
}

func answerKey(chatID, userID int64) string {
	return fmt.Sprintf("answer:%d:%d", chatID, userID)
}

func ignoreMember(chatID, userID int64) string {
	return fmt.Sprintf("%d:%d", chatID, userID)
}

// unixSeconds keeps fractional seconds so sub-second horizons still order
// correctly within the sorted set.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// SetAnswer writes the pending answer and the ignore entry in one MULTI/EXEC
// transaction so a crash cannot leave one without the other.
func (s *ChallengeStore) SetAnswer(ctx context.Context, chatID, userID int64, answer string, captchaTTL, ignoreTTL time.Duration) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	ignoredUntil := unixSeconds(s.now().Add(ignoreTTL))

	conn.Send("MULTI")
	conn.Send("SET", answerKey(chatID, userID), answer, "EX", int64(captchaTTL.Seconds()))
	conn.Send("ZADD", ignoreKey, ignoredUntil, ignoreMember(chatID, userID))
	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("store pending answer: %w", err)
	}
	return nil
}

// TakeAnswer reads and deletes the pending answer atomically, so a challenge
// resolves exactly once.
func (s *ChallengeStore) TakeAnswer(ctx context.Context, chatID, userID int64) (string, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return "", fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	key := answerKey(chatID, userID)
	conn.Send("MULTI")
	conn.Send("GET", key)
	conn.Send("DEL", key)
	replies, err := redigo.Values(conn.Do("EXEC"))
	if err != nil {
		return "", fmt.Errorf("take pending answer: %w", err)
	}

	answer, err := redigo.String(replies[0], nil)
	if errors.Is(err, redigo.ErrNil) {
		return "", repository.ErrNoChallenge
	}
	if err != nil {
		return "", fmt.Errorf("take pending answer: %w", err)
	}
	return answer, nil
}

func (s *ChallengeStore) IsIgnored(ctx context.Context, chatID, userID int64) (bool, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return false, fmt.Errorf("get redis connection: %w", err)
	}
	defer conn.Close()

	score, err := redigo.Float64(conn.Do("ZSCORE", ignoreKey, ignoreMember(chatID, userID)))
	if errors.Is(err, redigo.ErrNil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read ignore entry: %w", err)
	}
	return unixSeconds(s.now()) < score, nil
}
