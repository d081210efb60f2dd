package repository

import (
	"context"
	"errors"
	"time"

	"chatguard/internal/domain"
)

// ErrNoChallenge is returned when no pending answer exists for a pair:
// never issued, expired, or already consumed by a verification.
var ErrNoChallenge = errors.New("no pending challenge")

// ChallengeStore keeps time-limited challenge state: the expected answer
// per (chat, user) and the "ignored until" marker suppressing re-challenges.
type ChallengeStore interface {
	// SetAnswer stores the expected answer with the captcha TTL and records
	// the ignore horizon, both applied atomically. A pending answer for the
	// same pair is overwritten.
	SetAnswer(ctx context.Context, chatID, userID int64, answer string, captchaTTL, ignoreTTL time.Duration) error
	// TakeAnswer consumes the pending answer. ErrNoChallenge when absent.
	TakeAnswer(ctx context.Context, chatID, userID int64) (string, error)
	// IsIgnored reports whether the pair's ignore horizon is still ahead.
	IsIgnored(ctx context.Context, chatID, userID int64) (bool, error)
}

// SettingsRepository is the durable side of per-chat settings.
type SettingsRepository interface {
	LoadAll(ctx context.Context) (map[int64]domain.Settings, error)
	Upsert(ctx context.Context, chatID int64, settings domain.Settings) error
}
