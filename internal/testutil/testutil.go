package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"chatguard/internal/repository"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

type fakeEntry struct {
	value     string
	expiresAt time.Time
}

// FakeChallengeStore is an in-memory ChallengeStore with a manually
// advanced clock, for exercising expiry behavior without a real store.
type FakeChallengeStore struct {
	mu      sync.Mutex
	now     time.Time
	answers map[string]fakeEntry
	ignored map[string]time.Time
}

// NewFakeChallengeStore creates a fake store with the clock at start.
func NewFakeChallengeStore(start time.Time) *FakeChallengeStore {
	return &FakeChallengeStore{
		now:     start,
		answers: make(map[string]fakeEntry),
		ignored: make(map[string]time.Time),
	}
}

// Advance moves the fake clock forward.
func (f *FakeChallengeStore) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *FakeChallengeStore) SetAnswer(_ context.Context, chatID, userID int64, answer string, captchaTTL, ignoreTTL time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := pairKey(chatID, userID)
	f.answers[key] = fakeEntry{value: answer, expiresAt: f.now.Add(captchaTTL)}
	f.ignored[key] = f.now.Add(ignoreTTL)
	return nil
}

func (f *FakeChallengeStore) TakeAnswer(_ context.Context, chatID, userID int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := pairKey(chatID, userID)
	entry, ok := f.answers[key]
	if !ok || !f.now.Before(entry.expiresAt) {
		delete(f.answers, key)
		return "", repository.ErrNoChallenge
	}
	delete(f.answers, key)
	return entry.value, nil
}

func (f *FakeChallengeStore) IsIgnored(_ context.Context, chatID, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	deadline, ok := f.ignored[pairKey(chatID, userID)]
	return ok && f.now.Before(deadline), nil
}

func pairKey(chatID, userID int64) string {
	return fmt.Sprintf("%d:%d", chatID, userID)
}
