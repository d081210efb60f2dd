package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"chatguard/internal/domain"
	"chatguard/internal/platform"
)

// MockChallengeStore is a mock for ChallengeStore
type MockChallengeStore struct {
	mock.Mock
}

func (m *MockChallengeStore) SetAnswer(ctx context.Context, chatID, userID int64, answer string, captchaTTL, ignoreTTL time.Duration) error {
	args := m.Called(ctx, chatID, userID, answer, captchaTTL, ignoreTTL)
	return args.Error(0)
}

func (m *MockChallengeStore) TakeAnswer(ctx context.Context, chatID, userID int64) (string, error) {
	args := m.Called(ctx, chatID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockChallengeStore) IsIgnored(ctx context.Context, chatID, userID int64) (bool, error) {
	args := m.Called(ctx, chatID, userID)
	return args.Bool(0), args.Error(1)
}

// MockSettingsRepository is a mock for SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) LoadAll(ctx context.Context) (map[int64]domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, chatID int64, settings domain.Settings) error {
	args := m.Called(ctx, chatID, settings)
	return args.Error(0)
}

// MockImageFinder is a mock for ImageFinder
type MockImageFinder struct {
	mock.Mock
}

func (m *MockImageFinder) FindImage(ctx context.Context, phrase string) (string, error) {
	args := m.Called(ctx, phrase)
	return args.String(0), args.Error(1)
}

// MockClient is a mock for the platform Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Restrict(chatID, userID int64) error {
	args := m.Called(chatID, userID)
	return args.Error(0)
}

func (m *MockClient) LiftRestrictions(chatID, userID int64) error {
	args := m.Called(chatID, userID)
	return args.Error(0)
}

func (m *MockClient) SendMessage(chatID int64, text string) (platform.Message, error) {
	args := m.Called(chatID, text)
	return args.Get(0).(platform.Message), args.Error(1)
}

func (m *MockClient) SendPhoto(chatID int64, imageURL, caption string, keyboard [][]platform.Button) (platform.Message, error) {
	args := m.Called(chatID, imageURL, caption, keyboard)
	return args.Get(0).(platform.Message), args.Error(1)
}

func (m *MockClient) DeleteMessage(msg platform.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockClient) BanChannel(chatID, channelID int64) error {
	args := m.Called(chatID, channelID)
	return args.Error(0)
}

func (m *MockClient) IsAdmin(chatID, userID int64) (bool, error) {
	args := m.Called(chatID, userID)
	return args.Bool(0), args.Error(1)
}
