package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"chatguard/internal/domain"
	"chatguard/internal/repository"
)

// SettingsService mirrors per-chat settings in memory. Reads never touch
// the durable store; writes go through it first (write-through), so the
// mirror only ever lags behind durable state, never ahead of it.
type SettingsService struct {
	repo   repository.SettingsRepository
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[int64]domain.Settings
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		repo:   repo,
		logger: logger,
		cache:  make(map[int64]domain.Settings),
	}
}

// Preload builds the mirror from the durable store. Must succeed before the
// service is used; a failure here is fatal for the process.
func (s *SettingsService) Preload(ctx context.Context) error {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = all
	s.mu.Unlock()

	s.logger.Info("Chat settings preloaded", zap.Int("chats", len(all)))
	return nil
}

// Get returns the chat's settings, or the defaults for an unconfigured chat.
func (s *SettingsService) Get(chatID int64) domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if settings, ok := s.cache[chatID]; ok {
		return settings
	}
	return domain.DefaultSettings()
}

// Set commits new settings: durable upsert first, mirror update second.
// On upsert failure the mirror is left untouched and the error propagates.
func (s *SettingsService) Set(ctx context.Context, chatID int64, settings domain.Settings) error {
	if err := s.repo.Upsert(ctx, chatID, settings); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[chatID] = settings
	s.mu.Unlock()

	s.logger.Info("Chat settings updated", zap.Int64("chat_id", chatID))
	return nil
}

// Language is a shortcut for the chat's configured locale.
func (s *SettingsService) Language(chatID int64) string {
	return s.Get(chatID).Language
}
