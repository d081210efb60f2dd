package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"chatguard/internal/domain"
	"chatguard/internal/repository"
)

// ImageFinder resolves a query phrase to a representative image URL.
type ImageFinder interface {
	FindImage(ctx context.Context, phrase string) (string, error)
}

// VerifyResult is the outcome of checking a submitted token.
type VerifyResult int

const (
	// VerifyNoChallenge means nothing was pending for the pair: never
	// issued, expired, or already resolved.
	VerifyNoChallenge VerifyResult = iota
	VerifyCorrect
	VerifyIncorrect
)

// ChallengeService orchestrates issuing and verifying captcha challenges.
type ChallengeService struct {
	store  repository.ChallengeStore
	images ImageFinder
	logger *zap.Logger
}

// NewChallengeService creates a new challenge service
func NewChallengeService(store repository.ChallengeStore, images ImageFinder, logger *zap.Logger) *ChallengeService {
	return &ChallengeService{
		store:  store,
		images: images,
		logger: logger,
	}
}

// Issue samples a challenge, fetches the photo for its correct token and
// stores the expected answer together with the ignore horizon. An image
// lookup failure aborts the attempt; nothing is stored and no retry is made.
// Re-issuing before expiry overwrites the previous pending answer.
func (s *ChallengeService) Issue(ctx context.Context, chatID, userID int64, size int, captchaTTL, ignoreTTL time.Duration) (domain.Challenge, string, error) {
	challenge := domain.PickChallenge(size)

	imageURL, err := s.images.FindImage(ctx, challenge.QueryPhrase)
	if err != nil {
		return domain.Challenge{}, "", fmt.Errorf("find image for %q: %w", challenge.QueryPhrase, err)
	}

	if err := s.store.SetAnswer(ctx, chatID, userID, challenge.Answer(), captchaTTL, ignoreTTL); err != nil {
		return domain.Challenge{}, "", err
	}

	s.logger.Info("Challenge issued",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", userID),
		zap.String("phrase", challenge.QueryPhrase),
	)
	return challenge, imageURL, nil
}

// Verify resolves the pending challenge with the submitted token. The
// answer is consumed on first resolution, so a repeated press reports
// VerifyNoChallenge instead of re-running the success path.
func (s *ChallengeService) Verify(ctx context.Context, chatID, userID int64, token string) (VerifyResult, error) {
	answer, err := s.store.TakeAnswer(ctx, chatID, userID)
	if errors.Is(err, repository.ErrNoChallenge) {
		return VerifyNoChallenge, nil
	}
	if err != nil {
		return VerifyNoChallenge, err
	}

	if token == answer {
		return VerifyCorrect, nil
	}
	return VerifyIncorrect, nil
}

// IsIgnored reports whether the user recently failed or ignored a challenge
// in the chat. Store errors are logged and treated as not ignored, so a
// flaky store degrades to re-challenging rather than letting users through.
func (s *ChallengeService) IsIgnored(ctx context.Context, chatID, userID int64) bool {
	ignored, err := s.store.IsIgnored(ctx, chatID, userID)
	if err != nil {
		s.logger.Warn("Failed to read ignore entry",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int64("user_id", userID),
		)
		return false
	}
	return ignored
}
