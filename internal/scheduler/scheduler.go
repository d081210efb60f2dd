package scheduler

import (
	"time"

	"go.uber.org/zap"
)

// Scheduler runs delayed one-shot actions on detached goroutines. Actions
// are fire-and-forget: failures are logged, never propagated, and there is
// no cancellation.
type Scheduler struct {
	logger *zap.Logger
}

// New creates a new scheduler
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// After runs fn once after the delay.
func (s *Scheduler) After(d time.Duration, name string, fn func() error) {
	go func() {
		time.Sleep(d)
		if err := fn(); err != nil {
			s.logger.Warn("Delayed action failed",
				zap.Error(err),
				zap.String("action", name),
			)
		}
	}()
}

// ExpireChallenge schedules the cleanup of an unanswered challenge. After
// captchaTTL the challenge message is deleted; the expiry notice is sent
// only when that delete succeeded, so a challenge already cleaned up by a
// verification never produces a stale notice. The notice itself is deleted
// after messageTTL.
func (s *Scheduler) ExpireChallenge(captchaTTL time.Duration, deleteChallenge func() error, sendNotice func() (deleteNotice func() error, err error), messageTTL time.Duration) {
	s.After(captchaTTL, "expire challenge", func() error {
		if err := deleteChallenge(); err != nil {
			return err
		}
		deleteNotice, err := sendNotice()
		if err != nil {
			return err
		}
		s.After(messageTTL, "delete expiry notice", deleteNotice)
		return nil
	})
}
