package service

import (
	"errors"
	"sync"

	"chatguard/internal/domain"
)

var (
	// ErrNoDialogue means the chat has no settings dialogue in progress.
	ErrNoDialogue = errors.New("no dialogue in progress")
	// ErrWrongUser means someone other than the initiating admin interacted.
	ErrWrongUser = errors.New("dialogue belongs to another admin")
	// ErrStalePrompt means the interaction targets an outdated prompt message.
	ErrStalePrompt = errors.New("stale dialogue prompt")
)

// DialogueService tracks per-chat settings dialogues. At most one dialogue
// exists per chat; starting a new one replaces the previous state.
type DialogueService struct {
	mu     sync.Mutex
	states map[int64]domain.DialogueState
}

// NewDialogueService creates a new dialogue service
func NewDialogueService() *DialogueService {
	return &DialogueService{
		states: make(map[int64]domain.DialogueState),
	}
}

// Begin starts a dialogue at the setting-selection step.
func (s *DialogueService) Begin(chatID, adminID int64, promptMessageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[chatID] = domain.DialogueState{
		Step:            domain.StepSelectKind,
		AdminID:         adminID,
		PromptMessageID: promptMessageID,
	}
}

// State returns the current dialogue state for the chat.
func (s *DialogueService) State(chatID int64) (domain.DialogueState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[chatID]
	return state, ok
}

// Authorize checks that an interaction is allowed to advance the dialogue:
// a dialogue exists, it sits at the expected step, the prompt message is
// current and the actor is the initiating admin. Staleness is checked
// before the actor, so a press on an abandoned prompt reads as stale even
// for the right admin. State is never mutated on failure.
func (s *DialogueService) Authorize(chatID, userID int64, promptMessageID int, step domain.DialogueStep) (domain.DialogueState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[chatID]
	if !ok || state.Step != step {
		return domain.DialogueState{}, ErrNoDialogue
	}
	if promptMessageID != 0 && state.PromptMessageID != promptMessageID {
		return domain.DialogueState{}, ErrStalePrompt
	}
	if state.AdminID != userID {
		return domain.DialogueState{}, ErrWrongUser
	}
	return state, nil
}

// AwaitValue advances the dialogue to the value-selection step for a kind.
func (s *DialogueService) AwaitValue(chatID, adminID int64, promptMessageID int, kind domain.SettingKind) {
	s.await(chatID, adminID, promptMessageID, kind, domain.StepSelectValue)
}

// AwaitText advances the dialogue to the free-text input step for a kind.
// The dialogue stays at this step across rejected inputs, so the admin can
// retry without restarting.
func (s *DialogueService) AwaitText(chatID, adminID int64, promptMessageID int, kind domain.SettingKind) {
	s.await(chatID, adminID, promptMessageID, kind, domain.StepInputText)
}

func (s *DialogueService) await(chatID, adminID int64, promptMessageID int, kind domain.SettingKind, step domain.DialogueStep) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[chatID] = domain.DialogueState{
		Step:            step,
		AdminID:         adminID,
		PromptMessageID: promptMessageID,
		Kind:            kind,
	}
}

// Finish ends the dialogue for the chat.
func (s *DialogueService) Finish(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, chatID)
}

// Cancel aborts the dialogue if the caller is the initiating admin. The
// prior state is returned so the caller can clean up the prompt message.
func (s *DialogueService) Cancel(chatID, userID int64) (domain.DialogueState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[chatID]
	if !ok {
		return domain.DialogueState{}, ErrNoDialogue
	}
	if state.AdminID != userID {
		return domain.DialogueState{}, ErrWrongUser
	}
	delete(s.states, chatID)
	return state, nil
}
