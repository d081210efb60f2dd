package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chatguard/internal/domain"
)

func TestDialogueService_Authorize(t *testing.T) {
	const (
		chatID   = int64(-100500)
		adminID  = int64(42)
		promptID = 7
	)

	tests := []struct {
		name          string
		setup         func(s *DialogueService)
		userID        int64
		promptID      int
		step          domain.DialogueStep
		expectedError error
	}{
		{
			name: "matching admin and prompt",
			setup: func(s *DialogueService) {
				s.Begin(chatID, adminID, promptID)
			},
			userID:   adminID,
			promptID: promptID,
			step:     domain.StepSelectKind,
		},
		{
			name:          "no dialogue in progress",
			setup:         func(s *DialogueService) {},
			userID:        adminID,
			promptID:      promptID,
			step:          domain.StepSelectKind,
			expectedError: ErrNoDialogue,
		},
		{
			name: "wrong step",
			setup: func(s *DialogueService) {
				s.Begin(chatID, adminID, promptID)
			},
			userID:        adminID,
			promptID:      promptID,
			step:          domain.StepSelectValue,
			expectedError: ErrNoDialogue,
		},
		{
			name: "stale prompt message",
			setup: func(s *DialogueService) {
				s.Begin(chatID, adminID, promptID)
				s.Begin(chatID, adminID, promptID+1)
			},
			userID:        adminID,
			promptID:      promptID,
			step:          domain.StepSelectKind,
			expectedError: ErrStalePrompt,
		},
		{
			name: "another user",
			setup: func(s *DialogueService) {
				s.Begin(chatID, adminID, promptID)
			},
			userID:        adminID + 1,
			promptID:      promptID,
			step:          domain.StepSelectKind,
			expectedError: ErrWrongUser,
		},
		{
			name: "stale prompt wins over wrong user",
			setup: func(s *DialogueService) {
				s.Begin(chatID, adminID, promptID)
				s.Begin(chatID, adminID, promptID+1)
			},
			userID:        adminID + 1,
			promptID:      promptID,
			step:          domain.StepSelectKind,
			expectedError: ErrStalePrompt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDialogueService()
			tt.setup(svc)

			_, err := svc.Authorize(chatID, tt.userID, tt.promptID, tt.step)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDialogueService_Transitions(t *testing.T) {
	svc := NewDialogueService()

	svc.Begin(-1, 42, 7)

	svc.AwaitValue(-1, 42, 8, domain.SettingLanguage)
	state, ok := svc.State(-1)
	assert.True(t, ok)
	assert.Equal(t, domain.StepSelectValue, state.Step)
	assert.Equal(t, domain.SettingLanguage, state.Kind)
	assert.Equal(t, 8, state.PromptMessageID)

	svc.AwaitText(-1, 42, 9, domain.SettingWelcome)
	state, ok = svc.State(-1)
	assert.True(t, ok)
	assert.Equal(t, domain.StepInputText, state.Step)
	assert.Equal(t, domain.SettingWelcome, state.Kind)

	// Rejected input leaves the dialogue at the text step for a retry.
	_, err := svc.Authorize(-1, 42, 0, domain.StepInputText)
	assert.NoError(t, err)

	svc.Finish(-1)
	_, ok = svc.State(-1)
	assert.False(t, ok)
}

func TestDialogueService_Cancel(t *testing.T) {
	svc := NewDialogueService()
	svc.Begin(-1, 42, 7)

	_, err := svc.Cancel(-1, 43)
	assert.ErrorIs(t, err, ErrWrongUser)

	state, err := svc.Cancel(-1, 42)
	assert.NoError(t, err)
	assert.Equal(t, 7, state.PromptMessageID)

	_, err = svc.Cancel(-1, 42)
	assert.ErrorIs(t, err, ErrNoDialogue)
}

func TestDialogueService_IndependentChats(t *testing.T) {
	svc := NewDialogueService()
	svc.Begin(-1, 42, 7)
	svc.Begin(-2, 99, 3)

	svc.Finish(-1)

	state, ok := svc.State(-2)
	assert.True(t, ok)
	assert.Equal(t, int64(99), state.AdminID)
}
