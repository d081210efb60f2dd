package domain

// SettingKind identifies the setting a dialogue is editing.
type SettingKind string

const (
	SettingLanguage      SettingKind = "language"
	SettingChannelPolicy SettingKind = "channels"
	SettingWelcome       SettingKind = "welcome"
	SettingTimers        SettingKind = "timers"
)

// DialogueStep is the position of a chat's settings dialogue.
type DialogueStep int

const (
	StepIdle DialogueStep = iota
	// StepSelectKind waits for the admin to pick which setting to edit.
	StepSelectKind
	// StepSelectValue waits for a button press choosing an enumerable value.
	StepSelectValue
	// StepInputText waits for a free-form text value.
	StepInputText
)

// DialogueState tracks one chat's settings dialogue. AdminID is the only
// user whose input advances the dialogue, PromptMessageID the only message
// whose buttons are honored.
type DialogueState struct {
	Step            DialogueStep
	AdminID         int64
	PromptMessageID int
	Kind            SettingKind
}
