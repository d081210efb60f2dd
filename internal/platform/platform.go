package platform

import "errors"

// ErrNotFound means the target message no longer exists, usually because
// another code path already deleted it.
var ErrNotFound = errors.New("message not found")

// Message identifies a sent message for later deletion.
type Message struct {
	ChatID    int64
	MessageID int
}

// Button is one inline keyboard button carrying callback data.
type Button struct {
	Text string
	Data string
}

// Client is the messaging surface used by handlers and scheduled actions.
// Keeping it an interface lets tests run against a recorder instead of a
// live bot.
type Client interface {
	// Restrict mutes the user in the chat indefinitely.
	Restrict(chatID, userID int64) error
	// LiftRestrictions restores the default member permissions.
	LiftRestrictions(chatID, userID int64) error
	SendMessage(chatID int64, text string) (Message, error)
	SendPhoto(chatID int64, imageURL, caption string, keyboard [][]Button) (Message, error)
	// DeleteMessage returns ErrNotFound when the message is already gone.
	DeleteMessage(msg Message) error
	// BanChannel forbids the channel from posting in the chat.
	BanChannel(chatID, channelID int64) error
	IsAdmin(chatID, userID int64) (bool, error)
}
