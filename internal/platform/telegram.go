package platform

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// Telebot adapts a telebot bot to the Client interface.
type Telebot struct {
	bot *tele.Bot
}

// NewTelebot creates a new telebot adapter
func NewTelebot(bot *tele.Bot) *Telebot {
	return &Telebot{bot: bot}
}

func (t *Telebot) Restrict(chatID, userID int64) error {
	member := &tele.ChatMember{
		User:   &tele.User{ID: userID},
		Rights: tele.NoRights(),
	}
	return t.bot.Restrict(&tele.Chat{ID: chatID}, member)
}

func (t *Telebot) LiftRestrictions(chatID, userID int64) error {
	member := &tele.ChatMember{
		User:   &tele.User{ID: userID},
		Rights: tele.NoRestrictions(),
	}
	return t.bot.Restrict(&tele.Chat{ID: chatID}, member)
}

func (t *Telebot) SendMessage(chatID int64, text string) (Message, error) {
	msg, err := t.bot.Send(tele.ChatID(chatID), text, tele.ModeHTML)
	if err != nil {
		return Message{}, err
	}
	return Message{ChatID: chatID, MessageID: msg.ID}, nil
}

func (t *Telebot) SendPhoto(chatID int64, imageURL, caption string, keyboard [][]Button) (Message, error) {
	photo := &tele.Photo{
		File:    tele.FromURL(imageURL),
		Caption: caption,
	}

	msg, err := t.bot.Send(tele.ChatID(chatID), photo, InlineKeyboard(keyboard), tele.ModeHTML)
	if err != nil {
		return Message{}, err
	}
	return Message{ChatID: chatID, MessageID: msg.ID}, nil
}

func (t *Telebot) DeleteMessage(msg Message) error {
	stored := tele.StoredMessage{
		MessageID: strconv.Itoa(msg.MessageID),
		ChatID:    msg.ChatID,
	}
	if err := t.bot.Delete(stored); err != nil {
		if strings.Contains(err.Error(), "message to delete not found") {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (t *Telebot) BanChannel(chatID, channelID int64) error {
	params := map[string]interface{}{
		"chat_id":        chatID,
		"sender_chat_id": channelID,
	}
	_, err := t.bot.Raw("banChatSenderChat", params)
	return err
}

func (t *Telebot) IsAdmin(chatID, userID int64) (bool, error) {
	member, err := t.bot.ChatMemberOf(&tele.Chat{ID: chatID}, &tele.User{ID: userID})
	if err != nil {
		return false, err
	}
	return member.Role == tele.Creator || member.Role == tele.Administrator, nil
}

// InlineKeyboard builds a telebot inline markup from button rows.
func InlineKeyboard(keyboard [][]Button) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make(tele.Row, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, markup.Data(b.Text, b.Data))
		}
		rows = append(rows, buttons)
	}
	markup.Inline(rows...)
	return markup
}
