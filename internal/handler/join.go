package handler

import (
	"context"
	"fmt"
	"html"
	"sync"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"chatguard/internal/domain"
	"chatguard/internal/platform"
)

// handleUserJoined restricts and challenges every new member.
func (h *Handler) handleUserJoined(c tele.Context) error {
	msg := c.Message()
	chatID := c.Chat().ID
	cfg := h.settings.Get(chatID)
	locale := cfg.Language

	members := msg.UsersJoined
	if len(members) == 0 && msg.UserJoined != nil {
		members = []tele.User{*msg.UserJoined}
	}

	if cfg.DeleteJoinMessages {
		h.deleteNow(platform.Message{ChatID: chatID, MessageID: msg.ID})
	}

	var humans []tele.User
	for _, member := range members {
		if !member.IsBot {
			humans = append(humans, member)
			continue
		}
		if member.ID == h.bot.Me.ID {
			if _, err := c.Bot().Send(tele.ChatID(chatID), h.translator.T(locale, "make-me-admin")); err != nil {
				return err
			}
		}
		h.logger.Info("New member is a bot, skipping captcha", zap.String("username", member.Username))
	}

	// Restrict new members as soon as possible, all at once.
	restrictErrs := make([]error, len(humans))
	var wg sync.WaitGroup
	for i := range humans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			restrictErrs[i] = h.client.Restrict(chatID, humans[i].ID)
		}(i)
	}
	wg.Wait()

	for i, err := range restrictErrs {
		if err == nil {
			continue
		}
		h.logger.Error("Failed to restrict user",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int64("user_id", humans[i].ID),
		)
		// Operators should see this: it usually means missing rights.
		if _, sendErr := c.Bot().Send(tele.ChatID(chatID), fmt.Sprintf("Couldn't restrict user: %v", err)); sendErr != nil {
			return sendErr
		}
		break
	}

	ctx := context.Background()
	for i, user := range humans {
		if restrictErrs[i] != nil {
			continue
		}
		if h.challenges.IsIgnored(ctx, chatID, user.ID) {
			h.logger.Info("Ignoring user", zap.Int64("chat_id", chatID), zap.Int64("user_id", user.ID))
			continue
		}
		if err := h.issueChallenge(ctx, chatID, user, cfg); err != nil {
			h.logger.Error("Failed to issue challenge",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.Int64("user_id", user.ID),
			)
		}
	}
	return nil
}

func (h *Handler) issueChallenge(ctx context.Context, chatID int64, user tele.User, cfg domain.Settings) error {
	locale := cfg.Language
	tag := userTag(&user)

	challenge, imageURL, err := h.challenges.Issue(ctx, chatID, user.ID, h.challengeSize, cfg.CaptchaTTL, cfg.IgnoreTTL)
	if err != nil {
		return err
	}

	caption := h.translator.T(locale, "captcha-caption",
		"{user_tag}", tag,
		"{duration}", h.translator.Duration(locale, cfg.CaptchaTTL),
	)
	photoMsg, err := h.client.SendPhoto(chatID, imageURL, caption, emojiKeyboard(challenge.Tokens, h.keyboardColumns))
	if err != nil {
		return err
	}

	timeOver := h.translator.T(locale, "captcha-time-over",
		"{user_tag}", tag,
		"{duration}", h.translator.Duration(locale, cfg.IgnoreTTL),
	)
	h.scheduler.ExpireChallenge(cfg.CaptchaTTL,
		func() error { return h.client.DeleteMessage(photoMsg) },
		func() (func() error, error) {
			notice, err := h.client.SendMessage(chatID, timeOver)
			if err != nil {
				return nil, err
			}
			return func() error { return h.client.DeleteMessage(notice) }, nil
		},
		cfg.MessageTTL,
	)
	return nil
}

// emojiKeyboard lays the challenge tokens out as callback buttons, the
// token itself being the callback data.
func emojiKeyboard(tokens []string, columns int) [][]platform.Button {
	var rows [][]platform.Button
	for i := 0; i < len(tokens); i += columns {
		end := i + columns
		if end > len(tokens) {
			end = len(tokens)
		}
		row := make([]platform.Button, 0, columns)
		for _, token := range tokens[i:end] {
			row = append(row, platform.Button{Text: token, Data: token})
		}
		rows = append(rows, row)
	}
	return rows
}

// userTag renders a user mention: @username when present, an HTML
// tg://user link otherwise.
func userTag(user *tele.User) string {
	if user.Username != "" {
		return "@" + user.Username
	}
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, user.ID, html.EscapeString(name))
}
