package handler

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"chatguard/internal/domain"
	"chatguard/internal/platform"
	"chatguard/internal/service"
)

// handleCaptchaAnswer resolves a pressed emoji button against the pending
// challenge of the pressing user. A bystander has no pending challenge and
// gets a dismissive toast, which also covers expired and re-pressed
// buttons.
func (h *Handler) handleCaptchaAnswer(c tele.Context, token string) error {
	chatID := c.Chat().ID
	user := c.Sender()
	cfg := h.settings.Get(chatID)
	locale := cfg.Language

	result, err := h.challenges.Verify(context.Background(), chatID, user.ID, token)
	if err != nil {
		h.logger.Error("Failed to verify challenge answer",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int64("user_id", user.ID),
		)
		return c.Respond()
	}

	captchaMsg := platform.Message{ChatID: chatID, MessageID: c.Message().ID}
	tag := userTag(user)

	switch result {
	case service.VerifyCorrect:
		if err := c.Respond(&tele.CallbackResponse{Text: h.translator.T(locale, "query-correct")}); err != nil {
			h.logger.Warn("Failed to answer callback", zap.Error(err))
		}
		h.deleteNow(captchaMsg)

		if err := h.client.LiftRestrictions(chatID, user.ID); err != nil {
			h.logger.Error("Failed to lift restrictions",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.Int64("user_id", user.ID),
			)
			_, sendErr := c.Bot().Send(tele.ChatID(chatID), fmt.Sprintf("Couldn't restrict user: %v", err))
			return sendErr
		}

		welcome := h.translator.T(locale, "welcome", "{user_tag}", tag)
		if cfg.WelcomeTemplate != "" {
			welcome = strings.ReplaceAll(cfg.WelcomeTemplate, domain.UserTagPlaceholder, tag)
		}
		msg, err := h.client.SendMessage(chatID, welcome)
		if err != nil {
			return err
		}
		h.deleteLater(msg, cfg.MessageTTL)
		return nil

	case service.VerifyIncorrect:
		if err := c.Respond(&tele.CallbackResponse{Text: h.translator.T(locale, "query-wrong")}); err != nil {
			h.logger.Warn("Failed to answer callback", zap.Error(err))
		}
		h.deleteNow(captchaMsg)

		// The restriction stays; the ignore horizon keeps the user from
		// being re-challenged on an immediate rejoin.
		text := h.translator.T(locale, "captcha-incorrect-answer",
			"{user_tag}", tag,
			"{duration}", h.translator.Duration(locale, cfg.IgnoreTTL),
		)
		msg, err := h.client.SendMessage(chatID, text)
		if err != nil {
			return err
		}
		h.deleteLater(msg, cfg.MessageTTL)
		return nil

	default:
		return c.Respond(&tele.CallbackResponse{Text: h.translator.T(locale, "query-wrong-user")})
	}
}

// deleteNow deletes a message, tolerating it being gone already.
func (h *Handler) deleteNow(msg platform.Message) {
	if err := h.client.DeleteMessage(msg); err != nil && err != platform.ErrNotFound {
		h.logger.Warn("Failed to delete message",
			zap.Error(err),
			zap.Int64("chat_id", msg.ChatID),
			zap.Int("message_id", msg.MessageID),
		)
	}
}
