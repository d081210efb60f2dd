package handler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"chatguard/internal/domain"
	"chatguard/internal/l10n"
	"chatguard/internal/platform"
	"chatguard/internal/service"
)

// handleSettings starts the settings dialogue. Admin access is enforced by
// middleware; a repeated /settings supersedes the previous dialogue.
func (h *Handler) handleSettings(c tele.Context) error {
	chatID := c.Chat().ID
	locale := h.locale(chatID)

	keyboard := [][]platform.Button{
		{
			{Text: "Language", Data: kindPrefix + string(domain.SettingLanguage)},
			{Text: "Ban channels", Data: kindPrefix + string(domain.SettingChannelPolicy)},
		},
		{
			{Text: "Welcome message", Data: kindPrefix + string(domain.SettingWelcome)},
			{Text: "Timers", Data: kindPrefix + string(domain.SettingTimers)},
		},
	}

	msg, err := h.bot.Reply(c.Message(), h.translator.T(locale, "settings-select-kind"), platform.InlineKeyboard(keyboard))
	if err != nil {
		return err
	}

	h.dialogues.Begin(chatID, c.Sender().ID, msg.ID)
	return nil
}

// handleCancel aborts the dialogue and cleans up its prompt message.
func (h *Handler) handleCancel(c tele.Context) error {
	chatID := c.Chat().ID
	locale := h.locale(chatID)

	state, err := h.dialogues.Cancel(chatID, c.Sender().ID)
	if err != nil {
		return nil
	}

	h.deleteNow(platform.Message{ChatID: chatID, MessageID: state.PromptMessageID})
	msg, err := h.client.SendMessage(chatID, h.translator.T(locale, "settings-cancel"))
	if err != nil {
		return err
	}
	h.deleteLater(msg, h.settings.Get(chatID).MessageTTL)
	return nil
}

// handleKindSelected advances the dialogue from the kind menu to the
// per-kind prompt.
func (h *Handler) handleKindSelected(c tele.Context, kind string) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	locale := h.locale(chatID)
	cfg := h.settings.Get(chatID)

	_, err := h.dialogues.Authorize(chatID, userID, c.Message().ID, domain.StepSelectKind)
	if resp := h.rejectionToast(locale, err); resp != nil {
		return c.Respond(resp)
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to answer callback", zap.Error(err))
	}
	h.deleteNow(platform.Message{ChatID: chatID, MessageID: c.Message().ID})

	switch domain.SettingKind(kind) {
	case domain.SettingLanguage:
		text := h.translator.T(locale, "settings-select-language", "{language}", cfg.Language)
		if cfg.Language == "" {
			text = h.translator.T(locale, "settings-select-language-default")
		}
		keyboard := [][]platform.Button{{
			{Text: "🇬🇧", Data: valuePrefix + "en"},
			{Text: "🇷🇺", Data: valuePrefix + "ru"},
		}}
		msg, err := h.bot.Send(tele.ChatID(chatID), text, platform.InlineKeyboard(keyboard))
		if err != nil {
			return err
		}
		h.dialogues.AwaitValue(chatID, userID, msg.ID, domain.SettingLanguage)

	case domain.SettingChannelPolicy:
		var text string
		switch cfg.ChannelPostPolicy.Mode {
		case domain.PolicyBanAll:
			text = h.translator.T(locale, "settings-select-ban-channels-all")
		case domain.PolicyBanAllExceptLinked:
			text = h.translator.T(locale, "settings-select-ban-channels-linked",
				"{channel_id}", strconv.FormatInt(cfg.ChannelPostPolicy.LinkedChannelID, 10))
		default:
			text = h.translator.T(locale, "settings-select-ban-channels-none")
		}
		keyboard := [][]platform.Button{{
			{Text: "Yes", Data: valuePrefix + "true"},
			{Text: "No", Data: valuePrefix + "false"},
		}}
		msg, err := h.bot.Send(tele.ChatID(chatID), text, platform.InlineKeyboard(keyboard))
		if err != nil {
			return err
		}
		h.dialogues.AwaitValue(chatID, userID, msg.ID, domain.SettingChannelPolicy)

	case domain.SettingWelcome:
		msg, err := h.bot.Send(tele.ChatID(chatID),
			h.translator.T(locale, "settings-input-welcome-message", "{user_tag}", domain.UserTagPlaceholder),
			tele.NoPreview)
		if err != nil {
			return err
		}
		h.dialogues.AwaitText(chatID, userID, msg.ID, domain.SettingWelcome)

	case domain.SettingTimers:
		msg, err := h.bot.Send(tele.ChatID(chatID), h.translator.T(locale, "settings-input-timers"))
		if err != nil {
			return err
		}
		h.dialogues.AwaitText(chatID, userID, msg.ID, domain.SettingTimers)

	default:
		_, err := h.bot.Send(tele.ChatID(chatID), fmt.Sprintf("Couldn't parse callback query data: unknown setting %q", kind))
		return err
	}
	return nil
}

// handleValueSelected applies a button-chosen value for the awaited kind.
func (h *Handler) handleValueSelected(c tele.Context, value string) error {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	locale := h.locale(chatID)
	cfg := h.settings.Get(chatID)

	state, err := h.dialogues.Authorize(chatID, userID, c.Message().ID, domain.StepSelectValue)
	if resp := h.rejectionToast(locale, err); resp != nil {
		return c.Respond(resp)
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to answer callback", zap.Error(err))
	}

	ctx := context.Background()
	var confirmation string

	switch state.Kind {
	case domain.SettingLanguage:
		if !slices.Contains(l10n.Locales(), value) {
			_, err := h.bot.Send(tele.ChatID(chatID), fmt.Sprintf("Couldn't parse Language value: %q", value))
			return err
		}
		cfg.Language = value
		if err := h.settings.Set(ctx, chatID, cfg); err != nil {
			return err
		}
		confirmation = h.translator.T(value, "settings-language-set", "{language}", value)

	case domain.SettingChannelPolicy:
		switch value {
		case "true":
			policy := domain.ChannelPostPolicy{Mode: domain.PolicyBanAll}
			// The linked channel keeps posting rights: its posts are
			// mirrored into the discussion group by Telegram itself.
			if chat, err := h.bot.ChatByID(chatID); err == nil && chat.LinkedChatID != 0 {
				policy = domain.ChannelPostPolicy{
					Mode:            domain.PolicyBanAllExceptLinked,
					LinkedChannelID: chat.LinkedChatID,
				}
				confirmation = h.translator.T(locale, "settings-ban-channels-linked-set",
					"{channel_id}", strconv.FormatInt(chat.LinkedChatID, 10))
			} else {
				confirmation = h.translator.T(locale, "settings-ban-channels-set")
			}
			cfg.ChannelPostPolicy = policy
		case "false":
			cfg.ChannelPostPolicy = domain.ChannelPostPolicy{Mode: domain.PolicyNone}
			confirmation = h.translator.T(locale, "settings-ban-channels-none-set")
		default:
			_, err := h.bot.Send(tele.ChatID(chatID), fmt.Sprintf("Couldn't parse BanChannels value: %q", value))
			return err
		}
		if err := h.settings.Set(ctx, chatID, cfg); err != nil {
			return err
		}

	default:
		return nil
	}

	h.deleteNow(platform.Message{ChatID: chatID, MessageID: state.PromptMessageID})
	msg, err := h.client.SendMessage(chatID, confirmation)
	if err != nil {
		return err
	}
	h.deleteLater(msg, cfg.MessageTTL)
	h.dialogues.Finish(chatID)
	return nil
}

// handleDialogueText consumes a text message when the dialogue awaits one.
// Returns false when no dialogue claimed the message.
func (h *Handler) handleDialogueText(c tele.Context) (bool, error) {
	chatID := c.Chat().ID
	userID := c.Sender().ID
	locale := h.locale(chatID)
	cfg := h.settings.Get(chatID)

	state, err := h.dialogues.Authorize(chatID, userID, 0, domain.StepInputText)
	if errors.Is(err, service.ErrNoDialogue) {
		return false, nil
	}
	if err != nil {
		// Someone else's message during the input step is ordinary chatter.
		return false, nil
	}

	text := c.Text()
	if text == "" {
		return true, c.Send(h.translator.T(locale, "settings-text-required"))
	}

	var confirmation string
	switch state.Kind {
	case domain.SettingWelcome:
		if err := domain.ValidateWelcomeTemplate(text); err != nil {
			// Dialogue stays at the input step so the admin can retry.
			return true, c.Send(fmt.Sprintf("Couldn't parse WelcomeMessage value: %v", err))
		}
		cfg.WelcomeTemplate = text
		confirmation = h.translator.T(locale, "settings-welcome-message-set")

	case domain.SettingTimers:
		updated, err := cfg.ApplyRaw(text)
		if err != nil {
			return true, c.Send(fmt.Sprintf("Couldn't parse setting value: %v", err))
		}
		cfg = updated
		confirmation = h.translator.T(locale, "settings-timers-set", "{setting}", text)

	default:
		return false, nil
	}

	if err := h.settings.Set(context.Background(), chatID, cfg); err != nil {
		return true, err
	}

	h.deleteNow(platform.Message{ChatID: chatID, MessageID: state.PromptMessageID})
	msg, err := h.client.SendMessage(chatID, confirmation)
	if err != nil {
		return true, err
	}
	h.deleteLater(msg, cfg.MessageTTL)
	h.dialogues.Finish(chatID)
	return true, nil
}

// rejectionToast maps dialogue authorization errors to callback toasts.
// Nil means the interaction is authorized.
func (h *Handler) rejectionToast(locale string, err error) *tele.CallbackResponse {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrWrongUser):
		return &tele.CallbackResponse{Text: h.translator.T(locale, "query-wrong-user")}
	default:
		return &tele.CallbackResponse{Text: h.translator.T(locale, "settings-message-outdated")}
	}
}
