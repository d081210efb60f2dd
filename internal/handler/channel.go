package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"chatguard/internal/platform"
	"chatguard/internal/service"
)

// handleText routes plain messages: channel-identity posts go through
// moderation, then the settings dialogue may claim the text.
func (h *Handler) handleText(c tele.Context) error {
	if h.moderateChannelPost(c) {
		return nil
	}
	_, err := h.handleDialogueText(c)
	return err
}

// handleMedia exists so channel posts with media still reach moderation.
func (h *Handler) handleMedia(c tele.Context) error {
	h.moderateChannelPost(c)
	return nil
}

// moderateChannelPost deletes a post sent on behalf of a channel when the
// chat policy rejects it and bans the channel best-effort. Reports whether
// the message was a channel post.
func (h *Handler) moderateChannelPost(c tele.Context) bool {
	msg := c.Message()
	if msg == nil || msg.SenderChat == nil || msg.SenderChat.Type != tele.ChatChannel {
		return false
	}

	chatID := c.Chat().ID
	channelID := msg.SenderChat.ID
	policy := h.settings.Get(chatID).ChannelPostPolicy

	if service.ChannelPostAllowed(policy, channelID) {
		return true
	}

	// Ban and delete are independent: a failed ban must not keep the post
	// alive, the post will still be gone.
	if err := h.client.BanChannel(chatID, channelID); err != nil {
		h.logger.Warn("Failed to ban channel",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int64("channel_id", channelID),
		)
	}
	h.deleteNow(platform.Message{ChatID: chatID, MessageID: msg.ID})

	h.logger.Info("Deleted channel post",
		zap.Int64("chat_id", chatID),
		zap.Int64("channel_id", channelID),
	)
	return true
}
