package handler

import (
	"errors"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"chatguard/internal/l10n"
	"chatguard/internal/middleware"
	"chatguard/internal/platform"
	"chatguard/internal/scheduler"
	"chatguard/internal/service"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	client     platform.Client
	settings   *service.SettingsService
	challenges *service.ChallengeService
	dialogues  *service.DialogueService
	scheduler  *scheduler.Scheduler
	translator *l10n.Translator
	logger     *zap.Logger

	// Emoji buttons shown per challenge row.
	keyboardColumns int
	challengeSize   int
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	client platform.Client,
	settings *service.SettingsService,
	challenges *service.ChallengeService,
	dialogues *service.DialogueService,
	sched *scheduler.Scheduler,
	translator *l10n.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		client:          client,
		settings:        settings,
		challenges:      challenges,
		dialogues:       dialogues,
		scheduler:       sched,
		translator:      translator,
		logger:          logger,
		keyboardColumns: 2,
		challengeSize:   6,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/help", h.groupOnly(h.handleHelp))
	h.bot.Handle("/settings", h.groupOnly(h.handleSettings), middleware.AdminOnly(h.client, h.logger))
	h.bot.Handle("/cancel", h.groupOnly(h.handleCancel))

	// New members
	h.bot.Handle(tele.OnUserJoined, h.groupOnly(h.handleUserJoined))

	// Dialogue input and channel-identity posts
	h.bot.Handle(tele.OnText, h.groupOnly(h.handleText))
	h.bot.Handle(tele.OnMedia, h.groupOnly(h.handleMedia))

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.groupOnly(h.handleCallback))
}

// groupOnly drops updates outside groups and supergroups.
func (h *Handler) groupOnly(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		chat := c.Chat()
		if chat == nil || (chat.Type != tele.ChatGroup && chat.Type != tele.ChatSuperGroup) {
			return nil
		}
		return next(c)
	}
}

// locale returns the language configured for the chat.
func (h *Handler) locale(chatID int64) string {
	return h.settings.Language(chatID)
}

// deleteLater schedules a sent message for deletion.
func (h *Handler) deleteLater(msg platform.Message, ttl time.Duration) {
	h.scheduler.After(ttl, "delete notice", func() error {
		err := h.client.DeleteMessage(msg)
		if errors.Is(err, platform.ErrNotFound) {
			return nil
		}
		return err
	})
}

func (h *Handler) handleHelp(c tele.Context) error {
	locale := h.locale(c.Chat().ID)
	return c.Reply(h.translator.T(locale, "help"))
}
