package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"chatguard/internal/platform"
)

// AdminOnly creates middleware that drops updates from non-admins
func AdminOnly(client platform.Client, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chatID := c.Chat().ID
			userID := c.Sender().ID

			isAdmin, err := client.IsAdmin(chatID, userID)
			if err != nil {
				logger.Error("Failed to check admin status",
					zap.Error(err),
					zap.Int64("chat_id", chatID),
					zap.Int64("user_id", userID),
				)
				return nil
			}
			if !isAdmin {
				return nil
			}
			return next(c)
		}
	}
}
