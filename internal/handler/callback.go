package handler

import (
	"strings"
	"unicode"

	tele "gopkg.in/telebot.v3"
)

const (
	kindPrefix  = "kind_"
	valuePrefix = "value_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback routes ALL callback queries: settings callbacks carry a
// prefix, bare data is a captcha token answer.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil || c.Message() == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)
	switch {
	case strings.HasPrefix(data, kindPrefix):
		return h.handleKindSelected(c, strings.TrimPrefix(data, kindPrefix))
	case strings.HasPrefix(data, valuePrefix):
		return h.handleValueSelected(c, strings.TrimPrefix(data, valuePrefix))
	default:
		return h.handleCaptchaAnswer(c, data)
	}
}
