package l10n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_T(t *testing.T) {
	tr := New()

	t.Run("substitutes placeholders", func(t *testing.T) {
		got := tr.T("en", "welcome", "{user_tag}", "@alice")
		assert.Equal(t, "Welcome, @alice!", got)
	})

	t.Run("russian catalog", func(t *testing.T) {
		got := tr.T("ru", "welcome", "{user_tag}", "@alice")
		assert.Equal(t, "Добро пожаловать, @alice!", got)
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		got := tr.T("de", "query-correct")
		assert.Equal(t, "Correct!", got)
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		assert.Equal(t, "no-such-message", tr.T("en", "no-such-message"))
	})
}

func TestTranslator_Duration(t *testing.T) {
	tr := New()

	tests := []struct {
		locale   string
		duration time.Duration
		expected string
	}{
		{"en", 90 * time.Second, "1 min 30 s"},
		{"en", time.Hour + 5*time.Second, "1 h 5 s"},
		{"en", time.Minute, "1 min"},
		{"en", 0, "0 s"},
		{"ru", 90 * time.Second, "1 мин 30 с"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Duration(tt.locale, tt.duration))
		})
	}
}
