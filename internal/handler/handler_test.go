package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"

	"chatguard/internal/platform"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips unique prefix marker", "\fkind_language", "kind_language"},
		{"plain data untouched", "value_en", "value_en"},
		{"emoji survives", "\f🐈", "🐈"},
		{"whitespace trimmed", "  🐈  ", "🐈"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestEmojiKeyboard(t *testing.T) {
	tokens := []string{"🐈", "🐕", "🐘", "🐒", "🦁"}

	rows := emojiKeyboard(tokens, 2)
	assert.Len(t, rows, 3)
	assert.Len(t, rows[0], 2)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 1)

	// Every button answers with its own token.
	var seen []string
	for _, row := range rows {
		for _, b := range row {
			assert.Equal(t, b.Text, b.Data)
			seen = append(seen, b.Data)
		}
	}
	assert.Equal(t, tokens, seen)
}

func TestEmojiKeyboard_Empty(t *testing.T) {
	assert.Empty(t, emojiKeyboard(nil, 2))
}

func TestUserTag(t *testing.T) {
	tests := []struct {
		name     string
		user     *tele.User
		expected string
	}{
		{
			name:     "username preferred",
			user:     &tele.User{ID: 42, Username: "alice", FirstName: "Alice"},
			expected: "@alice",
		},
		{
			name:     "mention link without username",
			user:     &tele.User{ID: 42, FirstName: "Alice", LastName: "Liddell"},
			expected: `<a href="tg://user?id=42">Alice Liddell</a>`,
		},
		{
			name:     "html escaped name",
			user:     &tele.User{ID: 42, FirstName: "<b>"},
			expected: `<a href="tg://user?id=42">&lt;b&gt;</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, userTag(tt.user))
		})
	}
}

func TestInlineKeyboardMarkup(t *testing.T) {
	rows := [][]platform.Button{
		{{Text: "Yes", Data: "value_true"}, {Text: "No", Data: "value_false"}},
	}

	markup := platform.InlineKeyboard(rows)
	assert.Len(t, markup.InlineKeyboard, 1)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "Yes", markup.InlineKeyboard[0][0].Text)
}
