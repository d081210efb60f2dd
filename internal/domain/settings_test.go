package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "en", s.Language)
	assert.Equal(t, PolicyNone, s.ChannelPostPolicy.Mode)
	assert.Equal(t, 60*time.Second, s.CaptchaTTL)
	assert.Equal(t, 10*time.Second, s.MessageTTL)
	assert.Equal(t, 300*time.Second, s.IgnoreTTL)
	assert.False(t, s.DeleteJoinMessages)
	assert.Empty(t, s.WelcomeTemplate)
}

func TestValidateWelcomeTemplate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name: "placeholder present",
			text: "hi {user_tag}!",
		},
		{
			name:    "placeholder missing",
			text:    "hi there!",
			wantErr: true,
		},
		{
			name: "placeholder embedded",
			text: "welcome {user_tag}, read the rules",
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWelcomeTemplate(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), UserTagPlaceholder)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettings_ApplyRaw(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		check   func(t *testing.T, s Settings)
		wantErr string
	}{
		{
			name: "single key",
			text: "captcha_ttl: 90",
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, 90*time.Second, s.CaptchaTTL)
			},
		},
		{
			name: "several keys with blank lines",
			text: "captcha_ttl: 90\n\nmessage_ttl: 15\nignore_ttl: 600\ndelete_join_messages: true",
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, 90*time.Second, s.CaptchaTTL)
				assert.Equal(t, 15*time.Second, s.MessageTTL)
				assert.Equal(t, 600*time.Second, s.IgnoreTTL)
				assert.True(t, s.DeleteJoinMessages)
			},
		},
		{
			name:    "missing colon",
			text:    "captcha_ttl 90",
			wantErr: "invalid format",
		},
		{
			name:    "unknown key",
			text:    "captcha_expire: 90",
			wantErr: "unknown setting",
		},
		{
			name:    "zero duration",
			text:    "message_ttl: 0",
			wantErr: "greater than zero",
		},
		{
			name:    "non-numeric duration",
			text:    "ignore_ttl: soon",
			wantErr: "ignore_ttl",
		},
		{
			name:    "bad bool",
			text:    "delete_join_messages: yep",
			wantErr: "delete_join_messages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultSettings()
			got, err := base.ApplyRaw(tt.text)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				// Failed parse returns the receiver unchanged.
				assert.Equal(t, base, got)
				return
			}
			assert.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestSettings_Describe(t *testing.T) {
	s := DefaultSettings()
	desc := s.Describe()

	assert.Contains(t, desc, "captcha_ttl: 60")
	assert.Contains(t, desc, "message_ttl: 10")
	assert.Contains(t, desc, "ignore_ttl: 300")
	assert.Contains(t, desc, "delete_join_messages: false")
}
