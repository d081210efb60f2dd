package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UserTagPlaceholder must appear in every custom welcome template; it is
// replaced with a mention link of the verified member.
const UserTagPlaceholder = "{user_tag}"

// PolicyMode says what happens to posts authored by a channel identity.
type PolicyMode int

const (
	PolicyNone PolicyMode = iota
	PolicyBanAll
	PolicyBanAllExceptLinked
)

// ChannelPostPolicy is the per-chat channel moderation policy. The linked
// channel id is meaningful only for PolicyBanAllExceptLinked.
type ChannelPostPolicy struct {
	Mode            PolicyMode
	LinkedChannelID int64
}

// Settings holds per-chat configuration. A chat without a stored row uses
// DefaultSettings.
type Settings struct {
	Language           string
	ChannelPostPolicy  ChannelPostPolicy
	CaptchaTTL         time.Duration
	MessageTTL         time.Duration
	IgnoreTTL          time.Duration
	DeleteJoinMessages bool
	// WelcomeTemplate is the custom welcome text with UserTagPlaceholder.
	// Empty means the localized default welcome is used.
	WelcomeTemplate string
}

// DefaultSettings returns the configuration applied to chats that were
// never configured.
func DefaultSettings() Settings {
	return Settings{
		Language:   "en",
		CaptchaTTL: 60 * time.Second,
		MessageTTL: 10 * time.Second,
		IgnoreTTL:  300 * time.Second,
	}
}

// ValidateWelcomeTemplate checks the welcome-message grammar.
func ValidateWelcomeTemplate(text string) error {
	if !strings.Contains(text, UserTagPlaceholder) {
		return fmt.Errorf("text must contain the %q placeholder", UserTagPlaceholder)
	}
	return nil
}

// ApplyRaw parses the "key: value" line grammar used by the timers dialogue
// step and returns a copy of s with the parsed values applied. Unknown keys,
// malformed lines and non-positive durations are parse errors; s is never
// modified on error.
func (s Settings) ApplyRaw(text string) (Settings, error) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return s, fmt.Errorf("line %q has invalid format, expected \"key: value\"", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "captcha_ttl":
			d, err := parseSeconds(value)
			if err != nil {
				return s, fmt.Errorf("captcha_ttl: %w", err)
			}
			s.CaptchaTTL = d
		case "message_ttl":
			d, err := parseSeconds(value)
			if err != nil {
				return s, fmt.Errorf("message_ttl: %w", err)
			}
			s.MessageTTL = d
		case "ignore_ttl":
			d, err := parseSeconds(value)
			if err != nil {
				return s, fmt.Errorf("ignore_ttl: %w", err)
			}
			s.IgnoreTTL = d
		case "delete_join_messages":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return s, fmt.Errorf("delete_join_messages: %w", err)
			}
			s.DeleteJoinMessages = b
		default:
			return s, fmt.Errorf("unknown setting %q", key)
		}
	}
	return s, nil
}

// Describe renders the raw-grammar view of the settings, one key per line.
func (s Settings) Describe() string {
	return strings.Join([]string{
		fmt.Sprintf("captcha_ttl: %d", int(s.CaptchaTTL.Seconds())),
		fmt.Sprintf("message_ttl: %d", int(s.MessageTTL.Seconds())),
		fmt.Sprintf("ignore_ttl: %d", int(s.IgnoreTTL.Seconds())),
		fmt.Sprintf("delete_join_messages: %t", s.DeleteJoinMessages),
	}, "\n")
}

func parseSeconds(value string) (time.Duration, error) {
	secs, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if secs <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return time.Duration(secs) * time.Second, nil
}
