package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chatguard/internal/domain"
)

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// LoadAll reads every configured chat. Called once at startup to build the
// in-memory mirror.
func (r *SettingsRepo) LoadAll(ctx context.Context) (map[int64]domain.Settings, error) {
	query := `
		SELECT chat_id, language, channel_policy, captcha_ttl, message_ttl,
			ignore_ttl, delete_join_messages, welcome_template
		FROM chat_settings
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load chat settings: %w", err)
	}
	defer rows.Close()

	all := make(map[int64]domain.Settings)
	for rows.Next() {
		var chatID int64
		var s domain.Settings
		var policy sql.NullInt64
		var captchaSec, messageSec, ignoreSec int64
		if err := rows.Scan(&chatID, &s.Language, &policy, &captchaSec,
			&messageSec, &ignoreSec, &s.DeleteJoinMessages, &s.WelcomeTemplate); err != nil {
			return nil, fmt.Errorf("scan chat settings: %w", err)
		}
		s.ChannelPostPolicy = decodePolicy(policy)
		s.CaptchaTTL = time.Duration(captchaSec) * time.Second
		s.MessageTTL = time.Duration(messageSec) * time.Second
		s.IgnoreTTL = time.Duration(ignoreSec) * time.Second
		all[chatID] = s
	}

	return all, rows.Err()
}

// Upsert writes one chat's settings
func (r *SettingsRepo) Upsert(ctx context.Context, chatID int64, s domain.Settings) error {
	query := `
		INSERT INTO chat_settings (chat_id, language, channel_policy, captcha_ttl,
			message_ttl, ignore_ttl, delete_join_messages, welcome_template)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (chat_id)
		DO UPDATE SET
			language = $2,
			channel_policy = $3,
			captcha_ttl = $4,
			message_ttl = $5,
			ignore_ttl = $6,
			delete_join_messages = $7,
			welcome_template = $8
	`
	_, err := r.db.ExecContext(ctx, query, chatID, s.Language, encodePolicy(s.ChannelPostPolicy),
		int64(s.CaptchaTTL.Seconds()), int64(s.MessageTTL.Seconds()), int64(s.IgnoreTTL.Seconds()),
		s.DeleteJoinMessages, s.WelcomeTemplate)
	if err != nil {
		return fmt.Errorf("upsert chat settings: %w", err)
	}
	return nil
}

// Policy column encoding: NULL means no policy, 0 means ban all channels,
// any other value is the linked channel id that stays allowed.
func encodePolicy(p domain.ChannelPostPolicy) sql.NullInt64 {
	switch p.Mode {
	case domain.PolicyBanAll:
		return sql.NullInt64{Int64: 0, Valid: true}
	case domain.PolicyBanAllExceptLinked:
		return sql.NullInt64{Int64: p.LinkedChannelID, Valid: true}
	default:
		return sql.NullInt64{}
	}
}

func decodePolicy(v sql.NullInt64) domain.ChannelPostPolicy {
	switch {
	case !v.Valid:
		return domain.ChannelPostPolicy{Mode: domain.PolicyNone}
	case v.Int64 == 0:
		return domain.ChannelPostPolicy{Mode: domain.PolicyBanAll}
	default:
		return domain.ChannelPostPolicy{Mode: domain.PolicyBanAllExceptLinked, LinkedChannelID: v.Int64}
	}
}
