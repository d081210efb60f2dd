package service

import "chatguard/internal/domain"

// ChannelPostAllowed decides whether a post sent on behalf of a channel may
// stay in the group. The linked channel is exempt under the
// ban-all-except-linked policy because Telegram mirrors every post of the
// linked channel into its discussion group.
func ChannelPostAllowed(policy domain.ChannelPostPolicy, senderChannelID int64) bool {
	switch policy.Mode {
	case domain.PolicyBanAll:
		return false
	case domain.PolicyBanAllExceptLinked:
		return senderChannelID == policy.LinkedChannelID
	default:
		return true
	}
}
