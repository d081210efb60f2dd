package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chatguard/internal/domain"
)

func TestChannelPostAllowed(t *testing.T) {
	tests := []struct {
		name     string
		policy   domain.ChannelPostPolicy
		senderID int64
		allowed  bool
	}{
		{
			name:     "no policy allows everything",
			policy:   domain.ChannelPostPolicy{Mode: domain.PolicyNone},
			senderID: 777,
			allowed:  true,
		},
		{
			name:     "ban all rejects any channel",
			policy:   domain.ChannelPostPolicy{Mode: domain.PolicyBanAll},
			senderID: 777,
			allowed:  false,
		},
		{
			name:     "linked channel is exempt",
			policy:   domain.ChannelPostPolicy{Mode: domain.PolicyBanAllExceptLinked, LinkedChannelID: 777},
			senderID: 777,
			allowed:  true,
		},
		{
			name:     "unlinked channel is rejected",
			policy:   domain.ChannelPostPolicy{Mode: domain.PolicyBanAllExceptLinked, LinkedChannelID: 777},
			senderID: 778,
			allowed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, ChannelPostAllowed(tt.policy, tt.senderID))
		})
	}
}
