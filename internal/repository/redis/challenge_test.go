package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "answer:100:42", answerKey(100, 42))
	assert.Equal(t, "answer:-100200:42", answerKey(-100200, 42))
	assert.Equal(t, "100:42", ignoreMember(100, 42))
}

func TestUnixSeconds(t *testing.T) {
	base := time.Unix(1700000000, 0)

	assert.Equal(t, 1.7e9, unixSeconds(base))
	// Fractional part survives, so close horizons keep their order.
	assert.Greater(t, unixSeconds(base.Add(500*time.Millisecond)), unixSeconds(base))
	assert.Less(t, unixSeconds(base.Add(500*time.Millisecond)), unixSeconds(base.Add(time.Second)))
}
