package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// groupIndexOf finds the catalog group a token belongs to, -1 if none.
func groupIndexOf(token string) int {
	for i, g := range catalog {
		for _, q := range g {
			for _, e := range q.emojis {
				if e == token {
					return i
				}
			}
		}
	}
	return -1
}

// phraseMatchesToken reports whether some catalog variant offers both the
// token and the phrase.
func phraseMatchesToken(token, phrase string) bool {
	for _, g := range catalog {
		for _, q := range g {
			hasToken := false
			for _, e := range q.emojis {
				if e == token {
					hasToken = true
					break
				}
			}
			if !hasToken {
				continue
			}
			for _, p := range q.phrases {
				if p == phrase {
					return true
				}
			}
		}
	}
	return false
}

func TestPickChallenge(t *testing.T) {
	sizes := []int{1, 2, 6, 10, CatalogSize()}

	for _, n := range sizes {
		// Sampling is random, so exercise each size a few times.
		for i := 0; i < 20; i++ {
			c := PickChallenge(n)

			assert.Len(t, c.Tokens, n)
			assert.GreaterOrEqual(t, c.CorrectIndex, 0)
			assert.Less(t, c.CorrectIndex, n)
			assert.Equal(t, c.Tokens[c.CorrectIndex], c.Answer())
			assert.NotEmpty(t, c.QueryPhrase)

			seen := make(map[int]bool, n)
			for _, token := range c.Tokens {
				gi := groupIndexOf(token)
				assert.NotEqual(t, -1, gi, "token %q not in catalog", token)
				assert.False(t, seen[gi], "group %d contributed two tokens", gi)
				seen[gi] = true
			}

			assert.True(t, phraseMatchesToken(c.Answer(), c.QueryPhrase),
				"phrase %q does not describe token %q", c.QueryPhrase, c.Answer())
		}
	}
}

func TestPickChallenge_TooLarge(t *testing.T) {
	assert.Panics(t, func() {
		PickChallenge(CatalogSize() + 1)
	})
}

func TestCatalog_NoDuplicateEmojis(t *testing.T) {
	seen := make(map[string]int)
	for i, g := range catalog {
		for _, q := range g {
			for _, e := range q.emojis {
				if prev, ok := seen[e]; ok && prev != i {
					t.Errorf("emoji %q appears in groups %d and %d", e, prev, i)
				}
				seen[e] = i
			}
		}
	}
}
