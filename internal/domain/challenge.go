package domain

import (
	"fmt"
	"math/rand"
)

// Challenge is one N-way visual multiple-choice prompt. Tokens are the
// emoji candidates shown to the user, CorrectIndex points at the token a
// representative photo will be fetched for via QueryPhrase.
type Challenge struct {
	Tokens       []string
	CorrectIndex int
	QueryPhrase  string
}

// Answer returns the token the user is expected to pick.
func (c Challenge) Answer() string {
	return c.Tokens[c.CorrectIndex]
}

// query is one realization of a semantic slot: an emoji pool and the
// image-search phrases describing the same concept.
type query struct {
	emojis  []string
	phrases []string
}

// group holds mutually exclusive realizations of one semantic slot.
// At most one realization of a group appears in a challenge, so visually
// ambiguous concepts (dog vs wolf, lion vs tiger) never compete as
// answer candidates.
type group []query

func pickOne(pool []string) string {
	if len(pool) == 1 {
		return pool[0]
	}
	return pool[rand.Intn(len(pool))]
}

func (g group) resolve() query {
	if len(g) == 1 {
		return g[0]
	}
	return g[rand.Intn(len(g))]
}

// PickChallenge samples a challenge of the given size: n distinct groups
// without replacement, one emoji and one phrase per resolved group, correct
// position uniform. Asking for more tokens than there are groups is a
// programming error and panics.
func PickChallenge(n int) Challenge {
	if n > len(catalog) {
		panic(fmt.Sprintf("domain: challenge size %d exceeds catalog size %d", n, len(catalog)))
	}

	tokens := make([]string, n)
	queries := make([]query, n)
	for i, gi := range rand.Perm(len(catalog))[:n] {
		q := catalog[gi].resolve()
		queries[i] = q
		tokens[i] = pickOne(q.emojis)
	}

	correct := rand.Intn(n)
	return Challenge{
		Tokens:       tokens,
		CorrectIndex: correct,
		QueryPhrase:  pickOne(queries[correct].phrases),
	}
}
