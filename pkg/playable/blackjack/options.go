package blackjack

import "blackjack-server/pkg/deck"

// Options contains options for creating a new game of Blackjack
type Options struct {
	StartingBalance    int
	DefaultBet         int
	ReshuffleThreshold int

	// Seed makes the shoe reproducible when non-zero
	Seed int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingBalance:    1000,
		DefaultBet:         50,
		ReshuffleThreshold: deck.DefaultReshuffleThreshold,
	}
}
