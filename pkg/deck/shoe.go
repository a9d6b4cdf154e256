package deck

import (
	"blackjack-server/internal/rng"
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
)

// ErrEmptyShoe is an error when Draw() is attempted and there are no more cards
var ErrEmptyShoe = errors.New("the shoe is empty")

// DefaultReshuffleThreshold is the number of cards below which a shoe should be reshuffled before a round
const DefaultReshuffleThreshold = 10

// Shoe is the drawable card source for the table
// Cards are drawn from the end of Cards.
type Shoe struct {
	Cards []Card `json:"cards"`

	threshold int
	generator rng.Generator
}

// NewShoe returns a freshly shuffled 52-card shoe
// If generator is nil, a crypto-backed generator is used. If threshold is <= 0, DefaultReshuffleThreshold is used.
func NewShoe(generator rng.Generator, threshold int) *Shoe {
	if generator == nil {
		generator = rng.Crypto{}
	}

	if threshold <= 0 {
		threshold = DefaultReshuffleThreshold
	}

	s := &Shoe{
		threshold: threshold,
		generator: generator,
	}

	s.Reshuffle()
	return s
}

func buildDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Reshuffle replaces the shoe with a fresh deck of 52 cards in a uniformly random order
func (s *Shoe) Reshuffle() {
	s.Cards = buildDeck()

	for j := len(s.Cards) - 1; j > 0; j-- {
		i := s.generator.Intn(j + 1)

		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	}
}

// NeedsReshuffle returns true if fewer cards than the threshold remain
func (s *Shoe) NeedsReshuffle() bool {
	return len(s.Cards) < s.threshold
}

// Draw will draw the next card
// If there are no more cards, ErrEmptyShoe is returned.
func (s *Shoe) Draw() (Card, error) {
	n := len(s.Cards)
	if n == 0 {
		return Card{}, ErrEmptyShoe
	}

	card := s.Cards[n-1]
	s.Cards = s.Cards[:n-1]

	return card, nil
}

// RemoveCard will remove the card from the shoe
// Returns true if the card was found
func (s *Shoe) RemoveCard(card Card) bool {
	for i, c := range s.Cards {
		if c == card {
			s.Cards = append(s.Cards[:i], s.Cards[i+1:]...)
			return true
		}
	}

	return false
}

// CanDraw returns true if there are {want} cards left in the shoe
func (s *Shoe) CanDraw(want int) bool {
	return len(s.Cards) >= want
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}

// HashCode returns a SHA1 hash code of the shoe.
func (s *Shoe) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range s.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
