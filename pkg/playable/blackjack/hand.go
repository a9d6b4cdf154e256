package blackjack

import (
	"blackjack-server/pkg/deck"
	"strconv"
)

const (
	// blackjackTotal is the best possible total
	blackjackTotal = 21

	// dealerStandsOn is the total the dealer stops drawing at (soft or hard)
	dealerStandsOn = 17
)

// CardValue returns the value of a card with aces counted high
func CardValue(card deck.Card) int {
	switch {
	case card.IsAce():
		return 11
	case card.IsFace():
		return 10
	}

	return card.Rank
}

// evaluate returns the total and the number of aces still counted as 11
func evaluate(hand deck.Hand) (total int, softAces int) {
	for _, card := range hand {
		total += CardValue(card)
		if card.IsAce() {
			softAces++
		}
	}

	for total > blackjackTotal && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}

// HandTotal returns the best total for the hand
// Aces count as 11 and are reduced to 1, one at a time, while the hand would bust.
func HandTotal(hand deck.Hand) int {
	total, _ := evaluate(hand)
	return total
}

// IsSoft returns true if an ace is still counted as 11
func IsSoft(hand deck.Hand) bool {
	_, softAces := evaluate(hand)
	return softAces > 0
}

// describeTotal returns the total as a player would say it, e.g. "soft 17"
func describeTotal(hand deck.Hand) string {
	total, softAces := evaluate(hand)
	if softAces > 0 {
		return "soft " + strconv.Itoa(total)
	}

	return strconv.Itoa(total)
}

// IsNatural returns true for a two-card 21
func IsNatural(hand deck.Hand) bool {
	return len(hand) == 2 && HandTotal(hand) == blackjackTotal
}

// IsBust returns true if the hand is over 21
func IsBust(hand deck.Hand) bool {
	return HandTotal(hand) > blackjackTotal
}
