package blackjack

import (
	"encoding/json"
	"fmt"
)

// Outcome is how a round ended
type Outcome int

// Outcome constants
const (
	OutcomeNone Outcome = iota
	OutcomeBlackjack
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomeDealerWin
	OutcomePlayerWin
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomePlayerBust:
		return "player-bust"
	case OutcomeDealerBust:
		return "dealer-bust"
	case OutcomeDealerWin:
		return "dealer-win"
	case OutcomePlayerWin:
		return "player-win"
	case OutcomePush:
		return "push"
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// MarshalJSON encodes the outcome as its name
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Delta returns the balance adjustment for a bet
func (o Outcome) Delta(bet int) int {
	switch o {
	case OutcomeBlackjack:
		// 3:2 rounded down
		return bet + bet/2
	case OutcomeDealerBust, OutcomePlayerWin:
		return bet
	case OutcomePlayerBust, OutcomeDealerWin:
		return -bet
	}

	return 0
}

// Message returns a human readable result for a bet
func (o Outcome) Message(bet int) string {
	switch o {
	case OutcomeBlackjack:
		return fmt.Sprintf("Blackjack! You win %d.", o.Delta(bet))
	case OutcomePlayerBust:
		return fmt.Sprintf("You bust! You lose %d.", bet)
	case OutcomeDealerBust:
		return fmt.Sprintf("Dealer busts! You win %d.", bet)
	case OutcomeDealerWin:
		return fmt.Sprintf("Dealer wins. You lose %d.", bet)
	case OutcomePlayerWin:
		return fmt.Sprintf("You win %d!", bet)
	case OutcomePush:
		return "Push. No one wins."
	}

	return ""
}

// compareTotals decides the outcome after the dealer has finished drawing
func compareTotals(playerTotal, dealerTotal int) Outcome {
	switch {
	case dealerTotal > blackjackTotal:
		return OutcomeDealerBust
	case dealerTotal > playerTotal:
		return OutcomeDealerWin
	case dealerTotal < playerTotal:
		return OutcomePlayerWin
	}

	return OutcomePush
}
