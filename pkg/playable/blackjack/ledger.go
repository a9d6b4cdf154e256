package blackjack

import (
	"fmt"
	"math"
)

// Ledger tracks the player's chips for the lifetime of the process
type Ledger struct {
	// Balance is the total chips available
	Balance int `json:"balance"`

	// SessionNet is the cumulative win/loss from played rounds. Top-ups are excluded
	SessionNet int `json:"sessionNet"`

	// CurrentBet is the bet locked in for the current round
	CurrentBet int `json:"currentBet"`
}

// NewLedger returns a ledger with the starting balance
func NewLedger(startingBalance int) Ledger {
	return Ledger{
		Balance: startingBalance,
	}
}

// validateBet returns an error if the bet cannot be placed
func (l *Ledger) validateBet(bet int) error {
	// a blackjack pays bet + bet/2 on top of the balance
	if bet <= 0 || bet > l.Balance || l.Balance > math.MaxInt-bet-bet/2 {
		return InvalidBetError{
			Bet:     bet,
			Balance: l.Balance,
		}
	}

	return nil
}

// settle applies the outcome to the current bet and returns the adjustment
func (l *Ledger) settle(outcome Outcome) int {
	delta := outcome.Delta(l.CurrentBet)
	l.Balance += delta
	l.SessionNet += delta

	return delta
}

// addFunds increases the balance without touching the session net
func (l *Ledger) addFunds(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: must be greater than 0", ErrInvalidAmount)
	}

	if l.Balance > math.MaxInt-amount {
		return fmt.Errorf("%w: %d would overflow the balance of %d", ErrInvalidAmount, amount, l.Balance)
	}

	l.Balance += amount
	return nil
}
