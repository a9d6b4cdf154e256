package blackjack

import (
	"errors"
	"fmt"
)

// ErrInvalidBet is returned when a bet is not > 0 or exceeds the balance
var ErrInvalidBet = errors.New("invalid bet")

// ErrIllegalAction is returned when an action is attempted from the wrong state
var ErrIllegalAction = errors.New("illegal action")

// ErrUnknownAction is returned when an action name is not recognized
var ErrUnknownAction = errors.New("invalid action")

// ErrInvalidAmount is returned when a top-up is not a positive whole number or would overflow the balance
var ErrInvalidAmount = errors.New("invalid amount")

// InvalidBetError describes why a bet was rejected
type InvalidBetError struct {
	Bet     int
	Balance int
}

func (e InvalidBetError) Error() string {
	if e.Bet <= 0 {
		return "bet must be more than 0"
	}

	if e.Bet > e.Balance {
		return fmt.Sprintf("bet of %d exceeds the balance of %d", e.Bet, e.Balance)
	}

	return fmt.Sprintf("a win on a bet of %d would overflow the balance of %d", e.Bet, e.Balance)
}

// Is allows errors.Is(err, ErrInvalidBet)
func (e InvalidBetError) Is(target error) bool {
	return target == ErrInvalidBet
}

// IllegalActionError is an action attempted from a state that does not allow it
type IllegalActionError struct {
	Action Action
	State  RoundState
}

func (e IllegalActionError) Error() string {
	return fmt.Sprintf("cannot %s from state: %s", e.Action, e.State)
}

// Is allows errors.Is(err, ErrIllegalAction)
func (e IllegalActionError) Is(target error) bool {
	return target == ErrIllegalAction
}

// IsUserError returns true if the error was caused by the caller and is safe to show to a player
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidBet) || errors.Is(err, ErrIllegalAction) ||
		errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrUnknownAction)
}
