package blackjack

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestLedger_validateBet(t *testing.T) {
	a := assert.New(t)
	l := NewLedger(100)

	a.NoError(l.validateBet(1))
	a.NoError(l.validateBet(100))

	err := l.validateBet(0)
	a.True(errors.Is(err, ErrInvalidBet))
	a.EqualError(err, "bet must be more than 0")

	err = l.validateBet(-5)
	a.True(errors.Is(err, ErrInvalidBet))

	err = l.validateBet(101)
	a.True(errors.Is(err, ErrInvalidBet))
	a.EqualError(err, "bet of 101 exceeds the balance of 100")

	var betErr InvalidBetError
	a.True(errors.As(err, &betErr))
	a.Equal(101, betErr.Bet)
	a.Equal(100, betErr.Balance)
}

func TestLedger_settle(t *testing.T) {
	a := assert.New(t)
	l := NewLedger(1000)
	l.CurrentBet = 50

	a.Equal(75, l.settle(OutcomeBlackjack))
	a.Equal(1075, l.Balance)
	a.Equal(75, l.SessionNet)

	a.Equal(-50, l.settle(OutcomeDealerWin))
	a.Equal(1025, l.Balance)
	a.Equal(25, l.SessionNet)

	a.Equal(0, l.settle(OutcomePush))
	a.Equal(1025, l.Balance)
	a.Equal(25, l.SessionNet)
}

func TestLedger_addFunds(t *testing.T) {
	a := assert.New(t)
	l := NewLedger(0)
	l.SessionNet = -40

	a.NoError(l.addFunds(200))
	a.Equal(200, l.Balance)
	a.Equal(-40, l.SessionNet)

	err := l.addFunds(0)
	a.True(errors.Is(err, ErrInvalidAmount))
	a.EqualError(err, "invalid amount: must be greater than 0")
	a.True(errors.Is(l.addFunds(-10), ErrInvalidAmount))
	a.Equal(200, l.Balance)
}

func TestLedger_addFundsOverflow(t *testing.T) {
	a := assert.New(t)
	l := NewLedger(1000)

	err := l.addFunds(math.MaxInt - 10)
	a.True(errors.Is(err, ErrInvalidAmount))
	a.True(IsUserError(err))
	a.EqualError(err, fmt.Sprintf("invalid amount: %d would overflow the balance of 1000", math.MaxInt-10))
	a.Equal(1000, l.Balance)

	a.NoError(l.addFunds(math.MaxInt - 1000))
	a.Equal(math.MaxInt, l.Balance)
	a.True(errors.Is(l.addFunds(1), ErrInvalidAmount))
	a.Equal(math.MaxInt, l.Balance)
}

func TestLedger_validateBetOverflow(t *testing.T) {
	a := assert.New(t)
	l := NewLedger(math.MaxInt)

	err := l.validateBet(100)
	a.True(errors.Is(err, ErrInvalidBet))
	a.EqualError(err, fmt.Sprintf("a win on a bet of 100 would overflow the balance of %d", math.MaxInt))

	// the largest bet that can still be paid 3:2
	l = NewLedger(math.MaxInt - 150)
	a.NoError(l.validateBet(100))
	l.CurrentBet = 100
	a.Equal(150, l.settle(OutcomeBlackjack))
	a.Equal(math.MaxInt, l.Balance)
	a.True(errors.Is(l.validateBet(1), ErrInvalidBet))
}
