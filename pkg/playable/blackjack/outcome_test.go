package blackjack

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestOutcome_Delta(t *testing.T) {
	a := assert.New(t)
	a.Equal(75, OutcomeBlackjack.Delta(50))
	a.Equal(7, OutcomeBlackjack.Delta(5))
	a.Equal(1, OutcomeBlackjack.Delta(1))
	a.Equal(math.MaxInt/3*2+math.MaxInt/3, OutcomeBlackjack.Delta(math.MaxInt/3*2))
	a.Equal(-50, OutcomePlayerBust.Delta(50))
	a.Equal(50, OutcomeDealerBust.Delta(50))
	a.Equal(-50, OutcomeDealerWin.Delta(50))
	a.Equal(50, OutcomePlayerWin.Delta(50))
	a.Equal(0, OutcomePush.Delta(50))
	a.Equal(0, OutcomeNone.Delta(50))
}

func TestOutcome_Message(t *testing.T) {
	a := assert.New(t)
	a.Equal("Blackjack! You win 15.", OutcomeBlackjack.Message(10))
	a.Equal("You bust! You lose 10.", OutcomePlayerBust.Message(10))
	a.Equal("Dealer busts! You win 10.", OutcomeDealerBust.Message(10))
	a.Equal("Dealer wins. You lose 10.", OutcomeDealerWin.Message(10))
	a.Equal("You win 10!", OutcomePlayerWin.Message(10))
	a.Equal("Push. No one wins.", OutcomePush.Message(10))
	a.Equal("", OutcomeNone.Message(10))
}

func TestOutcome_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("blackjack", OutcomeBlackjack.String())
	a.Equal("push", OutcomePush.String())
	a.PanicsWithValue("invalid outcome: 99", func() {
		_ = Outcome(99).String()
	})

	b, err := json.Marshal(OutcomeDealerBust)
	a.NoError(err)
	a.Equal(`"dealer-bust"`, string(b))
}

func Test_compareTotals(t *testing.T) {
	a := assert.New(t)
	a.Equal(OutcomeDealerBust, compareTotals(19, 22))
	a.Equal(OutcomeDealerBust, compareTotals(21, 26))
	a.Equal(OutcomeDealerWin, compareTotals(19, 20))
	a.Equal(OutcomePlayerWin, compareTotals(19, 18))
	a.Equal(OutcomePush, compareTotals(19, 19))
}
