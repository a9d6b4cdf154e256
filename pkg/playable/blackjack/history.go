package blackjack

import (
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/playable"
	"time"
)

// maxHistory is the number of settled rounds kept in memory
const maxHistory = 100

// RoundRecord is a settled round
type RoundRecord struct {
	UUID         string                 `json:"uuid"`
	Bet          int                    `json:"bet"`
	Outcome      Outcome                `json:"outcome"`
	Delta        int                    `json:"delta"`
	PlayerHand   deck.Hand              `json:"playerHand"`
	DealerHand   deck.Hand              `json:"dealerHand"`
	PlayerTotal  int                    `json:"playerTotal"`
	DealerTotal  int                    `json:"dealerTotal"`
	BalanceAfter int                    `json:"balanceAfter"`
	Log          []*playable.LogMessage `json:"log"`
	Time         time.Time              `json:"time"`
}

func (g *Game) recordRound(delta int) {
	record := &RoundRecord{
		UUID:         g.roundID,
		Bet:          g.ledger.CurrentBet,
		Outcome:      g.outcome,
		Delta:        delta,
		PlayerHand:   g.playerHand.Clone(),
		DealerHand:   g.dealerHand.Clone(),
		PlayerTotal:  HandTotal(g.playerHand),
		DealerTotal:  HandTotal(g.dealerHand),
		BalanceAfter: g.ledger.Balance,
		Log:          append([]*playable.LogMessage(nil), g.log...),
		Time:         time.Now(),
	}

	g.history = append(g.history, record)
	if n := len(g.history); n > maxHistory {
		g.history = g.history[n-maxHistory:]
	}
}

// History returns the settled rounds, oldest first
func (g *Game) History() []*RoundRecord {
	history := make([]*RoundRecord, len(g.history))
	copy(history, g.history)

	return history
}
