package blackjack

import (
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/playable"
	"encoding/json"
)

// View is everything a presentation layer needs to render the table
// PlayerHand and DealerHand are always complete. DealerHoleConcealed tells the renderer to hide the dealer's first card and total.
type View struct {
	RoundID             string
	State               RoundState
	PlayerHand          deck.Hand
	DealerHand          deck.Hand
	PlayerTotal         int
	DealerTotal         int
	PlayerSoft          bool
	DealerSoft          bool
	DealerHoleConcealed bool
	Ledger              Ledger
	Outcome             Outcome
	Message             string
	Actions             []Action
	CardsRemaining      int
	Log                 []*playable.LogMessage
}

// View returns a snapshot of the game
// The snapshot does not share memory with the game.
func (g *Game) View() View {
	return View{
		RoundID:             g.roundID,
		State:               g.state,
		PlayerHand:          g.playerHand.Clone(),
		DealerHand:          g.dealerHand.Clone(),
		PlayerTotal:         HandTotal(g.playerHand),
		DealerTotal:         HandTotal(g.dealerHand),
		PlayerSoft:          IsSoft(g.playerHand),
		DealerSoft:          IsSoft(g.dealerHand),
		DealerHoleConcealed: g.state.inRound(),
		Ledger:              g.ledger,
		Outcome:             g.outcome,
		Message:             g.message,
		Actions:             g.getActions(),
		CardsRemaining:      g.shoe.CardsLeft(),
		Log:                 append([]*playable.LogMessage(nil), g.log...),
	}
}

type viewJSON struct {
	RoundID             string                 `json:"roundId,omitempty"`
	State               RoundState             `json:"state"`
	PlayerHand          []*deck.Card           `json:"playerHand"`
	DealerHand          []*deck.Card           `json:"dealerHand"`
	PlayerTotal         int                    `json:"playerTotal"`
	DealerTotal         *int                   `json:"dealerTotal"`
	PlayerSoft          bool                   `json:"playerSoft"`
	DealerSoft          *bool                  `json:"dealerSoft"`
	DealerHoleConcealed bool                   `json:"dealerHoleConcealed"`
	Balance             int                    `json:"balance"`
	SessionNet          int                    `json:"sessionNet"`
	CurrentBet          int                    `json:"currentBet"`
	Outcome             *Outcome               `json:"outcome"`
	Message             string                 `json:"message"`
	Actions             []Action               `json:"actions"`
	CardsRemaining      int                    `json:"cardsRemaining"`
	Log                 []*playable.LogMessage `json:"log"`
}

func cardPointers(hand deck.Hand) []*deck.Card {
	cards := make([]*deck.Card, len(hand))
	for i := range hand {
		card := hand[i]
		cards[i] = &card
	}

	return cards
}

// MarshalJSON hides the dealer's hole card, total and softness while they are concealed
func (v View) MarshalJSON() ([]byte, error) {
	out := viewJSON{
		RoundID:             v.RoundID,
		State:               v.State,
		PlayerHand:          cardPointers(v.PlayerHand),
		DealerHand:          cardPointers(v.DealerHand),
		PlayerTotal:         v.PlayerTotal,
		PlayerSoft:          v.PlayerSoft,
		DealerHoleConcealed: v.DealerHoleConcealed,
		Balance:             v.Ledger.Balance,
		SessionNet:          v.Ledger.SessionNet,
		CurrentBet:          v.Ledger.CurrentBet,
		Message:             v.Message,
		Actions:             v.Actions,
		CardsRemaining:      v.CardsRemaining,
		Log:                 v.Log,
	}

	if v.DealerHoleConcealed {
		if len(out.DealerHand) > 0 {
			out.DealerHand[0] = nil
		}
	} else {
		total := v.DealerTotal
		soft := v.DealerSoft
		out.DealerTotal = &total
		out.DealerSoft = &soft
	}

	if v.Outcome != OutcomeNone {
		outcome := v.Outcome
		out.Outcome = &outcome
	}

	return json.Marshal(out)
}
