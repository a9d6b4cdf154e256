package main

import (
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/playable/blackjack"
	"fmt"
	"io"
	"strings"
)

const hiddenCard = "🂠"

func totalString(total int, soft bool) string {
	if soft {
		return fmt.Sprintf("soft %d", total)
	}

	return fmt.Sprintf("%d", total)
}

func cardsString(hand deck.Hand, hideFirst bool) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		if i == 0 && hideFirst {
			cards[i] = hiddenCard
		} else {
			cards[i] = card.String()
		}
	}

	return strings.Join(cards, " ")
}

// render writes the ledger bar followed by both hands and the round message
func render(w io.Writer, v blackjack.View) {
	prefix := ""
	if v.Ledger.SessionNet >= 0 {
		prefix = "+"
	}

	fmt.Fprintf(w, "Balance: %d   Win/Loss: %s%d\n", v.Ledger.Balance, prefix, v.Ledger.SessionNet)

	if len(v.PlayerHand) > 0 {
		dealerTotal := "?"
		if !v.DealerHoleConcealed {
			dealerTotal = totalString(v.DealerTotal, v.DealerSoft)
		}

		fmt.Fprintf(w, "Dealer: %s  (total: %s)\n", cardsString(v.DealerHand, v.DealerHoleConcealed), dealerTotal)
		fmt.Fprintf(w, "Player: %s  (total: %s)\n", cardsString(v.PlayerHand, false), totalString(v.PlayerTotal, v.PlayerSoft))
	}

	if v.Message != "" {
		fmt.Fprintln(w, v.Message)
	}
}
