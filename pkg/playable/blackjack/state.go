package blackjack

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateIdle is before the first round has been dealt
	RoundStateIdle RoundState = "idle"

	// RoundStatePlayerTurn means the cards are dealt and the player can hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the dealer is drawing. It is never observed between calls
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettled means an outcome was reached and the bet was settled
	RoundStateSettled RoundState = "settled"
)

func (r RoundState) String() string {
	return string(r)
}

// canDeal returns true if a new round can start
// A settled round is implicitly idle.
func (r RoundState) canDeal() bool {
	return r == RoundStateIdle || r == RoundStateSettled
}

// inRound returns true while cards are in play and unsettled
func (r RoundState) inRound() bool {
	return r == RoundStatePlayerTurn || r == RoundStateDealerTurn
}
