package blackjack

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action is something the player can ask the engine to do
type Action int

// MarshalJSON encodes the JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(a),
		Name: a.String(),
	})
}

// Action constants
const (
	ActionDeal Action = iota
	ActionHit
	ActionStand
	ActionAddFunds
)

func (a Action) String() string {
	switch a {
	case ActionDeal:
		return "deal"
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionAddFunds:
		return "add-funds"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from its name
func ActionFromString(action string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "deal":
		return ActionDeal, nil
	case "hit":
		return ActionHit, nil
	case "stand":
		return ActionStand, nil
	case "add-funds":
		return ActionAddFunds, nil
	}

	return -1, fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

// getActions returns the actions that are legal in the current state
func (g *Game) getActions() []Action {
	switch g.state {
	case RoundStateIdle, RoundStateSettled:
		return []Action{ActionDeal, ActionAddFunds}
	case RoundStatePlayerTurn:
		return []Action{ActionHit, ActionStand, ActionAddFunds}
	}

	return []Action{ActionAddFunds}
}
