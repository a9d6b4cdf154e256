package mux

import (
	"blackjack-server/pkg/playable"
	"net/http"
)

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.dealer.State().Data)
	}
}

func (m *Mux) getGameHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.dealer.History())
	}
}

type postGameDealPayload struct {
	// Bet is optional and falls back to the default bet
	Bet *int `json:"bet"`
}

func (m *Mux) postGameDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGameDealPayload
		if r.ContentLength != 0 && !decodeRequest(w, r, &payload) {
			return
		}

		data := playable.AdditionalData{}
		if payload.Bet != nil {
			data["bet"] = *payload.Bet
		}

		m.performAction(w, &playable.PayloadIn{Action: "deal", AdditionalData: data})
	}
}

type postGameFundsPayload struct {
	Amount int `json:"amount"`
}

func (m *Mux) postGameFunds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGameFundsPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		m.performAction(w, &playable.PayloadIn{
			Action:         "add-funds",
			AdditionalData: playable.AdditionalData{"amount": payload.Amount},
		})
	}
}

func (m *Mux) postGameAction(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.performAction(w, &playable.PayloadIn{Action: action})
	}
}

// performAction writes the new view on success
func (m *Mux) performAction(w http.ResponseWriter, msg *playable.PayloadIn) {
	_, state, err := m.dealer.Action(msg)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state.Data)
}
