package mux

import (
	"blackjack-server/pkg/room"
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	dealer  *room.Dealer
}

// NewMux returns a new HTTP mux
func NewMux(version string, dealer *room.Dealer) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		dealer:  dealer,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	gr := r.PathPrefix("/game").Subrouter()
	gr.Methods(http.MethodGet).Path("").Handler(this.getGame())
	gr.Methods(http.MethodGet).Path("/history").Handler(this.getGameHistory())
	gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameWS())
	gr.Methods(http.MethodPost).Path("/deal").Handler(this.postGameDeal())
	gr.Methods(http.MethodPost).Path("/hit").Handler(this.postGameAction("hit"))
	gr.Methods(http.MethodPost).Path("/stand").Handler(this.postGameAction("stand"))
	gr.Methods(http.MethodPost).Path("/funds").Handler(this.postGameFunds())

	return this
}
