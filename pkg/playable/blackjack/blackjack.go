package blackjack

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/playable"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const idleMessage = "Set your bet and press Deal to start."

// Game is a single-seat game of Blackjack against the dealer
// A Game is not safe for concurrent use. Every method runs to completion before the next call.
type Game struct {
	options Options
	shoe    *deck.Shoe
	ledger  Ledger
	state   RoundState
	logger  logrus.FieldLogger

	// draw takes the next card off the shoe
	draw func(*deck.Shoe) (deck.Card, error)

	roundID    string
	playerHand deck.Hand
	dealerHand deck.Hand
	outcome    Outcome
	message    string
	log        []*playable.LogMessage
	history    []*RoundRecord
}

// NewGame returns a new game
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.StartingBalance < 0 {
		return nil, errors.New("starting balance cannot be negative")
	}

	if options.DefaultBet < 0 {
		return nil, errors.New("default bet cannot be negative")
	}

	var generator rng.Generator = rng.Crypto{}
	if options.Seed != 0 {
		generator = rng.NewSeeded(options.Seed)
	}

	return &Game{
		options: options,
		shoe:    deck.NewShoe(generator, options.ReshuffleThreshold),
		ledger:  NewLedger(options.StartingBalance),
		state:   RoundStateIdle,
		logger:  logger,
		draw:    (*deck.Shoe).Draw,
		message: idleMessage,
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Blackjack"
}

// Key returns a unique key
func (g *Game) Key() string {
	return "blackjack"
}

// State returns the current round state
func (g *Game) State() RoundState {
	return g.state
}

// Ledger returns a copy of the ledger
func (g *Game) Ledger() Ledger {
	return g.ledger
}

// StartRound locks in the bet and deals two cards each to the player and the dealer
// A natural 21 for the player settles the round immediately.
func (g *Game) StartRound(bet int) error {
	if !g.state.canDeal() {
		return IllegalActionError{Action: ActionDeal, State: g.state}
	}

	if err := g.ledger.validateBet(bet); err != nil {
		return err
	}

	reshuffled := g.shoe.NeedsReshuffle()
	if reshuffled {
		cardsLeft := g.shoe.CardsLeft()
		g.shoe.Reshuffle()
		g.logger.WithFields(logrus.Fields{
			"cardsLeft": cardsLeft,
			"shoe":      g.shoe.HashCode(),
		}).Info("reshuffled the shoe")
	}

	playerHand := make(deck.Hand, 0, 5)
	dealerHand := make(deck.Hand, 0, 5)

	// player, player, dealer, dealer
	for _, hand := range []*deck.Hand{&playerHand, &playerHand, &dealerHand, &dealerHand} {
		card, err := g.drawCard(playerHand, dealerHand)
		if err != nil {
			return err
		}

		hand.AddCard(card)
	}

	g.roundID = uuid.New().String()
	g.playerHand = playerHand
	g.dealerHand = dealerHand
	g.outcome = OutcomeNone
	g.message = ""
	g.log = nil
	g.ledger.CurrentBet = bet

	if reshuffled {
		g.sendLogMessage(nil, "The shoe was reshuffled")
	}

	g.state = RoundStatePlayerTurn
	g.logger.WithFields(logrus.Fields{
		"round":  g.roundID,
		"bet":    bet,
		"player": g.playerHand.String(),
	}).Debug("round started")
	g.sendLogMessage(g.playerHand.Clone(), "Player dealt %s", describeTotal(g.playerHand))

	if IsNatural(g.playerHand) {
		g.settle(OutcomeBlackjack)
	}

	return nil
}

// Hit draws a card for the player
// Going over 21 settles the round as a bust. A 21 reached by hitting still needs a Stand().
func (g *Game) Hit() error {
	if g.state != RoundStatePlayerTurn {
		return IllegalActionError{Action: ActionHit, State: g.state}
	}

	card, err := g.drawCard(g.playerHand, g.dealerHand)
	if err != nil {
		return err
	}

	g.playerHand.AddCard(card)
	g.sendLogMessage([]deck.Card{card}, "Player hit for %s", describeTotal(g.playerHand))

	if IsBust(g.playerHand) {
		g.settle(OutcomePlayerBust)
	}

	return nil
}

// Stand ends the player's turn
// The dealer draws until reaching at least 17, then the round is settled.
func (g *Game) Stand() error {
	if g.state != RoundStatePlayerTurn {
		return IllegalActionError{Action: ActionStand, State: g.state}
	}

	dealerHand := g.dealerHand.Clone()
	var drawn []deck.Card
	for HandTotal(dealerHand) < dealerStandsOn {
		card, err := g.drawCard(g.playerHand, dealerHand)
		if err != nil {
			return err
		}

		dealerHand.AddCard(card)
		drawn = append(drawn, card)
	}

	g.state = RoundStateDealerTurn
	g.sendLogMessage(nil, "Player stands on %s", describeTotal(g.playerHand))

	for _, card := range drawn {
		g.dealerHand.AddCard(card)
		g.sendLogMessage([]deck.Card{card}, "Dealer drew for %s", describeTotal(g.dealerHand))
	}

	g.settle(compareTotals(HandTotal(g.playerHand), HandTotal(g.dealerHand)))
	return nil
}

// AddFunds tops up the balance
// This is allowed at any time and does not count toward the session net.
func (g *Game) AddFunds(amount int) error {
	if err := g.ledger.addFunds(amount); err != nil {
		return err
	}

	g.logger.WithFields(logrus.Fields{
		"amount":  amount,
		"balance": g.ledger.Balance,
	}).Debug("funds added")

	return nil
}

// settle must be called exactly once per round
func (g *Game) settle(outcome Outcome) {
	g.outcome = outcome
	delta := g.ledger.settle(outcome)
	g.message = outcome.Message(g.ledger.CurrentBet)
	g.state = RoundStateSettled
	g.sendLogMessage(nil, "%s", g.message)
	g.recordRound(delta)

	g.logger.WithFields(logrus.Fields{
		"round":       g.roundID,
		"outcome":     outcome.String(),
		"bet":         g.ledger.CurrentBet,
		"delta":       delta,
		"balance":     g.ledger.Balance,
		"sessionNet":  g.ledger.SessionNet,
		"playerTotal": HandTotal(g.playerHand),
		"dealerTotal": HandTotal(g.dealerHand),
	}).Info("round settled")
}

// drawCard will draw a card and it should always succeed
// If the shoe runs dry mid-round, it is rebuilt without the cards on the table.
func (g *Game) drawCard(table ...deck.Hand) (deck.Card, error) {
	if !g.shoe.CanDraw(1) {
		g.logger.WithField("round", g.roundID).Warn("shoe ran out mid-round, rebuilding without the cards on the table")
		g.shoe.Reshuffle()

		for _, hand := range table {
			for _, card := range hand {
				g.shoe.RemoveCard(card)
			}
		}
	}

	card, err := g.draw(g.shoe)
	if err != nil {
		g.logger.WithError(err).WithField("round", g.roundID).Error("could not draw a card")
		return deck.Card{}, fmt.Errorf("could not draw a card: %w", err)
	}

	return card, nil
}

func (g *Game) sendLogMessage(cards []deck.Card, format string, a ...interface{}) {
	g.log = append(g.log, playable.SimpleLogMessage(cards, format, a...))
}

// Action performs with a message
// This maps a transport payload to StartRound, Hit, Stand or AddFunds
func (g *Game) Action(message *playable.PayloadIn) (response *playable.Response, updateState bool, err error) {
	action, err := ActionFromString(message.Action)
	if err != nil {
		return nil, false, err
	}

	switch action {
	case ActionDeal:
		bet := g.options.DefaultBet
		if _, ok := message.AdditionalData["bet"]; ok {
			if bet, ok = message.AdditionalData.GetInt("bet"); !ok {
				return nil, false, fmt.Errorf("%w: must be a whole number", ErrInvalidBet)
			}
		}

		err = g.StartRound(bet)
	case ActionHit:
		err = g.Hit()
	case ActionStand:
		err = g.Stand()
	case ActionAddFunds:
		if _, ok := message.AdditionalData["amount"]; !ok {
			return nil, false, fmt.Errorf("%w: an amount is required", ErrInvalidAmount)
		}

		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return nil, false, fmt.Errorf("%w: must be a whole number", ErrInvalidAmount)
		}

		err = g.AddFunds(amount)
	}

	if err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetState returns the current view of the game
func (g *Game) GetState() *playable.Response {
	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  g.View(),
	}
}
