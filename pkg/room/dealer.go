package room

import (
	"blackjack-server/pkg/playable"
	"blackjack-server/pkg/playable/blackjack"
	"github.com/sirupsen/logrus"
	"sync"
)

// Dealer owns the one game at the table
// The game itself is not safe for concurrent use, so every call into it goes through the dealer's lock.
type Dealer struct {
	lock    sync.Mutex
	game    *blackjack.Game
	clients map[*Client]bool
	logger  logrus.FieldLogger
}

// NewDealer creates a new dealer object
func NewDealer(logger logrus.FieldLogger, game *blackjack.Game) *Dealer {
	return &Dealer{
		game:    game,
		clients: make(map[*Client]bool),
		logger:  logger,
	}
}

// AddClient adds a client and sends it the current state
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	defer d.lock.Unlock()

	client.dealer = d
	d.clients[client] = true
	d.logger.WithField("client", client.String()).Debug("client connected")

	client.Send(d.game.GetState())
}

// RemoveClient removes a client
func (d *Dealer) RemoveClient(client *Client) {
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.clients, client)
	d.logger.WithField("client", client.String()).Debug("client disconnected")
}

// Action performs the action against the game
// On success, the new state is returned and sent to every connected client
func (d *Dealer) Action(msg *playable.PayloadIn) (response *playable.Response, state *playable.Response, err error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	response, updateState, err := d.game.Action(msg)
	if err != nil {
		return nil, nil, err
	}

	state = d.game.GetState()
	if updateState {
		d.sendGameData(state)
	}

	return response, state, nil
}

// State returns the current state of the game
func (d *Dealer) State() *playable.Response {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.game.GetState()
}

// History returns the settled rounds
func (d *Dealer) History() []*blackjack.RoundRecord {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.game.History()
}

// ReceivedMessage is called when a client sends an action
// Errors are sent back to that client only
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	response, _, err := d.Action(msg)
	if err != nil {
		log := d.logger.WithError(err).WithField("client", c.String())
		if blackjack.IsUserError(err) {
			log.Debug("rejected action")
		} else {
			log.Error("could not perform action")
		}

		c.Send(&playable.Response{
			Key:     "error",
			Value:   err.Error(),
			Context: msg.Context,
		})
		return
	}

	c.Send(response)
}

// NOTE: the lock must be held
func (d *Dealer) sendGameData(state *playable.Response) {
	for client := range d.clients {
		if !client.Send(state) {
			d.logger.WithField("client", client.String()).Warn("client buffer is full, dropping state")
		}
	}
}
