package playable

import (
	"blackjack-server/pkg/deck"
	"fmt"
	"github.com/google/uuid"
	"math"
	"time"
)

// Playable is a game that can be driven by a transport (HTTP, websocket, terminal)
type Playable interface {
	// Action performs with a message
	// If response is not null, that's the response sent directly to the client
	// If updateState is true, the caller should send the new state to the client
	Action(message *PayloadIn) (response *Response, updateState bool, err error)

	// GetState returns the current state of the game
	GetState() *Response

	// Name returns the name of the game
	Name() string
}

// LogMessage is the format a game records log messages in
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// Response is a container for a message sent back to the client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from a client
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetInt returns an integer value for the given key
// JSON numbers arrive as float64 and are only accepted when they hold a whole number that fits in an int.
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		if val != math.Trunc(val) || val < math.MinInt || val >= math.MaxInt {
			return 0, false
		}

		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(cards []deck.Card, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
