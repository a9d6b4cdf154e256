package main

import (
	"blackjack-server/pkg/playable"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const prompt = "> "

const helpText = `Commands:
  d, deal [bet]      deal a new round
  h, hit             take a card
  s, stand           let the dealer play
  a, add <amount>    add funds
  ?, help            show this message
  q, quit            leave the table`

var errQuit = errors.New("quit")
var errHelp = errors.New("help")

// parseCommand turns a line of input into an action payload
func parseCommand(line string, defaultBet int) (*playable.PayloadIn, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, errHelp
	}

	switch fields[0] {
	case "d", "deal":
		bet := defaultBet
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("bet must be a number: %s", fields[1])
			}

			bet = n
		}

		return &playable.PayloadIn{Action: "deal", AdditionalData: playable.AdditionalData{"bet": bet}}, nil
	case "h", "hit":
		return &playable.PayloadIn{Action: "hit"}, nil
	case "s", "stand":
		return &playable.PayloadIn{Action: "stand"}, nil
	case "a", "add":
		if len(fields) < 2 {
			return nil, errors.New("add needs an amount")
		}

		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("amount must be a number: %s", fields[1])
		}

		return &playable.PayloadIn{Action: "add-funds", AdditionalData: playable.AdditionalData{"amount": n}}, nil
	case "?", "help":
		return nil, errHelp
	case "q", "quit", "exit":
		return nil, errQuit
	}

	return nil, fmt.Errorf("unknown command: %s (type help for a list)", fields[0])
}
