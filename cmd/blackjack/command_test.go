package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_parseCommand(t *testing.T) {
	a := assert.New(t)

	msg, err := parseCommand("deal", 50)
	a.NoError(err)
	a.Equal("deal", msg.Action)
	bet, _ := msg.AdditionalData.GetInt("bet")
	a.Equal(50, bet)

	msg, err = parseCommand("  D 125 ", 50)
	a.NoError(err)
	bet, _ = msg.AdditionalData.GetInt("bet")
	a.Equal(125, bet)

	_, err = parseCommand("deal lots", 50)
	a.EqualError(err, "bet must be a number: lots")

	msg, err = parseCommand("h", 50)
	a.NoError(err)
	a.Equal("hit", msg.Action)

	msg, err = parseCommand("stand", 50)
	a.NoError(err)
	a.Equal("stand", msg.Action)

	msg, err = parseCommand("add 500", 50)
	a.NoError(err)
	a.Equal("add-funds", msg.Action)
	amount, _ := msg.AdditionalData.GetInt("amount")
	a.Equal(500, amount)

	_, err = parseCommand("add", 50)
	a.EqualError(err, "add needs an amount")

	_, err = parseCommand("", 50)
	a.ErrorIs(err, errHelp)

	_, err = parseCommand("q", 50)
	a.ErrorIs(err, errQuit)

	_, err = parseCommand("split", 50)
	a.EqualError(err, "unknown command: split (type help for a list)")
}
