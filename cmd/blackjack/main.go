package main

import (
	"blackjack-server/internal/config"
	"blackjack-server/pkg/playable/blackjack"
	"bufio"
	"errors"
	"flag"
	"fmt"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"io"
	"os"
)

var debug = flag.Bool("debug", false, "dump the full game view after every action")

// lineReader reads one command at a time
type lineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (s *scannerReader) ReadLine() (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return s.scanner.Text(), nil
}

func main() {
	flag.Parse()

	cfg := config.Instance()
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	game, err := blackjack.NewGame(logrus.StandardLogger(), blackjack.Options{
		StartingBalance:    cfg.Game.StartingBalance,
		DefaultBet:         cfg.Game.DefaultBet,
		ReshuffleThreshold: cfg.Game.ReshuffleThreshold,
		Seed:               cfg.Game.Seed,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	var in lineReader
	var out io.Writer = os.Stdout

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			logrus.WithError(err).Fatal("could not put the terminal into raw mode")
		}
		defer func() {
			_ = term.Restore(fd, oldState)
		}()

		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, prompt)
		in, out = t, t
	} else {
		in = &scannerReader{scanner: bufio.NewScanner(os.Stdin), out: out}
	}

	play(game, in, out, cfg.Game.DefaultBet)
}

// play runs the read-eval-print loop until the input ends or the player quits
func play(game *blackjack.Game, in lineReader, out io.Writer, defaultBet int) {
	fmt.Fprintln(out, helpText)
	render(out, game.View())

	for {
		line, err := in.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logrus.WithError(err).Error("could not read input")
			}
			return
		}

		msg, err := parseCommand(line, defaultBet)
		if errors.Is(err, errQuit) {
			return
		}

		if errors.Is(err, errHelp) {
			fmt.Fprintln(out, helpText)
			continue
		}

		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}

		if _, _, err := game.Action(msg); err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}

		view := game.View()
		if *debug {
			logrus.Debug(litter.Sdump(view))
		}

		render(out, view)
	}
}
