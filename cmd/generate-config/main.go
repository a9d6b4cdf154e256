package main

import (
	"blackjack-server/internal/config"
	"gopkg.in/yaml.v2"
	"os"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
