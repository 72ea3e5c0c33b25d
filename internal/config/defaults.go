package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Variant: "classic",
		Players: PlayersConfig{
			Player1: PlayerConfig{Name: "Red", Color: "red"},
			Player2: PlayerConfig{Name: "Yellow", Color: "yellow"},
		},
		UI: UIConfig{
			Disc:         "●",
			Empty:        "·",
			ShowHelp:     true,
			HighlightWin: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
