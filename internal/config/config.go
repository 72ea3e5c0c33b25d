// Package config provides YAML-based configuration loading for the game:
// default variant, player names and colors, and display options.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/registry"
)

// Config contains all user-configurable settings.
type Config struct {
	Variant string        `yaml:"variant"`
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	UI      UIConfig      `yaml:"ui"`
}

// BoardConfig optionally overrides the variant's board size.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// PlayersConfig holds both seats' display attributes.
type PlayersConfig struct {
	Player1 PlayerConfig `yaml:"player1"`
	Player2 PlayerConfig `yaml:"player2"`
}

// PlayerConfig defines how a player is shown.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // Color name, ANSI index, or hex
}

// UIConfig defines display options for the board view.
type UIConfig struct {
	Disc         string `yaml:"disc"`  // Single character drawn for a piece
	Empty        string `yaml:"empty"` // Single character drawn for a free cell
	ShowHelp     bool   `yaml:"show_help"`
	HighlightWin bool   `yaml:"highlight_win"`
}

// MaxBoardSize caps both board dimensions; each column needs a one-character label.
const MaxBoardSize = 35

// HasCustomBoard reports whether an explicit board size overrides the variant.
func (c Config) HasCustomBoard() bool {
	return c.Board.Height > 0 && c.Board.Width > 0
}

// ResolveVariant returns the board to play: the explicit size if set,
// otherwise the configured variant.
func (c Config) ResolveVariant() (registry.Variant, error) {
	if c.HasCustomBoard() {
		return registry.Custom(c.Board.Height, c.Board.Width), nil
	}
	return registry.Lookup(c.Variant)
}

// ErrBoardTooLarge reports a board dimension above MaxBoardSize.
var ErrBoardTooLarge = errors.New("board dimensions exceed the maximum")

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error

	if c.Board != (BoardConfig{}) {
		// Either both dimensions are set or neither is.
		if c.Board.Height <= 0 || c.Board.Width <= 0 {
			errs = append(errs, fmt.Errorf("board: %w, got %dx%d", connect4.ErrInvalidDimension, c.Board.Height, c.Board.Width))
		} else if c.Board.Height > MaxBoardSize || c.Board.Width > MaxBoardSize {
			errs = append(errs, fmt.Errorf("board: %w, got %dx%d (max %d)", ErrBoardTooLarge, c.Board.Height, c.Board.Width, MaxBoardSize))
		}
	}
	if !c.HasCustomBoard() && !registry.Exists(c.Variant) {
		errs = append(errs, fmt.Errorf("unknown variant %q", c.Variant))
	}

	seats := []struct {
		label string
		p     PlayerConfig
	}{
		{"player1", c.Players.Player1},
		{"player2", c.Players.Player2},
	}
	for _, s := range seats {
		if s.p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is empty", s.label))
		}
		if _, err := core.ParseColor(s.p.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.label, err))
		}
	}

	if utf8.RuneCountInString(c.UI.Disc) != 1 {
		errs = append(errs, fmt.Errorf("ui.disc must be a single character, got %q", c.UI.Disc))
	}
	if utf8.RuneCountInString(c.UI.Empty) != 1 {
		errs = append(errs, fmt.Errorf("ui.empty must be a single character, got %q", c.UI.Empty))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
