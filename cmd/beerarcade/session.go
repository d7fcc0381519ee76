package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/beer-arcade/internal/audio"
	"github.com/vovakirdan/beer-arcade/internal/config"
	"github.com/vovakirdan/beer-arcade/internal/core"
	"github.com/vovakirdan/beer-arcade/internal/games/pour"
	"github.com/vovakirdan/beer-arcade/internal/games/runner"
	"github.com/vovakirdan/beer-arcade/internal/logging"
	"github.com/vovakirdan/beer-arcade/internal/platform/tui"
	"github.com/vovakirdan/beer-arcade/internal/storage"
)

// session holds the collaborators shared by every game started from one
// command. Store and audio failures are not fatal.
type session struct {
	store *storage.Store
	audio audio.Player
	log   *logging.Logger
}

func openSession() (*session, error) {
	logger, err := logging.New(flagLogFile, flagDebug)
	if err != nil {
		return nil, err
	}
	s := &session{log: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("store open failed, scores will not be saved", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}
	s.store = store

	player, err := audio.Open(flagMute, flagVolume)
	if err != nil {
		logger.Warn("audio unavailable, continuing muted", "err", err)
	}
	s.audio = player

	return s, nil
}

func (s *session) options() tui.Options {
	return tui.Options{Store: s.store, Audio: s.audio, Logger: s.log}
}

func (s *session) Close() {
	s.audio.Close()
	if err := s.store.Close(); err != nil {
		s.log.Warn("store close failed", "err", err)
	}
	s.log.Close()
}

// runtimeConfig builds the runtime config from the flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadGameConfig loads the configuration of a game from path (or the
// default search order), applies the difficulty preset and validates it.
func loadGameConfig(gameID, path, difficulty string) (any, config.Source, error) {
	preset := config.ParsePreset(difficulty)
	if difficulty != "" && preset == "" {
		return nil, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}

	switch gameID {
	case runner.ID:
		cfg, src, err := config.LoadRunner(path)
		if err != nil {
			return nil, src, err
		}
		config.ApplyRunnerPreset(&cfg, preset)
		return cfg, src, cfg.Validate()
	case pour.ID:
		cfg, src, err := config.LoadPour(path)
		if err != nil {
			return nil, src, err
		}
		config.ApplyPourPreset(&cfg, preset)
		return cfg, src, cfg.Validate()
	default:
		return nil, "", fmt.Errorf("game %q has no configuration", gameID)
	}
}

// configureGame installs the effective configuration for the next
// instance of gameID. An invalid configuration stops the game from
// starting.
func configureGame(gameID string, logger *logging.Logger) error {
	cfg, src, err := loadGameConfig(gameID, flagConfig, flagDifficulty)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			logger.Error("invalid configuration", "game", gameID, "source", src, "err", err)
		}
		return err
	}
	logger.Info("config loaded", "game", gameID, "source", src, "difficulty", flagDifficulty)

	switch c := cfg.(type) {
	case config.RunnerConfig:
		runner.UseConfig(c)
	case config.PourConfig:
		pour.UseConfig(c)
	}
	return nil
}
