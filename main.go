package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnumber/internal/config"
	"github.com/robalobadob/guessnumber/internal/console"
	"github.com/robalobadob/guessnumber/internal/daily"
	"github.com/robalobadob/guessnumber/internal/game"
	"github.com/robalobadob/guessnumber/internal/oracle"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("parse config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src, err := newSource(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("random source")
	}

	s, err := game.New(cfg.Game(), src,
		console.NewReader(os.Stdin),
		console.NewWriter(os.Stdout),
		game.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	if _, err := s.Run(); err != nil {
		log.Fatal().Err(err).Str("session", s.ID()).Msg("game aborted")
	}
}

// newSource picks the daily source when enabled, otherwise a fresh
// crypto-seeded generator.
func newSource(cfg config.Config) (oracle.Source, error) {
	if cfg.Daily {
		log.Debug().Str("date", daily.DateKey(time.Now())).Msg("daily mode")
		return daily.NewSource(time.Now(), cfg.DailySalt), nil
	}
	return oracle.NewSource()
}
