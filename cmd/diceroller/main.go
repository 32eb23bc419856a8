// Package main provides the interactive dice roller. With arguments it rolls
// them once as a single expression and exits.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/diceroller/internal/command"
	"github.com/cory-johannsen/diceroller/internal/config"
	"github.com/cory-johannsen/diceroller/internal/dice"
	"github.com/cory-johannsen/diceroller/internal/observability"
	"github.com/cory-johannsen/diceroller/internal/repl"
	"github.com/cory-johannsen/diceroller/internal/report"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	session, err := newSession(cfg, logger)
	if err != nil {
		logger.Fatal("building session", zap.Error(err))
	}

	if args := flag.Args(); len(args) > 0 {
		if err := session.RollLine(command.Normalize(strings.Join(args, " "))); err != nil {
			logger.Fatal("rolling", zap.Error(err))
		}
		return
	}

	if err := session.Run(); err != nil {
		logger.Fatal("console", zap.Error(err))
	}
}

// newSession wires the parser, roller, and console from cfg.
func newSession(cfg config.Config, logger *zap.Logger) (*repl.Session, error) {
	merge, err := dice.ParseMergePolicy(cfg.Roller.Merge)
	if err != nil {
		return nil, err
	}
	parser := dice.Parser{Merge: merge, MaxDice: cfg.Roller.MaxDice}

	src := dice.NewCryptoSource()
	if cfg.Roller.Seed != 0 {
		src = dice.NewSeededSource(cfg.Roller.Seed)
		logger.Info("using seeded dice", zap.Uint64("seed", cfg.Roller.Seed))
	}
	roller := dice.NewLoggedRoller(src, logger)

	opts := repl.Options{
		Banner: cfg.Console.Banner,
		Strict: cfg.Console.Strict,
		Report: report.Options{Color: cfg.Console.Color},
	}
	return repl.NewSession(os.Stdin, os.Stdout, command.DefaultRegistry(), parser, roller, opts, logger), nil
}
