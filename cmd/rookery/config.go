package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/daystram/rookery/board"
	"github.com/daystram/rookery/engine"
)

// Config holds the command line settings for every mode.
type Config struct {
	Mode     string `validate:"required,oneof=repl uci serve perft selfplay movegen"`
	FEN      string `validate:"required"`
	Depth    int    `validate:"gte=0,lte=8"`
	Games    int    `validate:"gte=1"`
	MaxPlies int    `validate:"gte=1"`
	White    int    `validate:"gte=1,lte=4"`
	Black    int    `validate:"gte=1,lte=4"`
	Seed     uint64
	Addr     string `validate:"required_if=Mode serve,omitempty,hostname_port"`
	LogLevel string `validate:"oneof=debug info warn error fatal"`
	Plain    bool
	History  string
	Profile  bool
}

var validate = validator.New()

func parseConfig(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("rookery", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Mode, "mode", "repl", "run mode: repl, uci, serve, perft, selfplay or movegen")
	fs.StringVar(&cfg.FEN, "fen", board.DefaultStartingPositionFEN, "starting position in perft and movegen mode")
	fs.IntVar(&cfg.Depth, "perft.depth", 4, "perft depth in perft mode")
	fs.IntVar(&cfg.Games, "selfplay.games", 10, "number of games in selfplay mode")
	fs.IntVar(&cfg.MaxPlies, "selfplay.maxplies", 300, "plies before a selfplay game is abandoned")
	fs.IntVar(&cfg.White, "selfplay.white", int(engine.LevelEvaluate), "white computer level in selfplay mode")
	fs.IntVar(&cfg.Black, "selfplay.black", int(engine.LevelRandom), "black computer level in selfplay mode")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "seed for computer players")
	fs.StringVar(&cfg.Addr, "serve.addr", ":8080", "listen address in serve mode")
	fs.StringVar(&cfg.LogLevel, "log.level", "info", "log level: debug, info, warn, error or fatal")
	fs.BoolVar(&cfg.Plain, "plain", false, "draw the board in plain ASCII in repl and movegen mode")
	fs.StringVar(&cfg.History, "history", "", "repl history file")
	fs.BoolVar(&cfg.Profile, "profile", false, "serve pprof endpoint")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	// a trailing FEN may be given without quoting
	if fs.NArg() > 0 {
		cfg.FEN = strings.Join(fs.Args(), " ")
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
