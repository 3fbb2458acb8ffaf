package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/daystram/rookery/bench"
	"github.com/daystram/rookery/engine"
	"github.com/daystram/rookery/game"
	"github.com/daystram/rookery/repl"
	"github.com/daystram/rookery/server"
	"github.com/daystram/rookery/uci"
)

const (
	exitOK  = 0
	exitErr = 1
)

func main() {
	err := realMain(os.Args[1:])
	if err != nil {
		log.WithError(err).Error("exiting")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Infof("starting pprof endpoint: http://%s/debug/pprof", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	cfg, err := parseConfig(args, os.Stderr)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(level)

	if cfg.Profile {
		runProfiler()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Mode {
	case "uci":
		return uci.NewInterface(os.Stdin, os.Stdout, log.Log).Run(ctx)
	case "serve":
		return serve(ctx, cfg)
	case "perft":
		return perft(cfg)
	case "selfplay":
		return selfPlay(ctx, cfg)
	case "movegen":
		return movegen(os.Stdout, cfg.FEN, cfg.Plain)
	default:
		s := game.NewSession(
			game.WithSeed(cfg.Seed),
			game.WithLogger(log.Log),
		)
		return repl.NewInterface(s, os.Stdout, repl.Options{
			Plain:       cfg.Plain,
			HistoryFile: cfg.History,
		}, log.Log).Run(ctx)
	}
}

func serve(ctx context.Context, cfg *Config) error {
	srv := server.New(
		server.WithLogger(log.Log),
		server.WithSeed(cfg.Seed),
	)
	go func() {
		<-ctx.Done()
		log.Info("received shutdown signal")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.WithError(err).Warn("HTTP server shutdown")
		}
	}()
	return srv.Start(cfg.Addr)
}

func perft(cfg *Config) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			fmt.Println(line)
		}
	}()
	log.Infof("============ perft(%d)", cfg.Depth)
	_, err := bench.Perft(cfg.Depth, cfg.FEN, true, true, out)
	close(out)
	<-done
	return err
}

func selfPlay(ctx context.Context, cfg *Config) error {
	report, err := bench.SelfPlay(ctx, bench.SelfPlayConfig{
		Games:    cfg.Games,
		White:    engine.Level(cfg.White),
		Black:    engine.Level(cfg.Black),
		Seed:     cfg.Seed,
		MaxPlies: cfg.MaxPlies,
		Logger:   log.Log,
	})
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}
