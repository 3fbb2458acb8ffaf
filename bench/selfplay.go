package bench

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/rookery/engine"
	"github.com/daystram/rookery/game"
)

var ErrNoGames = errors.New("no games to play")

// DefaultMaxPlies caps a self-play game before it is adjudicated as unfinished.
const DefaultMaxPlies = 300

type SelfPlayConfig struct {
	Games    int
	White    engine.Level
	Black    engine.Level
	Seed     uint64
	MaxPlies int
	Logger   log.Interface
}

// SelfPlayReport summarises a batch of engine-versus-engine games.
type SelfPlayReport struct {
	Games      int
	WhiteScore float64
	BlackScore float64
	Checkmates int
	Stalemates int
	Unfinished int

	PliesMean   float64
	PliesMedian float64
	PliesStdDev float64
	PliesP90    float64
}

func (r SelfPlayReport) String() string {
	return message.NewPrinter(language.English).
		Sprintf("games=%d white=%.1f black=%.1f mate=%d stalemate=%d unfinished=%d plies mean=%.1f median=%.1f stddev=%.1f p90=%.1f",
			r.Games, r.WhiteScore, r.BlackScore, r.Checkmates, r.Stalemates, r.Unfinished,
			r.PliesMean, r.PliesMedian, r.PliesStdDev, r.PliesP90)
}

// SelfPlay runs cfg.Games computer games, each in its own session seeded from cfg.Seed.
func SelfPlay(ctx context.Context, cfg SelfPlayConfig) (SelfPlayReport, error) {
	if cfg.Games <= 0 {
		return SelfPlayReport{}, ErrNoGames
	}
	if cfg.MaxPlies <= 0 {
		cfg.MaxPlies = DefaultMaxPlies
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Log
	}

	report := SelfPlayReport{Games: cfg.Games}
	plies := make(stats.Float64Data, 0, cfg.Games)
	for g := 0; g < cfg.Games; g++ {
		s := game.NewSession(
			game.WithSeed(cfg.Seed+uint64(g)*2),
			game.WithLogger(cfg.Logger),
		)
		if err := s.Start(game.Computer(cfg.White), game.Computer(cfg.Black)); err != nil {
			return SelfPlayReport{}, err
		}

		var ply int
		var outcome game.Outcome
		for ; ply < cfg.MaxPlies && s.InProgress(); ply++ {
			var err error
			if _, outcome, err = s.ComputerMove(ctx); err != nil {
				return SelfPlayReport{}, err
			}
		}
		plies = append(plies, float64(ply))

		switch {
		case s.InProgress():
			report.Unfinished++
			continue
		case outcome.Reason == game.ReasonCheckmate:
			report.Checkmates++
		case outcome.Reason == game.ReasonStalemate:
			report.Stalemates++
		}
		white, black := s.Score()
		report.WhiteScore += white
		report.BlackScore += black

		cfg.Logger.WithFields(log.Fields{
			"game":    g + 1,
			"plies":   ply,
			"outcome": outcome,
		}).Debug("self-play game finished")
	}

	var err error
	if report.PliesMean, err = stats.Mean(plies); err != nil {
		return SelfPlayReport{}, err
	}
	if report.PliesMedian, err = stats.Median(plies); err != nil {
		return SelfPlayReport{}, err
	}
	if report.PliesStdDev, err = stats.StandardDeviation(plies); err != nil {
		return SelfPlayReport{}, err
	}
	if report.PliesP90, err = stats.Percentile(plies, 90); err != nil {
		return SelfPlayReport{}, err
	}
	return report, nil
}
