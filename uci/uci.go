package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/daystram/rookery/bench"
	"github.com/daystram/rookery/board"
	"github.com/daystram/rookery/engine"
)

var (
	EngineName   = "Rookery"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		level:         engine.LevelEvaluate,
		seed:          0,
		parallelPerft: true,
	}
)

type options struct {
	level         engine.Level
	seed          uint64
	parallelPerft bool
}

type Interface struct {
	board   *board.Board
	engine  *engine.Engine
	options options

	in     io.Reader
	out    io.Writer
	logger log.Interface
}

func NewInterface(in io.Reader, out io.Writer, logger log.Interface) *Interface {
	if logger == nil {
		logger = log.Log
	}
	return &Interface{
		options: defaultOptions,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Run serves commands until quit or the input is exhausted.
func (i *Interface) Run(ctx context.Context) error {
	i.reset(ctx)

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch args := strings.Fields(cmd); args[0] {
		case "uci":
			i.commandUCI(ctx)
		case "ucinewgame":
			i.reset(ctx)
		case "isready":
			i.commandReady(ctx)
		case "setoption":
			i.commandSetOption(ctx, args[1:])
		case "position":
			i.commandPosition(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "go":
			i.commandGo(ctx, args[1:])
		case "stop":
			// search is synchronous, nothing to stop
		case "quit":
			return nil
		default:
			i.logger.WithField("command", args[0]).Debug("unknown command")
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Level type spin default %d min %d max %d",
		defaultOptions.level, engine.LevelRandom, engine.LevelEvaluate))
	i.println(fmt.Sprintf("option name Seed type spin default %d min 0 max %d", defaultOptions.seed, uint32(1<<31-1)))
	i.println("uciok")
}

func (i *Interface) commandReady(_ context.Context) {
	if i.board != nil && i.engine != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(ctx context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "level":
		value, err := strconv.ParseUint(valueStr, 10, 8)
		if err != nil || !engine.Level(value).Valid() {
			return
		}
		i.options.level = engine.Level(value)
	case "seed":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil {
			return
		}
		i.options.seed = value
	default:
		return
	}
	i.resetEngine(ctx)
}

// commandPosition handles "startpos" or "fen <fen>", optionally followed by "moves ...".
// The board is only replaced when every move applies.
func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	var rest []string
	switch args[0] {
	case "fen":
		end := len(args)
		for j, a := range args {
			if a == "moves" {
				end = j
				break
			}
		}
		fen = strings.Join(args[1:end], " ")
		rest = args[end:]
	case "startpos":
		fen = board.DefaultStartingPositionFEN
		rest = args[1:]
	default:
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.logger.WithError(err).Warn("rejected position")
		return
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, s := range rest[1:] {
			mv, err := board.NewMoveFromUCI(s)
			if err != nil || !b.ApplyMove(mv) {
				i.logger.WithField("move", s).Warn("rejected move")
				return
			}
		}
	}
	i.board = b
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.board.Dump())
	i.println(fmt.Sprintf("Fen: %s", i.board.FEN()))
}

func (i *Interface) commandGo(ctx context.Context, args []string) {
	if len(args) > 0 {
		switch mode := args[0]; mode {
		case "perft":
			if len(args) != 2 {
				return
			}
			depth, err := strconv.Atoi(args[1])
			if err != nil || depth < 0 {
				return
			}

			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for s := range out {
					i.println(s)
				}
			}()
			_, _ = bench.Perft(depth, i.board.FEN(), i.options.parallelPerft, true, out)
			close(out)
			<-done
			return
		}
		// other search limits do not apply to a single-ply selector
	}

	bestMove, err := i.engine.Search(ctx, i.board)
	if err != nil {
		i.logger.WithError(err).Warn("search failed")
		i.println("bestmove 0000")
		return
	}
	i.println(fmt.Sprintf("info nodes %d score cp %d", i.engine.Nodes(),
		engine.Evaluate(i.board.After(bestMove), i.board.Turn())))
	i.println(fmt.Sprintf("bestmove %s", bestMove.UCI()))
}

func (i *Interface) reset(ctx context.Context) {
	i.commandPosition(ctx, []string{"startpos"})
	i.resetEngine(ctx)
}

func (i *Interface) resetEngine(_ context.Context) {
	e, err := engine.NewEngine(&engine.EngineConfig{
		Level:  i.options.level,
		Seed:   i.options.seed,
		Logger: i.logger,
	})
	if err != nil {
		i.logger.WithError(err).Error("cannot create engine")
		return
	}
	i.engine = e
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
