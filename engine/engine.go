package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"

	"github.com/daystram/rookery/board"
)

var (
	ErrNoMoves      = errors.New("no legal moves")
	ErrInvalidLevel = errors.New("invalid level")
)

// Level picks the move selection strategy.
type Level uint8

const (
	LevelUnknown Level = iota
	LevelRandom
	LevelGreedy
	LevelCautious
	LevelEvaluate
)

func (l Level) String() string {
	switch l {
	case LevelRandom:
		return "random"
	case LevelGreedy:
		return "greedy"
	case LevelCautious:
		return "cautious"
	case LevelEvaluate:
		return "evaluate"
	default:
		return ""
	}
}

func (l Level) Valid() bool {
	return LevelRandom <= l && l <= LevelEvaluate
}

type EngineConfig struct {
	Level  Level
	Seed   uint64
	Logger log.Interface
}

type Engine struct {
	level  Level
	rand   *PseudoRand
	logger log.Interface

	nodes uint32
}

func NewEngine(cfg *EngineConfig) (*Engine, error) {
	if cfg.Level == LevelUnknown {
		cfg.Level = LevelEvaluate
	}
	if !cfg.Level.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, cfg.Level)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Log
	}

	return &Engine{
		level:  cfg.Level,
		rand:   NewPseudoRand(cfg.Seed),
		logger: cfg.Logger,
	}, nil
}

func (e *Engine) Level() Level {
	return e.level
}

// Nodes returns how many candidate positions the last search looked at.
func (e *Engine) Nodes() uint32 {
	return e.nodes
}

// Search picks a move for the side to move on b using the engine's level. b is not modified.
func (e *Engine) Search(ctx context.Context, b *board.Board) (board.Move, error) {
	e.nodes = 0
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoMoves
	}

	var mv board.Move
	var err error
	switch e.level {
	case LevelRandom:
		mv = e.pick(mvs)
	case LevelGreedy:
		mv = e.bestMoveGreedy(b, mvs)
	case LevelCautious:
		mv = e.bestMoveCautious(b, mvs)
	default:
		var score int32
		mv, score, err = e.bestMoveEvaluate(ctx, b, mvs)
		if err != nil {
			return board.Move{}, err
		}
		e.logger.WithFields(log.Fields{"score": score, "nodes": e.nodes}).Debug("evaluated")
	}

	e.logger.WithFields(log.Fields{
		"level": e.level,
		"side":  b.Turn(),
		"move":  mv.UCI(),
		"moves": len(mvs),
	}).Debug("selected move")
	return mv, nil
}

// RandomMove picks uniformly among the legal moves.
func (e *Engine) RandomMove(b *board.Board) (board.Move, error) {
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoMoves
	}
	return e.pick(mvs), nil
}

// BestMoveLevel2 prefers captures, then checks, then anything else.
func (e *Engine) BestMoveLevel2(b *board.Board) (board.Move, error) {
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoMoves
	}
	return e.bestMoveGreedy(b, mvs), nil
}

// BestMoveLevel3 also weighs whether the destination square is safe after the move.
func (e *Engine) BestMoveLevel3(b *board.Board) (board.Move, error) {
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoMoves
	}
	return e.bestMoveCautious(b, mvs), nil
}

// BestMoveLevel4 returns the move with the highest static evaluation. Ties go to the move
// generated first.
func (e *Engine) BestMoveLevel4(ctx context.Context, b *board.Board) (board.Move, error) {
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoMoves
	}
	mv, _, err := e.bestMoveEvaluate(ctx, b, mvs)
	return mv, err
}

func (e *Engine) pick(mvs []board.Move) board.Move {
	return mvs[e.rand.Intn(len(mvs))]
}

// pickFirstBucket picks randomly from the first non-empty bucket.
func (e *Engine) pickFirstBucket(buckets ...[]board.Move) board.Move {
	for _, bucket := range buckets {
		if len(bucket) > 0 {
			return e.pick(bucket)
		}
	}
	return board.Move{}
}

func (e *Engine) bestMoveGreedy(b *board.Board, mvs []board.Move) board.Move {
	var captures, checks, others []board.Move
	for _, mv := range mvs {
		e.nodes++
		switch {
		case b.IsCapture(mv):
			captures = append(captures, mv)
		case b.GivesCheck(mv):
			checks = append(checks, mv)
		default:
			others = append(others, mv)
		}
	}
	return e.pickFirstBucket(captures, checks, others)
}

const (
	bucketSafeCaptureCheck = iota
	bucketSafeCapture
	bucketSafeCheck
	bucketSafeOther
	bucketUnsafeCapture
	bucketUnsafeCheck
	bucketUnsafeOther
	bucketCount
)

func (e *Engine) bestMoveCautious(b *board.Board, mvs []board.Move) board.Move {
	var buckets [bucketCount][]board.Move
	mover := b.Turn()
	for _, mv := range mvs {
		e.nodes++
		bb := b.After(mv)
		isCapture := b.IsCapture(mv)
		isCheck := bb.IsInCheck(mover.Opposite())
		isSafe := !bb.IsSquareAttacked(mv.To, mover)

		var bucket int
		switch {
		case isSafe && isCapture && isCheck:
			bucket = bucketSafeCaptureCheck
		case isSafe && isCapture:
			bucket = bucketSafeCapture
		case isSafe && isCheck:
			bucket = bucketSafeCheck
		case isSafe:
			bucket = bucketSafeOther
		case isCapture:
			bucket = bucketUnsafeCapture
		case isCheck:
			bucket = bucketUnsafeCheck
		default:
			bucket = bucketUnsafeOther
		}
		buckets[bucket] = append(buckets[bucket], mv)
	}
	return e.pickFirstBucket(buckets[:]...)
}

func (e *Engine) bestMoveEvaluate(ctx context.Context, b *board.Board, mvs []board.Move) (board.Move, int32, error) {
	mover := b.Turn()
	bestMove, bestScore := mvs[0], int32(0)
	for i, mv := range mvs {
		if err := ctx.Err(); err != nil {
			return board.Move{}, 0, err
		}
		e.nodes++
		score := Evaluate(b.After(mv), mover)
		if i == 0 || score > bestScore {
			bestMove, bestScore = mv, score
		}
	}
	return bestMove, bestScore, nil
}
