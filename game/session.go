package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/google/uuid"

	"github.com/daystram/rookery/board"
	"github.com/daystram/rookery/engine"
	"github.com/daystram/rookery/position"
)

var (
	ErrNoGame           = errors.New("no game in progress")
	ErrGameInProgress   = errors.New("game already in progress")
	ErrSetupMode        = errors.New("not allowed in setup mode")
	ErrNotSetupMode     = errors.New("not in setup mode")
	ErrIllegalMove      = errors.New("illegal move")
	ErrComputerTurn     = errors.New("side to move is a computer")
	ErrHumanTurn        = errors.New("side to move is a human")
	ErrInvalidPlacement = errors.New("invalid placement")
)

// Session runs consecutive games between two players and keeps the running score.
// A Session is not safe for concurrent use.
type Session struct {
	id     uuid.UUID
	seed   uint64
	logger log.Interface

	board      *board.Board
	inProgress bool
	players    [2]Player
	engines    [2]*engine.Engine
	last       Outcome

	setup    *board.Board // non-nil while in setup mode
	prepared *board.Board // validated setup used by the next Start

	score [2]float64
}

type SessionOption func(*Session)

func WithLogger(l log.Interface) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithSeed seeds the computer players. Each side gets its own stream.
func WithSeed(seed uint64) SessionOption {
	return func(s *Session) {
		s.seed = seed
	}
}

func WithID(id uuid.UUID) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.New(),
		logger: log.Log,
	}
	for _, f := range opts {
		f(s)
	}
	s.logger = s.logger.WithField("session", s.id.String())
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) InProgress() bool {
	return s.inProgress
}

func (s *Session) InSetup() bool {
	return s.setup != nil
}

// Board returns a copy of the current game board, or of the setup board in setup mode.
// It is nil before the first game.
func (s *Session) Board() *board.Board {
	switch {
	case s.setup != nil:
		return s.setup.Clone()
	case s.board != nil:
		return s.board.Clone()
	default:
		return nil
	}
}

func (s *Session) Players() (Player, Player) {
	return s.players[board.SideWhite], s.players[board.SideBlack]
}

// Last returns the outcome of the latest move, resignation or game start.
func (s *Session) Last() Outcome {
	return s.last
}

// ToMove returns the player whose turn it is.
func (s *Session) ToMove() (Player, error) {
	if !s.inProgress {
		return Player{}, ErrNoGame
	}
	return s.players[s.board.Turn()], nil
}

// Score returns the accumulated score. A win is worth 1 and a stalemate 0.5 to each side.
func (s *Session) Score() (float64, float64) {
	return s.score[board.SideWhite], s.score[board.SideBlack]
}

// Start begins a game from the standard position, or from the last completed setup.
func (s *Session) Start(white, black Player) error {
	if s.inProgress {
		return ErrGameInProgress
	}
	if s.setup != nil {
		return ErrSetupMode
	}

	var b *board.Board
	if s.prepared != nil {
		b = s.prepared
		s.prepared = nil
	} else {
		var err error
		if b, err = board.NewBoard(); err != nil {
			return err
		}
	}

	s.players = [2]Player{board.SideWhite: white, board.SideBlack: black}
	for _, side := range []board.Side{board.SideWhite, board.SideBlack} {
		s.engines[side] = nil
		if s.players[side].IsHuman() {
			continue
		}
		e, err := engine.NewEngine(&engine.EngineConfig{
			Level:  s.players[side].Level,
			Seed:   s.seed + uint64(side) + 1,
			Logger: s.logger,
		})
		if err != nil {
			return err
		}
		s.engines[side] = e
	}

	s.board = b
	s.inProgress = true
	s.last = s.conclude()
	s.logger.WithFields(log.Fields{
		"white": white,
		"black": black,
		"fen":   b.FEN(),
	}).Info("game started")
	return nil
}

// Move plays a human move for the side to move.
func (s *Session) Move(from, to position.Pos, promotion board.Piece) (Outcome, error) {
	if !s.inProgress {
		return Outcome{}, ErrNoGame
	}
	if !s.players[s.board.Turn()].IsHuman() {
		return Outcome{}, ErrComputerTurn
	}
	return s.play(board.NewMove(from, to, promotion))
}

// Castle plays the side to move's king two squares toward the chosen rook.
func (s *Session) Castle(kingSide bool) (Outcome, error) {
	if !s.inProgress {
		return Outcome{}, ErrNoGame
	}
	kingFrom, kingTo := board.NewCastleDirection(s.board.Turn(), kingSide).KingHops()
	return s.Move(kingFrom, kingTo, board.PieceUnknown)
}

// ComputerMove asks the engine of the side to move for a move and plays it.
func (s *Session) ComputerMove(ctx context.Context) (board.Move, Outcome, error) {
	if !s.inProgress {
		return board.Move{}, Outcome{}, ErrNoGame
	}
	e := s.engines[s.board.Turn()]
	if e == nil {
		return board.Move{}, Outcome{}, ErrHumanTurn
	}
	mv, err := e.Search(ctx, s.board)
	if err != nil {
		return board.Move{}, Outcome{}, err
	}
	o, err := s.play(mv)
	return mv, o, err
}

func (s *Session) play(mv board.Move) (Outcome, error) {
	side := s.board.Turn()
	notation := s.board.Algebra(mv)
	if !s.board.ApplyMove(mv) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrIllegalMove, mv)
	}
	s.last = s.conclude()
	s.logger.WithFields(log.Fields{
		"side":  side,
		"move":  notation,
		"state": s.last.State,
	}).Info("move played")
	return s.last, nil
}

// conclude inspects the side to move and settles the game when it cannot move.
func (s *Session) conclude() Outcome {
	st := s.board.State()
	o := Outcome{State: st}
	switch st {
	case board.StateCheckmate:
		o.Over, o.Reason, o.Winner = true, ReasonCheckmate, s.board.Turn().Opposite()
		s.finish(o)
	case board.StateStalemate:
		o.Over, o.Reason = true, ReasonStalemate
		s.finish(o)
	}
	return o
}

// Resign concedes the game for the side to move.
func (s *Session) Resign() (Outcome, error) {
	if !s.inProgress {
		return Outcome{}, ErrNoGame
	}
	o := Outcome{
		State:  s.board.State(),
		Over:   true,
		Reason: ReasonResignation,
		Winner: s.board.Turn().Opposite(),
	}
	s.finish(o)
	s.last = o
	return o, nil
}

func (s *Session) finish(o Outcome) {
	if o.Reason == ReasonStalemate {
		s.score[board.SideWhite] += 0.5
		s.score[board.SideBlack] += 0.5
	} else {
		s.score[o.Winner]++
	}
	s.inProgress = false
	s.logger.WithFields(log.Fields{
		"reason": o.Reason,
		"winner": o.Winner,
	}).Info("game over")
}

// LegalMoves lists the moves available to the side to move.
func (s *Session) LegalMoves() ([]board.Move, error) {
	if !s.inProgress {
		return nil, ErrNoGame
	}
	return s.board.GenerateMoves(), nil
}

// ======================================================= SETUP

// EnterSetup starts editing an empty board. The result is used by the next Start.
func (s *Session) EnterSetup() error {
	if s.inProgress {
		return ErrGameInProgress
	}
	if s.setup != nil {
		return ErrSetupMode
	}
	b, err := board.NewBoard(board.WithEmpty())
	if err != nil {
		return err
	}
	s.setup = b
	return nil
}

func (s *Session) Place(pos position.Pos, p board.Piece, side board.Side) error {
	if s.setup == nil {
		return ErrNotSetupMode
	}
	if !s.setup.PlacePiece(pos, p, side) {
		return fmt.Errorf("%w: %s on %q", ErrInvalidPlacement, p, pos)
	}
	return nil
}

func (s *Session) Remove(pos position.Pos) error {
	if s.setup == nil {
		return ErrNotSetupMode
	}
	if !s.setup.RemovePiece(pos) {
		return fmt.Errorf("%w: no piece on %q", ErrInvalidPlacement, pos)
	}
	return nil
}

func (s *Session) SetTurn(side board.Side) error {
	if s.setup == nil {
		return ErrNotSetupMode
	}
	s.setup.SetTurn(side)
	return nil
}

// ExitSetup validates the setup board. On failure the session stays in setup mode.
func (s *Session) ExitSetup() error {
	if s.setup == nil {
		return ErrNotSetupMode
	}
	if err := s.setup.ValidateSetup(); err != nil {
		return err
	}
	s.prepared = s.setup
	s.setup = nil
	s.logger.WithField("fen", s.prepared.FEN()).Info("setup completed")
	return nil
}
