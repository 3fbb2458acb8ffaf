package board

import (
	"errors"

	"github.com/daystram/rookery/position"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrInvalidMove = errors.New("invalid move")
)

// Board is a mailbox board indexed [rank][file]. The zero value is not usable; use NewBoard.
// Board holds no pointers, so a plain copy is a full snapshot.
type Board struct {
	// grid data
	grid [Height][Width]Cell

	// meta
	turn           Side
	kingMoved      [2]bool
	rookMoved      [2][2]bool // [side][wing]
	lastDoubleMove position.Pos
	halfMoveClock  uint64
	fullMoveClock  uint64
}

type boardConfig struct {
	fen   string
	empty bool
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// WithEmpty starts from an empty grid, ready for setup mutators.
func WithEmpty() BoardOption {
	return func(cfg *boardConfig) {
		cfg.empty = true
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if cfg.empty {
		b.ClearBoard()
		return b, nil
	}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) SetTurn(s Side) {
	b.turn = s
}

// LastDoubleMove returns the square of the pawn that just advanced two squares, or position.None.
func (b *Board) LastDoubleMove() position.Pos {
	return b.lastDoubleMove
}

func (b *Board) HasKingMoved(s Side) bool {
	return b.kingMoved[s]
}

func (b *Board) HasRookMoved(s Side, kingSide bool) bool {
	return b.rookMoved[s][NewCastleDirection(s, kingSide).wing()]
}

// PieceAt returns the cell at pos. ok is false for an empty or off-board square.
func (b *Board) PieceAt(pos position.Pos) (Cell, bool) {
	if !pos.Valid() {
		return Cell{}, false
	}
	c := b.at(pos)
	return c, !c.IsEmpty()
}

func (b *Board) at(pos position.Pos) Cell {
	return b.grid[pos.Rank][pos.File]
}

func (b *Board) set(pos position.Pos, c Cell) {
	b.grid[pos.Rank][pos.File] = c
}

// ======================================================= SETUP

// ClearBoard empties the grid and resets every castling and en passant flag.
func (b *Board) ClearBoard() {
	*b = Board{
		turn:           SideWhite,
		lastDoubleMove: position.None,
		fullMoveClock:  1,
	}
}

// PlacePiece puts a piece on pos, replacing whatever was there.
func (b *Board) PlacePiece(pos position.Pos, p Piece, s Side) bool {
	if !pos.Valid() || p == PieceUnknown {
		return false
	}
	b.set(pos, Cell{Piece: p, Side: s})
	return true
}

// RemovePiece empties pos and reports whether a piece was there.
func (b *Board) RemovePiece(pos position.Pos) bool {
	if _, ok := b.PieceAt(pos); !ok {
		return false
	}
	b.set(pos, Cell{})
	return true
}

// ======================================================= MOVES

// Apply validates and plays a move for the side to move. On rejection the board is untouched.
// A pawn reaching its last rank becomes promotion, or a Queen when promotion is not a valid kind.
func (b *Board) Apply(from, to position.Pos, promotion Piece) bool {
	if !b.IsLegal(Move{From: from, To: to, Promotion: promotion}) {
		return false
	}
	b.play(from, to, promotion)
	return true
}

func (b *Board) ApplyMove(m Move) bool {
	return b.Apply(m.From, m.To, m.Promotion)
}

// IsLegal reports whether m is a legal move for the side to move.
func (b *Board) IsLegal(m Move) bool {
	c, ok := b.PieceAt(m.From)
	if !ok || c.Side != b.turn || !m.To.Valid() {
		return false
	}
	return b.isLegalFor(c, m.From, m.To)
}

func (b *Board) isLegalFor(c Cell, from, to position.Pos) bool {
	reachable := false
	for _, dst := range PseudoLegalMoves(b, c.Piece, c.Side, from) {
		if dst == to {
			reachable = true
			break
		}
	}
	if !reachable {
		return false
	}
	return b.leavesKingSafe(from, to)
}

// leavesKingSafe plays the move on a copy and tests the mover's king there.
func (b *Board) leavesKingSafe(from, to position.Pos) bool {
	s := b.at(from).Side
	bb := *b
	bb.relocate(from, to, PieceQueen)
	return !bb.IsInCheck(s)
}

// play applies a move already known to be legal.
func (b *Board) play(from, to position.Pos, promotion Piece) {
	c := b.at(from)
	captured := b.at(to)
	isEnPassant := b.isEnPassant(from, to)

	b.relocate(from, to, promotion)

	// update castling flags
	if c.Piece == PieceKing {
		b.kingMoved[c.Side] = true
	}
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, wing := range []int{wingLeft, wingRight} {
			corner := homeRook(s, wing)
			if (c.Piece == PieceRook && c.Side == s && from == corner) ||
				(captured.Is(PieceRook, s) && to == corner) {
				b.rookMoved[s][wing] = true
			}
		}
	}

	// update lastDoubleMove
	b.lastDoubleMove = position.None
	if c.Piece == PiecePawn && position.Abs(to.Rank-from.Rank) == 2 {
		b.lastDoubleMove = to
	}

	// update half move clock
	if c.Piece == PiecePawn || !captured.IsEmpty() || isEnPassant {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	// update full move clock
	if b.turn == SideBlack {
		b.fullMoveClock++
	}

	b.turn = b.turn.Opposite()
}

// relocate moves pieces on the grid only: the king and rook together for castling, the bypassed
// pawn for en passant, and the promoted piece for a pawn reaching its last rank.
func (b *Board) relocate(from, to position.Pos, promotion Piece) {
	c := b.at(from)
	switch c.Piece {
	case PieceKing:
		if d := castleDirectionOf(c.Side, from, to); d != CastleDirectionUnknown {
			rookFrom, rookTo := d.RookHops()
			b.set(rookTo, b.at(rookFrom))
			b.set(rookFrom, Cell{})
		}
	case PiecePawn:
		if b.isEnPassant(from, to) {
			b.set(position.New(to.File, from.Rank), Cell{})
		}
		if to.Rank == c.Side.PromotionRank() {
			c.Piece = promotionOrDefault(promotion)
		}
	}
	b.set(to, c)
	b.set(from, Cell{})
}

// GenerateMoves returns every legal move for the side to move, scanning a1..h8.
// Promotions are expanded into one move per PawnPromoteCandidates entry.
func (b *Board) GenerateMoves() []Move {
	return b.GenerateMovesFor(b.turn)
}

func (b *Board) GenerateMovesFor(s Side) []Move {
	var mvs []Move
	b.eachLegal(s, func(from, to position.Pos, c Cell) bool {
		if c.Piece == PiecePawn && to.Rank == s.PromotionRank() {
			for _, prom := range PawnPromoteCandidates {
				mvs = append(mvs, Move{From: from, To: to, Promotion: prom})
			}
			return true
		}
		mvs = append(mvs, Move{From: from, To: to})
		return true
	})
	return mvs
}

// eachLegal calls fn for each legal from-to pair of side s until fn returns false.
func (b *Board) eachLegal(s Side, fn func(from, to position.Pos, c Cell) bool) {
	for rank := 0; rank < Height; rank++ {
		for file := 0; file < Width; file++ {
			c := b.grid[rank][file]
			if c.IsEmpty() || c.Side != s {
				continue
			}
			from := position.New(file, rank)
			for _, to := range PseudoLegalMoves(b, c.Piece, s, from) {
				if !b.leavesKingSafe(from, to) {
					continue
				}
				if !fn(from, to, c) {
					return
				}
			}
		}
	}
}

func (b *Board) hasLegalMove(s Side) bool {
	found := false
	b.eachLegal(s, func(_, _ position.Pos, _ Cell) bool {
		found = true
		return false
	})
	return found
}

// ======================================================= STATE

func (b *Board) IsCheckmate(s Side) bool {
	return b.IsInCheck(s) && !b.hasLegalMove(s)
}

func (b *Board) IsStalemate(s Side) bool {
	return !b.IsInCheck(s) && !b.hasLegalMove(s)
}

// State reports the situation of the side to move.
func (b *Board) State() State {
	inCheck := b.IsInCheck(b.turn)
	hasMove := b.hasLegalMove(b.turn)
	switch {
	case inCheck && !hasMove:
		return StateCheckmate
	case !hasMove:
		return StateStalemate
	case inCheck:
		return StateCheck
	default:
		return StateRunning
	}
}

// IsCapture reports whether m takes a piece, en passant included.
func (b *Board) IsCapture(m Move) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	mover := b.at(m.From)
	target := b.at(m.To)
	if !target.IsEmpty() && target.Side != mover.Side {
		return true
	}
	return b.isEnPassant(m.From, m.To)
}

// IsEnPassant reports whether m is an en passant capture.
func (b *Board) IsEnPassant(m Move) bool {
	return m.From.Valid() && m.To.Valid() && b.isEnPassant(m.From, m.To)
}

// IsCastle reports whether m is a castling king move.
func (b *Board) IsCastle(m Move) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	c := b.at(m.From)
	return c.Piece == PieceKing && castleDirectionOf(c.Side, m.From, m.To) != CastleDirectionUnknown
}

// GivesCheck reports whether playing m leaves the opponent of the mover in check.
func (b *Board) GivesCheck(m Move) bool {
	return b.After(m).IsInCheck(b.at(m.From).Side.Opposite())
}

// After returns a copy of the board with m played, without validation.
func (b *Board) After(m Move) *Board {
	bb := b.Clone()
	if _, ok := bb.PieceAt(m.From); !ok || !m.To.Valid() {
		return bb
	}
	bb.play(m.From, m.To, m.Promotion)
	return bb
}
