package board

import (
	"fmt"
	"unicode"

	"github.com/daystram/rookery/position"
)

// Move is a from/to pair. Promotion is only read when a pawn reaches its last rank.
type Move struct {
	From, To  position.Pos
	Promotion Piece
}

func NewMove(from, to position.Pos, promotion Piece) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// NewMoveFromUCI parses long algebraic notation such as "e2e4" or "e7e8q".
func NewMoveFromUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := position.NewPosFromNotation(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := position.NewPosFromNotation(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		p, _, ok := NewPieceFromSymbol(unicode.ToUpper(rune(s[4])))
		if !ok || !p.IsPromotable() {
			return Move{}, fmt.Errorf("%w: bad promotion %q", ErrInvalidMove, s[4:])
		}
		mv.Promotion = p
	}
	return mv, nil
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.Promotion.IsPromotable() {
		nt += m.Promotion.SymbolFEN(SideBlack)
	}
	return nt
}

// Algebra renders m in a short algebraic form. It must be called on the board m is played from.
func (b *Board) Algebra(m Move) string {
	c := b.at(m.From)
	if c.Piece == PieceKing {
		if d := castleDirectionOf(c.Side, m.From, m.To); d != CastleDirectionUnknown {
			if d.IsRight() {
				return "0-0"
			}
			return "0-0-0"
		}
	}
	nt := c.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	isEnPassant := b.isEnPassant(m.From, m.To)
	if b.IsCapture(m) {
		if c.Piece == PiecePawn {
			nt += m.From.NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if c.Piece == PiecePawn && m.To.Rank == c.Side.PromotionRank() {
		nt += promotionOrDefault(m.Promotion).SymbolAlgebra(SideWhite)
	}
	if b.GivesCheck(m) {
		nt += "+"
	}
	if isEnPassant {
		nt += " e.p."
	}
	return nt
}

func promotionOrDefault(p Piece) Piece {
	if p.IsPromotable() {
		return p
	}
	return PieceQueen
}
