package board

import "unicode"

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion, in generation order.
var PawnPromoteCandidates = []Piece{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// IsPromotable reports whether a pawn may be promoted to p.
func (p Piece) IsPromotable() bool {
	switch p {
	case PieceQueen, PieceRook, PieceBishop, PieceKnight:
		return true
	default:
		return false
	}
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	sym := p.Symbol(s)
	if sym == 0 {
		return ""
	}
	return string(sym)
}

// Symbol returns the uppercase letter for White and the lowercase letter for Black.
func (p Piece) Symbol(s Side) rune {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return 0
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return sym
}

func (p Piece) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// NewPieceFromSymbol parses a FEN letter. The case of the letter decides the side.
func NewPieceFromSymbol(sym rune) (Piece, Side, bool) {
	s := SideWhite
	if unicode.IsLower(sym) {
		s = SideBlack
	}
	switch unicode.ToUpper(sym) {
	case 'P':
		return PiecePawn, s, true
	case 'N':
		return PieceKnight, s, true
	case 'B':
		return PieceBishop, s, true
	case 'R':
		return PieceRook, s, true
	case 'Q':
		return PieceQueen, s, true
	case 'K':
		return PieceKing, s, true
	default:
		return PieceUnknown, SideWhite, false
	}
}

// Cell is one board slot. A cell holding PieceUnknown is empty.
type Cell struct {
	Piece Piece
	Side  Side
}

func (c Cell) IsEmpty() bool {
	return c.Piece == PieceUnknown
}

// Is reports whether the cell holds piece p of side s.
func (c Cell) Is(p Piece, s Side) bool {
	return c.Piece == p && c.Side == s
}

func (c Cell) Symbol() rune {
	return c.Piece.Symbol(c.Side)
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return ""
	}
	return string(c.Symbol())
}
