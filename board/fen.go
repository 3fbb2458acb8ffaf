package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/rookery/position"
)

// UnmarshalFEN overwrites b with the position described by fen. A castling letter that is
// absent marks the matching rook as moved, and the en passant square is stored as the
// square of the pawn that just advanced.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var bb Board
	bb.ClearBoard()

	rows := strings.Split(segments[0], "/")
	if len(rows) != Height {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := 0; y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := 0; x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[ptrY][ptrX])
			p, s, ok := NewPieceFromSymbol(cell)
			if !ok {
				if cell != '0' && unicode.IsDigit(cell) {
					skip := int(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			bb.grid[y][x] = Cell{Piece: p, Side: s}
		}
		if ptrX != len(rows[ptrY])-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}
	if _, ok := bb.findKing(SideWhite); !ok {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}
	if _, ok := bb.findKing(SideBlack); !ok {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		bb.turn = SideWhite
	case "b":
		bb.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 || len(segments[2]) == 0 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	bb.rookMoved = [2][2]bool{{true, true}, {true, true}}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			bb.rookMoved[SideWhite][wingRight] = false
		case 'Q':
			bb.rookMoved[SideWhite][wingLeft] = false
		case 'k':
			bb.rookMoved[SideBlack][wingRight] = false
		case 'q':
			bb.rookMoved[SideBlack][wingLeft] = false
		default:
			if i == 0 && e == '-' && len(segments[2]) == 1 {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: %v", fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN), err)
		}
		switch pos.Rank {
		case position.Rank3:
			bb.lastDoubleMove = pos.Offset(0, 1)
		case position.Rank6:
			bb.lastDoubleMove = pos.Offset(0, -1)
		default:
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	bb.halfMoveClock = halfMoveClock

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	bb.fullMoveClock = fullMoveClock

	*b = bb
	return nil
}

func MarshalFEN(b *Board) string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		skip := 0
		for x := 0; x < Width; x++ {
			c := b.grid[y][x]
			if c.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(c.Piece.SymbolFEN(c.Side))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	rights := ""
	for _, d := range []struct {
		dir CastleDirection
		sym rune
	}{
		{CastleDirectionWhiteRight, 'K'},
		{CastleDirectionWhiteLeft, 'Q'},
		{CastleDirectionBlackRight, 'k'},
		{CastleDirectionBlackLeft, 'q'},
	} {
		if b.castleAvailable(d.dir) {
			rights += string(d.sym)
		}
	}
	if rights == "" {
		rights = "-"
	}
	_, _ = builder.WriteString(rights)
	_, _ = builder.WriteRune(' ')

	switch {
	case !b.lastDoubleMove.Valid():
		_, _ = builder.WriteRune('-')
	case b.lastDoubleMove.Rank == position.Rank4:
		_, _ = builder.WriteString(b.lastDoubleMove.Offset(0, -1).Notation())
	default:
		_, _ = builder.WriteString(b.lastDoubleMove.Offset(0, 1).Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}

func (b *Board) FEN() string {
	return MarshalFEN(b)
}
