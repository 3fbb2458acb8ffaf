package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	colorCellLight = color.New(color.FgBlack, color.BgHiWhite)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorLabel     = color.New(color.Bold)
)

// Dump renders the board as plain ASCII with FEN letters, rank 8 on top.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := 0; x < Width; x++ {
			sym := b.grid[y][x].String()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %c ", 'a'+x))
	}
	return builder.String()
}

// Draw renders the board with unicode pieces on coloured squares. Colours are dropped
// when color.NoColor is set.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := 0; x < Width; x++ {
			c := b.grid[y][x]
			sym := c.Piece.SymbolUnicode(c.Side, false)
			if c.IsEmpty() {
				sym = " "
			}
			cell := colorCellLight
			if x%2^y%2 == 0 {
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %c ", 'a'+x))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("fen:  %s\ncast: %v %v\nlast: %s\nstat: %s",
		b.FEN(), b.kingMoved, b.rookMoved, b.lastDoubleMove, b.State())
}
