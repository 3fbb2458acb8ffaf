package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/daystram/rookery/board"
)

func movegen(w io.Writer, fen string, plain bool) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "to move:", b.Turn())
	if plain {
		fmt.Fprintln(w, b.Dump())
	} else {
		fmt.Fprintln(w, b.Draw())
	}
	fmt.Fprintln(w, b.State())
	dumpMoves(w, b)
	return nil
}

func dumpMoves(w io.Writer, b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		c, _ := b.PieceAt(mv.From)
		fmt.Fprintf(w, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), b.Algebra(mv), c.Side, c.Piece, mv.From, mv.To,
			b.IsCapture(mv), b.IsEnPassant(mv), b.IsCastle(mv), mv.Promotion)
	}
}
