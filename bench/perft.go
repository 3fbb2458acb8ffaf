package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/rookery/board"
)

type perftCounters struct {
	nodes, cap, enp, cas, pro, chk uint64
}

// Perft counts leaf nodes of the legal move tree from fen down to depth. Per-root-move
// counts are sent to out when verbose, followed by a summary line.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) (uint64, error) {
	var c perftCounters
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return 0, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &c)
	end := time.Now()

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, c.nodes, int(float64(c.nodes)/(end.Sub(start).Seconds()+1e-9)), c.cap, c.enp, c.cas, c.pro, c.chk, end.Sub(start).Seconds())
	}

	return c.nodes, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, c *perftCounters) uint64

// tally records the kind of a single leaf move. Safe for concurrent use on c.
func tally(b *board.Board, mv board.Move, c *perftCounters) {
	atomic.AddUint64(&c.nodes, 1)
	if b.IsCapture(mv) {
		atomic.AddUint64(&c.cap, 1)
	}
	if b.IsEnPassant(mv) {
		atomic.AddUint64(&c.enp, 1)
	}
	if b.IsCastle(mv) {
		atomic.AddUint64(&c.cas, 1)
	}
	if mv.Promotion != board.PieceUnknown {
		atomic.AddUint64(&c.pro, 1)
	}
	if b.GivesCheck(mv) {
		atomic.AddUint64(&c.chk, 1)
	}
}

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, c *perftCounters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.nodes, 1)
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves() {
		var child uint64
		if d == 1 {
			tally(b, mv, c)
			child = 1
		} else {
			child = runPerft(b.After(mv), d-1, false, verbose, out, c)
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, c *perftCounters) uint64 {
	if d <= 1 || !root {
		return runPerft(b, d, root, verbose, out, c)
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			child := runPerft(b.After(mv), d-1, false, verbose, out, c)
			if verbose && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
