package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/daystram/rookery/board"
	"github.com/daystram/rookery/game"
	"github.com/daystram/rookery/position"
)

const (
	defaultPrompt      = "rookery> "
	defaultSetupPrompt = "setup> "
)

var (
	colorError  = color.New(color.FgRed)
	colorStatus = color.New(color.FgYellow, color.Bold)
	colorResult = color.New(color.FgGreen, color.Bold)

	helpText = strings.Join([]string{
		"Commands:",
		"  game <white> <black>        - start a game, players are human or computer1..computer4",
		"  move <from> <to> [promo]    - move a piece (e.g. 'move e7 e8 n'), bare 'move' lets a computer play",
		"  castle kingside|queenside   - castle on the king or queen side",
		"  resign                      - concede the game for the side to move",
		"  draw                        - show the current board",
		"  score                       - show the current score",
		"  setup                       - edit a position for the next game",
		"  help                        - show this message",
		"  quit|exit                   - leave, printing the final score",
	}, "\n")
	setupHelpText = strings.Join([]string{
		"Setup commands:",
		"  + <piece> <square>  - place a piece, uppercase for White (e.g. '+ K e1', '+ q d8')",
		"  - <square>          - remove a piece",
		"  = white|black       - set the side to move",
		"  done                - validate and leave setup mode",
	}, "\n")
)

type Options struct {
	Plain       bool // render with ASCII instead of coloured unicode
	HistoryFile string
}

type Interface struct {
	session *game.Session
	out     io.Writer
	options Options
	logger  log.Interface
}

func NewInterface(s *game.Session, out io.Writer, opts Options, logger log.Interface) *Interface {
	if logger == nil {
		logger = log.Log
	}
	return &Interface{
		session: s,
		out:     out,
		options: opts,
		logger:  logger,
	}
}

func completer() *readline.PrefixCompleter {
	players := func() []readline.PrefixCompleterInterface {
		return []readline.PrefixCompleterInterface{
			readline.PcItem("human"),
			readline.PcItem("computer1"),
			readline.PcItem("computer2"),
			readline.PcItem("computer3"),
			readline.PcItem("computer4"),
		}
	}
	gameItems := players()
	for _, item := range gameItems {
		item.SetChildren(players())
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("game", gameItems...),
		readline.PcItem("move"),
		readline.PcItem("castle", readline.PcItem("kingside"), readline.PcItem("queenside")),
		readline.PcItem("resign"),
		readline.PcItem("draw"),
		readline.PcItem("score"),
		readline.PcItem("setup"),
		readline.PcItem("done"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
		readline.PcItem("exit"),
	)
}

// Run reads commands from the terminal until quit, EOF or ctx is done, then prints the final score.
func (i *Interface) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          defaultPrompt,
		HistoryFile:     i.options.HistoryFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          i.out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	i.println("Rookery chess. Type 'help' for commands.")
	for ctx.Err() == nil {
		if i.session.InSetup() {
			rl.SetPrompt(defaultSetupPrompt)
		} else {
			rl.SetPrompt(defaultPrompt)
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if !i.Execute(ctx, line) {
			break
		}
	}
	i.printScore("Final Score:")
	return nil
}

// Execute runs one command line. It returns false when the user asked to leave.
func (i *Interface) Execute(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return true
	}
	if args[0] == "quit" || args[0] == "exit" {
		return false
	}
	if i.session.InSetup() {
		i.executeSetup(args)
		return true
	}

	switch args[0] {
	case "game":
		i.commandGame(args[1:])
	case "move":
		i.commandMove(ctx, args[1:])
	case "castle":
		i.commandCastle(args[1:])
	case "resign":
		i.commandResign()
	case "draw":
		i.commandDraw()
	case "score":
		i.printScore("Score:")
	case "setup":
		i.commandSetup()
	case "help":
		i.println(helpText)
	default:
		i.printError(fmt.Errorf("unknown command %q, type 'help' for a list of commands", args[0]))
	}
	return true
}

func (i *Interface) commandGame(args []string) {
	if len(args) != 2 {
		i.printError(errors.New("usage: game <white> <black>"))
		return
	}
	white, err := game.ParsePlayer(args[0])
	if err != nil {
		i.printError(err)
		return
	}
	black, err := game.ParsePlayer(args[1])
	if err != nil {
		i.printError(err)
		return
	}
	if err := i.session.Start(white, black); err != nil {
		i.printError(err)
		return
	}
	i.printBoard()
	i.printOutcome(i.session.Last())
}

func (i *Interface) commandMove(ctx context.Context, args []string) {
	if len(args) == 0 {
		mv, o, err := i.session.ComputerMove(ctx)
		if err != nil {
			i.printError(err)
			return
		}
		i.println(fmt.Sprintf("Computer plays %s", mv))
		i.afterMove(o)
		return
	}
	if len(args) < 2 || len(args) > 3 {
		i.printError(errors.New("usage: move <from> <to> [promotion]"))
		return
	}
	from, err := position.NewPosFromNotation(args[0])
	if err != nil {
		i.printError(fmt.Errorf("%w: %q", err, args[0]))
		return
	}
	to, err := position.NewPosFromNotation(args[1])
	if err != nil {
		i.printError(fmt.Errorf("%w: %q", err, args[1]))
		return
	}
	promotion := board.PieceUnknown
	if len(args) == 3 {
		p, _, ok := board.NewPieceFromSymbol([]rune(args[2])[0])
		if !ok || len(args[2]) != 1 {
			i.printError(fmt.Errorf("invalid promotion %q", args[2]))
			return
		}
		promotion = p
	}
	o, err := i.session.Move(from, to, promotion)
	if err != nil {
		i.printError(err)
		return
	}
	i.afterMove(o)
}

func (i *Interface) commandCastle(args []string) {
	if len(args) != 1 {
		i.printError(errors.New("usage: castle kingside|queenside"))
		return
	}
	var kingSide bool
	switch args[0] {
	case "kingside", "k":
		kingSide = true
	case "queenside", "q":
		kingSide = false
	default:
		i.printError(errors.New("usage: castle kingside|queenside"))
		return
	}
	o, err := i.session.Castle(kingSide)
	if err != nil {
		i.printError(err)
		return
	}
	i.afterMove(o)
}

func (i *Interface) commandResign() {
	o, err := i.session.Resign()
	if err != nil {
		i.printError(err)
		return
	}
	i.printOutcome(o)
}

func (i *Interface) commandDraw() {
	if !i.session.InProgress() {
		i.printError(game.ErrNoGame)
		return
	}
	i.printBoard()
}

func (i *Interface) commandSetup() {
	if err := i.session.EnterSetup(); err != nil {
		i.printError(err)
		return
	}
	i.println(setupHelpText)
	i.printBoard()
}

func (i *Interface) executeSetup(args []string) {
	var err error
	switch args[0] {
	case "+":
		if len(args) != 3 {
			err = errors.New("usage: + <piece> <square>")
			break
		}
		p, side, ok := board.NewPieceFromSymbol([]rune(args[1])[0])
		if !ok || len(args[1]) != 1 {
			err = fmt.Errorf("invalid piece %q", args[1])
			break
		}
		var pos position.Pos
		if pos, err = position.NewPosFromNotation(args[2]); err != nil {
			break
		}
		err = i.session.Place(pos, p, side)
	case "-":
		if len(args) != 2 {
			err = errors.New("usage: - <square>")
			break
		}
		var pos position.Pos
		if pos, err = position.NewPosFromNotation(args[1]); err != nil {
			break
		}
		err = i.session.Remove(pos)
	case "=":
		if len(args) != 2 {
			err = errors.New("usage: = white|black")
			break
		}
		side, ok := board.NewSideFromString(args[1])
		if !ok {
			err = fmt.Errorf("invalid side %q", args[1])
			break
		}
		err = i.session.SetTurn(side)
	case "done":
		if err = i.session.ExitSetup(); err == nil {
			i.println("Setup complete. Start a game to play from this position.")
			return
		}
	case "help":
		i.println(setupHelpText)
		return
	default:
		err = fmt.Errorf("unknown setup command %q", args[0])
	}
	if err != nil {
		i.printError(err)
		return
	}
	i.printBoard()
}

func (i *Interface) afterMove(o game.Outcome) {
	i.printBoard()
	if !o.Over {
		i.println(fmt.Sprintf("%s to play.", i.session.Board().Turn()))
	}
	i.printOutcome(o)
}

func (i *Interface) printOutcome(o game.Outcome) {
	msg := o.String()
	switch {
	case msg == "":
	case o.Over:
		i.println(colorResult.Sprint(msg))
	default:
		i.println(colorStatus.Sprint(msg))
	}
}

func (i *Interface) printBoard() {
	b := i.session.Board()
	if b == nil {
		return
	}
	if i.options.Plain {
		i.println(b.Dump())
		return
	}
	i.println(b.Draw())
}

func (i *Interface) printScore(title string) {
	white, black := i.session.Score()
	i.println(fmt.Sprintf("%s\nWhite: %g\nBlack: %g", title, white, black))
}

func (i *Interface) printError(err error) {
	i.logger.WithError(err).Debug("command failed")
	i.println(colorError.Sprint(err.Error()))
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
