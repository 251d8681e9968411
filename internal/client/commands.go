package client

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/benbeisheim/chessrules/internal/model"
)

var ErrUnknownCommand = errors.New("unknown command")

// Session is the local state of the terminal client.
type Session struct {
	Board *model.Board
}

func NewSession() *Session {
	return &Session{Board: model.NewBoard()}
}

type command struct {
	usage string
	help  string
	run   func(args []string) error
}

// Registry maps command names to their handlers and writes output to out.
type Registry struct {
	s        *Session
	out      io.Writer
	commands map[string]command
}

func NewRegistry(s *Session, out io.Writer) *Registry {
	r := &Registry{s: s, out: out}
	r.commands = map[string]command{
		"help":    {"help", "list commands", r.help},
		"board":   {"board", "draw the board", r.board},
		"moves":   {"moves <square>", "show legal moves of the piece on a square", r.moves},
		"move":    {"move <uci>", "play a move such as e2e4 or e7e8n", r.move},
		"undo":    {"undo", "take back the last move", r.undo},
		"fen":     {"fen [fen]", "print the position, or load one", r.fen},
		"result":  {"result", "show check and game result", r.result},
		"history": {"history", "list the moves played", r.history},
		"new":     {"new", "start from the initial position", r.reset},
	}
	return r
}

// Execute runs one input line. Unknown commands return ErrUnknownCommand.
func (r *Registry) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := r.commands[strings.ToLower(fields[0])]
	if !ok {
		return fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}
	return cmd.run(fields[1:])
}

// Names lists command names for completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) help([]string) error {
	for _, name := range r.Names() {
		cmd := r.commands[name]
		fmt.Fprintf(r.out, "  %-16s %s\n", cmd.usage, cmd.help)
	}
	return nil
}

func (r *Registry) board([]string) error {
	fmt.Fprint(r.out, RenderBoard(r.s.Board, nil))
	fmt.Fprintf(r.out, "%s to move\n", r.s.Board.Turn())
	return nil
}

func (r *Registry) moves(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: moves <square>")
	}
	pos, err := model.ParsePosition(args[0])
	if err != nil {
		return err
	}
	p := r.s.Board.PieceAt(pos)
	if p == nil {
		return fmt.Errorf("no piece on %s", pos)
	}

	marked := make(map[model.Position]bool)
	var list []string
	for _, m := range model.LegalMoves(p, r.s.Board) {
		marked[m.To()] = true
		list = append(list, model.SAN(r.s.Board, m))
	}
	fmt.Fprint(r.out, RenderBoard(r.s.Board, marked))
	if len(list) == 0 {
		Warn.Fprintf(r.out, "%v has no legal moves\n", p)
		return nil
	}
	sort.Strings(list)
	fmt.Fprintln(r.out, strings.Join(list, " "))
	return nil
}

func (r *Registry) move(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: move <uci>")
	}
	m, err := model.ParseMove(r.s.Board, args[0])
	if err != nil {
		return err
	}
	san := model.SAN(r.s.Board, m)
	r.s.Board = r.s.Board.ApplyMove(m)

	fmt.Fprint(r.out, RenderBoard(r.s.Board, map[model.Position]bool{m.From(): true, m.To(): true}))
	Info.Fprintln(r.out, san)
	return r.announce()
}

func (r *Registry) undo([]string) error {
	prev := r.s.Board.Previous()
	if prev == nil {
		return errors.New("no move to undo")
	}
	r.s.Board = prev
	return r.board(nil)
}

func (r *Registry) fen(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(r.out, r.s.Board.FEN())
		return nil
	}
	b, err := model.ParseFEN(strings.Join(args, " "))
	if err != nil {
		return err
	}
	r.s.Board = b
	if err := r.board(nil); err != nil {
		return err
	}
	return r.announce()
}

func (r *Registry) result([]string) error {
	if model.IsCheck(r.s.Board) {
		Warn.Fprintf(r.out, "%s is in check\n", r.s.Board.Turn())
	}
	fmt.Fprintln(r.out, model.Result(r.s.Board))
	return nil
}

func (r *Registry) history([]string) error {
	sans := model.History(r.s.Board)
	if len(sans) == 0 {
		fmt.Fprintln(r.out, "no moves played")
		return nil
	}
	var sb strings.Builder
	for i, san := range sans {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d.", i/2+1)
		}
		sb.WriteString(" " + san)
	}
	fmt.Fprintln(r.out, sb.String())
	return nil
}

func (r *Registry) reset([]string) error {
	r.s.Board = model.NewBoard()
	return r.board(nil)
}

// announce reports check and game end after the position changes.
func (r *Registry) announce() error {
	res := model.Result(r.s.Board)
	switch {
	case res.Terminal():
		Info.Fprintln(r.out, res)
	case model.IsCheck(r.s.Board):
		Warn.Fprintf(r.out, "%s is in check\n", r.s.Board.Turn())
	}
	return nil
}
