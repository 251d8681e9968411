// Command chess-cli is an interactive terminal for exploring positions with the rules engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benbeisheim/chessrules/internal/client"
	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/chzyer/readline"
)

func main() {
	var (
		fen         = flag.String("fen", "", "Start from this FEN position")
		historyFile = flag.String("history", ".chess_history", "Readline history file, empty to disable")
		noColor     = flag.Bool("no-color", false, "Disable ANSI colours")
	)
	flag.Parse()

	client.SetColor(!*noColor)

	s := client.NewSession()
	if *fen != "" {
		b, err := model.ParseFEN(*fen)
		if err != nil {
			client.Error.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		s.Board = b
	}

	registry := client.NewRegistry(s, os.Stdout)

	items := make([]readline.PrefixCompleterInterface, 0)
	for _, name := range registry.Names() {
		items = append(items, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(s),
		HistoryFile:     *historyFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		client.Error.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	client.Info.Println("Chess rules terminal")
	fmt.Printf("Type 'help' for commands\n\n")
	registry.Execute("board")

	for {
		rl.SetPrompt(prompt(s))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		if err := registry.Execute(line); err != nil {
			if errors.Is(err, client.ErrUnknownCommand) {
				client.Warn.Printf("%v, type 'help' for commands\n", err)
				continue
			}
			client.Error.Println(err)
		}
	}
}

func prompt(s *client.Session) string {
	return fmt.Sprintf("chess [%s %d] > ", s.Board.Turn(), len(s.Board.Moves()))
}
