package client

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/fatih/color"
)

var (
	Info  = color.New(color.FgCyan)
	Warn  = color.New(color.FgYellow)
	Error = color.New(color.FgRed)
)

// SetColor turns ANSI colouring on or off for everything this package prints.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// RenderBoard draws b from white's side. Squares in marked are highlighted,
// or shown as "*" when colour is off.
func RenderBoard(b *model.Board, marked map[model.Position]bool) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d ", 8-row)
		for col := 0; col < 8; col++ {
			pos := model.Position{Row: row, Col: col}
			sq, _ := b.SquareAt(pos)
			sb.WriteString(renderSquare(sq, marked[pos]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

func renderSquare(sq model.Square, marked bool) string {
	symbol := "."
	if !sq.Empty() {
		symbol = string(sq.Occupant.FENLetter())
	}
	if color.NoColor {
		if marked {
			symbol = "*"
		}
		return " " + symbol + " "
	}
	attrs := []color.Attribute{color.BgGreen, color.FgBlack}
	switch {
	case marked:
		attrs[0] = color.BgYellow
	case sq.IsLight():
		attrs[0] = color.BgHiWhite
	}
	if !sq.Empty() && sq.Occupant.Color == model.White {
		attrs = append(attrs, color.Bold)
	}
	return color.New(attrs...).Sprint(" " + symbol + " ")
}
