package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Renderer turns engine state into terminal text. Without color the players
// are told apart by letter and winning cells are upper-cased.
type Renderer struct {
	color bool
}

func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// paint styles text regardless of the process-wide color.NoColor, which is
// decided from stdout and not from the configured mode.
func (that *Renderer) paint(text string, attrs ...color.Attribute) string {
	style := color.New(attrs...)
	if that.color {
		style.EnableColor()
	} else {
		style.DisableColor()
	}

	return style.Sprint(text)
}

// Token returns the single-character glyph of a cell.
func (that *Renderer) Token(cell entity.Cell) string {
	if !that.color {
		return plainToken(cell)
	}

	token, attrs := "*", []color.Attribute{color.FgWhite}
	switch cell.Mark {
	case entity.PlayerRed:
		token, attrs = "O", []color.Attribute{color.FgRed}
	case entity.PlayerYellow:
		token, attrs = "O", []color.Attribute{color.FgYellow}
	}

	if cell.Highlighted {
		attrs = append(attrs, color.Bold)
	}

	return that.paint(token, attrs...)
}

func plainToken(cell entity.Cell) string {
	switch cell.Mark {
	case entity.PlayerRed:
		if cell.Highlighted {
			return "R"
		}
		return "r"
	case entity.PlayerYellow:
		if cell.Highlighted {
			return "Y"
		}
		return "y"
	default:
		return "*"
	}
}

// Player returns the display name of a player, in the player's color.
func (that *Renderer) Player(mark entity.Mark) string {
	switch mark {
	case entity.PlayerRed:
		return that.paint("Red", color.FgRed)
	case entity.PlayerYellow:
		return that.paint("Yellow", color.FgYellow)
	default:
		return mark.String()
	}
}

func (that *Renderer) Bold(text string) string {
	return that.paint(text, color.Bold)
}

// Error formats a re-prompt message.
func (that *Renderer) Error(text string) string {
	return that.paint(text, color.FgRed)
}

// Board draws the grid between two 1-based column headers:
//
//	 1 2 3
//	|* * *|
//	|r y *|
//	 1 2 3
func (that *Renderer) Board(board *entity.Board) string {
	width := len(strconv.Itoa(board.Cols()))

	labels := make([]string, board.Cols())
	for col := range labels {
		labels[col] = fmt.Sprintf("%*d", width, col+1)
	}
	header := " " + strings.Join(labels, " ") + "\n"

	var sb strings.Builder
	sb.WriteString(header)

	padding := strings.Repeat(" ", width-1)
	cells := make([]string, board.Cols())
	for row := 0; row < board.Rows(); row++ {
		for col := range cells {
			cells[col] = padding + that.Token(board.Cell(row, col))
		}
		sb.WriteString("|" + strings.Join(cells, " ") + "|\n")
	}

	sb.WriteString(header)

	return sb.String()
}
