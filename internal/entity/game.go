package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Outcome is the result of a single move.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeTie
)

func (that Outcome) String() string {
	switch that {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// Result describes what a move did to the game.
type Result struct {
	Outcome Outcome
	Mark    Mark
	Winner  Mark
	Landed  Position
}

// Game is a single match between the two players.
type Game struct {
	Board  *Board
	Marks  [2]Mark
	Turn   int
	Status string
	Winner Mark
}

func NewGame(settings Settings) (*Game, error) {
	board, err := NewBoard(settings.Rows, settings.Cols, settings.Seq)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:  board,
		Marks:  [2]Mark{PlayerRed, PlayerYellow},
		Status: StatusOngoing,
	}, nil
}

// CurrentMark returns the mark of the player who moves next.
func (that *Game) CurrentMark() Mark {
	return that.Marks[that.Turn%2]
}

// MakeTurn drops the current player's mark into the zero-based col.
func (that *Game) MakeTurn(col int) (Result, error) {
	if that.IsFinished() {
		return Result{}, apperror.ErrGameFinished
	}

	mark := that.CurrentMark()

	row, err := that.Board.UpdateBoard(col, mark)
	if err != nil {
		return Result{}, fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn++

	result := Result{
		Outcome: OutcomeContinue,
		Mark:    mark,
		Landed:  Position{Row: row, Col: col},
	}

	switch {
	case that.Board.CheckWin(mark):
		that.Status = StatusFinished
		that.Winner = mark
		result.Outcome = OutcomeWin
		result.Winner = mark
	// a tie is only decided right after a placement
	case that.Turn == that.Board.Rows()*that.Board.Cols():
		that.Status = StatusFinished
		result.Outcome = OutcomeTie
	}

	return result, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsTie reports a finished game without a winner.
func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == EmptyCell
}
