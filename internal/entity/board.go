package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// direction is a unit step used by the run scan.
type direction struct {
	dRow, dCol int
}

// Board is a rows x cols grid filled from the bottom row upwards.
type Board struct {
	rows int
	cols int
	seq  int

	grid   [][]Cell
	placed int
	run    []Position
}

func NewBoard(rows, cols, seq int) (*Board, error) {
	settings := Settings{Rows: rows, Cols: cols, Seq: seq}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	grid := make([][]Cell, rows)
	for i := range grid {
		grid[i] = make([]Cell, cols)
	}

	return &Board{
		rows: rows,
		cols: cols,
		seq:  seq,
		grid: grid,
	}, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

func (that *Board) Seq() int {
	return that.seq
}

// Placed returns how many marks have been dropped so far.
func (that *Board) Placed() int {
	return that.placed
}

func (that *Board) IsFull() bool {
	return that.placed == that.rows*that.cols
}

// Cell returns the cell at row, col. Callers must stay inside the grid.
func (that *Board) Cell(row, col int) Cell {
	return that.grid[row][col]
}

// WinningRun returns the cells highlighted by the last successful CheckWin.
func (that *Board) WinningRun() []Position {
	if that.run == nil {
		return nil
	}

	run := make([]Position, len(that.run))
	copy(run, that.run)

	return run
}

// IsValid reports whether a mark can still be dropped into col.
func (that *Board) IsValid(col int) bool {
	if col < 0 || col >= that.cols {
		return false
	}

	return that.grid[0][col].Mark == EmptyCell
}

// UpdateBoard drops mark into col and returns the row it landed on.
func (that *Board) UpdateBoard(col int, mark Mark) (int, error) {
	if !mark.IsPlayer() {
		return 0, fmt.Errorf("%w: %s", apperror.ErrInvalidMark, mark)
	}

	if col < 0 || col >= that.cols {
		return 0, fmt.Errorf("%w: column %d of %d", apperror.ErrInvalidColumn, col, that.cols)
	}

	if that.grid[0][col].Mark != EmptyCell {
		return 0, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, col)
	}

	row := that.rows - 1
	for row > 0 && that.grid[row][col].Mark != EmptyCell {
		row--
	}

	that.grid[row][col] = Cell{Mark: mark}
	that.placed++

	return row, nil
}

// CheckWin looks for a run of seq cells holding mark. Rows are scanned first,
// then columns, then both diagonals of every seq x seq box. The first run found
// is highlighted.
func (that *Board) CheckWin(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	horizontal := direction{dRow: 0, dCol: 1}
	for row := 0; row < that.rows; row++ {
		for col := 0; col <= that.cols-that.seq; col++ {
			if that.highlightRun(row, col, horizontal, mark) {
				return true
			}
		}
	}

	vertical := direction{dRow: 1, dCol: 0}
	for col := 0; col < that.cols; col++ {
		for row := 0; row <= that.rows-that.seq; row++ {
			if that.highlightRun(row, col, vertical, mark) {
				return true
			}
		}
	}

	diagonal := direction{dRow: 1, dCol: 1}
	antiDiagonal := direction{dRow: 1, dCol: -1}
	for row := 0; row <= that.rows-that.seq; row++ {
		for col := 0; col <= that.cols-that.seq; col++ {
			if that.highlightRun(row, col, diagonal, mark) {
				return true
			}

			// anti-diagonal of the same box starts at its top-right corner
			if that.highlightRun(row, col+that.seq-1, antiDiagonal, mark) {
				return true
			}
		}
	}

	return false
}

// highlightRun marks the seq cells starting at row, col when they all hold mark.
func (that *Board) highlightRun(row, col int, dir direction, mark Mark) bool {
	for i := 0; i < that.seq; i++ {
		if that.grid[row+i*dir.dRow][col+i*dir.dCol].Mark != mark {
			return false
		}
	}

	that.run = make([]Position, 0, that.seq)
	for i := 0; i < that.seq; i++ {
		r, c := row+i*dir.dRow, col+i*dir.dCol
		that.grid[r][c].Highlighted = true
		that.run = append(that.run, Position{Row: r, Col: c})
	}

	return true
}
