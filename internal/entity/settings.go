package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	MinDimension = 3
	MaxDimension = 100
	MinSequence  = 3

	OriginalRows = 6
	OriginalCols = 7
	OriginalSeq  = 4
)

// Settings describes the board of a single match.
type Settings struct {
	Rows int
	Cols int
	Seq  int
}

// OriginalSettings returns the classic 6x7 board with four to connect.
func OriginalSettings() Settings {
	return Settings{
		Rows: OriginalRows,
		Cols: OriginalCols,
		Seq:  OriginalSeq,
	}
}

func (that Settings) Validate() error {
	if err := ValidateDimension(that.Rows); err != nil {
		return fmt.Errorf("rows: %w", err)
	}

	if err := ValidateDimension(that.Cols); err != nil {
		return fmt.Errorf("cols: %w", err)
	}

	return ValidateSequence(that.Seq, that.Rows, that.Cols)
}

// ValidateDimension checks a single board dimension against MinDimension and MaxDimension.
func ValidateDimension(n int) error {
	if n < MinDimension {
		return fmt.Errorf("%w: %d is less than %d", apperror.ErrInvalidDimension, n, MinDimension)
	}

	if n > MaxDimension {
		return fmt.Errorf("%w: %d is more than %d", apperror.ErrInvalidDimension, n, MaxDimension)
	}

	return nil
}

// ValidateSequence checks the run length against already validated dimensions.
func ValidateSequence(seq, rows, cols int) error {
	if seq < MinSequence {
		return fmt.Errorf("%w: %d is less than %d", apperror.ErrInvalidSequence, seq, MinSequence)
	}

	if seq > min(rows, cols) {
		return fmt.Errorf("%w: %d exceeds the %dx%d grid", apperror.ErrInvalidSequence, seq, rows, cols)
	}

	return nil
}
