package entity

// Mark is the occupant of a board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerRed
	PlayerYellow
)

func (that Mark) String() string {
	switch that {
	case EmptyCell:
		return "empty"
	case PlayerRed:
		return "red"
	case PlayerYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerRed || that == PlayerYellow
}

// Opponent returns the other player's mark, or EmptyCell for a non-player mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerRed:
		return PlayerYellow
	case PlayerYellow:
		return PlayerRed
	default:
		return EmptyCell
	}
}

// Cell is a board square. Highlighted is set on the cells of a winning run and
// only matters for rendering; rules always compare Mark.
type Cell struct {
	Mark        Mark
	Highlighted bool
}

// Position addresses a cell, row 0 being the top of the board.
type Position struct {
	Row int
	Col int
}
