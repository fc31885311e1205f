package game

// Player marks
const (
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
	None    PlayerMark = ""
)

// Border
const (
	BorderMin = 0 // First index of the board
	BorderMax = 2 // Last index of the board
)

// Opponent returns the mark that moves after mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// IsPlayer reports whether mark is X or O.
func IsPlayer(mark PlayerMark) bool {
	return mark == PlayerX || mark == PlayerO
}

func inBounds(row, col int) bool {
	return row >= BorderMin && row <= BorderMax && col >= BorderMin && col <= BorderMax
}
