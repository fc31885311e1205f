package game

// State is the derived status of a board.
type State int

const (
	InProgress State = iota
	Win
	Tie
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Outcome is computed from a board on demand and never stored.
type Outcome struct {
	State  State
	Winner PlayerMark
}

// Evaluate checks for a winner first, so a board completed by its last move
// reports Win rather than Tie.
func Evaluate(board Board) Outcome {
	if winner := CheckWinner(board); winner != None {
		return Outcome{State: Win, Winner: winner}
	}
	if IsBoardFull(board) {
		return Outcome{State: Tie}
	}
	return Outcome{State: InProgress}
}

// Terminal reports whether the game can no longer continue.
func (o Outcome) Terminal() bool {
	return o.State != InProgress
}
