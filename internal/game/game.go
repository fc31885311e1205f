package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Board is the 3x3 grid, indexed as Board[row][col].
type Board [3][3]PlayerMark

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrInvalidMark  = errors.New("invalid player mark")
	ErrGameFinished = errors.New("game already finished")
)

// Game is a single local match. X always moves first.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Moves       int
}

func NewGame() *Game {
	return &Game{
		Board:       Board{},
		CurrentTurn: PlayerX,
	}
}

// PlaceMark sets the cell at (row, col) to mark. The board is left untouched
// when the coordinate is outside the grid or the cell is already taken.
func (b *Board) PlaceMark(row, col int, mark PlayerMark) error {
	if !IsPlayer(mark) {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
	if !inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	if b[row][col] != None {
		return ErrCellOccupied
	}

	b[row][col] = mark
	return nil
}

// Move places the current player's mark and hands the turn to the opponent.
// A rejected move does not advance the turn.
func (g *Game) Move(row, col int) error {
	if g.Outcome().State != InProgress {
		return ErrGameFinished
	}
	if err := g.Board.PlaceMark(row, col, g.CurrentTurn); err != nil {
		return err
	}

	g.CurrentTurn = Opponent(g.CurrentTurn)
	g.Moves++
	return nil
}

// Outcome derives the game state from the board.
func (g *Game) Outcome() Outcome {
	return Evaluate(g.Board)
}

// CheckWinner returns the mark that fills a complete line, or None.
// Lines are scanned rows first, then columns, then the main and anti diagonals.
func CheckWinner(board Board) PlayerMark {
	// Check rows
	for i := range [3]int{} {
		if board[i][0] != None && board[i][0] == board[i][1] && board[i][1] == board[i][2] {
			return board[i][0]
		}
	}

	// Check columns
	for i := range [3]int{} {
		if board[0][i] != None && board[0][i] == board[1][i] && board[1][i] == board[2][i] {
			return board[0][i]
		}
	}

	// Check diagonals
	if board[0][0] != None && board[0][0] == board[1][1] && board[1][1] == board[2][2] {
		return board[0][0]
	}
	if board[0][2] != None && board[0][2] == board[1][1] && board[1][1] == board[2][0] {
		return board[0][2]
	}

	return None
}

// IsBoardFull reports whether no empty cell remains.
func IsBoardFull(board Board) bool {
	for r := range [3]int{} {
		for c := range [3]int{} {
			if board[r][c] == None {
				return false
			}
		}
	}
	return true
}
