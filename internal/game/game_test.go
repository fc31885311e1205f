package game

import (
	"errors"
	"testing"
)

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  PlayerMark
	}{
		{
			name:  "No winner - empty board",
			board: Board{},
			want:  None,
		},
		{
			name: "No winner - partial board",
			board: Board{
				{PlayerX, None, None},
				{None, PlayerO, None},
				{None, None, None},
			},
			want: None,
		},
		{
			name: "X wins - first row",
			board: Board{
				{PlayerX, PlayerX, PlayerX},
				{None, PlayerO, None},
				{None, None, PlayerO},
			},
			want: PlayerX,
		},
		{
			name: "O wins - second column",
			board: Board{
				{PlayerX, PlayerO, None},
				{PlayerX, PlayerO, None},
				{None, PlayerO, None},
			},
			want: PlayerO,
		},
		{
			name: "X wins - main diagonal",
			board: Board{
				{PlayerX, None, None},
				{None, PlayerX, None},
				{None, None, PlayerX},
			},
			want: PlayerX,
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				{None, None, PlayerO},
				{None, PlayerO, None},
				{PlayerO, None, None},
			},
			want: PlayerO,
		},
		{
			name: "No winner - full board (tie)",
			board: Board{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: None,
		},
		{
			name: "Rows are scanned before columns",
			board: Board{
				{PlayerO, PlayerO, PlayerO},
				{PlayerX, None, None},
				{PlayerX, None, None},
			},
			want: PlayerO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckWinner(tt.board); got != tt.want {
				t.Errorf("CheckWinner() got = %v, want %v", got, tt.want)
			}
		})
	}
}

// lineComplete is an independent oracle: some row, column or diagonal holds
// three identical non-empty marks. Lines are listed in the same order CheckWinner scans them.
func lineComplete(b Board) (PlayerMark, bool) {
	lines := [8][3][2]int{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
	for _, line := range lines {
		a := b[line[0][0]][line[0][1]]
		if a == None {
			continue
		}
		if a == b[line[1][0]][line[1][1]] && a == b[line[2][0]][line[2][1]] {
			return a, true
		}
	}
	return None, false
}

func boardFromIndex(n int) Board {
	marks := [3]PlayerMark{None, PlayerX, PlayerO}
	var b Board
	for i := range 9 {
		b[i/3][i%3] = marks[n%3]
		n /= 3
	}
	return b
}

func TestCheckWinner_AllBoards(t *testing.T) {
	for n := range 19683 {
		b := boardFromIndex(n)
		got := CheckWinner(b)
		want, complete := lineComplete(b)

		if complete != (got != None) {
			t.Fatalf("board %v: CheckWinner() = %q, line complete = %v", b, got, complete)
		}
		if got != want {
			t.Fatalf("board %v: CheckWinner() = %q, want %q", b, got, want)
		}
	}
}

func TestIsBoardFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board is not full",
			board: Board{},
			want:  false,
		},
		{
			name: "Partial board is not full",
			board: Board{
				{PlayerX, None, None},
				{None, PlayerO, None},
				{None, None, None},
			},
			want: false,
		},
		{
			name: "One empty cell is not full",
			board: Board{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, None},
			},
			want: false,
		},
		{
			name: "Full board is full",
			board: Board{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: true,
		},
		{
			name: "Full board with winner is full",
			board: Board{
				{PlayerX, PlayerX, PlayerX},
				{PlayerO, PlayerO, PlayerX},
				{PlayerO, PlayerX, PlayerO},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBoardFull(tt.board); got != tt.want {
				t.Errorf("IsBoardFull() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoard_PlaceMark(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		mark     PlayerMark
		wantErr  error
	}{
		{name: "Empty cell accepts X", row: 0, col: 0, mark: PlayerX},
		{name: "Empty cell accepts O", row: 2, col: 2, mark: PlayerO},
		{name: "Occupied cell is rejected", row: 1, col: 1, mark: PlayerX, wantErr: ErrCellOccupied},
		{name: "Row below range", row: -1, col: 0, mark: PlayerX, wantErr: ErrOutOfBounds},
		{name: "Column above range", row: 0, col: 3, mark: PlayerO, wantErr: ErrOutOfBounds},
		{name: "Empty mark is rejected", row: 0, col: 1, mark: None, wantErr: ErrInvalidMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := Board{
				{None, None, None},
				{None, PlayerO, None},
				{None, None, None},
			}
			before := board

			err := board.PlaceMark(tt.row, tt.col, tt.mark)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PlaceMark() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				if board != before {
					t.Errorf("PlaceMark() mutated the board on failure: %v", board)
				}
				return
			}

			changed := 0
			for r := range 3 {
				for c := range 3 {
					if board[r][c] != before[r][c] {
						changed++
						if before[r][c] != None || board[r][c] != tt.mark {
							t.Errorf("cell (%d, %d) changed from %q to %q", r, c, before[r][c], board[r][c])
						}
					}
				}
			}
			if changed != 1 {
				t.Errorf("PlaceMark() changed %d cells, want 1", changed)
			}
		})
	}
}

func TestGame_Move(t *testing.T) {
	g := NewGame()
	if g.CurrentTurn != PlayerX {
		t.Fatalf("NewGame() first turn = %q, want X", g.CurrentTurn)
	}

	if err := g.Move(0, 0); err != nil {
		t.Fatalf("Move(0, 0) failed: %v", err)
	}
	if g.CurrentTurn != PlayerO {
		t.Errorf("turn after X moved = %q, want O", g.CurrentTurn)
	}

	// O tries the same cell: nothing changes and it stays O's turn.
	before := g.Board
	if err := g.Move(0, 0); !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("Move on occupied cell error = %v, want ErrCellOccupied", err)
	}
	if g.Board != before {
		t.Error("rejected move mutated the board")
	}
	if g.CurrentTurn != PlayerO {
		t.Errorf("turn after rejected move = %q, want O", g.CurrentTurn)
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves)
	}
}

func TestGame_MoveAfterWin(t *testing.T) {
	g := NewGame()
	moves := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, m := range moves {
		if err := g.Move(m[0], m[1]); err != nil {
			t.Fatalf("Move(%d, %d) failed: %v", m[0], m[1], err)
		}
	}

	if got := g.Outcome(); got.State != Win || got.Winner != PlayerX {
		t.Fatalf("Outcome() = %+v, want X win", got)
	}
	if err := g.Move(2, 2); !errors.Is(err, ErrGameFinished) {
		t.Errorf("Move after win error = %v, want ErrGameFinished", err)
	}
}

func TestScenario_DiagonalInProgress(t *testing.T) {
	g := NewGame()
	for _, m := range [][2]int{{0, 0}, {1, 1}, {0, 1}, {2, 2}} {
		if err := g.Move(m[0], m[1]); err != nil {
			t.Fatalf("Move(%d, %d) failed: %v", m[0], m[1], err)
		}
	}

	if got := CheckWinner(g.Board); got != None {
		t.Errorf("CheckWinner() = %q, want no winner yet", got)
	}

	// X completes the top row.
	if err := g.Move(0, 2); err != nil {
		t.Fatalf("Move(0, 2) failed: %v", err)
	}
	if got := CheckWinner(g.Board); got != PlayerX {
		t.Errorf("CheckWinner() = %q, want X", got)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "Empty board is in progress",
			board: Board{},
			want:  Outcome{State: InProgress},
		},
		{
			name: "Full board without a line is a tie",
			board: Board{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: Outcome{State: Tie},
		},
		{
			name: "Full board completed by the last move is a win",
			board: Board{
				{PlayerX, PlayerO, PlayerX},
				{PlayerO, PlayerX, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: Outcome{State: Win, Winner: PlayerX},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.board)
			if got != tt.want {
				t.Errorf("Evaluate() = %+v, want %+v", got, tt.want)
			}
			if got.Terminal() != (tt.want.State != InProgress) {
				t.Errorf("Terminal() = %v for state %v", got.Terminal(), got.State)
			}
		})
	}
}

func TestRender(t *testing.T) {
	board := Board{
		{PlayerX, None, PlayerO},
		{None, PlayerX, None},
		{None, None, PlayerO},
	}

	want := "\nCurrent Board:\n" +
		"X |   | O\n" +
		"---------\n" +
		"  | X |  \n" +
		"---------\n" +
		"  |   | O\n" +
		"\n"

	if got := Render(board); got != want {
		t.Errorf("Render() got:\n%q\nwant:\n%q", got, want)
	}
}

func TestOpponent(t *testing.T) {
	if Opponent(PlayerX) != PlayerO || Opponent(PlayerO) != PlayerX {
		t.Errorf("Opponent() does not alternate between X and O")
	}
}
