package game

import "strings"

const rowSeparator = "---------"

// Render draws the board as text, empty cells shown as a blank.
func Render(board Board) string {
	var sb strings.Builder
	sb.WriteString("\nCurrent Board:\n")
	for r, row := range board {
		cells := make([]string, len(row))
		for c, mark := range row {
			if mark == None {
				cells[c] = " "
			} else {
				cells[c] = string(mark)
			}
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteByte('\n')
		if r < len(board)-1 {
			sb.WriteString(rowSeparator)
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
