package mines

import "strings"

// RenderRows projects the grid into one string per row, one symbol per
// cell. With revealMines set every mine is shown.
func (b *Board) RenderRows(revealMines bool) []string {
	rows := make([]string, 0, b.Height)
	for _, row := range b.grid {
		var sb strings.Builder
		sb.Grow(len(row))
		for _, c := range row {
			sb.WriteRune(c.Render(revealMines))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// [*Board] implements [fmt.Stringer]
func (b *Board) String() string {
	return strings.Join(b.RenderRows(b.Finished()), "\n")
}
