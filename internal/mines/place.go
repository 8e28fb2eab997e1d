package mines

import "github.com/sirupsen/logrus"

// placeMines plants exactly MineCount mines on distinct cells other than
// excludeY:excludeX, then computes every adjacency count.
func (b *Board) placeMines(excludeY, excludeX int) {
	excluded := excludeY*b.Width + excludeX

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, b.Cells()-1)
	for i := range b.Cells() {
		if i != excluded {
			candidates = append(candidates, i)
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range b.MineCount {
		i := b.rnd.IntN(k)
		j := candidates[i]
		b.grid[j/b.Width][j%b.Width].plantMine()
		k--
		candidates[i] = candidates[k]
	}

	b.minesPlaced = true
	b.countAdjacent()

	Log.WithFields(logrus.Fields{
		"board":   b.Params.String(),
		"startY":  excludeY,
		"startX":  excludeX,
		"planted": b.MineCount,
	}).Debug("mines placed")
}
