package heatmap

import (
	"errors"

	"github.com/shawnegan25/IMDB-heatmap/internal/imdb"
)

// ErrEmptyTable is returned when a rating table has no seasons. The
// pipeline never reaches rendering with one (harvesting fails first), but
// the renderer refuses it rather than emitting an empty image.
var ErrEmptyTable = errors.New("empty rating table")

// Cell holds one grid value. Valid is false where no rating exists, which
// is distinct from a rating of zero.
type Cell struct {
	Value float64
	Valid bool
}

// Grid is the rectangular structure the heatmap renders: one column per
// season in harvest order, one row per episode position, plus a synthetic
// per-season average row.
type Grid struct {
	Columns  []string // season labels, harvest order
	Rows     int      // episode rows; row index 0 is episode 1
	Cells    [][]Cell // [row][column]
	Averages []Cell   // per-column mean over present cells
	Overall  float64  // mean over all present episode cells
}

// Build derives a grid from a rating table. The row set is the union of
// episode positions across all seasons; cells a season never listed are
// marked invalid and excluded from averages.
func Build(table *imdb.RatingTable) (*Grid, error) {
	if table.Empty() {
		return nil, ErrEmptyTable
	}

	grid := &Grid{
		Columns: append([]string(nil), table.Seasons...),
		Rows:    table.MaxEpisodes(),
	}

	grid.Cells = make([][]Cell, grid.Rows)
	for row := range grid.Cells {
		grid.Cells[row] = make([]Cell, len(grid.Columns))
	}
	grid.Averages = make([]Cell, len(grid.Columns))

	var sum float64
	var count int
	for col, label := range grid.Columns {
		ratings := table.Ratings[label]

		var colSum float64
		for position, value := range ratings {
			grid.Cells[position-1][col] = Cell{Value: value, Valid: true}
			colSum += value
			sum += value
			count++
		}

		// A season with no present ratings keeps a missing average cell.
		if len(ratings) > 0 {
			grid.Averages[col] = Cell{
				Value: colSum / float64(len(ratings)),
				Valid: true,
			}
		}
	}

	if count > 0 {
		grid.Overall = sum / float64(count)
	}

	return grid, nil
}

// Min returns the smallest present rating in the grid, or zero when no
// cell is present. Used as the color-scale lower bound in auto mode.
func (g *Grid) Min() float64 {
	min := 0.0
	found := false
	for _, row := range g.Cells {
		for _, cell := range row {
			if !cell.Valid {
				continue
			}
			if !found || cell.Value < min {
				min = cell.Value
				found = true
			}
		}
	}
	return min
}
