package heatmap

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shawnegan25/IMDB-heatmap/internal/config"
	"github.com/shawnegan25/IMDB-heatmap/internal/imdb"
)

func newTestRenderer(t *testing.T, cfg config.HeatmapConfig) *Renderer {
	t.Helper()
	r, err := NewRenderer(cfg, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Breaking Bad", "Breaking_Bad_Heatmap.png"},
		{"Show: Part Two", "Show:_Part_Two_Heatmap.png"},
		{"Single", "Single_Heatmap.png"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFilename(tt.title))
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	r := newTestRenderer(t, config.HeatmapConfig{ScaleFloor: "auto", OutputDir: t.TempDir()})

	table := tableFrom([]string{"1", "2"}, map[string]imdb.SeasonRatings{
		"1": {1: 9.0, 2: 8.5},
		"2": {1: 7.0},
	})

	img, err := r.Render("Breaking Bad", table)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, minWidth, bounds.Dx(), "two seasons should not exceed the minimum width")
	assert.Equal(t, marginTop+3*cellH+marginBottom, bounds.Dy(), "two data rows plus the average row")
}

func TestRenderer_Render_WidthScalesWithSeasons(t *testing.T) {
	r := newTestRenderer(t, config.HeatmapConfig{ScaleFloor: "auto", OutputDir: t.TempDir()})

	seasons := make([]string, 15)
	ratings := make(map[string]imdb.SeasonRatings, 15)
	for i := range seasons {
		label := string(rune('A' + i))
		seasons[i] = label
		ratings[label] = imdb.SeasonRatings{1: 8.0}
	}

	img, err := r.Render("Long Runner", tableFrom(seasons, ratings))
	require.NoError(t, err)

	assert.Equal(t, marginLeft+15*cellW+marginRight, img.Bounds().Dx())
}

func TestRenderer_Render_EmptyTable(t *testing.T) {
	r := newTestRenderer(t, config.HeatmapConfig{ScaleFloor: "auto", OutputDir: t.TempDir()})

	_, err := r.Render("Nothing", imdb.NewRatingTable())
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestRenderer_Render_FixedFloor(t *testing.T) {
	r := newTestRenderer(t, config.HeatmapConfig{ScaleFloor: "7.0", OutputDir: t.TempDir()})

	table := tableFrom([]string{"1"}, map[string]imdb.SeasonRatings{
		"1": {1: 3.0, 2: 9.5},
	})

	_, err := r.Render("Rough Start", table)
	require.NoError(t, err)
}

func TestRenderer_WriteFile(t *testing.T) {
	dir := t.TempDir()
	r := newTestRenderer(t, config.HeatmapConfig{ScaleFloor: "auto", OutputDir: dir})

	table := tableFrom([]string{"1"}, map[string]imdb.SeasonRatings{
		"1": {1: 8.0},
	})

	img, err := r.Render("Show: Part Two", table)
	require.NoError(t, err)

	path, err := r.WriteFile("Show: Part Two", img)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Show:_Part_Two_Heatmap.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestNewRenderer_InvalidFloor(t *testing.T) {
	_, err := NewRenderer(config.HeatmapConfig{ScaleFloor: "warm"}, zerolog.Nop())
	assert.Error(t, err)
}
