package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/shawnegan25/IMDB-heatmap/internal/config"
	"github.com/shawnegan25/IMDB-heatmap/internal/imdb"
)

// Layout constants, in pixels. The image width grows linearly with the
// season count so columns never crowd.
const (
	cellW        = 56
	cellH        = 36
	cellGutter   = 1
	marginLeft   = 90
	marginRight  = 30
	marginTop    = 100
	marginBottom = 60
	minWidth     = 480
)

// Renderer draws rating tables as annotated heatmap images.
type Renderer struct {
	floor     float64
	autoFloor bool
	outputDir string
	font      *truetype.Font
	logger    zerolog.Logger
}

// NewRenderer creates a renderer from heatmap configuration.
func NewRenderer(cfg config.HeatmapConfig, logger zerolog.Logger) (*Renderer, error) {
	floor, auto, err := cfg.Floor()
	if err != nil {
		return nil, err
	}

	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	return &Renderer{
		floor:     floor,
		autoFloor: auto,
		outputDir: outputDir,
		font:      fnt,
		logger:    logger.With().Str("component", "heatmap").Logger(),
	}, nil
}

func (r *Renderer) face(size float64) font.Face {
	return truetype.NewFace(r.font, &truetype.Options{Size: size})
}

// Render draws the season × episode heatmap for a rating table: color-coded
// annotated cells, a per-season average row, axis labels and an overall
// average caption. Missing cells keep the neutral background.
func (r *Renderer) Render(title string, table *imdb.RatingTable) (image.Image, error) {
	grid, err := Build(table)
	if err != nil {
		return nil, err
	}

	floor := r.floor
	if r.autoFloor {
		floor = grid.Min()
	}
	cmap := NewColorMap(floor)

	cols := len(grid.Columns)
	totalRows := grid.Rows + 1 // data rows plus the average row

	width := marginLeft + cols*cellW + marginRight
	if width < minWidth {
		width = minWidth
	}
	height := marginTop + totalRows*cellH + marginBottom

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	gridLeft := float64(marginLeft)
	gridTop := float64(marginTop)
	gridW := float64(cols * cellW)
	gridH := float64(totalRows * cellH)

	// Title
	dc.SetColor(color.Black)
	dc.SetFontFace(r.face(20))
	dc.DrawStringAnchored(title, float64(width)/2, 30, 0.5, 0.5)

	// Axis labels: seasons across the top, episodes down the side
	dc.SetFontFace(r.face(13))
	dc.DrawStringAnchored("Season", gridLeft+gridW/2, 60, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 20, gridTop+gridH/2)
	dc.DrawStringAnchored("Episode", 20, gridTop+gridH/2, 0.5, 0.5)
	dc.Pop()

	// Column and row tick labels
	dc.SetFontFace(r.face(12))
	for col, label := range grid.Columns {
		x := gridLeft + float64(col*cellW) + cellW/2
		dc.DrawStringAnchored(label, x, gridTop-12, 0.5, 0.5)
	}
	for row := 0; row < grid.Rows; row++ {
		y := gridTop + float64(row*cellH) + cellH/2
		dc.DrawStringAnchored(fmt.Sprintf("%d", row+1), gridLeft-16, y, 1, 0.5)
	}
	dc.DrawStringAnchored("Avg", gridLeft-16, gridTop+float64(grid.Rows*cellH)+cellH/2, 1, 0.5)

	// Cells
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < cols; col++ {
			x := gridLeft + float64(col*cellW)
			y := gridTop + float64(row*cellH)
			r.drawCell(dc, x, y, grid.Cells[row][col], cmap)
		}
	}
	for col := 0; col < cols; col++ {
		x := gridLeft + float64(col*cellW)
		y := gridTop + float64(grid.Rows*cellH)
		r.drawCell(dc, x, y, grid.Averages[col], cmap)
	}

	// Caption
	dc.SetColor(color.Black)
	dc.SetFontFace(r.face(14))
	dc.DrawStringAnchored(
		fmt.Sprintf("Average Rating: %.1f", grid.Overall),
		float64(width)/2, float64(height)-24, 0.5, 0.5,
	)

	return dc.Image(), nil
}

// drawCell fills and annotates one cell. Missing cells are skipped and stay
// the background color.
func (r *Renderer) drawCell(dc *gg.Context, x, y float64, cell Cell, cmap ColorMap) {
	if !cell.Valid {
		return
	}

	fill := cmap.At(cell.Value)
	dc.SetColor(fill)
	dc.DrawRectangle(x+cellGutter, y+cellGutter, cellW-2*cellGutter, cellH-2*cellGutter)
	dc.Fill()

	dc.SetColor(annotationColor(fill))
	dc.SetFontFace(r.face(12))
	dc.DrawStringAnchored(fmt.Sprintf("%.1f", cell.Value), x+cellW/2, y+cellH/2, 0.5, 0.5)
}

// OutputFilename derives the image filename from the canonical title:
// spaces become underscores, punctuation is left untouched.
func OutputFilename(title string) string {
	return strings.ReplaceAll(title, " ", "_") + "_Heatmap.png"
}

// WriteFile encodes the image as PNG into the configured output directory
// and returns the written path.
func (r *Renderer) WriteFile(title string, img image.Image) (string, error) {
	path := filepath.Join(r.outputDir, OutputFilename(title))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}

	r.logger.Info().Str("path", path).Msg("wrote heatmap image")
	return path, nil
}
