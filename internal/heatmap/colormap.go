package heatmap

import "image/color"

// MaxRating is the fixed upper bound of the color scale.
const MaxRating = 10.0

// Gradient stops from low to high rating: red through yellow to green.
var gradientStops = []color.RGBA{
	{R: 0xd6, G: 0x27, B: 0x27, A: 0xff},
	{R: 0xf5, G: 0xe5, B: 0x05, A: 0xff},
	{R: 0x15, G: 0xf5, B: 0x05, A: 0xff},
}

// ColorMap maps ratings onto the red-yellow-green gradient between a lower
// bound and the maximum possible rating.
type ColorMap struct {
	min, max float64
}

// NewColorMap builds a scale from floor up to MaxRating. A floor at or
// above MaxRating degenerates; it is pulled down one unit so the scale
// keeps a nonzero span.
func NewColorMap(floor float64) ColorMap {
	if floor >= MaxRating {
		floor = MaxRating - 1
	}
	return ColorMap{min: floor, max: MaxRating}
}

// At returns the gradient color for a rating. Values outside the scale
// clamp to its ends.
func (m ColorMap) At(value float64) color.RGBA {
	t := (value - m.min) / (m.max - m.min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	scaled := t * float64(len(gradientStops)-1)
	i := int(scaled)
	if i >= len(gradientStops)-1 {
		return gradientStops[len(gradientStops)-1]
	}

	return lerpRGBA(gradientStops[i], gradientStops[i+1], scaled-float64(i))
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 0xff,
	}
}

// annotationColor picks black or white text for readability on a cell color.
func annotationColor(c color.RGBA) color.Color {
	luminance := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luminance > 150 {
		return color.Black
	}
	return color.White
}
