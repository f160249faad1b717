package heatmap

import (
	"image/color"
	"testing"
)

func TestColorMap_At_Endpoints(t *testing.T) {
	cmap := NewColorMap(0)

	if got := cmap.At(0); got != gradientStops[0] {
		t.Errorf("At(0) = %v, want low stop %v", got, gradientStops[0])
	}
	if got := cmap.At(MaxRating); got != gradientStops[len(gradientStops)-1] {
		t.Errorf("At(10) = %v, want high stop %v", got, gradientStops[len(gradientStops)-1])
	}
	if got := cmap.At(5); got != gradientStops[1] {
		t.Errorf("At(5) = %v, want mid stop %v", got, gradientStops[1])
	}
}

func TestColorMap_At_ClampsBelowFloor(t *testing.T) {
	cmap := NewColorMap(7.0)

	if got := cmap.At(3.2); got != gradientStops[0] {
		t.Errorf("At(3.2) = %v, want low stop %v", got, gradientStops[0])
	}
}

func TestColorMap_FloorVariants(t *testing.T) {
	// The same rating maps to different colors depending on the floor
	// policy: with a fixed 7.0 floor an 8.5 sits higher on the scale than
	// with an auto floor of 5.0.
	auto := NewColorMap(5.0)
	fixed := NewColorMap(7.0)

	if auto.At(8.5) == fixed.At(8.5) {
		t.Error("floor policy should shift the gradient position of 8.5")
	}
}

func TestNewColorMap_DegenerateFloor(t *testing.T) {
	// A floor at the scale ceiling must not divide by zero.
	cmap := NewColorMap(MaxRating)

	if got := cmap.At(MaxRating); got != gradientStops[len(gradientStops)-1] {
		t.Errorf("At(10) = %v, want high stop", got)
	}
}

func TestAnnotationColor(t *testing.T) {
	tests := []struct {
		name string
		cell color.RGBA
		want color.Color
	}{
		{"red cell", gradientStops[0], color.White},
		{"yellow cell", gradientStops[1], color.Black},
		{"green cell", gradientStops[2], color.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := annotationColor(tt.cell); got != tt.want {
				t.Errorf("annotationColor(%v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}
