// Package resources provides the application icons. They are drawn at first
// use rather than shipped as files: a filled circle with a diamond in the
// middle, teal while the timer runs and grey while it is paused.
package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

// IconSize is the edge length of the generated icons in pixels.
const IconSize = 64

// Variant selects the icon colouring.
type Variant string

const (
	Active Variant = "active"
	Paused Variant = "paused"
)

var palettes = map[Variant]struct{ disc, mark color.NRGBA }{
	Active: {disc: color.NRGBA{R: 0, G: 173, B: 181, A: 255}, mark: color.NRGBA{R: 34, G: 40, B: 49, A: 255}},
	Paused: {disc: color.NRGBA{R: 142, G: 150, B: 158, A: 255}, mark: color.NRGBA{R: 66, G: 72, B: 80, A: 255}},
}

var iconCache sync.Map

// Icon returns the tray and window icon for variant.
func Icon(variant Variant) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(variant); ok {
		return cached.(fyne.Resource), nil
	}

	palette, ok := palettes[variant]
	if !ok {
		return nil, fmt.Errorf("unknown icon variant %q", variant)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, drawIcon(palette.disc, palette.mark)); err != nil {
		return nil, fmt.Errorf("encode icon %s: %w", variant, err)
	}

	resource := fyne.NewStaticResource("workrest-"+string(variant)+".png", encoded.Bytes())
	actual, _ := iconCache.LoadOrStore(variant, resource)
	return actual.(fyne.Resource), nil
}

// MustIcon returns Icon or panics on error.
func MustIcon(variant Variant) fyne.Resource {
	resource, err := Icon(variant)
	if err != nil {
		panic(err)
	}
	return resource
}

// drawIcon paints a disc inset by 8px and a diamond spanning the middle half.
func drawIcon(disc, mark color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, IconSize, IconSize))

	const (
		center = IconSize / 2
		radius = center - 8
		reach  = IconSize / 4
	)
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			dx, dy := x-center, y-center
			switch {
			case abs(dx)+abs(dy) <= reach:
				img.SetNRGBA(x, y, mark)
			case dx*dx+dy*dy <= radius*radius:
				img.SetNRGBA(x, y, disc)
			}
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
