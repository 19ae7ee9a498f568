package internal

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

func UniformPadding(amount int32) Padding {
	return Padding{Top: amount, Right: amount, Bottom: amount, Left: amount}
}

// RenderText draws a single line of text. Alignment decides what x means:
// left edge, center, or right edge of the rendered run.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, x, y int32, color sdl.Color, align constants.TextAlign) {
	if text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	rect := &sdl.Rect{Y: y, W: surface.W, H: surface.H}
	switch align {
	case constants.TextAlignCenter:
		rect.X = x - surface.W/2
	case constants.TextAlignRight:
		rect.X = x - surface.W
	default:
		rect.X = x
	}

	renderer.Copy(texture, nil, rect)
}

// TextSize measures a single line without rendering it.
func TextSize(font *ttf.Font, text string) (int32, int32) {
	if text == "" {
		return 0, int32(font.Height())
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, int32(font.Height())
	}
	return int32(w), int32(h)
}

func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(
		renderer,
		rect.X+radius,
		rect.Y,
		rect.X+rect.W-radius,
		rect.Y+rect.H,
		color,
	)

	gfx.BoxColor(
		renderer,
		rect.X,
		rect.Y+radius,
		rect.X+radius,
		rect.Y+rect.H-radius,
		color,
	)
	gfx.BoxColor(
		renderer,
		rect.X+rect.W-radius,
		rect.Y+radius,
		rect.X+rect.W,
		rect.Y+rect.H-radius,
		color,
	)

	// Top-left corner
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	// Top-right corner
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	// Bottom-left corner
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	// Bottom-right corner
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	// Fill the corner
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)

	// Add anti-aliased edge for smooth appearance
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	// Add additional anti-aliased circles based on radius size for extra smoothness
	// Larger radii benefit from multiple AA layers to eliminate jaggedness
	if radius > 15 {
		// Large pills (like list items) - add 3 layers of AA
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
		gfx.AACircleColor(renderer, centerX, centerY, radius-2, color)
	} else if radius > 5 {
		// Medium pills (like footer buttons) - add 2 layers of AA
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	} else if radius > 2 {
		// Small pills - add 1 layer of AA
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// DrawBadgeDot renders a filled anti-aliased circle, used for item badges.
func DrawBadgeDot(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)
}

// DrawSmoothScrollbar renders a scrollbar with anti-aliased rounded ends
func DrawSmoothScrollbar(renderer *sdl.Renderer, x, y, width, height int32, color sdl.Color) {
	if width <= 0 || height <= 0 {
		return
	}

	// For narrow scrollbars, use fully rounded ends
	radius := width / 2
	if height < width {
		radius = height / 2
	}

	DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: width, H: height}, radius, color)
}

func Abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}
