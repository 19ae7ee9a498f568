package layout

const (
	// ScreenMargin keeps the popup off the viewport edges.
	ScreenMargin = 16.0

	// AnchorGap separates the popup from its anchor rect.
	AnchorGap = 8.0
)

// Placement is the resolved popup frame and which vertical candidate won.
type Placement struct {
	Frame Rect
	Above bool
}

// Place positions a popup of the given size relative to an anchor rect, both
// in viewport coordinates. Horizontally the popup centers under the anchor
// midpoint, clamped to the screen margins. Vertically it goes below the
// anchor; if that would overflow the viewport it flips above. When both
// candidates overflow the above-anchor frame is returned uncorrected.
func Place(anchor Rect, size Size, viewport Size) Placement {
	x := clamp(anchor.MidX()-size.W/2, ScreenMargin, viewport.W-size.W-ScreenMargin)

	y := anchor.Bottom() + AnchorGap
	above := false
	if y+size.H+ScreenMargin > viewport.H {
		y = anchor.Y - AnchorGap - size.H
		above = true
	}

	return Placement{
		Frame: Rect{X: x, Y: y, W: size.W, H: size.H},
		Above: above,
	}
}

// CenteredFallback is the default frame used when the anchor cannot be
// resolved to the overlay's coordinate space.
func CenteredFallback(size Size, viewport Size) Rect {
	return Rect{
		X: (viewport.W - size.W) / 2,
		Y: (viewport.H - size.H) / 2,
		W: size.W,
		H: size.H,
	}
}
