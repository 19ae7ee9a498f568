package layout

import "testing"

func TestPlaceBelowAnchor(t *testing.T) {
	anchor := Rect{X: 20, Y: 100, W: 300, H: 44}
	size := Size{W: 250, H: 180}
	viewport := Size{W: 600, H: 800}

	got := Place(anchor, size, viewport)

	if got.Above {
		t.Error("expected placement below the anchor")
	}
	// Centered on the anchor midpoint 170, clamped to the left margin.
	if got.Frame.X != 45 {
		t.Errorf("X = %v, want 45", got.Frame.X)
	}
	if got.Frame.Y != 152 {
		t.Errorf("Y = %v, want anchor bottom + gap = 152", got.Frame.Y)
	}
}

func TestPlaceClampsToMargins(t *testing.T) {
	viewport := Size{W: 600, H: 800}
	size := Size{W: 250, H: 100}

	left := Place(Rect{X: 0, Y: 10, W: 20, H: 20}, size, viewport)
	if left.Frame.X != ScreenMargin {
		t.Errorf("left clamp X = %v, want %v", left.Frame.X, ScreenMargin)
	}

	right := Place(Rect{X: 590, Y: 10, W: 20, H: 20}, size, viewport)
	if want := viewport.W - size.W - ScreenMargin; right.Frame.X != want {
		t.Errorf("right clamp X = %v, want %v", right.Frame.X, want)
	}
}

func TestPlaceFlipsAbove(t *testing.T) {
	viewport := Size{W: 600, H: 800}
	size := Size{W: 250, H: 200}
	anchor := Rect{X: 100, Y: 700, W: 100, H: 40}

	got := Place(anchor, size, viewport)

	if !got.Above {
		t.Fatal("expected placement above the anchor")
	}
	if want := anchor.Y - AnchorGap - size.H; got.Frame.Y != want {
		t.Errorf("Y = %v, want %v", got.Frame.Y, want)
	}
}

// A popup taller than either candidate slot stays above the anchor and is
// allowed to run off the top; no further correction happens.
func TestPlaceBothCandidatesOverflow(t *testing.T) {
	viewport := Size{W: 600, H: 400}
	size := Size{W: 250, H: 380}
	anchor := Rect{X: 100, Y: 180, W: 100, H: 40}

	got := Place(anchor, size, viewport)

	if !got.Above {
		t.Fatal("expected the above-anchor candidate")
	}
	if want := anchor.Y - AnchorGap - size.H; got.Frame.Y != want {
		t.Errorf("Y = %v, want uncorrected %v", got.Frame.Y, want)
	}
	if got.Frame.Y >= 0 {
		t.Errorf("Y = %v, expected overflow past the top edge", got.Frame.Y)
	}
}

func TestCenteredFallback(t *testing.T) {
	got := CenteredFallback(Size{W: 200, H: 100}, Size{W: 600, H: 800})
	want := Rect{X: 200, Y: 350, W: 200, H: 100}
	if got != want {
		t.Errorf("CenteredFallback = %+v, want %+v", got, want)
	}
}
