package braciole

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
)

type recordingHaptic struct {
	pulses []time.Duration
}

func (r *recordingHaptic) Pulse(d time.Duration) {
	r.pulses = append(r.pulses, d)
}

func testBridgeOptions(h Haptic) BridgeOptions {
	return BridgeOptions{
		HoldDuration: 500 * time.Millisecond,
		MoveSlop:     10,
		HapticPulse:  30 * time.Millisecond,
		Haptics:      h,
	}
}

func down(x, y float64, t time.Time) *PointerEvent {
	return &PointerEvent{Phase: PointerDown, Button: PointerPrimary, X: x, Y: y, Time: t}
}

func move(x, y float64, t time.Time) *PointerEvent {
	return &PointerEvent{Phase: PointerMove, Button: PointerPrimary, X: x, Y: y, Time: t}
}

func up(x, y float64, t time.Time) *PointerEvent {
	return &PointerEvent{Phase: PointerUp, Button: PointerPrimary, X: x, Y: y, Time: t}
}

func singleItemMenu() *MenuConfiguration {
	return &MenuConfiguration{Items: []MenuItem{{ID: "open", Title: "Open"}}}
}

func TestBridgeHoldPresentsOnNextTurn(t *testing.T) {
	haptic := &recordingHaptic{}
	b := NewBridge(testBridgeOptions(haptic))

	var builtAt layout.Point
	b.Attach(layout.SurfaceNone, func(origin layout.Point) *MenuConfiguration {
		builtAt = origin
		return singleItemMenu()
	})

	t0 := time.Now()
	b.ProcessEvent(down(100, 200, t0))

	if got := b.Update(t0.Add(100 * time.Millisecond)); got != nil {
		t.Fatal("menu before hold duration elapsed")
	}
	if len(haptic.pulses) != 0 {
		t.Fatal("haptic before recognition")
	}

	// Recognition turn: haptic fires, presentation is deferred.
	if got := b.Update(t0.Add(500 * time.Millisecond)); got != nil {
		t.Fatal("menu on the recognition turn; should be deferred")
	}
	if len(haptic.pulses) != 1 {
		t.Fatalf("haptic pulses = %d, want 1", len(haptic.pulses))
	}

	got := b.Update(t0.Add(516 * time.Millisecond))
	if got == nil {
		t.Fatal("no menu on the turn after recognition")
	}
	if (builtAt != layout.Point{X: 100, Y: 200}) {
		t.Errorf("builder origin = %+v", builtAt)
	}

	// One gesture, one menu.
	if b.Update(t0.Add(532*time.Millisecond)) != nil {
		t.Error("menu delivered twice")
	}
}

func TestBridgeConsumesRecognizedRelease(t *testing.T) {
	b := NewBridge(testBridgeOptions(&recordingHaptic{}))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return singleItemMenu() })

	t0 := time.Now()
	if b.ProcessEvent(down(100, 100, t0)) {
		t.Error("plain press down should not be consumed")
	}

	b.Update(t0.Add(600 * time.Millisecond))

	if !b.ProcessEvent(up(100, 100, t0.Add(620*time.Millisecond))) {
		t.Error("release of a recognized press must be consumed")
	}
	// Only that one release.
	if b.ProcessEvent(up(100, 100, t0.Add(700*time.Millisecond))) {
		t.Error("later release wrongly consumed")
	}
}

func TestBridgeTapReleaseNotConsumed(t *testing.T) {
	b := NewBridge(testBridgeOptions(&recordingHaptic{}))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return singleItemMenu() })

	t0 := time.Now()
	b.ProcessEvent(down(100, 100, t0))
	if b.ProcessEvent(up(100, 100, t0.Add(100*time.Millisecond))) {
		t.Error("quick tap release should pass through to the host")
	}
}

func TestBridgeLocalizesOriginToTarget(t *testing.T) {
	reg := layout.NewRegistry()
	root := reg.Register(layout.SurfaceNone, layout.Rect{W: 600, H: 800})
	panel := reg.Register(root, layout.Rect{X: 50, Y: 100, W: 400, H: 600})

	options := testBridgeOptions(&recordingHaptic{})
	options.Registry = reg
	options.Root = root

	b := NewBridge(options)

	var builtAt layout.Point
	b.Attach(panel, func(origin layout.Point) *MenuConfiguration {
		builtAt = origin
		return singleItemMenu()
	})

	t0 := time.Now()
	b.ProcessEvent(down(120, 250, t0))
	b.Update(t0.Add(600 * time.Millisecond))

	if (builtAt != layout.Point{X: 70, Y: 150}) {
		t.Errorf("builder origin = %+v, want the panel-local point {70 150}", builtAt)
	}
}

func TestBridgeHapticFiresBeforeBuilder(t *testing.T) {
	haptic := &recordingHaptic{}
	b := NewBridge(testBridgeOptions(haptic))

	hapticFiredFirst := false
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration {
		hapticFiredFirst = len(haptic.pulses) == 1
		return singleItemMenu()
	})

	t0 := time.Now()
	b.ProcessEvent(down(10, 10, t0))
	b.Update(t0.Add(time.Second))

	if !hapticFiredFirst {
		t.Error("builder ran before the haptic pulse")
	}
}

func TestBridgeNilBuilderResultIsSilent(t *testing.T) {
	haptic := &recordingHaptic{}
	b := NewBridge(testBridgeOptions(haptic))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return nil })

	t0 := time.Now()
	b.ProcessEvent(down(10, 10, t0))

	for i := 1; i <= 4; i++ {
		if got := b.Update(t0.Add(time.Duration(i) * 500 * time.Millisecond)); got != nil {
			t.Fatal("nil builder result must not present")
		}
	}

	// The haptic still fired: recognition happened, the menu just
	// declined to exist.
	if len(haptic.pulses) != 1 {
		t.Errorf("haptic pulses = %d, want 1", len(haptic.pulses))
	}
}

func TestBridgeMoveBeyondSlopCancels(t *testing.T) {
	haptic := &recordingHaptic{}
	b := NewBridge(testBridgeOptions(haptic))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return singleItemMenu() })

	t0 := time.Now()
	b.ProcessEvent(down(100, 100, t0))
	b.ProcessEvent(move(100, 115, t0.Add(50*time.Millisecond)))

	if got := b.Update(t0.Add(time.Second)); got != nil {
		t.Error("menu after the press drifted past the slop")
	}
	if len(haptic.pulses) != 0 {
		t.Error("haptic after a cancelled gesture")
	}
}

func TestBridgeMoveWithinSlopKeepsTracking(t *testing.T) {
	b := NewBridge(testBridgeOptions(&recordingHaptic{}))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return singleItemMenu() })

	t0 := time.Now()
	b.ProcessEvent(down(100, 100, t0))
	b.ProcessEvent(move(104, 103, t0.Add(50*time.Millisecond)))

	b.Update(t0.Add(600 * time.Millisecond))
	if got := b.Update(t0.Add(616 * time.Millisecond)); got == nil {
		t.Error("small drift should not cancel the hold")
	}
}

func TestBridgeReleaseBeforeHoldCancels(t *testing.T) {
	haptic := &recordingHaptic{}
	b := NewBridge(testBridgeOptions(haptic))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return singleItemMenu() })

	t0 := time.Now()
	b.ProcessEvent(down(100, 100, t0))
	b.ProcessEvent(up(100, 100, t0.Add(200*time.Millisecond)))

	if got := b.Update(t0.Add(time.Second)); got != nil {
		t.Error("menu after the press was released early")
	}
	if len(haptic.pulses) != 0 {
		t.Error("haptic for a tap")
	}
}

func TestBridgeSecondaryClickRecognizesImmediately(t *testing.T) {
	haptic := &recordingHaptic{}
	b := NewBridge(testBridgeOptions(haptic))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return singleItemMenu() })

	t0 := time.Now()
	consumed := b.ProcessEvent(&PointerEvent{Phase: PointerDown, Button: PointerSecondary, X: 50, Y: 60, Time: t0})
	if !consumed {
		t.Fatal("secondary click should be consumed")
	}

	if len(haptic.pulses) != 1 {
		t.Fatal("secondary click should recognize without a hold")
	}
	if got := b.Update(t0); got != nil {
		t.Fatal("presentation should still defer one turn")
	}
	if got := b.Update(t0.Add(16 * time.Millisecond)); got == nil {
		t.Fatal("no menu on the following turn")
	}
}

func TestBridgePresentMenuSkipsHaptic(t *testing.T) {
	haptic := &recordingHaptic{}
	b := NewBridge(testBridgeOptions(haptic))

	var builtAt layout.Point
	b.Attach(layout.SurfaceNone, func(origin layout.Point) *MenuConfiguration {
		builtAt = origin
		return singleItemMenu()
	})

	b.PresentMenu(layout.Point{X: 40, Y: 80})

	if len(haptic.pulses) != 0 {
		t.Error("programmatic presentation must not rumble")
	}

	t0 := time.Now()
	if got := b.Update(t0); got != nil {
		t.Fatal("programmatic presentation should still defer one turn")
	}
	if got := b.Update(t0.Add(16 * time.Millisecond)); got == nil {
		t.Fatal("no menu after PresentMenu")
	}
	if (builtAt != layout.Point{X: 40, Y: 80}) {
		t.Errorf("builder origin = %+v", builtAt)
	}

	// Detached bridges ignore the call.
	b.Detach()
	b.PresentMenu(layout.Point{X: 1, Y: 1})
	if got := b.Update(t0.Add(time.Second)); got != nil {
		t.Error("detached PresentMenu produced a menu")
	}
}

func TestBridgeDetachIsIdempotent(t *testing.T) {
	b := NewBridge(testBridgeOptions(&recordingHaptic{}))
	b.Attach(layout.SurfaceNone, func(layout.Point) *MenuConfiguration { return singleItemMenu() })

	t0 := time.Now()
	b.ProcessEvent(down(10, 10, t0))

	b.Detach()
	b.Detach()

	if b.Attached() {
		t.Error("still attached after Detach")
	}
	if got := b.Update(t0.Add(time.Second)); got != nil {
		t.Error("in-flight gesture survived Detach")
	}

	// Events while detached are ignored.
	b.ProcessEvent(down(10, 10, t0.Add(2*time.Second)))
	if got := b.Update(t0.Add(3 * time.Second)); got != nil {
		t.Error("detached bridge produced a menu")
	}
}

func TestBridgeReattachWorks(t *testing.T) {
	b := NewBridge(testBridgeOptions(&recordingHaptic{}))
	builder := func(layout.Point) *MenuConfiguration { return singleItemMenu() }

	b.Attach(layout.SurfaceNone, builder)
	b.Detach()
	b.Attach(layout.SurfaceNone, builder)
	b.Attach(layout.SurfaceNone, builder) // repeat attach is harmless

	t0 := time.Now()
	b.ProcessEvent(down(10, 10, t0))
	b.Update(t0.Add(600 * time.Millisecond))
	if got := b.Update(t0.Add(616 * time.Millisecond)); got == nil {
		t.Error("re-attached bridge did not present")
	}
}
