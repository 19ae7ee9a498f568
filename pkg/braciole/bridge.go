package braciole

import (
	"math"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
)

// Re-exports so bridge hosts do not import internal.
type (
	PointerEvent  = internal.PointerEvent
	PointerPhase  = internal.PointerPhase
	PointerButton = internal.PointerButton
)

const (
	PointerDown      = internal.PointerDown
	PointerMove      = internal.PointerMove
	PointerUp        = internal.PointerUp
	PointerCancel    = internal.PointerCancel
	PointerScroll    = internal.PointerScroll
	PointerPrimary   = internal.PointerPrimary
	PointerSecondary = internal.PointerSecondary
)

// MenuBuilder produces the menu for a recognized long-press. The point is
// in the attached target surface's local coordinates (window coordinates
// when the target is SurfaceNone). Returning nil means no menu applies
// there; the gesture ends silently.
type MenuBuilder func(origin layout.Point) *MenuConfiguration

// Haptic fires physical feedback. The internal rumbler satisfies this;
// tests substitute a recorder.
type Haptic interface {
	Pulse(duration time.Duration)
}

type BridgeOptions struct {
	// HoldDuration is how long a press must stay put to become a
	// long-press.
	HoldDuration time.Duration

	// MoveSlop is how far the press may drift before recognition is
	// cancelled, in logical pixels.
	MoveSlop float64

	// HapticPulse is the rumble length fired on recognition.
	HapticPulse time.Duration

	Haptics Haptic

	// Registry and Root localize press origins into the attached
	// target's coordinate space. Both default to the process-wide
	// registry and window surface.
	Registry *layout.Registry
	Root     layout.SurfaceID
}

func DefaultBridgeOptions() BridgeOptions {
	return BridgeOptions{
		HoldDuration: constants.DefaultHoldDuration,
		MoveSlop:     constants.DefaultMoveSlop,
		HapticPulse:  30 * time.Millisecond,
		Haptics:      internal.Haptics(),
		Registry:     internal.Surfaces(),
		Root:         internal.RootSurface(),
	}
}

// Bridge turns a host's pointer stream into context menu presentations. The
// host pumps ProcessEvent from its event loop and calls Update once per
// frame; a non-nil Update result is a menu the host should present on that
// turn. Presentation is always deferred by one Update so recognition never
// re-enters the host's event handling. UI thread only.
type Bridge struct {
	options BridgeOptions
	builder MenuBuilder
	target  layout.SurfaceID

	tracking  bool
	origin    layout.Point
	downTime  time.Time
	cancelled bool
	consumeUp bool

	pending *MenuConfiguration
	armed   bool
}

func NewBridge(options BridgeOptions) *Bridge {
	if options.HoldDuration <= 0 {
		options.HoldDuration = constants.DefaultHoldDuration
	}
	if options.MoveSlop <= 0 {
		options.MoveSlop = constants.DefaultMoveSlop
	}
	if options.HapticPulse <= 0 {
		options.HapticPulse = 30 * time.Millisecond
	}
	return &Bridge{options: options}
}

// Attach binds the bridge to a target surface and its menu builder.
// Attaching while already attached replaces both; attaching the same pair
// again is harmless.
func (b *Bridge) Attach(target layout.SurfaceID, builder MenuBuilder) {
	b.target = target
	b.builder = builder
}

// Detach clears the target and builder and abandons any in-flight gesture.
// Safe to call repeatedly; re-attach is supported.
func (b *Bridge) Detach() {
	b.builder = nil
	b.target = layout.SurfaceNone
	b.tracking = false
	b.consumeUp = false
	b.pending = nil
	b.armed = false
}

func (b *Bridge) Attached() bool {
	return b.builder != nil
}

// PresentMenu requests a menu at a point in window coordinates. Recognized
// gestures route through here too; calling it directly just skips the
// haptic. A no-op while detached. The presentation still defers to the
// next Update turn.
func (b *Bridge) PresentMenu(p layout.Point) {
	if b.builder == nil {
		return
	}

	config := b.builder(b.localize(p))
	if config == nil || len(config.Items) == 0 {
		return
	}

	b.pending = config
	b.armed = false
}

// ProcessEvent feeds one pointer event into gesture recognition. It reports
// true when the event belongs to a recognized press and the host must not
// act on it.
func (b *Bridge) ProcessEvent(ev *PointerEvent) bool {
	if ev == nil || b.builder == nil {
		return false
	}

	switch ev.Phase {
	case internal.PointerDown:
		if ev.Button == internal.PointerSecondary {
			// A secondary click is an explicit menu request; no hold
			// needed.
			b.recognize(layout.Point{X: ev.X, Y: ev.Y})
			b.consumeUp = true
			return true
		}
		b.tracking = true
		b.cancelled = false
		b.origin = layout.Point{X: ev.X, Y: ev.Y}
		b.downTime = ev.Time

	case internal.PointerMove:
		if !b.tracking || b.cancelled {
			return false
		}
		dx := ev.X - b.origin.X
		dy := ev.Y - b.origin.Y
		if math.Hypot(dx, dy) > b.options.MoveSlop {
			b.cancelled = true
		}

	case internal.PointerUp, internal.PointerCancel:
		b.tracking = false
		if b.consumeUp {
			b.consumeUp = false
			return true
		}
	}

	return false
}

// Update advances hold recognition and returns a menu configuration when
// one is due for presentation this turn, nil otherwise.
func (b *Bridge) Update(now time.Time) *MenuConfiguration {
	if b.tracking && !b.cancelled && now.Sub(b.downTime) >= b.options.HoldDuration {
		b.tracking = false
		b.consumeUp = true
		b.recognize(b.origin)
	}

	if b.pending == nil {
		return nil
	}
	if !b.armed {
		// Recognized this turn; present on the next one.
		b.armed = true
		return nil
	}

	config := b.pending
	b.pending = nil
	b.armed = false
	return config
}

// recognize fires haptics and asks the builder for a menu. The haptic fires
// before the builder runs and regardless of its answer; a nil menu is a
// silent no-op beyond that.
func (b *Bridge) recognize(origin layout.Point) {
	if b.options.Haptics != nil {
		b.options.Haptics.Pulse(b.options.HapticPulse)
	}
	b.PresentMenu(origin)
}

// localize maps a window-space point into the target surface's local
// coordinates. Conversion failures fall back to the window-space point;
// the builder still runs.
func (b *Bridge) localize(p layout.Point) layout.Point {
	if b.target == layout.SurfaceNone || b.options.Registry == nil {
		return p
	}

	rect, ok := b.options.Registry.Convert(layout.Rect{X: p.X, Y: p.Y}, b.options.Root, b.target)
	if !ok {
		internal.GetInternalLogger().Debug("Cannot localize press origin", "target", b.target)
		return p
	}
	return layout.Point{X: rect.X, Y: rect.Y}
}
