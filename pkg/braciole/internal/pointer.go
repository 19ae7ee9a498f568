package internal

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// PointerPhase is the lifecycle stage of a pointer contact.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
	PointerScroll
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	case PointerScroll:
		return "scroll"
	}
	return "unknown"
}

// PointerButton distinguishes the primary contact (left click, touch) from
// the secondary one (right click).
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
)

// PointerEvent is a unified pointer sample in window coordinates. Mouse,
// touch, and wheel input all normalize into this shape.
type PointerEvent struct {
	Phase   PointerPhase
	Button  PointerButton
	X       float64
	Y       float64
	ScrollY float64
	Time    time.Time
}

var globalPointerProcessor *PointerProcessor

func InitPointerProcessor() {
	globalPointerProcessor = &PointerProcessor{}
}

func GetPointerProcessor() *PointerProcessor {
	return globalPointerProcessor
}

// PointerProcessor converts raw SDL input events into PointerEvents. Touch
// coordinates arrive normalized to [0,1] and are scaled to the window; the
// first finger down is tracked so later fingers do not double-report.
type PointerProcessor struct {
	activeFinger   sdl.FingerID
	fingerTracking bool
	buttonDown     bool
}

func (pp *PointerProcessor) ProcessSDLEvent(event sdl.Event) *PointerEvent {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		// Synthesized mouse events shadowing touch input are dropped;
		// the touch path already reported them.
		if e.Which == sdl.TOUCH_MOUSEID {
			return nil
		}

		button := PointerPrimary
		if e.Button == sdl.BUTTON_RIGHT {
			button = PointerSecondary
		} else if e.Button != sdl.BUTTON_LEFT {
			return nil
		}

		phase := PointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			phase = PointerDown
			pp.buttonDown = true
		} else {
			pp.buttonDown = false
		}

		return &PointerEvent{
			Phase:  phase,
			Button: button,
			X:      float64(e.X),
			Y:      float64(e.Y),
			Time:   time.Now(),
		}

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID || !pp.buttonDown {
			return nil
		}
		return &PointerEvent{
			Phase:  PointerMove,
			Button: PointerPrimary,
			X:      float64(e.X),
			Y:      float64(e.Y),
			Time:   time.Now(),
		}

	case *sdl.MouseWheelEvent:
		if e.Y == 0 {
			return nil
		}
		x, y, _ := sdl.GetMouseState()
		return &PointerEvent{
			Phase:   PointerScroll,
			Button:  PointerPrimary,
			X:       float64(x),
			Y:       float64(y),
			ScrollY: float64(e.Y),
			Time:    time.Now(),
		}

	case *sdl.TouchFingerEvent:
		win := GetWindow()
		x := float64(e.X) * float64(win.GetWidth())
		y := float64(e.Y) * float64(win.GetHeight())

		switch e.Type {
		case sdl.FINGERDOWN:
			if pp.fingerTracking {
				return nil
			}
			pp.fingerTracking = true
			pp.activeFinger = e.FingerID
			return &PointerEvent{Phase: PointerDown, Button: PointerPrimary, X: x, Y: y, Time: time.Now()}
		case sdl.FINGERMOTION:
			if !pp.fingerTracking || e.FingerID != pp.activeFinger {
				return nil
			}
			return &PointerEvent{Phase: PointerMove, Button: PointerPrimary, X: x, Y: y, Time: time.Now()}
		case sdl.FINGERUP:
			if !pp.fingerTracking || e.FingerID != pp.activeFinger {
				return nil
			}
			pp.fingerTracking = false
			return &PointerEvent{Phase: PointerUp, Button: PointerPrimary, X: x, Y: y, Time: time.Now()}
		}
	}

	return nil
}
