package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

const menuFadeDuration = 150 * time.Millisecond

type menuPhase int32

const (
	phaseUnpresented menuPhase = iota
	phasePresenting
	phasePresented
	phaseDismissing
)

// menuController owns one presentation of a context menu: its measured
// geometry, the fade state machine, and hit testing. It never touches SDL,
// which keeps the whole lifecycle drivable from tests with explicit clocks.
type menuController struct {
	config   MenuConfiguration
	contents []layout.ItemContent
	metrics  layout.Metrics
	frame    layout.Rect
	above    bool
	viewport layout.Size

	phase      *atomic.Int32
	phaseStart time.Time

	pressedIndex int

	result      MenuResult
	actionFired bool
}

func newMenuController(config MenuConfiguration) *menuController {
	return &menuController{
		config:       config,
		contents:     config.contents(),
		phase:        atomic.NewInt32(int32(phaseUnpresented)),
		pressedIndex: -1,
		result:       MenuResult{Action: MenuDismissed, ItemIndex: -1},
	}
}

func (mc *menuController) currentPhase() menuPhase {
	return menuPhase(mc.phase.Load())
}

func (mc *menuController) setPhase(p menuPhase, now time.Time) {
	mc.phase.Store(int32(p))
	mc.phaseStart = now
}

// layoutMenu measures the configuration and resolves the popup frame in
// window coordinates. An anchor that cannot be converted (unknown surface,
// no shared root) degrades to a centered popup rather than failing.
func (mc *menuController) layoutMenu(reg *layout.Registry, root layout.SurfaceID, m layout.TextMeasurer, viewport layout.Size) {
	mc.viewport = viewport
	mc.metrics = layout.Measure(mc.contents, m, mc.config.Width)
	size := layout.Size{W: mc.metrics.Width, H: mc.metrics.Height}

	anchor := mc.config.Anchor
	if mc.config.Source != layout.SurfaceNone && mc.config.Source != root {
		converted, ok := reg.Convert(anchor, mc.config.Source, root)
		if !ok {
			internal.GetInternalLogger().Debug("Anchor surface unresolvable, centering menu",
				"source", mc.config.Source)
			mc.frame = layout.CenteredFallback(size, viewport)
			return
		}
		anchor = converted
	}

	placed := layout.Place(anchor, size, viewport)
	mc.frame = placed.Frame
	mc.above = placed.Above
}

func (mc *menuController) present(now time.Time) {
	if mc.currentPhase() != phaseUnpresented {
		return
	}
	mc.setPhase(phasePresenting, now)
}

// advance steps the fade state machine. It reports true once the controller
// has returned to Unpresented and the result is final.
func (mc *menuController) advance(now time.Time) bool {
	switch mc.currentPhase() {
	case phasePresenting:
		if now.Sub(mc.phaseStart) >= menuFadeDuration {
			mc.setPhase(phasePresented, now)
		}
	case phaseDismissing:
		if now.Sub(mc.phaseStart) >= menuFadeDuration {
			mc.setPhase(phaseUnpresented, now)
			return true
		}
	case phaseUnpresented:
		return mc.phaseStart != (time.Time{})
	}
	return false
}

// opacity is the current fade alpha in [0,1].
func (mc *menuController) opacity(now time.Time) float64 {
	elapsed := now.Sub(mc.phaseStart)
	progress := float64(elapsed) / float64(menuFadeDuration)
	if progress > 1 {
		progress = 1
	}

	switch mc.currentPhase() {
	case phasePresenting:
		return progress
	case phasePresented:
		return 1
	case phaseDismissing:
		return 1 - progress
	}
	return 0
}

// itemFrames returns each item's hit rect in window coordinates.
func (mc *menuController) itemFrames() []layout.Rect {
	frames := make([]layout.Rect, len(mc.metrics.ItemHeights))
	y := mc.frame.Y
	for i, h := range mc.metrics.ItemHeights {
		frames[i] = layout.Rect{X: mc.frame.X, Y: y, W: mc.frame.W, H: h}
		y += h + layout.SeparatorHeight
	}
	return frames
}

func (mc *menuController) hitItem(p layout.Point) int {
	for i, frame := range mc.itemFrames() {
		if frame.Contains(p) {
			return i
		}
	}
	return -1
}

func (mc *menuController) handlePointerDown(p layout.Point) {
	if mc.currentPhase() != phasePresented {
		return
	}
	mc.pressedIndex = mc.hitItem(p)
}

func (mc *menuController) handlePointerUp(p layout.Point, now time.Time) {
	if mc.currentPhase() != phasePresented {
		return
	}

	pressed := mc.pressedIndex
	mc.pressedIndex = -1

	idx := mc.hitItem(p)
	if idx >= 0 && idx == pressed {
		mc.dismiss(MenuResult{Action: MenuSelected, ItemID: mc.config.Items[idx].ID, ItemIndex: idx}, now)
		return
	}
	if !mc.frame.Contains(p) {
		mc.dismiss(MenuResult{Action: MenuDismissed, ItemIndex: -1}, now)
	}
}

// dismiss starts the fade-out. Repeat calls while already dismissing are
// no-ops so the first outcome wins.
func (mc *menuController) dismiss(result MenuResult, now time.Time) {
	phase := mc.currentPhase()
	if phase != phasePresenting && phase != phasePresented {
		return
	}
	mc.result = result
	mc.setPhase(phaseDismissing, now)
}

// interrupt tears the menu down with no fade, used when the window resizes
// underneath the popup and its geometry is stale.
func (mc *menuController) interrupt(now time.Time) {
	phase := mc.currentPhase()
	if phase == phaseUnpresented {
		return
	}
	mc.result = MenuResult{Action: MenuInterrupted, ItemIndex: -1}
	mc.setPhase(phaseUnpresented, now)
}

// finish fires the chosen item's action, at most once, and only after the
// controller is back in Unpresented.
func (mc *menuController) finish() MenuResult {
	if mc.actionFired || mc.currentPhase() != phaseUnpresented {
		return mc.result
	}
	mc.actionFired = true

	if mc.result.Action == MenuSelected {
		if action := mc.config.Items[mc.result.ItemIndex].OnSelect; action != nil {
			action()
		}
	}
	return mc.result
}

// ContextMenu presents a context menu popup over the current screen and
// blocks until it is dismissed. Returns ErrCancelled when the user taps
// outside the popup, and the selection otherwise. The chosen item's
// OnSelect, when set, runs after the fade-out and before this returns.
func ContextMenu(config MenuConfiguration) (*MenuResult, error) {
	if len(config.Items) == 0 {
		return nil, ErrEmptyMenu
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	mc := newMenuController(config)
	viewport := layout.Size{W: float64(window.GetWidth()), H: float64(window.GetHeight())}
	mc.layoutMenu(internal.Surfaces(), internal.RootSurface(), internal.Measurer(), viewport)

	mc.present(time.Now())

	announced := false
	running := true
	for running {
		now := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				mc.interrupt(now)
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					internal.SyncRootSurface()
					mc.interrupt(now)
				}
			default:
				if pe := internal.GetPointerProcessor().ProcessSDLEvent(event); pe != nil {
					p := layout.Point{X: pe.X, Y: pe.Y}
					switch pe.Phase {
					case internal.PointerDown:
						mc.handlePointerDown(p)
					case internal.PointerUp:
						mc.handlePointerUp(p, now)
					}
				}
			}
		}

		if mc.advance(now) {
			running = false
		}

		// The modal announcement waits for the fade-in so assistive
		// focus moves to a fully settled surface.
		if !announced && mc.currentPhase() == phasePresented {
			announceMenu(config)
			announced = true
		}

		renderMenuFrame(renderer, window, mc, now)
		sdl.Delay(16)
	}

	result := mc.finish()

	if result.Action != MenuSelected {
		return &result, ErrCancelled
	}
	return &result, nil
}

func renderMenuFrame(renderer *sdl.Renderer, window *internal.Window, mc *menuController, now time.Time) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.Clear()
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	window.RenderBackground()

	opacity := mc.opacity(now)
	alpha := uint8(opacity * 255)

	// Dim everything behind the popup.
	renderer.SetDrawColor(0, 0, 0, uint8(opacity*96))
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})

	if alpha > 0 {
		renderMenuPopup(renderer, mc, alpha)
	}

	renderer.Present()
}

func renderMenuPopup(renderer *sdl.Renderer, mc *menuController, alpha uint8) {
	theme := internal.GetTheme()

	popupRect := &sdl.Rect{
		X: int32(mc.frame.X),
		Y: int32(mc.frame.Y),
		W: int32(mc.frame.W),
		H: int32(mc.frame.H),
	}

	bg := theme.MenuBackgroundColor
	bg.A = alpha
	internal.DrawRoundedRect(renderer, popupRect, 12, bg)

	frames := mc.itemFrames()
	for i, item := range mc.config.Items {
		renderMenuItem(renderer, mc, item, frames[i], i == mc.pressedIndex, alpha)

		if i < len(mc.config.Items)-1 {
			sep := theme.SeparatorColor
			sep.A = alpha
			renderer.SetDrawColor(sep.R, sep.G, sep.B, sep.A)
			renderer.DrawLine(
				int32(frames[i].X+layout.ItemPaddingX/2),
				int32(frames[i].Bottom()),
				int32(frames[i].Right()-layout.ItemPaddingX/2),
				int32(frames[i].Bottom()),
			)
		}
	}
}

func renderMenuItem(renderer *sdl.Renderer, mc *menuController, item MenuItem, frame layout.Rect, pressed bool, alpha uint8) {
	theme := internal.GetTheme()

	if pressed {
		highlight := theme.HighlightColor
		highlight.A = alpha
		internal.DrawRoundedRect(renderer, &sdl.Rect{
			X: int32(frame.X),
			Y: int32(frame.Y),
			W: int32(frame.W),
			H: int32(frame.H),
		}, 8, highlight)
	}

	x := int32(frame.X + layout.ItemPaddingX/2)
	centerY := int32(frame.Y + frame.H/2)

	if item.Badge != BadgeNone {
		badge := item.Badge.color()
		badge.A = alpha
		internal.DrawBadgeDot(renderer, x+int32(layout.BadgeSlotWidth/2), centerY, 6, badge)
		x += int32(layout.BadgeSlotWidth + layout.ElementGap)
	}

	titleFont := internal.Fonts.SmallFont
	textColor := theme.TextColor
	if pressed {
		textColor = theme.HighlightedTextColor
	}
	textColor.A = alpha

	_, titleH := internal.TextSize(titleFont, item.Title)
	internal.RenderText(renderer, item.Title, titleFont, x, centerY-titleH/2, textColor, constants.TextAlignLeft)

	if item.Status != "" {
		titleW, _ := internal.TextSize(titleFont, item.Title)
		hint := theme.HintColor
		if item.StatusColor != (sdl.Color{}) {
			hint = item.StatusColor
		}
		hint.A = alpha
		statusFont := internal.Fonts.TinyFont
		_, statusH := internal.TextSize(statusFont, item.Status)
		internal.RenderText(renderer, item.Status, statusFont,
			x+titleW+int32(layout.ElementGap), centerY-statusH/2, hint, constants.TextAlignLeft)
	}

	if item.Detail != "" {
		hint := theme.HintColor
		if item.DetailColor != (sdl.Color{}) {
			hint = item.DetailColor
		}
		hint.A = alpha
		detailFont := internal.Fonts.TinyFont
		_, detailH := internal.TextSize(detailFont, item.Detail)
		// Right edge of the shared detail column.
		rightX := int32(frame.Right() - layout.ItemPaddingX/2)
		internal.RenderText(renderer, item.Detail, detailFont,
			rightX, centerY-detailH/2, hint, constants.TextAlignRight)
	}
}
