package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RowItem is one row of the List component.
type RowItem struct {
	Text     string
	Detail   string
	Focused  bool
	Metadata interface{}
}

type ListOptions struct {
	Title             string
	Items             []RowItem
	SelectedIndex     int
	VisibleStartIndex int
	MaxVisibleItems   int

	Margins      internal.Padding
	ItemSpacing  int32
	SmallTitle   bool
	TitleAlign   constants.TextAlign
	TitleSpacing int32

	FooterHelpItems []FooterHelpItem

	EmptyMessage      string
	EmptyMessageColor sdl.Color

	InputDelay time.Duration

	// MenuForRow builds the context menu for a long-press on a row.
	// Returning nil means the row has no menu. Anchor and Source are
	// filled in by the list when left zero.
	MenuForRow func(index int, item RowItem) *MenuConfiguration

	// Bridge configures long-press recognition for MenuForRow.
	Bridge BridgeOptions

	OnSelect func(index int, item *RowItem)
}

func DefaultListOptions(title string, items []RowItem) ListOptions {
	return ListOptions{
		Title:             title,
		Items:             items,
		SelectedIndex:     0,
		MaxVisibleItems:   9,
		Margins:           internal.UniformPadding(20),
		TitleAlign:        constants.TextAlignLeft,
		TitleSpacing:      constants.DefaultTitleSpacing,
		EmptyMessage:      "No items available",
		EmptyMessageColor: sdl.Color{R: 255, G: 255, B: 255, A: 255},
		InputDelay:        constants.DefaultInputDelay,
		Bridge:            DefaultBridgeOptions(),
	}
}

// ListResult is the standardized return type for the List component.
type ListResult struct {
	Items           []RowItem
	Selected        []int      // indices of selected items
	Action          ListAction // how the list exited
	VisiblePosition int        // selected position relative to VisibleStartIndex
	Menu            *MenuResult // outcome of the context menu, when Action is ListActionTriggered
}

type listController struct {
	Options       ListOptions
	StartY        int32
	lastInputTime time.Time

	bridge  *Bridge
	surface layout.SurfaceID

	pressedRow int
	pressPoint layout.Point
	pressTime  time.Time
}

func newListController(options ListOptions) *listController {
	if options.SelectedIndex < 0 || options.SelectedIndex >= len(options.Items) {
		options.SelectedIndex = 0
	}

	return &listController{
		Options:       options,
		StartY:        20,
		lastInputTime: time.Now(),
		pressedRow:    -1,
	}
}

// List displays a scrollable row list and blocks until a row is activated,
// a context menu resolves, or the user backs out. Long-pressing a row (or
// right-clicking it) presents the menu from MenuForRow.
func List(options ListOptions) (*ListResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	if options.MaxVisibleItems <= 0 {
		options.MaxVisibleItems = 9
	}

	lc := newListController(options)
	lc.Options.MaxVisibleItems = int(lc.calculateMaxVisibleItems(window))

	if options.SelectedIndex > 0 {
		lc.scrollTo(options.SelectedIndex)
	}

	lc.surface = internal.Surfaces().Register(internal.RootSurface(), lc.contentFrame(window))
	defer internal.Surfaces().Remove(lc.surface)

	lc.bridge = NewBridge(lc.Options.Bridge)
	if lc.Options.MenuForRow != nil {
		lc.bridge.Attach(lc.surface, lc.buildMenu)
	}

	running := true
	cancelled := false
	result := ListResult{
		Items:    lc.Options.Items,
		Selected: []int{},
		Action:   ListActionSelected,
	}

	for running {
		now := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
				cancelled = true
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					internal.SyncRootSurface()
					internal.Surfaces().Update(lc.surface, lc.contentFrame(window))
					lc.Options.MaxVisibleItems = int(lc.calculateMaxVisibleItems(window))
					lc.scrollTo(lc.Options.SelectedIndex)
				}
			default:
				if pe := internal.GetPointerProcessor().ProcessSDLEvent(event); pe != nil {
					if lc.bridge.ProcessEvent(pe) {
						lc.pressedRow = -1
						continue
					}
					lc.handlePointer(pe, &running, &result)
				}
			}
		}

		if config := lc.bridge.Update(now); config != nil {
			menuResult, err := ContextMenu(*config)
			lc.pressedRow = -1
			if err == nil && menuResult.Action == MenuSelected {
				running = false
				result.Action = ListActionTriggered
				result.Menu = menuResult
				result.Selected = []int{lc.Options.SelectedIndex}
				result.VisiblePosition = lc.Options.SelectedIndex - lc.Options.VisibleStartIndex
			}
		}

		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.Clear()
		renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

		lc.render(window)
		renderer.Present()
		sdl.Delay(16)
	}

	result.Items = lc.Options.Items

	if cancelled {
		return &result, ErrCancelled
	}

	return &result, nil
}

// buildMenu is the bridge's MenuBuilder: it maps the press origin to a row
// and delegates to MenuForRow, anchoring the menu to the row's pill. The
// origin arrives in list-surface coordinates; rows hit-test in window
// coordinates.
func (lc *listController) buildMenu(origin layout.Point) *MenuConfiguration {
	if converted, ok := internal.Surfaces().Convert(
		layout.Rect{X: origin.X, Y: origin.Y}, lc.surface, internal.RootSurface()); ok {
		origin = layout.Point{X: converted.X, Y: converted.Y}
	}

	idx := lc.rowAt(origin)
	if idx < 0 {
		return nil
	}

	lc.Options.SelectedIndex = idx

	config := lc.Options.MenuForRow(idx, lc.Options.Items[idx])
	if config == nil {
		return nil
	}

	if config.Source == layout.SurfaceNone && config.Anchor == (layout.Rect{}) {
		frame, _ := internal.Surfaces().Frame(lc.surface)
		row := lc.rowFrame(idx)
		config.Anchor = row.Offset(-frame.X, -frame.Y)
		config.Source = lc.surface
	}
	return config
}

func (lc *listController) handlePointer(pe *PointerEvent, running *bool, result *ListResult) {
	p := layout.Point{X: pe.X, Y: pe.Y}

	switch pe.Phase {
	case internal.PointerDown:
		lc.pressedRow = lc.rowAt(p)
		lc.pressPoint = p
		lc.pressTime = pe.Time
		if lc.pressedRow >= 0 {
			lc.Options.SelectedIndex = lc.pressedRow
		}

	case internal.PointerUp:
		pressed := lc.pressedRow
		lc.pressedRow = -1

		if pressed < 0 || lc.rowAt(p) != pressed {
			return
		}
		// A hold has already gone to the bridge; only quick taps select.
		if pe.Time.Sub(lc.pressTime) >= lc.bridge.options.HoldDuration {
			return
		}
		if time.Since(lc.lastInputTime) < lc.Options.InputDelay {
			return
		}
		lc.lastInputTime = time.Now()

		if lc.Options.OnSelect != nil {
			lc.Options.OnSelect(pressed, &lc.Options.Items[pressed])
		}

		*running = false
		result.Action = ListActionSelected
		result.Selected = []int{pressed}
		result.VisiblePosition = pressed - lc.Options.VisibleStartIndex

	case internal.PointerScroll:
		lc.scrollBy(int(-pe.ScrollY))
	}
}

func (lc *listController) scrollBy(delta int) {
	maxStart := len(lc.Options.Items) - lc.Options.MaxVisibleItems
	if maxStart < 0 {
		maxStart = 0
	}

	start := lc.Options.VisibleStartIndex + delta
	if start < 0 {
		start = 0
	}
	if start > maxStart {
		start = maxStart
	}
	lc.Options.VisibleStartIndex = start
}

func (lc *listController) scrollTo(index int) {
	if index < lc.Options.VisibleStartIndex {
		lc.Options.VisibleStartIndex = index
	} else if index >= lc.Options.VisibleStartIndex+lc.Options.MaxVisibleItems {
		lc.Options.VisibleStartIndex = index - lc.Options.MaxVisibleItems + 1
		if lc.Options.VisibleStartIndex < 0 {
			lc.Options.VisibleStartIndex = 0
		}
	}
}

// contentFrame is the row area in window coordinates.
func (lc *listController) contentFrame(window *internal.Window) layout.Rect {
	top := float64(lc.itemStartY())
	return layout.Rect{
		X: float64(lc.Options.Margins.Left),
		Y: top,
		W: float64(window.GetWidth() - lc.Options.Margins.Left - lc.Options.Margins.Right),
		H: float64(window.GetHeight()) - top - float64(lc.Options.Margins.Bottom),
	}
}

func (lc *listController) itemStartY() int32 {
	y := lc.StartY
	if lc.Options.Title != "" {
		scaleFactor := internal.GetScaleFactor()
		if lc.Options.SmallTitle {
			y += int32(float32(50) * scaleFactor)
		} else {
			y += int32(float32(60) * scaleFactor)
		}
		y += lc.Options.TitleSpacing
	}
	return y
}

// rowFrame is a row's pill rect in window coordinates.
func (lc *listController) rowFrame(index int) layout.Rect {
	scaleFactor := internal.GetScaleFactor()
	pillHeight := int32(float32(60) * scaleFactor)

	visible := index - lc.Options.VisibleStartIndex
	y := lc.itemStartY() + int32(visible)*(pillHeight+lc.Options.ItemSpacing)

	window := internal.GetWindow()
	return layout.Rect{
		X: float64(lc.Options.Margins.Left),
		Y: float64(y),
		W: float64(window.GetWidth() - lc.Options.Margins.Left - lc.Options.Margins.Right),
		H: float64(pillHeight),
	}
}

// rowAt maps a window point to a visible row index, or -1.
func (lc *listController) rowAt(p layout.Point) int {
	end := min(lc.Options.VisibleStartIndex+lc.Options.MaxVisibleItems, len(lc.Options.Items))
	for idx := lc.Options.VisibleStartIndex; idx < end; idx++ {
		if lc.rowFrame(idx).Contains(p) {
			return idx
		}
	}
	return -1
}

func (lc *listController) calculateMaxVisibleItems(window *internal.Window) int32 {
	scaleFactor := internal.GetScaleFactor()

	pillHeight := int32(float32(60) * scaleFactor)

	_, screenHeight, _ := window.Renderer.GetOutputSize()

	var titleHeight int32 = 0
	if lc.Options.Title != "" {
		if lc.Options.SmallTitle {
			titleHeight = int32(float32(50) * scaleFactor)
		} else {
			titleHeight = int32(float32(60) * scaleFactor)
		}
		titleHeight += lc.Options.TitleSpacing
	}

	footerHeight := int32(float32(50) * scaleFactor)

	availableHeight := screenHeight - titleHeight - footerHeight - (lc.StartY * 2)

	itemHeightWithSpacing := pillHeight + lc.Options.ItemSpacing
	maxItems := availableHeight/itemHeightWithSpacing - 1

	if maxItems < 1 {
		maxItems = 1
	}

	return int32(maxItems)
}

func (lc *listController) render(window *internal.Window) {
	renderer := window.Renderer

	for i := range lc.Options.Items {
		lc.Options.Items[i].Focused = i == lc.Options.SelectedIndex
	}

	window.RenderBackground()

	if lc.Options.Title != "" {
		titleFont := internal.Fonts.ExtraLargeFont
		if lc.Options.SmallTitle {
			titleFont = internal.Fonts.LargeFont
		}
		lc.renderTitle(renderer, titleFont)
	}

	if len(lc.Options.Items) == 0 {
		lc.renderEmptyMessage(renderer, internal.Fonts.MediumFont)
	} else {
		lc.renderItems(renderer, internal.Fonts.SmallFont)
		lc.renderScrollbar(renderer, window)
	}

	renderFooter(renderer, internal.Fonts.SmallFont, lc.Options.FooterHelpItems,
		lc.Options.Margins.Bottom, true, len(lc.Options.FooterHelpItems) == 1)
}

func (lc *listController) renderTitle(renderer *sdl.Renderer, font *ttf.Font) {
	theme := internal.GetTheme()
	screenWidth, _, _ := renderer.GetOutputSize()
	marginLeft := lc.Options.Margins.Left + 10

	var x int32
	align := lc.Options.TitleAlign
	switch align {
	case constants.TextAlignCenter:
		x = screenWidth / 2
	case constants.TextAlignRight:
		x = screenWidth - marginLeft
	default:
		x = marginLeft
	}

	internal.RenderText(renderer, lc.Options.Title, font, x, lc.StartY, theme.TextColor, align)
}

func (lc *listController) renderItems(renderer *sdl.Renderer, font *ttf.Font) {
	theme := internal.GetTheme()
	scaleFactor := internal.GetScaleFactor()
	pillPadding := int32(float32(40) * scaleFactor)
	textPadding := int32(float32(20) * scaleFactor)

	end := min(lc.Options.VisibleStartIndex+lc.Options.MaxVisibleItems, len(lc.Options.Items))
	for idx := lc.Options.VisibleStartIndex; idx < end; idx++ {
		item := lc.Options.Items[idx]
		frame := lc.rowFrame(idx)

		pillRect := sdl.Rect{
			X: int32(frame.X),
			Y: int32(frame.Y),
			W: int32(frame.W),
			H: int32(frame.H),
		}

		textColor := theme.TextColor
		if item.Focused {
			textColor = theme.HighlightedTextColor

			textW, _ := internal.TextSize(font, item.Text)
			pillRect.W = internal.Min32(pillRect.W, textW+pillPadding)
			internal.DrawRoundedRect(renderer, &pillRect, int32(float32(30)*scaleFactor), theme.HighlightColor)
		}

		text := lc.truncateText(font, item.Text, int32(frame.W)-pillPadding)
		_, textH := internal.TextSize(font, text)
		textY := int32(frame.Y) + (int32(frame.H)-textH)/2
		internal.RenderText(renderer, text, font, int32(frame.X)+textPadding, textY, textColor, constants.TextAlignLeft)

		if item.Detail != "" {
			_, detailH := internal.TextSize(internal.Fonts.TinyFont, item.Detail)
			detailY := int32(frame.Y) + (int32(frame.H)-detailH)/2
			internal.RenderText(renderer, item.Detail, internal.Fonts.TinyFont,
				int32(frame.Right())-textPadding, detailY, theme.HintColor, constants.TextAlignRight)
		}
	}
}

func (lc *listController) renderScrollbar(renderer *sdl.Renderer, window *internal.Window) {
	if len(lc.Options.Items) <= lc.Options.MaxVisibleItems {
		return
	}

	frame := lc.contentFrame(window)
	trackH := int32(frame.H)
	thumbH := internal.Max32(trackH*int32(lc.Options.MaxVisibleItems)/int32(len(lc.Options.Items)), 20)
	maxStart := len(lc.Options.Items) - lc.Options.MaxVisibleItems
	thumbY := int32(frame.Y)
	if maxStart > 0 {
		thumbY += (trackH - thumbH) * int32(lc.Options.VisibleStartIndex) / int32(maxStart)
	}

	theme := internal.GetTheme()
	internal.DrawSmoothScrollbar(renderer, window.GetWidth()-8, thumbY, 4, thumbH, theme.HintColor)
}

func (lc *listController) renderEmptyMessage(renderer *sdl.Renderer, font *ttf.Font) {
	screenWidth, screenHeight, _ := renderer.GetOutputSize()
	startY := lc.itemStartY()

	_, textH := internal.TextSize(font, lc.Options.EmptyMessage)
	centerY := startY + (screenHeight-startY-lc.Options.Margins.Bottom-textH)/2

	internal.RenderText(renderer, lc.Options.EmptyMessage, font,
		screenWidth/2, centerY, lc.Options.EmptyMessageColor, constants.TextAlignCenter)
}

func (lc *listController) truncateText(font *ttf.Font, text string, maxWidth int32) string {
	w, _ := internal.TextSize(font, text)
	if w <= maxWidth {
		return text
	}

	ellipsis := "..."
	runes := []rune(text)
	for len(runes) > 5 {
		runes = runes[:len(runes)-1]
		testText := string(runes) + ellipsis
		if tw, _ := internal.TextSize(font, testText); tw <= maxWidth {
			return testText
		}
	}
	return ellipsis
}
