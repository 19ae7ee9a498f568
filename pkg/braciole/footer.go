package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem represents a button and its help text that should be displayed in the footer.
// ButtonName is the text that will be displayed in the inner pill.
// HelpText is the text that will be displayed in the outer pill to the right of the button.
type FooterHelpItem struct {
	HelpText   string
	ButtonName string
}

func renderFooter(
	renderer *sdl.Renderer,
	font *ttf.Font,
	footerHelpItems []FooterHelpItem,
	bottomPadding int32,
	transparentBackground bool,
	centerSingleItem bool,
) {
	if len(footerHelpItems) == 0 {
		return
	}

	scaleFactor := internal.GetScaleFactor()
	window := internal.GetWindow()
	windowWidth, windowHeight := window.Window.GetSize()
	y := windowHeight - bottomPadding - int32(float32(50)*scaleFactor)
	outerPillHeight := int32(float32(60) * scaleFactor)

	if !transparentBackground {
		footerBackgroundRect := &sdl.Rect{
			X: 0,
			Y: y - 10,
			W: windowWidth - 15,
			H: outerPillHeight + int32(float32(50)*scaleFactor),
		}

		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.FillRect(footerBackgroundRect)
	}

	innerPillMargin := int32(float32(6) * scaleFactor)
	var leftItems []FooterHelpItem
	var rightItems []FooterHelpItem
	switch len(footerHelpItems) {
	case 1:
		// For a single item, center it
		leftItems = footerHelpItems[0:1]
	case 2:
		leftItems = footerHelpItems[0:1]
		rightItems = footerHelpItems[1:2]
	case 3:
		leftItems = footerHelpItems[0:2]
		rightItems = footerHelpItems[2:3]
	default:
		leftItems = footerHelpItems[0:2]
		rightItems = footerHelpItems[2:min(4, len(footerHelpItems))]
	}

	if len(leftItems) > 0 {
		if len(footerHelpItems) == 1 && centerSingleItem {
			pillWidth := calculateContinuousPillWidth(font, leftItems, outerPillHeight, innerPillMargin)
			centerX := (windowWidth - pillWidth) / 2
			renderGroupAsContinuousPill(renderer, font, leftItems, centerX, y, outerPillHeight, innerPillMargin)
		} else {
			renderGroupAsContinuousPill(renderer, font, leftItems, bottomPadding, y, outerPillHeight, innerPillMargin)
		}
	}
	if len(rightItems) > 0 {
		rightGroupWidth := calculateContinuousPillWidth(font, rightItems, outerPillHeight, innerPillMargin)
		rightX := windowWidth - bottomPadding - rightGroupWidth
		renderGroupAsContinuousPill(renderer, font, rightItems, rightX, y, outerPillHeight, innerPillMargin)
	}
}

func calculateContinuousPillWidth(font *ttf.Font, items []FooterHelpItem, outerPillHeight, innerPillMargin int32) int32 {
	scaleFactor := internal.GetScaleFactor()
	var totalWidth = int32(float32(10) * scaleFactor)

	innerPillHeight := outerPillHeight - (innerPillMargin * 2)

	for i, item := range items {
		buttonW, _ := internal.TextSize(font, item.ButtonName)
		helpW, _ := internal.TextSize(font, item.HelpText)

		innerPillWidth := calculateInnerPillWidth(buttonW, innerPillHeight)

		itemWidth := innerPillWidth + 15 + helpW
		totalWidth += itemWidth
		if i < len(items)-1 {
			totalWidth += 20
		}
	}
	totalWidth += int32(float32(10) * scaleFactor)
	return totalWidth
}

func calculateInnerPillWidth(buttonTextWidth, innerPillHeight int32) int32 {
	if buttonTextWidth <= innerPillHeight-20 {
		return innerPillHeight
	}
	return buttonTextWidth + 20
}

func renderGroupAsContinuousPill(
	renderer *sdl.Renderer,
	font *ttf.Font,
	items []FooterHelpItem,
	startX, y,
	outerPillHeight,
	innerPillMargin int32,
) {
	if len(items) == 0 {
		return
	}
	theme := internal.GetTheme()
	scaleFactor := internal.GetScaleFactor()
	pillWidth := calculateContinuousPillWidth(font, items, outerPillHeight, innerPillMargin)
	outerPillRect := &sdl.Rect{
		X: startX,
		Y: y,
		W: pillWidth,
		H: outerPillHeight,
	}

	cornerRadius := outerPillHeight / 2
	internal.DrawRoundedRect(renderer, outerPillRect, cornerRadius, theme.AccentColor)

	currentX := startX + int32(float32(10)*scaleFactor)
	innerPillHeight := outerPillHeight - (innerPillMargin * 2)

	// Apply damping to padding for smaller screens
	var paddingFactor float32 = 1.0
	if scaleFactor < 1.0 {
		paddingFactor = 0.5 + (scaleFactor * 0.5)
	}
	rightPadding := int32(float32(30) * paddingFactor)

	for _, item := range items {
		buttonW, buttonH := internal.TextSize(font, item.ButtonName)
		helpW, helpH := internal.TextSize(font, item.HelpText)

		innerPillWidth := calculateInnerPillWidth(buttonW, innerPillHeight)
		isCircle := innerPillWidth == innerPillHeight

		if isCircle {
			drawCircleShape(renderer, currentX+innerPillHeight/2, y+innerPillMargin+innerPillHeight/2, innerPillHeight/2, theme.HighlightColor)
		} else {
			innerPillRect := &sdl.Rect{
				X: currentX,
				Y: y + innerPillMargin,
				W: innerPillWidth,
				H: innerPillHeight,
			}
			cornerRadiusInner := innerPillHeight / 2
			internal.DrawRoundedRect(renderer, innerPillRect, cornerRadiusInner, theme.HighlightColor)
		}

		internal.RenderText(renderer, item.ButtonName, font,
			currentX+(innerPillWidth-buttonW)/2, y+(outerPillHeight-buttonH)/2,
			theme.ButtonLabelColor, constants.TextAlignLeft)

		currentX += innerPillWidth + int32(float32(10)*scaleFactor)

		internal.RenderText(renderer, item.HelpText, font,
			currentX, y+(outerPillHeight-helpH)/2,
			theme.HintColor, constants.TextAlignLeft)

		currentX += helpW + rightPadding
	}
}

func drawCircleShape(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(
		renderer,
		centerX,
		centerY,
		radius,
		color,
	)

	gfx.AACircleColor(
		renderer,
		centerX,
		centerY,
		radius,
		color,
	)

	if radius > 2 {
		gfx.AACircleColor(
			renderer,
			centerX,
			centerY,
			radius-1,
			color,
		)
	}
}
