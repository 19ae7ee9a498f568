package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	HighlightColor       sdl.Color // Selected / pressed item background
	AccentColor          sdl.Color // Pill backgrounds, accents
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted items
	HintColor            sdl.Color // Status and detail text, help text
	BackgroundColor      sdl.Color // Screen background
	MenuBackgroundColor  sdl.Color // Context menu popup background
	SeparatorColor       sdl.Color // Hairline between menu items
	BadgeReadyColor      sdl.Color // Ready badge fill
	BadgePendingColor    sdl.Color // Pending badge fill
	FontPath             string
	BackgroundImagePath  string
}

var currentTheme Theme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
