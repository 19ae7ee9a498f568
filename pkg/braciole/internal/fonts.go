package internal

import (
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
	"github.com/veandco/go-sdl2/ttf"
)

type FontSizes struct {
	XLarge int `json:"xlarge" yaml:"xlarge"`
	Large  int `json:"large" yaml:"large"`
	Medium int `json:"medium" yaml:"medium"`
	Small  int `json:"small" yaml:"small"`
	Tiny   int `json:"tiny" yaml:"tiny"`
	Micro  int `json:"micro" yaml:"micro"`
}

var DefaultFontSizes = FontSizes{
	XLarge: 60,
	Large:  50,
	Medium: 44,
	Small:  34,
	Tiny:   24,
	Micro:  18,
}

var Fonts fontsManager

type fontsManager struct {
	ExtraLargeFont *ttf.Font
	LargeFont      *ttf.Font
	MediumFont     *ttf.Font
	SmallFont      *ttf.Font
	TinyFont       *ttf.Font
	MicroFont      *ttf.Font
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Apply damping for larger screens to reduce scaling growth
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75 // 75% of the growth above 1x
	}

	return int(float32(baseSize) * scaleFactor)
}

// GetScaleFactor returns the scale factor based on current screen width
func GetScaleFactor() float32 {
	const referenceWidth int32 = 1024
	screenWidth := GetWindow().GetWidth()

	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Apply damping for larger screens
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return scaleFactor
}

func initFonts(sizes FontSizes) {
	screenWidth := GetWindow().GetWidth()

	calcSize := func(base int) int {
		return CalculateFontSizeForResolution(base, screenWidth)
	}

	Fonts = fontsManager{
		ExtraLargeFont: loadFont(calcSize(sizes.XLarge)),
		LargeFont:      loadFont(calcSize(sizes.Large)),
		MediumFont:     loadFont(calcSize(sizes.Medium)),
		SmallFont:      loadFont(calcSize(sizes.Small)),
		TinyFont:       loadFont(calcSize(sizes.Tiny)),
		MicroFont:      loadFont(calcSize(sizes.Micro)),
	}
}

// loadFont tries the theme font first, then the FALLBACK_FONT override.
// There is no font to render anything with if both fail, so that is fatal.
func loadFont(size int) *ttf.Font {
	if path := GetTheme().FontPath; path != "" {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font
		}
		GetInternalLogger().Debug("Failed to load theme font", "path", path, "error", err)
	}

	fallback := os.Getenv(constants.FallbackFontEnvVar)
	if fallback != "" {
		font, err := ttf.OpenFont(fallback, size)
		if err == nil {
			return font
		}
		GetInternalLogger().Error("Failed to load fallback font", "fallback", fallback, "error", err)
	}

	GetInternalLogger().Error("No usable font found", "size", size)
	os.Exit(1)
	return nil
}

func closeFonts() {
	Fonts.ExtraLargeFont.Close()
	Fonts.LargeFont.Close()
	Fonts.MediumFont.Close()
	Fonts.SmallFont.Close()
	Fonts.TinyFont.Close()
	Fonts.MicroFont.Close()
}

// fontMeasurer adapts the loaded TTF fonts to the layout package's
// measurement interface.
type fontMeasurer struct{}

func (fontMeasurer) font(style layout.TextStyle) *ttf.Font {
	switch style {
	case layout.StyleStatus, layout.StyleDetail:
		return Fonts.TinyFont
	default:
		return Fonts.SmallFont
	}
}

func (m fontMeasurer) TextWidth(style layout.TextStyle, text string) float64 {
	if text == "" {
		return 0
	}
	w, _, err := m.font(style).SizeUTF8(text)
	if err != nil {
		GetInternalLogger().Debug("Failed to size text", "text", text, "error", err)
		return 0
	}
	return float64(w)
}

func (m fontMeasurer) LineHeight(style layout.TextStyle) float64 {
	return float64(m.font(style).Height())
}

// Measurer returns the text measurer backed by the loaded fonts.
func Measurer() layout.TextMeasurer {
	return fontMeasurer{}
}
