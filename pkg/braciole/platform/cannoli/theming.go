package cannoli

import (
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BurntSushi/toml"
)

func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x000000),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0xFFFFFF),
		MenuBackgroundColor:  internal.HexToColor(0x2A2A2E),
		SeparatorColor:       internal.HexToColor(0x48484A),
		BadgeReadyColor:      internal.HexToColor(0x34C759),
		BadgePendingColor:    internal.HexToColor(0xFF9F0A),
		FontPath:             fontPath,
	}
}

// themeFile is the on-disk TOML shape. Colors are 0xRRGGBB integers; any
// field left out keeps the stock Cannoli value.
type themeFile struct {
	Highlight       *uint32 `toml:"highlight"`
	Accent          *uint32 `toml:"accent"`
	ButtonLabel     *uint32 `toml:"button_label"`
	Text            *uint32 `toml:"text"`
	HighlightedText *uint32 `toml:"highlighted_text"`
	Hint            *uint32 `toml:"hint"`
	Background      *uint32 `toml:"background"`
	MenuBackground  *uint32 `toml:"menu_background"`
	Separator       *uint32 `toml:"separator"`
	BadgeReady      *uint32 `toml:"badge_ready"`
	BadgePending    *uint32 `toml:"badge_pending"`
	FontPath        string  `toml:"font_path"`
	BackgroundImage string  `toml:"background_image"`
}

// LoadThemeFile reads a TOML theme and overlays it on the stock Cannoli
// theme.
func LoadThemeFile(path string) (internal.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return internal.Theme{}, err
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return internal.Theme{}, err
	}

	theme := InitCannoliTheme(tf.FontPath)

	if tf.Highlight != nil {
		theme.HighlightColor = internal.HexToColor(*tf.Highlight)
	}
	if tf.Accent != nil {
		theme.AccentColor = internal.HexToColor(*tf.Accent)
	}
	if tf.ButtonLabel != nil {
		theme.ButtonLabelColor = internal.HexToColor(*tf.ButtonLabel)
	}
	if tf.Text != nil {
		theme.TextColor = internal.HexToColor(*tf.Text)
	}
	if tf.HighlightedText != nil {
		theme.HighlightedTextColor = internal.HexToColor(*tf.HighlightedText)
	}
	if tf.Hint != nil {
		theme.HintColor = internal.HexToColor(*tf.Hint)
	}
	if tf.Background != nil {
		theme.BackgroundColor = internal.HexToColor(*tf.Background)
	}
	if tf.MenuBackground != nil {
		theme.MenuBackgroundColor = internal.HexToColor(*tf.MenuBackground)
	}
	if tf.Separator != nil {
		theme.SeparatorColor = internal.HexToColor(*tf.Separator)
	}
	if tf.BadgeReady != nil {
		theme.BadgeReadyColor = internal.HexToColor(*tf.BadgeReady)
	}
	if tf.BadgePending != nil {
		theme.BadgePendingColor = internal.HexToColor(*tf.BadgePending)
	}
	if tf.BackgroundImage != "" {
		theme.BackgroundImagePath = tf.BackgroundImage
	}

	return theme, nil
}
