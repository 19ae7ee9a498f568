package nextui

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// NextVal is the theme payload the NextUI firmware reports: six slot colors,
// the background color, and the active font.
type NextVal struct {
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
	Font     int    `json:"font"`
	FontPath string `json:"fontpath"`
}

var defaultTheme = internal.Theme{
	HighlightColor:       internal.HexToColor(0xFFFFFF),
	AccentColor:          internal.HexToColor(0x9B2257),
	ButtonLabelColor:     internal.HexToColor(0x1E2329),
	HintColor:            internal.HexToColor(0xFFFFFF),
	TextColor:            internal.HexToColor(0xFFFFFF),
	HighlightedTextColor: internal.HexToColor(0x000000),
	BackgroundColor:      internal.HexToColor(0x000000),
	MenuBackgroundColor:  internal.HexToColor(0x2A2A2E),
	SeparatorColor:       internal.HexToColor(0x48484A),
	BadgeReadyColor:      internal.HexToColor(0x34C759),
	BadgePendingColor:    internal.HexToColor(0xFF9F0A),
	FontPath:             "",
	BackgroundImagePath:  "/mnt/SDCARD/bg.png",
}

func InitNextUITheme() internal.Theme {
	var nv *NextVal
	var err error

	if constants.IsDevMode() {
		nv, err = InitStaticNextVal(os.Getenv("NEXTVAL_PATH"))
	} else {
		nv, err = loadNextVal()
	}

	if err != nil {
		return defaultTheme
	}

	theme := internal.Theme{
		HighlightColor:       parseHexColor(nv.Color1),
		AccentColor:          parseHexColor(nv.Color2),
		ButtonLabelColor:     parseHexColor(nv.Color3),
		TextColor:            parseHexColor(nv.Color4),
		HighlightedTextColor: parseHexColor(nv.Color5),
		HintColor:            parseHexColor(nv.Color6),
		BackgroundColor:      parseHexColor(nv.BGColor),
		MenuBackgroundColor:  defaultTheme.MenuBackgroundColor,
		SeparatorColor:       defaultTheme.SeparatorColor,
		BadgeReadyColor:      defaultTheme.BadgeReadyColor,
		BadgePendingColor:    defaultTheme.BadgePendingColor,
		FontPath:             nv.FontPath,
	}

	if constants.IsDevMode() {
		theme.BackgroundImagePath = os.Getenv(constants.BackgroundPathEnvVar)
	} else {
		theme.BackgroundImagePath = "/mnt/SDCARD/bg.png"
	}

	return theme
}

func InitStaticNextVal(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var nextval NextVal
	err = json.Unmarshal(data, &nextval)
	if err != nil {
		return nil, fmt.Errorf("error parsing JSON from file: %w", err)
	}

	return &nextval, nil
}

func loadNextVal() (*NextVal, error) {
	execPath := "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"

	cmd := exec.Command(execPath)
	output, err := cmd.Output()
	if err != nil {
		internal.GetInternalLogger().Error("Error executing command!", "error", err)
		return nil, err
	}

	jsonStr := strings.TrimSpace(string(output))

	var nextval NextVal
	err = json.Unmarshal([]byte(jsonStr), &nextval)
	if err != nil {
		internal.GetInternalLogger().Error("Error parsing JSON", "error", err)
		return nil, err
	}

	return &nextval, nil
}

func parseHexColor(hexStr string) sdl.Color {
	hexStr = strings.TrimPrefix(hexStr, "0x")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return sdl.Color{
			R: 255,
			G: 0,
			B: 0,
			A: 255,
		}
	}

	return internal.HexToColor(uint32(hex))
}
