package braciole

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
	"github.com/BrandonKowalski/braciole/pkg/braciole/platform/cannoli"
	"github.com/BrandonKowalski/braciole/pkg/braciole/platform/nextui"
)

type Options struct {
	WindowTitle          string
	ShowBackground       bool
	PrimaryThemeColorHex uint32
	IsCannoli            bool
	IsNextUI             bool
	ThemeFile            string
	LogFilename          string
}

// Init initializes SDL and the UI
// Must be called before any other UI functions!
func Init(options Options) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv(constants.InputCaptureEnvVar) != "" || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.IsNextUI {
		internal.SetTheme(nextui.InitNextUITheme())
	} else if options.ThemeFile != "" {
		theme, err := cannoli.LoadThemeFile(options.ThemeFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load theme file, using defaults", "path", options.ThemeFile, "error", err)
			theme = cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf")
		}
		internal.SetTheme(theme)
	} else {
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf"))
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	internal.Init(options.WindowTitle, options.ShowBackground)
}

// Close Tidies up SDL and the UI
// Must be called after all UI functions!
func Close() {
	internal.SDLCleanup()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func GetWindow() *internal.Window {
	return internal.GetWindow()
}

func HideWindow() {
	internal.GetWindow().Window.Hide()
}

func ShowWindow() {
	internal.GetWindow().Window.Show()
}

// Surfaces is the process-wide surface registry used for anchoring context
// menus to on-screen rects. UI thread only.
func Surfaces() *layout.Registry {
	return internal.Surfaces()
}

// WindowSurface is the root surface covering the whole window.
func WindowSurface() layout.SurfaceID {
	return internal.RootSurface()
}
