package internal

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window *Window

	registry    *layout.Registry
	rootSurface layout.SurfaceID

	rumbler *Rumbler
)

// Init brings up SDL, the window, fonts, pointer input, the surface
// registry, and haptics. Must run on the main thread before anything else.
func Init(title string, showBackground bool) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	if err := ttf.Init(); err != nil {
		panic(err)
	}

	window = initWindow(title, showBackground)
	initFonts(DefaultFontSizes)
	InitPointerProcessor()

	registry = layout.NewRegistry()
	rootSurface = registry.Register(layout.SurfaceNone, layout.Rect{
		W: float64(window.GetWidth()),
		H: float64(window.GetHeight()),
	})

	var err error
	rumbler, err = OpenRumbler()
	if err != nil {
		GetInternalLogger().Debug("Haptics unavailable", "error", err)
		rumbler = nil
	}
}

func SDLCleanup() {
	rumbler.Close()
	closeFonts()
	if window != nil {
		window.closeWindow()
	}
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}

// Surfaces is the process-wide surface registry. UI thread only.
func Surfaces() *layout.Registry {
	return registry
}

// RootSurface is the window's surface handle; every other surface descends
// from it.
func RootSurface() layout.SurfaceID {
	return rootSurface
}

// SyncRootSurface refreshes the root frame after a window size change.
func SyncRootSurface() {
	registry.Update(rootSurface, layout.Rect{
		W: float64(window.GetWidth()),
		H: float64(window.GetHeight()),
	})
}

func Haptics() *Rumbler {
	return rumbler
}
