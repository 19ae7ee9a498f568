package constants

import (
	"os"
	"time"
)

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

const (
	// DefaultInputDelay debounces repeated pointer activations.
	DefaultInputDelay = 150 * time.Millisecond

	// DefaultTitleSpacing is the gap between a component title and its content.
	DefaultTitleSpacing int32 = 30

	// DefaultHoldDuration is how long a press must be held before it is
	// recognized as a long-press.
	DefaultHoldDuration = 500 * time.Millisecond

	// DefaultMoveSlop is how far (in logical pixels) a press may drift
	// before long-press recognition is cancelled.
	DefaultMoveSlop = 10.0
)

const (
	DevModeEnvVar        = "BRACIOLE_DEV"
	BackgroundPathEnvVar = "BRACIOLE_BG_PATH"
	FallbackFontEnvVar   = "FALLBACK_FONT"
	InputCaptureEnvVar   = "INPUT_CAPTURE"
)

func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}
