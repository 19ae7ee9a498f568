package internal

import (
	"errors"
	"time"
	"unsafe"

	"github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"
)

// Force-feedback plumbing. go-evdev handles device discovery and capability
// checks; effect upload and playback need raw ioctls on the device fd, which
// the library does not expose.

const (
	ffRumble = 0x50

	// EVIOCSFF: _IOW('E', 0x80, struct ff_effect), 48-byte payload.
	eviocsff = 0x40304580

	evFF = 0x15
)

// ffEffect mirrors struct ff_effect for the rumble case. The trailing bytes
// cover the effect union, which for rumble holds two u16 magnitudes.
type ffEffect struct {
	Type      uint16
	ID        int16
	Direction uint16
	Trigger   struct{ Button, Interval uint16 }
	Replay    struct{ Length, Delay uint16 }
	_         [2]byte // union is pointer-aligned
	U         [32]byte
}

// inputEvent mirrors struct input_event on 64-bit platforms.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// Rumbler drives a force-feedback capable input device. A nil Rumbler is
// valid and inert, so callers on haptics-free hardware need no guards.
type Rumbler struct {
	fd       int
	path     string
	effectID int16
}

var ErrNoRumbleDevice = errors.New("no force-feedback capable input device")

// OpenRumbler scans the input devices and claims the first one that
// advertises force feedback.
func OpenRumbler() (*Rumbler, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		device, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}

		capable := false
		for _, t := range device.CapableTypes() {
			if t == evdev.EV_FF {
				capable = true
				break
			}
		}
		device.Close()

		if !capable {
			continue
		}

		fd, err := unix.Open(p.Path, unix.O_RDWR|unix.O_CLOEXEC, 0)
		if err != nil {
			GetInternalLogger().Debug("Cannot open rumble device for writing", "path", p.Path, "error", err)
			continue
		}

		GetInternalLogger().Debug("Claimed rumble device", "path", p.Path, "name", p.Name)
		return &Rumbler{fd: fd, path: p.Path, effectID: -1}, nil
	}

	return nil, ErrNoRumbleDevice
}

// Pulse plays one rumble burst of the given duration. Errors are logged and
// swallowed; haptics are never load-bearing.
func (r *Rumbler) Pulse(duration time.Duration) {
	if r == nil {
		return
	}

	effect := ffEffect{
		Type: ffRumble,
		ID:   r.effectID,
	}
	effect.Replay.Length = uint16(duration.Milliseconds())

	// strong_magnitude, weak_magnitude
	*(*uint16)(unsafe.Pointer(&effect.U[0])) = 0xC000
	*(*uint16)(unsafe.Pointer(&effect.U[2])) = 0x8000

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(r.fd), eviocsff, uintptr(unsafe.Pointer(&effect)))
	if errno != 0 {
		GetInternalLogger().Debug("Rumble effect upload failed", "path", r.path, "errno", errno)
		return
	}
	r.effectID = effect.ID

	play := inputEvent{Type: evFF, Code: uint16(r.effectID), Value: 1}
	buf := (*[unsafe.Sizeof(play)]byte)(unsafe.Pointer(&play))[:]
	if _, err := unix.Write(r.fd, buf); err != nil {
		GetInternalLogger().Debug("Rumble playback failed", "path", r.path, "error", err)
	}
}

func (r *Rumbler) Close() {
	if r == nil {
		return
	}
	unix.Close(r.fd)
}
