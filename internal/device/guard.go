// ABOUTME: Guard tracks device changes made by the app and undoes them.
// ABOUTME: Cleanup runs on every pause/stop and is safe to call repeatedly.

package device

import (
	"github.com/charmbracelet/log"
	"github.com/harper/jotpad/internal/logging"
)

type Guard struct {
	dev    Capabilities
	logger *log.Logger

	flashlightOn bool
	brightnessOn bool
	original     *float64
}

func NewGuard(dev Capabilities, logger *log.Logger) *Guard {
	if dev == nil {
		dev = Unsupported{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Guard{dev: dev, logger: logger}
}

func (g *Guard) FlashlightOn() bool { return g.flashlightOn }
func (g *Guard) BrightnessOn() bool { return g.brightnessOn }

// ToggleFlashlight returns false when the device has no flashlight.
func (g *Guard) ToggleFlashlight() (on bool, ok bool) {
	on, ok = g.dev.ToggleFlashlight()
	if ok {
		g.flashlightOn = on
	}
	return on, ok
}

// ToggleBrightness remembers the level seen before the first override so
// Cleanup can put it back.
func (g *Guard) ToggleBrightness() (on bool, ok bool) {
	if !g.brightnessOn && g.original == nil {
		level, known := g.dev.Brightness()
		if !known {
			level = DefaultBrightness
		}
		g.original = &level
	}
	on, ok = g.dev.ToggleBrightnessOverride()
	if ok {
		g.brightnessOn = on
		if !on {
			g.original = nil
		}
	}
	return on, ok
}

// Cleanup turns the flashlight off and restores brightness.
func (g *Guard) Cleanup() {
	if g.flashlightOn {
		g.dev.TurnOffFlashlight()
		g.flashlightOn = false
		g.logger.Info("flashlight turned off on pause")
	}
	if g.brightnessOn {
		level := DefaultBrightness
		if g.original != nil {
			level = *g.original
		}
		g.dev.SetBrightness(level)
		g.brightnessOn = false
		g.original = nil
		g.logger.Info("brightness restored on pause", "level", level)
	}
}
