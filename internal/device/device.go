// ABOUTME: Device capability collaborator for flashlight and brightness.
// ABOUTME: Defines the interface plus unsupported and simulated implementations.

package device

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harper/jotpad/internal/logging"
)

const (
	MinBrightness = 0.05
	MaxBrightness = 1.0

	// DefaultBrightness is restored when the original level was unknown.
	DefaultBrightness = 0.5
)

// Capabilities is what the shell needs from the host device. A false ok
// means the feature is unavailable and nothing changed.
type Capabilities interface {
	ToggleFlashlight() (on bool, ok bool)
	TurnOffFlashlight()
	ToggleBrightnessOverride() (on bool, ok bool)
	Brightness() (level float64, ok bool)
	SetBrightness(level float64)
}

// Unsupported reports every feature as absent.
type Unsupported struct{}

func (Unsupported) ToggleFlashlight() (bool, bool)         { return false, false }
func (Unsupported) TurnOffFlashlight()                     {}
func (Unsupported) ToggleBrightnessOverride() (bool, bool) { return false, false }
func (Unsupported) Brightness() (float64, bool)            { return 0, false }
func (Unsupported) SetBrightness(float64)                  {}

// Simulated keeps device state in memory. It stands in for hardware on
// terminals and in tests.
type Simulated struct {
	mu         sync.Mutex
	flashlight bool
	level      float64
	override   bool
	saved      float64
	logger     *log.Logger
}

func NewSimulated(logger *log.Logger) *Simulated {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Simulated{level: DefaultBrightness, logger: logger}
}

func (d *Simulated) ToggleFlashlight() (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flashlight = !d.flashlight
	d.logger.Info("flashlight toggled", "on", d.flashlight)
	return d.flashlight, true
}

func (d *Simulated) TurnOffFlashlight() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.flashlight {
		d.logger.Info("flashlight off")
	}
	d.flashlight = false
}

// ToggleBrightnessOverride switches between maximum and the saved level.
func (d *Simulated) ToggleBrightnessOverride() (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.override {
		d.level = d.saved
		d.override = false
	} else {
		d.saved = d.level
		d.level = MaxBrightness
		d.override = true
	}
	d.logger.Info("brightness override toggled", "on", d.override, "level", d.level)
	return d.override, true
}

func (d *Simulated) Brightness() (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.level, true
}

func (d *Simulated) SetBrightness(level float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.level = Clamp(level)
	d.override = false
	d.logger.Info("brightness set", "level", d.level)
}

// FlashlightOn reports the simulated torch state.
func (d *Simulated) FlashlightOn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flashlight
}

func Clamp(level float64) float64 {
	return max(MinBrightness, min(MaxBrightness, level))
}

// New picks an implementation by config name: "simulated" or "none".
func New(kind string, logger *log.Logger) Capabilities {
	if kind == "none" {
		return Unsupported{}
	}
	return NewSimulated(logger)
}
