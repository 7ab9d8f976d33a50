// go-imx290 is a register-level driver core for the Sony IMX290 and IMX327
// CMOS image sensors on a MIPI CSI-2 link. It programs the sensor over a
// 16-bit-addressed register bus, drives the power-up / mode-select /
// streaming lifecycle and keeps the user-facing controls (gain, exposure,
// flip, test pattern, conversion gain) consistent with the active register
// state.
//
// The driver does not own the register transport or the board resources:
// callers supply a Bus for register I/O and a Platform for the input clock,
// the reset line and the voltage rails.
package imx290

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"
)

// Variant selects the sensor model the driver is attached to. The two
// models share the register map but need different trim tables on power-up
// and expose different maximum analog gain codes.
type Variant int

const (
	VariantIMX290 Variant = iota
	VariantIMX327
)

// String implement Stringer interface for Variant
func (v Variant) String() string {
	switch v {
	case VariantIMX290:
		return "imx290"
	case VariantIMX327:
		return "imx327"
	default:
		return "unknown variant"
	}
}

// Supported external clock frequencies in Hz.
const (
	Clock37MHz uint32 = 37125000
	Clock74MHz uint32 = 74250000
)

// Config carries the wiring and clocking facts the driver needs at
// construction. Lane count and clock frequency describe the board and are
// immutable for the lifetime of the device.
type Config struct {
	// Lanes is the number of CSI-2 data lanes the sensor is wired with,
	// either 2 or 4.
	Lanes int

	// ClockHz is the external input clock frequency. Must be Clock37MHz
	// or Clock74MHz.
	ClockHz uint32

	// Variant selects the sensor model.
	Variant Variant

	// LinkFrequencies lists the link frequencies the receiver supports.
	// Construction fails unless every frequency the mode catalog needs
	// for the given lane/clock combination is present.
	LinkFrequencies []int64
}

// IMX290 represents a single sensor instance.
type IMX290 struct {
	bus      Bus
	platform Platform

	nlanes  uint8
	inck    inputClock
	clockHz uint32
	variant Variant
	maxGain int64

	mu            sync.Mutex
	state         PowerState
	fps           fpsClass
	bpp           uint8
	currentMode   *mode
	currentFormat Format
	vmax          uint32
	reg3007       uint8
	ctrl          controlValues

	// sleep is the settle-delay hook, replaced in tests
	sleep func(time.Duration)

	// log logger for debugging
	log *log.Logger
}

// New returns a new IMX290 driver instance using the given register bus and
// platform resources. The device starts in the off state with a default
// 1920x1080 10-bit format selected.
func New(bus Bus, platform Platform, cfg Config) (*IMX290, error) {

	d, err := newDevice(bus, platform, cfg)

	if err != nil {
		return nil, err
	}

	// create null logger
	d.log = log.New(io.Discard, "", log.LstdFlags)

	return d, nil
}

// NewWithLog creates a driver instance with a logger to be used for
// debugging and best-effort failure reporting.
func NewWithLog(bus Bus, platform Platform, cfg Config,
	log *log.Logger) (*IMX290, error) {

	d, err := newDevice(bus, platform, cfg)

	if err != nil {
		return nil, err
	}

	// set logger
	d.log = log

	return d, nil
}

// newDevice validates the configuration and returns a new driver instance
func newDevice(bus Bus, platform Platform, cfg Config) (*IMX290, error) {

	if bus == nil {
		return nil, fmt.Errorf("register bus is not initiated")
	}

	if platform == nil {
		return nil, fmt.Errorf("platform resources are not initiated")
	}

	if cfg.Lanes != 2 && cfg.Lanes != 4 {
		return nil, fmt.Errorf("invalid data lanes: %d", cfg.Lanes)
	}

	d := &IMX290{
		bus:      bus,
		platform: platform,
		nlanes:   uint8(cfg.Lanes),
		clockHz:  cfg.ClockHz,
		variant:  cfg.Variant,
		sleep:    time.Sleep,
	}

	switch cfg.ClockHz {
	case Clock37MHz:
		d.inck = inck37
		d.fps = fps30
	case Clock74MHz:
		d.inck = inck74
		d.fps = fps60
	default:
		return nil, fmt.Errorf("external clock frequency %d is not supported",
			cfg.ClockHz)
	}

	switch cfg.Variant {
	case VariantIMX290:
		d.maxGain = 240
	case VariantIMX327:
		d.maxGain = 230
	default:
		return nil, fmt.Errorf("unknown sensor variant: %d", cfg.Variant)
	}

	// every link frequency the mode catalog can select must be declared
	// by the receiver
	if fq := d.checkLinkFreqs(cfg.LinkFrequencies); fq != 0 {
		return nil, fmt.Errorf("link frequency %d is not declared as supported", fq)
	}

	d.ctrl = defaultControlValues()

	// establish the default frame format
	d.setFormatLocked(Format{Width: 1920, Height: 1080, Code: SRGGB10})

	return d, nil
}

// checkLinkFreqs returns 0 if all link frequencies used by the driver for
// the configured lane count and input clock are present in declared, or the
// first missing frequency otherwise.
func (d *IMX290) checkLinkFreqs(declared []int64) int64 {

	for _, freq := range d.linkFreqs() {

		found := false

		for _, have := range declared {
			if freq == have {
				found = true
				break
			}
		}

		if !found {
			return freq
		}
	}

	return 0
}

// Lanes returns the configured CSI-2 data lane count.
func (d *IMX290) Lanes() int {
	return int(d.nlanes)
}

// ClockHz returns the configured external clock frequency.
func (d *IMX290) ClockHz() uint32 {
	return d.clockHz
}

// Variant returns the sensor model the driver was constructed for.
func (d *IMX290) Variant() Variant {
	return d.variant
}
