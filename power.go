package imx290

import (
	"fmt"
	"time"
)

// SupplyNames lists the voltage rails a Platform implementation is expected
// to switch as a set, in the order they appear on the sensor datasheet.
var SupplyNames = []string{"vdda", "vddd", "vdddo"}

// Platform provides the board resources the driver sequences during power
// transitions: the sensor input clock, the reset line and the voltage
// rails. Disable paths are assumed infallible at this layer.
type Platform interface {
	// EnableClock starts the sensor input clock at the given frequency.
	EnableClock(hz uint32) error

	// DisableClock stops the sensor input clock.
	DisableClock()

	// SetReset drives the sensor reset line; asserted holds the sensor
	// in reset.
	SetReset(asserted bool)

	// EnableSupplies powers the rails named in SupplyNames.
	EnableSupplies() error

	// DisableSupplies removes power from the rails.
	DisableSupplies()
}

// PowerState is the driver's position in the off / powered / streaming
// lifecycle.
type PowerState int

const (
	StateOff PowerState = iota
	StatePowered
	StateStreaming
)

// String implement Stringer interface for PowerState
func (s PowerState) String() string {
	switch s {
	case StateOff:
		return "off"
	case StatePowered:
		return "powered"
	case StateStreaming:
		return "streaming"
	default:
		return "unknown state"
	}
}

const (
	// wait after deasserting reset before the sensor accepts register
	// traffic
	resetSettle = 30 * time.Millisecond

	// wait between standby and master-start transitions
	standbySettle = 30 * time.Millisecond
)

// State returns the current power/stream state.
func (d *IMX290) State() PowerState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// PowerOn brings the sensor from off to powered-idle: input clock first,
// then the supply rails, reset release after a settle window, and finally
// the power-on and sensor-variant trim tables. Calling PowerOn on an
// already powered device is a no-op.
//
// On failure all acquired resources are released again and the device
// stays off. PowerOn must not be called concurrently with PowerOff,
// StartStreaming or StopStreaming; serializing lifecycle transitions is
// the caller's responsibility.
func (d *IMX290) PowerOn() error {

	d.mu.Lock()
	if d.state != StateOff {
		d.mu.Unlock()
		return nil
	}
	fps := d.fps
	d.mu.Unlock()

	if err := d.platform.EnableClock(d.clockHz); err != nil {
		return fmt.Errorf("failed to enable clock: %w", err)
	}

	if err := d.platform.EnableSupplies(); err != nil {
		d.platform.DisableClock()
		return fmt.Errorf("failed to enable regulators: %w", err)
	}

	d.sleep(2 * time.Microsecond)
	d.platform.SetReset(false)
	d.sleep(resetSettle)

	err := d.setRegisterArray(fps, poweronSettings)

	if err == nil {
		switch d.variant {
		case VariantIMX290:
			err = d.setRegisterArray(fps, model290Settings)
		case VariantIMX327:
			err = d.setRegisterArray(fps, model327Settings)
		}
	}

	if err != nil {
		d.platform.SetReset(true)
		d.platform.DisableSupplies()
		d.platform.DisableClock()
		return fmt.Errorf("power-on programming failed: %w", err)
	}

	d.mu.Lock()
	d.state = StatePowered
	d.mu.Unlock()

	return nil
}

// PowerOff returns the sensor to the off state, stopping the stream first
// if one is active. The teardown itself has no failure path.
func (d *IMX290) PowerOff() {

	d.mu.Lock()
	streaming := d.state == StateStreaming
	d.mu.Unlock()

	if streaming {
		d.StopStreaming()
	}

	d.platform.DisableClock()
	d.platform.SetReset(true)
	d.platform.DisableSupplies()

	d.mu.Lock()
	d.state = StateOff
	d.vmax = 0
	d.mu.Unlock()
}

// StartStreaming programs the sensor for the active format and mode and
// starts the readout. The device must be powered. On failure the device
// stays powered-idle but partially programmed; re-invoking StartStreaming
// re-applies the full table set.
func (d *IMX290) StartStreaming() error {

	d.mu.Lock()
	switch d.state {
	case StateOff:
		d.mu.Unlock()
		return fmt.Errorf("start streaming: %w", ErrNotPowered)
	case StateStreaming:
		d.mu.Unlock()
		return nil
	}
	m := d.currentMode
	bpp := d.bpp
	fps := d.fps
	d.mu.Unlock()

	if m == nil {
		return ErrNoMode
	}

	// set init register settings
	if err := d.setRegisterArray(fps, globalInitSettings); err != nil {
		return fmt.Errorf("could not set init registers: %w", err)
	}

	// apply the register values related to the current frame format
	if err := d.writeCurrentFormat(fps, bpp); err != nil {
		return fmt.Errorf("could not set frame format: %w", err)
	}

	// apply default values of the current mode
	if err := d.setRegisterArray(fps, m.data); err != nil {
		return fmt.Errorf("could not set current mode: %w", err)
	}

	d.mu.Lock()
	d.reg3007 &^= winModeMask
	d.reg3007 |= winMode(m.height)

	// the vertical line total is fixed per mode class; changing vmax
	// would change the frame rate in turn
	if m.height == 1080 {
		d.vmax = 1125
	} else {
		d.vmax = 750
	}
	d.mu.Unlock()

	// apply customized values from the user
	if err := d.replayControls(); err != nil {
		return fmt.Errorf("could not sync controls: %w", err)
	}

	if err := d.writeReg(STANDBY, 0x00); err != nil {
		return err
	}

	d.sleep(standbySettle)

	// start streaming
	if err := d.writeReg(XMSTA, 0x00); err != nil {
		return err
	}

	d.mu.Lock()
	d.state = StateStreaming
	d.mu.Unlock()

	return nil
}

// StopStreaming puts the sensor back into standby. The stop sequence is
// best-effort: register failures are logged and the device still returns
// to powered-idle, since the controlling layer releases power regardless.
func (d *IMX290) StopStreaming() {

	d.mu.Lock()
	if d.state != StateStreaming {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	if err := d.writeReg(STANDBY, 0x01); err != nil {
		d.log.Printf("stop streaming: %v", err)
	} else {
		d.sleep(standbySettle)

		if err := d.writeReg(XMSTA, 0x01); err != nil {
			d.log.Printf("stop streaming: %v", err)
		}
	}

	d.mu.Lock()
	d.state = StatePowered
	d.mu.Unlock()
}

// writeCurrentFormat applies the bit-depth register table for the active
// pixel format.
func (d *IMX290) writeCurrentFormat(fps fpsClass, bpp uint8) error {
	switch bpp {
	case 10:
		return d.setRegisterArray(fps, settings10bit)
	case 12:
		return d.setRegisterArray(fps, settings12bit)
	default:
		return fmt.Errorf("unknown pixel format bit depth: %d", bpp)
	}
}

// winMode returns the WINMODE field value for a mode height.
func winMode(height uint32) uint8 {
	switch height {
	case 1080:
		return 0 << 4
	case 720:
		return 1 << 4
	default:
		return 0
	}
}
