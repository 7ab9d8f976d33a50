package imx290

import "fmt"

const (
	// Power and streaming control
	STANDBY uint16 = 0x3000
	REGHOLD uint16 = 0x3001
	XMSTA   uint16 = 0x3002

	// Black level adjustment
	BLKLEVEL_LOW  uint16 = 0x300a
	BLKLEVEL_HIGH uint16 = 0x300b

	// Window mode and readout inversion (winmode, hflip, vflip)
	WINMODE uint16 = 0x3007

	// Frame rate selection, also carries the conversion gain bit
	FRSEL uint16 = 0x3009

	// Analog gain
	GAIN uint16 = 0x3014

	// Shutter sweep time (exposure), 18-bit little endian
	SHS1_LOW  uint16 = 0x3020
	SHS1_MID  uint16 = 0x3021
	SHS1_HIGH uint16 = 0x3022

	// Test pattern generator control
	PGCTRL uint16 = 0x308c
)

// PGCTRL bit fields
const (
	pgctrlRegen uint8 = 1 << 0
	pgctrlThru  uint8 = 1 << 1
)

func pgctrlMode(n uint8) uint8 {
	return n << 4
}

// WINMODE bit fields
const (
	winVFlip    uint8 = 1 << 0
	winHFlip    uint8 = 1 << 1
	winModeMask uint8 = 7 << 4
)

// Bus is the register transport the driver programs the sensor through.
// Implementations provide single-register access with their own error and
// retry semantics; the driver performs no retries of its own.
type Bus interface {
	// ReadRegister reads one byte from a 16-bit register address.
	ReadRegister(addr uint16) (uint8, error)

	// WriteRegister writes one byte to a 16-bit register address.
	WriteRegister(addr uint16, value uint8) error
}

// readReg reads an 8-bit value from a 16-bit register.
func (d *IMX290) readReg(addr uint16) (uint8, error) {

	value, err := d.bus.ReadRegister(addr)

	if err != nil {
		return 0, fmt.Errorf("read register 0x%04x: %w", addr, err)
	}

	return value, nil
}

// ReadRegister returns the current value of one sensor register. Intended
// for debugging; the driver itself tracks register state through caches and
// does not read back what it writes.
func (d *IMX290) ReadRegister(addr uint16) (uint8, error) {
	return d.readReg(addr)
}

// writeReg writes an 8-bit value to a 16-bit register.
func (d *IMX290) writeReg(addr uint16, value uint8) error {

	if err := d.bus.WriteRegister(addr, value); err != nil {
		return fmt.Errorf("write register 0x%04x: %w", addr, err)
	}

	return nil
}

// writeBufferedReg writes nregs bytes of value little-endian starting at
// addressLow inside a register-hold bracket. The sensor latches the group
// only when the hold is released, so the update appears atomic.
//
// If an inner write fails the error is returned as-is; the hold register
// may be left asserted. No recovery is attempted here: the sensor register
// state after a failed write is indeterminate anyway and the next table
// apply or buffered write re-programs REGHOLD.
func (d *IMX290) writeBufferedReg(addressLow uint16, nregs int, value uint32) error {

	if nregs < 1 || nregs > 4 {
		return fmt.Errorf("buffered write of %d registers is out of range 1..4", nregs)
	}

	if err := d.writeReg(REGHOLD, 0x01); err != nil {
		return fmt.Errorf("set hold register: %w", err)
	}

	for i := 0; i < nregs; i++ {
		err := d.writeReg(addressLow+uint16(i), uint8(value>>(i*8)))

		if err != nil {
			return fmt.Errorf("write buffered registers: %w", err)
		}
	}

	if err := d.writeReg(REGHOLD, 0x00); err != nil {
		return fmt.Errorf("release hold register: %w", err)
	}

	return nil
}
