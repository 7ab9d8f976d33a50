package imx290

import (
	"fmt"
	"time"
)

// settleDelay is the mandatory wait after a register table has been applied
// before the sensor's analog state is consistent again. Skipping it causes
// instability on real hardware.
const settleDelay = 10 * time.Millisecond

// regval is one entry of a register table: a value for a 16-bit register
// address, optionally gated on the runtime configuration.
type regval struct {
	reg  uint16
	val  uint8
	cond condition
}

// SequenceError reports a bus failure during a register-table apply with
// the position it happened at. The table is left partially applied; the
// sensor register state must be considered indeterminate until the full
// table is re-applied.
type SequenceError struct {
	Index int
	Addr  uint16
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("register sequence entry %d (0x%04x): %v",
		e.Index, e.Addr, e.Err)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}

// setRegisterArray applies a register table in order, skipping entries whose
// condition does not match the runtime configuration. The frame-rate class
// is passed in as a snapshot taken under the device lock, so a concurrent
// frame-interval change cannot shift gating mid-table. The first write
// failure aborts the apply; there is no rollback. On success the settle
// delay is imposed before returning.
func (d *IMX290) setRegisterArray(fps fpsClass, settings []regval) error {

	for i, s := range settings {

		if !d.settingsMatch(fps, s.cond) {
			continue
		}

		if err := d.writeReg(s.reg, s.val); err != nil {
			return &SequenceError{Index: i, Addr: s.reg, Err: err}
		}
	}

	// settle time before analog settings are consistent
	d.sleep(settleDelay)

	return nil
}
