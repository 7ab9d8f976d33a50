package imx290

import (
	"fmt"

	"github.com/swdee/go-i2c"
)

// Address is the default address of the sensor on the I2C bus
const Address uint8 = 0x1a

// I2CBus adapts an I2C connection to the Bus interface using the sensor's
// 16-bit big-endian register addressing.
type I2CBus struct {
	bus *i2c.Options
}

// NewI2CBus returns a Bus backed by the given I2C connection.
func NewI2CBus(bus *i2c.Options) *I2CBus {
	return &I2CBus{bus: bus}
}

// ReadRegister reads one byte from a 16-bit register address.
func (b *I2CBus) ReadRegister(addr uint16) (uint8, error) {

	// write the register address
	if _, err := b.bus.WriteBytes([]byte{byte(addr >> 8), byte(addr)}); err != nil {
		return 0, err
	}

	buf := make([]byte, 1)
	n, err := b.bus.ReadBytes(buf)

	if err != nil {
		return 0, err
	}

	if n < 1 {
		return 0, fmt.Errorf("ReadRegister: insufficient data")
	}

	return buf[0], nil
}

// WriteRegister writes one byte to a 16-bit register address.
func (b *I2CBus) WriteRegister(addr uint16, value uint8) error {

	_, err := b.bus.WriteBytes([]byte{byte(addr >> 8), byte(addr), value})

	return err
}
