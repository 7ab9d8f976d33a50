package imx290

import "errors"

var (
	// ErrNotPowered is returned when an operation needs the sensor
	// powered and it is off.
	ErrNotPowered = errors.New("device is not powered")

	// ErrNoMode is returned when streaming is started before a mode has
	// been selected.
	ErrNoMode = errors.New("no mode selected")
)
