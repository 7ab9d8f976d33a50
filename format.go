package imx290

import "fmt"

// PixelCode identifies a supported pixel encoding on the CSI-2 link.
type PixelCode int

const (
	// SRGGB10 is 10-bit Bayer RGGB
	SRGGB10 PixelCode = iota
	// SRGGB12 is 12-bit Bayer RGGB
	SRGGB12
)

// String implement Stringer interface for PixelCode
func (c PixelCode) String() string {
	switch c {
	case SRGGB10:
		return "SRGGB10"
	case SRGGB12:
		return "SRGGB12"
	default:
		return "unknown pixel code"
	}
}

type pixfmt struct {
	code PixelCode
	bpp  uint8
}

var formats = []pixfmt{
	{SRGGB10, 10},
	{SRGGB12, 12},
}

// Format is a frame format: geometry plus pixel encoding.
type Format struct {
	Width  uint32
	Height uint32
	Code   PixelCode
}

// FrameSize is one supported frame geometry.
type FrameSize struct {
	Width  uint32
	Height uint32
}

// Fraction is a frame interval as seconds per frame.
type Fraction struct {
	Numerator   uint32
	Denominator uint32
}

// frame interval classes, ordered from slowest to fastest rate
var intervals = []Fraction{
	fps25: {1, 25},
	fps30: {1, 30},
	fps50: {1, 50},
	fps60: {1, 60},
}

// PixelCodes enumerates the supported pixel encodings.
func (d *IMX290) PixelCodes() []PixelCode {
	codes := make([]PixelCode, len(formats))
	for i, f := range formats {
		codes[i] = f.code
	}
	return codes
}

// FrameSizes enumerates the supported frame geometries for the configured
// lane count.
func (d *IMX290) FrameSizes() []FrameSize {
	modes := d.modes()
	sizes := make([]FrameSize, len(modes))
	for i := range modes {
		sizes[i] = FrameSize{Width: modes[i].width, Height: modes[i].height}
	}
	return sizes
}

// FrameIntervals enumerates the supported frame intervals for the given
// pixel code and geometry. The geometry must match a catalog mode exactly.
func (d *IMX290) FrameIntervals(code PixelCode, width, height uint32) ([]Fraction, error) {

	supported := false
	for _, f := range formats {
		if f.code == code {
			supported = true
			break
		}
	}

	if !supported {
		return nil, fmt.Errorf("unsupported pixel code: %d", code)
	}

	for _, m := range d.modes() {
		if m.width == width && m.height == height {
			out := make([]Fraction, len(intervals))
			copy(out, intervals)
			return out, nil
		}
	}

	return nil, fmt.Errorf("unsupported frame size: %dx%d", width, height)
}

// setFormatLocked resolves the requested format against the mode catalog
// and the supported pixel codes and makes the result active. The device
// lock must be held (construction excepted).
func (d *IMX290) setFormatLocked(f Format) Format {

	m := nearestMode(d.modes(), f.Width, f.Height)

	fi := 0
	for i := range formats {
		if formats[i].code == f.Code {
			fi = i
			break
		}
	}

	applied := Format{
		Width:  m.width,
		Height: m.height,
		Code:   formats[fi].code,
	}

	d.currentMode = m
	d.currentFormat = applied
	d.bpp = formats[fi].bpp

	return applied
}

// SetFormat selects the active frame format. The requested geometry is
// matched to the nearest catalog mode and an unsupported pixel code falls
// back to SRGGB10. The applied format is returned. Register effect is
// deferred to the next streaming start.
func (d *IMX290) SetFormat(f Format) Format {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.setFormatLocked(f)
}

// CurrentFormat returns the active frame format.
func (d *IMX290) CurrentFormat() Format {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.currentFormat
}

// FrameInterval returns the active frame interval class.
func (d *IMX290) FrameInterval() Fraction {
	d.mu.Lock()
	defer d.mu.Unlock()

	return intervals[d.fps]
}

// SetFrameInterval selects the discrete frame interval class nearest the
// request, rounding toward the slowest class whose rate is at least the
// requested rate. Requests faster than the fastest class saturate at the
// fastest class. The applied interval is returned; it takes register effect
// at the next streaming start.
func (d *IMX290) SetFrameInterval(interval Fraction) Fraction {

	match := fpsClass(len(intervals) - 1)

	a := uint64(interval.Numerator)
	b := uint64(interval.Denominator)

	for i := range intervals {
		// interval >= class interval, i.e. class rate >= requested rate
		if a*uint64(intervals[i].Denominator) >= b*uint64(intervals[i].Numerator) {
			match = fpsClass(i)
			break
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.fps = match

	return intervals[match]
}
