package imx290

import "fmt"

// ConversionGain selects the sensor's conversion gain path.
type ConversionGain int

const (
	HCG ConversionGain = iota
	LCG
)

// String implement Stringer interface for ConversionGain
func (g ConversionGain) String() string {
	switch g {
	case HCG:
		return "HCG"
	case LCG:
		return "LCG"
	default:
		return "unknown conversion gain"
	}
}

// ControlID identifies one user control.
type ControlID int

const (
	CtrlConversionGain ControlID = iota
	CtrlHFlip
	CtrlVFlip
	CtrlTestPattern
	CtrlGain
	CtrlExposure
	CtrlLinkFreq
	CtrlPixelRate
)

// ControlType is the value type of a control.
type ControlType int

const (
	ControlBool ControlType = iota
	ControlInteger
	ControlInteger64
	ControlMenu
	ControlIntegerMenu
)

// ControlDesc describes one control for enumeration by a host framework.
type ControlDesc struct {
	ID       ControlID
	Name     string
	Type     ControlType
	Min      int64
	Max      int64
	Default  int64
	ReadOnly bool

	// Menu entries, for ControlMenu controls
	Menu []string

	// IntMenu entries, for ControlIntegerMenu controls
	IntMenu []int64
}

// TestPatternMenu lists the test pattern generator modes, index 0 disabling
// the generator.
var TestPatternMenu = []string{
	"Disabled",
	"Sequence Pattern 1",
	"Horizontal Color-bar Chart",
	"Vertical Color-bar Chart",
	"Sequence Pattern 2",
	"Gradation Pattern 1",
	"Gradation Pattern 2",
	"000/555h Toggle Pattern",
}

var conversionGainMenu = []string{"HCG", "LCG"}

const (
	exposureMax     = 10000
	exposureDefault = 10000
)

// controlValues holds the user-set control state. Values set while the
// device is off are kept here and replayed when streaming starts.
type controlValues struct {
	gain        int64
	exposure    int64
	hflip       bool
	vflip       bool
	testPattern int
	cgSwitch    ConversionGain
}

func defaultControlValues() controlValues {
	return controlValues{exposure: exposureDefault}
}

// Controls enumerates the control surface with ranges resolved for this
// device instance.
func (d *IMX290) Controls() []ControlDesc {
	return []ControlDesc{
		{
			ID:   CtrlConversionGain,
			Name: "Conversion Gain Switching",
			Type: ControlMenu,
			Max:  int64(len(conversionGainMenu) - 1),
			Menu: conversionGainMenu,
		},
		{
			ID:   CtrlHFlip,
			Name: "hflip",
			Type: ControlBool,
			Max:  1,
		},
		{
			ID:   CtrlVFlip,
			Name: "vflip",
			Type: ControlBool,
			Max:  1,
		},
		{
			ID:   CtrlTestPattern,
			Name: "test pattern",
			Type: ControlMenu,
			Max:  int64(len(TestPatternMenu) - 1),
			Menu: TestPatternMenu,
		},
		{
			ID:   CtrlGain,
			Name: "gain",
			Type: ControlInteger,
			Max:  d.maxGain,
		},
		{
			ID:      CtrlExposure,
			Name:    "exposure",
			Type:    ControlInteger,
			Max:     exposureMax,
			Default: exposureDefault,
		},
		{
			ID:       CtrlLinkFreq,
			Name:     "link freq",
			Type:     ControlIntegerMenu,
			Max:      int64(len(d.linkFreqs()) - 1),
			ReadOnly: true,
			IntMenu:  d.LinkFrequencies(),
		},
		{
			ID:       CtrlPixelRate,
			Name:     "pixel rate",
			Type:     ControlInteger64,
			Max:      int64(^uint64(0) >> 1),
			ReadOnly: true,
		},
	}
}

// SetControl routes a control update by ID. Boolean controls take 0 or 1.
// Writes to read-only controls are accepted as no-ops.
func (d *IMX290) SetControl(id ControlID, value int64) error {
	switch id {
	case CtrlConversionGain:
		if value != int64(HCG) && value != int64(LCG) {
			return fmt.Errorf("invalid conversion gain value: %d", value)
		}
		return d.SetConversionGain(ConversionGain(value))
	case CtrlHFlip:
		return d.SetHFlip(value != 0)
	case CtrlVFlip:
		return d.SetVFlip(value != 0)
	case CtrlTestPattern:
		return d.SetTestPattern(int(value))
	case CtrlGain:
		return d.SetGain(value)
	case CtrlExposure:
		return d.SetExposure(value)
	case CtrlLinkFreq, CtrlPixelRate:
		// read-only, derived values
		return nil
	default:
		return fmt.Errorf("unknown control: %d", id)
	}
}

// Control returns the current value of a control by ID. The link-frequency
// control reports the active mode's menu index.
func (d *IMX290) Control(id ControlID) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch id {
	case CtrlConversionGain:
		return int64(d.ctrl.cgSwitch), nil
	case CtrlHFlip:
		return boolVal(d.ctrl.hflip), nil
	case CtrlVFlip:
		return boolVal(d.ctrl.vflip), nil
	case CtrlTestPattern:
		return int64(d.ctrl.testPattern), nil
	case CtrlGain:
		return d.ctrl.gain, nil
	case CtrlExposure:
		return d.ctrl.exposure, nil
	case CtrlLinkFreq:
		return int64(d.currentMode.linkFreqIndex), nil
	case CtrlPixelRate:
		return d.calcPixelRateLocked(), nil
	default:
		return 0, fmt.Errorf("unknown control: %d", id)
	}
}

func boolVal(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// poweredLocked reports whether control updates may touch registers.
// Caller holds the device lock.
func (d *IMX290) poweredLocked() bool {
	return d.state != StateOff
}

// SetGain sets the raw analog gain code. The valid range depends on the
// sensor variant. While the device is off the value is stored and applied
// at the next streaming start.
func (d *IMX290) SetGain(value int64) error {

	if value < 0 || value > d.maxGain {
		return fmt.Errorf("gain %d out of range 0..%d", value, d.maxGain)
	}

	d.mu.Lock()
	d.ctrl.gain = value
	powered := d.poweredLocked()
	d.mu.Unlock()

	if !powered {
		return nil
	}

	return d.applyGain(value)
}

func (d *IMX290) applyGain(value int64) error {

	if err := d.writeBufferedReg(GAIN, 1, uint32(value)); err != nil {
		return fmt.Errorf("unable to write gain: %w", err)
	}

	return nil
}

// SetExposure sets the normalized exposure value in the range 0..10000.
// Larger values mean longer exposure. While the device is off, or before a
// mode has set the vertical line total, the value is stored without
// register effect.
func (d *IMX290) SetExposure(value int64) error {

	if value < 0 || value > exposureMax {
		return fmt.Errorf("exposure %d out of range 0..%d", value, exposureMax)
	}

	d.mu.Lock()
	d.ctrl.exposure = value
	powered := d.poweredLocked()
	vmax := d.vmax
	fps := d.fps
	d.mu.Unlock()

	if !powered {
		return nil
	}

	return d.applyExposure(value, vmax, fps)
}

// applyExposure maps the normalized exposure value to a raw shutter sweep
// line count and writes it inside a hold bracket. The raw value is the
// integration delay from vmax, so it decreases as exposure grows; the
// delta is clamped to at least one line.
func (d *IMX290) applyExposure(value int64, vmax uint32, fps fpsClass) error {

	if vmax == 0 {
		return nil
	}

	delta := uint32(value) * (vmax - 2) / exposureMax

	if delta == 0 {
		delta = 1
	}

	raw := vmax - 2 - delta

	regs := []regval{
		{REGHOLD, 0x01, 0},
		{SHS1_LOW, uint8(raw), 0},
		{SHS1_MID, uint8(raw >> 8), 0},
		{SHS1_HIGH, uint8(raw>>16) & 0x01, 0},
		{REGHOLD, 0x00, 0},
	}

	return d.setRegisterArray(fps, regs)
}

// SetHFlip mirrors the readout horizontally.
func (d *IMX290) SetHFlip(enable bool) error {
	return d.setFlip(winHFlip, enable, true)
}

// SetVFlip inverts the readout vertically.
func (d *IMX290) SetVFlip(enable bool) error {
	return d.setFlip(winVFlip, enable, false)
}

// setFlip updates one bit of the shared winmode/flip register. The cached
// register byte is read-modify-written under the device lock and the cache
// is updated only once the write has succeeded.
func (d *IMX290) setFlip(mask uint8, enable, horizontal bool) error {

	d.mu.Lock()
	defer d.mu.Unlock()

	if horizontal {
		d.ctrl.hflip = enable
	} else {
		d.ctrl.vflip = enable
	}

	if !d.poweredLocked() {
		return nil
	}

	return d.applyFlipLocked(mask, enable)
}

func (d *IMX290) applyFlipLocked(mask uint8, enable bool) error {

	r3007 := d.reg3007

	if enable {
		r3007 |= mask
	} else {
		r3007 &^= mask
	}

	regs := []regval{
		{REGHOLD, 0x01, 0},
		{WINMODE, r3007, 0},
		{REGHOLD, 0x00, 0},
	}

	if err := d.setRegisterArray(d.fps, regs); err != nil {
		return err
	}

	d.reg3007 = r3007

	return nil
}

// SetTestPattern enables the test pattern generator with the given
// TestPatternMenu index; index 0 disables it and restores the bit-depth
// default black level.
func (d *IMX290) SetTestPattern(index int) error {

	if index < 0 || index >= len(TestPatternMenu) {
		return fmt.Errorf("test pattern index %d out of range 0..%d",
			index, len(TestPatternMenu)-1)
	}

	d.mu.Lock()
	d.ctrl.testPattern = index
	powered := d.poweredLocked()
	bpp := d.bpp
	d.mu.Unlock()

	if !powered {
		return nil
	}

	return d.applyTestPattern(index, bpp)
}

func (d *IMX290) applyTestPattern(index int, bpp uint8) error {

	if index != 0 {
		if err := d.writeReg(BLKLEVEL_LOW, 0x00); err != nil {
			return err
		}
		if err := d.writeReg(BLKLEVEL_HIGH, 0x00); err != nil {
			return err
		}

		d.sleep(settleDelay)

		return d.writeReg(PGCTRL,
			pgctrlRegen|pgctrlThru|pgctrlMode(uint8(index)))
	}

	if err := d.writeReg(PGCTRL, 0x00); err != nil {
		return err
	}

	d.sleep(settleDelay)

	blklevel := uint8(0xf0) // 12 bits per pixel
	if bpp == 10 {
		blklevel = 0x3c
	}

	if err := d.writeReg(BLKLEVEL_LOW, blklevel); err != nil {
		return err
	}

	return d.writeReg(BLKLEVEL_HIGH, 0x00)
}

// SetConversionGain switches the sensor between high and low conversion
// gain. The switch bit rides on the frame-rate select register, so the
// update goes through a small conditional table keyed by the frame-rate
// class.
func (d *IMX290) SetConversionGain(g ConversionGain) error {

	if g != HCG && g != LCG {
		return fmt.Errorf("invalid conversion gain: %d", g)
	}

	d.mu.Lock()
	d.ctrl.cgSwitch = g
	powered := d.poweredLocked()
	fps := d.fps
	d.mu.Unlock()

	if !powered {
		return nil
	}

	return d.applyConversionGain(g, fps)
}

func (d *IMX290) applyConversionGain(g ConversionGain, fps fpsClass) error {

	var v uint8
	if g != HCG {
		v = 1 << 4
	}

	regs := []regval{
		{REGHOLD, 0x01, 0},
		{FRSEL, 0x01 | v, cond5060FPS},
		{FRSEL, 0x02 | v, cond2530FPS},
		{REGHOLD, 0x00, 0},
	}

	return d.setRegisterArray(fps, regs)
}

// replayControls re-applies every stored control value to the freshly
// programmed sensor. Called during the streaming-start sequence, after the
// mode table has established vmax.
func (d *IMX290) replayControls() error {

	d.mu.Lock()
	ctrl := d.ctrl
	vmax := d.vmax
	bpp := d.bpp
	fps := d.fps
	d.mu.Unlock()

	if err := d.applyConversionGain(ctrl.cgSwitch, fps); err != nil {
		return err
	}

	if err := d.applyGain(ctrl.gain); err != nil {
		return err
	}

	if err := d.applyExposure(ctrl.exposure, vmax, fps); err != nil {
		return err
	}

	d.mu.Lock()
	err := d.applyFlipLocked(winHFlip, ctrl.hflip)
	if err == nil {
		err = d.applyFlipLocked(winVFlip, ctrl.vflip)
	}
	d.mu.Unlock()

	if err != nil {
		return err
	}

	return d.applyTestPattern(ctrl.testPattern, bpp)
}
