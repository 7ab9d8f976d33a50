package imx290

// condition gates a register-table entry on the runtime configuration.
// It is a bitset over three independent axes: frame-rate class, lane count
// and input clock class. Bits set on an axis list the acceptable values for
// that axis; an axis with no bits set is unconstrained. Zero means the
// entry always applies.
type condition uint8

const (
	cond25FPS condition = 1 << iota
	cond30FPS
	cond50FPS
	cond60FPS
	cond2Lanes
	cond4Lanes
	condInck37
	condInck74

	cond2530FPS = cond25FPS | cond30FPS
	cond5060FPS = cond50FPS | cond60FPS

	condFPSMask   = cond25FPS | cond30FPS | cond50FPS | cond60FPS
	condLanesMask = cond2Lanes | cond4Lanes
	condInckMask  = condInck37 | condInck74
)

// fpsClass is one of the discrete frame-rate classes the sensor supports.
type fpsClass int

const (
	fps25 fpsClass = iota
	fps30
	fps50
	fps60
)

// inputClock is the external clock frequency class.
type inputClock int

const (
	inck37 inputClock = iota
	inck74
)

// conditionMatches reports whether a register-table entry gated by cond
// applies under the given runtime configuration. A constrained axis whose
// configuration value is not a recognized class rejects the entry.
func conditionMatches(fps fpsClass, nlanes uint8, inck inputClock,
	cond condition) bool {

	reject := false

	if cond&condFPSMask != 0 {
		switch fps {
		case fps25:
			reject = reject || cond&cond25FPS == 0
		case fps30:
			reject = reject || cond&cond30FPS == 0
		case fps50:
			reject = reject || cond&cond50FPS == 0
		case fps60:
			reject = reject || cond&cond60FPS == 0
		default:
			reject = true
		}
	}

	if cond&condLanesMask != 0 {
		switch nlanes {
		case 2:
			reject = reject || cond&cond2Lanes == 0
		case 4:
			reject = reject || cond&cond4Lanes == 0
		default:
			reject = true
		}
	}

	if cond&condInckMask != 0 {
		switch inck {
		case inck37:
			reject = reject || cond&condInck37 == 0
		case inck74:
			reject = reject || cond&condInck74 == 0
		default:
			reject = true
		}
	}

	return !reject
}

// settingsMatch evaluates cond against the device configuration at the
// given frame-rate class. The class is the only mutable axis and is
// snapshotted under the device lock by the caller; lane count and input
// clock are fixed at construction.
func (d *IMX290) settingsMatch(fps fpsClass, cond condition) bool {
	return conditionMatches(fps, d.nlanes, d.inck, cond)
}
