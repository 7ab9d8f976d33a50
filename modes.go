package imx290

// mode describes one supported sensor readout configuration: its frame
// geometry, the link-frequency index it runs at and the register table that
// programs it.
type mode struct {
	width         uint32
	height        uint32
	linkFreqIndex int
	data          []regval
}

// link frequency indices into the per-lane/per-clock tables
const (
	freqIndex1080p = 0
	freqIndex720p  = 1
)

// supported link frequencies in Hz
var (
	linkFreq2Lanes37MHz = []int64{445500000, 297000000}
	linkFreq4Lanes37MHz = []int64{222750000, 148500000}
	linkFreq2Lanes74MHz = []int64{891000000, 594000000}
	linkFreq4Lanes74MHz = []int64{445500000, 297000000}
)

// Mode configs. The 2-lane and 4-lane catalogs carry the same entries today
// but are kept separate; lane-specific modes slot in without restructuring.
var modes2Lanes = []mode{
	{
		width:         1920,
		height:        1080,
		linkFreqIndex: freqIndex1080p,
		data:          mode1080pSettings,
	},
	{
		width:         1280,
		height:        720,
		linkFreqIndex: freqIndex720p,
		data:          mode720pSettings,
	},
}

var modes4Lanes = []mode{
	{
		width:         1920,
		height:        1080,
		linkFreqIndex: freqIndex1080p,
		data:          mode1080pSettings,
	},
	{
		width:         1280,
		height:        720,
		linkFreqIndex: freqIndex720p,
		data:          mode720pSettings,
	},
}

// modes returns the mode catalog for the configured lane count. newDevice
// ensures nlanes is either 2 or 4.
func (d *IMX290) modes() []mode {
	if d.nlanes == 2 {
		return modes2Lanes
	}
	return modes4Lanes
}

// linkFreqs returns the link-frequency table for the configured lane count
// and input clock class.
func (d *IMX290) linkFreqs() []int64 {
	switch {
	case d.nlanes == 2 && d.inck == inck37:
		return linkFreq2Lanes37MHz
	case d.nlanes == 2 && d.inck == inck74:
		return linkFreq2Lanes74MHz
	case d.nlanes == 4 && d.inck == inck37:
		return linkFreq4Lanes37MHz
	default:
		return linkFreq4Lanes74MHz
	}
}

// nearestMode returns the catalog entry whose geometry is closest to the
// requested width and height by squared euclidean distance. Exact matches
// have distance zero; ties resolve to the earlier catalog entry, so the
// result is deterministic.
func nearestMode(modes []mode, width, height uint32) *mode {

	best := 0
	bestDist := int64(-1)

	for i := range modes {
		dw := int64(modes[i].width) - int64(width)
		dh := int64(modes[i].height) - int64(height)
		dist := dw*dw + dh*dh

		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	return &modes[best]
}

// linkFreqLocked returns the active link frequency in Hz. Caller holds the
// device lock.
func (d *IMX290) linkFreqLocked() int64 {
	return d.linkFreqs()[d.currentMode.linkFreqIndex]
}

// calcPixelRateLocked derives the pixel rate from the active link
// frequency, the lane count and the bit depth. Integer division, floor
// semantics. Caller holds the device lock.
func (d *IMX290) calcPixelRateLocked() int64 {
	// pixel rate = link_freq * 2 * nr_of_lanes / bits_per_sample
	return d.linkFreqLocked() * 2 * int64(d.nlanes) / int64(d.bpp)
}

// LinkFrequency returns the link frequency of the active mode in Hz.
func (d *IMX290) LinkFrequency() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.linkFreqLocked()
}

// LinkFrequencies returns the link frequencies the mode catalog can select
// for the configured lane count and input clock, indexed by the mode's
// link-frequency index.
func (d *IMX290) LinkFrequencies() []int64 {
	freqs := d.linkFreqs()
	out := make([]int64, len(freqs))
	copy(out, freqs)
	return out
}

// PixelRate returns the pixel rate derived from the active mode and bit
// depth, in pixels per second.
func (d *IMX290) PixelRate() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.calcPixelRateLocked()
}
