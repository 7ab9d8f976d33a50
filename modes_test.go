package imx290

import "testing"

// End-to-end derivation: 2 lanes at 37.125 MHz, 1080p, 10-bit.
func TestLinkFrequencyDerivation(t *testing.T) {

	d, _, _, _ := newTestDevice(t, 2, Clock37MHz, VariantIMX290)

	if got, want := d.FrameInterval(), (Fraction{1, 30}); got != want {
		t.Fatalf("default interval: got=%v, want=%v", got, want)
	}

	applied := d.SetFormat(Format{Width: 1920, Height: 1080, Code: SRGGB10})

	if applied.Width != 1920 || applied.Height != 1080 {
		t.Fatalf("invalid mode selection: %v", applied)
	}

	if got, want := d.LinkFrequency(), int64(445500000); got != want {
		t.Fatalf("link frequency: got=%d, want=%d", got, want)
	}

	if got, want := d.PixelRate(), int64(178200000); got != want {
		t.Fatalf("pixel rate: got=%d, want=%d", got, want)
	}
}

func TestLinkFrequencyTables(t *testing.T) {

	for _, tc := range []struct {
		name    string
		lanes   int
		clockHz uint32
		want    []int64
	}{
		{"2l-37mhz", 2, Clock37MHz, []int64{445500000, 297000000}},
		{"4l-37mhz", 4, Clock37MHz, []int64{222750000, 148500000}},
		{"2l-74mhz", 2, Clock74MHz, []int64{891000000, 594000000}},
		{"4l-74mhz", 4, Clock74MHz, []int64{445500000, 297000000}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, _, _, _ := newTestDevice(t, tc.lanes, tc.clockHz, VariantIMX290)

			freqs := d.LinkFrequencies()

			if len(freqs) != len(tc.want) {
				t.Fatalf("invalid table size: got=%d, want=%d",
					len(freqs), len(tc.want))
			}

			for i := range freqs {
				if freqs[i] != tc.want[i] {
					t.Fatalf("freq[%d]: got=%d, want=%d", i, freqs[i], tc.want[i])
				}
			}
		})
	}
}

// pixel_rate * bpp <= link_freq * 2 * lanes < pixel_rate * bpp + bpp
func TestPixelRateFloorContract(t *testing.T) {

	for _, lanes := range []int{2, 4} {
		for _, clockHz := range []uint32{Clock37MHz, Clock74MHz} {
			for _, code := range []PixelCode{SRGGB10, SRGGB12} {
				for _, size := range []FrameSize{{1920, 1080}, {1280, 720}} {

					d, _, _, _ := newTestDevice(t, lanes, clockHz, VariantIMX290)
					d.SetFormat(Format{Width: size.Width, Height: size.Height,
						Code: code})

					var bpp int64 = 10
					if code == SRGGB12 {
						bpp = 12
					}

					rate := d.PixelRate()
					total := d.LinkFrequency() * 2 * int64(lanes)

					if rate*bpp > total || total >= rate*bpp+bpp {
						t.Fatalf("lanes=%d clock=%d bpp=%d: rate %d violates floor contract (total %d)",
							lanes, clockHz, bpp, rate, total)
					}
				}
			}
		}
	}
}

func TestNearestMode(t *testing.T) {

	for _, tc := range []struct {
		name       string
		width      uint32
		height     uint32
		wantWidth  uint32
		wantHeight uint32
	}{
		{"exact-1080p", 1920, 1080, 1920, 1080},
		{"exact-720p", 1280, 720, 1280, 720},
		{"near-720p", 1000, 800, 1280, 720},
		{"near-1080p", 1800, 1000, 1920, 1080},
		{"oversized", 4096, 2160, 1920, 1080},
		{"zero", 0, 0, 1280, 720},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := nearestMode(modes2Lanes, tc.width, tc.height)

			if m.width != tc.wantWidth || m.height != tc.wantHeight {
				t.Fatalf("nearest(%dx%d): got=%dx%d, want=%dx%d",
					tc.width, tc.height, m.width, m.height,
					tc.wantWidth, tc.wantHeight)
			}
		})
	}

	// equidistant requests must resolve deterministically to the earlier
	// catalog entry
	t.Run("deterministic-tie", func(t *testing.T) {
		tie := []mode{
			{width: 100, height: 100},
			{width: 300, height: 100},
		}

		m := nearestMode(tie, 200, 100)

		if m != &tie[0] {
			t.Fatalf("tie did not resolve to first entry")
		}
	})
}
