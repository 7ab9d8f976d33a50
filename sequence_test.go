package imx290

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestSetRegisterArray(t *testing.T) {

	table := []regval{
		{0x3000, 0x01, 0},
		{0x3009, 0x01, cond5060FPS},
		{0x3009, 0x02, cond2530FPS},
		{0x3405, 0x10, cond2530FPS | cond2Lanes},
		{0x3405, 0x20, cond2530FPS | cond4Lanes},
		{0x3444, 0x20, condInck37},
		{0x3444, 0x40, condInck74},
		{0x304b, 0x0a, 0},
	}

	t.Run("filters-and-preserves-order", func(t *testing.T) {
		d, bus, _, slept := newTestDevice(t, 2, Clock37MHz, VariantIMX290)

		if err := d.setRegisterArray(fps30, table); err != nil {
			t.Fatalf("apply failed: %v", err)
		}

		want := []busWrite{
			{0x3000, 0x01},
			{0x3009, 0x02},
			{0x3405, 0x10},
			{0x3444, 0x20},
			{0x304b, 0x0a},
		}

		if !reflect.DeepEqual(bus.writes, want) {
			t.Fatalf("invalid writes:\ngot= %#v\nwant=%#v", bus.writes, want)
		}

		if got, want := *slept, []time.Duration{settleDelay}; !reflect.DeepEqual(got, want) {
			t.Fatalf("invalid settle delays: got=%v, want=%v", got, want)
		}
	})

	// a 50/60 fps gated entry must be skipped at 30 fps
	t.Run("skips-5060-entry-at-30fps", func(t *testing.T) {
		d, bus, _, _ := newTestDevice(t, 2, Clock37MHz, VariantIMX290)

		err := d.setRegisterArray(fps30, []regval{{0x3009, 0x01, cond5060FPS}})

		if err != nil {
			t.Fatalf("apply failed: %v", err)
		}

		if len(bus.writes) != 0 {
			t.Fatalf("gated entry was written: %#v", bus.writes)
		}
	})

	t.Run("aborts-on-first-failure", func(t *testing.T) {
		d, bus, _, slept := newTestDevice(t, 2, Clock37MHz, VariantIMX290)
		bus.failAddr = 0x3405

		err := d.setRegisterArray(fps30, table)

		if err == nil {
			t.Fatalf("expected apply error")
		}

		var seqErr *SequenceError
		if !errors.As(err, &seqErr) {
			t.Fatalf("error is not a SequenceError: %v", err)
		}

		if seqErr.Index != 3 || seqErr.Addr != 0x3405 {
			t.Fatalf("invalid failure position: index=%d addr=0x%04x",
				seqErr.Index, seqErr.Addr)
		}

		if !errors.Is(err, errBus) {
			t.Fatalf("bus error not propagated: %v", err)
		}

		// nothing written after the failure, no settle delay imposed
		want := []busWrite{{0x3000, 0x01}, {0x3009, 0x02}}
		if !reflect.DeepEqual(bus.writes, want) {
			t.Fatalf("invalid writes after failure:\ngot= %#v\nwant=%#v",
				bus.writes, want)
		}

		if len(*slept) != 0 {
			t.Fatalf("settle delay imposed on failure path: %v", *slept)
		}
	})
}

func TestWriteBufferedReg(t *testing.T) {

	t.Run("hold-bracket-little-endian", func(t *testing.T) {
		d, bus, _, _ := newTestDevice(t, 2, Clock37MHz, VariantIMX290)

		if err := d.writeBufferedReg(SHS1_LOW, 3, 0x012345); err != nil {
			t.Fatalf("buffered write failed: %v", err)
		}

		want := []busWrite{
			{REGHOLD, 0x01},
			{SHS1_LOW, 0x45},
			{SHS1_MID, 0x23},
			{SHS1_HIGH, 0x01},
			{REGHOLD, 0x00},
		}

		if !reflect.DeepEqual(bus.writes, want) {
			t.Fatalf("invalid writes:\ngot= %#v\nwant=%#v", bus.writes, want)
		}
	})

	t.Run("inner-failure-leaves-hold", func(t *testing.T) {
		d, bus, _, _ := newTestDevice(t, 2, Clock37MHz, VariantIMX290)
		bus.failAddr = SHS1_MID

		err := d.writeBufferedReg(SHS1_LOW, 3, 0x012345)

		if !errors.Is(err, errBus) {
			t.Fatalf("bus error not propagated: %v", err)
		}

		// hold asserted, never released
		if got, want := bus.writesTo(REGHOLD), []uint8{0x01}; !reflect.DeepEqual(got, want) {
			t.Fatalf("invalid hold writes: got=%v, want=%v", got, want)
		}
	})

	t.Run("rejects-bad-count", func(t *testing.T) {
		d, bus, _, _ := newTestDevice(t, 2, Clock37MHz, VariantIMX290)

		for _, nregs := range []int{0, 5} {
			if err := d.writeBufferedReg(SHS1_LOW, nregs, 0x012345); err == nil {
				t.Fatalf("count %d accepted", nregs)
			}
		}

		if len(bus.writes) != 0 {
			t.Fatalf("rejected count reached the bus: %#v", bus.writes)
		}
	})
}
