// Command imx290ctl exercises an IMX290/IMX327 sensor from the shell:
// enumerating its modes and controls, reading and writing controls, and
// running the power-up / stream / power-down sequence.
//
// The board description (I2C bus, lane count, external clock, variant and
// the link frequencies the receiver supports) is read from a TOML file,
// with flags overriding individual fields. The tool assumes a board whose
// rails, reset line and clock are strapped on; boards with switchable
// resources need a real Platform implementation.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/swdee/go-i2c"

	imx290 "github.com/brenna-rabe/go-imx290"
)

type deviceConfig struct {
	Bus             string  `toml:"bus"`
	Addr            uint8   `toml:"addr"`
	Lanes           int     `toml:"lanes"`
	ClockHz         uint32  `toml:"clock-hz"`
	Variant         string  `toml:"variant"`
	LinkFrequencies []int64 `toml:"link-frequencies"`
}

func defaultConfig() deviceConfig {
	return deviceConfig{
		Bus:     "/dev/i2c-0",
		Addr:    imx290.Address,
		Lanes:   2,
		ClockHz: imx290.Clock37MHz,
		Variant: "imx290",
		LinkFrequencies: []int64{
			445500000, 297000000, 222750000, 148500000,
			891000000, 594000000,
		},
	}
}

var (
	cfgPath string
	cfg     = defaultConfig()
)

// strappedPlatform is a Platform for boards whose clock, reset and rails
// are permanently wired on.
type strappedPlatform struct{}

func (strappedPlatform) EnableClock(hz uint32) error { return nil }
func (strappedPlatform) DisableClock()               {}
func (strappedPlatform) SetReset(asserted bool)      {}
func (strappedPlatform) EnableSupplies() error       { return nil }
func (strappedPlatform) DisableSupplies()            {}

func loadConfig(fs *pflag.FlagSet) error {

	if cfgPath != "" {
		data, err := os.ReadFile(cfgPath)

		if err != nil {
			return fmt.Errorf("read config %s: %w", cfgPath, err)
		}

		if err := toml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// flags win over the config file
	if fs.Changed("bus") {
		cfg.Bus, _ = fs.GetString("bus")
	}

	if fs.Changed("lanes") {
		cfg.Lanes, _ = fs.GetInt("lanes")
	}

	return nil
}

func openDevice() (*imx290.IMX290, func(), error) {

	conn, err := i2c.New(cfg.Addr, cfg.Bus)

	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.Bus, err)
	}

	var variant imx290.Variant

	switch cfg.Variant {
	case "imx290":
		variant = imx290.VariantIMX290
	case "imx327":
		variant = imx290.VariantIMX327
	default:
		conn.Close()
		return nil, nil, fmt.Errorf("unknown variant %q", cfg.Variant)
	}

	dev, err := imx290.New(imx290.NewI2CBus(conn), strappedPlatform{},
		imx290.Config{
			Lanes:           cfg.Lanes,
			ClockHz:         cfg.ClockHz,
			Variant:         variant,
			LinkFrequencies: cfg.LinkFrequencies,
		})

	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	return dev, func() { conn.Close() }, nil
}

func controlByName(dev *imx290.IMX290, name string) (imx290.ControlDesc, bool) {
	for _, c := range dev.Controls() {
		if c.Name == name {
			return c, true
		}
	}
	return imx290.ControlDesc{}, false
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show supported formats, intervals and controls",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, closeFn, err := openDevice()
			if err != nil {
				return err
			}
			defer closeFn()

			fmt.Printf("variant: %s, %d lanes, clock %d Hz\n",
				dev.Variant(), dev.Lanes(), dev.ClockHz())

			fmt.Println("frame sizes:")
			for _, s := range dev.FrameSizes() {
				fmt.Printf("  %dx%d\n", s.Width, s.Height)
			}

			fmt.Println("pixel codes:")
			for _, c := range dev.PixelCodes() {
				fmt.Printf("  %s\n", c)
			}

			fmt.Println("link frequencies:")
			for _, f := range dev.LinkFrequencies() {
				fmt.Printf("  %d Hz\n", f)
			}

			fmt.Println("controls:")
			for _, c := range dev.Controls() {
				ro := ""
				if c.ReadOnly {
					ro = " (read-only)"
				}
				fmt.Printf("  %-28s min=%d max=%d def=%d%s\n",
					c.Name, c.Min, c.Max, c.Default, ro)
			}

			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <control>",
		Short: "Read a control value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, closeFn, err := openDevice()
			if err != nil {
				return err
			}
			defer closeFn()

			desc, ok := controlByName(dev, args[0])
			if !ok {
				return fmt.Errorf("unknown control %q", args[0])
			}

			val, err := dev.Control(desc.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s = %d\n", desc.Name, val)
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <control> <value>",
		Short: "Write a control value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, closeFn, err := openDevice()
			if err != nil {
				return err
			}
			defer closeFn()

			desc, ok := controlByName(dev, args[0])
			if !ok {
				return fmt.Errorf("unknown control %q", args[0])
			}

			val, err := strconv.ParseInt(args[1], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			return dev.SetControl(desc.ID, val)
		},
	}
}

func newRegCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reg <address>",
		Short: "Read a raw sensor register (address in hex or decimal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := strconv.ParseUint(args[0], 0, 16)
			if err != nil {
				return fmt.Errorf("invalid register address %q: %w", args[0], err)
			}

			dev, closeFn, err := openDevice()
			if err != nil {
				return err
			}
			defer closeFn()

			val, err := dev.ReadRegister(uint16(addr))
			if err != nil {
				return err
			}

			fmt.Printf("0x%04x = 0x%02x\n", addr, val)
			return nil
		},
	}
}

func newStreamCmd() *cobra.Command {
	var (
		width    uint32
		height   uint32
		fps      uint32
		bits     int
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Power on, start streaming and stop on signal or timeout",
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, closeFn, err := openDevice()
			if err != nil {
				return err
			}
			defer closeFn()

			code := imx290.SRGGB10
			if bits == 12 {
				code = imx290.SRGGB12
			}

			applied := dev.SetFormat(imx290.Format{
				Width:  width,
				Height: height,
				Code:   code,
			})

			interval := dev.SetFrameInterval(imx290.Fraction{
				Numerator:   1,
				Denominator: fps,
			})

			fmt.Printf("format %dx%d %s, %d/%d s/frame, pixel rate %d\n",
				applied.Width, applied.Height, applied.Code,
				interval.Numerator, interval.Denominator,
				dev.PixelRate())

			if err := dev.PowerOn(); err != nil {
				return err
			}
			defer dev.PowerOff()

			if err := dev.StartStreaming(); err != nil {
				return err
			}
			defer dev.StopStreaming()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case <-stop:
			case <-time.After(duration):
			}

			return nil
		},
	}

	fs := cmd.Flags()
	fs.Uint32Var(&width, "width", 1920, "frame width")
	fs.Uint32Var(&height, "height", 1080, "frame height")
	fs.Uint32Var(&fps, "fps", 30, "frame rate")
	fs.IntVar(&bits, "bits", 10, "bit depth (10 or 12)")
	fs.DurationVar(&duration, "duration", time.Minute, "streaming duration")

	return cmd
}

func main() {

	root := &cobra.Command{
		Use:           "imx290ctl",
		Short:         "Control an IMX290/IMX327 image sensor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "path to TOML device config")
	pf.String("bus", cfg.Bus, "path to I2C bus")
	pf.Int("lanes", cfg.Lanes, "CSI-2 data lane count (2 or 4)")

	root.AddCommand(newInfoCmd(), newGetCmd(), newSetCmd(), newRegCmd(),
		newStreamCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "imx290ctl:", err)
		os.Exit(1)
	}
}
