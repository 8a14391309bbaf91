package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/moffa90/go-rcx/remote"
	"github.com/moffa90/go-rcx/serial"
)

// envPrefix namespaces environment overrides, e.g. RCX_DEVICE.
const envPrefix = "RCX"

// Config holds the resolved rcxctl settings.
// Precedence: flags, then RCX_* environment, then the config file, then defaults.
type Config struct {
	Device   string
	Baud     int
	Tower    bool
	Delay    time.Duration
	Verbose  bool
	DryRun   bool
	History  string
	Validate bool
}

// SerialConfig returns the port configuration for the selected transmitter.
func (c *Config) SerialConfig() *serial.Config {
	cfg := serial.DefaultConfig(c.Device)
	if c.Tower {
		cfg = serial.TowerConfig(c.Device)
	}
	if c.Baud > 0 {
		cfg.Baud = c.Baud
	}
	return cfg
}

func newFlagSet(out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("rcxctl", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SetInterspersed(false)

	fs.StringP("config", "c", "", "Config file (yaml, toml or json)")
	fs.StringP("device", "d", "/dev/ttyUSB0", "Serial device path")
	fs.IntP("baud", "b", 0, "Baud rate override (0 = transmitter default)")
	fs.Bool("tower", false, "Use the serial IR tower line settings (2400 8O1)")
	fs.Duration("delay", remote.DefaultCommandDelay, "Delay after each command")
	fs.BoolP("verbose", "v", false, "Enable debug logging")
	fs.BoolP("dry-run", "n", false, "Print frames as hex instead of opening the port")
	fs.String("history", ".rcxctl_history", "Console history file")
	fs.Bool("validate", true, "Validate every frame before it is sent")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: rcxctl [flags] <command> [args]\n\n")
		fmt.Fprintf(out, "Commands:\n")
		fmt.Fprintf(out, "  %-22s %s\n", "<action> [args]", "Send one action ("+strings.Join(actionUsages(), ", ")+")")
		fmt.Fprintf(out, "  %-22s %s\n", "run <script>", "Run a command script")
		fmt.Fprintf(out, "  %-22s %s\n", "decode <hex>", "Decode and validate a captured frame")
		fmt.Fprintf(out, "  %-22s %s\n", "console", "Interactive console")
		fmt.Fprintf(out, "  %-22s %s\n", "actions", "List catalog actions")
		fmt.Fprintf(out, "\nFlags:\n%s", fs.FlagUsages())
	}

	return fs
}

// loadConfig parses args and merges them with the environment and the
// optional config file. It returns the remaining positional arguments.
func loadConfig(args []string, out io.Writer) (*Config, []string, error) {
	fs := newFlagSet(out)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Device:   v.GetString("device"),
		Baud:     v.GetInt("baud"),
		Tower:    v.GetBool("tower"),
		Delay:    v.GetDuration("delay"),
		Verbose:  v.GetBool("verbose"),
		DryRun:   v.GetBool("dry-run"),
		History:  v.GetString("history"),
		Validate: v.GetBool("validate"),
	}

	if cfg.Delay < 0 {
		return nil, nil, fmt.Errorf("delay must not be negative, got %s", cfg.Delay)
	}
	if cfg.Device == "" && !cfg.DryRun {
		return nil, nil, errors.New("no device configured")
	}

	return cfg, fs.Args(), nil
}
