// Command rcxctl drives a LEGO RCX brick through an IR transmitter on a
// serial port.
//
// It sends single actions, runs command scripts, decodes captured frames
// and offers an interactive console:
//
//	rcxctl --device /dev/ttyUSB0 beep
//	rcxctl motor-on 0
//	rcxctl run square.rcx
//	rcxctl decode 55 FF 00 51 AE 01 FE 52 AD
//	rcxctl --dry-run console
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/moffa90/go-rcx/protocol"
	"github.com/moffa90/go-rcx/remote"
	"github.com/moffa90/go-rcx/script"
	"github.com/moffa90/go-rcx/serial"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes rcxctl and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, rest, err := loadConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprintln(stderr, "Error: no command given (see rcxctl --help)")
		return 2
	}

	logger := newLogger(stderr, cfg.Verbose)

	if err := dispatch(ctx, cfg, logger, rest, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, cfg *Config, logger *slogLogger, args []string, stdout io.Writer) error {
	switch args[0] {
	case "decode":
		if len(args) < 2 {
			return errors.New("usage: decode <hex bytes>")
		}
		return runDecode(stdout, args[1:])

	case "actions":
		for _, usage := range actionUsages() {
			fmt.Fprintln(stdout, usage)
		}
		return nil
	}

	w, err := openTransport(cfg, logger, stdout)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	opts := []remote.Option{
		remote.WithCommandDelay(cfg.Delay),
		remote.WithLogger(logger),
		remote.WithValidateBeforeSend(cfg.Validate),
	}
	if cfg.Verbose {
		opts = append(opts, remote.WithSentCallback(func(p remote.Packet) {
			for _, f := range p.Fields {
				logger.Debug("field", "action", p.Action, "name", f.Name, "bytes", fmt.Sprintf("% X", f.Bytes), "ok", f.OK)
			}
		}))
	}
	sender := remote.New(w, opts...)

	switch args[0] {
	case "run":
		if len(args) != 2 {
			return errors.New("usage: run <script>")
		}
		sc, err := script.Parse(args[1])
		if err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}
		logger.Info("running script", "path", args[1], "steps", len(sc.Steps))
		return sc.Run(ctx, sender)

	case "console":
		return runConsole(ctx, sender, cfg.History, stdout)

	default:
		step, err := script.NewStep(args[0], args[1:])
		if err != nil {
			return err
		}
		return step.Run(ctx, sender)
	}
}

// openTransport opens the serial port, or a hex printer in dry-run mode.
func openTransport(cfg *Config, logger *slogLogger, stdout io.Writer) (io.WriteCloser, error) {
	if cfg.DryRun {
		return &hexWriter{w: stdout}, nil
	}

	serialCfg := cfg.SerialConfig()
	port, err := serial.Open(serialCfg)
	if err != nil {
		return nil, err
	}
	if err := port.Flush(); err != nil {
		logger.Error("flush port", "device", serialCfg.Device, "error", err)
	}

	logger.Info("opened port", "device", serialCfg.Device, "baud", serialCfg.Baud)
	return port, nil
}

// hexWriter prints every written frame as one line of hex.
type hexWriter struct {
	w io.Writer
}

func (h *hexWriter) Write(p []byte) (int, error) {
	if _, err := fmt.Fprintf(h.w, "% X\n", p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (h *hexWriter) Close() error {
	return nil
}

// actionUsages returns one usage line per catalog action.
func actionUsages() []string {
	actions := protocol.Actions()
	usages := make([]string, 0, len(actions))
	for _, a := range actions {
		n, _ := protocol.ActionArgs(a)
		usages = append(usages, a+strings.Repeat(" <motor>", n))
	}
	return usages
}
