package serial

import (
	"fmt"

	"github.com/tarm/serial"
)

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens a native serial port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	serialConfig, err := nativeConfig(cfg)
	if err != nil {
		return nil, err
	}

	port, err := serial.OpenPort(serialConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{
		port: port,
		cfg:  cfg,
	}, nil
}

// nativeConfig translates a Config into the tarm/serial configuration.
func nativeConfig(cfg *Config) (*serial.Config, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("device path cannot be empty")
	}
	if cfg.Baud <= 0 {
		return nil, fmt.Errorf("invalid baud rate %d", cfg.Baud)
	}

	var parity serial.Parity
	switch cfg.Parity {
	case ParityNone, 0:
		parity = serial.ParityNone
	case ParityOdd:
		parity = serial.ParityOdd
	case ParityEven:
		parity = serial.ParityEven
	default:
		return nil, fmt.Errorf("unsupported parity %q", rune(cfg.Parity))
	}

	return &serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		Parity:      parity,
		Size:        8,
		StopBits:    serial.Stop1,
		ReadTimeout: cfg.ReadTimeout,
	}, nil
}

// Read reads data from the serial port
func (p *NativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes data to the serial port
func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port
func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush discards data received but not read and data written but not sent
func (p *NativePort) Flush() error {
	return p.port.Flush()
}
