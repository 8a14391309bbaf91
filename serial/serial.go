package serial

import (
	"io"
	"time"
)

// Port represents a serial port connected to an IR transmitter.
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered data
	Flush() error
}

// Parity selects the serial parity mode.
type Parity byte

// Parity modes.
const (
	ParityNone Parity = 'N'
	ParityOdd  Parity = 'O'
	ParityEven Parity = 'E'
)

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate
	Baud int

	// Parity mode
	Parity Parity

	// Read timeout (0 = blocking)
	ReadTimeout time.Duration
}

// Baud rates of the supported transmitters.
const (
	// BridgeBaud is the host link of a microcontroller IR bridge
	BridgeBaud = 115200

	// TowerBaud is the fixed rate of the RCX serial IR tower
	TowerBaud = 2400
)

// DefaultConfig returns a configuration for a microcontroller IR bridge
// that relays frames to its IR LED at the tower rate.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        BridgeBaud,
		Parity:      ParityNone,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// TowerConfig returns a configuration for the serial IR tower, which talks
// 2400 baud, 8 data bits, odd parity, 1 stop bit.
func TowerConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        TowerBaud,
		Parity:      ParityOdd,
		ReadTimeout: 100 * time.Millisecond,
	}
}
