package serial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarm/serial"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")

	assert.Equal(t, "/dev/ttyUSB0", cfg.Device)
	assert.Equal(t, BridgeBaud, cfg.Baud)
	assert.Equal(t, ParityNone, cfg.Parity)
	assert.Equal(t, 100*time.Millisecond, cfg.ReadTimeout)
}

func TestTowerConfig(t *testing.T) {
	cfg := TowerConfig("COM3")

	assert.Equal(t, "COM3", cfg.Device)
	assert.Equal(t, TowerBaud, cfg.Baud)
	assert.Equal(t, ParityOdd, cfg.Parity)
}

func TestNativeConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *Config
		wantParity serial.Parity
		wantErr    string
	}{
		{
			name:       "bridge",
			cfg:        DefaultConfig("/dev/ttyACM0"),
			wantParity: serial.ParityNone,
		},
		{
			name:       "tower",
			cfg:        TowerConfig("/dev/ttyS0"),
			wantParity: serial.ParityOdd,
		},
		{
			name:       "zero parity means none",
			cfg:        &Config{Device: "/dev/ttyS0", Baud: 9600},
			wantParity: serial.ParityNone,
		},
		{
			name:       "even parity",
			cfg:        &Config{Device: "/dev/ttyS0", Baud: 9600, Parity: ParityEven},
			wantParity: serial.ParityEven,
		},
		{
			name:    "missing device",
			cfg:     &Config{Baud: 2400},
			wantErr: "device path cannot be empty",
		},
		{
			name:    "bad baud",
			cfg:     &Config{Device: "/dev/ttyS0"},
			wantErr: "invalid baud rate",
		},
		{
			name:    "bad parity",
			cfg:     &Config{Device: "/dev/ttyS0", Baud: 2400, Parity: 'X'},
			wantErr: "unsupported parity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nativeConfig(tt.cfg)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Device, got.Name)
			assert.Equal(t, tt.cfg.Baud, got.Baud)
			assert.Equal(t, tt.wantParity, got.Parity)
			assert.Equal(t, byte(8), got.Size)
			assert.Equal(t, serial.Stop1, got.StopBits)
			assert.Equal(t, tt.cfg.ReadTimeout, got.ReadTimeout)
		})
	}
}

func TestOpenNilConfig(t *testing.T) {
	_, err := Open(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config cannot be nil")
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(DefaultConfig("/dev/does-not-exist-rcx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open serial port")
}
