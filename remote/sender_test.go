package remote

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-rcx/protocol"
)

// MockDevice records every frame written to it
type MockDevice struct {
	mu       sync.Mutex
	frames   [][]byte
	writeErr error
}

func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (m *MockDevice) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.frames = append(m.frames, append([]byte(nil), p...))
	return len(p), nil
}

func (m *MockDevice) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

func (m *MockDevice) Frames() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Mock logger for testing
type MockLogger struct {
	mu        sync.Mutex
	debugMsgs []string
	infoMsgs  []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugMsgs = append(l.debugMsgs, msg)
}

func (l *MockLogger) Info(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoMsgs = append(l.infoMsgs, msg)
}

func (l *MockLogger) Error(msg string, kv ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorMsgs = append(l.errorMsgs, msg)
}

func newTestSender(opts ...Option) (*Sender, *MockDevice) {
	device := NewMockDevice()
	opts = append([]Option{WithCommandDelay(0)}, opts...)
	return New(device, opts...), device
}

func TestNew(t *testing.T) {
	assert.Panics(t, func() { New(nil) })

	s := New(NewMockDevice(),
		WithCommandDelay(250*time.Millisecond),
		WithLogger(&MockLogger{}),
		WithSentCallback(func(Packet) {}),
		WithValidateBeforeSend(false),
	)
	require.NotNil(t, s)
	assert.Equal(t, 250*time.Millisecond, s.config.CommandDelay)
	assert.False(t, s.config.ValidateBeforeSend)
	assert.NotNil(t, s.config.Logger)
	assert.NotNil(t, s.config.SentCallback)
	assert.False(t, s.Toggled())
}

func TestDefaultConfig(t *testing.T) {
	s := New(NewMockDevice(), WithCommandDelay(-time.Second))
	assert.Equal(t, DefaultCommandDelay, s.config.CommandDelay)
	assert.True(t, s.config.ValidateBeforeSend)
}

func TestSendActions(t *testing.T) {
	ctx := context.Background()
	s, device := newTestSender()

	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Beep(ctx))
	require.NoError(t, s.MotorOn(ctx, 1))
	require.NoError(t, s.MotorOff(ctx, 1))
	require.NoError(t, s.StopAll(ctx))
	require.NoError(t, s.Do(ctx, "beep"))

	want := [][]byte{
		{0x55, 0xFF, 0x00, 0x10, 0xEF, 0x10, 0xEF},
		{0x55, 0xFF, 0x00, 0x59, 0xA6, 0x01, 0xFE, 0x5A, 0xA5},
		{0x55, 0xFF, 0x00, 0x21, 0xDE, 0x82, 0x7D, 0xA3, 0x5C},
		{0x55, 0xFF, 0x00, 0x29, 0xD6, 0x42, 0xBD, 0x6B, 0x94},
		{0x55, 0xFF, 0x00, 0x50, 0xAF, 0x50, 0xAF},
		{0x55, 0xFF, 0x00, 0x59, 0xA6, 0x01, 0xFE, 0x5A, 0xA5},
	}
	assert.Equal(t, want, device.Frames())
}

func TestSendRawCommand(t *testing.T) {
	s, device := newTestSender()

	err := s.Send(context.Background(), protocol.NewCommand(0x30, 0x01, 0x02))
	require.NoError(t, err)

	frames := device.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0x55, 0xFF, 0x00, 0x30, 0xCF, 0x01, 0xFE, 0x02, 0xFD, 0x33, 0xCC}, frames[0])
}

func TestInvalidMotorDoesNotSend(t *testing.T) {
	s, device := newTestSender()

	err := s.MotorOn(context.Background(), 3)
	assert.ErrorIs(t, err, protocol.ErrInvalidMotorIndex)

	err = s.Do(context.Background(), "motor-off", -1)
	assert.ErrorIs(t, err, protocol.ErrInvalidMotorIndex)

	err = s.Do(context.Background(), "fly")
	assert.ErrorIs(t, err, protocol.ErrUnknownAction)

	assert.Empty(t, device.Frames())
	assert.False(t, s.Toggled(), "rejected commands must not flip the toggle")
}

func TestSendWriteError(t *testing.T) {
	logger := &MockLogger{}
	s, device := newTestSender(WithLogger(logger))

	writeErr := errors.New("port closed")
	device.SetWriteError(writeErr)

	err := s.Beep(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "beep", we.Action)
	assert.Contains(t, err.Error(), "port closed")
	assert.Equal(t, []string{"write failed"}, logger.errorMsgs)
}

func TestSendCancelledContext(t *testing.T) {
	s, device := newTestSender()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Ping(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, device.Frames())
	assert.False(t, s.Toggled())
}

func TestSendDelayHonoursContext(t *testing.T) {
	device := NewMockDevice()
	s := New(device, WithCommandDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := s.Ping(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
	assert.Len(t, device.Frames(), 1, "frame is written before the delay")
}

func TestSendDelay(t *testing.T) {
	device := NewMockDevice()
	s := New(device, WithCommandDelay(30*time.Millisecond))

	start := time.Now()
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Ping(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestSentCallback(t *testing.T) {
	var packets []Packet
	logger := &MockLogger{}
	s, device := newTestSender(
		WithLogger(logger),
		WithSentCallback(func(p Packet) { packets = append(packets, p) }),
	)

	require.NoError(t, s.MotorOn(context.Background(), 2))

	require.Len(t, packets, 1)
	p := packets[0]
	assert.Equal(t, "motor-on", p.Action)
	assert.Equal(t, byte(protocol.OpSetMotor), p.Command.Opcode())
	assert.Equal(t, device.Frames()[0], p.Frame)
	assert.False(t, p.Sent.IsZero())

	require.Len(t, p.Fields, 4)
	for _, f := range p.Fields {
		assert.True(t, f.OK, "field %s", f.Name)
	}
	assert.Equal(t, []string{"sent frame"}, logger.debugMsgs)
}

func TestConcurrentSendsAlternateInWriteOrder(t *testing.T) {
	s, device := newTestSender()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Beep(context.Background()))
		}()
	}
	wg.Wait()

	frames := device.Frames()
	require.Len(t, frames, 20)
	for i, frame := range frames {
		toggled := frame[protocol.OpcodeOffset]&protocol.ToggleBit != 0
		assert.Equal(t, i%2 == 1, toggled, "frame %d: % X", i, frame)
		assert.NoError(t, protocol.Validate(frame))
	}
}
