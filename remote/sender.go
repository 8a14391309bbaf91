package remote

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/moffa90/go-rcx/protocol"
)

// Sender drives an RCX brick by writing encoded frames to a transport.
// It owns the Codec, so the toggle bit alternates in the order frames are
// written.
//
// Sender is safe for concurrent use; sends are serialized, including the
// inter-command delay.
type Sender struct {
	mu     sync.Mutex
	w      io.Writer
	codec  *protocol.Codec
	config Config
}

// New creates a new Sender writing to w with the given options.
// w is typically a serial port connected to an IR tower or bridge.
//
// Example:
//
//	port, _ := serial.Open(serial.DefaultConfig("/dev/ttyUSB0"))
//	s := remote.New(port,
//	    remote.WithCommandDelay(150*time.Millisecond),
//	)
func New(w io.Writer, opts ...Option) *Sender {
	if w == nil {
		panic("writer cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sender{
		w:      w,
		codec:  protocol.NewCodec(),
		config: cfg,
	}
}

// Send encodes cmd, writes the frame and waits for the command delay.
//
// The context is checked before writing and bounds the delay; a frame that
// has been written is never retried.
func (s *Sender) Send(ctx context.Context, cmd protocol.Command) error {
	return s.send(ctx, protocol.Opcode(cmd.Opcode()).String(), cmd)
}

// Do resolves a named catalog action and sends it.
//
// Example:
//
//	err := s.Do(ctx, "motor-on", 1)
func (s *Sender) Do(ctx context.Context, action string, args ...int) error {
	cmd, err := protocol.Lookup(action, args...)
	if err != nil {
		return err
	}
	return s.send(ctx, action, cmd)
}

// Ping sends the Ping command.
func (s *Sender) Ping(ctx context.Context) error {
	return s.send(ctx, protocol.ActionPing, protocol.Ping())
}

// Beep plays the beep system sound.
func (s *Sender) Beep(ctx context.Context) error {
	return s.send(ctx, protocol.ActionBeep, protocol.Beep())
}

// StopAll stops every task and motor on the brick.
func (s *Sender) StopAll(ctx context.Context) error {
	return s.send(ctx, protocol.ActionStopAll, protocol.StopAll())
}

// MotorOn switches motor m (0-2) on.
func (s *Sender) MotorOn(ctx context.Context, m int) error {
	cmd, err := protocol.MotorOn(m)
	if err != nil {
		return err
	}
	return s.send(ctx, protocol.ActionMotorOn, cmd)
}

// MotorOff switches motor m (0-2) off.
func (s *Sender) MotorOff(ctx context.Context, m int) error {
	cmd, err := protocol.MotorOff(m)
	if err != nil {
		return err
	}
	return s.send(ctx, protocol.ActionMotorOff, cmd)
}

// Toggled reports whether the next frame will carry the toggle bit.
func (s *Sender) Toggled() bool {
	return s.codec.Toggled()
}

func (s *Sender) send(ctx context.Context, action string, cmd protocol.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cancelled: %w", err)
	}

	frame := s.codec.EncodeCommand(cmd)

	if s.config.ValidateBeforeSend {
		if err := protocol.Validate(frame); err != nil {
			s.logError("refusing invalid frame", "action", action, "frame", fmt.Sprintf("% X", frame), "error", err)
			return fmt.Errorf("validate %s frame: %w", action, err)
		}
	}

	if _, err := s.w.Write(frame); err != nil {
		s.logError("write failed", "action", action, "error", err)
		return &WriteError{Action: action, Err: err}
	}

	s.logDebug("sent frame",
		"action", action,
		"frame", fmt.Sprintf("% X", frame),
		"toggle", frame[protocol.OpcodeOffset]&protocol.ToggleBit != 0,
	)

	s.reportSent(action, cmd, frame)

	return s.wait(ctx)
}

// wait applies the inter-command delay so the brick can process the frame.
func (s *Sender) wait(ctx context.Context) error {
	if s.config.CommandDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.config.CommandDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("cancelled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// reportSent calls the sent callback if configured.
func (s *Sender) reportSent(action string, cmd protocol.Command, frame []byte) {
	if s.config.SentCallback == nil {
		return
	}

	fields, err := protocol.Describe(frame)
	if err != nil {
		s.logError("describe frame", "action", action, "error", err)
	}

	s.config.SentCallback(Packet{
		Action:  action,
		Command: cmd,
		Frame:   frame,
		Fields:  fields,
		Sent:    time.Now(),
	})
}

// logDebug logs a debug message if a logger is configured.
func (s *Sender) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (s *Sender) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
