package remote

import (
	"time"

	"github.com/moffa90/go-rcx/protocol"
)

// Packet describes a frame the sender has written.
// Passed to SentCallback after every successful write.
type Packet struct {
	// Action is the catalog action name, or the opcode name for raw commands
	Action string

	// Command is the logical command that was encoded
	Command protocol.Command

	// Frame is the exact byte sequence written to the transport
	Frame []byte

	// Fields is the describe-data for rendering the frame
	Fields []protocol.Field

	// Sent is the time the write completed
	Sent time.Time
}

// SentCallback is called after every frame is written.
// Implementations should return quickly; the sender holds its lock while
// calling it.
type SentCallback func(Packet)

// Logger is an optional logging interface that can be provided to the sender.
// This allows integration with any logging framework.
//
// Example with log/slog:
//
//	type SlogLogger struct{ l *slog.Logger }
//	func (s SlogLogger) Debug(msg string, kv ...interface{}) { s.l.Debug(msg, kv...) }
//	func (s SlogLogger) Info(msg string, kv ...interface{})  { s.l.Info(msg, kv...) }
//	func (s SlogLogger) Error(msg string, kv ...interface{}) { s.l.Error(msg, kv...) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
