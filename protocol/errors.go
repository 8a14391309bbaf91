package protocol

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=ErrorKind -linecomment

// ErrorKind classifies frame errors.
type ErrorKind int

const (
	KindMalformedFrame     ErrorKind = iota + 1 // malformed frame
	KindComplementMismatch                      // complement mismatch
	KindChecksumMismatch                        // checksum mismatch
	KindUnknownOpcode                           // unknown opcode
)

// Sentinel errors matched by FrameError through errors.Is.
var (
	ErrMalformedFrame     = errors.New("malformed frame")
	ErrComplementMismatch = errors.New("complement mismatch")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrUnknownOpcode      = errors.New("unknown opcode")
)

// FrameError describes a frame that failed decoding or validation.
type FrameError struct {
	// Kind is the error class
	Kind ErrorKind

	// Len is the frame length in bytes
	Len int

	// Offset is the index of the offending byte (complement or checksum)
	Offset int

	// Want is the expected byte at Offset
	Want byte

	// Got is the byte found at Offset
	Got byte
}

func (e *FrameError) Error() string {
	switch e.Kind {
	case KindMalformedFrame:
		return fmt.Sprintf("%s: length %d, want %d + 2*n bytes", e.Kind, e.Len, MinFrameSize)
	case KindUnknownOpcode:
		return fmt.Sprintf("%s: 0x%02X", e.Kind, e.Got)
	default:
		return fmt.Sprintf("%s at offset %d: got 0x%02X, expected 0x%02X", e.Kind, e.Offset, e.Got, e.Want)
	}
}

// Is lets errors.Is match a FrameError against the sentinel of its kind.
func (e *FrameError) Is(target error) bool {
	switch e.Kind {
	case KindMalformedFrame:
		return target == ErrMalformedFrame
	case KindComplementMismatch:
		return target == ErrComplementMismatch
	case KindChecksumMismatch:
		return target == ErrChecksumMismatch
	case KindUnknownOpcode:
		return target == ErrUnknownOpcode
	}
	return false
}

// ErrInvalidMotorIndex is matched by MotorIndexError.
var ErrInvalidMotorIndex = errors.New("invalid motor index")

// MotorIndexError indicates a motor index outside 0..MaxMotorIndex.
type MotorIndexError struct {
	Index int
}

func (e *MotorIndexError) Error() string {
	return fmt.Sprintf("invalid motor index %d: valid range is 0-%d", e.Index, MaxMotorIndex)
}

func (e *MotorIndexError) Is(target error) bool {
	return target == ErrInvalidMotorIndex
}

// Catalog lookup errors.
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrActionArgs    = errors.New("wrong number of action arguments")
)

// IsFrameError returns true if the error is a FrameError.
func IsFrameError(err error) bool {
	var fe *FrameError
	return errors.As(err, &fe)
}
