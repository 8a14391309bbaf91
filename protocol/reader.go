package protocol

import (
	"bufio"
	"errors"
	"io"
)

// FrameReader extracts frames from a byte stream, as a receiving brick does.
//
// Bytes before a preamble are discarded, so a reader resynchronises after
// line noise. The parameter count of each frame comes from ParamCount.
//
// A frame that fails its integrity checks is reported as an error, and the
// bytes read after its preamble are scanned again on the next call, so a
// truncated frame does not swallow the frame that follows it.
//
// FrameReader is not safe for concurrent use.
type FrameReader struct {
	r       *bufio.Reader
	pending []byte
}

// NewFrameReader returns a FrameReader reading from r.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: bufio.NewReader(r)}
}

// ReadFrame returns the next complete, validated frame.
//
// io.EOF is returned only when the stream ends outside a frame; a stream
// ending mid-frame yields io.ErrUnexpectedEOF.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if err := fr.sync(); err != nil {
		return nil, err
	}

	head := make([]byte, PairSize)
	if err := fr.readFull(head); err != nil {
		return nil, err
	}
	if head[1] != Complement(head[0]) {
		fr.unread(head)
		return nil, &FrameError{
			Kind:   KindComplementMismatch,
			Offset: OpcodeOffset + 1,
			Want:   Complement(head[0]),
			Got:    head[1],
		}
	}

	n, ok := ParamCount(Opcode(head[0] &^ ToggleBit))
	if !ok {
		fr.unread(head)
		return nil, &FrameError{Kind: KindUnknownOpcode, Offset: OpcodeOffset, Got: head[0]}
	}

	frame := make([]byte, FrameSize(n))
	copy(frame, preamble[:])
	copy(frame[OpcodeOffset:], head)
	if err := fr.readFull(frame[ParamsOffset:]); err != nil {
		return nil, err
	}

	if err := Validate(frame); err != nil {
		fr.unread(frame[PreambleSize:])
		return nil, err
	}
	return frame, nil
}

// sync consumes bytes up to and including the next preamble.
func (fr *FrameReader) sync() error {
	matched := 0
	for matched < PreambleSize {
		b, err := fr.readByte()
		if err != nil {
			if matched > 0 && errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		switch {
		case b == preamble[matched]:
			matched++
		case b == preamble[0]:
			matched = 1
		default:
			matched = 0
		}
	}
	return nil
}

func (fr *FrameReader) readFull(buf []byte) error {
	for i := range buf {
		b, err := fr.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		buf[i] = b
	}
	return nil
}

// readByte returns pushed-back bytes before reading from the stream.
func (fr *FrameReader) readByte() (byte, error) {
	if len(fr.pending) > 0 {
		b := fr.pending[0]
		fr.pending = fr.pending[1:]
		return b, nil
	}
	return fr.r.ReadByte()
}

// unread pushes b back in front of the unread input.
func (fr *FrameReader) unread(b []byte) {
	fr.pending = append(append([]byte(nil), b...), fr.pending...)
}
