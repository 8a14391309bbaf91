package protocol

import "fmt"

// checkLength validates the frame length: the fixed part plus whole pairs.
func checkLength(frame []byte) error {
	if len(frame) < MinFrameSize || (len(frame)-MinFrameSize)%PairSize != 0 {
		return &FrameError{Kind: KindMalformedFrame, Len: len(frame)}
	}
	return nil
}

// Decode splits a frame into its structural fields.
//
// Only the length is checked; complements, checksum and preamble are
// returned as found. Use Validate to check integrity.
func Decode(frame []byte) (*DecodedFrame, error) {
	if err := checkLength(frame); err != nil {
		return nil, err
	}

	n := (len(frame) - MinFrameSize) / PairSize
	end := len(frame) - PairSize

	decoded := &DecodedFrame{
		Opcode:             frame[OpcodeOffset],
		OpcodeComplement:   frame[OpcodeOffset+1],
		Params:             make([]BytePair, n),
		Checksum:           frame[end],
		ChecksumComplement: frame[end+1],
	}
	copy(decoded.Preamble[:], frame[:PreambleSize])

	for i := range decoded.Params {
		off := ParamsOffset + i*PairSize
		decoded.Params[i] = BytePair{Value: frame[off], Complement: frame[off+1]}
	}

	return decoded, nil
}

// Validate checks the integrity of a frame.
//
// Every pair from the opcode onward must hold a byte and its complement, and
// the checksum must equal the transmitted opcode plus the parameters modulo
// 256. The first failure is returned as a *FrameError.
func Validate(frame []byte) error {
	if err := checkLength(frame); err != nil {
		return err
	}

	for off := OpcodeOffset; off < len(frame); off += PairSize {
		want := Complement(frame[off])
		if got := frame[off+1]; got != want {
			return &FrameError{
				Kind:   KindComplementMismatch,
				Len:    len(frame),
				Offset: off + 1,
				Want:   want,
				Got:    got,
			}
		}
	}

	end := len(frame) - PairSize
	sum := frame[OpcodeOffset]
	for off := ParamsOffset; off < end; off += PairSize {
		sum += frame[off]
	}
	if frame[end] != sum {
		return &FrameError{
			Kind:   KindChecksumMismatch,
			Len:    len(frame),
			Offset: end,
			Want:   sum,
			Got:    frame[end],
		}
	}

	return nil
}

// Describe returns one display row per frame field.
//
// Integrity failures do not abort: the affected row is marked !OK so a
// viewer can highlight it. Only a malformed length returns an error.
func Describe(frame []byte) ([]Field, error) {
	decoded, err := Decode(frame)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, 0, 3+len(decoded.Params))
	fields = append(fields, Field{
		Name:   "preamble",
		Offset: 0,
		Bytes:  append([]byte(nil), frame[:PreambleSize]...),
		OK:     decoded.Preamble == preamble,
	})

	opcode := BytePair{Value: decoded.Opcode, Complement: decoded.OpcodeComplement}
	fields = append(fields, Field{
		Name:   "opcode",
		Offset: OpcodeOffset,
		Bytes:  []byte{opcode.Value, opcode.Complement},
		OK:     opcode.Valid(),
	})

	for i, p := range decoded.Params {
		fields = append(fields, Field{
			Name:   fmt.Sprintf("param[%d]", i),
			Offset: ParamsOffset + i*PairSize,
			Bytes:  []byte{p.Value, p.Complement},
			OK:     p.Valid(),
		})
	}

	checksum := BytePair{Value: decoded.Checksum, Complement: decoded.ChecksumComplement}
	fields = append(fields, Field{
		Name:   "checksum",
		Offset: len(frame) - PairSize,
		Bytes:  []byte{checksum.Value, checksum.Complement},
		OK:     checksum.Valid() && checksum.Value == Checksum(decoded.Opcode, decoded.ParamValues()),
	})

	return fields, nil
}
