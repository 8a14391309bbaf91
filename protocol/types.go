package protocol

// Command is a logical RCX command: an opcode and its parameter bytes.
// Commands are values; use NewCommand or the catalog constructors to build one.
type Command struct {
	opcode byte
	params []byte
}

// NewCommand returns a Command for the given opcode and parameters.
// The parameter slice is copied.
func NewCommand(opcode byte, params ...byte) Command {
	cmd := Command{opcode: opcode}
	if len(params) > 0 {
		cmd.params = append([]byte(nil), params...)
	}
	return cmd
}

// Opcode returns the command opcode, without the toggle bit.
func (c Command) Opcode() byte {
	return c.opcode
}

// Params returns a copy of the command parameters.
func (c Command) Params() []byte {
	if len(c.params) == 0 {
		return nil
	}
	return append([]byte(nil), c.params...)
}

// BytePair is a value byte and the complement transmitted after it.
type BytePair struct {
	// Value is the transmitted byte
	Value byte

	// Complement is the byte that follows Value on the wire
	Complement byte
}

// Valid reports whether Complement is the bitwise complement of Value.
func (p BytePair) Valid() bool {
	return p.Complement == Complement(p.Value)
}

// DecodedFrame is the structural view of a frame.
// Returned by Decode; it carries whatever bytes were on the wire, valid or not.
type DecodedFrame struct {
	// Preamble is the 3-byte frame header
	Preamble [PreambleSize]byte

	// Opcode is the transmitted opcode, including the toggle bit if set
	Opcode byte

	// OpcodeComplement is the byte following Opcode
	OpcodeComplement byte

	// Params are the parameter pairs in wire order
	Params []BytePair

	// Checksum is the transmitted checksum byte
	Checksum byte

	// ChecksumComplement is the byte following Checksum
	ChecksumComplement byte
}

// ParamValues returns the parameter bytes without their complements.
func (f *DecodedFrame) ParamValues() []byte {
	values := make([]byte, len(f.Params))
	for i, p := range f.Params {
		values[i] = p.Value
	}
	return values
}

// BaseOpcode returns the transmitted opcode with the toggle bit cleared.
func (f *DecodedFrame) BaseOpcode() Opcode {
	return Opcode(f.Opcode &^ ToggleBit)
}

// Toggled reports whether the frame was sent with the toggle bit set.
func (f *DecodedFrame) Toggled() bool {
	return f.Opcode&ToggleBit != 0
}

// Field is one row of describe-data for displaying a frame.
type Field struct {
	// Name labels the field: "preamble", "opcode", "param[N]" or "checksum"
	Name string

	// Offset is the index of the field's first byte in the frame
	Offset int

	// Bytes are the raw bytes of the field
	Bytes []byte

	// OK reports whether the field passes its integrity check
	OK bool
}
