package protocol

// Frame structure constants for the RCX serial/IR protocol.
const (
	// PreambleSize is the length of the fixed frame header
	PreambleSize = 3

	// PairSize is the size of a value byte followed by its complement
	PairSize = 2

	// MinFrameSize is the minimum frame size in bytes:
	// PREAMBLE(3) + OPCODE/COMP(2) + CHECKSUM/COMP(2)
	MinFrameSize = PreambleSize + 2*PairSize

	// OpcodeOffset is the index of the transmitted opcode byte
	OpcodeOffset = PreambleSize

	// ParamsOffset is the index of the first parameter byte
	ParamsOffset = OpcodeOffset + PairSize
)

// Preamble bytes, in wire order.
const (
	Preamble0 = 0x55
	Preamble1 = 0xFF
	Preamble2 = 0x00
)

var preamble = [PreambleSize]byte{Preamble0, Preamble1, Preamble2}

// Preamble returns the fixed 3-byte header that starts every frame.
func Preamble() [PreambleSize]byte {
	return preamble
}

// ToggleBit is OR-ed into the opcode of every other transmitted frame so the
// receiver can tell a repeated command from a retransmission.
const ToggleBit = 0x08

// ComplementMask is XOR-ed with a byte to produce its complement.
const ComplementMask = 0xFF

//go:generate go tool stringer -type=Opcode -trimprefix=Op

// Opcode is an RCX command opcode, without the toggle bit.
type Opcode byte

// Opcodes exposed by the command catalog.
const (
	// OpPing checks that the brick is alive (no parameters)
	OpPing Opcode = 0x10

	// OpSetMotor switches motors on or off (1 parameter: flags | motor mask)
	OpSetMotor Opcode = 0x21

	// OpStopAll stops every running task and motor (no parameters)
	OpStopAll Opcode = 0x50

	// OpPlaySound plays a system sound (1 parameter: sound number)
	OpPlaySound Opcode = 0x51
)

// Motor control flags for OpSetMotor, combined with the motor bit (1 << m).
const (
	// MotorOnFlag turns the selected motors on
	MotorOnFlag = 0x80

	// MotorOffFlag turns the selected motors off
	MotorOffFlag = 0x40

	// MaxMotorIndex is the highest motor output on a 3-motor controller
	MaxMotorIndex = 2
)

// SoundBeep is the system sound number played by the beep action.
const SoundBeep = 0x01
