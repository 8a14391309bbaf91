package protocol

import "sync"

// Codec encodes commands into wire frames and tracks the toggle bit.
//
// Every Encode call flips the toggle exactly once, so two consecutive frames
// for the same command differ in bit 3 of the opcode. Each sender that needs
// its own alternation must own a separate Codec.
//
// Codec is safe for concurrent use; the toggle order follows call order.
type Codec struct {
	mu     sync.Mutex
	toggle bool
}

// NewCodec creates a Codec with the toggle bit cleared.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode builds the frame for opcode and params and flips the toggle bit.
//
// Frame structure:
//
//	[55][FF][00][OP][~OP][P1][~P1]...[Pn][~Pn][SUM][~SUM]
//
// OP carries ToggleBit when the toggle was set before the call, and SUM is
// (OP + P1 + ... + Pn) mod 256.
func (c *Codec) Encode(opcode byte, params ...byte) []byte {
	c.mu.Lock()
	tx := opcode
	if c.toggle {
		tx |= ToggleBit
	}
	c.toggle = !c.toggle
	c.mu.Unlock()

	frame := make([]byte, 0, FrameSize(len(params)))

	// Preamble
	frame = append(frame, preamble[:]...)

	// Opcode and complement
	frame = appendPair(frame, tx)

	// Parameters, each followed by its complement
	for _, p := range params {
		frame = appendPair(frame, p)
	}

	// Checksum and complement
	frame = appendPair(frame, Checksum(tx, params))

	return frame
}

// EncodeCommand encodes a catalog Command.
func (c *Codec) EncodeCommand(cmd Command) []byte {
	return c.Encode(cmd.opcode, cmd.params...)
}

// Toggled reports whether the next frame will carry the toggle bit.
func (c *Codec) Toggled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toggle
}
