// Package protocol implements the LEGO RCX serial/infrared command protocol.
//
// This package encodes commands into wire frames, splits frames back into
// their fields and checks frame integrity. It performs no I/O: frames are
// plain byte slices handed to whatever transport the caller owns.
//
// # Protocol Overview
//
// Every command travels as a self-checking frame:
//
//	[0x55][0xFF][0x00][OP][~OP][P1][~P1]...[Pn][~Pn][SUM][~SUM]
//
// Where:
//   - 0x55 0xFF 0x00 is the fixed preamble
//   - every byte after the preamble is followed by its complement (b ^ 0xFF)
//   - OP carries the toggle bit (0x08) on every other frame
//   - SUM = (OP + P1 + ... + Pn) mod 256
//
// # Encoding
//
// A Codec owns the toggle bit. Build commands with the catalog and encode them:
//
//	codec := protocol.NewCodec()
//	frame := codec.EncodeCommand(protocol.Beep())
//	_, err := port.Write(frame)
//
// Commands can also be resolved by name:
//
//	cmd, err := protocol.Lookup("motor-on", 1)
//
// # Decoding
//
// Decode is a structural split that never inspects integrity; Validate checks
// complements and the checksum; Describe returns display rows:
//
//	if err := protocol.Validate(frame); err != nil {
//	    var fe *protocol.FrameError
//	    if errors.As(err, &fe) {
//	        fmt.Println(fe.Kind, fe.Offset)
//	    }
//	}
//
// FrameReader pulls validated frames out of a byte stream, the way a brick
// listening on its IR port does.
package protocol
