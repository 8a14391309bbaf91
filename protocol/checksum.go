package protocol

// Checksum computes the frame checksum: the transmitted opcode plus every
// parameter byte, modulo 256.
//
// The opcode must be the transmitted one, i.e. with the toggle bit applied.
func Checksum(opcode byte, params []byte) byte {
	sum := opcode
	for _, p := range params {
		sum += p
	}
	return sum
}

// Complement returns the bitwise complement transmitted after every byte.
func Complement(b byte) byte {
	return b ^ ComplementMask
}

// FrameSize returns the encoded size of a frame carrying n parameters.
func FrameSize(n int) int {
	return MinFrameSize + PairSize*n
}

// appendPair appends b and its complement.
func appendPair(frame []byte, b byte) []byte {
	return append(frame, b, Complement(b))
}
