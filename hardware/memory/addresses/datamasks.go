package addresses

// DataMasks select the bits of a TIA register that reach the data bus when
// the CPU reads it; the other bits are taken from the low byte of the
// address. The TIA only drives the bits that are
// meaningful for that register; the rest of the byte is "left over" from
// whatever address line pattern put it there, which is why reading a
// mirrored address can return bits that look like they came from the
// address rather than the register.
var DataMasks = []uint8{
	0b11000000, // CXM0P
	0b11000000, // CXM1P
	0b11000000, // CXP0FB
	0b11000000, // CXP1FB
	0b11000000, // CXM0FB
	0b11000000, // CXM1FB
	0b11000000, // CXBLPF
	0b11000000, // CXPPMM
	0b10000000, // INPT0
	0b10000000, // INPT1
	0b10000000, // INPT2
	0b10000000, // INPT3
	0b10000000, // INPT4
	0b10000000, // INPT5
}
