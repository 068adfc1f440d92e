package cpu

// swap exchanges the upper and lower nibbles of the given value.
//
//	SWAP n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	swapped := value<<4 | value>>4
	c.setFlags(swapped == 0, false, false, false)
	return swapped
}
