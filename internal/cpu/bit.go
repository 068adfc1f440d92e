package cpu

import "github.com/thelolagemann/go-dmg/pkg/utils"

// testBit tests the bit at the given index of the given value.
//
//	BIT b, n
//	b = 0 - 7
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if the tested bit is zero.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(bit uint8, value uint8) {
	c.setFlags(!utils.Test(value, bit), false, true, c.isFlagSet(FlagCarry))
}

// resetBit resets the bit at the given index of the given value. No
// flags are affected.
//
//	RES b, n
//	b = 0 - 7
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) resetBit(bit uint8, value uint8) uint8 {
	return utils.Reset(value, bit)
}

// setBit sets the bit at the given index of the given value. No flags
// are affected.
//
//	SET b, n
//	b = 0 - 7
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) setBit(bit uint8, value uint8) uint8 {
	return utils.Set(value, bit)
}
