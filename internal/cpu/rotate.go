package cpu

// rotateLeft rotates the given value left by 1 bit. Bit 7 is copied to
// both the carry flag and the least significant bit.
//
//	RLC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(value uint8) uint8 {
	carry := value >> 7
	rotated := value<<1 | carry
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateRight rotates the given value right by 1 bit. Bit 0 is copied
// to both the carry flag and the most significant bit.
//
//	RRC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(value uint8) uint8 {
	carry := value & 1
	rotated := value>>1 | carry<<7
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateLeftThroughCarry rotates the given value left by 1 bit through
// the carry flag.
//
//	RL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	rotated := value << 1
	if c.isFlagSet(FlagCarry) {
		rotated |= 0x01
	}
	c.setFlags(rotated == 0, false, false, value&0x80 != 0)
	return rotated
}

// rotateRightThroughCarry rotates the given value right by 1 bit
// through the carry flag.
//
//	RR n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	rotated := value >> 1
	if c.isFlagSet(FlagCarry) {
		rotated |= 0x80
	}
	c.setFlags(rotated == 0, false, false, value&0x01 != 0)
	return rotated
}

// rotateLeftAccumulator rotates the A Register left by 1 bit. Unlike
// the CB prefixed rotates, the zero flag is always reset.
//
//	RLCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftAccumulator() {
	carry := c.A >> 7
	c.A = c.A<<1 | carry
	c.setFlags(false, false, false, carry == 1)
}

// rotateRightAccumulator rotates the A Register right by 1 bit. Unlike
// the CB prefixed rotates, the zero flag is always reset.
//
//	RRCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightAccumulator() {
	carry := c.A & 1
	c.A = c.A>>1 | carry<<7
	c.setFlags(false, false, false, carry == 1)
}

// rotateLeftAccumulatorThroughCarry rotates the A Register left by 1
// bit through the carry flag.
//
//	RLA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	carry := c.A&0x80 != 0
	c.A <<= 1
	if c.isFlagSet(FlagCarry) {
		c.A |= 0x01
	}
	c.setFlags(false, false, false, carry)
}

// rotateRightAccumulatorThroughCarry rotates the A Register right by 1
// bit through the carry flag.
//
//	RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightAccumulatorThroughCarry() {
	carry := c.A&0x01 != 0
	c.A >>= 1
	if c.isFlagSet(FlagCarry) {
		c.A |= 0x80
	}
	c.setFlags(false, false, false, carry)
}
