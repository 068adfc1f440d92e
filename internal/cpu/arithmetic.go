package cpu

import "github.com/thelolagemann/go-dmg/pkg/utils"

// addN adds the given value to the A Register.
//
//	ADD A, n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addN(value uint8) {
	sum := uint16(c.A) + uint16(value)
	c.setFlags(sum&0xFF == 0, false, utils.HalfCarryAdd(c.A, value), sum > 0xFF)
	c.A = Register(sum)
}

// addNCarry adds the given value + the carry flag to the A Register.
//
//	ADC A, n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addNCarry(value uint8) {
	carry := utils.Val(c.F, FlagCarry)
	sum := uint16(c.A) + uint16(value) + uint16(carry)
	c.setFlags(sum&0xFF == 0, false, (c.A&0xF)+(value&0xF)+carry > 0xF, sum > 0xFF)
	c.A = Register(sum)
}

// subtractN subtracts the given value from the A Register.
//
//	SUB n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subtractN(value uint8) {
	sum := uint16(c.A) - uint16(value)
	c.setFlags(sum&0xFF == 0, true, utils.HalfCarrySub(c.A, value), c.A < value)
	c.A = Register(sum)
}

// subtractNCarry subtracts the given value + the carry flag from the A
// Register.
//
//	SBC A, n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subtractNCarry(value uint8) {
	carry := utils.Val(c.F, FlagCarry)
	sum := uint16(c.A) - uint16(value) - uint16(carry)
	c.setFlags(sum&0xFF == 0, true, uint16(c.A&0xF) < uint16(value&0xF)+uint16(carry), sum > 0xFF)
	c.A = Register(sum)
}

// increment increments the given value by 1 and sets the flags
// accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 1
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement decrements the given value by 1 and sets the flags
// accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 1
	c.setFlags(decremented == 0, true, value&0xF == 0, c.isFlagSet(FlagCarry))
	return decremented
}

// incrementNN increments the given RegisterPair by 1. No flags are
// affected.
//
//	INC nn
//	nn = 16-bit register
func (c *CPU) incrementNN(register *RegisterPair) {
	register.SetUint16(register.Uint16() + 1)
}

// decrementNN decrements the given RegisterPair by 1. No flags are
// affected.
//
//	DEC nn
//	nn = 16-bit register
func (c *CPU) decrementNN(register *RegisterPair) {
	register.SetUint16(register.Uint16() - 1)
}

// addHL adds the given value to the HL RegisterPair.
//
//	ADD HL, rr
//	rr = 16-bit register
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xFFF)+(value&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned adds the next operand, interpreted as a signed 8-bit
// value, to SP and returns the result.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := uint16(int32(c.SP) + int32(int8(value)))

	tmpVal := c.SP ^ uint16(int8(value)) ^ result
	c.setFlags(false, false, tmpVal&0x10 == 0x10, tmpVal&0x100 == 0x100)

	return result
}

// decimalAdjust adjusts the A Register after a binary coded decimal
// add or subtract.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the high nibble required correction.
func (c *CPU) decimalAdjust() {
	var correction uint8
	carry := c.isFlagSet(FlagCarry)

	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
			correction |= 0x06
		}
		if carry || c.A > 0x99 {
			correction |= 0x60
			carry = true
		}
		c.A += correction
	} else {
		if c.isFlagSet(FlagHalfCarry) {
			correction |= 0x06
		}
		if carry {
			correction |= 0x60
		}
		c.A -= correction
	}

	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A ^= 0xFF
	c.setFlags(c.isFlagSet(FlagZero), true, true, c.isFlagSet(FlagCarry))
}

// setCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarryFlag() {
	c.setFlags(c.isFlagSet(FlagZero), false, false, true)
}

// complementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarryFlag() {
	c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
}
