package cpu

// loadRegister8 loads the next operand byte into the given Register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegister8(reg *Register) {
	*reg = c.readOperand()
}

// loadRegister16 loads the next operand word into the given Register
// pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
func (c *CPU) loadRegister16(reg *RegisterPair) {
	reg.SetUint16(c.readOperand16())
}

// loadMemoryToRegister loads the value at the given memory address into
// the given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory stores the value of the given Register at the
// given memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.writeByte(address, reg)
}

// push pushes a 16-bit value onto the stack, high byte first. The
// stack grows downward.
func (c *CPU) push(high, low uint8) {
	c.SP--
	c.writeByte(c.SP, high)
	c.SP--
	c.writeByte(c.SP, low)
}

// pop pops a 16-bit value off the stack.
func (c *CPU) pop() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// pushRegister pushes the given Register pair onto the stack.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
func (c *CPU) pushRegister(reg *RegisterPair) {
	c.push(*reg.High, *reg.Low)
}

// popRegister pops the top of the stack into the given Register pair.
// Popping into AF forces the low nibble of F to zero through the
// pair's write mask.
//
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) popRegister(reg *RegisterPair) {
	reg.SetUint16(c.pop())
}
