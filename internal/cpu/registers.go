package cpu

// Register is an 8-bit register cell.
type Register = uint8

// RegisterPair is a 16-bit view over two 8-bit registers, high byte
// first. The mask is applied on every 16-bit write; AF uses it to force
// the low nibble of F to zero.
type RegisterPair struct {
	High *Register
	Low  *Register

	mask uint16
}

func newRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFFFF}
}

// Uint16 reconstructs the pair from its constituent registers.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 splits the given value into the pair's constituent
// registers, high byte first.
func (r *RegisterPair) SetUint16(value uint16) {
	value &= r.mask
	*r.High = Register(value >> 8)
	*r.Low = Register(value & 0xFF)
}

// Registers contains the 8-bit registers, as well as the 16-bit
// register pairs aliasing them.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	// F is the flag register: Z N H C 0 0 0 0. Bits 3-0 always read
	// as zero.
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// registerNames indexes the standard operand encoding B, C, D, E, H,
// L, (HL), A.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerIndex returns a pointer to the register with the given
// operand encoding index. Index 6 encodes (HL) and has no backing
// register.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic("cpu: invalid register index")
}
