package cpu

import "fmt"

// Instruction is a single entry of the opcode tables. Entries whose fn
// is nil mark opcodes that are reserved on the DMG.
type Instruction struct {
	name   string
	length uint8 // length in bytes, including the opcode (and CB prefix)
	cycles uint8 // M-cycles consumed when no branch is taken
	// fn executes the instruction, returning the M-cycles consumed.
	// Branching instructions return more cycles than the table cost
	// when the branch is taken.
	fn func(*CPU) uint8
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the length of the instruction in bytes, including the
// opcode.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the M-cycles the instruction consumes when no branch
// is taken.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// Defined reports whether the table entry holds an operation.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// DefineInstruction installs an instruction in the primary table.
func DefineInstruction(opcode uint8, name string, length, cycles uint8, fn func(*CPU) uint8) {
	InstructionSet[opcode] = Instruction{name: name, length: length, cycles: cycles, fn: fn}
}

// InstructionSet holds the 256 primary instructions. The regularly
// encoded blocks (LD r, r' and the ALU block, along with their d8
// forms) are generated at startup; the reserved opcodes 0xD3, 0xDB,
// 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC and 0xFD are left
// undefined, as is 0xCB, which the CPU dispatches to the CB table
// before consulting this one.
var InstructionSet = [256]Instruction{
	0x00: {"NOP", 1, 1, func(c *CPU) uint8 { return 1 }},
	0x01: {"LD BC, d16", 3, 3, func(c *CPU) uint8 {
		c.loadRegister16(c.BC)
		return 3
	}},
	0x02: {"LD (BC), A", 1, 2, func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.BC.Uint16())
		return 2
	}},
	0x03: {"INC BC", 1, 2, func(c *CPU) uint8 {
		c.incrementNN(c.BC)
		return 2
	}},
	0x04: {"INC B", 1, 1, func(c *CPU) uint8 {
		c.B = c.increment(c.B)
		return 1
	}},
	0x05: {"DEC B", 1, 1, func(c *CPU) uint8 {
		c.B = c.decrement(c.B)
		return 1
	}},
	0x06: {"LD B, d8", 2, 2, func(c *CPU) uint8 {
		c.loadRegister8(&c.B)
		return 2
	}},
	0x07: {"RLCA", 1, 1, func(c *CPU) uint8 {
		c.rotateLeftAccumulator()
		return 1
	}},
	0x08: {"LD (a16), SP", 3, 5, func(c *CPU) uint8 {
		c.mmu.Write16(c.readOperand16(), c.SP)
		return 5
	}},
	0x09: {"ADD HL, BC", 1, 2, func(c *CPU) uint8 {
		c.addHL(c.BC.Uint16())
		return 2
	}},
	0x0A: {"LD A, (BC)", 1, 2, func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.BC.Uint16())
		return 2
	}},
	0x0B: {"DEC BC", 1, 2, func(c *CPU) uint8 {
		c.decrementNN(c.BC)
		return 2
	}},
	0x0C: {"INC C", 1, 1, func(c *CPU) uint8 {
		c.C = c.increment(c.C)
		return 1
	}},
	0x0D: {"DEC C", 1, 1, func(c *CPU) uint8 {
		c.C = c.decrement(c.C)
		return 1
	}},
	0x0E: {"LD C, d8", 2, 2, func(c *CPU) uint8 {
		c.loadRegister8(&c.C)
		return 2
	}},
	0x0F: {"RRCA", 1, 1, func(c *CPU) uint8 {
		c.rotateRightAccumulator()
		return 1
	}},
	0x10: {"STOP", 2, 1, func(c *CPU) uint8 {
		// the following byte is consumed as part of the instruction
		c.PC++
		c.mode = ModeStop
		return 1
	}},
	0x11: {"LD DE, d16", 3, 3, func(c *CPU) uint8 {
		c.loadRegister16(c.DE)
		return 3
	}},
	0x12: {"LD (DE), A", 1, 2, func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.DE.Uint16())
		return 2
	}},
	0x13: {"INC DE", 1, 2, func(c *CPU) uint8 {
		c.incrementNN(c.DE)
		return 2
	}},
	0x14: {"INC D", 1, 1, func(c *CPU) uint8 {
		c.D = c.increment(c.D)
		return 1
	}},
	0x15: {"DEC D", 1, 1, func(c *CPU) uint8 {
		c.D = c.decrement(c.D)
		return 1
	}},
	0x16: {"LD D, d8", 2, 2, func(c *CPU) uint8 {
		c.loadRegister8(&c.D)
		return 2
	}},
	0x17: {"RLA", 1, 1, func(c *CPU) uint8 {
		c.rotateLeftAccumulatorThroughCarry()
		return 1
	}},
	0x18: {"JR r8", 2, 3, func(c *CPU) uint8 {
		return c.jumpRelative(true)
	}},
	0x19: {"ADD HL, DE", 1, 2, func(c *CPU) uint8 {
		c.addHL(c.DE.Uint16())
		return 2
	}},
	0x1A: {"LD A, (DE)", 1, 2, func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.DE.Uint16())
		return 2
	}},
	0x1B: {"DEC DE", 1, 2, func(c *CPU) uint8 {
		c.decrementNN(c.DE)
		return 2
	}},
	0x1C: {"INC E", 1, 1, func(c *CPU) uint8 {
		c.E = c.increment(c.E)
		return 1
	}},
	0x1D: {"DEC E", 1, 1, func(c *CPU) uint8 {
		c.E = c.decrement(c.E)
		return 1
	}},
	0x1E: {"LD E, d8", 2, 2, func(c *CPU) uint8 {
		c.loadRegister8(&c.E)
		return 2
	}},
	0x1F: {"RRA", 1, 1, func(c *CPU) uint8 {
		c.rotateRightAccumulatorThroughCarry()
		return 1
	}},
	0x20: {"JR NZ, r8", 2, 2, func(c *CPU) uint8 {
		return c.jumpRelative(!c.isFlagSet(FlagZero))
	}},
	0x21: {"LD HL, d16", 3, 3, func(c *CPU) uint8 {
		c.loadRegister16(c.HL)
		return 3
	}},
	0x22: {"LD (HL+), A", 1, 2, func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.incrementNN(c.HL)
		return 2
	}},
	0x23: {"INC HL", 1, 2, func(c *CPU) uint8 {
		c.incrementNN(c.HL)
		return 2
	}},
	0x24: {"INC H", 1, 1, func(c *CPU) uint8 {
		c.H = c.increment(c.H)
		return 1
	}},
	0x25: {"DEC H", 1, 1, func(c *CPU) uint8 {
		c.H = c.decrement(c.H)
		return 1
	}},
	0x26: {"LD H, d8", 2, 2, func(c *CPU) uint8 {
		c.loadRegister8(&c.H)
		return 2
	}},
	0x27: {"DAA", 1, 1, func(c *CPU) uint8 {
		c.decimalAdjust()
		return 1
	}},
	0x28: {"JR Z, r8", 2, 2, func(c *CPU) uint8 {
		return c.jumpRelative(c.isFlagSet(FlagZero))
	}},
	0x29: {"ADD HL, HL", 1, 2, func(c *CPU) uint8 {
		c.addHL(c.HL.Uint16())
		return 2
	}},
	0x2A: {"LD A, (HL+)", 1, 2, func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.incrementNN(c.HL)
		return 2
	}},
	0x2B: {"DEC HL", 1, 2, func(c *CPU) uint8 {
		c.decrementNN(c.HL)
		return 2
	}},
	0x2C: {"INC L", 1, 1, func(c *CPU) uint8 {
		c.L = c.increment(c.L)
		return 1
	}},
	0x2D: {"DEC L", 1, 1, func(c *CPU) uint8 {
		c.L = c.decrement(c.L)
		return 1
	}},
	0x2E: {"LD L, d8", 2, 2, func(c *CPU) uint8 {
		c.loadRegister8(&c.L)
		return 2
	}},
	0x2F: {"CPL", 1, 1, func(c *CPU) uint8 {
		c.complement()
		return 1
	}},
	0x30: {"JR NC, r8", 2, 2, func(c *CPU) uint8 {
		return c.jumpRelative(!c.isFlagSet(FlagCarry))
	}},
	0x31: {"LD SP, d16", 3, 3, func(c *CPU) uint8 {
		c.SP = c.readOperand16()
		return 3
	}},
	0x32: {"LD (HL-), A", 1, 2, func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.decrementNN(c.HL)
		return 2
	}},
	0x33: {"INC SP", 1, 2, func(c *CPU) uint8 {
		c.SP++
		return 2
	}},
	0x34: {"INC (HL)", 1, 3, func(c *CPU) uint8 {
		addr := c.HL.Uint16()
		c.writeByte(addr, c.increment(c.readByte(addr)))
		return 3
	}},
	0x35: {"DEC (HL)", 1, 3, func(c *CPU) uint8 {
		addr := c.HL.Uint16()
		c.writeByte(addr, c.decrement(c.readByte(addr)))
		return 3
	}},
	0x36: {"LD (HL), d8", 2, 3, func(c *CPU) uint8 {
		c.writeByte(c.HL.Uint16(), c.readOperand())
		return 3
	}},
	0x37: {"SCF", 1, 1, func(c *CPU) uint8 {
		c.setCarryFlag()
		return 1
	}},
	0x38: {"JR C, r8", 2, 2, func(c *CPU) uint8 {
		return c.jumpRelative(c.isFlagSet(FlagCarry))
	}},
	0x39: {"ADD HL, SP", 1, 2, func(c *CPU) uint8 {
		c.addHL(c.SP)
		return 2
	}},
	0x3A: {"LD A, (HL-)", 1, 2, func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.decrementNN(c.HL)
		return 2
	}},
	0x3B: {"DEC SP", 1, 2, func(c *CPU) uint8 {
		c.SP--
		return 2
	}},
	0x3C: {"INC A", 1, 1, func(c *CPU) uint8 {
		c.A = c.increment(c.A)
		return 1
	}},
	0x3D: {"DEC A", 1, 1, func(c *CPU) uint8 {
		c.A = c.decrement(c.A)
		return 1
	}},
	0x3E: {"LD A, d8", 2, 2, func(c *CPU) uint8 {
		c.loadRegister8(&c.A)
		return 2
	}},
	0x3F: {"CCF", 1, 1, func(c *CPU) uint8 {
		c.complementCarryFlag()
		return 1
	}},
	0x76: {"HALT", 1, 1, func(c *CPU) uint8 {
		c.mode = ModeHalt
		return 1
	}},
	0xC0: {"RET NZ", 1, 2, func(c *CPU) uint8 {
		return c.retConditional(!c.isFlagSet(FlagZero))
	}},
	0xC1: {"POP BC", 1, 3, func(c *CPU) uint8 {
		c.popRegister(c.BC)
		return 3
	}},
	0xC2: {"JP NZ, a16", 3, 3, func(c *CPU) uint8 {
		return c.jumpAbsolute(!c.isFlagSet(FlagZero))
	}},
	0xC3: {"JP a16", 3, 4, func(c *CPU) uint8 {
		return c.jumpAbsolute(true)
	}},
	0xC4: {"CALL NZ, a16", 3, 3, func(c *CPU) uint8 {
		return c.call(!c.isFlagSet(FlagZero))
	}},
	0xC5: {"PUSH BC", 1, 4, func(c *CPU) uint8 {
		c.pushRegister(c.BC)
		return 4
	}},
	0xC7: {"RST 00H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x00)
	}},
	0xC8: {"RET Z", 1, 2, func(c *CPU) uint8 {
		return c.retConditional(c.isFlagSet(FlagZero))
	}},
	0xC9: {"RET", 1, 4, func(c *CPU) uint8 {
		return c.ret()
	}},
	0xCA: {"JP Z, a16", 3, 3, func(c *CPU) uint8 {
		return c.jumpAbsolute(c.isFlagSet(FlagZero))
	}},
	0xCC: {"CALL Z, a16", 3, 3, func(c *CPU) uint8 {
		return c.call(c.isFlagSet(FlagZero))
	}},
	0xCD: {"CALL a16", 3, 6, func(c *CPU) uint8 {
		return c.call(true)
	}},
	0xCF: {"RST 08H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x08)
	}},
	0xD0: {"RET NC", 1, 2, func(c *CPU) uint8 {
		return c.retConditional(!c.isFlagSet(FlagCarry))
	}},
	0xD1: {"POP DE", 1, 3, func(c *CPU) uint8 {
		c.popRegister(c.DE)
		return 3
	}},
	0xD2: {"JP NC, a16", 3, 3, func(c *CPU) uint8 {
		return c.jumpAbsolute(!c.isFlagSet(FlagCarry))
	}},
	0xD4: {"CALL NC, a16", 3, 3, func(c *CPU) uint8 {
		return c.call(!c.isFlagSet(FlagCarry))
	}},
	0xD5: {"PUSH DE", 1, 4, func(c *CPU) uint8 {
		c.pushRegister(c.DE)
		return 4
	}},
	0xD7: {"RST 10H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x10)
	}},
	0xD8: {"RET C", 1, 2, func(c *CPU) uint8 {
		return c.retConditional(c.isFlagSet(FlagCarry))
	}},
	0xD9: {"RETI", 1, 4, func(c *CPU) uint8 {
		c.IRQ.IME = true
		return c.ret()
	}},
	0xDA: {"JP C, a16", 3, 3, func(c *CPU) uint8 {
		return c.jumpAbsolute(c.isFlagSet(FlagCarry))
	}},
	0xDC: {"CALL C, a16", 3, 3, func(c *CPU) uint8 {
		return c.call(c.isFlagSet(FlagCarry))
	}},
	0xDF: {"RST 18H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x18)
	}},
	0xE0: {"LDH (a8), A", 2, 3, func(c *CPU) uint8 {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
		return 3
	}},
	0xE1: {"POP HL", 1, 3, func(c *CPU) uint8 {
		c.popRegister(c.HL)
		return 3
	}},
	0xE2: {"LD (C), A", 1, 2, func(c *CPU) uint8 {
		c.writeByte(0xFF00+uint16(c.C), c.A)
		return 2
	}},
	0xE5: {"PUSH HL", 1, 4, func(c *CPU) uint8 {
		c.pushRegister(c.HL)
		return 4
	}},
	0xE7: {"RST 20H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x20)
	}},
	0xE8: {"ADD SP, r8", 2, 4, func(c *CPU) uint8 {
		c.SP = c.addSPSigned()
		return 4
	}},
	0xE9: {"JP HL", 1, 1, func(c *CPU) uint8 {
		c.PC = c.HL.Uint16()
		return 1
	}},
	0xEA: {"LD (a16), A", 3, 4, func(c *CPU) uint8 {
		c.writeByte(c.readOperand16(), c.A)
		return 4
	}},
	0xEF: {"RST 28H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x28)
	}},
	0xF0: {"LDH A, (a8)", 2, 3, func(c *CPU) uint8 {
		c.A = c.readByte(0xFF00 + uint16(c.readOperand()))
		return 3
	}},
	0xF1: {"POP AF", 1, 3, func(c *CPU) uint8 {
		c.popRegister(c.AF)
		return 3
	}},
	0xF2: {"LD A, (C)", 1, 2, func(c *CPU) uint8 {
		c.A = c.readByte(0xFF00 + uint16(c.C))
		return 2
	}},
	0xF3: {"DI", 1, 1, func(c *CPU) uint8 {
		c.IRQ.IME = false
		c.IRQ.Enabling = false
		return 1
	}},
	0xF5: {"PUSH AF", 1, 4, func(c *CPU) uint8 {
		c.pushRegister(c.AF)
		return 4
	}},
	0xF7: {"RST 30H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x30)
	}},
	0xF8: {"LD HL, SP+r8", 2, 3, func(c *CPU) uint8 {
		c.HL.SetUint16(c.addSPSigned())
		return 3
	}},
	0xF9: {"LD SP, HL", 1, 2, func(c *CPU) uint8 {
		c.SP = c.HL.Uint16()
		return 2
	}},
	0xFA: {"LD A, (a16)", 3, 4, func(c *CPU) uint8 {
		c.A = c.readByte(c.readOperand16())
		return 4
	}},
	0xFB: {"EI", 1, 1, func(c *CPU) uint8 {
		c.IRQ.Enabling = true
		return 1
	}},
	0xFF: {"RST 38H", 1, 4, func(c *CPU) uint8 {
		return c.rst(0x38)
	}},
}

func init() {
	generateLoadInstructions()
	generateALUInstructions()
}

// generateLoadInstructions fills the LD r, r' block (0x40 - 0x7F).
// 0x76, which would otherwise encode LD (HL), (HL), is HALT and is
// defined in the table literal.
func generateLoadInstructions() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue // HALT
			}

			opcode := 0x40 | dst<<3 | src
			name := fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src])

			switch {
			case dst == 6:
				s := src
				DefineInstruction(opcode, name, 1, 2, func(c *CPU) uint8 {
					c.loadRegisterToMemory(*c.registerIndex(s), c.HL.Uint16())
					return 2
				})
			case src == 6:
				d := dst
				DefineInstruction(opcode, name, 1, 2, func(c *CPU) uint8 {
					c.loadMemoryToRegister(c.registerIndex(d), c.HL.Uint16())
					return 2
				})
			default:
				d, s := dst, src
				DefineInstruction(opcode, name, 1, 1, func(c *CPU) uint8 {
					*c.registerIndex(d) = *c.registerIndex(s)
					return 1
				})
			}
		}
	}
}

// aluOps indexes the 8 ALU instruction groups of the 0x80 - 0xBF block
// in encoding order.
var aluOps = [8]struct {
	format string
	op     func(*CPU, uint8)
}{
	{"ADD A, %s", (*CPU).addN},
	{"ADC A, %s", (*CPU).addNCarry},
	{"SUB %s", (*CPU).subtractN},
	{"SBC A, %s", (*CPU).subtractNCarry},
	{"AND %s", (*CPU).andN},
	{"XOR %s", (*CPU).xorN},
	{"OR %s", (*CPU).orN},
	{"CP %s", (*CPU).compareN},
}

// generateALUInstructions fills the ALU block (0x80 - 0xBF) along with
// the d8 immediate forms (0xC6, 0xCE, ... 0xFE).
func generateALUInstructions() {
	for group := uint8(0); group < 8; group++ {
		alu := aluOps[group]

		for src := uint8(0); src < 8; src++ {
			opcode := 0x80 | group<<3 | src
			name := fmt.Sprintf(alu.format, registerNames[src])

			if src == 6 {
				op := alu.op
				DefineInstruction(opcode, name, 1, 2, func(c *CPU) uint8 {
					op(c, c.readByte(c.HL.Uint16()))
					return 2
				})
				continue
			}

			s, op := src, alu.op
			DefineInstruction(opcode, name, 1, 1, func(c *CPU) uint8 {
				op(c, *c.registerIndex(s))
				return 1
			})
		}

		op := alu.op
		DefineInstruction(0xC6|group<<3, fmt.Sprintf(alu.format, "d8"), 2, 2, func(c *CPU) uint8 {
			op(c, c.readOperand())
			return 2
		})
	}
}
