package cpu

import "testing"

// reservedOpcodes are the primary opcodes with no operation on the DMG.
var reservedOpcodes = []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func TestInstruction_TableCoverage(t *testing.T) {
	for _, opcode := range reservedOpcodes {
		if InstructionSet[opcode].Defined() {
			t.Errorf("expected opcode %02X to be undefined", opcode)
		}
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		if opcode == 0xCB {
			continue // dispatched to the CB table before lookup
		}
		reserved := false
		for _, r := range reservedOpcodes {
			if opcode == r {
				reserved = true
			}
		}
		if reserved {
			continue
		}
		if !InstructionSet[opcode].Defined() {
			t.Errorf("expected opcode %02X to be defined", opcode)
		}
		if InstructionSet[opcode].Name() == "" {
			t.Errorf("expected opcode %02X to be named", opcode)
		}
	}

	for i := 0; i < 256; i++ {
		if !InstructionSetCB[uint8(i)].Defined() {
			t.Errorf("expected CB opcode %02X to be defined", i)
		}
	}
}

func TestInstruction_Timing(t *testing.T) {
	// M-cycles per opcode with no branch taken; 0 marks an undefined
	// opcode
	timings := []uint8{
		1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
		1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
		2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
		3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
		3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
	}
	for i, timing := range timings {
		if timing == 0 {
			continue
		}
		if got := InstructionSet[uint8(i)].Cycles(); got != timing {
			t.Errorf("%s (%02X): expected %d cycles, got %d", InstructionSet[uint8(i)].Name(), i, timing, got)
		}
	}

	// CB costs include the prefix fetch: 2 for registers, 4 for (HL),
	// except BIT n, (HL) at 3
	cbTimings := []uint8{
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
		2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	}
	for i, timing := range cbTimings {
		if got := InstructionSetCB[uint8(i)].Cycles(); got != timing {
			t.Errorf("%s (CB %02X): expected %d cycles, got %d", InstructionSetCB[uint8(i)].Name(), i, timing, got)
		}
	}
}

func TestInstruction_Lengths(t *testing.T) {
	lengths := map[uint8]uint8{
		0x00: 1, // NOP
		0x01: 3, // LD BC, d16
		0x06: 2, // LD B, d8
		0x18: 2, // JR r8
		0x36: 2, // LD (HL), d8
		0x76: 1, // HALT
		0xC3: 3, // JP a16
		0xCD: 3, // CALL a16
		0xE0: 2, // LDH (a8), A
		0xEA: 3, // LD (a16), A
		0xFE: 2, // CP d8
	}
	for opcode, length := range lengths {
		if got := InstructionSet[opcode].Length(); got != length {
			t.Errorf("%s: expected length %d, got %d", InstructionSet[opcode].Name(), length, got)
		}
	}

	for i := 0; i < 256; i++ {
		if got := InstructionSetCB[uint8(i)].Length(); got != 2 {
			t.Errorf("expected every CB instruction to have length 2, got %d for %02X", got, i)
		}
	}
}

func TestInstruction_GeneratedNames(t *testing.T) {
	names := map[uint8]string{
		0x41: "LD B, C",
		0x66: "LD H, (HL)",
		0x77: "LD (HL), A",
		0x80: "ADD A, B",
		0x96: "SUB (HL)",
		0xBF: "CP A",
		0xC6: "ADD A, d8",
		0xFE: "CP d8",
	}
	for opcode, name := range names {
		if got := InstructionSet[opcode].Name(); got != name {
			t.Errorf("expected %02X to be named %q, got %q", opcode, name, got)
		}
	}

	cbNames := map[uint8]string{
		0x00: "RLC B",
		0x1E: "RR (HL)",
		0x37: "SWAP A",
		0x46: "BIT 0, (HL)",
		0x7F: "BIT 7, A",
		0x87: "RES 0, A",
		0xFE: "SET 7, (HL)",
	}
	for opcode, name := range cbNames {
		if got := InstructionSetCB[opcode].Name(); got != name {
			t.Errorf("expected CB %02X to be named %q, got %q", opcode, name, got)
		}
	}
}
