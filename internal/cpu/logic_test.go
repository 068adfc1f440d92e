package cpu

import "testing"

func TestInstruction_And(t *testing.T) {
	// 0xA0 - AND B
	testInstruction(t, "AND B", 0xA0, func(t *testing.T, instr Instruction) {
		cpu.A = 0b10101010
		cpu.B = 0b11010101

		instr.fn(cpu)

		if cpu.A != 0x80 {
			t.Errorf("expected A=80, got %02X", cpu.A)
		}
		if !cpu.isFlagSet(FlagHalfCarry) || cpu.isFlagSet(FlagZero) || cpu.isFlagSet(FlagSubtract) || cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected only H set, got F=%02X", cpu.F)
		}

		cpu.A = 0b01010101
		cpu.B = 0b10101010
		instr.fn(cpu)

		if !cpu.isFlagSet(FlagZero) {
			t.Error("expected Z to be set")
		}
	})
}

func TestInstruction_Or(t *testing.T) {
	// 0xB0 - OR B
	testInstruction(t, "OR B", 0xB0, func(t *testing.T, instr Instruction) {
		cpu.A = 0b10101010
		cpu.B = 0b11010101

		instr.fn(cpu)

		if cpu.A != 0xFF {
			t.Errorf("expected A=FF, got %02X", cpu.A)
		}
		if cpu.F != 0 {
			t.Errorf("expected all flags clear, got F=%02X", cpu.F)
		}

		cpu.A = 0
		cpu.B = 0
		instr.fn(cpu)

		if !cpu.isFlagSet(FlagZero) {
			t.Error("expected Z to be set")
		}
	})
}

func TestInstruction_Xor(t *testing.T) {
	// 0xA8 - XOR B
	testInstruction(t, "XOR B", 0xA8, func(t *testing.T, instr Instruction) {
		cpu.A = 0b10101010
		cpu.B = 0b11010101

		instr.fn(cpu)

		if cpu.A != 0x7F {
			t.Errorf("expected A=7F, got %02X", cpu.A)
		}
		if cpu.F != 0 {
			t.Errorf("expected all flags clear, got F=%02X", cpu.F)
		}
	})
}

func TestInstruction_Compare(t *testing.T) {
	// 0xB8 - CP B: a subtract that discards the result
	testInstruction(t, "CP B", 0xB8, func(t *testing.T, instr Instruction) {
		cpu.A = 0x3C
		cpu.B = 0x3C

		instr.fn(cpu)

		if cpu.A != 0x3C {
			t.Errorf("expected A to be untouched, got %02X", cpu.A)
		}
		if !cpu.isFlagsSet(FlagZero, FlagSubtract) {
			t.Errorf("expected Z and N set, got F=%02X", cpu.F)
		}

		cpu.B = 0x40
		instr.fn(cpu)

		if !cpu.isFlagSet(FlagCarry) || cpu.isFlagSet(FlagZero) {
			t.Errorf("expected C set and Z clear, got F=%02X", cpu.F)
		}

		cpu.B = 0x2F
		instr.fn(cpu)

		if !cpu.isFlagSet(FlagHalfCarry) || cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected H set and C clear, got F=%02X", cpu.F)
		}
	})
}

func TestInstruction_LogicImmediates(t *testing.T) {
	// 0xE6 - AND d8
	testInstruction(t, "AND d8", 0xE6, func(t *testing.T, instr Instruction) {
		cpu.A = 0xF0
		cpu.writeByte(cpu.PC, 0x0F)

		instr.fn(cpu)

		if cpu.A != 0x00 || !cpu.isFlagsSet(FlagZero, FlagHalfCarry) {
			t.Errorf("expected A=00 with Z and H set, got A=%02X F=%02X", cpu.A, cpu.F)
		}
	})
	// 0xFE - CP d8
	testInstruction(t, "CP d8", 0xFE, func(t *testing.T, instr Instruction) {
		cpu.A = 0x42
		cpu.writeByte(cpu.PC, 0x42)

		instr.fn(cpu)

		if !cpu.isFlagsSet(FlagZero, FlagSubtract) {
			t.Errorf("expected Z and N set, got F=%02X", cpu.F)
		}
	})
}
