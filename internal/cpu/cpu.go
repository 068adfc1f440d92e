// Package cpu implements an interpreter for the Sharp LR35902, the
// 8-bit CPU of the DMG. Instructions are fetched through the MMU,
// decoded against two 256 entry tables (primary and CB prefixed) and
// executed one at a time; each executed instruction reports the number
// of M-cycles it consumed, which the CPU accumulates into a monotonic
// clock.
package cpu

import (
	"errors"

	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/mmu"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	// One M-cycle equals 4 T-cycles.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal fetches and executes instructions.
	ModeNormal mode = iota
	// ModeHalt advances the clock without dispatching instructions
	// until an interrupt is pending.
	ModeHalt
	// ModeStop suspends dispatch until the host calls Resume.
	ModeStop
)

// CPU represents the DMG CPU. It is responsible for executing
// instructions and accounting their cost.
type CPU struct {
	// PC is the program counter, it points to the next instruction to
	// be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit
	// register pairs.
	Registers

	// clock counts the M-cycles executed since reset.
	clock uint64

	mmu *mmu.MMU
	IRQ *interrupts.Service

	mode mode
}

// NewCPU creates a new CPU instance with the given MMU and interrupt
// service. The CPU starts in its reset state.
func NewCPU(m *mmu.MMU, irq *interrupts.Service) *CPU {
	c := &CPU{
		mmu: m,
		IRQ: irq,
	}

	// create register pairs
	c.BC = newRegisterPair(&c.B, &c.C)
	c.DE = newRegisterPair(&c.D, &c.E)
	c.HL = newRegisterPair(&c.H, &c.L)
	c.AF = newRegisterPair(&c.A, &c.F)
	c.AF.mask = 0xFFF0 // bits 3-0 of F always read as zero

	c.Reset()
	return c
}

// Clock returns the number of M-cycles executed since reset.
func (c *CPU) Clock() uint64 {
	return c.clock
}

// Halted reports whether the CPU is suspended in HALT.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Stopped reports whether the CPU is suspended in STOP.
func (c *CPU) Stopped() bool {
	return c.mode == ModeStop
}

// Resume leaves STOP mode. It is the host's side of the STOP contract;
// the CPU never leaves STOP on its own.
func (c *CPU) Resume() {
	if c.mode == ModeStop {
		c.mode = ModeNormal
	}
}

// Reset returns the CPU to its power on state: registers and clock
// zeroed and the boot ROM overlay restored. When the MMU has no boot
// ROM the registers assume the state the boot ROM would have left
// behind and execution starts at 0x0100.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.F, c.H, c.L = 0, 0, 0, 0, 0, 0, 0, 0
	c.PC = 0
	c.SP = 0
	c.clock = 0
	c.mode = ModeNormal
	c.IRQ.Reset()
	c.mmu.Reset()

	if !c.mmu.IsBootROMEnabled() {
		c.AF.SetUint16(0x01B0)
		c.BC.SetUint16(0x0013)
		c.DE.SetUint16(0x00D8)
		c.HL.SetUint16(0x014D)
		c.PC = 0x0100
		c.SP = 0xFFFE
	}
}

// Step executes a single fetch/decode/execute cycle and returns the
// number of M-cycles consumed. In HALT and STOP the clock advances one
// M-cycle per step without dispatching an instruction. A failed step
// leaves the PC advanced past the fetched opcode byte only.
func (c *CPU) Step() (cycles uint8, err error) {
	defer func() {
		if r := recover(); r != nil {
			var unmapped mmu.UnmappedRegionError
			if e, ok := r.(error); ok && errors.As(e, &unmapped) {
				cycles, err = 0, e
				return
			}
			panic(r)
		}
	}()

	switch c.mode {
	case ModeHalt:
		cycles = 1
		if c.IRQ.Pending() {
			c.mode = ModeNormal
		}
	case ModeStop:
		cycles = 1
	default:
		enabling := c.IRQ.Enabling

		opcode := c.fetch()
		var instruction Instruction
		if opcode == 0xCB {
			cb := c.fetch()
			instruction = InstructionSetCB[cb]
			if !instruction.Defined() {
				return 0, UnimplementedOpcodeError{Opcode: cb, Prefixed: true}
			}
		} else {
			instruction = InstructionSet[opcode]
			if !instruction.Defined() {
				return 0, UnimplementedOpcodeError{Opcode: opcode}
			}
		}

		cycles = instruction.fn(c)

		// an EI that was pending before this instruction arms the IME
		// once the instruction has completed
		if enabling && c.IRQ.Enabling {
			c.IRQ.IME = true
			c.IRQ.Enabling = false
		}

		if c.IRQ.IME && c.IRQ.Pending() {
			cycles += c.serviceInterrupt()
		}
	}

	c.clock += uint64(cycles)
	return cycles, nil
}

// Run repeatedly steps the CPU until the clock meets or exceeds
// untilCycles. At least one instruction is executed even when the
// budget is already exhausted.
func (c *CPU) Run(untilCycles uint64) error {
	for {
		if _, err := c.Step(); err != nil {
			return err
		}
		if c.clock >= untilCycles {
			return nil
		}
	}
}

// serviceInterrupt pushes the PC onto the stack and jumps to the
// highest priority pending interrupt vector, disabling the IME.
func (c *CPU) serviceInterrupt() uint8 {
	c.SP--
	c.mmu.Write(c.SP, uint8(c.PC>>8))
	c.SP--
	c.mmu.Write(c.SP, uint8(c.PC&0xFF))

	c.PC = c.IRQ.Vector()
	c.IRQ.IME = false
	return 5
}

// fetch reads the byte at PC and advances PC past it.
func (c *CPU) fetch() uint8 {
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand byte from memory.
func (c *CPU) readOperand() uint8 {
	return c.fetch()
}

// readOperand16 reads the next two operand bytes as a little endian
// word.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.mmu.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, value uint8) {
	c.mmu.Write(addr, value)
}
