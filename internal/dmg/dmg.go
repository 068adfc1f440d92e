// Package dmg assembles the CPU, MMU and interrupt service into a
// machine the host can drive.
package dmg

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/go-dmg/internal/boot"
	"github.com/thelolagemann/go-dmg/internal/cpu"
	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/mmu"
	"github.com/thelolagemann/go-dmg/pkg/log"
)

// DMG represents an assembled machine. It is the main entry point for
// the host.
type DMG struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	Interrupts *interrupts.Service

	log.Logger
}

// Opt configures a DMG during construction.
type Opt func(*DMG)

// WithLogger routes the machine's logging to the given logger.
func WithLogger(l log.Logger) Opt {
	return func(d *DMG) {
		d.Logger = l
		d.MMU.Log = l
	}
}

// New assembles a machine around the given MBC0 ROM image. When a boot
// ROM is supplied the CPU starts at 0x0000 with the overlay mapped;
// otherwise it starts at 0x0100 in the post boot state.
func New(rom []byte, bootROM *boot.ROM, opts ...Opt) (*DMG, error) {
	irq := interrupts.NewService()
	m := mmu.NewMMU(bootROM, irq)
	if err := m.LoadROM(rom); err != nil {
		return nil, err
	}

	d := &DMG{
		CPU:        cpu.NewCPU(m, irq),
		MMU:        m,
		Interrupts: irq,
		Logger:     log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(d)
	}

	if bootROM != nil {
		d.Infof("dmg: booting with %s boot rom", bootROM.Model())
	}

	return d, nil
}

// Run steps the CPU for the given number of M-cycles. At least one
// instruction is executed.
func (d *DMG) Run(cycles uint64) error {
	return d.CPU.Run(d.CPU.Clock() + cycles)
}

// Checksum returns a 64-bit hash over the register file, the clock and
// every memory region. Two machines that executed the same program
// hash identically; the host uses this for determinism checks.
func (d *DMG) Checksum() uint64 {
	c := d.CPU

	var state [20]byte
	state[0] = c.A
	state[1] = c.F
	state[2] = c.B
	state[3] = c.C
	state[4] = c.D
	state[5] = c.E
	state[6] = c.H
	state[7] = c.L
	binary.LittleEndian.PutUint16(state[8:], c.PC)
	binary.LittleEndian.PutUint16(state[10:], c.SP)
	binary.LittleEndian.PutUint64(state[12:], c.Clock())

	h := xxhash.New()
	_, _ = h.Write(state[:])
	binary.LittleEndian.PutUint64(state[:8], d.MMU.Checksum())
	_, _ = h.Write(state[:8])
	return h.Sum64()
}
