// Package mmu provides the memory management unit of the DMG. The MMU
// maps the 16-bit address space onto the boot ROM overlay, the
// cartridge ROM, VRAM, external RAM, working RAM and its echo, OAM, the
// I/O register file, zero page RAM and the interrupt enable register,
// exposing a uniform byte and word interface to the CPU.
package mmu

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/go-dmg/internal/boot"
	"github.com/thelolagemann/go-dmg/internal/interrupts"
	"github.com/thelolagemann/go-dmg/internal/ram"
	"github.com/thelolagemann/go-dmg/internal/types"
	"github.com/thelolagemann/go-dmg/pkg/log"
)

// ROMSize is the size of an MBC0 cartridge image: two 16 KiB banks with
// no mapper.
const ROMSize = 0x8000

// IOBus is the interface an external collaborator implements to serve a
// memory region itself. The MMU routes only VRAM and OAM through it (see
// Video); the I/O registers at 0xFF00-0xFF7F are an internal buffer.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// UnmappedRegionError is raised when an access lands in a region with
// no backing store.
type UnmappedRegionError struct {
	Address uint16
}

func (e UnmappedRegionError) Error() string {
	return fmt.Sprintf("mmu: unmapped region at 0x%04X", e.Address)
}

// InvalidROMSizeError is returned by LoadROM when the image is not
// exactly ROMSize bytes.
type InvalidROMSizeError struct {
	Size int
}

func (e InvalidROMSizeError) Error() string {
	return fmt.Sprintf("mmu: invalid ROM size: %d bytes (want %d)", e.Size, ROMSize)
}

// MMU represents the memory management unit of the DMG. It owns every
// region buffer exclusively; the CPU and any external collaborators
// borrow access through Read and Write.
type MMU struct {
	bootROM      *boot.ROM
	bootFinished bool

	// (0x0000-0x7FFF) - ROM bank 0 + bank 1, MBC0
	rom [ROMSize]uint8
	// (0x8000-0x9FFF) - VRAM
	vRAM *ram.Ram
	// (0xA000-0xBFFF) - external RAM
	eRAM *ram.Ram
	// (0xC000-0xDFFF) - working RAM, echoed at 0xE000-0xFDFF
	wRAM *ram.Ram
	// (0xFE00-0xFE9F) - sprite attribute table (OAM)
	oam *ram.Ram
	// (0xFF00-0xFF7F) - I/O register file, owned by the host
	io *ram.Ram
	// (0xFF80-0xFFFE) - zero page RAM
	zRAM *ram.Ram

	// IRQ serves the IF (0xFF0F) and IE (0xFFFF) registers.
	IRQ *interrupts.Service

	// Video is an optional collaborator for VRAM and OAM; when absent
	// both regions are served from internal buffers so the CPU remains
	// testable in isolation.
	Video IOBus

	Log log.Logger
}

// NewMMU returns a new MMU. The boot ROM may be nil, in which case the
// overlay starts unmapped and execution is expected to begin at 0x0100.
func NewMMU(bootROM *boot.ROM, irq *interrupts.Service) *MMU {
	return &MMU{
		bootROM:      bootROM,
		bootFinished: bootROM == nil,
		vRAM:         ram.NewRAM(0x2000),
		eRAM:         ram.NewRAM(0x2000),
		wRAM:         ram.NewRAM(0x2000),
		oam:          ram.NewRAM(0xA0),
		io:           ram.NewRAM(0x80),
		zRAM:         ram.NewRAM(0x7F),
		IRQ:          irq,
		Log:          log.NewNullLogger(),
	}
}

// LoadROM copies the given MBC0 image into the ROM banks.
func (m *MMU) LoadROM(data []byte) error {
	if len(data) != ROMSize {
		return InvalidROMSizeError{Size: len(data)}
	}
	copy(m.rom[:], data)
	return nil
}

// IsBootROMEnabled reports whether the boot ROM overlay is currently
// mapped at 0x0000 - 0x00FF.
func (m *MMU) IsBootROMEnabled() bool {
	return !m.bootFinished
}

// BootROM returns the boot ROM image, or nil when none was supplied.
func (m *MMU) BootROM() *boot.ROM {
	return m.bootROM
}

// Reset remaps the boot ROM overlay if an image was supplied. RAM
// contents are left untouched.
func (m *MMU) Reset() {
	m.bootFinished = m.bootROM == nil
}

// Read returns the value at the given address, dispatching on the high
// nibble of the address to one of the region handlers.
func (m *MMU) Read(address uint16) uint8 {
	switch address >> 12 {
	// BOOT ROM / ROM bank 0 (0x0000-0x3FFF)
	case 0x0:
		if !m.bootFinished && address < 0x0100 {
			return m.bootROM.Read(address)
		}
		return m.rom[address]
	case 0x1, 0x2, 0x3:
		return m.rom[address]
	// ROM bank 1 (0x4000-0x7FFF)
	case 0x4, 0x5, 0x6, 0x7:
		return m.rom[address]
	// VRAM (0x8000-0x9FFF)
	case 0x8, 0x9:
		if m.Video != nil {
			return m.Video.Read(address)
		}
		return m.vRAM.Read(address & 0x1FFF)
	// External RAM (0xA000-0xBFFF)
	case 0xA, 0xB:
		return m.eRAM.Read(address & 0x1FFF)
	// Working RAM (0xC000-0xDFFF)
	case 0xC, 0xD:
		return m.wRAM.Read(address & 0x1FFF)
	// Working RAM echo (0xE000-0xEFFF)
	case 0xE:
		return m.wRAM.Read(address & 0x1FFF)
	case 0xF:
		return m.readHigh(address)
	}
	panic(UnmappedRegionError{Address: address})
}

// readHigh handles the 0xF000-0xFFFF sub dispatch: the tail of the
// working RAM echo, OAM, the unusable region, I/O, zero page and IE.
func (m *MMU) readHigh(address uint16) uint8 {
	switch {
	// Working RAM echo (0xF000-0xFDFF)
	case address <= 0xFDFF:
		return m.wRAM.Read(address & 0x1FFF)
	// OAM (0xFE00-0xFE9F)
	case address <= 0xFE9F:
		if m.Video != nil {
			return m.Video.Read(address)
		}
		return m.oam.Read(address - 0xFE00)
	// Unusable memory (0xFEA0-0xFEFF)
	case address <= 0xFEFF:
		return 0x00
	case address == types.IF:
		return m.IRQ.Read(address)
	// I/O (0xFF00-0xFF7F)
	case address <= 0xFF7F:
		return m.io.Read(address - 0xFF00)
	// Zero page RAM (0xFF80-0xFFFE)
	case address <= 0xFFFE:
		return m.zRAM.Read(address - 0xFF80)
	// IE (0xFFFF)
	default:
		return m.IRQ.Read(address)
	}
}

// Write writes the given value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch address >> 12 {
	// ROM (0x0000-0x7FFF): with no mapper to intercept them, writes
	// land in the ROM array
	case 0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7:
		m.rom[address] = value
	// VRAM (0x8000-0x9FFF)
	case 0x8, 0x9:
		if m.Video != nil {
			m.Video.Write(address, value)
			return
		}
		m.vRAM.Write(address&0x1FFF, value)
	// External RAM (0xA000-0xBFFF)
	case 0xA, 0xB:
		m.eRAM.Write(address&0x1FFF, value)
	// Working RAM (0xC000-0xDFFF)
	case 0xC, 0xD:
		m.wRAM.Write(address&0x1FFF, value)
	// Working RAM echo (0xE000-0xEFFF)
	case 0xE:
		m.wRAM.Write(address&0x1FFF, value)
	case 0xF:
		m.writeHigh(address, value)
	default:
		panic(UnmappedRegionError{Address: address})
	}
}

func (m *MMU) writeHigh(address uint16, value uint8) {
	switch {
	// Working RAM echo (0xF000-0xFDFF)
	case address <= 0xFDFF:
		m.wRAM.Write(address&0x1FFF, value)
	// OAM (0xFE00-0xFE9F)
	case address <= 0xFE9F:
		if m.Video != nil {
			m.Video.Write(address, value)
			return
		}
		m.oam.Write(address-0xFE00, value)
	// Unusable memory (0xFEA0-0xFEFF)
	case address <= 0xFEFF:
		// writes are dropped
	case address == types.IF:
		m.IRQ.Write(address, value)
	// I/O (0xFF00-0xFF7F)
	case address <= 0xFF7F:
		m.io.Write(address-0xFF00, value)
		if address == types.BDIS && !m.bootFinished {
			m.bootFinished = true
			m.Log.Infof("mmu: boot rom unmapped")
		}
	// Zero page RAM (0xFF80-0xFFFE)
	case address <= 0xFFFE:
		m.zRAM.Write(address-0xFF80, value)
	// IE (0xFFFF)
	default:
		m.IRQ.Write(address, value)
	}
}

// Read16 returns the little endian word at the given address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes the given word to the given address, low byte first.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value&0xFF))
	m.Write(address+1, uint8(value>>8))
}

// Checksum returns a 64-bit hash over every region the MMU owns. Two
// MMUs with identical memory contents hash identically, which the host
// uses for determinism checks.
func (m *MMU) Checksum() uint64 {
	h := xxhash.New()
	_, _ = h.Write(m.rom[:])
	_, _ = h.Write(m.vRAM.Bytes())
	_, _ = h.Write(m.eRAM.Bytes())
	_, _ = h.Write(m.wRAM.Bytes())
	_, _ = h.Write(m.oam.Bytes())
	_, _ = h.Write(m.io.Bytes())
	_, _ = h.Write(m.zRAM.Bytes())
	_, _ = h.Write([]byte{m.IRQ.Flag, m.IRQ.Enable})
	return h.Sum64()
}
