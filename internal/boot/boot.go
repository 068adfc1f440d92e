// Package boot provides the 256 byte boot ROM that is overlaid at
// 0x0000 - 0x00FF until the program unmaps it. When the Game Boy first
// powers on, the boot ROM initializes the hardware, sets the stack
// pointer and scrolls the Nintendo logo, before unmapping itself by
// writing to the boot ROM disable register and handing control to the
// cartridge at 0x0100.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Size is the length of a DMG family boot ROM image.
const Size = 256

// ROM represents a boot ROM image.
type ROM struct {
	raw      [Size]byte
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM wraps the given image in a ROM, validating its length and
// calculating its MD5 checksum so that known images can be identified.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d", len(b))
	}

	bootChecksum := md5.Sum(b)

	rom := &ROM{
		checksum: hex.EncodeToString(bootChecksum[:]),
	}
	copy(rom.raw[:], b)

	return rom, nil
}

// Read returns the byte at the given address.
func (b *ROM) Read(addr uint16) byte {
	return b.raw[addr]
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the hardware model the boot rom belongs to, determined
// by its checksum.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums maps the MD5 checksum of a boot rom to the
// model it shipped in.
var knownBootROMChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}

const (
	// DMG0 is the checksum of the DMG early boot ROM, a variant that
	// was found in very early DMG units and only ever sold in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG boot rom, which is the most
	// common boot ROM found in the original DMG-01 models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB is the checksum of the MGB boot ROM, which differs only by a
	// single byte from the DMG boot ROM, loading the value 0xFF into
	// the A register, rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB is the checksum of the SGB boot ROM, which sends the
	// cartridge header to the SNES rather than scrolling a logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 is the checksum of the SGB2 boot ROM, differing from the
	// SGB in the same way the MGB differs from the DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
