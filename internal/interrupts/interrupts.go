// Package interrupts provides the CPU visible state of the interrupt
// controller: the IF and IE registers, the master enable flag and the
// priority encoded dispatch vectors.
package interrupts

import (
	"github.com/thelolagemann/go-dmg/internal/types"
	"github.com/thelolagemann/go-dmg/pkg/utils"
)

// Address is an address of an interrupt vector.
type Address = uint16

const (
	// VBlank is the VBL interrupt vector.
	VBlank Address = 0x0040
	// LCD is the LCD interrupt vector.
	LCD Address = 0x0048
	// Timer is the Timer interrupt vector.
	Timer Address = 0x0050
	// Serial is the Serial interrupt vector.
	Serial Address = 0x0058
	// Joypad is the Joypad interrupt vector.
	Joypad Address = 0x0060
)

// Flag is an interrupt flag bit index.
type Flag = uint8

const (
	VBlankFlag Flag = 0
	LCDFlag    Flag = 1
	TimerFlag  Flag = 2
	SerialFlag Flag = 3
	JoypadFlag Flag = 4
)

// Service represents the current state of the interrupts.
type Service struct {
	// Flag is the interrupt request register. (0xFF0F)
	Flag uint8
	// Enable is the interrupt enable register. (0xFFFF)
	Enable uint8

	// IME is the interrupt master enable flag.
	IME bool

	// Enabling is set while an EI instruction is waiting for its one
	// instruction delay to elapse.
	Enabling bool
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Reset returns the service to its power on state.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
	s.IME = false
	s.Enabling = false
}

// Request requests an interrupt.
func (s *Service) Request(flag Flag) {
	s.Flag = utils.Set(s.Flag, flag)
}

// Clear clears the request for the given interrupt.
func (s *Service) Clear(flag Flag) {
	s.Flag = utils.Reset(s.Flag, flag)
}

// Pending reports whether an enabled interrupt is requested. The master
// enable flag is deliberately not consulted, as a pending interrupt
// wakes the CPU from HALT regardless of IME.
func (s *Service) Pending() bool {
	return s.Flag&s.Enable&0x1F != 0
}

// Vector returns the address of the highest priority pending interrupt
// and clears its request flag. It returns 0 when nothing is pending.
func (s *Service) Vector() Address {
	for i := uint8(0); i < 5; i++ {
		if utils.Test(s.Flag&s.Enable, i) {
			s.Flag = utils.Reset(s.Flag, i)
			return VBlank + Address(i)*8
		}
	}
	return 0
}

// Read returns the value of the register at the given address.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are unused and read as 1
	case types.IE:
		return s.Enable
	}
	return 0xFF
}

// Write writes the given value to the register at the given address.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & 0x1F
	case types.IE:
		s.Enable = value
	}
}
