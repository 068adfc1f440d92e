package interrupts

import (
	"testing"

	"github.com/thelolagemann/go-dmg/internal/types"
)

func TestService_Pending(t *testing.T) {
	s := NewService()

	s.Request(TimerFlag)
	if s.Pending() {
		t.Error("expected no pending interrupt while timer is disabled")
	}

	s.Enable = 1 << TimerFlag
	if !s.Pending() {
		t.Error("expected pending interrupt once timer is enabled")
	}
}

func TestService_VectorPriority(t *testing.T) {
	s := NewService()
	s.Enable = 0x1F
	s.Request(JoypadFlag)
	s.Request(VBlankFlag)
	s.Request(SerialFlag)

	if v := s.Vector(); v != VBlank {
		t.Errorf("expected VBlank vector 0x%04X, got 0x%04X", VBlank, v)
	}
	if v := s.Vector(); v != Serial {
		t.Errorf("expected Serial vector 0x%04X, got 0x%04X", Serial, v)
	}
	if v := s.Vector(); v != Joypad {
		t.Errorf("expected Joypad vector 0x%04X, got 0x%04X", Joypad, v)
	}
	if v := s.Vector(); v != 0 {
		t.Errorf("expected no vector, got 0x%04X", v)
	}
}

func TestService_Registers(t *testing.T) {
	s := NewService()

	s.Write(types.IF, 0xFF)
	if s.Flag != 0x1F {
		t.Errorf("expected IF write to be masked to 0x1F, got 0x%02X", s.Flag)
	}
	if got := s.Read(types.IF); got != 0xFF {
		t.Errorf("expected IF to read with upper bits set, got 0x%02X", got)
	}

	s.Write(types.IE, 0xAB)
	if got := s.Read(types.IE); got != 0xAB {
		t.Errorf("expected IE to read back 0xAB, got 0x%02X", got)
	}
}

func TestService_Reset(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	s.Enable = 0xFF
	s.IME = true
	s.Enabling = true

	s.Reset()

	if s.Flag != 0 || s.Enable != 0 || s.IME || s.Enabling {
		t.Error("expected reset to return the service to its power on state")
	}
}
