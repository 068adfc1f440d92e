package cpu

import "testing"

func TestFlags_SetClear(t *testing.T) {
	c := newTestCPU(t)

	for _, flag := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
		c.setFlag(flag)
		if !c.isFlagSet(flag) {
			t.Errorf("expected flag %d to be set", flag)
		}
		c.clearFlag(flag)
		if c.isFlagSet(flag) {
			t.Errorf("expected flag %d to be cleared", flag)
		}
	}
}

func TestFlags_LowNibbleAlwaysZero(t *testing.T) {
	c := newTestCPU(t)

	c.F = 0xFF // corrupt F directly
	c.setFlag(FlagZero)
	if c.F&0x0F != 0 {
		t.Errorf("expected setFlag to mask the low nibble, got F=%02X", c.F)
	}

	c.F = 0xFF
	c.clearFlag(FlagZero)
	if c.F&0x0F != 0 {
		t.Errorf("expected clearFlag to mask the low nibble, got F=%02X", c.F)
	}
}

func TestFlags_SetFlags(t *testing.T) {
	c := newTestCPU(t)

	c.setFlags(true, false, true, false)
	if c.F != 0xA0 {
		t.Errorf("expected F=A0, got %02X", c.F)
	}
	c.setFlags(false, true, false, true)
	if c.F != 0x50 {
		t.Errorf("expected F=50, got %02X", c.F)
	}
	c.setFlags(false, false, false, false)
	if c.F != 0x00 {
		t.Errorf("expected F=00, got %02X", c.F)
	}
}

func TestFlags_ZeroHelper(t *testing.T) {
	c := newTestCPU(t)

	c.shouldZeroFlag(0)
	if !c.isFlagSet(FlagZero) {
		t.Error("expected Z to be set for 0")
	}
	c.shouldZeroFlag(1)
	if c.isFlagSet(FlagZero) {
		t.Error("expected Z to be cleared for 1")
	}
}
