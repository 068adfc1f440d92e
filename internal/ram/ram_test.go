package ram

import "testing"

func TestRAM_ReadWrite(t *testing.T) {
	r := NewRAM(0x2000)

	for _, addr := range []uint16{0x0000, 0x0001, 0x1000, 0x1FFF} {
		r.Write(addr, 0x42)
		if r.Read(addr) != 0x42 {
			t.Errorf("expected 0x42 at %04X, got 0x%02X", addr, r.Read(addr))
		}
	}
}

func TestRAM_ZeroFilled(t *testing.T) {
	r := NewRAM(0x80)

	for addr := uint16(0); addr < 0x80; addr++ {
		if r.Read(addr) != 0 {
			t.Fatalf("expected fresh RAM to read 0 at %04X, got 0x%02X", addr, r.Read(addr))
		}
	}
}

func TestRAM_OutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected out of bounds read to panic")
		}
	}()

	NewRAM(0x10).Read(0x10)
}
