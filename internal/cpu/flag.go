package cpu

import "github.com/thelolagemann/go-dmg/pkg/utils"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = utils.Reset(c.F, flag) & 0xF0
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F = utils.Set(c.F, flag) & 0xF0 // the lower 4 bits of the F register are always 0
}

// setFlags rebuilds the F register from the given flag values.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = 0
	if zero {
		c.F = utils.Set(c.F, FlagZero)
	}
	if subtract {
		c.F = utils.Set(c.F, FlagSubtract)
	}
	if halfCarry {
		c.F = utils.Set(c.F, FlagHalfCarry)
	}
	if carry {
		c.F = utils.Set(c.F, FlagCarry)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return utils.Test(c.F, flag)
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if none of the given flags are set.
func (c *CPU) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if c.isFlagSet(flag) {
			return false
		}
	}
	return true
}
