// Package cpu implements a cycle-counted interpreter for the 6507, the
// 6502 variant used in the Atari 2600 with its bus truncated to 13 address
// lines. The instruction set and addressing mode timings are those of the
// original NMOS 6502; undocumented opcodes are not implemented.
package cpu

import "strings"

// Status is the 6502 processor status register. Unused is always true
// whenever the register is observed externally (pushed to the stack,
// inspected by a debugger): real silicon has no way to clear bit 5.
type Status struct {
	Negative         bool
	Overflow         bool
	Unused           bool
	Break            bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit masks for the status register byte layout.
const (
	flagCarry     = 0x01
	flagZero      = 0x02
	flagInterrupt = 0x04
	flagDecimal   = 0x08
	flagBreak     = 0x10
	flagUnused    = 0x20
	flagOverflow  = 0x40
	flagNegative  = 0x80
)

// Load sets every flag from the bits of v. Unused is forced true
// regardless of bit 5 of v, since the real register cannot hold it clear.
func (s *Status) Load(v uint8) {
	s.Carry = v&flagCarry != 0
	s.Zero = v&flagZero != 0
	s.InterruptDisable = v&flagInterrupt != 0
	s.Decimal = v&flagDecimal != 0
	s.Break = v&flagBreak != 0
	s.Unused = true
	s.Overflow = v&flagOverflow != 0
	s.Negative = v&flagNegative != 0
}

// Value packs the flags into a byte suitable for pushing to the stack.
// Unused is always set in the result.
func (s Status) Value() uint8 {
	var v uint8
	if s.Carry {
		v |= flagCarry
	}
	if s.Zero {
		v |= flagZero
	}
	if s.InterruptDisable {
		v |= flagInterrupt
	}
	if s.Decimal {
		v |= flagDecimal
	}
	if s.Break {
		v |= flagBreak
	}
	v |= flagUnused
	if s.Overflow {
		v |= flagOverflow
	}
	if s.Negative {
		v |= flagNegative
	}
	return v
}

// String renders the flags as NV-BDIZC, upper case for set, lower for clear.
func (s Status) String() string {
	var b strings.Builder
	write := func(set bool, c byte) {
		if set {
			b.WriteByte(c - 32)
		} else {
			b.WriteByte(c)
		}
	}
	write(s.Negative, 'n')
	write(s.Overflow, 'v')
	write(true, 'u')
	write(s.Break, 'b')
	write(s.Decimal, 'd')
	write(s.InterruptDisable, 'i')
	write(s.Zero, 'z')
	write(s.Carry, 'c')
	return b.String()
}

func (s *Status) setZN(v uint8) {
	s.Zero = v == 0
	s.Negative = v&0x80 != 0
}
