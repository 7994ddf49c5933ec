package cpu

// addressMode identifies how an instruction's operand bytes are turned
// into an effective address.
type addressMode int

// the complete set of 6502 addressing modes used by the documented
// instruction set.
const (
	Implied addressMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
	Relative
	Indirect
)

// resolveAddress consumes the operand bytes following the opcode (if any)
// and returns the effective address, whether resolving it crossed a page
// boundary, and any bus error encountered along the way. For Implied and
// Accumulator modes the address is unused.
func (c *CPU) resolveAddress(mode addressMode) (uint16, bool, error) {
	switch mode {
	case Implied, Accumulator:
		return 0, false, nil

	case Immediate:
		addr := c.PC
		c.PC++
		return addr, false, nil

	case ZeroPage:
		b, err := c.read(c.PC)
		c.PC++
		return uint16(b), false, err

	case ZeroPageX:
		b, err := c.read(c.PC)
		c.PC++
		return uint16(b + c.X), false, err

	case ZeroPageY:
		b, err := c.read(c.PC)
		c.PC++
		return uint16(b + c.Y), false, err

	case Absolute:
		addr, err := c.readOperandWord()
		return addr, false, err

	case AbsoluteX:
		base, err := c.readOperandWord()
		if err != nil {
			return 0, false, err
		}
		addr := base + uint16(c.X)
		return addr, pageCrossed(base, addr), nil

	case AbsoluteY:
		base, err := c.readOperandWord()
		if err != nil {
			return 0, false, err
		}
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr), nil

	case IndirectX:
		b, err := c.read(c.PC)
		c.PC++
		if err != nil {
			return 0, false, err
		}
		ptr := b + c.X
		lo, err := c.read(uint16(ptr))
		if err != nil {
			return 0, false, err
		}
		hi, err := c.read(uint16(ptr + 1))
		if err != nil {
			return 0, false, err
		}
		return uint16(hi)<<8 | uint16(lo), false, nil

	case IndirectY:
		b, err := c.read(c.PC)
		c.PC++
		if err != nil {
			return 0, false, err
		}
		lo, err := c.read(uint16(b))
		if err != nil {
			return 0, false, err
		}
		hi, err := c.read(uint16(b + 1))
		if err != nil {
			return 0, false, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr), nil

	case Relative:
		b, err := c.read(c.PC)
		c.PC++
		if err != nil {
			return 0, false, err
		}
		offset := int8(b)
		target := uint16(int32(c.PC) + int32(offset))
		return target, pageCrossed(c.PC, target), nil

	case Indirect:
		ptr, err := c.readOperandWord()
		if err != nil {
			return 0, false, err
		}
		lo, err := c.read(ptr)
		if err != nil {
			return 0, false, err
		}
		// page-wrap bug: when the pointer's low byte is $FF, the high
		// byte is fetched from the start of the same page rather than
		// the start of the next one.
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		hi, err := c.read(hiAddr)
		if err != nil {
			return 0, false, err
		}
		return uint16(hi)<<8 | uint16(lo), false, nil
	}

	return 0, false, nil
}

func (c *CPU) readOperandWord() (uint16, error) {
	lo, err := c.read(c.PC)
	c.PC++
	if err != nil {
		return 0, err
	}
	hi, err := c.read(c.PC)
	c.PC++
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
