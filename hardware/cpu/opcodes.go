package cpu

// instruction describes one entry of the 256-slot opcode dispatch table:
// its addressing mode, base cycle cost, whether a page crossing during
// address resolution adds an extra cycle, and the function that carries
// out the operation itself.
type instruction struct {
	name           string
	mode           addressMode
	cycles         int
	pageCrossExtra bool
	exec           func(c *CPU, mode addressMode, addr uint16) (int, error)
}

// instructionSet is the table of documented 6502 opcodes, except BIT
// ($24, $2C), which is not implemented. Unlisted opcodes (including BIT)
// are treated as unimplemented, per the fatal-on-unknown-opcode contract.
var instructionSet map[uint8]instruction

func init() {
	instructionSet = map[uint8]instruction{
		// LDA
		0xA9: {"LDA", Immediate, 2, false, execLoad(regA)},
		0xA5: {"LDA", ZeroPage, 3, false, execLoad(regA)},
		0xB5: {"LDA", ZeroPageX, 4, false, execLoad(regA)},
		0xAD: {"LDA", Absolute, 4, false, execLoad(regA)},
		0xBD: {"LDA", AbsoluteX, 4, true, execLoad(regA)},
		0xB9: {"LDA", AbsoluteY, 4, true, execLoad(regA)},
		0xA1: {"LDA", IndirectX, 6, false, execLoad(regA)},
		0xB1: {"LDA", IndirectY, 5, true, execLoad(regA)},

		// LDX
		0xA2: {"LDX", Immediate, 2, false, execLoad(regX)},
		0xA6: {"LDX", ZeroPage, 3, false, execLoad(regX)},
		0xB6: {"LDX", ZeroPageY, 4, false, execLoad(regX)},
		0xAE: {"LDX", Absolute, 4, false, execLoad(regX)},
		0xBE: {"LDX", AbsoluteY, 4, true, execLoad(regX)},

		// LDY
		0xA0: {"LDY", Immediate, 2, false, execLoad(regY)},
		0xA4: {"LDY", ZeroPage, 3, false, execLoad(regY)},
		0xB4: {"LDY", ZeroPageX, 4, false, execLoad(regY)},
		0xAC: {"LDY", Absolute, 4, false, execLoad(regY)},
		0xBC: {"LDY", AbsoluteX, 4, true, execLoad(regY)},

		// STA
		0x85: {"STA", ZeroPage, 3, false, execStore(regA)},
		0x95: {"STA", ZeroPageX, 4, false, execStore(regA)},
		0x8D: {"STA", Absolute, 4, false, execStore(regA)},
		0x9D: {"STA", AbsoluteX, 5, false, execStore(regA)},
		0x99: {"STA", AbsoluteY, 5, false, execStore(regA)},
		0x81: {"STA", IndirectX, 6, false, execStore(regA)},
		0x91: {"STA", IndirectY, 6, false, execStore(regA)},

		// STX / STY
		0x86: {"STX", ZeroPage, 3, false, execStore(regX)},
		0x96: {"STX", ZeroPageY, 4, false, execStore(regX)},
		0x8E: {"STX", Absolute, 4, false, execStore(regX)},
		0x84: {"STY", ZeroPage, 3, false, execStore(regY)},
		0x94: {"STY", ZeroPageX, 4, false, execStore(regY)},
		0x8C: {"STY", Absolute, 4, false, execStore(regY)},

		// register transfers
		0xAA: {"TAX", Implied, 2, false, execTransfer(regA, regX)},
		0x8A: {"TXA", Implied, 2, false, execTransfer(regX, regA)},
		0xA8: {"TAY", Implied, 2, false, execTransfer(regA, regY)},
		0x98: {"TYA", Implied, 2, false, execTransfer(regY, regA)},
		0xBA: {"TSX", Implied, 2, false, execTSX},
		0x9A: {"TXS", Implied, 2, false, execTXS},

		// stack
		0x48: {"PHA", Implied, 3, false, execPHA},
		0x68: {"PLA", Implied, 4, false, execPLA},
		0x08: {"PHP", Implied, 3, false, execPHP},
		0x28: {"PLP", Implied, 4, false, execPLP},

		// arithmetic
		0x69: {"ADC", Immediate, 2, false, execADC},
		0x65: {"ADC", ZeroPage, 3, false, execADC},
		0x75: {"ADC", ZeroPageX, 4, false, execADC},
		0x6D: {"ADC", Absolute, 4, false, execADC},
		0x7D: {"ADC", AbsoluteX, 4, true, execADC},
		0x79: {"ADC", AbsoluteY, 4, true, execADC},
		0x61: {"ADC", IndirectX, 6, false, execADC},
		0x71: {"ADC", IndirectY, 5, true, execADC},

		0xE9: {"SBC", Immediate, 2, false, execSBC},
		0xE5: {"SBC", ZeroPage, 3, false, execSBC},
		0xF5: {"SBC", ZeroPageX, 4, false, execSBC},
		0xED: {"SBC", Absolute, 4, false, execSBC},
		0xFD: {"SBC", AbsoluteX, 4, true, execSBC},
		0xF9: {"SBC", AbsoluteY, 4, true, execSBC},
		0xE1: {"SBC", IndirectX, 6, false, execSBC},
		0xF1: {"SBC", IndirectY, 5, true, execSBC},

		// logic
		0x29: {"AND", Immediate, 2, false, execLogic(logicAND)},
		0x25: {"AND", ZeroPage, 3, false, execLogic(logicAND)},
		0x35: {"AND", ZeroPageX, 4, false, execLogic(logicAND)},
		0x2D: {"AND", Absolute, 4, false, execLogic(logicAND)},
		0x3D: {"AND", AbsoluteX, 4, true, execLogic(logicAND)},
		0x39: {"AND", AbsoluteY, 4, true, execLogic(logicAND)},
		0x21: {"AND", IndirectX, 6, false, execLogic(logicAND)},
		0x31: {"AND", IndirectY, 5, true, execLogic(logicAND)},

		0x09: {"ORA", Immediate, 2, false, execLogic(logicORA)},
		0x05: {"ORA", ZeroPage, 3, false, execLogic(logicORA)},
		0x15: {"ORA", ZeroPageX, 4, false, execLogic(logicORA)},
		0x0D: {"ORA", Absolute, 4, false, execLogic(logicORA)},
		0x1D: {"ORA", AbsoluteX, 4, true, execLogic(logicORA)},
		0x19: {"ORA", AbsoluteY, 4, true, execLogic(logicORA)},
		0x01: {"ORA", IndirectX, 6, false, execLogic(logicORA)},
		0x11: {"ORA", IndirectY, 5, true, execLogic(logicORA)},

		0x49: {"EOR", Immediate, 2, false, execLogic(logicEOR)},
		0x45: {"EOR", ZeroPage, 3, false, execLogic(logicEOR)},
		0x55: {"EOR", ZeroPageX, 4, false, execLogic(logicEOR)},
		0x4D: {"EOR", Absolute, 4, false, execLogic(logicEOR)},
		0x5D: {"EOR", AbsoluteX, 4, true, execLogic(logicEOR)},
		0x59: {"EOR", AbsoluteY, 4, true, execLogic(logicEOR)},
		0x41: {"EOR", IndirectX, 6, false, execLogic(logicEOR)},
		0x51: {"EOR", IndirectY, 5, true, execLogic(logicEOR)},

		// shifts / rotates
		0x0A: {"ASL", Accumulator, 2, false, execShift(shiftASL)},
		0x06: {"ASL", ZeroPage, 5, false, execShift(shiftASL)},
		0x16: {"ASL", ZeroPageX, 6, false, execShift(shiftASL)},
		0x0E: {"ASL", Absolute, 6, false, execShift(shiftASL)},
		0x1E: {"ASL", AbsoluteX, 7, false, execShift(shiftASL)},

		0x4A: {"LSR", Accumulator, 2, false, execShift(shiftLSR)},
		0x46: {"LSR", ZeroPage, 5, false, execShift(shiftLSR)},
		0x56: {"LSR", ZeroPageX, 6, false, execShift(shiftLSR)},
		0x4E: {"LSR", Absolute, 6, false, execShift(shiftLSR)},
		0x5E: {"LSR", AbsoluteX, 7, false, execShift(shiftLSR)},

		0x2A: {"ROL", Accumulator, 2, false, execShift(shiftROL)},
		0x26: {"ROL", ZeroPage, 5, false, execShift(shiftROL)},
		0x36: {"ROL", ZeroPageX, 6, false, execShift(shiftROL)},
		0x2E: {"ROL", Absolute, 6, false, execShift(shiftROL)},
		0x3E: {"ROL", AbsoluteX, 7, false, execShift(shiftROL)},

		0x6A: {"ROR", Accumulator, 2, false, execShift(shiftROR)},
		0x66: {"ROR", ZeroPage, 5, false, execShift(shiftROR)},
		0x76: {"ROR", ZeroPageX, 6, false, execShift(shiftROR)},
		0x6E: {"ROR", Absolute, 6, false, execShift(shiftROR)},
		0x7E: {"ROR", AbsoluteX, 7, false, execShift(shiftROR)},

		// increment / decrement
		0xE6: {"INC", ZeroPage, 5, false, execIncDec(1)},
		0xF6: {"INC", ZeroPageX, 6, false, execIncDec(1)},
		0xEE: {"INC", Absolute, 6, false, execIncDec(1)},
		0xFE: {"INC", AbsoluteX, 7, false, execIncDec(1)},
		0xC6: {"DEC", ZeroPage, 5, false, execIncDec(-1)},
		0xD6: {"DEC", ZeroPageX, 6, false, execIncDec(-1)},
		0xCE: {"DEC", Absolute, 6, false, execIncDec(-1)},
		0xDE: {"DEC", AbsoluteX, 7, false, execIncDec(-1)},

		0xE8: {"INX", Implied, 2, false, execRegIncDec(regX, 1)},
		0xCA: {"DEX", Implied, 2, false, execRegIncDec(regX, -1)},
		0xC8: {"INY", Implied, 2, false, execRegIncDec(regY, 1)},
		0x88: {"DEY", Implied, 2, false, execRegIncDec(regY, -1)},

		// comparisons
		0xC9: {"CMP", Immediate, 2, false, execCompare(regA)},
		0xC5: {"CMP", ZeroPage, 3, false, execCompare(regA)},
		0xD5: {"CMP", ZeroPageX, 4, false, execCompare(regA)},
		0xCD: {"CMP", Absolute, 4, false, execCompare(regA)},
		0xDD: {"CMP", AbsoluteX, 4, true, execCompare(regA)},
		0xD9: {"CMP", AbsoluteY, 4, true, execCompare(regA)},
		0xC1: {"CMP", IndirectX, 6, false, execCompare(regA)},
		0xD1: {"CMP", IndirectY, 5, true, execCompare(regA)},

		0xE0: {"CPX", Immediate, 2, false, execCompare(regX)},
		0xE4: {"CPX", ZeroPage, 3, false, execCompare(regX)},
		0xEC: {"CPX", Absolute, 4, false, execCompare(regX)},

		0xC0: {"CPY", Immediate, 2, false, execCompare(regY)},
		0xC4: {"CPY", ZeroPage, 3, false, execCompare(regY)},
		0xCC: {"CPY", Absolute, 4, false, execCompare(regY)},

		// branches
		0x10: {"BPL", Relative, 2, false, execBranch(func(c *CPU) bool { return !c.SR.Negative })},
		0x30: {"BMI", Relative, 2, false, execBranch(func(c *CPU) bool { return c.SR.Negative })},
		0x50: {"BVC", Relative, 2, false, execBranch(func(c *CPU) bool { return !c.SR.Overflow })},
		0x70: {"BVS", Relative, 2, false, execBranch(func(c *CPU) bool { return c.SR.Overflow })},
		0x90: {"BCC", Relative, 2, false, execBranch(func(c *CPU) bool { return !c.SR.Carry })},
		0xB0: {"BCS", Relative, 2, false, execBranch(func(c *CPU) bool { return c.SR.Carry })},
		0xD0: {"BNE", Relative, 2, false, execBranch(func(c *CPU) bool { return !c.SR.Zero })},
		0xF0: {"BEQ", Relative, 2, false, execBranch(func(c *CPU) bool { return c.SR.Zero })},

		// jumps / subroutines
		0x4C: {"JMP", Absolute, 3, false, execJMP},
		0x6C: {"JMP", Indirect, 5, false, execJMP},
		0x20: {"JSR", Absolute, 6, false, execJSR},
		0x60: {"RTS", Implied, 6, false, execRTS},

		// interrupts
		0x00: {"BRK", Implied, 7, false, execBRK},
		0x40: {"RTI", Implied, 6, false, execRTI},

		// no-op
		0xEA: {"NOP", Implied, 2, false, execNOP},

		// flag operations
		0x18: {"CLC", Implied, 2, false, execFlag(func(c *CPU) { c.SR.Carry = false })},
		0x38: {"SEC", Implied, 2, false, execFlag(func(c *CPU) { c.SR.Carry = true })},
		0x58: {"CLI", Implied, 2, false, execFlag(func(c *CPU) { c.SR.InterruptDisable = false })},
		0x78: {"SEI", Implied, 2, false, execFlag(func(c *CPU) { c.SR.InterruptDisable = true })},
		0xD8: {"CLD", Implied, 2, false, execFlag(func(c *CPU) { c.SR.Decimal = false })},
		0xF8: {"SED", Implied, 2, false, execFlag(func(c *CPU) { c.SR.Decimal = true })},
		0xB8: {"CLV", Implied, 2, false, execFlag(func(c *CPU) { c.SR.Overflow = false })},
	}
}

// regA, regX and regY identify which register an exec helper operates on.
type regSelector int

const (
	regA regSelector = iota
	regX
	regY
)

func (c *CPU) reg(sel regSelector) *uint8 {
	switch sel {
	case regA:
		return &c.A
	case regX:
		return &c.X
	default:
		return &c.Y
	}
}

func execLoad(sel regSelector) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		v, err := c.read(addr)
		if err != nil {
			return 0, err
		}
		*c.reg(sel) = v
		c.SR.setZN(v)
		return 0, nil
	}
}

func execStore(sel regSelector) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		return 0, c.write(addr, *c.reg(sel))
	}
}

func execTransfer(from, to regSelector) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		v := *c.reg(from)
		*c.reg(to) = v
		c.SR.setZN(v)
		return 0, nil
	}
}

func execTSX(c *CPU, mode addressMode, addr uint16) (int, error) {
	c.X = c.SP
	c.SR.setZN(c.X)
	return 0, nil
}

func execTXS(c *CPU, mode addressMode, addr uint16) (int, error) {
	c.SP = c.X
	return 0, nil
}

func execPHA(c *CPU, mode addressMode, addr uint16) (int, error) {
	return 0, c.push(c.A)
}

func execPLA(c *CPU, mode addressMode, addr uint16) (int, error) {
	v, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.A = v
	c.SR.setZN(v)
	return 0, nil
}

func execPHP(c *CPU, mode addressMode, addr uint16) (int, error) {
	sr := c.SR
	sr.Break = true
	return 0, c.push(sr.Value())
}

func execPLP(c *CPU, mode addressMode, addr uint16) (int, error) {
	v, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.SR.Load(v)
	c.SR.Break = false
	return 0, nil
}

func execADC(c *CPU, mode addressMode, addr uint16) (int, error) {
	v, err := c.read(addr)
	if err != nil {
		return 0, err
	}
	c.adc(v)
	return 0, nil
}

func execSBC(c *CPU, mode addressMode, addr uint16) (int, error) {
	v, err := c.read(addr)
	if err != nil {
		return 0, err
	}
	c.sbc(v)
	return 0, nil
}

type logicOp func(a, b uint8) uint8

func logicAND(a, b uint8) uint8 { return a & b }
func logicORA(a, b uint8) uint8 { return a | b }
func logicEOR(a, b uint8) uint8 { return a ^ b }

func execLogic(op logicOp) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		v, err := c.read(addr)
		if err != nil {
			return 0, err
		}
		c.A = op(c.A, v)
		c.SR.setZN(c.A)
		return 0, nil
	}
}

type shiftOp func(c *CPU, v uint8) uint8

func shiftASL(c *CPU, v uint8) uint8 {
	c.SR.Carry = v&0x80 != 0
	return v << 1
}

func shiftLSR(c *CPU, v uint8) uint8 {
	c.SR.Carry = v&0x01 != 0
	return v >> 1
}

func shiftROL(c *CPU, v uint8) uint8 {
	carryIn := uint8(0)
	if c.SR.Carry {
		carryIn = 1
	}
	c.SR.Carry = v&0x80 != 0
	return v<<1 | carryIn
}

func shiftROR(c *CPU, v uint8) uint8 {
	carryIn := uint8(0)
	if c.SR.Carry {
		carryIn = 0x80
	}
	c.SR.Carry = v&0x01 != 0
	return v>>1 | carryIn
}

func execShift(op shiftOp) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		if mode == Accumulator {
			c.A = op(c, c.A)
			c.SR.setZN(c.A)
			return 0, nil
		}
		v, err := c.read(addr)
		if err != nil {
			return 0, err
		}
		result := op(c, v)
		c.SR.setZN(result)
		return 0, c.write(addr, result)
	}
}

func execIncDec(delta int8) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		v, err := c.read(addr)
		if err != nil {
			return 0, err
		}
		v = uint8(int16(v) + int16(delta))
		c.SR.setZN(v)
		return 0, c.write(addr, v)
	}
}

func execRegIncDec(sel regSelector, delta int8) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		r := c.reg(sel)
		*r = uint8(int16(*r) + int16(delta))
		c.SR.setZN(*r)
		return 0, nil
	}
}

func execCompare(sel regSelector) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		v, err := c.read(addr)
		if err != nil {
			return 0, err
		}
		reg := *c.reg(sel)
		result := reg - v
		c.SR.Carry = reg >= v
		c.SR.setZN(result)
		return 0, nil
	}
}

func execBranch(taken func(c *CPU) bool) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		if !taken(c) {
			return 0, nil
		}
		extra := 1
		if pageCrossed(c.PC, addr) {
			extra += 1
		}
		c.PC = addr
		return extra, nil
	}
}

func execJMP(c *CPU, mode addressMode, addr uint16) (int, error) {
	c.PC = addr
	return 0, nil
}

func execJSR(c *CPU, mode addressMode, addr uint16) (int, error) {
	// PC currently points at the instruction following the operand; JSR
	// pushes PC-1 (the address of the last byte of the JSR instruction).
	ret := c.PC - 1
	if err := c.write(0x0100|uint16(c.SP), uint8(ret>>8)); err != nil {
		return 0, err
	}
	c.SP--
	if err := c.write(0x0100|uint16(c.SP), uint8(ret)); err != nil {
		return 0, err
	}
	c.SP--
	c.PC = addr
	return 0, nil
}

func execRTS(c *CPU, mode addressMode, addr uint16) (int, error) {
	if err := c.pullPC(); err != nil {
		return 0, err
	}
	c.PC++
	return 0, nil
}

func execBRK(c *CPU, mode addressMode, addr uint16) (int, error) {
	c.PC++ // BRK pushes PC+1, treating the following byte as a signature
	if err := c.pushPC(); err != nil {
		return 0, err
	}
	sr := c.SR
	sr.Break = true
	if err := c.push(sr.Value()); err != nil {
		return 0, err
	}
	c.SR.InterruptDisable = true
	pc, err := c.readVector(vectorIRQ)
	if err != nil {
		return 0, err
	}
	c.PC = pc
	return 0, nil
}

func execRTI(c *CPU, mode addressMode, addr uint16) (int, error) {
	v, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.SR.Load(v)
	c.SR.Break = false
	return 0, c.pullPC()
}

func execNOP(c *CPU, mode addressMode, addr uint16) (int, error) {
	return 0, nil
}

func execFlag(set func(c *CPU)) func(c *CPU, mode addressMode, addr uint16) (int, error) {
	return func(c *CPU, mode addressMode, addr uint16) (int, error) {
		set(c)
		return 0, nil
	}
}
