package cpu

import (
	"github.com/schirmr/atari2600-emulator/errors"
)

// Bus is the memory interface the CPU needs from its environment. The
// Machine's bus implements this directly; tests may substitute a bare RAM
// array.
type Bus interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, data uint8) error
}

// addressMask truncates the 16-bit program counter to the 13 address
// lines actually wired on the 6507.
const addressMask = 0x1FFF

// vector addresses.
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
)

// CPU is a 6507 register file and cycle counter, stepped one instruction
// at a time by Step.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	SR Status

	// Cycles is the running total of CPU cycles consumed since Reset.
	Cycles uint64

	bus Bus
}

// New returns a CPU wired to bus. Reset must be called before Step.
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset performs a power-on/reset: zeroes the general purpose registers,
// sets SP to $FD and status to $24 (InterruptDisable and Unused set), and
// loads PC from the reset vector.
func (c *CPU) Reset() error {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.SR = Status{}
	c.SR.Load(0x24)

	pc, err := c.readVector(vectorReset)
	if err != nil {
		return err
	}
	c.PC = pc
	return nil
}

func (c *CPU) readVector(addr uint16) (uint16, error) {
	lo, err := c.bus.Read(addr & addressMask)
	if err != nil {
		return 0, err
	}
	hi, err := c.bus.Read((addr + 1) & addressMask)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (c *CPU) read(addr uint16) (uint8, error) {
	return c.bus.Read(addr & addressMask)
}

func (c *CPU) write(addr uint16, v uint8) error {
	return c.bus.Write(addr&addressMask, v)
}

// push and pull operate on the stack, which always lives on page $01 and
// is addressed by SP alone: SP never leaves $00-$FF so the resulting
// address always falls in $0100-$01FF.
func (c *CPU) push(v uint8) error {
	err := c.write(0x0100|uint16(c.SP), v)
	c.SP--
	return err
}

func (c *CPU) pull() (uint8, error) {
	c.SP++
	return c.read(0x0100 | uint16(c.SP))
}

func (c *CPU) pushPC() error {
	if err := c.push(uint8(c.PC >> 8)); err != nil {
		return err
	}
	return c.push(uint8(c.PC))
}

func (c *CPU) pullPC() error {
	lo, err := c.pull()
	if err != nil {
		return err
	}
	hi, err := c.pull()
	if err != nil {
		return err
	}
	c.PC = uint16(hi)<<8 | uint16(lo)
	return nil
}

// Step fetches, decodes and executes the single instruction at PC,
// returning the number of CPU cycles it consumed. The caller is
// responsible for clocking the rest of the machine (TIA, RIOT) by that
// many cycles before calling Step again. A WSYNC write during the
// instruction only sets the TIA's flag; the stall happens when the caller
// clocks the machine (see memory.Bus.AdvanceCycles).
func (c *CPU) Step() (int, error) {
	opcode, err := c.read(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC++

	ins, ok := instructionSet[opcode]
	if !ok {
		return 0, errors.Errorf(errors.UnimplementedInstruction, opcode, c.PC-1)
	}

	addr, pageCrossed, err := c.resolveAddress(ins.mode)
	if err != nil {
		return 0, err
	}

	extra, err := ins.exec(c, ins.mode, addr)
	if err != nil {
		return 0, err
	}

	cycles := ins.cycles + extra
	if ins.pageCrossExtra && pageCrossed {
		cycles++
	}

	c.Cycles += uint64(cycles)
	return cycles, nil
}

// IRQ services a maskable interrupt request. It is a no-op when the
// InterruptDisable flag is set. Costs 7 cycles when serviced.
func (c *CPU) IRQ() (int, error) {
	if c.SR.InterruptDisable {
		return 0, nil
	}
	return c.interrupt(vectorIRQ, false)
}

// NMI services a non-maskable interrupt; it is always serviced and costs
// 7 cycles.
func (c *CPU) NMI() (int, error) {
	return c.interrupt(vectorNMI, false)
}

// interrupt pushes PCH, PCL, then status (Unused set, Break as given),
// sets InterruptDisable, and jumps through vector.
func (c *CPU) interrupt(vector uint16, brk bool) (int, error) {
	if err := c.pushPC(); err != nil {
		return 0, err
	}
	sr := c.SR
	sr.Break = brk
	if err := c.push(sr.Value()); err != nil {
		return 0, err
	}
	c.SR.InterruptDisable = true

	pc, err := c.readVector(vector)
	if err != nil {
		return 0, err
	}
	c.PC = pc
	c.Cycles += 7
	return 7, nil
}
