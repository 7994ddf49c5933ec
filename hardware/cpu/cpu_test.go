package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schirmr/atari2600-emulator/hardware/cpu"
)

// flatBus is a bare 8KB RAM array satisfying cpu.Bus, used to exercise the
// CPU in isolation from the rest of the machine.
type flatBus struct {
	mem [0x2000]uint8
}

func (b *flatBus) Read(addr uint16) (uint8, error) {
	return b.mem[addr&0x1FFF], nil
}

func (b *flatBus) Write(addr uint16, v uint8) error {
	b.mem[addr&0x1FFF] = v
	return nil
}

func (b *flatBus) load(addr uint16, program ...uint8) {
	for i, v := range program {
		b.mem[(addr+uint16(i))&0x1FFF] = v
	}
}

func newCPU(t *testing.T, resetVector uint16) (*cpu.CPU, *flatBus) {
	t.Helper()
	bus := &flatBus{}
	bus.mem[0x1FFC] = uint8(resetVector)
	bus.mem[0x1FFD] = uint8(resetVector >> 8)
	c := cpu.New(bus)
	require.NoError(t, c.Reset())
	return c, bus
}

func TestResetVector(t *testing.T) {
	c, _ := newCPU(t, 0x1000)
	assert.Equal(t, uint16(0x1000), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.True(t, c.SR.InterruptDisable)
	assert.True(t, c.SR.Unused)
}

func TestLDAImmediate(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000, 0xA9, 0x80) // LDA #$80

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.SR.Negative)
	assert.False(t, c.SR.Zero)
}

func TestLDAZero(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000, 0xA9, 0x00)

	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, c.SR.Zero)
	assert.False(t, c.SR.Negative)
}

func TestADCChainBinary(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000,
		0xA9, 0x01, // LDA #$01
		0x69, 0xFF, // ADC #$FF
	)

	_, err := c.Step()
	require.NoError(t, err)
	_, err = c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x00), c.A)
	assert.True(t, c.SR.Carry)
	assert.True(t, c.SR.Zero)
	assert.False(t, c.SR.Overflow)
	assert.False(t, c.SR.Negative)
}

func TestADCOverflow(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000,
		0xA9, 0x50, // LDA #$50
		0x69, 0x50, // ADC #$50
	)

	_, err := c.Step()
	require.NoError(t, err)
	_, err = c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint8(0xA0), c.A)
	assert.True(t, c.SR.Negative)
	assert.True(t, c.SR.Overflow)
	assert.False(t, c.SR.Carry)
	assert.False(t, c.SR.Zero)
}

func TestADCDecimalMode(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000,
		0xF8,       // SED
		0xA9, 0x09, // LDA #$09
		0x69, 0x01, // ADC #$01
	)

	for i := 0; i < 3; i++ {
		_, err := c.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, uint8(0x10), c.A)
	assert.False(t, c.SR.Carry)
}

func TestJSRAndRTS(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000,
		0x20, 0x00, 0x11, // JSR $1100
	)
	bus.load(0x1100,
		0x60, // RTS
	)

	_, err := c.Step() // JSR
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1100), c.PC)

	_, err = c.Step() // RTS
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1003), c.PC)
}

func TestBranchTakenNoPageCross(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000,
		0xA9, 0x00, // LDA #$00
		0xF0, 0x02, // BEQ +2
	)

	_, err := c.Step()
	require.NoError(t, err)
	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, 3, cycles)
	assert.Equal(t, uint16(0x1006), c.PC)
}

func TestBranchTakenPageCross(t *testing.T) {
	c, bus := newCPU(t, 0x10FB)
	bus.load(0x10FB,
		0xA9, 0x00, // LDA #$00
		0xF0, 0x02, // BEQ +2; PC after operand fetch is $10FF, target $1101
	)

	_, err := c.Step()
	require.NoError(t, err)
	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x1101), c.PC)
}

func TestLDAAbsoluteXPageCross(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000,
		0xA2, 0xFF, // LDX #$FF
		0xBD, 0x01, 0x10, // LDA $1001,X -> $1100
	)
	bus.mem[0x1100] = 0x42

	_, err := c.Step()
	require.NoError(t, err)
	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, 5, cycles)
	assert.Equal(t, uint8(0x42), c.A)
}

func TestSTAAbsoluteXNoPageCrossBonus(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000,
		0xA9, 0x42, // LDA #$42
		0xA2, 0xFF, // LDX #$FF
		0x9D, 0x01, 0x10, // STA $1001,X -> $1100
	)

	_, err := c.Step()
	require.NoError(t, err)
	_, err = c.Step()
	require.NoError(t, err)
	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, 5, cycles)
	assert.Equal(t, uint8(0x42), bus.mem[0x1100])
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000, 0x6C, 0xFF, 0x11) // JMP ($11FF)
	bus.mem[0x11FF] = 0x00
	bus.mem[0x1100+0x100] = 0x90 // correct next-page byte, must NOT be used
	bus.mem[0x1100] = 0x80       // wrap target: high byte fetched from $1100, not $1200

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestUnimplementedOpcodeReturnsError(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000, 0x02) // no documented opcode $02

	_, err := c.Step()
	assert.Error(t, err)
}

func TestIRQIgnoredWhenDisabled(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.load(0x1000, 0x78) // SEI
	_, err := c.Step()
	require.NoError(t, err)

	pcBefore := c.PC
	cycles, err := c.IRQ()
	require.NoError(t, err)
	assert.Equal(t, 0, cycles)
	assert.Equal(t, pcBefore, c.PC)
}

func TestNMIAlwaysServiced(t *testing.T) {
	c, bus := newCPU(t, 0x1000)
	bus.mem[0x1FFA] = 0x00
	bus.mem[0x1FFB] = 0x12
	bus.load(0x1000, 0x78) // SEI
	_, err := c.Step()
	require.NoError(t, err)

	cycles, err := c.NMI()
	require.NoError(t, err)
	assert.Equal(t, 7, cycles)
	assert.Equal(t, uint16(0x1200), c.PC)
}
