// Package hardware assembles the CPU, Bus, TIA and RIOT into one runnable
// machine and is the entry point the driver (cmd/, tests) constructs.
package hardware

import (
	"github.com/schirmr/atari2600-emulator/hardware/cpu"
	"github.com/schirmr/atari2600-emulator/hardware/memory"
	"github.com/schirmr/atari2600-emulator/hardware/memory/cartridge"
	"github.com/schirmr/atari2600-emulator/hardware/riot"
	"github.com/schirmr/atari2600-emulator/hardware/tia"
	"github.com/schirmr/atari2600-emulator/logger"
)

// Machine owns every component and is the single place their lifetimes
// meet; the Bus holds non-owning references into the TIA and RIOT it was
// constructed with.
type Machine struct {
	CPU  *cpu.CPU
	Bus  *memory.Bus
	TIA  *tia.TIA
	RIOT *riot.RIOT
	Cart *cartridge.Cartridge

	lastScanline int
}

// New builds a Machine around a loaded cartridge image and resets the CPU.
func New(cartData []uint8) (*Machine, error) {
	cart, err := cartridge.NewFromData(cartData)
	if err != nil {
		return nil, err
	}

	r := riot.New()
	t := tia.New()
	bus := memory.New(cart, t, r)
	c := cpu.New(bus)

	m := &Machine{
		CPU:  c,
		Bus:  bus,
		TIA:  t,
		RIOT: r,
		Cart: cart,
	}

	if err := m.CPU.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Step executes one CPU instruction and clocks TIA/RIOT by the same number
// of cycles, draining any WSYNC stall along the way. It returns the number
// of CPU cycles the instruction consumed.
func (m *Machine) Step() (int, error) {
	cycles, err := m.CPU.Step()
	if err != nil {
		logger.Logf("cpu", "halted: %v", err)
		return cycles, err
	}
	m.lastScanline = m.TIA.Scanline
	m.Bus.AdvanceCycles(cycles)
	return cycles, nil
}

// SetSWCHA implements input.Input.
func (m *Machine) SetSWCHA(v uint8) { m.RIOT.SetSWCHA(v) }

// SetSWCHB implements input.Input.
func (m *Machine) SetSWCHB(v uint8) { m.RIOT.SetSWCHB(v) }

// SetTrigger0 implements input.Input.
func (m *Machine) SetTrigger0(pressed bool) { m.TIA.SetTrigger0(pressed) }

// SetTrigger1 implements input.Input.
func (m *Machine) SetTrigger1(pressed bool) { m.TIA.SetTrigger1(pressed) }

// FrameComplete reports whether the scanline counter wrapped from the last
// line of a frame back to zero during the most recent Step; this is the
// signal the driver uses to decide it's safe to read the framebuffer.
func (m *Machine) FrameComplete() bool {
	return m.lastScanline == tia.Scanlines-1 && m.TIA.Scanline == 0
}
