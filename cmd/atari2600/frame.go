package main

import (
	"os"

	"github.com/schirmr/atari2600-emulator/display"
	"github.com/schirmr/atari2600-emulator/hardware"
)

func writeFrame(m *hardware.Machine, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return display.EncodePNG(f, display.Frame(m.TIA.Framebuffer), scale)
}
