package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schirmr/atari2600-emulator/cartridgeloader"
	"github.com/schirmr/atari2600-emulator/hardware"
	"github.com/schirmr/atari2600-emulator/logger"
	"github.com/schirmr/atari2600-emulator/prefs"
)

// settings are the preferences this driver remembers across runs: the
// last-used mapper override and the scale factor of the -dump PNG.
type settings struct {
	disk    *prefs.Disk
	mapping prefs.String
	scale   prefs.Int
}

func loadSettings() (*settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	disk, err := prefs.NewDisk(filepath.Join(home, ".atari2600-emulator.prefs"))
	if err != nil {
		return nil, err
	}

	s := &settings{disk: disk}
	s.mapping.Set("AUTO")
	s.scale.Set(2)

	if err := disk.Add("cmd.mapping", &s.mapping); err != nil {
		return nil, err
	}
	if err := disk.Add("cmd.scale", &s.scale); err != nil {
		return nil, err
	}

	return s, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("atari2600", flag.ExitOnError)
	mapping := fs.String("mapping", cfg.mapping.String(), "cartridge mapper (AUTO or F8)")
	frames := fs.Int("frames", 1, "number of frames to run before exiting")
	dump := fs.String("dump", "", "write the final frame to this PNG file")
	scale := fs.Int("scale", cfg.scale.Get(), "PNG dump scale factor")
	tui := fs.Bool("tui", false, "launch the interactive terminal debug viewer instead of running headless")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("atari2600: expects exactly one cartridge filename")
	}

	if strings.TrimSpace(*mapping) != "" {
		cfg.mapping.Set(*mapping)
	}
	cfg.scale.Set(*scale)
	if err := cfg.disk.Save(); err != nil {
		return err
	}

	ld, err := cartridgeloader.NewLoaderFromFilename(fs.Arg(0), *mapping)
	if err != nil {
		return err
	}
	if err := ld.Open(); err != nil {
		return err
	}

	m, err := hardware.New(*ld.Data)
	if err != nil {
		return err
	}

	if *tui {
		p := tea.NewProgram(newDebugModel(m))
		_, err := p.Run()
		return err
	}

	return runHeadless(m, *frames, *dump, *scale)
}

func runHeadless(m *hardware.Machine, frames int, dumpPath string, scale int) error {
	completed := 0
	for completed < frames {
		if _, err := m.Step(); err != nil {
			logger.Logf("atari2600", "halted: %v", err)
			return err
		}
		if m.FrameComplete() {
			completed++
		}
	}

	if dumpPath == "" {
		return nil
	}
	return writeFrame(m, dumpPath, scale)
}
