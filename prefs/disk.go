package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/schirmr/atari2600-emulator/errors"
)

// WarningBoilerPlate is written as the first line of every saved prefs
// file, warning against hand-editing while the emulator is running.
const WarningBoilerPlate = "# generated by atari2600-emulator -- edits may be overwritten"

// Disk associates preference keys with live Setting values and persists
// them to a single file. Keys present in the file but not yet Add()'d are
// preserved verbatim across a Load/Save cycle, so that a second Disk
// instance opening the same file does not clobber settings it doesn't
// know about.
type Disk struct {
	filename string

	mu     sync.Mutex
	values map[string]Setting
	raw    map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type. It
// loads any existing file at filename; a missing file is not an error.
func NewDisk(filename string) (*Disk, error) {
	d := &Disk{
		filename: filename,
		values:   make(map[string]Setting),
		raw:      make(map[string]string),
	}

	if err := d.Load(); err != nil {
		return nil, err
	}

	return d, nil
}

// Add registers value under key. If the file previously loaded a value
// for key, value is immediately Set() from that stored text.
func (d *Disk) Add(key string, value Setting) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if raw, ok := d.raw[key]; ok {
		if err := value.Set(raw); err != nil {
			return errors.Errorf(errors.Prefs, err)
		}
		delete(d.raw, key)
	}

	d.values[key] = value
	return nil
}

// Load (re)reads the preferences file, updating registered values and
// recording unrecognised keys for later preservation on Save.
func (d *Disk) Load() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.Open(d.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Errorf(errors.Prefs, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		parts := strings.SplitN(line, " :: ", 2)
		if len(parts) != 2 {
			continue
		}
		key, val := parts[0], parts[1]

		if setting, ok := d.values[key]; ok {
			if err := setting.Set(val); err != nil {
				return errors.Errorf(errors.Prefs, err)
			}
			continue
		}
		d.raw[key] = val
	}

	if err := scanner.Err(); err != nil {
		return errors.Errorf(errors.Prefs, err)
	}

	return nil
}

// Save writes every registered and every preserved unrecognised value to
// the preferences file, in sorted key order.
func (d *Disk) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	merged := make(map[string]string, len(d.values)+len(d.raw))
	for k, v := range d.raw {
		merged[k] = v
	}
	for k, v := range d.values {
		merged[k] = v.String()
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s :: %s\n", k, merged[k])
	}

	if err := os.WriteFile(d.filename, []byte(b.String()), 0o644); err != nil {
		return errors.Errorf(errors.Prefs, err)
	}

	return nil
}
