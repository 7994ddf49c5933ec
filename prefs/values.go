package prefs

import (
	"fmt"
	"strconv"

	"github.com/schirmr/atari2600-emulator/errors"
)

// Value is the type accepted by a Setting's Set() method. Concrete
// preference types convert from the dynamic Value into their own
// representation, returning an error if the conversion is not possible.
type Value = interface{}

// Setting is implemented by every value that can be registered with a
// Disk: it can be updated dynamically via Set and rendered to its
// on-disk textual form via String.
type Setting interface {
	Set(Value) error
	String() string
}

// Bool is a boolean preference value.
type Bool struct {
	value bool
}

// Set updates the value from a bool, or from a string via strconv rules.
// An unparseable string quietly resolves to false; Bool never returns an
// error, matching the forgiving style of the rest of the VCS front panel.
func (b *Bool) Set(v Value) error {
	switch t := v.(type) {
	case bool:
		b.value = t
	case string:
		parsed, err := strconv.ParseBool(t)
		if err != nil {
			b.value = false
			return nil
		}
		b.value = parsed
	default:
		b.value = false
	}
	return nil
}

func (b Bool) String() string {
	if b.value {
		return "true"
	}
	return "false"
}

// Get returns the current value.
func (b Bool) Get() bool { return b.value }

// String is a textual preference value with an optional maximum length.
type String struct {
	value  string
	maxLen int
}

// Set updates the value, cropping it to the configured maximum length.
func (s *String) Set(v Value) error {
	s.value = fmt.Sprintf("%v", v)
	s.crop()
	return nil
}

// SetMaxLen sets the maximum length for the string, cropping the current
// value if necessary. A length of zero removes the limit but does not
// restore any previously cropped characters.
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	s.crop()
}

func (s *String) crop() {
	if s.maxLen > 0 && len(s.value) > s.maxLen {
		s.value = s.value[:s.maxLen]
	}
}

func (s String) String() string { return s.value }

// Float is a floating point preference value.
type Float struct {
	value float64
}

// Set updates the value from a float64/float32/int, or from a string.
func (f *Float) Set(v Value) error {
	switch t := v.(type) {
	case float64:
		f.value = t
	case float32:
		f.value = float64(t)
	case int:
		f.value = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return errors.Errorf(errors.Prefs, err)
		}
		f.value = parsed
	default:
		return errors.Errorf(errors.Prefs, fmt.Sprintf("cannot set float preference from %T", v))
	}
	return nil
}

func (f Float) String() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

// Get returns the current value.
func (f Float) Get() float64 { return f.value }

// Int is an integer preference value.
type Int struct {
	value int
}

// Set updates the value from an int, or from a string.
func (i *Int) Set(v Value) error {
	switch t := v.(type) {
	case int:
		i.value = t
	case string:
		parsed, err := strconv.Atoi(t)
		if err != nil {
			return errors.Errorf(errors.Prefs, err)
		}
		i.value = parsed
	default:
		return errors.Errorf(errors.Prefs, fmt.Sprintf("cannot set int preference from %T", v))
	}
	return nil
}

func (i Int) String() string { return strconv.Itoa(i.value) }

// Get returns the current value.
func (i Int) Get() int { return i.value }

// Generic wraps an arbitrary pair of set/get functions as a Setting,
// allowing values that live outside of this package (a struct field, a
// package-level variable) to be persisted without duplicating storage.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

func (g *Generic) Set(v Value) error { return g.set(v) }

func (g *Generic) String() string { return fmt.Sprintf("%v", g.get()) }
