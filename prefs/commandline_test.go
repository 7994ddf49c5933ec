package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schirmr/atari2600-emulator/prefs"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	assert.Equal(t, "", prefs.PopCommandLineStack())

	// single value
	prefs.PushCommandLineStack("foo::bar")
	assert.Equal(t, "foo::bar", prefs.PopCommandLineStack())

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	assert.Equal(t, "foo::bar", prefs.PopCommandLineStack())

	// more than one key/value in the prefs string. remaining string will
	// be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	assert.Equal(t, "baz::qux; foo::bar", prefs.PopCommandLineStack())

	// check invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	assert.Equal(t, "", prefs.PopCommandLineStack())

	// check (partially) invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	assert.Equal(t, "baz::qux", prefs.PopCommandLineStack())

	// get prefs value that doesn't exist after pushing a partially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	assert.False(t, ok)
	assert.Equal(t, "foo::bar", prefs.PopCommandLineStack())
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	assert.Equal(t, "", prefs.PopCommandLineStack())

	// single value
	prefs.PushCommandLineStack("foo::bar")

	// add another command line group
	prefs.PushCommandLineStack("baz::qux")
	assert.Equal(t, "baz::qux", prefs.PopCommandLineStack())

	// first group still exists
	assert.Equal(t, "foo::bar", prefs.PopCommandLineStack())
}
