package cartridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schirmr/atari2600-emulator/hardware/memory/cartridge"
)

func TestNoneMapperMirrors2K(t *testing.T) {
	data := make([]uint8, 2048)
	data[0] = 0x11
	data[2047] = 0x22

	cart, err := cartridge.NewFromData(data)
	require.NoError(t, err)
	assert.Equal(t, cartridge.None, cart.Mapper())
	assert.Equal(t, uint8(0x11), cart.Read(0x1000))
	assert.Equal(t, uint8(0x11), cart.Read(0x1800)) // mirrored copy
	assert.Equal(t, uint8(0x22), cart.Read(0x17FF))
}

func TestF8DefaultBankIsOne(t *testing.T) {
	data := make([]uint8, 8192)
	data[0] = 0xAA
	data[4096] = 0xBB

	cart, err := cartridge.NewFromData(data)
	require.NoError(t, err)
	assert.Equal(t, cartridge.F8, cart.Mapper())
	assert.Equal(t, 1, cart.ActiveBank())
	assert.Equal(t, uint8(0xBB), cart.Read(0x1000))
}

func TestF8BankSwitchOnRead(t *testing.T) {
	data := make([]uint8, 8192)
	data[0] = 0xAA
	data[4096] = 0xBB

	cart, err := cartridge.NewFromData(data)
	require.NoError(t, err)

	cart.Read(0x1FF8)
	assert.Equal(t, 0, cart.ActiveBank())
	assert.Equal(t, uint8(0xAA), cart.Read(0x1000))

	cart.Read(0x1FF9)
	assert.Equal(t, 1, cart.ActiveBank())
	assert.Equal(t, uint8(0xBB), cart.Read(0x1000))
}

func TestF8BankSwitchIsIdempotent(t *testing.T) {
	data := make([]uint8, 8192)
	cart, err := cartridge.NewFromData(data)
	require.NoError(t, err)

	cart.Read(0x1FF8)
	first := cart.ActiveBank()
	cart.Read(0x1FF8)
	assert.Equal(t, first, cart.ActiveBank())
}

func TestImagesOver8KAreTruncated(t *testing.T) {
	data := make([]uint8, 16384)
	cart, err := cartridge.NewFromData(data)
	require.NoError(t, err)
	assert.Equal(t, cartridge.F8, cart.Mapper())
}
