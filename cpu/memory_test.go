package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(64)
	assert.Equal(uint32(64), mem.Size())

	err := mem.Write32(0x10, 0xdeadbeef)
	assert.NoError(err)

	value, err := mem.Read32(0x10)
	assert.NoError(err)
	assert.Equal(uint32(0xdeadbeef), value)

	// Little-endian byte order
	expected := []uint8{0xef, 0xbe, 0xad, 0xde}
	for n, want := range expected {
		got, err := mem.Read8(0x10 + uint32(n))
		assert.NoError(err)
		assert.Equal(want, got, "byte %d", n)
	}

	err = mem.Write8(0x20, 0x5a)
	assert.NoError(err)
	value8, err := mem.Read8(0x20)
	assert.NoError(err)
	assert.Equal(uint8(0x5a), value8)
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(64)

	table := [](struct {
		name string
		fn   func() error
	}){
		{"read8 end", func() error { _, err := mem.Read8(64); return err }},
		{"write8 end", func() error { return mem.Write8(64, 0) }},
		{"read32 straddle", func() error { _, err := mem.Read32(62); return err }},
		{"write32 straddle", func() error { return mem.Write32(61, 0x11223344) }},
		{"read32 wrap", func() error { _, err := mem.Read32(0xfffffffe); return err }},
	}

	for _, entry := range table {
		err := entry.fn()
		assert.True(errors.Is(err, ErrMemoryBounds), entry.name)
		var err_mem *ErrMemory
		assert.True(errors.As(err, &err_mem), entry.name)
	}

	// A faulting write leaves memory untouched.
	for _, b := range mem.Data {
		assert.Equal(uint8(0), b)
	}

	// Last valid word.
	assert.NoError(mem.Write32(60, 0x01020304))
	value, err := mem.Read32(60)
	assert.NoError(err)
	assert.Equal(uint32(0x01020304), value)
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)

	err := mem.Load(12, []byte{1, 2, 3, 4})
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 4}, mem.Data[12:])

	err = mem.Load(13, []byte{1, 2, 3, 4})
	assert.ErrorIs(err, ErrImageSize)

	mem.Reset()
	assert.Equal(make([]byte, 16), mem.Data)
}
