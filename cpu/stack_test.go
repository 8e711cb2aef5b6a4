package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)
	cpu.Reset(64)

	_, err := cpu.Peek32()
	assert.ErrorIs(err, ErrMemoryBounds)

	for n := range uint32(4) {
		err = cpu.Push32(0x100 + n)
		assert.NoError(err)
	}
	assert.Equal(uint32(64-16), cpu.ReadRegister(REG_ESP))

	value, err := cpu.Memory.Read32(64 - 16)
	assert.NoError(err)
	assert.Equal(uint32(0x103), value)

	for n := range uint32(4) {
		value, err = cpu.Pop32()
		assert.NoError(err)
		assert.Equal(0x103-n, value)
	}
	assert.Equal(uint32(64), cpu.ReadRegister(REG_ESP))

	_, err = cpu.Pop32()
	assert.ErrorIs(err, ErrMemoryBounds)
	assert.Equal(uint32(64), cpu.ReadRegister(REG_ESP))
}

func TestStack_Overflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)
	cpu.Reset(4)

	assert.NoError(cpu.Push32(1))
	assert.Equal(uint32(0), cpu.ReadRegister(REG_ESP))

	err := cpu.Push32(2)
	assert.ErrorIs(err, ErrMemoryBounds)
	assert.Equal(uint32(0), cpu.ReadRegister(REG_ESP))
}
