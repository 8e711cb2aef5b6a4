package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	f.Add([]byte{0x90, 0xf4}, uint32(0))
	f.Add([]byte{0x01, 0xc8, 0x29, 0xd8, 0x39, 0xc1}, uint32(0x800))
	f.Add([]byte{0x8b, 0x45, 0xfc, 0x89, 0x04, 0x24}, uint32(0x7fc))
	f.Add([]byte{0xff, 0xd0, 0xff, 0xc8, 0xc3}, uint32(0x810))
	f.Add([]byte{0x81, 0x6d, 0x08, 0x01, 0x02, 0x03, 0x04, 0xc9}, uint32(0xffffffff))
	f.Add([]byte{0x74, 0xfe, 0xeb, 0x80, 0xe8, 0xff, 0xff, 0xff, 0x7f}, uint32(0x1000))

	f.Fuzz(func(t *testing.T, codes []byte, seed uint32) {
		assert := assert.New(t)

		if len(codes) > 64 {
			codes = codes[:64]
		}

		cpu := NewCpu(4096)
		cpu.Reset(0x800)
		assert.NoError(cpu.Memory.Load(0x800, codes))

		for reg := REG_EAX; reg < REGISTERS_COUNT; reg++ {
			if reg == REG_ESP {
				continue
			}
			cpu.WriteRegister(reg, seed+uint32(reg)*0x100)
		}

		for range 32 {
			if cpu.Halted {
				break
			}

			pre_regs := cpu.Register
			pre_flags := cpu.Eflags
			pre_eip := cpu.Eip
			pre_mem := bytes.Clone(cpu.Memory.Data)

			var err error
			assert.NotPanics(func() { err = cpu.Tick() }, cpu.String())
			if err == nil {
				continue
			}

			var fault *ErrFault
			assert.True(errors.As(err, &fault), err.Error())
			assert.True(errors.Is(err, ErrDecode) ||
				errors.Is(err, ErrDispatch) ||
				errors.Is(err, ErrMemoryBounds), err.Error())

			assert.Equal(pre_eip, cpu.Eip, err.Error())
			assert.Equal(pre_regs, cpu.Register, err.Error())
			assert.Equal(pre_flags, cpu.Eflags, err.Error())
			assert.True(bytes.Equal(pre_mem, cpu.Memory.Data), err.Error())
			break
		}
	})
}
