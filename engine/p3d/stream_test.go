package p3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/donut/engine/core"
)

func TestStreamPrimitives(t *testing.T) {
	s := NewStream([]byte{
		0x01,
		0x02, 0x01,
		0xFE, 0xFF,
		0x78, 0x56, 0x34, 0x12,
		0x00, 0x00, 0x80, 0x3F,
	})

	u8, err := s.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u8)

	u16, err := s.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	i16, err := s.ReadI16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	u32, err := s.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)

	f32, err := s.ReadF32()
	require.NoError(t, err)
	assert.Equal(t, float32(1), f32)

	assert.Zero(t, s.Remaining())
}

func TestStreamStrings(t *testing.T) {
	s := NewStream([]byte{
		'a', 'b', 0, 0,
		'h', 'i', 0,
		5, 'w', 'o', 'r', 'l', 0,
		'T', 'E', 'X', 0,
	})

	fixed, err := s.ReadFixedString(4)
	require.NoError(t, err)
	assert.Equal(t, "ab", fixed)

	cstr, err := s.ReadCString()
	require.NoError(t, err)
	assert.Equal(t, "hi", cstr)

	pstr, err := s.ReadPString()
	require.NoError(t, err)
	assert.Equal(t, "worl", pstr)

	key, err := s.ReadFourCC()
	require.NoError(t, err)
	assert.Equal(t, "TEX", key)
}

func TestStreamOutOfBoundsLeavesPosition(t *testing.T) {
	reads := map[string]func(s *Stream) error{
		"u8":    func(s *Stream) error { _, err := s.ReadU8(); return err },
		"u16":   func(s *Stream) error { _, err := s.ReadU16(); return err },
		"u32":   func(s *Stream) error { _, err := s.ReadU32(); return err },
		"f32":   func(s *Stream) error { _, err := s.ReadF32(); return err },
		"bytes": func(s *Stream) error { _, err := s.ReadBytes(8); return err },
		"fixed": func(s *Stream) error { _, err := s.ReadFixedString(8); return err },
		"cstr":  func(s *Stream) error { _, err := s.ReadCString(); return err },
		"pstr":  func(s *Stream) error { _, err := s.ReadPString(); return err },
		"skip":  func(s *Stream) error { return s.Skip(8) },
		"neg":   func(s *Stream) error { _, err := s.ReadBytes(-1); return err },
		"seek":  func(s *Stream) error { return s.Seek(99) },
	}

	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			// One byte already consumed, then a length byte claiming 200 and no terminator.
			s := NewStream([]byte{0xAA, 200})
			_, err := s.ReadU8()
			require.NoError(t, err)

			if name == "u8" {
				require.NoError(t, s.Skip(1))
			}
			before := s.Position()

			err = read(s)
			assert.ErrorIs(t, err, core.ErrOutOfBounds)
			assert.Equal(t, before, s.Position())

			// The same position can still be read after the failure.
			if s.Remaining() > 0 {
				b, err := s.ReadU8()
				require.NoError(t, err)
				assert.Equal(t, uint8(200), b)
			}
		})
	}
}

func TestStreamEmpty(t *testing.T) {
	s := NewStream(nil)
	_, err := s.ReadU32()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.Zero(t, s.Position())
	assert.NoError(t, s.Skip(0))
}

func TestStreamReadBytesAliases(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	s := NewStream(data)
	require.NoError(t, s.Skip(1))
	b, err := s.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, b)
	assert.Equal(t, 2, cap(b))
	data[1] = 9
	assert.Equal(t, byte(9), b[0])
}
