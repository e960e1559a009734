package p3d

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/spaghettifunk/donut/engine/core"
)

// Stream is a bounds-checked little-endian reader over an in-memory
// buffer. A failed read never moves the position.
type Stream struct {
	data []byte
	pos  int
}

func NewStream(data []byte) *Stream {
	return &Stream{data: data}
}

func (s *Stream) Len() int {
	return len(s.data)
}

func (s *Stream) Position() int {
	return s.pos
}

func (s *Stream) Remaining() int {
	return len(s.data) - s.pos
}

// Seek moves to an absolute position within the buffer.
func (s *Stream) Seek(pos int) error {
	if pos < 0 || pos > len(s.data) {
		return fmt.Errorf("%w: seek to %d in buffer of %d bytes", core.ErrOutOfBounds, pos, len(s.data))
	}
	s.pos = pos
	return nil
}

func (s *Stream) Skip(n int) error {
	_, err := s.take(n)
	return err
}

// take returns the next n bytes without copying and advances past them.
func (s *Stream) take(n int) ([]byte, error) {
	if n < 0 || n > s.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", core.ErrOutOfBounds, n, s.pos, s.Remaining())
	}
	b := s.data[s.pos : s.pos+n : s.pos+n]
	s.pos += n
	return b, nil
}

func (s *Stream) ReadU8() (uint8, error) {
	b, err := s.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Stream) ReadU16() (uint16, error) {
	b, err := s.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (s *Stream) ReadI16() (int16, error) {
	v, err := s.ReadU16()
	return int16(v), err
}

func (s *Stream) ReadU32() (uint32, error) {
	b, err := s.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (s *Stream) ReadF32() (float32, error) {
	v, err := s.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadBytes returns a sub-slice of the underlying buffer.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	return s.take(n)
}

// ReadFixedString reads n bytes and drops everything from the first NUL.
func (s *Stream) ReadFixedString(n int) (string, error) {
	b, err := s.take(n)
	if err != nil {
		return "", err
	}
	return trimNul(b), nil
}

// ReadCString reads up to and including a NUL terminator.
func (s *Stream) ReadCString() (string, error) {
	idx := bytes.IndexByte(s.data[s.pos:], 0)
	if idx < 0 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", core.ErrOutOfBounds, s.pos)
	}
	str := string(s.data[s.pos : s.pos+idx])
	s.pos += idx + 1
	return str, nil
}

// ReadPString reads a string prefixed by a one byte length. Pure3D pads
// these with NULs to keep chunks aligned, the padding is dropped.
func (s *Stream) ReadPString() (string, error) {
	start := s.pos
	n, err := s.ReadU8()
	if err != nil {
		return "", err
	}
	str, err := s.ReadFixedString(int(n))
	if err != nil {
		s.pos = start
		return "", err
	}
	return str, nil
}

// ReadFourCC reads a four byte parameter key such as "TEX" or "ROT".
func (s *Stream) ReadFourCC() (string, error) {
	return s.ReadFixedString(4)
}

func trimNul(b []byte) string {
	if idx := bytes.IndexByte(b, 0); idx >= 0 {
		b = b[:idx]
	}
	return string(b)
}
