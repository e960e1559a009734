package core

import (
	"errors"
)

var (
	// ErrOutOfBounds is returned when a read would pass the end of a buffer.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrCorruptChunk is returned when declared chunk sizes disagree with the nested content.
	ErrCorruptChunk = errors.New("corrupt chunk")
	// ErrDecode is returned when a known chunk type does not match its expected layout.
	ErrDecode = errors.New("decode error")
	// ErrNotFound is returned when a named resource is absent.
	ErrNotFound = errors.New("not found")
	// ErrUnknownAsset is returned when an asset has no table in the resource manager.
	ErrUnknownAsset = errors.New("unknown asset")
)
