package ot

import (
	"fmt"
)

// Reading bytes from a font's binary representation

// Widths of the fixed-size fields of the TrueType binary format.
const (
	sizeUint8  = 1
	sizeUint16 = 2
	sizeUint32 = 4
	sizeTag    = 4
)

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data.
// We use it throughout this module to read the font's binary data. All offsets
// are absolute with respect to the start of the segment.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset > len(b)-n {
		return nil, boundsError(offset, n, len(b))
	}
	return b[offset : offset+n], nil
}

// u8 returns the byte in b at offset i.
func (b binarySegm) u8(i int) (uint8, error) {
	buf, err := b.view(i, sizeUint8)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// u16 returns the uint16 in b at offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, sizeUint16)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// i16 returns the int16 in b at offset i.
func (b binarySegm) i16(i int) (int16, error) {
	n, err := b.u16(i)
	return int16(n), err
}

// u32 returns the uint32 in b at offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, sizeUint32)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// tag returns the 4-byte tag in b at offset i.
func (b binarySegm) tag(i int) (Tag, error) {
	buf, err := b.view(i, sizeTag)
	if err != nil {
		return 0, err
	}
	return MakeTag(buf), nil
}

func boundsError(offset, n, size int) error {
	return fmt.Errorf("%w: read of %d bytes at offset %d, buffer size is %d",
		ErrBufferBounds, n, offset, size)
}

// --- Sequential reading ----------------------------------------------------

// cursor reads consecutive fields from a binarySegm. The first failing read
// sticks: subsequent reads return 0 and the error is reported by err().
// This keeps the decoding of a sequence of fields linear without losing the
// position of the first bounds violation.
type cursor struct {
	data binarySegm
	pos  int
	e    error
}

func (c *cursor) err() error {
	return c.e
}

func (c *cursor) u8() uint8 {
	if c.e != nil {
		return 0
	}
	n, err := c.data.u8(c.pos)
	c.e = err
	c.pos += sizeUint8
	return n
}

func (c *cursor) u16() uint16 {
	if c.e != nil {
		return 0
	}
	n, err := c.data.u16(c.pos)
	c.e = err
	c.pos += sizeUint16
	return n
}

func (c *cursor) i16() int16 {
	return int16(c.u16())
}

// skip advances the cursor by n bytes. Skipping past the end of the data is
// reported as a bounds violation.
func (c *cursor) skip(n int) {
	if c.e != nil || n == 0 {
		return
	}
	if _, err := c.data.view(c.pos, n); err != nil {
		c.e = err
		return
	}
	c.pos += n
}
