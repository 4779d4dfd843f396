// Package tagtest assembles tag files byte by byte so decoders can be
// checked against layouts written out by hand instead of by the encoder.
package tagtest

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
)

// Fixture is a tag under construction. Offsets passed to the setters are
// relative to the start of the body, right after the 64 byte header.
type Fixture struct {
	rev   format.Revision
	order binary.ByteOrder
	buf   []byte
}

// New starts a tag with a zeroed body of size bytes.
func New(group format.GroupTag, version uint16, rev format.Revision, size int) *Fixture {
	var order binary.ByteOrder = binary.LittleEndian
	if rev.Engine() == format.EngineH1 {
		order = binary.BigEndian
	}

	f := &Fixture{rev: rev, order: order, buf: section.NewTagHeader(group, version, rev).Bytes()}
	f.Grow(size)

	return f
}

// Bytes returns the assembled tag.
func (f *Fixture) Bytes() []byte {
	return f.buf
}

// Len returns the body size so far.
func (f *Fixture) Len() int {
	return len(f.buf) - section.TagHeaderSize
}

// Grow appends n zero bytes and returns their offset.
func (f *Fixture) Grow(n int) int {
	off := f.Len()
	f.buf = append(f.buf, make([]byte, n)...)

	return off
}

// Append appends raw bytes.
func (f *Fixture) Append(b ...byte) *Fixture {
	f.buf = append(f.buf, b...)
	return f
}

// Path appends an out of line tag path, NUL terminated unless the revision
// stores bare names.
func (f *Fixture) Path(p string) *Fixture {
	f.Append([]byte(p)...)
	if f.rev.TerminatedNames() {
		f.Append(0)
	}

	return f
}

// Elements appends room for count elements of size bytes and returns the
// offset of the first one. Retail tags get the block header in front.
func (f *Fixture) Elements(count, size int) int {
	if f.rev.BlockHeaders() {
		off := f.Grow(section.BlockHeaderSize)
		f.Uint32(off, uint32(section.BlockSignature))
		f.Int32(off+4, 0)
		f.Int32(off+8, int32(size)) //nolint:gosec
	}

	return f.Grow(count * size)
}

func (f *Fixture) at(off int) []byte {
	return f.buf[section.TagHeaderSize+off:]
}

func (f *Fixture) Int8(off int, v int8) *Fixture {
	f.at(off)[0] = byte(v)
	return f
}

func (f *Fixture) Uint16(off int, v uint16) *Fixture {
	f.order.PutUint16(f.at(off), v)
	return f
}

func (f *Fixture) Int16(off int, v int16) *Fixture {
	return f.Uint16(off, uint16(v)) //nolint:gosec
}

func (f *Fixture) Uint32(off int, v uint32) *Fixture {
	f.order.PutUint32(f.at(off), v)
	return f
}

func (f *Fixture) Int32(off int, v int32) *Fixture {
	return f.Uint32(off, uint32(v)) //nolint:gosec
}

func (f *Fixture) Float32(off int, v float32) *Fixture {
	return f.Uint32(off, math.Float32bits(v))
}

// Floats writes consecutive float32 values starting at off.
func (f *Fixture) Floats(off int, vs ...float32) *Fixture {
	for i, v := range vs {
		f.Float32(off+4*i, v)
	}

	return f
}

// Text copies s into a fixed string field.
func (f *Fixture) Text(off int, s string) *Fixture {
	copy(f.at(off), s)
	return f
}

// Ref writes a tag reference descriptor whose path has n bytes.
func (f *Fixture) Ref(off int, group format.GroupTag, n int) *Fixture {
	return f.Uint32(off, uint32(group)).Int32(off+8, int32(n)).Int32(off+12, -1) //nolint:gosec
}

// Data writes a raw data descriptor for an n byte payload.
func (f *Fixture) Data(off int, n int) *Fixture {
	return f.Int32(off, int32(n)) //nolint:gosec
}

// Block writes a block descriptor of count elements.
func (f *Fixture) Block(off int, count int) *Fixture {
	return f.Int32(off, int32(count)) //nolint:gosec
}

// StringID writes a string id descriptor for an n byte name. The length is
// big-endian in every revision.
func (f *Fixture) StringID(off int, n int) *Fixture {
	binary.BigEndian.PutUint16(f.at(off+2), uint16(n)) //nolint:gosec
	return f
}
