package archive

import (
	"fmt"

	"github.com/arloliu/halotag/endian"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/internal/hash"
)

const (
	// Magic identifies an archive.
	Magic = "HTAR"
	// Version is the archive layout version written by Writer.
	Version = 1

	HeaderSize = 32
	EntrySize  = 48
	DigestSize = 16
)

var byteOrder = endian.GetLittleEndianEngine()

// Header is the fixed archive header.
type Header struct {
	Version         uint16
	Flags           uint16
	EntryCount      uint32
	IndexOffset     uint32
	PathTableOffset uint32
	PathTableSize   uint32
	DataOffset      uint32
}

func (h Header) bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b, Magic)
	byteOrder.PutUint16(b[4:], h.Version)
	byteOrder.PutUint16(b[6:], h.Flags)
	byteOrder.PutUint32(b[8:], h.EntryCount)
	byteOrder.PutUint32(b[12:], h.IndexOffset)
	byteOrder.PutUint32(b[16:], h.PathTableOffset)
	byteOrder.PutUint32(b[20:], h.PathTableSize)
	byteOrder.PutUint32(b[24:], h.DataOffset)

	return b
}

func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidArchive, len(data))
	}
	if string(data[:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidArchive, data[:4])
	}

	h := Header{
		Version:         byteOrder.Uint16(data[4:]),
		Flags:           byteOrder.Uint16(data[6:]),
		EntryCount:      byteOrder.Uint32(data[8:]),
		IndexOffset:     byteOrder.Uint32(data[12:]),
		PathTableOffset: byteOrder.Uint32(data[16:]),
		PathTableSize:   byteOrder.Uint32(data[20:]),
		DataOffset:      byteOrder.Uint32(data[24:]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidArchive, h.Version)
	}

	size := uint64(len(data))
	indexEnd := uint64(h.IndexOffset) + uint64(h.EntryCount)*EntrySize
	pathEnd := uint64(h.PathTableOffset) + uint64(h.PathTableSize)
	switch {
	case h.IndexOffset < HeaderSize || indexEnd > size:
		return Header{}, fmt.Errorf("%w: index out of range", errs.ErrInvalidArchive)
	case uint64(h.PathTableOffset) < indexEnd || pathEnd > size:
		return Header{}, fmt.Errorf("%w: path table out of range", errs.ErrInvalidArchive)
	case uint64(h.DataOffset) < pathEnd || uint64(h.DataOffset) > size:
		return Header{}, fmt.Errorf("%w: data offset out of range", errs.ErrInvalidArchive)
	}

	return h, nil
}

// Entry describes one archived tag.
type Entry struct {
	Path        string
	ID          uint64
	Group       format.GroupTag
	Compression format.CompressionType
	Size        uint32
	StoredSize  uint32
	Offset      uint64
	Digest      [DigestSize]byte
}

func (e Entry) appendTo(b []byte) []byte {
	b = byteOrder.AppendUint64(b, e.ID)
	b = byteOrder.AppendUint32(b, uint32(e.Group))
	b = append(b, byte(e.Compression), 0, 0, 0)
	b = byteOrder.AppendUint32(b, e.Size)
	b = byteOrder.AppendUint32(b, e.StoredSize)
	b = byteOrder.AppendUint64(b, e.Offset)

	return append(b, e.Digest[:]...)
}

func parseEntry(b []byte) Entry {
	e := Entry{
		ID:          byteOrder.Uint64(b[0:]),
		Group:       format.GroupTag(byteOrder.Uint32(b[8:])),
		Compression: format.CompressionType(b[12]),
		Size:        byteOrder.Uint32(b[16:]),
		StoredSize:  byteOrder.Uint32(b[20:]),
		Offset:      byteOrder.Uint64(b[24:]),
	}
	copy(e.Digest[:], b[32:48])

	return e
}

// PathID returns the ID an entry for path and group is indexed under.
func PathID(path string, group format.GroupTag) uint64 {
	return hash.PathID(path, group.String())
}

// Name returns the file name of the entry: its path with the group code as
// extension.
func (e Entry) Name() string {
	return e.Path + "." + e.Group.String()
}
