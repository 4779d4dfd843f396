package section

import (
	"fmt"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
)

// TagHeader is the fixed 64-byte header at the start of every tag file.
//
// The engine tag at bytes 60-63 selects the revision, which in turn selects
// the byte order of every other field. Reserved bytes are kept so a decoded
// header is written back verbatim.
type TagHeader struct {
	Reserved0 [36]byte        // byte offset 0-35
	Group     format.GroupTag // byte offset 36-39
	Checksum  uint32          // byte offset 40-43
	Reserved1 [8]byte         // byte offset 48-55
	Version   uint16          // byte offset 56-57
	Revision  format.Revision // byte offset 60-63, engine tag
}

// NewTagHeader creates a header for a freshly built tag.
func NewTagHeader(group format.GroupTag, version uint16, rev format.Revision) TagHeader {
	return TagHeader{
		Group:    group,
		Version:  version,
		Revision: rev,
	}
}

// Parse parses the header from a byte slice.
//
// Returns ErrInvalidHeaderSize if data is not 64 bytes, ErrUnknownEngineTag
// for an engine tag outside the closed set, and ErrInvalidHeader when the
// header size field or the integrity bytes are wrong.
func (h *TagHeader) Parse(data []byte) error {
	if len(data) != TagHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Engine tag first, it determines the byte order of the rest.
	var tag [4]byte
	copy(tag[:], data[headerEngineOffset:])
	rev, err := format.ParseEngineTag(tag)
	if err != nil {
		return err
	}

	engine := rev.ByteOrder()

	if size := engine.Uint32(data[headerSizeOffset:]); size != TagHeaderSize {
		return fmt.Errorf("%w: header size %d", errs.ErrInvalidHeader, size)
	}
	if data[headerIntegrity0] != 0x00 || data[headerIntegrity1] != 0xFF {
		return fmt.Errorf("%w: integrity bytes %#02x %#02x", errs.ErrInvalidHeader,
			data[headerIntegrity0], data[headerIntegrity1])
	}

	copy(h.Reserved0[:], data[:headerGroupOffset])
	h.Group = format.GroupTag(engine.Uint32(data[headerGroupOffset:]))
	h.Checksum = engine.Uint32(data[headerChecksumOffset:])
	copy(h.Reserved1[:], data[headerSizeOffset+4:headerVersionOffset])
	h.Version = engine.Uint16(data[headerVersionOffset:])
	h.Revision = rev

	return nil
}

// Bytes serializes the header into a byte slice.
func (h TagHeader) Bytes() []byte {
	b := make([]byte, TagHeaderSize)

	engine := h.Revision.ByteOrder()

	copy(b[:headerGroupOffset], h.Reserved0[:])
	engine.PutUint32(b[headerGroupOffset:], uint32(h.Group))
	engine.PutUint32(b[headerChecksumOffset:], h.Checksum)
	engine.PutUint32(b[headerSizeOffset:], TagHeaderSize)
	copy(b[headerSizeOffset+4:headerVersionOffset], h.Reserved1[:])
	engine.PutUint16(b[headerVersionOffset:], h.Version)
	b[headerIntegrity0] = 0x00
	b[headerIntegrity1] = 0xFF
	tag := h.Revision.EngineTag()
	copy(b[headerEngineOffset:], tag[:])

	return b
}

// ParseTagHeader parses a TagHeader from the start of a tag file.
func ParseTagHeader(data []byte) (TagHeader, error) {
	if len(data) < TagHeaderSize {
		return TagHeader{}, errs.ErrInvalidHeaderSize
	}

	h := TagHeader{}
	if err := h.Parse(data[:TagHeaderSize]); err != nil {
		return TagHeader{}, err
	}

	return h, nil
}
