package format

import (
	"fmt"

	"github.com/arloliu/halotag/endian"
	"github.com/arloliu/halotag/errs"
)

type (
	Engine          uint8
	Revision        uint8
	CompressionType uint8
)

const (
	EngineH1 Engine = 0x1 // EngineH1 is the first generation engine (big-endian tags).
	EngineH2 Engine = 0x2 // EngineH2 is the second generation engine (little-endian tags).
)

const (
	RevisionH1       Revision = 0x1 // RevisionH1 is the only H1 layout, engine tag "blam".
	RevisionH2Legacy Revision = 0x2 // RevisionH2Legacy is the pre-release H2 layout, engine tag "LAMB".
	RevisionH2Vista  Revision = 0x3 // RevisionH2Vista is the H2 Vista layout, engine tag "MLAB".
	RevisionH2Retail Revision = 0x4 // RevisionH2Retail is the retail H2 layout, engine tag "BLM!".
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Revisions lists every known revision in engine tag order.
var Revisions = []Revision{RevisionH1, RevisionH2Legacy, RevisionH2Vista, RevisionH2Retail}

var engineTags = map[Revision][4]byte{
	RevisionH1:       {'b', 'l', 'a', 'm'},
	RevisionH2Legacy: {'L', 'A', 'M', 'B'},
	RevisionH2Vista:  {'M', 'L', 'A', 'B'},
	RevisionH2Retail: {'B', 'L', 'M', '!'},
}

// ParseEngineTag maps the raw engine tag of a tag header to its revision.
// Tags outside the closed set return ErrUnknownEngineTag.
func ParseEngineTag(tag [4]byte) (Revision, error) {
	for _, rev := range Revisions {
		if engineTags[rev] == tag {
			return rev, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownEngineTag, tag[:])
}

// EngineTag returns the raw header engine tag of the revision.
func (r Revision) EngineTag() [4]byte {
	return engineTags[r]
}

// Valid reports whether r is a known revision.
func (r Revision) Valid() bool {
	_, ok := engineTags[r]
	return ok
}

// Engine returns the engine generation the revision belongs to.
func (r Revision) Engine() Engine {
	if r == RevisionH1 {
		return EngineH1
	}

	return EngineH2
}

// ByteOrder returns the byte order of every field in a tag of this revision.
func (r Revision) ByteOrder() endian.EndianEngine {
	if r.Engine() == EngineH1 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// TerminatedNames reports whether deferred tag reference names carry a
// trailing null byte.
func (r Revision) TerminatedNames() bool {
	return r != RevisionH2Retail
}

// BlockHeaders reports whether every non-empty block is preceded by a
// "tbfd" block header.
func (r Revision) BlockHeaders() bool {
	return r == RevisionH2Retail
}

func (r Revision) String() string {
	tag, ok := engineTags[r]
	if !ok {
		return "Unknown"
	}

	return string(tag[:])
}

func (e Engine) String() string {
	switch e {
	case EngineH1:
		return "H1"
	case EngineH2:
		return "H2"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-sensitive compression name to its type.
func ParseCompressionType(name string) (CompressionType, error) {
	for c := CompressionNone; c <= CompressionLZ4; c++ {
		if c.String() == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
}
