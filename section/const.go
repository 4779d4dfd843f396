package section

import "github.com/arloliu/halotag/format"

// Record sizes in bytes.
const (
	TagHeaderSize   = 64
	BlockFieldSize  = 12
	BlockHeaderSize = 12
	TagRefSize      = 16
	RawDataSize     = 20
	StringIDSize    = 4
)

// Tag header layout.
const (
	headerGroupOffset    = 36
	headerChecksumOffset = 40
	headerSizeOffset     = 44
	headerVersionOffset  = 56
	headerIntegrity0     = 58
	headerIntegrity1     = 59
	headerEngineOffset   = 60
)

// BlockSignature starts every retail block header.
const BlockSignature format.GroupTag = 't'<<24 | 'b'<<16 | 'f'<<8 | 'd'
