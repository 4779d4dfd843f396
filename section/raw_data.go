package section

import "github.com/arloliu/halotag/encoding"

// RawData describes an opaque payload (pixels, samples, mouth data) stored
// out of line. The payload is copied verbatim in both directions.
type RawData struct {
	Flags      uint32
	FileOffset uint32
	Pointer    uint32
	Handle     uint32
	Data       []byte
}

// Header codes the fixed 20 bytes and returns the payload size.
func (r *RawData) Header(s *encoding.Stream) int {
	n := int32(len(r.Data)) //nolint:gosec

	s.Int32(&n)
	s.Uint32(&r.Flags)
	s.Uint32(&r.FileOffset)
	s.Uint32(&r.Pointer)
	s.Uint32(&r.Handle)

	if !s.CheckLength(int(n), 1) {
		return 0
	}

	return int(n)
}

// Payload codes the out of line payload of size n.
func (r *RawData) Payload(s *encoding.Stream, n int) {
	s.Raw(&r.Data, n)
}
