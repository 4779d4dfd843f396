package section

import (
	"fmt"
	"math"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/endian"
	"github.com/arloliu/halotag/errs"
)

// StringID is an interned H2 name. Its fixed part is a reserved short and a
// length that is always big-endian, even inside little-endian tags. The name
// follows out of line without a terminator.
type StringID struct {
	Reserved uint16
	Name     string
}

// Header codes the fixed 4 bytes and returns the name length.
func (id *StringID) Header(s *encoding.Stream) int {
	var n uint16
	if !s.Decoding() {
		l := s.EncodedLen(id.Name)
		if l > math.MaxUint16 {
			s.FailAt(fmt.Errorf("%w: string id of %d bytes", errs.ErrStringTooLong, l))
			return 0
		}
		n = uint16(l)
	}

	s.Uint16(&id.Reserved)
	s.WithOrder(endian.GetBigEndianEngine(), func() {
		s.Uint16(&n)
	})

	return int(n)
}

// Value codes the out of line name of length n.
func (id *StringID) Value(s *encoding.Stream, n int) {
	s.String(&id.Name, n, false)
}
