package section

import (
	"fmt"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/errs"
)

// BlockField is the in-place descriptor of a tag block. The elements follow
// later in the file. Address and Definition are runtime values of the
// engine's tools and are kept only to reproduce the original bytes.
type BlockField struct {
	Count      int32
	Address    uint32
	Definition uint32
}

// Fields codes the descriptor.
func (b *BlockField) Fields(s *encoding.Stream) {
	s.Int32(&b.Count)
	s.Uint32(&b.Address)
	s.Uint32(&b.Definition)
}

// BlockHeader precedes the elements of every non-empty block in retail H2
// tags. ElementSize is the size of one element's fixed fields.
type BlockHeader struct {
	Version     int32
	ElementSize int32
}

// Fields codes the header. When encoding, ElementSize is left as zero and
// its offset is returned so it can be patched once the first element is
// written; when decoding the returned offset is -1.
func (h *BlockHeader) Fields(s *encoding.Stream) int {
	sig := BlockSignature
	s.Tag(&sig)
	if s.Decoding() && s.Err() == nil && sig != BlockSignature {
		s.FailAt(fmt.Errorf("%w: signature %q", errs.ErrBlockHeader, sig.String()))
		return -1
	}
	s.Int32(&h.Version)

	if s.Decoding() {
		s.Int32(&h.ElementSize)
		return -1
	}

	return s.Reserve(4)
}
