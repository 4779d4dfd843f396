package section

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/internal/hash"
)

// TagRef is a reference to another tag. The path is stored out of line,
// after the fixed fields of the element that holds the reference. An empty
// path is a null reference and has no out of line data.
type TagRef struct {
	Group   format.GroupTag
	Pointer uint32
	Index   int32
	Path    string
}

// Header codes the fixed 16 bytes and returns the path length.
func (r *TagRef) Header(s *encoding.Stream) int {
	var n int32
	if !s.Decoding() {
		n = int32(s.EncodedLen(r.Path)) //nolint:gosec
	}

	s.Tag(&r.Group)
	s.Uint32(&r.Pointer)
	s.Int32(&n)
	s.Int32(&r.Index)

	if !s.CheckLength(int(n), 1) {
		return 0
	}

	return int(n)
}

// Name codes the out of line path of length n.
func (r *TagRef) Name(s *encoding.Stream, n int, terminated bool) {
	s.String(&r.Path, n, terminated)
}

// IsNull reports whether the reference points nowhere.
func (r TagRef) IsNull() bool {
	return r.Path == ""
}

// ID returns the path ID of the referenced tag, the same ID tag archives use.
func (r TagRef) ID() uint64 {
	return hash.PathID(r.Path, r.Group.String())
}

func (r TagRef) String() string {
	if r.IsNull() {
		return "null"
	}

	return r.Path + "." + r.Group.String()
}
