package encoding

import (
	"bytes"
	"fmt"

	"github.com/arloliu/halotag/errs"
)

// FixedString codes a null padded string occupying width bytes. Decoding
// trims at the first null. Encoding rejects strings that leave no room for
// the terminating null rather than truncating them.
func (s *Stream) FixedString(v *string, width int) {
	if s.decoding {
		b := s.next(width)
		if b == nil {
			return
		}
		if i := bytes.IndexByte(b, 0); i >= 0 {
			b = b[:i]
		}
		*v = s.ctx.DecodeString(b)

		return
	}
	if s.err != nil {
		return
	}

	b, err := s.ctx.EncodeString(*v)
	if err != nil {
		s.FailAt(err)
		return
	}
	if len(b) > width-1 {
		s.FailAt(fmt.Errorf("%w: %q is %d bytes, field holds %d", errs.ErrStringTooLong, *v, len(b), width-1))
		return
	}
	s.buf.MustWrite(b)
	s.buf.Zero(width - len(b))
}

// String codes a variable length string of n bytes, followed by a null byte
// when terminated is set. When encoding, n must be the EncodedLen of *v.
func (s *Stream) String(v *string, n int, terminated bool) {
	if s.decoding {
		b := s.next(n)
		if b == nil {
			return
		}
		if terminated {
			z := s.next(1)
			if z == nil {
				return
			}
			if z[0] != 0 {
				s.FailAt(errs.ErrMissingTerminator)
				return
			}
		}
		*v = s.ctx.DecodeString(b)

		return
	}
	if s.err != nil {
		return
	}

	b, err := s.ctx.EncodeString(*v)
	if err != nil {
		s.FailAt(err)
		return
	}
	if len(b) != n {
		s.FailAt(fmt.Errorf("%w: %q is %d bytes, declared %d", errs.ErrLengthOverflow, *v, len(b), n))
		return
	}
	s.buf.MustWrite(b)
	if terminated {
		s.buf.Zero(1)
	}
}

// EncodedLen returns the length of v in the context charmap. An unencodable
// string fails the stream and returns 0.
func (s *Stream) EncodedLen(v string) int {
	b, err := s.ctx.EncodeString(v)
	if err != nil {
		s.FailAt(err)
		return 0
	}

	return len(b)
}
