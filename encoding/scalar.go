package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
)

func (s *Stream) Uint8(v *uint8) {
	if s.decoding {
		if b := s.next(1); b != nil {
			*v = b[0]
		}

		return
	}
	if s.err == nil {
		s.buf.B = append(s.buf.B, *v)
	}
}

func (s *Stream) Int8(v *int8) {
	u := uint8(*v)
	s.Uint8(&u)
	*v = int8(u)
}

func (s *Stream) Uint16(v *uint16) {
	if s.decoding {
		if b := s.next(2); b != nil {
			*v = s.Order().Uint16(b)
		}

		return
	}
	if s.err == nil {
		s.buf.B = s.Order().AppendUint16(s.buf.B, *v)
	}
}

func (s *Stream) Int16(v *int16) {
	u := uint16(*v)
	s.Uint16(&u)
	*v = int16(u)
}

func (s *Stream) Uint32(v *uint32) {
	if s.decoding {
		if b := s.next(4); b != nil {
			*v = s.Order().Uint32(b)
		}

		return
	}
	if s.err == nil {
		s.buf.B = s.Order().AppendUint32(s.buf.B, *v)
	}
}

func (s *Stream) Int32(v *int32) {
	u := uint32(*v)
	s.Uint32(&u)
	*v = int32(u)
}

func (s *Stream) Float32(v *float32) {
	u := math.Float32bits(*v)
	s.Uint32(&u)
	*v = math.Float32frombits(u)
}

// Tag codes a four character group code.
func (s *Stream) Tag(v *format.GroupTag) {
	u := uint32(*v)
	s.Uint32(&u)
	*v = format.GroupTag(u)
}

// Skip consumes n padding bytes, or writes n zero bytes when encoding.
func (s *Stream) Skip(n int) {
	if s.decoding {
		s.next(n)
		return
	}
	if s.err == nil {
		s.buf.Zero(n)
	}
}

// Array codes len(v) raw bytes in place.
func (s *Stream) Array(v []byte) {
	if s.decoding {
		if b := s.next(len(v)); b != nil {
			copy(v, b)
		}

		return
	}
	if s.err == nil {
		s.buf.MustWrite(v)
	}
}

// Raw codes n raw bytes into a newly allocated slice. A zero length
// decodes to nil. When encoding, len(*v) must equal n.
func (s *Stream) Raw(v *[]byte, n int) {
	if s.decoding {
		b := s.next(n)
		if b == nil || n == 0 {
			return
		}
		*v = append([]byte(nil), b...)

		return
	}
	if s.err != nil {
		return
	}
	if len(*v) != n {
		s.FailAt(fmt.Errorf("%w: have %d bytes, declared %d", errs.ErrLengthOverflow, len(*v), n))
		return
	}
	s.buf.MustWrite(*v)
}
