package encoding

import (
	"fmt"

	"github.com/arloliu/halotag/endian"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/internal/pool"
)

// Stream is a bidirectional field codec. A layout is written once as a
// sequence of Stream calls taking pointers to the fields; in decode mode the
// calls fill the fields from the data, in encode mode they append the fields
// to an output buffer.
//
// Errors are sticky: after the first failure every call is a no-op and Err
// reports the failure.
type Stream struct {
	ctx      *Context
	decoding bool
	data     []byte
	pos      int
	buf      *pool.ByteBuffer
	err      error
}

// NewDecodeStream creates a stream that decodes data.
func NewDecodeStream(data []byte, ctx *Context) *Stream {
	return &Stream{ctx: ctx, decoding: true, data: data}
}

// NewEncodeStream creates a stream that encodes into a pooled buffer.
// Call Release once the result of Bytes is no longer used.
func NewEncodeStream(ctx *Context) *Stream {
	return &Stream{ctx: ctx, buf: pool.GetTagBuffer()}
}

// Decoding reports whether the stream decodes.
func (s *Stream) Decoding() bool {
	return s.decoding
}

// Context returns the per-call context of the stream.
func (s *Stream) Context() *Context {
	return s.ctx
}

// Order returns the current byte order.
func (s *Stream) Order() endian.EndianEngine {
	return s.ctx.Order()
}

// WithOrder runs fn with order as the current byte order and restores the
// previous order afterwards.
func (s *Stream) WithOrder(order endian.EndianEngine, fn func()) {
	s.ctx.PushOrder(order)
	defer s.ctx.PopOrder()
	fn()
}

// Err returns the first error encountered by the stream.
func (s *Stream) Err() error {
	return s.err
}

// Fail records err unless the stream already failed.
func (s *Stream) Fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// FailAt records cause wrapped in a DataError at the current offset.
func (s *Stream) FailAt(cause error) {
	s.Fail(errs.DataError{Offset: s.Offset(), Cause: cause})
}

// Offset returns the number of bytes consumed or produced so far.
func (s *Stream) Offset() int {
	if s.decoding {
		return s.pos
	}

	return s.buf.Len()
}

// Remaining returns the number of undecoded bytes. It is zero when encoding.
func (s *Stream) Remaining() int {
	if !s.decoding {
		return 0
	}

	return len(s.data) - s.pos
}

// Bytes returns the encoded data. The slice is owned by the stream until
// Release is called.
func (s *Stream) Bytes() []byte {
	if s.decoding {
		return nil
	}

	return s.buf.Bytes()
}

// Release returns the encode buffer to the pool.
func (s *Stream) Release() {
	if s.buf != nil {
		pool.PutTagBuffer(s.buf)
		s.buf = nil
	}
}

// Reserve writes n zero bytes and returns their offset for a later Patch.
// It returns -1 when decoding or after a failure.
func (s *Stream) Reserve(n int) int {
	if s.decoding || s.err != nil {
		return -1
	}

	return s.buf.Reserve(n)
}

// PatchUint32 overwrites a reserved uint32 in the current byte order.
func (s *Stream) PatchUint32(offset int, v uint32) {
	if s.decoding || s.err != nil || offset < 0 {
		return
	}

	var b [4]byte
	s.Order().PutUint32(b[:], v)
	s.buf.Patch(offset, b[:])
}

// next consumes n bytes in decode mode.
func (s *Stream) next(n int) []byte {
	if s.err != nil {
		return nil
	}
	if n < 0 {
		s.FailAt(fmt.Errorf("%w: %d", errs.ErrNegativeLength, n))
		return nil
	}
	if n > len(s.data)-s.pos {
		s.Fail(errs.Truncated(s.pos))
		return nil
	}

	b := s.data[s.pos : s.pos+n : s.pos+n]
	s.pos += n

	return b
}

// CheckLength fails the stream when a decoded element count or byte length
// is negative or larger than the remaining data could hold at minSize bytes
// per unit.
func (s *Stream) CheckLength(n int, minSize int) bool {
	if s.err != nil {
		return false
	}
	if n < 0 {
		s.FailAt(fmt.Errorf("%w: %d", errs.ErrNegativeLength, n))
		return false
	}
	if s.decoding && minSize > 0 && n > s.Remaining()/minSize {
		s.FailAt(fmt.Errorf("%w: %d x %d bytes", errs.ErrLengthOverflow, n, minSize))
		return false
	}

	return true
}

// WrapErr replaces the recorded error with fn(err). It does nothing when
// the stream has not failed.
func (s *Stream) WrapErr(fn func(error) error) {
	if s.err != nil {
		s.err = fn(s.err)
	}
}
