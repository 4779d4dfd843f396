package encoding

import (
	"fmt"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/internal/pool"
)

// MaxTextLength is the maximum length of a length-prefixed string.
// The uint16 length prefix allows up to 65535 bytes; tag paths are far shorter.
const MaxTextLength = 0xFFFF

// VarStringEncoder encodes a table of strings, each prefixed with a uint16
// length in the byte order of the context. It is used for the path table of
// tag archives.
type VarStringEncoder struct {
	buf   *pool.ByteBuffer
	ctx   *Context
	count int
}

// NewVarStringEncoder creates a string table encoder backed by a pooled buffer.
func NewVarStringEncoder(ctx *Context) *VarStringEncoder {
	return &VarStringEncoder{
		ctx: ctx,
		buf: pool.GetTagBuffer(),
	}
}

// Write encodes a single string.
func (e *VarStringEncoder) Write(text string) error {
	b, err := e.ctx.EncodeString(text)
	if err != nil {
		return err
	}
	if len(b) > MaxTextLength {
		return fmt.Errorf("text length %d exceeds maximum %d", len(b), MaxTextLength)
	}

	e.buf.Grow(2 + len(b))
	e.buf.B = e.ctx.Order().AppendUint16(e.buf.B, uint16(len(b))) //nolint:gosec
	e.buf.MustWrite(b)
	e.count++

	return nil
}

// WriteSlice encodes texts in order.
func (e *VarStringEncoder) WriteSlice(texts []string) error {
	for _, text := range texts {
		if err := e.Write(text); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the encoded table. The slice is shared with the encoder.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings encoded.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the total size of the encoded table in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool. The encoder must not be used afterwards.
func (e *VarStringEncoder) Reset() {
	if e.buf != nil {
		pool.PutTagBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarStringDecoder decodes tables written by VarStringEncoder.
type VarStringDecoder struct {
	ctx *Context
}

// NewVarStringDecoder creates a string table decoder.
func NewVarStringDecoder(ctx *Context) VarStringDecoder {
	return VarStringDecoder{ctx: ctx}
}

// Decode decodes exactly count strings from data.
func (d VarStringDecoder) Decode(data []byte, count int) ([]string, error) {
	out := make([]string, 0, count)
	offset := 0
	for range count {
		if len(data)-offset < 2 {
			return nil, errs.Truncated(offset)
		}
		n := int(d.ctx.Order().Uint16(data[offset:]))
		offset += 2
		if len(data)-offset < n {
			return nil, errs.Truncated(offset)
		}
		out = append(out, d.ctx.DecodeString(data[offset:offset+n]))
		offset += n
	}

	return out, nil
}
