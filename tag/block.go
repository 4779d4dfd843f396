package tag

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
)

// Block is a repeated element array. Address and Definition are preserved
// opaque values; Version is the retail block header version and is only
// kept for non-empty blocks.
type Block[T any] struct {
	Address    uint32
	Definition uint32
	Version    int32
	Elements   []T
}

// Len returns the number of elements.
func (b *Block[T]) Len() int {
	return len(b.Elements)
}

// Append appends elements to the block.
func (b *Block[T]) Append(elems ...T) {
	b.Elements = append(b.Elements, elems...)
}

// BlockOf codes the block descriptor of b and queues its elements.
func BlockOf[T any, P interface {
	*T
	Element
}](s *Stream, b *Block[T]) {
	field := section.BlockField{
		Count:      int32(len(b.Elements)), //nolint:gosec
		Address:    b.Address,
		Definition: b.Definition,
	}
	field.Fields(s.Stream)
	if s.Err() != nil {
		return
	}

	count := int(field.Count)
	if s.Decoding() {
		if !s.CheckLength(count, elementSize[T, P](s.rev)) {
			return
		}
		b.Address = field.Address
		b.Definition = field.Definition
		b.Version = 0
		b.Elements = nil
		if count > 0 {
			b.Elements = make([]T, count)
		}
	}
	s.declared += count

	if count > 0 {
		s.pending.blocks = append(s.pending.blocks, func() {
			resolveBlock[T, P](s, b)
		})
	}
}

func resolveBlock[T any, P interface {
	*T
	Element
}](s *Stream, b *Block[T]) {
	if s.Err() != nil || len(b.Elements) == 0 {
		return
	}

	var hdr section.BlockHeader
	sizeOffset := -1
	headers := s.rev.BlockHeaders()
	if headers {
		hdr.Version = b.Version
		sizeOffset = hdr.Fields(s.Stream)
		if s.Decoding() {
			b.Version = hdr.Version
		}
	}

	p := &pending{}
	outer := s.pending
	s.pending = p
	defer func() { s.pending = outer }()

	for i := range b.Elements {
		start := s.Offset()
		P(&b.Elements[i]).Fields(s)
		if err := s.Err(); err != nil {
			s.WrapErr(func(err error) error {
				return errs.ElementError{Block: fmt.Sprintf("%T", b.Elements[i]), Index: i, Cause: err}
			})

			return
		}
		s.materialized++

		if i == 0 && headers {
			size := s.Offset() - start
			if s.Decoding() && size != int(hdr.ElementSize) {
				s.FailAt(fmt.Errorf("%w: %T element is %d bytes, header declares %d",
					errs.ErrBlockHeader, b.Elements[i], size, hdr.ElementSize))

				return
			}
			s.PatchUint32(sizeOffset, uint32(size)) //nolint:gosec
		}
	}

	s.pending = outer
	p.resolve()
}

type elementSizeKey struct {
	typ reflect.Type
	rev format.Revision
}

// elementSizes caches elementSize results by element type and revision.
var elementSizes sync.Map

// elementSize returns the size of the fixed fields of one T under rev,
// measured by encoding a zero element. Queued names, payloads and blocks are
// not part of it, so it is a lower bound for any decoded element.
func elementSize[T any, P interface {
	*T
	Element
}](rev format.Revision) int {
	key := elementSizeKey{typ: reflect.TypeFor[T](), rev: rev}
	if v, ok := elementSizes.Load(key); ok {
		return v.(int)
	}

	es := encoding.NewEncodeStream(encoding.NewContext(rev.ByteOrder()))
	defer es.Release()

	var zero T
	s := NewStream(es, rev)
	s.pending = &pending{}
	P(&zero).Fields(s)

	size := es.Offset()
	if es.Err() != nil || size < 1 {
		size = 1
	}
	elementSizes.Store(key, size)

	return size
}
