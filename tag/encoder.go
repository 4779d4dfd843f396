package tag

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/internal/options"
	"github.com/arloliu/halotag/section"
	"golang.org/x/text/encoding/charmap"
)

// Encoder encodes asset trees into tag files. It is safe for concurrent use.
type Encoder struct {
	registry *Registry
	charmap  *charmap.Charmap
	checksum bool
}

// NewEncoder creates an encoder that validates revisions through registry.
func NewEncoder(registry *Registry, opts ...EncoderOption) (*Encoder, error) {
	if registry == nil {
		return nil, errors.New("nil registry")
	}

	e := &Encoder{
		registry: registry,
		charmap:  encoding.DefaultCharmap,
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode encodes asset into a newly allocated byte slice.
func (e *Encoder) Encode(asset Asset) ([]byte, error) {
	if asset == nil {
		return nil, errs.ErrNilAsset
	}

	header := *asset.Header()
	if _, err := e.registry.Lookup(header.Group, header.Revision); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	ctx := encoding.NewContext(header.Revision.ByteOrder())
	ctx.SetCharmap(e.charmap)

	es := encoding.NewEncodeStream(ctx)
	defer es.Release()

	es.Array(header.Bytes())

	s := NewStream(es, header.Revision)
	s.Root(asset)
	if err := s.Finish(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", header.Group, err)
	}

	out := append([]byte(nil), es.Bytes()...)
	if e.checksum {
		header.Checksum = crc32.ChecksumIEEE(out[section.TagHeaderSize:])
		copy(out, header.Bytes())
	}

	return out, nil
}

// EncodeTo encodes asset and writes it to w.
func (e *Encoder) EncodeTo(w io.Writer, asset Asset) error {
	data, err := e.Encode(asset)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
