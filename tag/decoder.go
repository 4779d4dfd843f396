package tag

import (
	"errors"
	"fmt"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/internal/options"
	"github.com/arloliu/halotag/section"
	"golang.org/x/text/encoding/charmap"
)

// Decoder decodes tag files into asset trees. A Decoder holds no per-call
// state and is safe for concurrent use.
type Decoder struct {
	registry *Registry
	reporter Reporter
	charmap  *charmap.Charmap
}

// NewDecoder creates a decoder that dispatches through registry.
func NewDecoder(registry *Registry, opts ...DecoderOption) (*Decoder, error) {
	if registry == nil {
		return nil, errors.New("nil registry")
	}

	d := &Decoder{
		registry: registry,
		reporter: Discard,
		charmap:  encoding.DefaultCharmap,
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode decodes a whole tag file.
//
// A fatal error returns a nil asset. Non-fatal conditions, such as bytes
// left over after the layout was fully decoded, are sent to the reporter
// and returned as warn next to the asset.
func (d *Decoder) Decode(data []byte) (asset Asset, warn error, err error) {
	header, err := section.ParseTagHeader(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decode header: %w", err)
	}

	codec, err := d.registry.Lookup(header.Group, header.Revision)
	if err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	asset = codec.New()
	*asset.Header() = header

	ctx := encoding.NewContext(header.Revision.ByteOrder())
	ctx.SetCharmap(d.charmap)

	es := encoding.NewDecodeStream(data, ctx)
	es.Skip(section.TagHeaderSize)

	s := NewStream(es, header.Revision)
	s.Root(asset)
	if err := s.Finish(); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", header.Group, err)
	}

	var warnings errs.Warnings
	if rem := es.Remaining(); rem > 0 {
		w := errs.TrailingBytesError{Remaining: rem}
		d.reporter.Report(SeverityWarning, fmt.Sprintf("%s: %s", header.Group, w.Error()))
		warnings = warnings.Append(w)
	}

	return asset, warnings.Return(), nil
}
