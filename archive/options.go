package archive

import (
	"errors"
	"fmt"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/internal/options"
	"github.com/arloliu/halotag/tag"
)

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithCompression sets the compression of entries added without an explicit
// type. The default is zstd.
func WithCompression(ct format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, ct)
		}
		w.compression = ct

		return nil
	})
}

// WithEncoder sets the tag encoder used by AddAsset.
func WithEncoder(enc *tag.Encoder) WriterOption {
	return options.New(func(w *Writer) error {
		if enc == nil {
			return errors.New("nil tag encoder")
		}
		w.encoder = enc

		return nil
	})
}

// WithVerify enables or disables digest verification on Read. It is enabled
// by default.
func WithVerify(enabled bool) ReaderOption {
	return options.NoError(func(r *Reader) {
		r.verify = enabled
	})
}

// WithDecoder sets the tag decoder used by Asset.
func WithDecoder(dec *tag.Decoder) ReaderOption {
	return options.New(func(r *Reader) error {
		if dec == nil {
			return errors.New("nil tag decoder")
		}
		r.decoder = dec

		return nil
	})
}
