package tag

import (
	"errors"

	"github.com/arloliu/halotag/internal/options"
	"golang.org/x/text/encoding/charmap"
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithReporter sets the sink for decode warnings. The default is Discard.
func WithReporter(r Reporter) DecoderOption {
	return options.New(func(d *Decoder) error {
		if r == nil {
			return errors.New("nil reporter")
		}
		d.reporter = r

		return nil
	})
}

// WithCharmap sets the character set of tag strings for decoding.
func WithCharmap(cm *charmap.Charmap) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.charmap = cm
	})
}

// WithEncoderCharmap sets the character set of tag strings for encoding.
func WithEncoderCharmap(cm *charmap.Charmap) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.charmap = cm
	})
}

// WithChecksum makes the encoder replace the header checksum with the
// CRC-32 of the encoded body instead of writing the stored value.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.checksum = enabled
	})
}
