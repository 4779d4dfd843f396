// Package halotag reads and writes Halo tag files: the binary asset files
// of the H1 and H2 engines.
//
// A tag file is a 64-byte header followed by a body. The engine tag in the
// header selects the revision, which fixes the byte order of the body and
// the layout of every asset group. Decoding produces an asset tree: plain Go
// structs with nested blocks, tag references and payloads. Encoding the same
// tree reproduces the original file byte for byte.
//
// # Core Features
//
//   - Big-endian H1 and little-endian H2 layouts from one field description
//   - Angles stored as radians and exposed as degrees
//   - Deferred tag reference names, string IDs and payloads in file order
//   - Non-fatal warnings for bytes left after the body
//   - H1 to H2 bitmap upgrade (see the upgrade package)
//   - Compressed tag archives (see the archive package)
//
// # Basic Usage
//
// Decoding a tag file:
//
//	f, _ := os.Open(`tags\sky\clouds.bitmap`)
//	defer f.Close()
//
//	asset, err := halotag.ProcessFile(f, tag.NewSlogReporter(nil))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bitmap := asset.(*h1.Bitmap)
//
// Writing it back:
//
//	var buf bytes.Buffer
//	err = halotag.BuildAsset(&buf, bitmap)
//
// # Package Structure
//
// This package wraps the tag package with a registry holding every built-in
// asset group. For custom registries or reusable decoders, use the tag
// package directly together with h1.Register and h2.Register.
package halotag

import (
	"fmt"
	"io"

	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/h1"
	"github.com/arloliu/halotag/h2"
	"github.com/arloliu/halotag/internal/hash"
	"github.com/arloliu/halotag/tag"
)

// DefaultRegistry returns a new registry holding every built-in H1 and H2
// codec.
//
// Each call returns a fresh registry, so callers may register their own
// codecs on it without affecting other users.
func DefaultRegistry() *tag.Registry {
	r := tag.NewRegistry()
	r.MustRegister(h1.Codecs()...)
	r.MustRegister(h2.Codecs()...)

	return r
}

// ProcessFile decodes a whole tag file from r.
//
// The group and revision are taken from the header and dispatched through
// DefaultRegistry. Warnings, such as trailing bytes after the body, are sent
// to sink and do not fail the call; a nil sink discards them.
//
// Parameters:
//   - r: Source of the complete tag file
//   - sink: Receiver of non-fatal reports
//   - opts: Additional decoder options (see tag.DecoderOption)
//
// Returns:
//   - tag.Asset: The decoded tree. Type-assert it to the group's asset type.
//   - error: A read error, errs.ErrUnknownEngineTag for an unknown engine tag,
//     or any fatal decode error.
//
// Example:
//
//	asset, err := halotag.ProcessFile(f, tag.ReporterFunc(func(sev tag.Severity, msg string) {
//	    fmt.Println(sev, msg)
//	}))
func ProcessFile(r io.Reader, sink tag.Reporter, opts ...tag.DecoderOption) (tag.Asset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tag: %w", err)
	}

	if sink == nil {
		sink = tag.Discard
	}
	opts = append(opts[:len(opts):len(opts)], tag.WithReporter(sink))

	dec, err := tag.NewDecoder(DefaultRegistry(), opts...)
	if err != nil {
		return nil, err
	}

	asset, _, err := dec.Decode(data)

	return asset, err
}

// BuildAsset encodes asset and writes the complete tag file to w.
//
// Parameters:
//   - w: Destination of the tag file
//   - asset: The tree to encode; its header selects the layout
//   - opts: Encoder options, such as tag.WithChecksum
//
// Returns an error if the asset's group and revision are not registered or
// a field cannot be encoded.
func BuildAsset(w io.Writer, asset tag.Asset, opts ...tag.EncoderOption) error {
	enc, err := tag.NewEncoder(DefaultRegistry(), opts...)
	if err != nil {
		return err
	}

	return enc.EncodeTo(w, asset)
}

// TagID returns the 64-bit ID of a tag path within a group.
//
// Paths are compared case-insensitively with either slash direction. The
// ID matches section.TagRef.ID and the index IDs of tag archives.
//
// Example:
//
//	id := halotag.TagID(`sky\clouds`, format.GroupBitmap)
func TagID(path string, group format.GroupTag) uint64 {
	return hash.PathID(path, group.String())
}
