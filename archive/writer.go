package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/halotag/compress"
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/internal/collision"
	"github.com/arloliu/halotag/internal/hash"
	"github.com/arloliu/halotag/internal/options"
	"github.com/arloliu/halotag/internal/pool"
	"github.com/arloliu/halotag/tag"
)

type pendingEntry struct {
	Entry
	payload []byte
}

// Writer collects entries in memory and serializes the archive on demand.
// Entries keep the order they were added in. A Writer is not safe for
// concurrent use.
type Writer struct {
	compression format.CompressionType
	encoder     *tag.Encoder
	tracker     *collision.Tracker
	entries     []pendingEntry
	stats       compress.CompressionStats
}

// NewWriter creates an empty archive writer.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		compression: format.CompressionZstd,
		tracker:     collision.NewTracker(),
	}
	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Len returns the number of entries added so far.
func (w *Writer) Len() int {
	return len(w.entries)
}

// Stats returns the accumulated sizes of every entry added so far.
func (w *Writer) Stats() compress.CompressionStats {
	return w.stats
}

// Add adds an encoded tag with the writer's default compression.
func (w *Writer) Add(path string, group format.GroupTag, data []byte) error {
	return w.AddWith(path, group, w.compression, data)
}

// AddWith adds an encoded tag compressed with ct. The data is compressed
// immediately and may be reused by the caller afterwards.
func (w *Writer) AddWith(path string, group format.GroupTag, ct format.CompressionType, data []byte) error {
	if path == "" {
		return errs.ErrInvalidPath
	}
	if uint64(len(data)) > uint64(^uint32(0)) {
		return fmt.Errorf("%w: %s is %d bytes", errs.ErrLengthOverflow, path, len(data))
	}

	packed, stats, err := compress.Compress(ct, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if ct == format.CompressionNone {
		packed = append([]byte(nil), data...)
	}

	id := PathID(path, group)
	if err := w.tracker.Track(hash.NormalizePath(path)+"."+group.String(), id); err != nil {
		return err
	}

	e := Entry{
		Path:        path,
		ID:          id,
		Group:       group,
		Compression: ct,
		Size:        uint32(len(data)),   //nolint:gosec
		StoredSize:  uint32(len(packed)), //nolint:gosec
		Digest:      blake2b128(data),
	}
	w.entries = append(w.entries, pendingEntry{Entry: e, payload: packed})

	w.stats.Algorithm = ct
	w.stats.OriginalSize += stats.OriginalSize
	w.stats.CompressedSize += int64(len(packed))

	return nil
}

// AddAsset encodes asset with the writer's tag encoder and adds it under
// path with the group from its header.
func (w *Writer) AddAsset(path string, asset tag.Asset) error {
	if w.encoder == nil {
		return errors.New("archive writer has no tag encoder")
	}
	if asset == nil {
		return errs.ErrNilAsset
	}

	data, err := w.encoder.Encode(asset)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return w.Add(path, asset.Header().Group, data)
}

// Bytes serializes the archive.
func (w *Writer) Bytes() ([]byte, error) {
	buf := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(buf)

	if err := w.build(buf); err != nil {
		return nil, err
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

// WriteTo serializes the archive to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	buf := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(buf)

	if err := w.build(buf); err != nil {
		return 0, err
	}

	return buf.WriteTo(dst)
}

func (w *Writer) build(buf *pool.ByteBuffer) error {
	paths := encoding.NewVarStringEncoder(encoding.NewContext(byteOrder))
	defer paths.Reset()
	for _, e := range w.entries {
		if err := paths.Write(e.Path); err != nil {
			return fmt.Errorf("%w: %s: %w", errs.ErrInvalidPath, e.Path, err)
		}
	}

	indexSize := len(w.entries) * EntrySize
	pathTableOffset := HeaderSize + indexSize
	dataOffset := pathTableOffset + paths.Size()

	var total uint64
	for _, e := range w.entries {
		total += uint64(e.StoredSize)
	}
	if uint64(dataOffset)+total > uint64(^uint32(0)) {
		return fmt.Errorf("%w: archive of %d bytes", errs.ErrLengthOverflow, uint64(dataOffset)+total)
	}

	header := Header{
		Version:         Version,
		EntryCount:      uint32(len(w.entries)), //nolint:gosec
		IndexOffset:     HeaderSize,
		PathTableOffset: uint32(pathTableOffset), //nolint:gosec
		PathTableSize:   uint32(paths.Size()),    //nolint:gosec
		DataOffset:      uint32(dataOffset),      //nolint:gosec
	}
	buf.Grow(dataOffset + int(total))
	buf.MustWrite(header.bytes())

	var offset uint64
	index := make([]byte, 0, indexSize)
	for _, e := range w.entries {
		e.Offset = offset
		index = e.appendTo(index)
		offset += uint64(e.StoredSize)
	}
	buf.MustWrite(index)
	buf.MustWrite(paths.Bytes())
	for _, e := range w.entries {
		buf.MustWrite(e.payload)
	}

	return nil
}
