package archive

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/arloliu/halotag/compress"
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/internal/options"
	"github.com/arloliu/halotag/tag"
	"golang.org/x/crypto/blake2b"
)

// Reader gives random access to the entries of an archive held in memory.
// A Reader is safe for concurrent reads.
type Reader struct {
	data    []byte
	header  Header
	entries []Entry
	byID    map[uint64]int
	verify  bool
	decoder *tag.Decoder
}

// Open parses the header, index and path table of data. Payloads are not
// touched until they are read. The Reader keeps a reference to data.
func Open(data []byte, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{data: data, verify: true}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	header, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	r.header = header

	count := int(header.EntryCount)
	table := data[header.PathTableOffset : header.PathTableOffset+header.PathTableSize]
	paths, err := encoding.NewVarStringDecoder(encoding.NewContext(byteOrder)).Decode(table, count)
	if err != nil {
		return nil, fmt.Errorf("%w: path table: %w", errs.ErrInvalidArchive, err)
	}

	payloadSize := uint64(len(data)) - uint64(header.DataOffset)
	r.entries = make([]Entry, count)
	r.byID = make(map[uint64]int, count)
	for i := range count {
		start := int(header.IndexOffset) + i*EntrySize
		e := parseEntry(data[start : start+EntrySize])
		e.Path = paths[i]

		switch {
		case e.ID != PathID(e.Path, e.Group):
			return nil, fmt.Errorf("%w: entry %d id does not match %s", errs.ErrInvalidArchive, i, e.Name())
		case !e.Compression.Valid():
			return nil, fmt.Errorf("%w: entry %s: %w %d", errs.ErrInvalidArchive, e.Name(), errs.ErrInvalidCompression, e.Compression)
		case e.Offset > payloadSize || uint64(e.StoredSize) > payloadSize-e.Offset:
			return nil, fmt.Errorf("%w: entry %s payload out of range", errs.ErrInvalidArchive, e.Name())
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %w: %s", errs.ErrInvalidArchive, errs.ErrDuplicatePath, e.Name())
		}

		r.entries[i] = e
		r.byID[e.ID] = i
	}

	return r, nil
}

// Header returns the parsed archive header.
func (r *Reader) Header() Header {
	return r.header
}

// Len returns the number of entries.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Entries returns the entries in archive order. The slice is shared with the
// Reader.
func (r *Reader) Entries() []Entry {
	return r.entries
}

// Lookup finds the entry for path and group.
func (r *Reader) Lookup(path string, group format.GroupTag) (Entry, bool) {
	i, ok := r.byID[PathID(path, group)]
	if !ok {
		return Entry{}, false
	}

	return r.entries[i], true
}

// Read returns the decompressed payload of e. The result never shares
// memory with the archive.
func (r *Reader) Read(e Entry) ([]byte, error) {
	start := uint64(r.header.DataOffset) + e.Offset
	end := start + uint64(e.StoredSize)
	if end > uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: entry %s payload out of range", errs.ErrInvalidArchive, e.Name())
	}
	stored := r.data[start:end]

	var (
		data []byte
		err  error
	)
	switch e.Compression {
	case format.CompressionNone:
		data = bytes.Clone(stored)
	case format.CompressionLZ4:
		data, err = compress.NewLZ4Compressor().DecompressSize(stored, int(e.Size))
	default:
		var codec compress.Codec
		codec, err = compress.GetCodec(e.Compression)
		if err == nil {
			data, err = codec.Decompress(stored)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name(), err)
	}

	if len(data) != int(e.Size) {
		return nil, fmt.Errorf("%w: entry %s decompressed to %d bytes, want %d",
			errs.ErrInvalidArchive, e.Name(), len(data), e.Size)
	}
	if r.verify {
		if sum := blake2b128(data); !bytes.Equal(sum[:], e.Digest[:]) {
			return nil, fmt.Errorf("%w: %s", errs.ErrDigestMismatch, e.Name())
		}
	}

	return data, nil
}

// ReadPath reads the entry for path and group.
func (r *Reader) ReadPath(path string, group format.GroupTag) ([]byte, error) {
	e, ok := r.Lookup(path, group)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", errs.ErrEntryNotFound, path, group)
	}

	return r.Read(e)
}

// Asset reads and decodes the entry for path and group with the reader's tag
// decoder. Non-fatal decode warnings are returned as warn.
func (r *Reader) Asset(path string, group format.GroupTag) (asset tag.Asset, warn error, err error) {
	if r.decoder == nil {
		return nil, nil, errors.New("archive reader has no tag decoder")
	}

	data, err := r.ReadPath(path, group)
	if err != nil {
		return nil, nil, err
	}

	return r.decoder.Decode(data)
}

func blake2b128(data []byte) [DigestSize]byte {
	var sum [DigestSize]byte
	h, _ := blake2b.New(DigestSize, nil)
	_, _ = h.Write(data)
	copy(sum[:], h.Sum(nil))

	return sum
}
