// Package archive reads and writes HTAR files, bundles of encoded tags with
// per-entry compression.
//
// # Layout
//
// All integers are little-endian.
//
//	+----------------------+  0
//	| header (32 bytes)    |
//	+----------------------+  IndexOffset
//	| index (48 bytes × N) |
//	+----------------------+  PathTableOffset
//	| path table           |  u16 length-prefixed strings, one per entry
//	+----------------------+  DataOffset
//	| payloads             |  entry bytes, compressed with the entry's codec
//	+----------------------+
//
// An index entry holds the path ID (xxHash64 of the normalized path and the
// group code), the group tag, the compression type, the raw and stored sizes,
// the payload offset relative to DataOffset and a BLAKE2b-128 digest of the
// raw bytes. The reader recomputes both the path ID and the digest.
package archive
