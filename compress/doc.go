// Package compress provides the codecs that compress tag payloads inside
// archives.
//
// Four algorithms are available, selected by format.CompressionType:
//   - None: payloads are stored as is
//   - Zstd: best ratio, used by default for archives
//   - S2: fast, moderate ratio
//   - LZ4: fastest decompression
//
// Every codec implements Codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
//
// Zstd is backed by klauspost/compress by default. Building with cgo and the
// gozstd tag switches it to the libzstd binding from valyala/gozstd; both
// produce standard zstd frames and can read each other's output.
//
// The built-in codecs are stateless values that pool their internal
// encoders, so they are safe for concurrent use.
package compress
