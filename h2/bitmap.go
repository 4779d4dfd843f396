package h2

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/go-gl/mathgl/mgl32"
)

// BitmapVersion is the tag version written for H2 bitmaps.
const BitmapVersion = 7

// Bitmap is the H2 bitmap tag (bitm). ForceFormat exists from MLAB on and
// the compression settings only in retail tags; both are zero when decoded
// from a revision that lacks them and ignored when encoding to one.
type Bitmap struct {
	tag.Base

	Type                    BitmapType
	Format                  BitmapFormat
	Usage                   BitmapUsage
	Flags                   BitmapFlags
	DetailFadeFactor        float32
	SharpenAmount           float32
	BumpHeight              float32
	SpriteBudgetSize        SpriteBudgetSize
	SpriteBudgetCount       uint16
	ColorPlateWidth         uint16
	ColorPlateHeight        uint16
	CompressedColorPlate    section.RawData
	ProcessedPixelData      section.RawData
	BlurFilterSize          float32
	AlphaBias               float32
	MipmapCount             uint16
	SpriteUsage             SpriteUsage
	SpriteSpacing           uint16
	ForceFormat             ForceFormat
	Sequences               tag.Block[BitmapSequence]
	Bitmaps                 tag.Block[BitmapData]
	ColorCompressionQuality int8
	AlphaCompressionQuality int8
	Overlap                 int8
	ColorSubsampling        int8
}

func (b *Bitmap) Fields(s *tag.Stream) {
	rev := s.Revision()

	encoding.Enum16(s.Stream, &b.Type)
	encoding.Enum16(s.Stream, &b.Format)
	encoding.Enum16(s.Stream, &b.Usage)
	encoding.Flags16(s.Stream, &b.Flags)
	s.Float32(&b.DetailFadeFactor)
	s.Float32(&b.SharpenAmount)
	s.Float32(&b.BumpHeight)
	encoding.Enum16(s.Stream, &b.SpriteBudgetSize)
	s.Uint16(&b.SpriteBudgetCount)
	s.Uint16(&b.ColorPlateWidth)
	s.Uint16(&b.ColorPlateHeight)
	s.Data(&b.CompressedColorPlate)
	s.Data(&b.ProcessedPixelData)
	s.Float32(&b.BlurFilterSize)
	s.Float32(&b.AlphaBias)
	s.Uint16(&b.MipmapCount)
	encoding.Enum16(s.Stream, &b.SpriteUsage)
	s.Uint16(&b.SpriteSpacing)
	if rev == format.RevisionH2Legacy {
		s.Skip(2)
		if s.Decoding() {
			b.ForceFormat = ForceFormatDefault
		}
	} else {
		encoding.Enum16(s.Stream, &b.ForceFormat)
	}
	tag.BlockOf(s, &b.Sequences)
	tag.BlockOf(s, &b.Bitmaps)
	if rev == format.RevisionH2Retail {
		s.Int8(&b.ColorCompressionQuality)
		s.Int8(&b.AlphaCompressionQuality)
		s.Int8(&b.Overlap)
		s.Int8(&b.ColorSubsampling)
	} else if s.Decoding() {
		b.ColorCompressionQuality = 0
		b.AlphaCompressionQuality = 0
		b.Overlap = 0
		b.ColorSubsampling = 0
	}
}

// BitmapSequence is a named run of bitmaps, or of sprites for sprite sheets.
type BitmapSequence struct {
	Name             string
	FirstBitmapIndex int16
	BitmapCount      int16
	Sprites          tag.Block[BitmapSprite]
}

func (q *BitmapSequence) Fields(s *tag.Stream) {
	s.FixedString(&q.Name, 32)
	s.Int16(&q.FirstBitmapIndex)
	s.Int16(&q.BitmapCount)
	s.Skip(16)
	tag.BlockOf(s, &q.Sprites)
}

// BitmapSprite is one sprite rectangle in texture coordinates.
type BitmapSprite struct {
	BitmapIndex       int16
	Left              float32
	Right             float32
	Top               float32
	Bottom            float32
	RegistrationPoint mgl32.Vec2
}

func (p *BitmapSprite) Fields(s *tag.Stream) {
	s.Int16(&p.BitmapIndex)
	s.Skip(6)
	s.Float32(&p.Left)
	s.Float32(&p.Right)
	s.Float32(&p.Top)
	s.Float32(&p.Bottom)
	s.Point2D(&p.RegistrationPoint)
}

// BitmapData describes one processed bitmap inside the pixel data.
type BitmapData struct {
	Signature         format.GroupTag
	Width             int16
	Height            int16
	Depth             int8
	MoreFlags         BitmapDataMoreFlags
	Type              BitmapDataType
	Format            BitmapDataFormat
	Flags             BitmapDataFlags
	RegistrationPoint encoding.Point2DInt
	MipmapCount       int16
	LowDetailMipmaps  int16
	PixelsOffset      int32
	PixelsSize        int32
	LODOffsets        [3]int32
	LODSizes          [3]int32
	OwnerTagIndex     int32
}

func (d *BitmapData) Fields(s *tag.Stream) {
	s.Tag(&d.Signature)
	s.Int16(&d.Width)
	s.Int16(&d.Height)
	s.Int8(&d.Depth)
	encoding.Flags8(s.Stream, &d.MoreFlags)
	encoding.Enum16(s.Stream, &d.Type)
	encoding.Enum16(s.Stream, &d.Format)
	encoding.Flags16(s.Stream, &d.Flags)
	s.Point2DInt(&d.RegistrationPoint)
	s.Int16(&d.MipmapCount)
	s.Int16(&d.LowDetailMipmaps)
	s.Int32(&d.PixelsOffset)
	s.Int32(&d.PixelsSize)
	for i := range d.LODOffsets {
		s.Int32(&d.LODOffsets[i])
	}
	for i := range d.LODSizes {
		s.Int32(&d.LODSizes[i])
	}
	s.Int32(&d.OwnerTagIndex)
	s.Skip(4)
}

// BitmapCodec returns the H2 bitmap layout.
func BitmapCodec() tag.Codec {
	return tag.Codec{
		Group:   format.GroupBitmap,
		Engine:  format.EngineH2,
		Version: BitmapVersion,
		Revisions: []format.Revision{
			format.RevisionH2Legacy, format.RevisionH2Vista, format.RevisionH2Retail,
		},
		New: func() tag.Asset { return &Bitmap{} },
	}
}
