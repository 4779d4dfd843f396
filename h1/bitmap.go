package h1

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/go-gl/mathgl/mgl32"
)

// BitmapVersion is the tag version written for H1 bitmaps.
const BitmapVersion = 7

// Bitmap is the H1 bitmap tag (bitm).
type Bitmap struct {
	tag.Base

	Type                 BitmapType
	Format               BitmapFormat
	Usage                BitmapUsage
	Flags                BitmapFlags
	DetailFadeFactor     float32
	SharpenAmount        float32
	BumpHeight           float32
	SpriteBudgetSize     SpriteBudgetSize
	SpriteBudgetCount    uint16
	ColorPlateWidth      uint16
	ColorPlateHeight     uint16
	CompressedColorPlate section.RawData
	ProcessedPixelData   section.RawData
	BlurFilterSize       float32
	AlphaBias            float32
	MipmapCount          uint16
	SpriteUsage          SpriteUsage
	SpriteSpacing        uint16
	Sequences            tag.Block[BitmapSequence]
	Bitmaps              tag.Block[BitmapData]
}

func (b *Bitmap) Fields(s *tag.Stream) {
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
	s.Skip(2)
	tag.BlockOf(s, &b.Sequences)
	tag.BlockOf(s, &b.Bitmaps)
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
	Depth             int16
	Type              BitmapDataType
	Format            BitmapDataFormat
	Flags             BitmapDataFlags
	RegistrationPoint encoding.Point2DInt
	MipmapCount       int16
	PixelsOffset      int32
	PixelsSize        int32
	BitmapTagID       uint32
	Pointer           uint32
	BaseAddress       uint32
}

func (d *BitmapData) Fields(s *tag.Stream) {
	s.Tag(&d.Signature)
	s.Int16(&d.Width)
	s.Int16(&d.Height)
	s.Int16(&d.Depth)
	encoding.Enum16(s.Stream, &d.Type)
	encoding.Enum16(s.Stream, &d.Format)
	encoding.Flags16(s.Stream, &d.Flags)
	s.Point2DInt(&d.RegistrationPoint)
	s.Int16(&d.MipmapCount)
	s.Skip(2)
	s.Int32(&d.PixelsOffset)
	s.Int32(&d.PixelsSize)
	s.Uint32(&d.BitmapTagID)
	s.Uint32(&d.Pointer)
	s.Skip(4)
	s.Uint32(&d.BaseAddress)
}

// BitmapCodec returns the H1 bitmap layout.
func BitmapCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupBitmap,
		Engine:    format.EngineH1,
		Version:   BitmapVersion,
		Revisions: []format.Revision{format.RevisionH1},
		New:       func() tag.Asset { return &Bitmap{} },
	}
}
