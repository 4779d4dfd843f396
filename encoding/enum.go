package encoding

import (
	"fmt"

	"github.com/arloliu/halotag/errs"
)

// Enum16 codes a 16-bit enum and rejects values outside its closed set.
func Enum16[E interface {
	~int16
	Valid() bool
}](s *Stream, v *E) {
	raw := int16(*v)
	if !s.decoding && !checkEnum(s, *v, int64(raw)) {
		return
	}
	s.Int16(&raw)
	if s.decoding && s.err == nil && checkEnum(s, E(raw), int64(raw)) {
		*v = E(raw)
	}
}

// Enum8 codes an 8-bit enum and rejects values outside its closed set.
func Enum8[E interface {
	~int8
	Valid() bool
}](s *Stream, v *E) {
	raw := int8(*v)
	if !s.decoding && !checkEnum(s, *v, int64(raw)) {
		return
	}
	s.Int8(&raw)
	if s.decoding && s.err == nil && checkEnum(s, E(raw), int64(raw)) {
		*v = E(raw)
	}
}

func checkEnum[E interface{ Valid() bool }](s *Stream, v E, raw int64) bool {
	if v.Valid() {
		return true
	}
	s.FailAt(errs.EnumError{Type: fmt.Sprintf("%T", v), Value: raw})

	return false
}

// Flags8 codes an 8-bit flag set. Bits are kept verbatim.
func Flags8[F ~uint8](s *Stream, v *F) {
	raw := uint8(*v)
	s.Uint8(&raw)
	*v = F(raw)
}

// Flags16 codes a 16-bit flag set. Bits are kept verbatim.
func Flags16[F ~uint16](s *Stream, v *F) {
	raw := uint16(*v)
	s.Uint16(&raw)
	*v = F(raw)
}

// Flags32 codes a 32-bit flag set. Bits are kept verbatim.
func Flags32[F ~uint32](s *Stream, v *F) {
	raw := uint32(*v)
	s.Uint32(&raw)
	*v = F(raw)
}
