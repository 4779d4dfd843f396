package tag

import "github.com/arloliu/halotag/section"

// Asset is a decoded tag: its header plus a body layout.
type Asset interface {
	Element
	Header() *section.TagHeader
}

// Base carries the tag header of an asset. Asset types embed it.
type Base struct {
	TagHeader section.TagHeader
}

// Header returns the tag header.
func (b *Base) Header() *section.TagHeader {
	return &b.TagHeader
}
