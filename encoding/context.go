package encoding

import (
	"fmt"
	"strings"

	"github.com/arloliu/halotag/endian"
	"github.com/arloliu/halotag/errs"
	"golang.org/x/text/encoding/charmap"
)

// DefaultCharmap is the single byte character set of tag strings.
var DefaultCharmap = charmap.Windows1252

// Context carries the per-call state of one decode or encode: the byte order
// stack and the string character set. A Context must not be shared between
// concurrent calls.
type Context struct {
	orders  []endian.EndianEngine
	charmap *charmap.Charmap
}

// NewContext creates a context whose base byte order is order.
func NewContext(order endian.EndianEngine) *Context {
	return &Context{
		orders:  []endian.EndianEngine{order},
		charmap: DefaultCharmap,
	}
}

// Order returns the current byte order.
func (c *Context) Order() endian.EndianEngine {
	return c.orders[len(c.orders)-1]
}

// PushOrder makes order the current byte order until the matching PopOrder.
func (c *Context) PushOrder(order endian.EndianEngine) {
	c.orders = append(c.orders, order)
}

// PopOrder restores the byte order that was current before the last
// PushOrder. The base order is never popped.
func (c *Context) PopOrder() {
	if len(c.orders) > 1 {
		c.orders = c.orders[:len(c.orders)-1]
	}
}

// Depth returns the number of pushed byte orders above the base order.
func (c *Context) Depth() int {
	return len(c.orders) - 1
}

// Charmap returns the character set used for tag strings.
func (c *Context) Charmap() *charmap.Charmap {
	return c.charmap
}

// SetCharmap replaces the character set used for tag strings.
// A nil charmap restores DefaultCharmap.
func (c *Context) SetCharmap(cm *charmap.Charmap) {
	if cm == nil {
		cm = DefaultCharmap
	}
	c.charmap = cm
}

// DecodeString converts raw tag bytes to a string.
func (c *Context) DecodeString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, ch := range b {
		sb.WriteRune(c.charmap.DecodeByte(ch))
	}

	return sb.String()
}

// EncodeString converts a string to raw tag bytes.
func (c *Context) EncodeString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := c.charmap.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnencodableString, r)
		}
		out = append(out, b)
	}

	return out, nil
}
