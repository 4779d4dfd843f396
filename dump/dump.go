// Package dump renders decoded asset trees for inspection: an XML tree of
// every field, a spew dump of the Go values, and the list of tag references
// an asset depends on.
package dump

import (
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/davecgh/go-spew/spew"
)

var (
	baseType     = reflect.TypeOf(tag.Base{})
	tagRefType   = reflect.TypeOf(section.TagRef{})
	stringIDType = reflect.TypeOf(section.StringID{})
	rawDataType  = reflect.TypeOf(section.RawData{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Spew returns a spew dump of asset.
func Spew(asset tag.Asset) string {
	return spewConfig.Sdump(asset)
}

// XML writes asset as an indented XML tree. The root element carries the
// header; every exported body field becomes an element named after it.
func XML(w io.Writer, asset tag.Asset) error {
	if asset == nil {
		return errors.New("dump: nil asset")
	}

	h := asset.Header()
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{
		Name: xml.Name{Local: "tag"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "group"}, Value: h.Group.Code()},
			{Name: xml.Name{Local: "engine"}, Value: h.Revision.String()},
			{Name: xml.Name{Local: "version"}, Value: strconv.Itoa(int(h.Version))},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if err := writeFields(enc, reflect.ValueOf(asset)); err != nil {
		return err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

func writeFields(enc *xml.Encoder, v reflect.Value) error {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Type == baseType {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if err := writeFields(enc, v.Field(i)); err != nil {
				return err
			}

			continue
		}
		if err := writeValue(enc, xml.StartElement{Name: xml.Name{Local: f.Name}}, v.Field(i)); err != nil {
			return err
		}
	}

	return nil
}

func writeValue(enc *xml.Encoder, start xml.StartElement, v reflect.Value) error {
	switch v.Type() {
	case tagRefType:
		ref := v.Interface().(section.TagRef)
		start.Attr = append(start.Attr,
			xml.Attr{Name: xml.Name{Local: "group"}, Value: ref.Group.Code()},
			xml.Attr{Name: xml.Name{Local: "index"}, Value: strconv.Itoa(int(ref.Index))},
		)

		return writeText(enc, start, ref.Path)
	case stringIDType:
		return writeText(enc, start, v.Interface().(section.StringID).Name)
	case rawDataType:
		raw := v.Interface().(section.RawData)
		start.Attr = append(start.Attr,
			xml.Attr{Name: xml.Name{Local: "size"}, Value: strconv.Itoa(len(raw.Data))},
			xml.Attr{Name: xml.Name{Local: "flags"}, Value: strconv.FormatUint(uint64(raw.Flags), 10)},
		)

		return writeText(enc, start, hex.EncodeToString(raw.Data))
	}

	if v.Kind() != reflect.Struct && v.Type().Implements(stringerType) {
		return writeText(enc, start, v.Interface().(fmt.Stringer).String())
	}

	switch v.Kind() {
	case reflect.Struct:
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := writeFields(enc, v); err != nil {
			return err
		}

		return enc.EncodeToken(start.End())
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return writeText(enc, start, hex.EncodeToString(bytesOf(v)))
		}
		if isScalar(v.Type().Elem()) {
			parts := make([]string, v.Len())
			for i := range v.Len() {
				parts[i] = scalar(v.Index(i))
			}

			return writeText(enc, start, strings.Join(parts, " "))
		}

		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		for i := range v.Len() {
			elem := xml.StartElement{
				Name: xml.Name{Local: "element"},
				Attr: []xml.Attr{{Name: xml.Name{Local: "index"}, Value: strconv.Itoa(i)}},
			}
			if err := writeValue(enc, elem, v.Index(i)); err != nil {
				return err
			}
		}

		return enc.EncodeToken(start.End())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return writeText(enc, start, "")
		}

		return writeValue(enc, start, v.Elem())
	default:
		return writeText(enc, start, scalar(v))
	}
}

func writeText(enc *xml.Encoder, start xml.StartElement, text string) error {
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func scalar(v reflect.Value) string {
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}

	switch v.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

func bytesOf(v reflect.Value) []byte {
	if v.Kind() == reflect.Slice {
		return v.Bytes()
	}

	b := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(b), v)

	return b
}

// References returns every non-null tag reference held by asset, in field
// order. Nested blocks are searched depth first.
func References(asset tag.Asset) []section.TagRef {
	var refs []section.TagRef
	if asset != nil {
		collectRefs(reflect.ValueOf(asset), &refs)
	}

	return refs
}

func collectRefs(v reflect.Value, refs *[]section.TagRef) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			collectRefs(v.Elem(), refs)
		}
	case reflect.Struct:
		if v.Type() == tagRefType {
			if ref := v.Interface().(section.TagRef); !ref.IsNull() {
				*refs = append(*refs, ref)
			}

			return
		}
		t := v.Type()
		for i := range t.NumField() {
			if t.Field(i).IsExported() {
				collectRefs(v.Field(i), refs)
			}
		}
	case reflect.Slice, reflect.Array:
		if isScalar(v.Type().Elem()) {
			return
		}
		for i := range v.Len() {
			collectRefs(v.Index(i), refs)
		}
	}
}
