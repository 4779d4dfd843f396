package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// NormalizePath lower-cases a tag path and converts forward slashes to the
// backslash separator used inside tags.
func NormalizePath(path string) string {
	return strings.ReplaceAll(strings.ToLower(path), "/", `\`)
}

// PathID computes the ID of a tag path together with its group code, so the
// same path under two groups yields two IDs.
func PathID(path string, group string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(NormalizePath(path))
	_, _ = d.WriteString(".")
	_, _ = d.WriteString(group)

	return d.Sum64()
}
