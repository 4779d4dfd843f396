// Package section defines the fixed-size records of a tag file: the 64-byte
// tag header and the field descriptors that announce deferred data (block
// fields, retail block headers, tag references, raw data and string ids).
//
// Descriptors code only their fixed part and return the length of the data
// that follows later in the file; the tag package schedules those reads.
package section
