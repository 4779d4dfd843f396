package format

import (
	"fmt"
	"strings"
)

// GroupTag is a four character tag group code packed most significant
// character first. Reading it as a uint32 in the tag's byte order yields the
// same value for big-endian and little-endian tags.
type GroupTag uint32

const (
	GroupNone              GroupTag = 0xFFFFFFFF
	GroupBitmap            GroupTag = 'b'<<24 | 'i'<<16 | 't'<<8 | 'm'
	GroupSound             GroupTag = 's'<<24 | 'n'<<16 | 'd'<<8 | '!'
	GroupPhysics           GroupTag = 'p'<<24 | 'h'<<16 | 'y'<<8 | 's'
	GroupSky               GroupTag = 's'<<24 | 'k'<<16 | 'y'<<8 | ' '
	GroupEquipment         GroupTag = 'e'<<24 | 'q'<<16 | 'i'<<8 | 'p'
	GroupDeviceControl     GroupTag = 'c'<<24 | 't'<<16 | 'r'<<8 | 'l'
	GroupCameraTrack       GroupTag = 't'<<24 | 'r'<<16 | 'a'<<8 | 'k'
	GroupShader            GroupTag = 's'<<24 | 'h'<<16 | 'a'<<8 | 'd'
	GroupShaderTemplate    GroupTag = 's'<<24 | 't'<<16 | 'e'<<8 | 'm'
	GroupModel             GroupTag = 'm'<<24 | 'o'<<16 | 'd'<<8 | '2'
	GroupModelAnimations   GroupTag = 'a'<<24 | 'n'<<16 | 't'<<8 | 'r'
	GroupCollisionModel    GroupTag = 'c'<<24 | 'o'<<16 | 'l'<<8 | 'l'
	GroupEffect            GroupTag = 'e'<<24 | 'f'<<16 | 'f'<<8 | 'e'
	GroupFog               GroupTag = 'f'<<24 | 'o'<<16 | 'g'<<8 | ' '
	GroupLensFlare         GroupTag = 'l'<<24 | 'e'<<16 | 'n'<<8 | 's'
	GroupMaterialEffects   GroupTag = 'f'<<24 | 'o'<<16 | 'o'<<8 | 't'
	GroupUnicodeStrings    GroupTag = 'u'<<24 | 's'<<16 | 't'<<8 | 'r'
	GroupHUDMessageText    GroupTag = 'h'<<24 | 'm'<<16 | 't'<<8 | ' '
	GroupShaderEnvironment GroupTag = 's'<<24 | 'e'<<16 | 'n'<<8 | 'v'
)

// MakeGroupTag packs a group code. Codes shorter than four characters are
// padded with spaces and longer codes are cut at four.
func MakeGroupTag(code string) GroupTag {
	b := []byte(code + "    ")[:4]

	return GroupTag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func (g GroupTag) String() string {
	if g == GroupNone {
		return "none"
	}

	b := [4]byte{byte(g >> 24), byte(g >> 16), byte(g >> 8), byte(g)}

	return strings.TrimRight(string(b[:]), " ")
}

// Code returns the four character code with padding intact. Codes holding
// bytes outside printable ASCII are written as eight hex digits.
func (g GroupTag) Code() string {
	if g == GroupNone {
		return "none"
	}

	b := [4]byte{byte(g >> 24), byte(g >> 16), byte(g >> 8), byte(g)}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("%08x", uint32(g))
		}
	}

	return string(b[:])
}
