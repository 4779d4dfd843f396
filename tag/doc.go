// Package tag implements the block and reference protocol shared by every
// tag layout, the revision registry and the decode and encode entry points.
//
// Tag files are laid out in two stages. The fixed fields of every element of
// a block come first; tag reference paths, string id names, raw payloads and
// child blocks referenced by those elements follow, in that order and in the
// order the descriptors were met. Stream makes the two stages explicit: the
// descriptor methods (Ref, StringID, Data, BlockOf) code only the fixed part
// and queue a pending read, and the queue of an element array is resolved
// once all of its fixed fields are done.
//
//	func (seq *Sequence) Fields(s *tag.Stream) {
//	    s.FixedString(&seq.Name, 32)
//	    s.Int16(&seq.FirstBitmapIndex)
//	    s.Int16(&seq.BitmapCount)
//	    s.Skip(16)
//	    tag.BlockOf(s, &seq.Sprites)
//	}
//
// Encoding runs the same layouts, so counts and lengths always agree with
// the tree being written.
package tag
