package tag

import (
	"fmt"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
)

// Element is a record with a fixed layout.
type Element interface {
	Fields(s *Stream)
}

// Stream is an encoding.Stream that also schedules the deferred reads and
// writes of tag descriptors.
type Stream struct {
	*encoding.Stream

	rev     format.Revision
	pending *pending

	declared     int
	materialized int
}

// pending holds the deferred work queued by the fixed fields of one element
// array, split by resolution pass.
type pending struct {
	names  []func()
	data   []func()
	blocks []func()
}

func (p *pending) resolve() {
	for _, fn := range p.names {
		fn()
	}
	for _, fn := range p.data {
		fn()
	}
	for _, fn := range p.blocks {
		fn()
	}
}

// NewStream wraps an encoding stream for a tag of revision rev.
func NewStream(es *encoding.Stream, rev format.Revision) *Stream {
	return &Stream{Stream: es, rev: rev}
}

// Revision returns the revision of the tag being coded.
func (s *Stream) Revision() format.Revision {
	return s.rev
}

// Ref codes the fixed part of a tag reference and queues its path.
// A null reference queues nothing.
func (s *Stream) Ref(r *section.TagRef) {
	n := r.Header(s.Stream)
	if n == 0 || s.Err() != nil {
		if s.Decoding() {
			r.Path = ""
		}

		return
	}

	terminated := s.rev.TerminatedNames()
	s.pending.names = append(s.pending.names, func() {
		r.Name(s.Stream, n, terminated)
	})
}

// StringID codes the fixed part of a string id and queues its name.
func (s *Stream) StringID(id *section.StringID) {
	n := id.Header(s.Stream)
	if n == 0 || s.Err() != nil {
		if s.Decoding() {
			id.Name = ""
		}

		return
	}

	s.pending.names = append(s.pending.names, func() {
		id.Value(s.Stream, n)
	})
}

// Data codes the fixed part of a raw data field and queues its payload.
func (s *Stream) Data(r *section.RawData) {
	n := r.Header(s.Stream)
	if n == 0 || s.Err() != nil {
		if s.Decoding() {
			r.Data = nil
		}

		return
	}

	s.pending.data = append(s.pending.data, func() {
		r.Payload(s.Stream, n)
	})
}

// Root codes e as the one-element body of a tag and resolves everything it
// queued, recursively.
func (s *Stream) Root(e Element) {
	p := &pending{}
	outer := s.pending
	s.pending = p
	e.Fields(s)
	s.pending = outer
	if s.Err() == nil {
		p.resolve()
	}
}

// Finish checks the block accounting once the whole tag has been coded.
func (s *Stream) Finish() error {
	if s.Err() == nil && s.declared != s.materialized {
		s.FailAt(fmt.Errorf("%w: declared %d, materialized %d",
			errs.ErrBlockCountMismatch, s.declared, s.materialized))
	}

	return s.Err()
}
