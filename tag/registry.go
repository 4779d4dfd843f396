package tag

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
)

// Codec describes one asset layout: the tag group and engine it serves, the
// closed set of revisions it accepts and a constructor for an empty tree.
type Codec struct {
	Group     format.GroupTag
	Engine    format.Engine
	Version   uint16
	Revisions []format.Revision
	New       func() Asset
}

// Supports reports whether rev is in the codec's revision set.
func (c Codec) Supports(rev format.Revision) bool {
	return slices.Contains(c.Revisions, rev)
}

// NewAsset creates an empty asset of revision rev with a fresh header.
func (c Codec) NewAsset(rev format.Revision) (Asset, error) {
	if !c.Supports(rev) {
		return nil, fmt.Errorf("%w: %s %s", errs.ErrUnsupportedRevision, c.Group, rev)
	}

	a := c.New()
	*a.Header() = section.NewTagHeader(c.Group, c.Version, rev)

	return a, nil
}

type codecKey struct {
	engine format.Engine
	group  format.GroupTag
}

// Registry maps tag groups to codecs per engine. It is safe for concurrent
// use once populated.
type Registry struct {
	mu     sync.RWMutex
	codecs map[codecKey]Codec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[codecKey]Codec)}
}

// Register adds a codec. Registering the same group twice for one engine is
// an error.
func (r *Registry) Register(c Codec) error {
	if c.New == nil || len(c.Revisions) == 0 {
		return fmt.Errorf("register %s: codec needs a constructor and revisions", c.Group)
	}
	for _, rev := range c.Revisions {
		if !rev.Valid() || rev.Engine() != c.Engine {
			return fmt.Errorf("register %s: %w: %s", c.Group, errs.ErrUnsupportedRevision, rev)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := codecKey{engine: c.Engine, group: c.Group}
	if _, exists := r.codecs[key]; exists {
		return fmt.Errorf("register %s: group already registered for %s", c.Group, c.Engine)
	}
	r.codecs[key] = c

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(codecs ...Codec) {
	for _, c := range codecs {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the codec for the group and revision of a header.
func (r *Registry) Lookup(group format.GroupTag, rev format.Revision) (Codec, error) {
	r.mu.RLock()
	c, ok := r.codecs[codecKey{engine: rev.Engine(), group: group}]
	r.mu.RUnlock()

	if !ok {
		return Codec{}, fmt.Errorf("%w: %s for %s", errs.ErrUnsupportedGroup, group, rev.Engine())
	}
	if !c.Supports(rev) {
		return Codec{}, fmt.Errorf("%w: %s %s", errs.ErrUnsupportedRevision, group, rev)
	}

	return c, nil
}

// Codecs returns every registered codec ordered by engine and group.
func (r *Registry) Codecs() []Codec {
	r.mu.RLock()
	out := make([]Codec, 0, len(r.codecs))
	for _, c := range r.codecs {
		out = append(out, c)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Codec) int {
		if a.Engine != b.Engine {
			return cmp.Compare(a.Engine, b.Engine)
		}

		return cmp.Compare(a.Group.String(), b.Group.String())
	})

	return out
}
