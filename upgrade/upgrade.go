// Package upgrade converts H1 asset trees into their H2 equivalents. An
// upgrade never modifies its source and is deterministic: the same input
// always produces the same output tree.
package upgrade

import (
	"errors"
	"fmt"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/h1"
	"github.com/arloliu/halotag/h2"
	"github.com/arloliu/halotag/internal/options"
	"github.com/arloliu/halotag/tag"
)

// Upgrader converts H1 assets to a fixed H2 revision.
type Upgrader struct {
	target   format.Revision
	reporter tag.Reporter
}

// Option configures an Upgrader.
type Option = options.Option[*Upgrader]

// WithTarget sets the H2 revision of upgraded assets. The default is retail.
func WithTarget(rev format.Revision) Option {
	return options.New(func(u *Upgrader) error {
		if rev.Engine() != format.EngineH2 {
			return fmt.Errorf("%w: upgrade target %s is not an H2 revision", errs.ErrUnsupportedRevision, rev)
		}
		u.target = rev

		return nil
	})
}

// WithReporter sets the sink for conversion notes such as rescaled values.
func WithReporter(r tag.Reporter) Option {
	return options.New(func(u *Upgrader) error {
		if r == nil {
			return errors.New("nil reporter")
		}
		u.reporter = r

		return nil
	})
}

// New creates an upgrader.
func New(opts ...Option) (*Upgrader, error) {
	u := &Upgrader{
		target:   format.RevisionH2Retail,
		reporter: tag.Discard,
	}
	if err := options.Apply(u, opts...); err != nil {
		return nil, err
	}

	return u, nil
}

// Target returns the revision upgraded assets are written for.
func (u *Upgrader) Target() format.Revision {
	return u.target
}

// Upgrade converts an H1 asset. Groups without an upgrade path return
// errs.ErrUnsupportedGroup.
func (u *Upgrader) Upgrade(asset tag.Asset) (tag.Asset, error) {
	if asset == nil {
		return nil, errs.ErrNilAsset
	}
	if rev := asset.Header().Revision; rev.Engine() != format.EngineH1 {
		return nil, fmt.Errorf("%w: cannot upgrade a %s tag", errs.ErrUnsupportedRevision, rev)
	}

	switch a := asset.(type) {
	case *h1.Bitmap:
		b, err := u.Bitmap(a)
		if err != nil {
			return nil, err
		}

		return b, nil
	default:
		return nil, fmt.Errorf("%w: no upgrade for %s", errs.ErrUnsupportedGroup, asset.Header().Group)
	}
}

// Bitmap converts an H1 bitmap to target with a default upgrader.
func Bitmap(src *h1.Bitmap, target format.Revision) (*h2.Bitmap, error) {
	u, err := New(WithTarget(target))
	if err != nil {
		return nil, err
	}

	return u.Bitmap(src)
}
