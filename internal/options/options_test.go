package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	charmap  string
	checksum bool
	calls    []string
}

func withCharmap(name string) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if name == "" {
			return errors.New("empty charmap name")
		}
		c.charmap = name
		c.calls = append(c.calls, "charmap")

		return nil
	})
}

func withChecksum() Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.checksum = true
		c.calls = append(c.calls, "checksum")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &codecConfig{}

		err := Apply(cfg, withChecksum(), withCharmap("windows-1252"))
		require.NoError(t, err)
		require.True(t, cfg.checksum)
		require.Equal(t, "windows-1252", cfg.charmap)
		require.Equal(t, []string{"checksum", "charmap"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}

		err := Apply(cfg, withCharmap(""), withChecksum())
		require.EqualError(t, err, "empty charmap name")
		require.False(t, cfg.checksum)
		require.Empty(t, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &codecConfig{}

		require.NoError(t, Apply(cfg, nil, withChecksum()))
		require.True(t, cfg.checksum)
	})

	t.Run("no options", func(t *testing.T) {
		require.NoError(t, Apply(&codecConfig{}))
	})
}
