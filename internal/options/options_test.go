package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	value int
	name  string
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &config{}
		err := Apply(cfg,
			NoError(func(c *config) { c.value = 1 }),
			NoError(func(c *config) { c.value = 2 }),
			New(func(c *config) error {
				c.name = "set"

				return nil
			}),
		)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.value)
		require.Equal(t, "set", cfg.name)
	})

	t.Run("stops at first error", func(t *testing.T) {
		boom := errors.New("boom")

		cfg := &config{}
		err := Apply(cfg,
			New(func(c *config) error { return boom }),
			NoError(func(c *config) { c.value = 1 }),
		)
		require.ErrorIs(t, err, boom)
		require.Zero(t, cfg.value)
	})

	t.Run("no options", func(t *testing.T) {
		require.NoError(t, Apply(&config{}))
	})
}
