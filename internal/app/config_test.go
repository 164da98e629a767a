package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	base := Config{Target: "all", Root: ".", Jobs: 2}

	t.Run("valid", func(t *testing.T) {
		cfg, err := NewConfig(base)
		require.NoError(t, err)
		assert.Equal(t, "all", cfg.Target)
	})

	t.Run("empty target", func(t *testing.T) {
		cfg := base
		cfg.Target = ""
		_, err := NewConfig(cfg)
		assert.ErrorContains(t, err, "target is a required argument")
	})

	t.Run("unknown target", func(t *testing.T) {
		cfg := base
		cfg.Target = "bullet"
		_, err := NewConfig(cfg)
		assert.ErrorContains(t, err, `unknown target "bullet"`)
	})

	t.Run("jobs floor", func(t *testing.T) {
		cfg := base
		cfg.Jobs = 0
		_, err := NewConfig(cfg)
		assert.ErrorContains(t, err, "jobs must be at least 1")
	})
}
