package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadFromEnv("testdata/missing.env")
		assert.Equal(t, Default(), cfg)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("BOOK_SYMBOL", "ETH")
		t.Setenv("BOOK_SEED_DEPTH", "3")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := LoadFromEnv("testdata/missing.env")
		assert.Equal(t, "ETH", cfg.Symbol)
		assert.Equal(t, 3, cfg.SeedDepth)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("bad depth ignored", func(t *testing.T) {
		t.Setenv("BOOK_SEED_DEPTH", "lots")
		cfg := LoadFromEnv("testdata/missing.env")
		assert.Equal(t, Default().SeedDepth, cfg.SeedDepth)

		t.Setenv("BOOK_SEED_DEPTH", "-1")
		cfg = LoadFromEnv("testdata/missing.env")
		assert.Equal(t, Default().SeedDepth, cfg.SeedDepth)
	})
}
