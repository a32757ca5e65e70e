package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "20", "-h", "8", "-seed", "5", "-cascade", "-sim", "pipes-cascade"}))

	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 8, cfg.Height)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.True(t, cfg.Cascade)
	assert.Equal(t, "pipes-cascade", cfg.Sim)
	assert.Equal(t, map[string]string{"w": "20", "h": "8", "seed": "5", "cascade": "true"}, cfg.SimConfig())
}

func TestViewerFlagsAreSeparate(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	assert.Nil(t, fs.Lookup("scale"))
	assert.Nil(t, fs.Lookup("per-frame"))
	require.Error(t, fs.Parse([]string{"-scale", "2"}))

	viewer := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(viewer)
	cfg.BindViewer(viewer)
	require.NoError(t, viewer.Parse([]string{"-scale", "2", "-per-frame", "9", "-tps", "30"}))
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 9, cfg.PerFrame)
	assert.Equal(t, 30, cfg.TPS)
}

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "pipes", cfg.Sim)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}
