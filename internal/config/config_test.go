package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "turntable.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := Default().Settings()

	assert.Equal(t, uint32(106), s.LineCount)
	assert.Equal(t, float32(0.002), s.LineThickness)
	assert.Equal(t, float32(0.03), s.Height)
	assert.Equal(t, float32(0.1), s.InnerRadius)
	assert.InDelta(t, 0.17453292, s.ScrollMultiplier, 1e-7)
	assert.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `{"turntable": {"radius": 0.25, "lineCount": 0}, "window": {"title": "Vase"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(0.25), cfg.Turntable.Radius)
	assert.Equal(t, uint32(0), cfg.Turntable.LineCount, "explicit zero lines is a valid, empty grip")
	assert.Equal(t, float32(0.03), cfg.Turntable.Height, "missing keys keep defaults")
	assert.Equal(t, "Vase", cfg.Window.Title)
	assert.Equal(t, int32(1280), cfg.Window.Width)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeFile(t, `{"turntable": `))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeFile(t, `{"turntable": {"radius": -1}}`))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeFile(t, `{"turntable": {"height": -0.1}}`))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Turntable.ScrollDegrees = 45
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}
