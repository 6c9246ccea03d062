package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesStartupConstants(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, float32(75), c.Camera.FOV)
	assert.Equal(t, float32(0.1), c.Camera.Near)
	assert.Equal(t, float32(1000), c.Camera.Far)
	assert.Equal(t, [3]float32{5, 3, 8}, c.Camera.Position)
	assert.Equal(t, float32(0.05), c.Camera.DampingFactor)
	assert.Equal(t, float32(3), c.Camera.MinDistance)
	assert.Equal(t, float32(20), c.Camera.MaxDistance)
	assert.Equal(t, float32(30), c.GroundSize)
	assert.Equal(t, 2048, c.Lighting.ShadowMapResolution)
	assert.Equal(t, float32(0.4), c.Lighting.AmbientIntensity)
	assert.Equal(t, float32(0.8), c.Lighting.DirectionalIntensity)
	assert.Equal(t, float32(0.6), c.Lighting.PointLightIntensity)
	assert.Equal(t, float32(15), c.Lighting.PointLightRange)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diorama.yaml")
	data := `
show_stats: true
camera:
  max_distance: 25
  position: [0, 4, 12]
window:
  msaa: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.ShowStats)
	assert.Equal(t, float32(25), c.Camera.MaxDistance)
	assert.Equal(t, [3]float32{0, 4, 12}, c.Camera.Position)
	assert.False(t, c.Window.MSAA)

	assert.Equal(t, float32(3), c.Camera.MinDistance)
	assert.Equal(t, float32(75), c.Camera.FOV)
	assert.Equal(t, 2048, c.Lighting.ShadowMapResolution)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("camera: [unterminated"), 0o644))
	_, err := Load(garbled)
	assert.Error(t, err)

	inverted := filepath.Join(dir, "inverted.yaml")
	require.NoError(t, os.WriteFile(inverted, []byte("camera:\n  min_distance: 30\n"), 0o644))
	_, err = Load(inverted)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window height", func(c *Config) { c.Window.Height = 0 }},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"zero damping", func(c *Config) { c.Camera.DampingFactor = 0 }},
		{"eye on target", func(c *Config) { c.Camera.Position = c.Camera.Target }},
		{"no shadow map", func(c *Config) { c.Lighting.ShadowMapResolution = 0 }},
		{"negative ambient", func(c *Config) { c.Lighting.AmbientIntensity = -1 }},
		{"zero range", func(c *Config) { c.Lighting.PointLightRange = 0 }},
		{"zero ground", func(c *Config) { c.GroundSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
