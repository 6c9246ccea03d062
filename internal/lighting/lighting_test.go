package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-diorama/internal/config"
	"parking-diorama/internal/scene"
)

func TestRigAddsOneAmbientAndOneSun(t *testing.T) {
	sc := scene.New()
	cfg := config.Default().Lighting
	amb, sun := Rig(sc, cfg)

	lights := sc.Lights()
	require.Len(t, lights, 2)
	assert.Same(t, amb, lights[0])
	assert.Same(t, sun, lights[1])

	assert.Equal(t, float32(0.4), amb.Intensity)
	assert.Equal(t, float32(0.8), sun.Intensity)
}

func TestSunShadowCoversGround(t *testing.T) {
	cfg := config.Default()
	sun := Sun(cfg.Lighting)
	sh := sun.Shadow

	assert.True(t, sun.CastShadow)
	assert.Equal(t, 2048, sh.MapWidth)
	assert.Equal(t, 2048, sh.MapHeight)
	assert.Equal(t, float32(0.5), sh.Near)
	assert.Equal(t, float32(50), sh.Far)

	half := cfg.GroundSize / 2
	assert.LessOrEqual(t, sh.Left, -half)
	assert.GreaterOrEqual(t, sh.Right, half)
	assert.LessOrEqual(t, sh.Bottom, -half)
	assert.GreaterOrEqual(t, sh.Top, half)
}

func TestPoleLight(t *testing.T) {
	pl := PoleLight(config.Default().Lighting)
	assert.Equal(t, float32(15), pl.Range)
	assert.Equal(t, float32(0.6), pl.Intensity)
	assert.True(t, pl.CastShadow)
	assert.Equal(t, scene.Hex(0xffffcc), pl.Color)

	// Each call is independent so every pole owns its light.
	assert.NotSame(t, pl, PoleLight(config.Default().Lighting))
}
