package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the optional config file, relative to the process working directory.
const ConfigPath = "config/diorama.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the diorama's startup constants. Every field has a default; a config file
// only needs the keys it wants to change.
type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	Lighting Lighting `yaml:"lighting"`

	// GroundSize is the edge length of the square asphalt plane.
	GroundSize float32 `yaml:"ground_size"`
	// ShowStats draws FPS and heap usage in the top-right corner.
	ShowStats bool `yaml:"show_stats"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Window is the initial output surface.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// MSAA requests 4x multisample antialiasing.
	MSAA bool `yaml:"msaa"`
}

// Camera holds projection and orbit parameters.
type Camera struct {
	FOV      float32    `yaml:"fov"` // vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`

	DampingFactor float32 `yaml:"damping_factor"`
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"`

	// RotateSpeed scales drag-to-angle translation: a drag across the full window height
	// turns the orbit by RotateSpeed full revolutions.
	RotateSpeed float32 `yaml:"rotate_speed"`
	// ZoomSpeed scales wheel dollying: one notch multiplies the distance by 0.95^ZoomSpeed.
	ZoomSpeed float32 `yaml:"zoom_speed"`
}

// Lighting holds light intensities and shadow quality.
type Lighting struct {
	ShadowMapResolution  int     `yaml:"shadow_map_resolution"`
	AmbientIntensity     float32 `yaml:"ambient_intensity"`
	DirectionalIntensity float32 `yaml:"directional_intensity"`
	PointLightIntensity  float32 `yaml:"point_light_intensity"`
	PointLightRange      float32 `yaml:"point_light_range"`
}

// Default returns the diorama's fixed configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Parking Lot Diorama",
			Width:  1280,
			Height: 720,
			MSAA:   true,
		},
		Camera: Camera{
			FOV:           75,
			Near:          0.1,
			Far:           1000,
			Position:      [3]float32{5, 3, 8},
			DampingFactor: 0.05,
			MinDistance:   3,
			MaxDistance:   20,
			RotateSpeed:   1,
			ZoomSpeed:     1,
		},
		Lighting: Lighting{
			ShadowMapResolution:  2048,
			AmbientIntensity:     0.4,
			DirectionalIntensity: 0.8,
			PointLightIntensity:  0.6,
			PointLightRange:      15,
		},
		GroundSize: 30,
		LogLevel:   "info",
	}
}

// Load reads path as YAML on top of Default. A missing file is not an error and yields
// Default(); a file that does not parse or validate is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the camera, lights, or window cannot work with.
func (c Config) Validate() error {
	cam := c.Camera
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case cam.FOV <= 0 || cam.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v not in (0,180)", ErrInvalid, cam.FOV)
	case cam.Near <= 0 || cam.Far <= cam.Near:
		return fmt.Errorf("%w: camera clip planes near=%v far=%v", ErrInvalid, cam.Near, cam.Far)
	case cam.DampingFactor <= 0 || cam.DampingFactor > 1:
		return fmt.Errorf("%w: damping factor %v not in (0,1]", ErrInvalid, cam.DampingFactor)
	case cam.MinDistance <= 0 || cam.MaxDistance < cam.MinDistance:
		return fmt.Errorf("%w: orbit distance range [%v,%v]", ErrInvalid, cam.MinDistance, cam.MaxDistance)
	case cam.Position == cam.Target:
		return fmt.Errorf("%w: camera position equals target", ErrInvalid)
	case c.Lighting.ShadowMapResolution <= 0:
		return fmt.Errorf("%w: shadow map resolution %d", ErrInvalid, c.Lighting.ShadowMapResolution)
	case c.Lighting.AmbientIntensity < 0 || c.Lighting.DirectionalIntensity < 0 || c.Lighting.PointLightIntensity < 0:
		return fmt.Errorf("%w: negative light intensity", ErrInvalid)
	case c.Lighting.PointLightRange <= 0:
		return fmt.Errorf("%w: point light range %v", ErrInvalid, c.Lighting.PointLightRange)
	case c.GroundSize <= 0:
		return fmt.Errorf("%w: ground size %v", ErrInvalid, c.GroundSize)
	}
	return nil
}
