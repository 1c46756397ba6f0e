package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/anima-math/engine/core"
	"github.com/spaghettifunk/anima-math/engine/math"
)

// Vec3 is a three element TOML array, e.g. position = [0.0, 1.5, -2.0].
type Vec3 [3]float32

func (v Vec3) ToVec3() math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

/** @brief Camera placement and projection of a playground scene. */
type CameraConfig struct {
	Position Vec3    `toml:"position"`
	Target   Vec3    `toml:"target"`
	FOV      float32 `toml:"fov"` // vertical, degrees
	Width    float32 `toml:"width"`
	Height   float32 `toml:"height"`
	Near     float32 `toml:"near"`
	Far      float32 `toml:"far"`
	// radians per second around the target, 0 keeps the camera still
	OrbitSpeed float32 `toml:"orbit_speed"`
}

/** @brief A ring of generated cubes around the origin, all facing the centre. */
type RingConfig struct {
	Count  int     `toml:"count"`
	Radius float32 `toml:"radius"`
	Size   float32 `toml:"size"`
	Spin   float32 `toml:"spin"`
	Bob    float32 `toml:"bob"`
	Pulse  float32 `toml:"pulse"`
}

/** @brief An explicitly placed cube. */
type ObjectConfig struct {
	Name     string  `toml:"name"`
	Position Vec3    `toml:"position"`
	Rotation Vec3    `toml:"rotation"` // euler degrees (pitch, yaw, roll)
	Scale    Vec3    `toml:"scale"`
	Size     float32 `toml:"size"`
	Spin     float32 `toml:"spin"`  // degrees per second about the local up axis
	Bob      float32 `toml:"bob"`   // vertical bobbing amplitude
	Pulse    float32 `toml:"pulse"` // relative scale oscillation in [0, 1)
}

/**
 * @brief A playground scene: what to simulate and for how long.
 */
type Config struct {
	LogLevel string         `toml:"log_level"`
	Frames   int            `toml:"frames"`
	TimeStep float32        `toml:"time_step"` // seconds per simulated frame
	Seed     uint64         `toml:"seed"`
	Camera   CameraConfig   `toml:"camera"`
	Ring     RingConfig     `toml:"ring"`
	Objects  []ObjectConfig `toml:"object"`
}

// Default returns the scene used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Frames:   120,
		TimeStep: 1.0 / 60.0,
		Seed:     1,
		Camera: CameraConfig{
			Position:   Vec3{0, 2, 10},
			Target:     Vec3{0, 0, 0},
			FOV:        45,
			Width:      1280,
			Height:     720,
			Near:       0.1,
			Far:        100,
			OrbitSpeed: 0.5,
		},
		Ring: RingConfig{
			Count:  8,
			Radius: 4,
			Size:   0.5,
			Spin:   90,
			Bob:    0.25,
			Pulse:  0.1,
		},
		Objects: []ObjectConfig{
			{
				Name:  "centre",
				Scale: Vec3{1, 1, 1},
				Size:  1,
				Spin:  45,
			},
		},
	}
}

// Load reads and validates the scene at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	core.LogDebug("loaded scene %s: %d frames, %d ring objects, %d placed objects", path, cfg.Frames, cfg.Ring.Count, len(cfg.Objects))
	return cfg, nil
}

/**
 * @brief Decodes a TOML scene on top of Default and validates it. Keys
 * that do not map to a field are rejected.
 */
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// explicit objects replace the default ones rather than merging into them
	cfg.Objects = nil

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", core.ErrInvalidConfig, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", core.ErrInvalidConfig, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidConfig, err.Error())
	}

	for i := range cfg.Objects {
		if cfg.Objects[i].Scale == (Vec3{}) {
			cfg.Objects[i].Scale = Vec3{1, 1, 1}
		}
		if cfg.Objects[i].Size == 0 {
			cfg.Objects[i].Size = 1
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot drive a simulation.
func (c *Config) Validate() error {
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch {
	case c.Frames <= 0:
		return fmt.Errorf("%w: frames must be > 0, got %d", core.ErrInvalidConfig, c.Frames)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time_step must be > 0, got %v", core.ErrInvalidConfig, c.TimeStep)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov must be in (0, 180), got %v", core.ErrInvalidConfig, c.Camera.FOV)
	case c.Camera.Width <= 0 || c.Camera.Height <= 0:
		return fmt.Errorf("%w: camera viewport %vx%v is empty", core.ErrInvalidConfig, c.Camera.Width, c.Camera.Height)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip planes near=%v far=%v", core.ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Camera.Position == c.Camera.Target:
		return fmt.Errorf("%w: camera position equals its target", core.ErrInvalidConfig)
	case c.Ring.Count < 0:
		return fmt.Errorf("%w: ring.count must be >= 0, got %d", core.ErrInvalidConfig, c.Ring.Count)
	case c.Ring.Count > 0 && c.Ring.Size <= 0:
		return fmt.Errorf("%w: ring.size must be > 0, got %v", core.ErrInvalidConfig, c.Ring.Size)
	case c.Ring.Pulse < 0 || c.Ring.Pulse >= 1:
		return fmt.Errorf("%w: ring.pulse must be in [0, 1), got %v", core.ErrInvalidConfig, c.Ring.Pulse)
	}
	for i, o := range c.Objects {
		if o.Scale[0] == 0 || o.Scale[1] == 0 || o.Scale[2] == 0 {
			return fmt.Errorf("%w: object %d (%q) has a zero scale axis", core.ErrInvalidConfig, i, o.Name)
		}
		if o.Size <= 0 {
			return fmt.Errorf("%w: object %d (%q) size must be > 0", core.ErrInvalidConfig, i, o.Name)
		}
		if o.Pulse < 0 || o.Pulse >= 1 {
			return fmt.Errorf("%w: object %d (%q) pulse must be in [0, 1)", core.ErrInvalidConfig, i, o.Name)
		}
	}
	return nil
}

// Marshal encodes the scene back to TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
