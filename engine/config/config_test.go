package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/anima-math/engine/core"
	"github.com/spaghettifunk/anima-math/engine/math"
)

const sampleScene = `
log_level = "debug"
frames = 30
time_step = 0.02
seed = 7

[camera]
position = [0.0, 3.0, 12.0]
target = [0.0, 0.0, 0.0]
fov = 60.0
width = 800.0
height = 600.0
near = 0.5
far = 50.0
orbit_speed = 0.25

[ring]
count = 4
radius = 3.0
size = 0.5

[[object]]
name = "pillar"
position = [1.0, 2.0, 3.0]
rotation = [0.0, 90.0, 0.0]
scale = [2.0, 2.0, 2.0]
spin = 30.0

[[object]]
position = [-2.0, 0.0, 0.0]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "debug" || cfg.Frames != 30 || cfg.TimeStep != 0.02 || cfg.Seed != 7 {
		t.Errorf("top level = %+v", cfg)
	}
	if got := cfg.Camera.Position.ToVec3(); got != math.NewVec3(0, 3, 12) {
		t.Errorf("camera position = %v", got)
	}
	if cfg.Camera.FOV != 60 || cfg.Camera.Near != 0.5 || cfg.Camera.Far != 50 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Ring.Count != 4 || cfg.Ring.Radius != 3 {
		t.Errorf("ring = %+v", cfg.Ring)
	}
	if len(cfg.Objects) != 2 {
		t.Fatalf("objects = %d, want 2", len(cfg.Objects))
	}
	if o := cfg.Objects[0]; o.Name != "pillar" || o.Rotation != (Vec3{0, 90, 0}) || o.Spin != 30 || o.Size != 1 {
		t.Errorf("object 0 = %+v", o)
	}
	if o := cfg.Objects[1]; o.Name != "" || o.Scale != (Vec3{1, 1, 1}) || o.Size != 1 {
		t.Errorf("object 1 defaults = %+v", o)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`frames = 10`))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Frames != 10 {
		t.Errorf("frames = %d", cfg.Frames)
	}
	if cfg.Camera != def.Camera || cfg.Ring != def.Ring {
		t.Errorf("defaults not kept: %+v", cfg)
	}
	if len(cfg.Objects) != 0 {
		t.Errorf("objects = %v, want none", cfg.Objects)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", `colour = "red"`},
		{"unknown nested key", "[camera]\nzoom = 2.0"},
		{"syntax", `frames = `},
		{"wrong type", `frames = "many"`},
		{"bad log level", `log_level = "loud"`},
		{"no frames", `frames = 0`},
		{"negative time step", `time_step = -1.0`},
		{"fov too wide", "[camera]\nfov = 180.0"},
		{"empty viewport", "[camera]\nwidth = 0.0"},
		{"inverted clip planes", "[camera]\nnear = 10.0\nfar = 1.0"},
		{"camera on target", "[camera]\nposition = [0.0, 0.0, 0.0]"},
		{"negative ring", "[ring]\ncount = -1"},
		{"zero scale axis", "[[object]]\nscale = [1.0, 0.0, 1.0]"},
		{"negative size", "[[object]]\nsize = -1.0"},
		{"ring pulse too large", "[ring]\npulse = 1.0"},
		{"object pulse negative", "[[object]]\npulse = -0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(sampleScene), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Frames != 30 {
		t.Errorf("frames = %d", cfg.Frames)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[camera]") {
		t.Errorf("encoded scene missing camera table:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, data)
	}
	if back.Camera != cfg.Camera || back.Frames != cfg.Frames || len(back.Objects) != len(cfg.Objects) {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}
