package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the scene file is looked up when -config is not given.
const DefaultPath = "config/scene.yaml"

// Config is the whole scene description plus runtime preferences.
type Config struct {
	Window     Window      `yaml:"window"`
	Camera     Camera      `yaml:"camera"`
	Objects    []Object    `yaml:"objects"`
	Labels     []Label     `yaml:"labels"`
	Model      Model       `yaml:"model"`
	Directives []Directive `yaml:"directives"`
	Logging    Logging     `yaml:"logging"`
	Debug      Debug       `yaml:"debug"`
}

type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	FPS        int32  `yaml:"fps"`
	Fullscreen bool   `yaml:"fullscreen"`
	Background Color  `yaml:"background"`
}

// Camera is a perspective camera. Fov is vertical, in degrees.
type Camera struct {
	Fov      float32 `yaml:"fov"`
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
}

// Object is a mesh-like element: kind "cube" or "line".
type Object struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Color    Color  `yaml:"color"`
	Size     Vec3   `yaml:"size"`
	Position Vec3   `yaml:"position"`
	Points   []Vec3 `yaml:"points"`
}

// Label is a floating text element. FontSize and Color may be omitted.
type Label struct {
	ID       string  `yaml:"id"`
	Text     string  `yaml:"text"`
	FontSize float32 `yaml:"font_size"`
	Color    *Color  `yaml:"color"`
	Position Vec3    `yaml:"position"`
	MaxWidth float32 `yaml:"max_width"`
	Font     string  `yaml:"font"`
}

// Model is the optional rigged model. An empty Source disables loading.
// Source is a local path or an http(s) URL.
type Model struct {
	Name     string  `yaml:"name"`
	Source   string  `yaml:"source"`
	CacheDir string  `yaml:"cache_dir"`
	Scale    float32 `yaml:"scale"`
	Position Vec3    `yaml:"position"`
	Clip     int     `yaml:"clip"`
}

// Directive targets exactly one of Mesh (object name) or Label (label id).
type Directive struct {
	Mesh     string `yaml:"mesh"`
	Label    string `yaml:"label"`
	Rotation Axes   `yaml:"rotation"`
	Position Axes   `yaml:"position"`
}

// Axes holds optional per-axis deltas; nil means the axis is absent.
type Axes struct {
	X *float32 `yaml:"x"`
	Y *float32 `yaml:"y"`
	Z *float32 `yaml:"z"`
}

type Logging struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type Debug struct {
	ShowFPS bool `yaml:"show_fps"`
	ShowLog bool `yaml:"show_log"`
}

// ErrDirectiveTarget is returned by Validate when a directive names both or neither target.
var ErrDirectiveTarget = errors.New("directive must name exactly one of mesh or label")

func f32(v float32) *float32 { return &v }

// Default returns the stock demo: a blue cube and a blue line, one label, and the cube
// spinning on x and y by 0.01 rad per frame.
func Default() Config {
	blue := MustColor("#1da2d8")
	return Config{
		Window: Window{
			Width:      1280,
			Height:     720,
			Title:      "scene-demo",
			FPS:        60,
			Background: MustColor("#000000"),
		},
		Camera: Camera{
			Fov:      75,
			Position: Vec3{0, 0, 15},
		},
		Objects: []Object{
			{Name: "cube", Kind: "cube", Color: blue, Size: Vec3{1, 1, 1}},
			{Name: "line", Kind: "line", Color: blue, Points: []Vec3{{-10, 0, 0}, {0, 10, 0}, {10, 0, 0}}},
		},
		Labels: []Label{
			{ID: "title", Text: "scene-demo", FontSize: 1, Position: Vec3{0, -3, 0}},
		},
		Model: Model{Name: "model", CacheDir: "assets/models/downloaded", Scale: 1},
		Directives: []Directive{
			{Mesh: "cube", Rotation: Axes{X: f32(0.01), Y: f32(0.01)}},
		},
		Logging: Logging{Level: "info", Dir: "logs"},
	}
}

// Load reads the YAML scene file at path on top of Default. A missing file yields Default
// with no error; a malformed or invalid one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(dirOf(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks object kinds and directive targets.
func (c Config) Validate() error {
	for i, o := range c.Objects {
		switch o.Kind {
		case "cube":
		case "line":
			if len(o.Points) < 2 {
				return fmt.Errorf("object %d (%s): line needs at least 2 points", i, o.Name)
			}
		default:
			return fmt.Errorf("object %d (%s): unknown kind %q", i, o.Name, o.Kind)
		}
	}
	for i, d := range c.Directives {
		if (d.Mesh == "") == (d.Label == "") {
			return fmt.Errorf("directive %d: %w", i, ErrDirectiveTarget)
		}
	}
	return nil
}
