package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var Config = Default()

type Configuration struct {
	LogLevel int    `json:"logLevel" yaml:"logLevel"`
	LogFile  string `json:"logFile" yaml:"logFile"`

	// Frontend selects the terminal backend: "ansi" or "tcell".
	Frontend string `json:"frontend" yaml:"frontend"`

	Field  Field  `json:"field" yaml:"field"`
	Paddle Paddle `json:"paddle" yaml:"paddle"`
	Ball   Ball   `json:"ball" yaml:"ball"`

	FPS int `json:"fps" yaml:"fps"`
	// MaxStepsPerFrame caps fixed steps drained in one frame. 0 disables the cap.
	MaxStepsPerFrame int `json:"maxStepsPerFrame" yaml:"maxStepsPerFrame"`
	// Seed for the match random source. 0 seeds from the wall clock.
	Seed uint64 `json:"seed" yaml:"seed"`
	// KeyHoldMs is how long a terminal key counts as held after a repeat.
	KeyHoldMs int `json:"keyHoldMs" yaml:"keyHoldMs"`
	// KeyRepeatDelayMs is how long a first press counts as held, covering the
	// OS delay before auto-repeat starts.
	KeyRepeatDelayMs int `json:"keyRepeatDelayMs" yaml:"keyRepeatDelayMs"`

	Audio   Audio   `json:"audio" yaml:"audio"`
	Effects Effects `json:"effects" yaml:"effects"`
}

type Field struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type Paddle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Speed  float64 `json:"speed" yaml:"speed"`
	Inset  float64 `json:"inset" yaml:"inset"`
}

type Ball struct {
	Size        float64 `json:"size" yaml:"size"`
	Speed       float64 `json:"speed" yaml:"speed"`
	TrailLength int     `json:"trailLength" yaml:"trailLength"`
}

type Audio struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	SampleRate int     `json:"sampleRate" yaml:"sampleRate"`
	Volume     float64 `json:"volume" yaml:"volume"`
}

type Effects struct {
	Grid      bool `json:"grid" yaml:"grid"`
	Scanlines bool `json:"scanlines" yaml:"scanlines"`
	Jitter    bool `json:"jitter" yaml:"jitter"`
	Blur      bool `json:"blur" yaml:"blur"`
	Trail     bool `json:"trail" yaml:"trail"`
}

// Default returns the classic 800x600 table.
func Default() Configuration {
	return Configuration{
		LogLevel: int(slog.LevelInfo),
		Frontend: "ansi",
		Field:    Field{Width: 800, Height: 600},
		Paddle:   Paddle{Width: 15, Height: 80, Speed: 6, Inset: 30},
		Ball:     Ball{Size: 12, Speed: 5, TrailLength: 5},

		FPS:              60,
		MaxStepsPerFrame: 5,
		KeyHoldMs:        120,
		KeyRepeatDelayMs: 300,

		Audio:   Audio{Enabled: true, SampleRate: 44100, Volume: 0.8},
		Effects: Effects{Grid: true, Scanlines: true, Jitter: true, Blur: true, Trail: true},
	}
}

// FixedStep is the simulation increment in seconds.
func (c Configuration) FixedStep() float64 {
	return 1.0 / float64(c.FPS)
}

func (c Configuration) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func (c Configuration) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMs) * time.Millisecond
}

func (c Configuration) KeyRepeatDelay() time.Duration {
	return time.Duration(c.KeyRepeatDelayMs) * time.Millisecond
}

func (c Configuration) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle height %v exceeds field height %v", c.Paddle.Height, c.Field.Height))
	}
	if c.Paddle.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddle speed must not be negative, got %v", c.Paddle.Speed))
	}
	if c.Paddle.Inset < 0 || 2*(c.Paddle.Inset+c.Paddle.Width) >= c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle inset %v does not fit field width %v", c.Paddle.Inset, c.Field.Width))
	}
	if c.Ball.Size <= 0 || c.Ball.Size >= c.Field.Height {
		errs = append(errs, fmt.Errorf("ball size must be in (0, field height), got %v", c.Ball.Size))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Ball.TrailLength < 0 {
		errs = append(errs, fmt.Errorf("trail length must not be negative, got %d", c.Ball.TrailLength))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.MaxStepsPerFrame < 0 {
		errs = append(errs, fmt.Errorf("maxStepsPerFrame must not be negative, got %d", c.MaxStepsPerFrame))
	}
	if c.KeyHoldMs < 0 {
		errs = append(errs, fmt.Errorf("keyHoldMs must not be negative, got %d", c.KeyHoldMs))
	}
	if c.KeyRepeatDelayMs < 0 {
		errs = append(errs, fmt.Errorf("keyRepeatDelayMs must not be negative, got %d", c.KeyRepeatDelayMs))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	switch c.Frontend {
	case "ansi", "tcell":
	default:
		errs = append(errs, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	return errors.Join(errs...)
}

// Parse decodes data over the defaults. The format is picked from ext
// (".json", ".yaml" or ".yml").
func Parse(data []byte, ext string) (Configuration, error) {
	c := Default()

	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	case ".json", "":
		err = json.Unmarshal(data, &c)
	default:
		return c, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// LoadConfig reads path (or config.json when empty) into Config. Any failure
// leaves the defaults in place.
func LoadConfig(path string) {
	if path == "" {
		path = "config.json"
	}

	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
		Config = Default()
		return
	}

	c, err := Parse(cf, filepath.Ext(path))
	if err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		Config = Default()
		return
	}

	Config = c
}
