// Package config holds the tunables for the demo scene and host window.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/milk9111/diamondfall/prefabs"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	TPS          int               `yaml:"tps"`
	Window       WindowConfig      `yaml:"window"`
	World        WorldConfig       `yaml:"world"`
	Player       PlayerConfig      `yaml:"player"`
	Background   PointConfig       `yaml:"background"`
	Platforms    []PlatformConfig  `yaml:"platforms"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Spawn        SpawnConfig       `yaml:"spawn"`
	HUD          HUDConfig         `yaml:"hud"`
	Log          LogConfig         `yaml:"log"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"`
}

type PlayerConfig struct {
	SpawnX    float64 `yaml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type CollectibleConfig struct {
	InitialCount int     `yaml:"initial_count"`
	StartX       float64 `yaml:"start_x"`
	StepX        float64 `yaml:"step_x"`
	StartY       float64 `yaml:"start_y"`
	Points       int     `yaml:"points"`
	FallBound    float64 `yaml:"fall_bound"`
	RespawnMinX  float64 `yaml:"respawn_min_x"`
	RespawnMaxX  float64 `yaml:"respawn_max_x"`
	RefallSpeed  float64 `yaml:"refall_speed"`
	BounceMin    float64 `yaml:"bounce_min"`
	BounceMax    float64 `yaml:"bounce_max"`
}

type SpawnConfig struct {
	PeriodMS int `yaml:"period_ms"`
}

// Period returns the spawn interval.
func (s SpawnConfig) Period() time.Duration {
	return time.Duration(s.PeriodMS) * time.Millisecond
}

type HUDConfig struct {
	X     float64           `yaml:"x"`
	Y     float64           `yaml:"y"`
	Size  float64           `yaml:"size"`
	Color prefabs.YAMLColor `yaml:"color"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// FrameDuration is the simulated time covered by one tick.
func (c Config) FrameDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// Default mirrors default.yaml.
func Default() Config {
	return Config{
		TPS:        60,
		Window:     WindowConfig{Title: "diamondfall", Scale: 1},
		World:      WorldConfig{Width: 800, Height: 600, Gravity: 300},
		Player:     PlayerConfig{SpawnX: 400, SpawnY: 530, MoveSpeed: 160, JumpSpeed: 330},
		Background: PointConfig{X: 400, Y: 300},
		Platforms: []PlatformConfig{
			{X: 400, Y: 580, Scale: 2},
			{X: 600, Y: 400, Scale: 1},
			{X: 50, Y: 250, Scale: 1},
		},
		Collectibles: CollectibleConfig{
			InitialCount: 6,
			StartX:       100,
			StepX:        150,
			StartY:       0,
			Points:       10,
			FallBound:    600,
			RespawnMinX:  50,
			RespawnMaxX:  750,
			RefallSpeed:  100,
			BounceMin:    0.2,
			BounceMax:    0.5,
		},
		Spawn: SpawnConfig{PeriodMS: 1000},
		HUD: HUDConfig{
			X:     16,
			Y:     16,
			Size:  32,
			Color: prefabs.YAMLColor{Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate rejects values the scene cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.TPS > 0, "tps must be positive, got %d", c.TPS)
	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.Gravity >= 0, "world.gravity must not be negative, got %v", c.World.Gravity)
	check(c.Player.MoveSpeed >= 0, "player.move_speed must not be negative")
	check(c.Player.JumpSpeed >= 0, "player.jump_speed must not be negative")
	for i, p := range c.Platforms {
		check(p.Scale > 0, "platforms[%d].scale must be positive", i)
	}
	col := c.Collectibles
	check(col.InitialCount >= 0, "collectibles.initial_count must not be negative")
	check(col.Points >= 0, "collectibles.points must not be negative")
	check(col.FallBound > 0, "collectibles.fall_bound must be positive, got %v", col.FallBound)
	check(col.RefallSpeed >= 0, "collectibles.refall_speed must not be negative, got %v", col.RefallSpeed)
	check(col.BounceMin >= 0, "collectibles.bounce_min must not be negative, got %v", col.BounceMin)
	check(col.RespawnMinX <= col.RespawnMaxX, "collectibles.respawn_min_x (%v) exceeds respawn_max_x (%v)", col.RespawnMinX, col.RespawnMaxX)
	check(col.BounceMin <= col.BounceMax, "collectibles.bounce_min (%v) exceeds bounce_max (%v)", col.BounceMin, col.BounceMax)
	check(c.Spawn.PeriodMS > 0, "spawn.period_ms must be positive, got %d", c.Spawn.PeriodMS)
	check(c.HUD.Size > 0, "hud.size must be positive")

	return errors.Join(errs...)
}
