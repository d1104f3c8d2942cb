package config

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/automoto/dunkball/shared/rig"
	"github.com/automoto/dunkball/shared/team"
	"gopkg.in/yaml.v3"
)

// PhysicsConfig contains rigid-body world settings. Positions and velocities
// everywhere else are in pixels; the physics backend works in meters.
type PhysicsConfig struct {
	PixelsPerMeter     float64 `yaml:"pixels_per_meter"`
	Gravity            float64 `yaml:"gravity"` // m/s^2, pointing down
	TickRate           int     `yaml:"tick_rate"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Body (pixels)
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`

	// Material
	Density        float64 `yaml:"density"`
	Friction       float64 `yaml:"friction"`
	Restitution    float64 `yaml:"restitution"`
	LinearDamping  float64 `yaml:"linear_damping"`
	AngularDamping float64 `yaml:"angular_damping"`
	GravityScale   float64 `yaml:"gravity_scale"`

	// Jump
	JumpImpulse float64 `yaml:"jump_impulse"`  // N*s along the body's up axis
	MaxJumpTilt float64 `yaml:"max_jump_tilt"` // degrees from upright

	// Balance
	UprightStiffness float64 `yaml:"upright_stiffness"` // N*m per unit of sin(angle/2)
	TorqueOnCollide  float64 `yaml:"torque_on_collide"` // N*m*s applied on landing

	// Arm rig (pixels, degrees)
	ShoulderX     float64 `yaml:"shoulder_x"`
	ShoulderY     float64 `yaml:"shoulder_y"`
	ArmReach      float64 `yaml:"arm_reach"`
	HandRadius    float64 `yaml:"hand_radius"`
	ArmSwingSpeed float64 `yaml:"arm_swing_speed"`
	MinArmSwing   float64 `yaml:"min_arm_swing"`
	MaxArmSwing   float64 `yaml:"max_arm_swing"`

	Spawns []SpawnConfig `yaml:"spawns"`
}

// Rig returns the arm rig described by the player config.
func (p PlayerConfig) Rig() rig.Rig {
	return rig.Rig{
		ShoulderX:  p.ShoulderX,
		ShoulderY:  p.ShoulderY,
		Reach:      p.ArmReach,
		SwingSpeed: p.ArmSwingSpeed,
		MinSwing:   p.MinArmSwing,
		MaxSwing:   p.MaxArmSwing,
	}
}

// SpawnConfig places one player.
type SpawnConfig struct {
	Side team.Side `yaml:"side"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
}

// BallConfig contains ball configuration
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	Density      float64 `yaml:"density"`
	Friction     float64 `yaml:"friction"`
	Restitution  float64 `yaml:"restitution"`
	GravityScale float64 `yaml:"gravity_scale"`
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
}

// ShotConfig feeds the trajectory solver. Its units are the solver's own, the
// speed multiplier maps them to pixels per second.
type ShotConfig struct {
	Gravity         float64 `yaml:"gravity"`
	GravityScale    float64 `yaml:"gravity_scale"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// BoxConfig is an axis-aligned box given by its centre and half extents.
type BoxConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// HoopConfig places one hoop. The backboard offset is mirrored for the left side.
type HoopConfig struct {
	Side team.Side `yaml:"side"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
}

// CourtConfig contains the static layout.
type CourtConfig struct {
	Ground         BoxConfig    `yaml:"ground"`
	GroundFriction float64      `yaml:"ground_friction"`
	Walls          []BoxConfig  `yaml:"walls"`
	Hoops          []HoopConfig `yaml:"hoops"`

	BackboardOffsetX    float64 `yaml:"backboard_offset_x"`
	BackboardOffsetY    float64 `yaml:"backboard_offset_y"`
	BackboardHalfWidth  float64 `yaml:"backboard_half_width"`
	BackboardHalfHeight float64 `yaml:"backboard_half_height"`

	// Sensor space bounds, world coordinates of the top-left corner plus size.
	Left       float64 `yaml:"left"`
	Top        float64 `yaml:"top"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	SensorCell int     `yaml:"sensor_cell"`
}

// SimConfig contains headless runner settings
type SimConfig struct {
	Matches  int    `yaml:"matches"`
	Steps    int    `yaml:"steps"`
	LogLevel string `yaml:"log_level"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHands bool `yaml:"draw_hands"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// file mirrors the globals for YAML overlays.
type file struct {
	Window  *Config        `yaml:"window"`
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *PlayerConfig  `yaml:"player"`
	Ball    *BallConfig    `yaml:"ball"`
	Shot    *ShotConfig    `yaml:"shot"`
	Court   *CourtConfig   `yaml:"court"`
	Sim     *SimConfig     `yaml:"sim"`
	Debug   *DebugConfig   `yaml:"debug"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Ball BallConfig
var Shot ShotConfig
var Court CourtConfig
var Sim SimConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange   = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red      = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Blue     = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	DarkGray = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its default.
func Reset() {
	C = &Config{
		Width:  1200,
		Height: 800,
	}

	Physics = PhysicsConfig{
		PixelsPerMeter:     200,
		Gravity:            9.81,
		TickRate:           60,
		VelocityIterations: 8,
		PositionIterations: 3,
	}

	Player = PlayerConfig{
		HalfWidth:  15,
		HalfHeight: 55,

		Density:        20,
		Friction:       0.5,
		Restitution:    0.7,
		LinearDamping:  1.0,
		AngularDamping: 2.0,
		GravityScale:   0.3,

		JumpImpulse: 4.0,
		MaxJumpTilt: 80,

		UprightStiffness: 3.2,
		TorqueOnCollide:  0.09,

		ShoulderX:     7,
		ShoulderY:     17,
		ArmReach:      70,
		HandRadius:    15,
		ArmSwingSpeed: 300,
		MinArmSwing:   0,
		MaxArmSwing:   155,

		Spawns: []SpawnConfig{
			{Side: team.Left, X: -300, Y: 400},
			{Side: team.Left, X: -150, Y: 400},
			{Side: team.Right, X: 150, Y: 400},
			{Side: team.Right, X: 300, Y: 400},
		},
	}

	Ball = BallConfig{
		Radius:       17,
		Density:      5,
		Friction:     0.2,
		Restitution:  1.1,
		GravityScale: 0.4,
		SpawnX:       0,
		SpawnY:       400,
	}

	Shot = ShotConfig{
		Gravity:         9.81,
		GravityScale:    0.4,
		SpeedMultiplier: 14.6,
	}

	Court = CourtConfig{
		Ground:         BoxConfig{X: 0, Y: -100, HalfWidth: 500, HalfHeight: 50},
		GroundFriction: 0.2,
		Walls: []BoxConfig{
			{X: -550, Y: 0, HalfWidth: 50, HalfHeight: 200},
			{X: 550, Y: 0, HalfWidth: 50, HalfHeight: 200},
		},
		Hoops: []HoopConfig{
			{Side: team.Left, X: -400, Y: 200},
			{Side: team.Right, X: 400, Y: 200},
		},
		BackboardOffsetX:    37,
		BackboardOffsetY:    40,
		BackboardHalfWidth:  7,
		BackboardHalfHeight: 40,

		Left:       -600,
		Top:        800,
		Width:      1200,
		Height:     1000,
		SensorCell: 8,
	}

	Sim = SimConfig{
		Matches:  4,
		Steps:    600,
		LogLevel: "info",
	}

	Debug = DebugConfig{}
}

// Load overlays the YAML file at path onto the current configuration.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := LoadReader(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadReader overlays YAML from r. Sections that are absent keep their values;
// unknown keys are rejected.
func LoadReader(r io.Reader) error {
	overlay := file{
		Window:  C,
		Physics: &Physics,
		Player:  &Player,
		Ball:    &Ball,
		Shot:    &Shot,
		Court:   &Court,
		Sim:     &Sim,
		Debug:   &Debug,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&overlay); err != nil && err != io.EOF {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}
