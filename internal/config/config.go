// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Drawing constants. Not configurable through the file.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
	PauseButtonOffsetX = 140
	IndicatorOffsetX   = 30
	IndicatorRadius    = 14.0
	ClickCooldown      = 150 // мс

	PathWidth        = 22.0
	HealthBarWidth   = 24.0
	HealthBarHeight  = 4.0
	InfoPanelHeight  = 150
	TowerBarY        = 60
	TowerBarButtonW  = 120
	TowerBarButtonH  = 26
	FontSize         = 13
	TitleFontSize    = 28
	MenuButtonWidth  = 320
	MenuButtonHeight = 40

	EnvPrefix = "SPLINEDEF"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{110, 90, 60, 255}
	CellColor        = color.RGBA{70, 100, 120, 90}
	BlockedCellColor = color.RGBA{150, 70, 70, 60}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	SelectionColor   = color.RGBA{255, 255, 0, 200}
	HoverCellColor   = color.RGBA{255, 255, 255, 50}
	ProjectileColor  = color.RGBA{255, 230, 150, 255}
	ButtonColor      = color.RGBA{50, 60, 80, 230}
	ButtonHoverColor = color.RGBA{70, 100, 120, 240}
	ButtonBorder     = color.RGBA{70, 100, 120, 255}
	DisabledColor    = color.RGBA{100, 100, 100, 255}
	BuildPhaseColor  = color.RGBA{0, 200, 100, 255}
	WavePhaseColor   = color.RGBA{220, 60, 60, 255}
	GameOverColor    = color.RGBA{90, 90, 90, 255}
	WaveTextColor    = color.RGBA{70, 130, 180, 255}
	HealthBackColor  = color.RGBA{60, 0, 0, 255}
	HealthColor      = color.RGBA{220, 40, 40, 255}
	StrokeWidth      = float32(2.0)
	// Floating damage number colours by hit rank.
	RankColors = map[string]color.RGBA{
		"None":     {150, 150, 150, 255},
		"Reduce":   {180, 180, 255, 255},
		"Classic":  {255, 255, 255, 255},
		"Critical": {255, 200, 0, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)

// Config is the tunable part of the game, read from a file and SPLINEDEF_* variables.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Sim     SimConfig     `mapstructure:"sim"`
	Waves   WavesConfig   `mapstructure:"waves"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Defs    DefsConfig    `mapstructure:"defs"`
}

// GameConfig holds the economy rules.
type GameConfig struct {
	StartLife        int       `mapstructure:"start_life"`
	StartMoney       int       `mapstructure:"start_money"`
	StartWave        int       `mapstructure:"start_wave"`
	WaveReward       float64   `mapstructure:"wave_reward"`
	WaveRewardFactor float64   `mapstructure:"wave_reward_factor"`
	SellRatio        float64   `mapstructure:"sell_ratio"`
	Speeds           []float64 `mapstructure:"speeds"`
}

// SimConfig holds the simulation tuning.
type SimConfig struct {
	FixedStep           float64 `mapstructure:"fixed_step"`
	MaxFrameDelta       float64 `mapstructure:"max_frame_delta"`
	AimTolerance        float64 `mapstructure:"aim_tolerance"` // градусы
	ChildProgressOffset float64 `mapstructure:"child_progress_offset"`
	Seed                int64   `mapstructure:"seed"`
}

// WavesConfig selects how wave numbers map to wave definitions.
type WavesConfig struct {
	Policy          string  `mapstructure:"policy"` // standard | projected
	ProjectedFactor float64 `mapstructure:"projected_factor"`
}

type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefsConfig points to an optional directory with towers.json, enemies.json and levels.json
// merged over the built-in definitions.
type DefsConfig struct {
	Dir string `mapstructure:"dir"`
}

const (
	PolicyStandard  = "standard"
	PolicyProjected = "projected"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.start_life", 100)
	v.SetDefault("game.start_money", 400)
	v.SetDefault("game.start_wave", 1)
	v.SetDefault("game.wave_reward", 100.0)
	v.SetDefault("game.wave_reward_factor", 0.01)
	v.SetDefault("game.sell_ratio", 0.7)
	v.SetDefault("game.speeds", []float64{1, 2, 4})

	v.SetDefault("sim.fixed_step", 0.02)
	v.SetDefault("sim.max_frame_delta", 0.06)
	v.SetDefault("sim.aim_tolerance", 5.0)
	v.SetDefault("sim.child_progress_offset", 0.005)
	v.SetDefault("sim.seed", 0)

	v.SetDefault("waves.policy", PolicyStandard)
	v.SetDefault("waves.projected_factor", 0.5)

	v.SetDefault("storage.dir", "Levels")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("defs.dir", "")
}

// Default returns the built-in configuration, still honouring SPLINEDEF_* variables.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// значения по умолчанию всегда проходят проверку
		panic(err)
	}
	return cfg
}

// Load reads the configuration file at path over the defaults. An empty path or a missing
// file leaves the defaults in place.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Sim.FixedStep <= 0:
		return fmt.Errorf("sim.fixed_step must be positive, got %v", c.Sim.FixedStep)
	case c.Sim.MaxFrameDelta <= 0:
		return fmt.Errorf("sim.max_frame_delta must be positive, got %v", c.Sim.MaxFrameDelta)
	case len(c.Game.Speeds) == 0:
		return errors.New("game.speeds must not be empty")
	case c.Game.SellRatio < 0 || c.Game.SellRatio > 1:
		return fmt.Errorf("game.sell_ratio must be within [0, 1], got %v", c.Game.SellRatio)
	case c.Waves.Policy != PolicyStandard && c.Waves.Policy != PolicyProjected:
		return fmt.Errorf("waves.policy must be %q or %q, got %q", PolicyStandard, PolicyProjected, c.Waves.Policy)
	}
	for _, s := range c.Game.Speeds {
		if s <= 0 {
			return fmt.Errorf("game.speeds must be positive, got %v", s)
		}
	}
	return nil
}
