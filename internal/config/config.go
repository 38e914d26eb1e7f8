package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load simulation parameters from a preset (e.g. examples/presets/*.yaml).
	// If both ParamsFile and Simulation set a field, Simulation wins.
	ParamsFile string           `yaml:"params_file"`
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Database   DatabaseConfig   `yaml:"database"`
	API        APIConfig        `yaml:"api"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig uses pointers so an explicit zero (std_return: 0, seed: 0)
// is distinguishable from an absent field.
type SimulationConfig struct {
	Count      *int     `yaml:"count,omitempty" json:"count,omitempty"`
	StartPrice *float64 `yaml:"start_price,omitempty" json:"start_price,omitempty"`
	MeanReturn *float64 `yaml:"mean_return,omitempty" json:"mean_return,omitempty"`
	StdReturn  *float64 `yaml:"std_return,omitempty" json:"std_return,omitempty"`
	Window     *int     `yaml:"window,omitempty" json:"window,omitempty"`
	Seed       *int64   `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// OutputConfig.Preview is a pointer so that "preview: 0" turns the preview off.
type OutputConfig struct {
	PricesFile        string `yaml:"prices_file"`
	MovingAverageFile string `yaml:"moving_avg_file"`
	Preview           *int   `yaml:"preview"`
}

// PreviewRows is the number of leading values to print.
func (o OutputConfig) PreviewRows() int {
	if o.Preview == nil {
		return DefaultPreview
	}
	return *o.Preview
}

type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlite_path"`
}

type APIConfig struct {
	Port           string        `yaml:"port"`
	MaxCount       int           `yaml:"max_count"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	PresetsDir     string        `yaml:"presets_dir"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	DefaultPricesFile        = "prices.csv"
	DefaultMovingAverageFile = "moving_avg.csv"
	DefaultPreview           = 10
	DefaultPort              = "8080"
	DefaultMaxCount          = 5_000_000
	DefaultCacheTTL          = time.Hour
	DefaultPresetsDir        = "examples/presets"
)

// Default returns a config that runs the suggested simulation with no file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Finalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// Finalize fills defaults and validates. Callers that overlay flags on top of
// LoadUnchecked use it once the overlay is done.
func (c *Config) Finalize() error {
	c.applyDefaults()
	return c.Validate()
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.ParamsFile != "" {
		presetPath := c.ParamsFile
		if !filepath.IsAbs(presetPath) {
			// Prefer paths relative to the config file directory, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		preset, err := LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		c.Simulation = MergeSimulation(preset.Simulation, c.Simulation)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Output.PricesFile == "" {
		c.Output.PricesFile = DefaultPricesFile
	}
	if c.Output.MovingAverageFile == "" {
		c.Output.MovingAverageFile = DefaultMovingAverageFile
	}
	if c.Output.Preview == nil {
		n := DefaultPreview
		c.Output.Preview = &n
	}
	if c.API.Port == "" {
		c.API.Port = DefaultPort
	}
	if c.API.MaxCount == 0 {
		c.API.MaxCount = DefaultMaxCount
	}
	if c.API.CacheTTL == 0 {
		c.API.CacheTTL = DefaultCacheTTL
	}
	if c.API.PresetsDir == "" {
		c.API.PresetsDir = DefaultPresetsDir
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// ApplyEnv overrides API process settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.API.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Database.SQLitePath = v
	}
	if v := os.Getenv("PRESETS_DIR"); v != "" {
		c.API.PresetsDir = v
	}
	if v := os.Getenv("API_MAX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.API.MaxCount = n
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Simulation.ToParams().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	if c.Output.PreviewRows() < 0 {
		return errors.New("output.preview must be >= 0")
	}
	if c.API.MaxCount < 0 {
		return errors.New("api.max_count must be >= 0")
	}
	return nil
}

// ToParams fills unset fields with model defaults.
func (s SimulationConfig) ToParams() model.Params {
	p := model.DefaultParams()
	if s.Count != nil {
		p.Count = *s.Count
	}
	if s.StartPrice != nil {
		p.StartPrice = *s.StartPrice
	}
	if s.MeanReturn != nil {
		p.MeanReturn = *s.MeanReturn
	}
	if s.StdReturn != nil {
		p.StdReturn = *s.StdReturn
	}
	if s.Window != nil {
		p.Window = *s.Window
	}
	if s.Seed != nil {
		p.Seed = *s.Seed
	}
	return p
}

// FromParams is the inverse of ToParams with every field set.
func FromParams(p model.Params) SimulationConfig {
	return SimulationConfig{
		Count:      &p.Count,
		StartPrice: &p.StartPrice,
		MeanReturn: &p.MeanReturn,
		StdReturn:  &p.StdReturn,
		Window:     &p.Window,
		Seed:       &p.Seed,
	}
}

// MergeSimulation overlays set fields from override onto base.
// This is used when loading a preset and then applying overrides from the config or request.
func MergeSimulation(base, override SimulationConfig) SimulationConfig {
	out := base
	if override.Count != nil {
		out.Count = override.Count
	}
	if override.StartPrice != nil {
		out.StartPrice = override.StartPrice
	}
	if override.MeanReturn != nil {
		out.MeanReturn = override.MeanReturn
	}
	if override.StdReturn != nil {
		out.StdReturn = override.StdReturn
	}
	if override.Window != nil {
		out.Window = override.Window
	}
	if override.Seed != nil {
		out.Seed = override.Seed
	}
	return out
}
