package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nursery/internal/domain/catalog"
	"nursery/internal/domain/plant"

	"gopkg.in/yaml.v3"
)

const (
	IDModeSequence = "sequence"
	IDModeUUID     = "uuid"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server   ServerConfig                 `yaml:"server"`
	Database DatabaseConfig               `yaml:"database"`
	Facility FacilityConfig               `yaml:"facility"`
	IDMode   string                       `yaml:"id_mode"`
	Catalog  map[plant.Category]PlantSpec `yaml:"catalog"`
}

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	MetricsAddr  string   `yaml:"metrics_addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DatabaseConfig selects the journal store. An empty DSN keeps the journal
// in memory; an empty MigrationsDir uses the schema embedded in the binary.
type DatabaseConfig struct {
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
	MaxOpenConns  int    `yaml:"max_open_conns"`
	MaxIdleConns  int    `yaml:"max_idle_conns"`
}

type FacilityConfig struct {
	GrowingRows    int  `yaml:"growing_rows"`
	GrowingCols    int  `yaml:"growing_cols"`
	DisplayRows    int  `yaml:"display_rows"`
	DisplayCols    int  `yaml:"display_cols"`
	AutoRelocate   bool `yaml:"auto_relocate"`
	MaxAdvanceDays int  `yaml:"max_advance_days"`
}

type PlantSpec struct {
	Name      string      `yaml:"name"`
	BasePrice float64     `yaml:"base_price"`
	Decay     plant.Decay `yaml:"decay"`
}

func Defaults() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080", MetricsAddr: ":9090", AllowOrigins: []string{"*"}},
		Database: DatabaseConfig{MaxOpenConns: 10, MaxIdleConns: 5},
		Facility: FacilityConfig{
			GrowingRows:    4,
			GrowingCols:    5,
			DisplayRows:    2,
			DisplayCols:    5,
			AutoRelocate:   true,
			MaxAdvanceDays: 365,
		},
		IDMode: IDModeSequence,
	}
}

// Load reads path on top of the defaults and then applies NURSERY_*
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	c.Server.Addr = stringEnv(getenv, "NURSERY_ADDR", c.Server.Addr)
	c.Server.MetricsAddr = stringEnv(getenv, "NURSERY_METRICS_ADDR", c.Server.MetricsAddr)
	c.Database.DSN = stringEnv(getenv, "NURSERY_DB_DSN", c.Database.DSN)
	c.Database.MigrationsDir = stringEnv(getenv, "NURSERY_MIGRATIONS_DIR", c.Database.MigrationsDir)
	c.Database.MaxOpenConns = intEnv(getenv, "NURSERY_DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = intEnv(getenv, "NURSERY_DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	if origins := listEnv(getenv, "NURSERY_ALLOW_ORIGINS"); len(origins) > 0 {
		c.Server.AllowOrigins = origins
	}
	c.Facility.GrowingRows = intEnv(getenv, "NURSERY_GROWING_ROWS", c.Facility.GrowingRows)
	c.Facility.GrowingCols = intEnv(getenv, "NURSERY_GROWING_COLS", c.Facility.GrowingCols)
	c.Facility.DisplayRows = intEnv(getenv, "NURSERY_DISPLAY_ROWS", c.Facility.DisplayRows)
	c.Facility.DisplayCols = intEnv(getenv, "NURSERY_DISPLAY_COLS", c.Facility.DisplayCols)
	c.Facility.AutoRelocate = boolEnv(getenv, "NURSERY_AUTO_RELOCATE", c.Facility.AutoRelocate)
	c.Facility.MaxAdvanceDays = intEnv(getenv, "NURSERY_MAX_ADVANCE_DAYS", c.Facility.MaxAdvanceDays)
	c.IDMode = strings.ToLower(stringEnv(getenv, "NURSERY_ID_MODE", c.IDMode))
}

func (c Config) Validate() error {
	f := c.Facility
	if f.GrowingRows <= 0 || f.GrowingCols <= 0 || f.DisplayRows <= 0 || f.DisplayCols <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive", ErrInvalidConfig)
	}
	if f.MaxAdvanceDays <= 0 {
		return fmt.Errorf("%w: max_advance_days must be positive", ErrInvalidConfig)
	}
	if c.IDMode != IDModeSequence && c.IDMode != IDModeUUID {
		return fmt.Errorf("%w: unknown id_mode %q", ErrInvalidConfig, c.IDMode)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server addr is required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: pool sizes must not be negative", ErrInvalidConfig)
	}
	for category, spec := range c.Catalog {
		if !category.Valid() {
			return fmt.Errorf("%w: unknown catalog category %q", ErrInvalidConfig, category)
		}
		if spec.BasePrice < 0 || spec.Decay.Water < 0 || spec.Decay.Nutrient < 0 {
			return fmt.Errorf("%w: catalog %s has negative values", ErrInvalidConfig, category)
		}
	}
	return nil
}

// CatalogSpecs merges configured entries over the built-in specs. Missing
// fields keep the built-in value.
func (c Config) CatalogSpecs() map[plant.Category]catalog.Spec {
	specs := catalog.DefaultSpecs()
	for category, override := range c.Catalog {
		spec, ok := specs[category]
		if !ok {
			continue
		}
		if override.Name != "" {
			spec.Name = override.Name
		}
		if override.BasePrice > 0 {
			spec.BasePrice = override.BasePrice
		}
		if override.Decay != (plant.Decay{}) {
			spec.Decay = override.Decay
		}
		specs[category] = spec
	}
	return specs
}

func (c Config) IDGenerator() catalog.IDGenerator {
	if c.IDMode == IDModeUUID {
		return catalog.UUIDs{}
	}
	return catalog.NewSequenceIDs()
}

func stringEnv(getenv func(string) string, key, fallback string) string {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(getenv func(string) string, key string, fallback int) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func listEnv(getenv func(string) string, key string) []string {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func boolEnv(getenv func(string) string, key string, fallback bool) bool {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
