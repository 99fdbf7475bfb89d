package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kass/go-danger-map/pkg/models"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario" mapstructure:"scenario"`
	Map      MapConfig      `yaml:"map" mapstructure:"map"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ScenarioConfig holds the incident and home locations to evaluate.
// Labels pair with incidents by position.
type ScenarioConfig struct {
	Incidents    []models.Location `yaml:"incidents" mapstructure:"incidents"`
	Labels       []string          `yaml:"labels,omitempty" mapstructure:"labels"`
	Homes        []models.Location `yaml:"homes" mapstructure:"homes"`
	RadiusMeters float64           `yaml:"radius_meters" mapstructure:"radius_meters"`
}

// MapConfig configures how the map is drawn.
type MapConfig struct {
	Title          string  `yaml:"title" mapstructure:"title"`
	Zoom           float64 `yaml:"zoom" mapstructure:"zoom"`
	SafeColor      string  `yaml:"safe_color" mapstructure:"safe_color"`
	DangerColor    string  `yaml:"danger_color" mapstructure:"danger_color"`
	BorderColor    string  `yaml:"border_color" mapstructure:"border_color"`
	FillColor      string  `yaml:"fill_color" mapstructure:"fill_color"`
	DedupeSegments bool    `yaml:"dedupe_segments" mapstructure:"dedupe_segments"`
	DistanceModel  string  `yaml:"distance_model" mapstructure:"distance_model"`
	IconPath       string  `yaml:"icon_path" mapstructure:"icon_path"`
	IconSize       int     `yaml:"icon_size" mapstructure:"icon_size"`
	TileURL        string  `yaml:"tile_url" mapstructure:"tile_url"`
	Attribution    string  `yaml:"attribution" mapstructure:"attribution"`
}

// OutputConfig configures the exported artifacts.
type OutputConfig struct {
	GeoJSON bool `yaml:"geojson" mapstructure:"geojson"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = "dangermap.yaml"

// Load reads configuration from .env, an optional YAML file and the
// environment. An empty path searches the working directory for
// dangermap.yaml; a missing file is not an error unless path was given.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dangermap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DANGERMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("scenario.radius_meters", 950)
	v.SetDefault("map.title", "Danger map")
	v.SetDefault("map.zoom", 14)
	v.SetDefault("map.safe_color", "green")
	v.SetDefault("map.danger_color", "red")
	v.SetDefault("map.border_color", "crimson")
	v.SetDefault("map.fill_color", "crimson")
	v.SetDefault("map.dedupe_segments", false)
	v.SetDefault("map.distance_model", "ellipsoidal")
	v.SetDefault("map.icon_path", "./images/thief_3.png")
	v.SetDefault("map.icon_size", 50)
	v.SetDefault("map.tile_url", "")
	v.SetDefault("map.attribution", "")
	v.SetDefault("output.geojson", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if len(cfg.Scenario.Incidents) == 0 && len(cfg.Scenario.Homes) == 0 {
		sample := SampleScenario()
		sample.RadiusMeters = cfg.Scenario.RadiusMeters
		cfg.Scenario = sample
	}

	return &cfg, nil
}

// SampleScenario returns recent robbery locations in Alcorcón with
// street names and a handful of homes in the same town.
func SampleScenario() ScenarioConfig {
	return ScenarioConfig{
		Incidents: []models.Location{
			{Lat: 40.350700, Lon: -3.819300},
			{Lat: 40.3493175, Lon: -3.8061377},
			{Lat: 40.3452728, Lon: -3.8247379},
			{Lat: 40.3386008, Lon: -3.8107881},
			{Lat: 40.352045, Lon: -3.8147584},
		},
		Labels: []string{
			"Plaza Príncipes",
			"Avenida Viñagrande",
			"Calle la Nacho",
			"Calle los pintores",
			"Calle Cabo San Vicente",
		},
		Homes: []models.Location{
			{Lat: 40.3342442, Lon: -3.8240913},
			{Lat: 40.3542, Lon: -3.8084},
			{Lat: 40.3492635, Lon: -3.8242727},
			{Lat: 40.3471204, Lon: -3.8340317},
			{Lat: 40.35098695, Lon: -3.8051485610200046},
		},
		RadiusMeters: 950,
	}
}

// WriteFile writes cfg as YAML to path, overwriting any existing file.
func WriteFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return eris.Wrap(err, "config: marshal yaml")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "config: write %s", path)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
