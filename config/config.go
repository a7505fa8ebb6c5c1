// Package config loads the service configuration from YAML with environment
// variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Config is the root configuration of the service.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage configures the local snapshot store.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	// Demo configures the fallback credential pair and the sample data
	// installed on first run.
	Demo DemoConfig `json:"demo" yaml:"demo"`

	// Weather configures the mocked weather provider.
	Weather WeatherConfig `json:"weather" yaml:"weather"`

	// Recommendation holds the rule-table thresholds and windows.
	Recommendation RecommendationConfig `json:"recommendation" yaml:"recommendation"`
}

// Log defines logger output settings.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where the snapshot store lives.
type StorageConfig struct {
	// Path is the SQLite database file holding the JSON snapshots.
	Path string `json:"path" yaml:"path"`
}

// DemoConfig defines the fallback credential pair and seeding behavior.
type DemoConfig struct {
	Phone    string `json:"phone" yaml:"phone"`
	Password string `json:"password" yaml:"password"`
	// SeedData installs the sample crops when the crop list is empty.
	SeedData bool `json:"seedData" yaml:"seedData"`
}

// WeatherConfig defines the initial snapshot and the refresh cadence.
type WeatherConfig struct {
	Location        string        `json:"location" yaml:"location"`
	Temperature     float64       `json:"temperature" yaml:"temperature"`
	Humidity        float64       `json:"humidity" yaml:"humidity"`
	WindSpeed       float64       `json:"windSpeed" yaml:"windSpeed"`
	Rainfall        float64       `json:"rainfall" yaml:"rainfall"`
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// RecommendationConfig names the rule-table constants so the engine can be
// tested in isolation from wall-clock time.
type RecommendationConfig struct {
	// DedupWindow suppresses regenerating advice with the same title and
	// related crop within this span.
	DedupWindow time.Duration `json:"dedupWindow" yaml:"dedupWindow"`

	// EarlyStageMaxDays is the upper bound of the early-care stage.
	EarlyStageMaxDays int `json:"earlyStageMaxDays" yaml:"earlyStageMaxDays"`

	// PotatoHillingMinDays and PotatoHillingMaxDays bound the hilling window
	// for potato crops.
	PotatoHillingMinDays int `json:"potatoHillingMinDays" yaml:"potatoHillingMinDays"`
	PotatoHillingMaxDays int `json:"potatoHillingMaxDays" yaml:"potatoHillingMaxDays"`

	// HumidityThreshold triggers the fungal-risk advice.
	HumidityThreshold float64 `json:"humidityThreshold" yaml:"humidityThreshold"`

	// WindSpeedThreshold triggers the wind-damage advice.
	WindSpeedThreshold float64 `json:"windSpeedThreshold" yaml:"windSpeedThreshold"`

	// PlantingSeasonStart and PlantingSeasonEnd bound the months (1-12,
	// inclusive) of the seasonal planting advice.
	PlantingSeasonStart int `json:"plantingSeasonStart" yaml:"plantingSeasonStart"`
	PlantingSeasonEnd   int `json:"plantingSeasonEnd" yaml:"plantingSeasonEnd"`
}

// DefaultRecommendation returns the rule constants the platform has always
// shipped with. Config values override field by field.
func DefaultRecommendation() RecommendationConfig {
	return RecommendationConfig{
		DedupWindow:          24 * time.Hour,
		EarlyStageMaxDays:    30,
		PotatoHillingMinDays: 45,
		PotatoHillingMaxDays: 60,
		HumidityThreshold:    80,
		WindSpeedThreshold:   25,
		PlantingSeasonStart:  4,
		PlantingSeasonEnd:    6,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Load environment variables: WEATHER_REFRESHINTERVAL -> weather.refreshinterval
	if err := koanfInstance.Load(env.ProviderWithValue("", ".", func(k, v string) (string, interface{}) {
		return strings.ToLower(strings.ReplaceAll(k, "_", ".")), v
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads the service configuration from config.yaml.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "agroalerta.db"
	}
	if cfg.Demo.Phone == "" {
		cfg.Demo.Phone = "+51987654321"
	}
	if cfg.Demo.Password == "" {
		cfg.Demo.Password = "password123"
	}
	if cfg.Weather.Location == "" {
		cfg.Weather.Location = "Huancavelica Centro"
	}
	if cfg.Weather.RefreshInterval <= 0 {
		cfg.Weather.RefreshInterval = 15 * time.Minute
	}

	def := DefaultRecommendation()
	r := &cfg.Recommendation
	if r.DedupWindow <= 0 {
		r.DedupWindow = def.DedupWindow
	}
	if r.EarlyStageMaxDays == 0 {
		r.EarlyStageMaxDays = def.EarlyStageMaxDays
	}
	if r.PotatoHillingMinDays == 0 {
		r.PotatoHillingMinDays = def.PotatoHillingMinDays
	}
	if r.PotatoHillingMaxDays == 0 {
		r.PotatoHillingMaxDays = def.PotatoHillingMaxDays
	}
	if r.HumidityThreshold == 0 {
		r.HumidityThreshold = def.HumidityThreshold
	}
	if r.WindSpeedThreshold == 0 {
		r.WindSpeedThreshold = def.WindSpeedThreshold
	}
	if r.PlantingSeasonStart == 0 {
		r.PlantingSeasonStart = def.PlantingSeasonStart
	}
	if r.PlantingSeasonEnd == 0 {
		r.PlantingSeasonEnd = def.PlantingSeasonEnd
	}
}
