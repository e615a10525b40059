package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Dataset points at the inspection fixture
	Dataset *DatasetConfig `json:"dataset" yaml:"dataset"`

	// Map configuration handed to the browser map widget
	Map *MapConfig `json:"map" yaml:"map"`

	// Viewer configuration for server-driven viewer sessions
	Viewer *ViewerConfig `json:"viewer" yaml:"viewer"`

	// Basemap configuration for the self-hosted pmtiles basemap
	Basemap *BasemapConfig `json:"basemap" yaml:"basemap"`

	// QRCode configuration for establishment share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// StaticDir is served at / when set
	StaticDir string `json:"staticDir" yaml:"staticDir"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatasetConfig defines where the establishment fixture is read from
type DatasetConfig struct {
	// Source is a bucket URL (file:///dir, s3://bucket, gs://bucket), an http(s) URL
	// of the file itself, or a plain filesystem path
	Source string `json:"source" yaml:"source"`

	// Key is the object key inside a bucket source
	Key string `json:"key" yaml:"key"`
}

// MapConfig defines the initial viewport and provider settings
type MapConfig struct {
	AccessToken string    `json:"accessToken" yaml:"accessToken"`
	StyleURL    string    `json:"styleUrl" yaml:"styleUrl"`
	Center      []float64 `json:"center" yaml:"center"` // [lng, lat]
	Zoom        float64   `json:"zoom" yaml:"zoom"`
	FlyToZoom   float64   `json:"flyToZoom" yaml:"flyToZoom"`
}

// ViewerConfig defines limits for viewer sessions
type ViewerConfig struct {
	SessionIdleTTL time.Duration `json:"sessionIdleTtl" yaml:"sessionIdleTtl"`
	ReapInterval   time.Duration `json:"reapInterval" yaml:"reapInterval"`
	MaxSessions    int           `json:"maxSessions" yaml:"maxSessions"`
	SummarySeed    uint64        `json:"summarySeed" yaml:"summarySeed"`
}

// BasemapConfig defines the pmtiles basemap proxy
type BasemapConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Source is the directory holding the archives (local path, HTTP URL, or bucket URL)
	Source string `json:"source" yaml:"source"`

	// Tileset is the archive name without the .pmtiles suffix
	Tileset string `json:"tileset" yaml:"tileset"`

	// PublicURL is the externally visible prefix of /tiles, used in TileJSON
	PublicURL string `json:"publicUrl" yaml:"publicUrl"`

	// CacheSize is the number of directories kept in memory
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`
}

// QRCodeConfig defines share code generation
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MAP_ACCESSTOKEN -> map.accessToken
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
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

func New() (*Config, error) {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Dataset == nil {
		cfg.Dataset = &DatasetConfig{}
	}
	if cfg.Dataset.Source == "" {
		cfg.Dataset.Source = "data/restaurants.json"
	}

	if cfg.Map == nil {
		cfg.Map = &MapConfig{}
	}
	if len(cfg.Map.Center) != 2 {
		cfg.Map.Center = []float64{-2.8, 54.05}
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 12
	}
	if cfg.Map.FlyToZoom == 0 {
		cfg.Map.FlyToZoom = 15
	}
	if cfg.Map.StyleURL == "" {
		cfg.Map.StyleURL = "mapbox://styles/mapbox/light-v11"
	}

	if cfg.Basemap == nil {
		cfg.Basemap = &BasemapConfig{}
	}
	if cfg.Basemap.Tileset == "" {
		cfg.Basemap.Tileset = "basemap"
	}
	if cfg.Basemap.CacheSize == 0 {
		cfg.Basemap.CacheSize = 64
	}

	if cfg.Viewer == nil {
		cfg.Viewer = &ViewerConfig{}
	}
	if cfg.Viewer.SessionIdleTTL == 0 {
		cfg.Viewer.SessionIdleTTL = 30 * time.Minute
	}
	if cfg.Viewer.ReapInterval == 0 {
		cfg.Viewer.ReapInterval = time.Minute
	}
	if cfg.Viewer.MaxSessions == 0 {
		cfg.Viewer.MaxSessions = 1000
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
