package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/RavjeetChahal/RetroCare/pkg/voicemodel"
)

const (
	// DefaultBaseDir is the base configuration directory name.
	DefaultBaseDir = ".retrocare"
	// DefaultConfigFile is the default configuration filename.
	DefaultConfigFile = "config.yaml"
)

// Config holds the CLI configuration, resolved from (lowest to highest
// precedence): built-in defaults, the YAML config file, RETROCARE_*
// environment variables.
type Config struct {
	// ModelURL is the base URL of the embedding inference endpoint.
	ModelURL string `yaml:"model_url,omitempty" envconfig:"MODEL_URL"`

	// ModelName identifies the speaker verification model to request.
	ModelName string `yaml:"model_name,omitempty" envconfig:"MODEL_NAME"`

	// Dimension is the expected embedding dimensionality.
	Dimension int `yaml:"dimension,omitempty" envconfig:"DIMENSION"`

	// TimeoutSeconds bounds each inference request.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" envconfig:"TIMEOUT_SECONDS"`
}

// DefaultCLIConfig returns the built-in defaults.
func DefaultCLIConfig() *Config {
	return &Config{
		ModelName:      "spkrec-ecapa-voxceleb",
		Dimension:      192,
		TimeoutSeconds: 60,
	}
}

// LoadConfig resolves the CLI configuration. path overrides the default
// config file location; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultCLIConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, DefaultBaseDir, DefaultConfigFile)
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()
	if err := envconfig.Process("retrocare", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	return cfg, nil
}

// NewExtractor builds the remote embedding extractor from the configuration.
func (c *Config) NewExtractor() (voicemodel.Extractor, error) {
	if c.ModelURL == "" {
		return nil, fmt.Errorf("no model URL configured (set model_url in the config file or RETROCARE_MODEL_URL)")
	}
	client := &http.Client{Timeout: time.Duration(c.TimeoutSeconds) * time.Second}
	return voicemodel.NewRemote(c.ModelURL,
		voicemodel.WithModel(c.ModelName),
		voicemodel.WithDimension(c.Dimension),
		voicemodel.WithHTTPClient(client),
	), nil
}
