package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ResourceAPIConfig configura el servidor de desarrollo de la API de recursos.
type ResourceAPIConfig struct {
	Listen string `yaml:"listen"`
	DBPath string `yaml:"db_path"`
}

// Config es la configuración de la aplicación.
type Config struct {
	// Listen es la dirección HTTP del panel de administración.
	Listen string `yaml:"listen"`

	// APIBaseURL es la dirección base de la API remota de recursos.
	APIBaseURL string `yaml:"api_base_url"`

	// APITimeout limita cada request a la API remota.
	APITimeout time.Duration `yaml:"api_timeout"`

	// SessionTTL es cuánto vive una sesión del navegador sin actividad.
	SessionTTL time.Duration `yaml:"session_ttl"`

	LogLevel string `yaml:"log_level"`

	ResourceAPI ResourceAPIConfig `yaml:"resource_api"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:     ":8080",
		APIBaseURL: "http://localhost:8081",
		APITimeout: 15 * time.Second,
		SessionTTL: 30 * time.Minute,
		LogLevel:   "info",
		ResourceAPI: ResourceAPIConfig{
			Listen: ":8081",
			DBPath: "./allocations.db",
		},
	}
}

// Normalize completa los valores vacíos con los de DefaultConfig.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = def.APIBaseURL
	}
	if c.APITimeout <= 0 {
		c.APITimeout = def.APITimeout
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = def.SessionTTL
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.ResourceAPI.Listen == "" {
		c.ResourceAPI.Listen = def.ResourceAPI.Listen
	}
	if c.ResourceAPI.DBPath == "" {
		c.ResourceAPI.DBPath = def.ResourceAPI.DBPath
	}
}

// Load lee la configuración desde path. Si el archivo no existe se escribe
// uno con los valores por defecto. Luego se cargan .env y las variables ALLOC_*.
func Load(path string) (*Config, error) {
	// .env es opcional
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			if err := Save(path, cfg); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, errors.Wrapf(err, "leyendo %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parseando %s", path)
			}
		}
	}

	cfg.applyEnv()
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Listen = get("ALLOC_LISTEN", c.Listen)
	c.APIBaseURL = get("ALLOC_API_BASE_URL", c.APIBaseURL)
	c.LogLevel = get("ALLOC_LOG_LEVEL", c.LogLevel)
	c.ResourceAPI.Listen = get("ALLOC_API_LISTEN", c.ResourceAPI.Listen)
	c.ResourceAPI.DBPath = get("ALLOC_DB_PATH", c.ResourceAPI.DBPath)
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Save escribe cfg en YAML con permisos 0600.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.WithStack(err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, data, 0o600))
}
