// Package config carga la configuración de los binarios: primero un YAML opcional,
// después overrides por variables de entorno (el env siempre gana).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App    string       `yaml:"app"`
	Log    LogConfig    `yaml:"log"`
	HTTP   HTTPConfig   `yaml:"http"`
	DB     DBConfig     `yaml:"db"`
	Odin   OdinConfig   `yaml:"odin"`
	Client ClientConfig `yaml:"client"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"` // vacío => stdout
}

type HTTPConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type DBConfig struct {
	DSN string `yaml:"dsn"` // vacío => repos in-memory
}

type OdinConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	APIKeyHeader string        `yaml:"api_key_header"`
	Timeout      time.Duration `yaml:"timeout"`
}

// ClientConfig es lo que usa la página de cadastro para hablar con la API.
type ClientConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Token       string        `yaml:"token"`
	DebugUserID string        `yaml:"debug_user_id"`
	Timeout     time.Duration `yaml:"timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

func Default() Config {
	return Config{
		App: "shelter-registry",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		HTTP: HTTPConfig{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Odin: OdinConfig{
			Timeout: 5 * time.Second,
		},
		Client: ClientConfig{
			BaseURL:  "http://localhost:8080",
			Timeout:  10 * time.Second,
			CacheTTL: 5 * time.Minute,
		},
	}
}

// Load lee path (si no está vacío) sobre los defaults y aplica el env del proceso.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if p := strings.TrimSpace(path); p != "" {
		raw, err := os.ReadFile(p)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", p, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", p, err)
		}
	}

	cfg.applyEnv(lookup)
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil && d > 0 {
				*dst = d
			}
		}
	}

	str("APP_NAME", &c.App)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("LOG_FILE", &c.Log.File)

	str("PORT", &c.HTTP.Port)
	str("DB_DSN", &c.DB.DSN)

	str("ODIN_BASE_URL", &c.Odin.BaseURL)
	str("ODIN_API_KEY", &c.Odin.APIKey)
	str("ODIN_API_KEY_HEADER", &c.Odin.APIKeyHeader)

	str("SHELTER_API_URL", &c.Client.BaseURL)
	str("SHELTER_API_TOKEN", &c.Client.Token)
	str("DEBUG_USER_ID", &c.Client.DebugUserID)
	dur("SHELTER_API_TIMEOUT", &c.Client.Timeout)
	dur("SHELTER_CACHE_TTL", &c.Client.CacheTTL)
}

// Addr devuelve ":<port>" para http.Server.
func (h HTTPConfig) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(h.Port), ":")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// OdinEnabled indica si hay credenciales para verificar tokens contra Odin.
func (c Config) OdinEnabled() bool {
	return strings.TrimSpace(c.Odin.BaseURL) != "" && strings.TrimSpace(c.Odin.APIKey) != ""
}
