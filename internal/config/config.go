package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ngramcorrector/internal/corrector"
)

type Config struct {
	Corpus    CorpusConfig              `yaml:"corpus"`
	Index     IndexConfig               `yaml:"index"`
	Redis     RedisConfig               `yaml:"redis"`
	HTTPAddr  string                    `yaml:"http_addr"`
	LogLevel  string                    `yaml:"log_level"`
	Corrector corrector.CorrectorConfig `yaml:"corrector"`
}

type CorpusConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
	Workers int    `yaml:"workers"`
}

// IndexConfig selects where indices are kept: "file" (Dir) or "redis".
type IndexConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

func Default() Config {
	return Config{
		Corpus:    CorpusConfig{Dir: "reuters21578", Workers: 4},
		Index:     IndexConfig{Backend: BackendFile, Dir: "index"},
		Redis:     RedisConfig{Addr: "localhost:6379", Prefix: "ngram"},
		HTTPAddr:  ":8080",
		LogLevel:  "info",
		Corrector: corrector.DefaultCorrectorConfig(),
	}
}

// Load reads path (if not empty) over the defaults and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.Corpus.Dir = getenv("CORPUS_DIR", c.Corpus.Dir)
	c.Index.Dir = getenv("INDEX_DIR", c.Index.Dir)
	c.Index.Backend = getenv("INDEX_BACKEND", c.Index.Backend)
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)
}

func (c Config) Validate() error {
	switch c.Index.Backend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("config: unknown index backend %q", c.Index.Backend)
	}
	if c.Corrector.MaxCandidates < 0 {
		return fmt.Errorf("config: max_candidates must not be negative")
	}
	return nil
}

// Level maps LogLevel onto slog levels; unknown names mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger on stderr at the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()}))
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
