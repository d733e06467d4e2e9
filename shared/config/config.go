package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const defaultLikeCountConcurrency = 8

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort             int           `yaml:"http_port" validate:"required"`
	AccessTokenAge       time.Duration `yaml:"access_token_age" validate:"required"`
	LikeCountConcurrency int           `yaml:"like_count_concurrency" validate:"gte=0"` // parallel like-count lookups per thread detail
	Storage              string        `yaml:"storage" validate:"required,oneof=postgres memory"`
	AutoMigrate          bool          `yaml:"auto_migrate"`
	AllowedOrigins       []string      `yaml:"allowed_origins"`
	SecureHeaders        bool          `yaml:"secure_headers"` // adds HSTS, enable behind TLS
	LogLevel             string        `yaml:"log_level"`
	LogJSON              bool          `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg              Pg     `yaml:"pg"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required,nefield=AccessTokenKey"`
}

func (c *Config) AccessTokenKey() string {
	return c.Private.AccessTokenKey
}

func (c *Config) RefreshTokenKey() string {
	return c.Private.RefreshTokenKey
}

func (c *Config) AccessTokenAge() time.Duration {
	return c.Public.AccessTokenAge
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

// secrets may come from the environment instead of private.yaml
func applyEnv(private *Private) {
	if v := os.Getenv("ACCESS_TOKEN_KEY"); v != "" {
		private.AccessTokenKey = v
	}
	if v := os.Getenv("REFRESH_TOKEN_KEY"); v != "" {
		private.RefreshTokenKey = v
	}
	if v := os.Getenv("PGPASSWORD"); v != "" {
		private.Pg.Password = v
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics
// on a missing file or a config that fails validation.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)
	applyEnv(&private)

	if public.LikeCountConcurrency == 0 {
		public.LikeCountConcurrency = defaultLikeCountConcurrency
	}

	cfg := &Config{Public: public, Private: private}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}
