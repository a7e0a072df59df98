package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string      `yaml:"env" env:"ENV" env-default:"local"`
	AdminToken   string      `yaml:"admin_token" env:"ADMIN_TOKEN" env-required:"true"`
	ShareBaseURL string      `yaml:"share_base_url" env:"SHARE_BASE_URL" env-default:"http://localhost:8080"`
	HTTPServer   HTTPServer  `yaml:"http_server"`
	DB           DB          `yaml:"db"`
	Cache        Cache       `yaml:"cache"`
	FileStorage  FileStorage `yaml:"file_storage"`
	AI           AI          `yaml:"ai"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type DB struct {
	Addr     string `yaml:"addr" env:"DB_ADDR" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DB       string `yaml:"database" env:"DB_NAME" env-required:"true"`
}

type Cache struct {
	Addr          string        `yaml:"addr" env:"CACHE_ADDR" env-default:"localhost:6379"`
	Password      string        `yaml:"password" env:"CACHE_PASSWORD" env-default:""`
	DB            int           `yaml:"db" env:"CACHE_DB" env-default:"0"`
	SessionTTL    time.Duration `yaml:"session_ttl" env-default:"24h"`
	DocumentsTTL  time.Duration `yaml:"documents_ttl" env-default:"5m"`
	ComplianceTTL time.Duration `yaml:"compliance_ttl" env-default:"1m"`
}

type FileStorage struct {
	Path string `yaml:"path" env:"FILE_STORAGE_PATH" env-default:"./storage"`
}

type AI struct {
	Enabled bool          `yaml:"enabled" env:"AI_ENABLED" env-default:"false"`
	BaseURL string        `yaml:"base_url" env:"AI_BASE_URL"`
	Token   string        `yaml:"token" env:"AI_TOKEN"`
	Timeout time.Duration `yaml:"timeout" env-default:"15s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
