package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver      string `yaml:"db_driver"`
	DBHost        string `yaml:"db_host"`
	DBPort        string `yaml:"db_port"`
	DBUser        string `yaml:"db_user"`
	DBPassword    string `yaml:"db_password"`
	DBName        string `yaml:"db_name"`
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	SessionSecret string `yaml:"session_secret"`
	GinMode       string `yaml:"gin_mode"`
}

// Load reads configuration from an optional YAML file named by CONFIG_FILE,
// then overlays environment variables. A .env file is loaded first if
// present so local development matches deployed environments.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:      "mysql",
		DBHost:        "localhost",
		DBPort:        "3306",
		DBUser:        "dealuser",
		DBPassword:    "dealpassword",
		DBName:        "deal_management",
		RedisHost:     "localhost",
		RedisPort:     "6379",
		SessionSecret: "default-secret-key-change-me",
		GinMode:       "debug",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
		}
	}

	overlayEnv(&cfg.DBDriver, "DB_DRIVER")
	overlayEnv(&cfg.DBHost, "DB_HOST")
	overlayEnv(&cfg.DBPort, "DB_PORT")
	overlayEnv(&cfg.DBUser, "DB_USER")
	overlayEnv(&cfg.DBPassword, "DB_PASSWORD")
	overlayEnv(&cfg.DBName, "DB_NAME")
	overlayEnv(&cfg.RedisHost, "REDIS_HOST")
	overlayEnv(&cfg.RedisPort, "REDIS_PORT")
	overlayEnv(&cfg.SessionSecret, "SESSION_SECRET")
	overlayEnv(&cfg.GinMode, "GIN_MODE")

	return cfg
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func overlayEnv(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}
