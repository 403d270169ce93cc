package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	DriverFirebase = "firebase"
	DriverRedis    = "redis"
	DriverMemory   = "memory"

	defaultAddress         = ":8000"
	defaultDriver          = DriverFirebase
	defaultCredentialsFile = "serviceAccountKey.json"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
		OpenAPI bool   `yaml:"openapi"`
	} `yaml:"server"`
	Store struct {
		Driver string `yaml:"driver"`
	} `yaml:"store"`
	Firebase struct {
		CredentialsFile string `yaml:"credentials_file"`
		DatabaseURL     string `yaml:"database_url"`
	} `yaml:"firebase"`
	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Notifications struct {
		RentalTopic string `yaml:"rental_topic"`
	} `yaml:"notifications"`
}

func defaults() Config {
	var cfg Config
	cfg.Server.Address = defaultAddress
	cfg.Server.OpenAPI = true
	cfg.Store.Driver = defaultDriver
	cfg.Firebase.CredentialsFile = defaultCredentialsFile
	return cfg
}

// LoadConfig reads the YAML file at path (a missing file is not an error),
// applies environment overrides and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshal config data: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Address = ":" + v
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_FILE"); v != "" {
		cfg.Firebase.CredentialsFile = v
	}
	if v := os.Getenv("FIREBASE_DATABASE_URL"); v != "" {
		cfg.Firebase.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Address = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if v := os.Getenv("RENTAL_NOTIFICATION_TOPIC"); v != "" {
		cfg.Notifications.RentalTopic = v
	}
	if v := os.Getenv("OPENAPI_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse OPENAPI_ENABLED: %w", err)
		}
		cfg.Server.OpenAPI = enabled
	}
	return nil
}

func (c Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	switch c.Store.Driver {
	case DriverFirebase:
		if c.Firebase.DatabaseURL == "" {
			return fmt.Errorf("firebase database_url is required")
		}
	case DriverRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("redis address is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}
