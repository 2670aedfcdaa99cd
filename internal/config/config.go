package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FirstPlayerAsk      = "ask"
	FirstPlayerHuman    = "human"
	FirstPlayerComputer = "computer"

	ScoringDepth = "depth"
	ScoringFlat  = "flat"

	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile       string        `yaml:"log-file" env:"LOG_FILE" env-default:""`
	FirstPlayer   string        `yaml:"first-player" env:"FIRST_PLAYER" env-default:"ask"`
	Scoring       string        `yaml:"scoring" env:"SCORING" env-default:"depth"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"COMPUTER_DELAY" env-default:"400ms"`
	Storage       string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis         Redis         `yaml:"redis"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

// MustLoad - load all configurations from the yaml file at path and the
// environment. A missing file leaves only the environment and the defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.FirstPlayer {
	case FirstPlayerAsk, FirstPlayerHuman, FirstPlayerComputer:
	default:
		return fmt.Errorf("%w: first-player %q", ErrInvalidConfig, that.FirstPlayer)
	}

	switch that.Scoring {
	case ScoringDepth, ScoringFlat:
	default:
		return fmt.Errorf("%w: scoring %q", ErrInvalidConfig, that.Scoring)
	}

	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: storage %q", ErrInvalidConfig, that.Storage)
	}

	if that.ComputerDelay < 0 {
		return fmt.Errorf("%w: negative computer-delay", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
