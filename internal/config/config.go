package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	BackendTerminal  = "terminal"
	BackendRaw       = "raw"
	BackendTUI       = "tui"
	BackendSocket    = "socket"
	BackendWebsocket = "websocket"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

const (
	minWireOffset = int(entity.DifficultyHard)
	maxWireOffset = 255 - int(entity.EventPlayAgainQuery)
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel      string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFile       string `yaml:"log-file" env:"TTT_LOG_FILE"`
	Backend       string `yaml:"backend" env:"TTT_BACKEND" env-default:"terminal"`
	HTTPPort      string `yaml:"http-port" env:"TTT_HTTP_PORT" env-default:"9090"`
	SocketPort    string `yaml:"socket-port" env:"TTT_SOCKET_PORT" env-default:"9091"`
	WebsocketPort string `yaml:"websocket-port" env:"TTT_WEBSOCKET_PORT" env-default:"9092"`
	WireOffset    int    `yaml:"wire-offset" env:"TTT_WIRE_OFFSET" env-default:"3"`
	Seed          int64  `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	Difficulty    string `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"hard"`
	Storage       string `yaml:"storage" env:"TTT_STORAGE" env-default:"memory"`
	Redis         Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"TTT_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TTT_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path and applies TTT_* overrides. A missing file leaves the
// defaults and the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Backend {
	case BackendTerminal, BackendRaw, BackendTUI, BackendSocket, BackendWebsocket:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, that.Backend)
	}

	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, that.Storage)
	}

	if _, err := entity.ParseDifficulty(that.Difficulty); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// negative who-first answers and the highest event code must both fit a byte
	if that.WireOffset < minWireOffset || that.WireOffset > maxWireOffset {
		return fmt.Errorf("%w: wire offset %d outside [%d, %d]", ErrInvalidConfig, that.WireOffset, minWireOffset, maxWireOffset)
	}

	return nil
}

// DefaultDifficulty is the tier used when a backend cannot ask for one.
func (that *Config) DefaultDifficulty() entity.Difficulty {
	difficulty, err := entity.ParseDifficulty(that.Difficulty)
	if err != nil {
		return entity.DifficultyHard
	}

	return difficulty
}

// RandomSeed returns the configured seed, or the clock when it is zero.
func (that *Config) RandomSeed() int64 {
	if that.Seed != 0 {
		return that.Seed
	}

	return time.Now().UnixNano()
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
