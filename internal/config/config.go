package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendConsole   = "console"
	FrontendTUI       = "tui"
	FrontendWebsocket = "websocket"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile           string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Frontend          string `yaml:"frontend" env:"FRONTEND" env-default:"console"`
	Board             Board  `yaml:"board"`
	Loop              Loop   `yaml:"loop"`
	SocketPort        string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7070"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH"`
}

type Board struct {
	Rows int `yaml:"rows" env:"BOARD_ROWS" env-default:"3"`
	Cols int `yaml:"cols" env:"BOARD_COLS" env-default:"3"`
}

type Loop struct {
	PollInterval time.Duration `yaml:"poll-interval" env:"LOOP_POLL_INTERVAL" env-default:"100ms"`
}

// Redis is disabled when Host is empty.
type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendConsole, FrontendTUI, FrontendWebsocket:
	default:
		return fmt.Errorf("unknown frontend %q", that.Frontend)
	}

	return nil
}

func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
