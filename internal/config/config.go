package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
	Score    Score  `yaml:"score"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Game holds board defaults used when a challenge does not specify dimensions.
type Game struct {
	DefaultWidth  int `yaml:"default-width" env:"GAME_DEFAULT_WIDTH" env-default:"10"`
	DefaultHeight int `yaml:"default-height" env:"GAME_DEFAULT_HEIGHT" env-default:"10"`
	MaxWidth      int `yaml:"max-width" env:"GAME_MAX_WIDTH" env-default:"50"`
	MaxHeight     int `yaml:"max-height" env:"GAME_MAX_HEIGHT" env-default:"50"`
	UpdateRetries int `yaml:"update-retries" env:"GAME_UPDATE_RETRIES" env-default:"3"`
}

// Score holds the deltas applied to player scores when a game ends.
type Score struct {
	Win  int `yaml:"win" env:"SCORE_WIN" env-default:"3"`
	Draw int `yaml:"draw" env:"SCORE_DRAW" env-default:"1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
