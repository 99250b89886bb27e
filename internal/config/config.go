package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the server configuration, loaded from the environment.
type Config struct {
	ServerAddr string `envconfig:"SERVER_ADDR" default:":8080"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`
	// CORS_ALLOW_ORIGINS is a comma-separated origin list.
	AllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	// MIN_CONTENT_LENGTH is the smallest accepted request payload in
	// characters; shorter texts carry too little signal to score.
	MinContentLength int           `envconfig:"MIN_CONTENT_LENGTH" default:"50"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
