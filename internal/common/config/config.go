package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Mongo struct {
		// Full connection string including the database name,
		// e.g. mongodb://localhost:27017/ashen
		URI string `env:"DATABASE_URL" envDefault:"mongodb://localhost:27017/ashen"`
	}

	Admin struct {
		// No default credentials: the service refuses to start
		// without an explicitly configured admin pair.
		Username string `env:"ADMIN_USER,required"`
		Password string `env:"ADMIN_PASS,required"`
	}
}

func Load() (*Config, error) {
	// A missing .env file is fine; in production the variables
	// are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
