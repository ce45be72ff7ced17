package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               int    `env:"PORT" envDefault:"8000"`
	DatabaseURL        string `env:"DATABASE_URL"`
	StorageDir         string `env:"STORAGE_DIR" envDefault:"resonanse_storage/backend_resources"`
	StaticDir          string `env:"STATIC_DIR" envDefault:"webapp/dist"`
	StaticPort         int    `env:"STATIC_PORT" envDefault:"8001"`
	KudaGoBaseURL      string `env:"KUDAGO_BASE_URL" envDefault:"https://kudago.com/public-api/v1.4"`
	CorsAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
