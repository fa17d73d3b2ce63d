package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port      string `envconfig:"PORT"       default:"8080"`
	DBDSN     string `envconfig:"DB_DSN"     default:"shopadmin.db"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-only-secret"`
	LogFile   string `envconfig:"LOG_FILE"   default:"./shopadmin.log"`
	Seed      bool   `envconfig:"SEED"       default:"true"`
}

func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[warn] could not load .env: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("[config] %v", err)
	}
	if cfg.JWTSecret == "dev-only-secret" {
		log.Println("[warn] JWT_SECRET not set; using dev default")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SEED=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.Seed)
	return cfg
}
