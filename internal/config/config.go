package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Defaults are tuned for local
// development; production overrides everything through the environment.
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	DatabasePath string        `env:"DB_PATH" envDefault:"data/endodiary.db"`
	UploadDir    string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CORSOrigins  string        `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`
	Timezone     string        `env:"TZ" envDefault:"UTC"`
}

// Load reads the optional .env file, then the environment.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
