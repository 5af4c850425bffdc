package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigin  string

	// whether the operator actually set the values, as opposed to the
	// baked-in defaults; surfaced by the /test diagnostic
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// LoadDotenv loads the nearest .env, if any. Real deployments rely on the
// process environment; this is a dev convenience.
func LoadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Info().Str("path", p).Msg("loaded .env")
			return
		}
	}
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    ":" + env("PORT", "8000"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MongoURI:    env("DATABASE_URL", "mongodb://localhost:27017"),
		MongoDB:     env("DATABASE_NAME", "nova_estates"),
		JWTSecret:   env("JWT_SECRET", ""),
		TokenTTL:    time.Duration(atoi("TOKEN_TTL_HOURS", 8)) * time.Hour,
		CORSOrigin:  env("CORS_ORIGIN", "*"),

		DatabaseURLSet:  os.Getenv("DATABASE_URL") != "",
		DatabaseNameSet: os.Getenv("DATABASE_NAME") != "",
	}
	if c.JWTSecret == "" {
		// deployment hazard, not a feature: never ship with the default
		log.Warn().Msg("JWT_SECRET is empty, falling back to insecure default")
		c.JWTSecret = "devsecret"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
