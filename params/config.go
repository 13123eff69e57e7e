package params

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Symbol names the single instrument the book is opened for.
	Symbol string
	// SeedDepth is the number of demo limit orders seeded per side at
	// startup; 0 starts an empty book.
	SeedDepth int
	// LogLevel is a zap level name ("debug", "info", ...).
	LogLevel string
}

func Default() Config {
	return Config{
		Symbol:    "BTC",
		SeedDepth: 5,
		LogLevel:  "info",
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: env > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if symbol := os.Getenv("BOOK_SYMBOL"); symbol != "" {
		cfg.Symbol = symbol
	}
	if depth := os.Getenv("BOOK_SEED_DEPTH"); depth != "" {
		if n, err := strconv.Atoi(depth); err == nil && n >= 0 {
			cfg.SeedDepth = n
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg
}
