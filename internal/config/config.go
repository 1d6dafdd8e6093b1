// Package config reads the server configuration from the environment.
//
// Values come from, in order of precedence:
//  1. the process environment
//  2. a .env file in the working directory (if present)
//  3. the defaults below
//
// An empty variable counts as unset. Everything is read and validated once
// at startup; a bad value stops the process before it opens a listener.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sakif/travel-blog/internal/auth"
)

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

const (
	defaultPort         = 5000
	defaultMongoTimeout = 10 * time.Second
	defaultSQLitePath   = "data/travel-blog.db"
	defaultCORSOrigin   = "*"
)

type Config struct {
	Port         int
	CORSOrigin   string
	LogLevel     slog.Level
	PasswordMode auth.Mode
	Store        StoreConfig
}

// StoreConfig selects and locates the database.
type StoreConfig struct {
	Driver string

	MongoURI      string
	MongoDatabase string // empty means "use the URI's database"
	MongoTimeout  time.Duration

	SQLitePath string
}

// Load reads the given .env files (default ".env"), overlays the process
// environment and parses the result. Missing files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	fileValues := make(map[string]string)
	for _, path := range envFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		for k, v := range values {
			if _, seen := fileValues[k]; !seen {
				fileValues[k] = v
			}
		}
	}

	return parse(func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fileValues[key]
	})
}

// FromEnv parses the process environment only.
func FromEnv() (*Config, error) {
	return parse(os.Getenv)
}

func parse(lookup func(string) string) (*Config, error) {
	env := source{lookup: lookup}

	cfg := &Config{
		Port:       env.getInt("PORT", defaultPort),
		CORSOrigin: env.get("CORS_ORIGIN", defaultCORSOrigin),
		LogLevel:   env.getLevel("LOG_LEVEL", slog.LevelInfo),
		Store: StoreConfig{
			Driver:        strings.ToLower(env.get("STORE_DRIVER", DriverMongo)),
			MongoURI:      env.get("MONGO_URI", ""),
			MongoDatabase: env.get("MONGO_DATABASE", ""),
			MongoTimeout:  env.getDuration("MONGO_TIMEOUT", defaultMongoTimeout),
			SQLitePath:    env.get("SQLITE_PATH", defaultSQLitePath),
		},
	}

	mode, err := auth.ParseMode(env.get("PASSWORD_MODE", string(auth.ModeBcrypt)))
	if err != nil {
		env.fail("PASSWORD_MODE", err)
	}
	cfg.PasswordMode = mode

	if cfg.Port < 1 || cfg.Port > 65535 {
		env.fail("PORT", fmt.Errorf("%d is out of range", cfg.Port))
	}
	if cfg.Store.MongoTimeout <= 0 {
		env.fail("MONGO_TIMEOUT", errors.New("must be positive"))
	}

	switch cfg.Store.Driver {
	case DriverMongo:
		if cfg.Store.MongoURI == "" {
			env.fail("MONGO_URI", errors.New("required when STORE_DRIVER=mongo"))
		}
	case DriverSQLite:
		if cfg.Store.SQLitePath == "" {
			env.fail("SQLITE_PATH", errors.New("required when STORE_DRIVER=sqlite"))
		}
	default:
		env.fail("STORE_DRIVER", fmt.Errorf("unknown driver %q (want %q or %q)", cfg.Store.Driver, DriverMongo, DriverSQLite))
	}

	if err := errors.Join(env.errs...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// source reads typed values and collects every parse failure, so a
// misconfigured deployment sees all of its mistakes at once.
type source struct {
	lookup func(string) string
	errs   []error
}

func (s *source) fail(key string, err error) {
	s.errs = append(s.errs, fmt.Errorf("%s: %w", key, err))
}

func (s *source) get(key, fallback string) string {
	if v := strings.TrimSpace(s.lookup(key)); v != "" {
		return v
	}
	return fallback
}

func (s *source) getInt(key string, fallback int) int {
	raw := s.get(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.fail(key, fmt.Errorf("%q is not a number", raw))
		return fallback
	}
	return v
}

func (s *source) getDuration(key string, fallback time.Duration) time.Duration {
	raw := s.get(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		s.fail(key, fmt.Errorf("%q is not a duration", raw))
		return fallback
	}
	return v
}

func (s *source) getLevel(key string, fallback slog.Level) slog.Level {
	raw := s.get(key, "")
	if raw == "" {
		return fallback
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		s.fail(key, fmt.Errorf("%q is not a log level", raw))
		return fallback
	}
	return lvl
}
