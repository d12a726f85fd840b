// Package config loads application configuration from environment variables
// into annotated structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is read at most once per process (missing files are
// fine), then env.Parse populates the struct from field tags.
//
// # Usage
//
//	type HTTPConfig struct {
//	    Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
//
// Load returns an error that wraps ErrParsingConfig when a tag cannot be
// satisfied (for example a missing required variable); MustLoad panics on
// the same condition, which is the right behavior for configuration the
// process cannot start without.
package config
