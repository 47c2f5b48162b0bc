// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached by type name, so repeated Load calls are cheap and
// safe from multiple goroutines.
//
// # Usage
//
//	type AppConfig struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    return err
//	}
//	var app AppConfig
//	if err := config.Load(&app); err != nil {
//	    return err
//	}
//
// Without an explicit LoadEnv call the first Load reads ".env" from the
// working directory if present.
//
// # Errors
//
//   - ErrParsingConfig  – env.Parse failed, joined with the parser error.
//   - ErrLoadingEnvFile – a .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load.
//   - ErrConfigNotLoaded – cache miss after a concurrent failed load.
//
// # Testing
//
// ResetCache clears everything; ForceReloadConfig re-parses one type after
// the environment changed.
package config
