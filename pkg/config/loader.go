package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration structs keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded = new(sync.Once)
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once on first use if it exists. Each
// configuration type is parsed once; later calls are served from cache.
//
// Example:
//
//	var cfg numbervalidator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// Allow a retry once the environment is fixed.
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}
		globalCache.set(typeName, *v)
	})
	if err != nil {
		return err
	}

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value for T and parses it again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	delete(globalCache.values, typeName)
	delete(globalCache.onces, typeName)
	globalCache.mu.Unlock()

	return Load(v)
}

// ResetCache forgets every parsed configuration and the default .env state.
// Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()

	defaultEnvMu.Lock()
	defaultEnvLoaded = new(sync.Once)
	defaultEnvMu.Unlock()
}

// LoadEnv reads the given .env files into the process environment. Later
// files override earlier ones; variables already set in the process are
// overridden as well. With no paths it reads ".env".
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	once := defaultEnvLoaded
	defaultEnvMu.Unlock()

	once.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
}

func (c *configCache) get(typeName string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[typeName]
	return v, ok
}

func (c *configCache) set(typeName string, v any) {
	c.mu.Lock()
	c.values[typeName] = v
	c.mu.Unlock()
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", new(T))
	}
	return t.String()
}
