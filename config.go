package main

import (
	"strconv"

	"github.com/FrenchMajesty/turbo-heap/utils/logger"
)

const (
	defaultJobs      = 20
	defaultProducers = 4
	defaultSeed      = 1
)

// Config is read from the environment:
//
//	ENV                  dev or testing turns on per-job logging
//	TURBO_HEAP_JOBS      number of jobs to schedule (default 20)
//	TURBO_HEAP_PRODUCERS goroutines pushing jobs (default 4)
//	TURBO_HEAP_SEED      seed for job priorities (default 1)
//	TURBO_HEAP_LOG_FILE  also log to this file when set
type Config struct {
	Env       string
	Jobs      int
	Producers int
	Seed      int64
	LogFile   string
}

// Verbose reports whether every dispatched job should be logged
func (c Config) Verbose() bool {
	return c.Env == "dev" || c.Env == "testing"
}

func loadConfig(getenv func(string) string, log logger.Logger) Config {
	return Config{
		Env:       getenv("ENV"),
		Jobs:      positiveInt(getenv, "TURBO_HEAP_JOBS", defaultJobs, log),
		Producers: positiveInt(getenv, "TURBO_HEAP_PRODUCERS", defaultProducers, log),
		Seed:      int64(positiveInt(getenv, "TURBO_HEAP_SEED", defaultSeed, log)),
		LogFile:   getenv("TURBO_HEAP_LOG_FILE"),
	}
}

func positiveInt(getenv func(string) string, key string, fallback int, log logger.Logger) int {
	raw := getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("config: ignoring %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}
