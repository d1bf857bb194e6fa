package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/FrenchMajesty/turbo-heap/utils/logger"
)

func main() {
	stdout := logger.NewStdoutLogger(logger.WithPrefix("turbo-heap: "))
	cfg := loadConfig(os.Getenv, stdout)

	var log logger.Logger = stdout
	if cfg.LogFile != "" {
		fileLogger, err := logger.NewFileLogger(cfg.LogFile, logger.WithPrefix("turbo-heap: "))
		if err != nil {
			stdout.Printf("Error opening log file %s: %v", cfg.LogFile, err)
			os.Exit(1)
		}
		log = logger.NewMultiLogger(stdout, fileLogger)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Scheduling %d jobs from %d producers (env=%s)", cfg.Jobs, cfg.Producers, cfg.Env)

	scheduler := NewScheduler(cfg, log)
	if err := scheduler.Produce(ctx); err != nil {
		log.Printf("Producing jobs failed: %v", err)
		return
	}

	lastPriority := -1
	dispatched, err := scheduler.Dispatch(ctx, func(job *Job) {
		if lastPriority >= 0 && job.Priority > lastPriority {
			log.Printf("Out of order dispatch: %s priority %d after %d", job.Name, job.Priority, lastPriority)
		}
		lastPriority = job.Priority
	})
	if err != nil {
		log.Printf("Dispatch interrupted after %d jobs: %v", dispatched, err)
		return
	}

	log.Printf("Dispatched %d jobs in priority order", dispatched)
}
