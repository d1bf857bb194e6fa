package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/FrenchMajesty/turbo-heap/utils/logger"
	"github.com/FrenchMajesty/turbo-heap/utils/priority_queue"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Job is the payload queued by the demo. The queue only borrows it.
type Job struct {
	ID       uuid.UUID
	Name     string
	Priority int
	Producer int
}

// Scheduler fans jobs in from several producers and dispatches them
// highest priority first.
type Scheduler struct {
	cfg    Config
	queue  *priority_queue.SyncPriorityQueue[*Job]
	logger logger.Logger
}

func NewScheduler(cfg Config, log logger.Logger) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		queue:  priority_queue.NewSyncMaxPriorityQueue[*Job](priority_queue.WithLogger(log), priority_queue.WithCapacity(cfg.Jobs)),
		logger: log,
	}
}

// Produce splits cfg.Jobs across cfg.Producers goroutines and waits for all of them
func (s *Scheduler) Produce(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for p := 0; p < s.cfg.Producers; p++ {
		producer := p
		count := s.cfg.Jobs / s.cfg.Producers
		if producer < s.cfg.Jobs%s.cfg.Producers {
			count++
		}
		rng := rand.New(rand.NewSource(s.cfg.Seed + int64(producer)))

		g.Go(func() error {
			for i := 0; i < count; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				job := &Job{
					ID:       uuid.New(),
					Name:     fmt.Sprintf("producer-%d/job-%d", producer, i),
					Priority: rng.Intn(100),
					Producer: producer,
				}
				size := s.queue.Push(job, job.Priority)
				if s.cfg.Verbose() {
					s.logger.Printf("scheduler: queued %s (%s) priority=%d size=%d", job.Name, job.ID.String()[:8], job.Priority, size)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// Dispatch pops every queued job in priority order and hands it to run
func (s *Scheduler) Dispatch(ctx context.Context, run func(*Job)) (int, error) {
	dispatched := 0
	for {
		if err := ctx.Err(); err != nil {
			return dispatched, err
		}
		job, priority, ok := s.queue.Pop()
		if !ok {
			return dispatched, nil
		}
		if s.cfg.Verbose() {
			s.logger.Printf("scheduler: dispatching %s priority=%d remaining=%d", job.Name, priority, s.queue.Size())
		}
		run(job)
		dispatched++
	}
}
