package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/InvestSim_Go/internal/logger"
	"github.com/osse101/InvestSim_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobSkipped   = "Scheduled job skipped"
)

type entry struct {
	name     string
	interval time.Duration
	job      worker.Job
}

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	entries    []entry
	quit       chan struct{}
	wg         sync.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval once the scheduler starts.
// A non-positive interval disables the job.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}
	s.entries = append(s.entries, entry{name: name, interval: interval, job: job})
}

// Start launches one ticker per scheduled job
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		log := logger.FromContext(context.Background())
		for _, e := range s.entries {
			log.Info(LogMsgJobScheduled, "job", e.name, "interval", e.interval)
			s.wg.Add(1)
			go s.loop(e)
		}
	})
}

func (s *Scheduler) loop(e entry) {
	defer s.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// A full queue means the previous run is still pending; skip this tick
			if !s.workerPool.Enqueue(e.job) {
				logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", e.name)
			}
		case <-s.quit:
			return
		}
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
