package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/logger"
	"github.com/osse101/GrowRoom_Go/internal/worker"
)

// Scheduler enqueues jobs on the worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	entries    []entry
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	mu         sync.Mutex
	started    bool
}

type entry struct {
	name     string
	interval time.Duration
	job      worker.Job
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval. A non-positive interval
// disables the job. Jobs registered after Start begin immediately.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	log := logger.FromContext(context.Background())
	if interval <= 0 {
		log.Info(LogMsgJobDisabled, "job", name)
		return
	}

	e := entry{name: name, interval: interval, job: job}
	s.mu.Lock()
	s.entries = append(s.entries, e)
	started := s.started
	s.mu.Unlock()

	log.Info(LogMsgJobScheduled, "job", name, "interval", interval)
	if started {
		s.run(e)
	}
}

// Start launches a ticker goroutine per registered job
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	entries := append([]entry(nil), s.entries...)
	s.mu.Unlock()

	for _, e := range entries {
		s.run(e)
	}
}

// Run starts the scheduler and blocks until ctx is done, then stops it
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return nil
}

func (s *Scheduler) run(e entry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// A slow job must not pile up runs behind it
				if !s.workerPool.TryEnqueue(e.job) {
					logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", e.name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
		logger.FromContext(context.Background()).Debug(LogMsgStopped)
	})
}
