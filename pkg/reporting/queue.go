package reporting

import (
	"sync"

	"github.com/pion/logging"
)

// DefaultQueueDepth is the default number of pending work items.
const DefaultQueueDepth = 64

// WorkQueue executes deferred work on a single worker goroutine.
// Work items run in the order they were scheduled.
type WorkQueue struct {
	work    chan Work
	closeCh chan struct{}
	wg      sync.WaitGroup
	log     logging.LeveledLogger

	mu      sync.RWMutex
	started bool
	closed  bool
}

// QueueConfig configures a WorkQueue.
type QueueConfig struct {
	// Depth is the number of work items that may be pending.
	// Defaults to DefaultQueueDepth if 0.
	Depth int

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// NewWorkQueue creates a new work queue. Call Start to begin executing work.
// Work scheduled before Start is kept and runs once the queue starts.
func NewWorkQueue(config QueueConfig) *WorkQueue {
	depth := config.Depth
	if depth <= 0 {
		depth = DefaultQueueDepth
	}

	q := &WorkQueue{
		work:    make(chan Work, depth),
		closeCh: make(chan struct{}),
	}

	if config.LoggerFactory != nil {
		q.log = config.LoggerFactory.NewLogger("reporting")
	}

	return q
}

// Start launches the worker goroutine.
func (q *WorkQueue) Start() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	if q.started {
		q.mu.Unlock()
		return ErrAlreadyStarted
	}
	q.started = true
	q.mu.Unlock()

	if q.log != nil {
		q.log.Debugf("starting work queue, depth=%d", cap(q.work))
	}

	q.wg.Add(1)
	go q.run()

	return nil
}

// Stop rejects further work, runs whatever is already queued and waits for
// the worker to exit.
func (q *WorkQueue) Stop() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.closed = true
	started := q.started
	q.mu.Unlock()

	close(q.closeCh)

	if !started {
		// Nothing will ever run the backlog.
		q.drain()
		return nil
	}

	q.wg.Wait()

	if q.log != nil {
		q.log.Debug("work queue stopped")
	}
	return nil
}

// ScheduleWork implements WorkScheduler. It never blocks.
func (q *WorkQueue) ScheduleWork(work Work) error {
	if work == nil {
		return nil
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.work <- work:
		return nil
	default:
		if q.log != nil {
			q.log.Warnf("work queue full, %d items pending", len(q.work))
		}
		return ErrQueueFull
	}
}

// Pending returns the number of queued work items.
func (q *WorkQueue) Pending() int {
	return len(q.work)
}

func (q *WorkQueue) run() {
	defer q.wg.Done()

	for {
		select {
		case w := <-q.work:
			q.execute(w)
		case <-q.closeCh:
			q.drain()
			return
		}
	}
}

// drain runs every item still in the channel.
func (q *WorkQueue) drain() {
	for {
		select {
		case w := <-q.work:
			q.execute(w)
		default:
			return
		}
	}
}

func (q *WorkQueue) execute(w Work) {
	defer func() {
		if r := recover(); r != nil && q.log != nil {
			q.log.Errorf("work item panicked: %v", r)
		}
	}()
	w()
}

var _ WorkScheduler = (*WorkQueue)(nil)
