package reporting

import (
	"fmt"

	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/pion/logging"
)

// Reporter implements Scheduler on top of a WorkScheduler.
// Every ScheduleReport call becomes exactly one work item which, when run,
// notifies the listener of each path in order.
type Reporter struct {
	queue    WorkScheduler
	listener datamodel.AttributeChangeListener
	log      logging.LeveledLogger
}

// ReporterConfig configures a Reporter.
type ReporterConfig struct {
	// Queue executes the deferred report work. Required.
	Queue WorkScheduler

	// Listener receives the changed paths on the queue's goroutine. Required.
	Listener datamodel.AttributeChangeListener

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// NewReporter creates a new Reporter.
func NewReporter(config ReporterConfig) (*Reporter, error) {
	if config.Queue == nil {
		return nil, ErrNoQueue
	}
	if config.Listener == nil {
		return nil, ErrNoListener
	}

	r := &Reporter{
		queue:    config.Queue,
		listener: config.Listener,
	}

	if config.LoggerFactory != nil {
		r.log = config.LoggerFactory.NewLogger("reporting")
	}

	return r, nil
}

// ScheduleReport implements Scheduler.
func (r *Reporter) ScheduleReport(paths ...datamodel.ConcreteAttributePath) error {
	if len(paths) == 0 {
		return nil
	}

	// The caller may reuse its slice before the work runs.
	batch := make([]datamodel.ConcreteAttributePath, len(paths))
	copy(batch, paths)

	err := r.queue.ScheduleWork(func() {
		for _, p := range batch {
			r.listener.OnAttributeChanged(p)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule report %v: %w", batch, err)
	}

	if r.log != nil {
		r.log.Tracef("scheduled report for %d path(s), first %s", len(batch), batch[0])
	}
	return nil
}

var _ Scheduler = (*Reporter)(nil)
