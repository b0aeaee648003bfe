package reporting

import (
	"sync"

	"github.com/backkem/matterbridge/pkg/datamodel"
)

// Recorder is a Scheduler that records every report synchronously.
// It is intended for tests that need to observe what a device scheduled
// without running a WorkQueue.
type Recorder struct {
	mu      sync.Mutex
	reports [][]datamodel.ConcreteAttributePath

	// Err, when set, is returned from ScheduleReport and nothing is recorded.
	Err error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ScheduleReport implements Scheduler.
func (r *Recorder) ScheduleReport(paths ...datamodel.ConcreteAttributePath) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	batch := make([]datamodel.ConcreteAttributePath, len(paths))
	copy(batch, paths)
	r.reports = append(r.reports, batch)
	return nil
}

// Count returns the number of ScheduleReport calls recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// Reports returns a copy of all recorded reports.
func (r *Recorder) Reports() [][]datamodel.ConcreteAttributePath {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]datamodel.ConcreteAttributePath, len(r.reports))
	copy(out, r.reports)
	return out
}

// Last returns the most recent report, or nil if none.
func (r *Recorder) Last() []datamodel.ConcreteAttributePath {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.reports) == 0 {
		return nil
	}
	return r.reports[len(r.reports)-1]
}

// Reset discards all recorded reports.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = nil
}

var _ Scheduler = (*Recorder)(nil)
