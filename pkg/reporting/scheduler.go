package reporting

import "github.com/backkem/matterbridge/pkg/datamodel"

// Scheduler schedules asynchronous attribute reports.
//
// ScheduleReport must be safe to call from any goroutine. All paths passed in
// one call are delivered as a single unit of work.
type Scheduler interface {
	ScheduleReport(paths ...datamodel.ConcreteAttributePath) error
}

// Work is a deferred unit of work executed by the stack.
type Work func()

// WorkScheduler is the stack's closure-invocation primitive.
// ScheduleWork must not block; a work item that cannot be accepted is
// reported through the returned error.
type WorkScheduler interface {
	ScheduleWork(work Work) error
}

// ListenerFunc adapts a function to datamodel.AttributeChangeListener.
type ListenerFunc func(path datamodel.ConcreteAttributePath)

// OnAttributeChanged implements datamodel.AttributeChangeListener.
func (f ListenerFunc) OnAttributeChanged(path datamodel.ConcreteAttributePath) {
	f(path)
}

var _ datamodel.AttributeChangeListener = ListenerFunc(nil)
