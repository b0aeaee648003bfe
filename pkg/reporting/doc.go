// Package reporting carries attribute change notifications from bridged
// devices to the protocol stack.
//
// A device never talks to subscribers directly. When one of its attributes
// changes it hands the affected paths to a Scheduler, which turns them into a
// unit of deferred work and enqueues it on the stack's own executor. The work
// runs later on the executor goroutine and notifies a
// datamodel.AttributeChangeListener, typically the stack's subscription
// engine.
//
// # Components
//
//   - WorkQueue: bounded, non-blocking executor for deferred closures
//   - Reporter: Scheduler that packages paths into work for a WorkScheduler
//   - Recorder: synchronous Scheduler for tests
//
// Scheduling never blocks the caller. A full or stopped queue is reported
// as ErrQueueFull or ErrQueueClosed; nothing is dropped silently.
package reporting
