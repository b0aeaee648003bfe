// Package bridge models the devices exposed behind a Matter bridge.
//
// A Device is one bridged endpoint. It holds the protocol-visible state of the
// device (identity strings, reachability, identify and groups sub-state),
// serves attribute reads and writes for the clusters registered on it, and
// turns every real state change into a local callback plus one asynchronous
// report through a reporting.Scheduler.
//
// Direct setter calls assume a single owner goroutine. Only report scheduling
// crosses goroutines; the Bridge registry serializes attribute access coming
// from the stack.
//
// Example:
//
//	light := bridge.NewLightbulb("Light1")
//	b := bridge.New(bridge.BridgeConfig{Reporter: reporter})
//	ep, err := b.AddDevice(light.Device)
//	...
//	light.SetReachable(true) // schedules 3/0x0039/0x0011
package bridge
