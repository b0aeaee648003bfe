// matter-bridge runs a set of bridged devices and logs the attribute reports
// they produce.
//
// The devices come from a YAML file, with MATTER_BRIDGE_* environment
// variables overriding the top-level settings. Without a file a single
// on/off light is bridged.
//
// Usage:
//
//	matter-bridge [options]
//
// Example:
//
//	matter-bridge -config devices.yml -toggle 5s -log debug
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/backkem/matterbridge/pkg/bridge"
	"github.com/backkem/matterbridge/pkg/clusters/onoff"
	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/reporting"
	"github.com/backkem/matterbridge/pkg/zcl"
	"github.com/joho/godotenv"
	"github.com/pion/logging"
)

func main() {
	opts := ParseFlags()

	if err := run(opts); err != nil {
		log.Fatalf("matter-bridge: %v", err)
	}
}

func run(opts Options) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", opts.EnvFile, err)
		}
	}

	cfg, err := bridge.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if len(cfg.Devices) == 0 {
		cfg.Devices = []bridge.DeviceConfig{{
			Name:       opts.DeviceName,
			Type:       bridge.DeviceTypeLightbulb,
			VendorName: "Acme",
			Reachable:  true,
			Online:     true,
		}}
	}

	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	loggerFactory := logging.NewDefaultLoggerFactory()
	loggerFactory.DefaultLogLevel = level
	logger := loggerFactory.NewLogger("main")

	queue := reporting.NewWorkQueue(reporting.QueueConfig{
		Depth:         cfg.QueueDepth,
		LoggerFactory: loggerFactory,
	})

	// Reports arrive on the queue goroutine; b is set before any device is added.
	var b *bridge.Bridge
	reporter, err := reporting.NewReporter(reporting.ReporterConfig{
		Queue: queue,
		Listener: reporting.ListenerFunc(func(path datamodel.ConcreteAttributePath) {
			logReport(logger, b, path)
		}),
		LoggerFactory: loggerFactory,
	})
	if err != nil {
		return err
	}

	bc := cfg.BridgeConfig()
	bc.Reporter = reporter
	bc.LoggerFactory = loggerFactory
	b = bridge.New(bc)

	for _, dc := range cfg.Devices {
		d, err := dc.NewDevice(bridge.WithLoggerFactory(loggerFactory))
		if err != nil {
			return fmt.Errorf("device %q: %w", dc.Name, err)
		}
		d.SetDeviceChangeCallback(func() {
			logger.Debugf("device %q changed (reachable=%v online=%v)", d.Name(), d.IsReachable(), d.IsOnline())
		})
		if _, err := b.AddDevice(d); err != nil {
			return fmt.Errorf("device %q: %w", dc.Name, err)
		}
	}

	if err := queue.Start(); err != nil {
		return err
	}
	defer func() {
		if err := queue.Stop(); err != nil {
			logger.Warnf("stop report queue: %v", err)
		}
	}()

	for _, d := range b.Devices() {
		typeID, _ := d.DeviceType().MatterDeviceTypeID()
		logger.Infof("endpoint %d (parent %d): %q type %s (0x%04X) unique id %s",
			d.EndpointID(), d.ParentEndpointID(), d.Name(), d.DeviceType(), uint32(typeID), d.UniqueID())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.ToggleInterval > 0 {
		go toggleLoop(ctx, b, opts.ToggleInterval, logger)
	}

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

// toggleLoop sends Toggle to every on/off device until ctx is done.
func toggleLoop(ctx context.Context, b *bridge.Bridge, interval time.Duration, logger logging.LeveledLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, d := range b.Devices() {
				if d.ClusterHandler(onoff.ClusterID) == nil {
					continue
				}
				if err := b.InvokeCommand(d.EndpointID(), onoff.ClusterID, onoff.CmdToggle); err != nil {
					logger.Warnf("toggle endpoint %d: %v", d.EndpointID(), err)
				}
			}
		}
	}
}

// logReport reads the reported attribute back through the bridge and logs it.
func logReport(logger logging.LeveledLogger, b *bridge.Bridge, path datamodel.ConcreteAttributePath) {
	buf := make([]byte, 64)
	n, err := b.ReadAttribute(path.Endpoint, path.Cluster, path.Attribute, buf)
	if err != nil {
		logger.Warnf("report %s: read failed: %v (status %s)", path, err, datamodel.StatusFromError(err))
		return
	}

	entry := attributeEntry(b, path)
	if entry == nil {
		logger.Infof("report %s = %x", path, buf[:n])
		return
	}
	v, err := zcl.NewReader(buf[:n]).Value(entry.Type)
	if err != nil {
		logger.Warnf("report %s: decode %s: %v", path, entry.Type, err)
		return
	}
	logger.Infof("report %s = %v (%s)", path, v, entry.Type)
}

// attributeEntry returns the metadata of the attribute at path, or nil.
func attributeEntry(b *bridge.Bridge, path datamodel.ConcreteAttributePath) *datamodel.AttributeEntry {
	d := b.Device(path.Endpoint)
	if d == nil {
		return nil
	}
	h := d.ClusterHandler(path.Cluster)
	if h == nil {
		return nil
	}
	return datamodel.FindAttribute(h.AttributeList(), path.Attribute)
}
