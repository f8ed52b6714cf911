//go:build ignore

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/xairline/xa-datarefs/datarefs"
	"github.com/xairline/xa-datarefs/models"
	"github.com/xairline/xa-datarefs/services"
	"github.com/xairline/xa-datarefs/utils/config"
	"github.com/xairline/xa-datarefs/utils/logger"
)

type options struct {
	Config string `long:"config" description:"config file" default:"config.yaml"`
	Seed   string `long:"seed" description:"csv file with dataref,type,value rows to seed the harness"`
	Fps    int    `long:"fps" description:"simulated frames per second" default:"20"`
}

// Serves the dataref API against the in-memory harness, for frontend work
// without a running sim.
func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	if opts.Fps <= 0 {
		opts.Fps = 20
	}
	cfg, err := config.Load(opts.Config)
	if err != nil {
		logger.NewGenericLogger().Errorf("%v", err)
		os.Exit(1)
	}
	log, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		logger.NewGenericLogger().Errorf("%v", err)
		os.Exit(1)
	}

	harness := services.NewHarness()
	if opts.Seed != "" {
		n, err := harness.LoadCsv(opts.Seed)
		if err != nil {
			log.Errorf("Seed harness: %v", err)
			os.Exit(1)
		}
		log.Infof("Seeded %d datarefs from %s", n, opts.Seed)
	}

	store := services.NewDatarefService(log, harness)
	drefs := datarefs.New(store)
	if tanks, err := drefs.Sim.Aircraft.Overflow.AcfNumTanks().Value(); err == nil {
		log.Infof("acf_num_tanks: %d", tanks)
	}

	dispatcher := services.NewQueueDispatcher(log, cfg.DispatchQueue)
	watcher := services.NewWatcher(log, store, cfg.Precision)
	for _, key := range cfg.Watch {
		if d, ok := datarefs.Lookup(key); ok {
			watcher.Watch(d)
		}
	}
	watcher.Subscribe(func(old, new models.DatarefValue) {
		log.Infof("Dataref changed, %s: %v -> %v", new.Name, old.Value, new.Value)
	})
	frame := services.NewFrameLoop(log, dispatcher, watcher, cfg.FlightLoop.Interval)

	var api services.ApiService
	if addr, ok := cfg.HTTP.ListenAddr(); ok {
		api = services.NewApiService(log, store, dispatcher, watcher, datarefs.Schema())
		if err := api.Start(addr); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	} else {
		log.Info("HTTP API disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ticker := time.NewTicker(time.Second / time.Duration(opts.Fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if api != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				_ = api.Shutdown(shutdownCtx)
				cancel()
			}
			frame.Dispatcher.Drain()
			log.Infof("Stopped after %d frames", frame.Frames())
			return
		case <-ticker.C:
			frame.Tick()
		}
	}
}
