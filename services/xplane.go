//go:build !test

package services

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/xairline/goplane/extra"
	"github.com/xairline/goplane/xplm/processing"
	"github.com/xairline/xa-datarefs/models"
	"github.com/xairline/xa-datarefs/utils/config"
	"github.com/xairline/xa-datarefs/utils/logger"
)

type XplaneService interface {
	// init
	onPluginStateChanged(state extra.PluginState, plugin *extra.XPlanePlugin)
	onPluginStart()
	onPluginStop()
	// flight loop
	flightLoop(elapsedSinceLastCall, elapsedTimeSinceLastFlightLoop float32, counter int, ref interface{}) float32
}

type xplaneService struct {
	Plugin     *extra.XPlanePlugin
	Logger     logger.Logger
	cfg        *config.Config
	store      XPlaneData
	dispatcher Dispatcher
	watcher    Watcher
	frame      *FrameLoop
	api        ApiService
	schema     []models.Dataref
}

var xplaneSvcLock = &sync.Mutex{}
var xplaneSvc XplaneService

// NewXplaneService registers the plugin with the sim. The sim loads a plugin once,
// so the service is a process wide singleton.
func NewXplaneService(
	logger logger.Logger,
	cfg *config.Config,
	store XPlaneData,
	schema []models.Dataref,
) XplaneService {
	xplaneSvcLock.Lock()
	defer xplaneSvcLock.Unlock()
	if xplaneSvc != nil {
		logger.Info("Xplane SVC has been initialized already")
		return xplaneSvc
	}
	logger.Info("Xplane SVC: initializing")

	dispatcher := NewQueueDispatcher(logger, cfg.DispatchQueue)
	watcher := NewWatcher(logger, store, cfg.Precision)
	svc := &xplaneService{
		Plugin:     extra.NewPlugin("XA Datarefs", "com.github.xairline.xa-datarefs", "Typed dataref access and a REST bridge for X-Plane"),
		Logger:     logger,
		cfg:        cfg,
		store:      store,
		dispatcher: dispatcher,
		watcher:    watcher,
		frame:      NewFrameLoop(logger, dispatcher, watcher, cfg.FlightLoop.Interval),
		schema:     schema,
	}
	if _, ok := cfg.HTTP.ListenAddr(); ok {
		svc.api = NewApiService(logger, store, dispatcher, watcher, schema)
	}
	svc.Plugin.SetPluginStateCallback(svc.onPluginStateChanged)
	xplaneSvc = svc
	return svc
}

func (s *xplaneService) onPluginStateChanged(state extra.PluginState, plugin *extra.XPlanePlugin) {
	switch state {
	case extra.PluginStart:
		s.onPluginStart()
	case extra.PluginStop:
		s.onPluginStop()
	case extra.PluginEnable:
		s.Logger.Infof("Plugin: %s enabled", plugin.GetName())
	case extra.PluginDisable:
		s.Logger.Infof("Plugin: %s disabled", plugin.GetName())
	}
}

func (s *xplaneService) onPluginStart() {
	s.Logger.Info("Plugin started")

	runtime.GOMAXPROCS(runtime.NumCPU())

	byKey := make(map[string]models.Dataref, len(s.schema))
	for _, d := range s.schema {
		byKey[d.DatarefStr] = d
	}
	for _, key := range s.cfg.Watch {
		d, ok := byKey[key]
		if !ok {
			s.Logger.Warningf("Watch: %s is not in the schema, skipping", key)
			continue
		}
		s.watcher.Watch(d)
	}
	s.watcher.Subscribe(func(old, new models.DatarefValue) {
		s.Logger.Infof("Dataref changed, %s: %v -> %v", new.Name, old.Value, new.Value)
	})

	if s.api != nil {
		addr, _ := s.cfg.HTTP.ListenAddr()
		if err := s.api.Start(addr); err != nil {
			s.Logger.Errorf("Failed to start API: %v", err)
		}
	}

	processing.RegisterFlightLoopCallback(s.flightLoop, s.frame.Interval, nil)
}

func (s *xplaneService) onPluginStop() {
	processing.UnregisterFlightLoopCallback(s.flightLoop, nil)
	if s.api != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.api.Shutdown(ctx); err != nil {
			s.Logger.Errorf("API shutdown: %v", err)
		}
	}
	// unblock any request still waiting on the sim thread
	s.dispatcher.Drain()
	s.Logger.Info("Plugin stopped")
}

func (s *xplaneService) flightLoop(
	elapsedSinceLastCall,
	elapsedTimeSinceLastFlightLoop float32,
	counter int,
	ref interface{},
) float32 {
	return s.frame.Tick()
}
