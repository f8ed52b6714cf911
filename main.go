//go:build !test

package main

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/xairline/goplane/xplm/plugins"
	"github.com/xairline/goplane/xplm/utilities"
	"github.com/xairline/xa-datarefs/datarefs"
	"github.com/xairline/xa-datarefs/services"
	"github.com/xairline/xa-datarefs/utils/config"
	"github.com/xairline/xa-datarefs/utils/logger"
)

// @BasePath  /apis

func main() {
}

func init() {
	gin.SetMode(gin.ReleaseMode)
	plugins.EnableFeature("XPLM_USE_NATIVE_PATHS", true)
	// get plugin path
	systemPath := utilities.GetSystemPath()
	pluginPath := filepath.Join(systemPath, "Resources", "plugins", "XA-datarefs")

	cfg, err := config.Load(filepath.Join(pluginPath, config.FileName))
	bootLogger := logger.NewXplaneLogger("XA Datarefs", "info")
	if err != nil {
		bootLogger.Errorf("Config: %v, using defaults", err)
		cfg = config.Default()
	}
	logger := logger.NewXplaneLogger("XA Datarefs", cfg.LogLevel)
	logger.Infof("Plugin path: %s", pluginPath)

	store := services.NewDatarefService(logger, services.NewXplaneBackend())
	// handles resolve lazily, so nothing touches the sim before plugin start
	drefs := datarefs.New(store)
	if len(cfg.Watch) == 0 {
		cfg.Watch = defaultWatch(drefs)
	}
	// entrypoint
	services.NewXplaneService(
		logger,
		cfg,
		store,
		datarefs.Schema(),
	)
}

func defaultWatch(drefs *datarefs.DataRefs) []string {
	return []string{
		drefs.Sim.Aircraft.Overflow.AcfNumTanks().Name(),
		drefs.Sim.Aircraft.Engine.AcfRSCRedlineEng().Name(),
		drefs.Sim.Aircraft.Engine.AcfRSCIdlespeedEng().Name(),
		drefs.Sim.Operation.G430.G430IsVloc().Name(),
	}
}
