package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/xairline/xa-datarefs/models"
	"github.com/xairline/xa-datarefs/utils/logger"
)

const dispatchTimeout = 2 * time.Second

type ApiService interface {
	Router() http.Handler
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

type apiService struct {
	Logger     logger.Logger
	store      XPlaneData
	dispatcher Dispatcher
	watcher    Watcher
	schema     []models.Dataref
	byKey      map[string]models.Dataref
	router     *gin.Engine
	server     *http.Server
}

// NewApiService serves the schema and live values under /apis. watcher may be nil.
func NewApiService(logger logger.Logger, store XPlaneData, dispatcher Dispatcher, watcher Watcher, schema []models.Dataref) ApiService {
	a := &apiService{
		Logger:     logger,
		store:      store,
		dispatcher: dispatcher,
		watcher:    watcher,
		schema:     schema,
		byKey:      lo.KeyBy(schema, func(d models.Dataref) string { return d.DatarefStr }),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	apis := r.Group("/apis")
	apis.GET("/datarefs", a.listDatarefs)
	apis.GET("/datarefs/value", a.getValue)
	apis.PUT("/datarefs/value", a.setValue)
	apis.GET("/watch", a.watchSnapshot)
	a.router = r
	return a
}

func (a *apiService) Router() http.Handler {
	return a.router
}

func (a *apiService) Start(addr string) error {
	a.server = &http.Server{Addr: addr, Handler: a.router}
	a.Logger.Infof("API listening on %s", addr)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Errorf("API server stopped: %v", err)
		}
	}()
	return nil
}

func (a *apiService) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

func (a *apiService) listDatarefs(c *gin.Context) {
	ns := strings.TrimSuffix(c.Query("namespace"), "/")
	res := a.schema
	if ns != "" {
		res = lo.Filter(a.schema, func(d models.Dataref, _ int) bool { return d.Namespace() == ns })
	}
	c.JSON(http.StatusOK, res)
}

// descriptor finds key in the schema. Keys outside the schema are accepted when
// the caller names a type.
func (a *apiService) descriptor(key, typ string) (models.Dataref, bool) {
	if d, ok := a.byKey[key]; ok {
		return d, true
	}
	var t models.DatarefType
	if typ == "" || t.UnmarshalText([]byte(typ)) != nil {
		return models.Dataref{}, false
	}
	return models.Dataref{DatarefStr: key, Type: t}, true
}

func (a *apiService) getValue(c *gin.Context) {
	desc, ok := a.descriptor(c.Query("dataref"), c.Query("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown dataref"})
		return
	}
	precision := -1
	if p := c.Query("precision"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < -1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid precision"})
			return
		}
		precision = v
	}

	var value models.DatarefValue
	var readErr error
	if err := a.dispatch(c, func() { value, readErr = ReadValue(a.store, desc, precision) }); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if readErr != nil {
		a.Logger.Warningf("Read %s failed: %v", desc.DatarefStr, readErr)
		c.JSON(statusFor(readErr), gin.H{"error": readErr.Error()})
		return
	}
	c.JSON(http.StatusOK, value)
}

func (a *apiService) setValue(c *gin.Context) {
	var req models.SetDatarefValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	desc, ok := a.descriptor(req.Request.Dataref, c.Query("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown dataref"})
		return
	}

	var writeErr error
	if err := a.dispatch(c, func() { writeErr = WriteValue(a.store, desc, req.Request.Value) }); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if writeErr != nil {
		a.Logger.Warningf("Write %s failed: %v", desc.DatarefStr, writeErr)
		c.JSON(statusFor(writeErr), gin.H{"error": writeErr.Error()})
		return
	}
	a.Logger.Infof("Setting %s to %v", desc.DatarefStr, req.Request.Value)
	c.Status(http.StatusNoContent)
}

func (a *apiService) watchSnapshot(c *gin.Context) {
	if a.watcher == nil {
		c.JSON(http.StatusOK, []models.DatarefValue{})
		return
	}
	c.JSON(http.StatusOK, a.watcher.Snapshot())
}

func (a *apiService) dispatch(c *gin.Context, fn func()) error {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dispatchTimeout)
	defer cancel()
	return a.dispatcher.Do(ctx, fn)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, ErrReadOnly):
		return http.StatusForbidden
	case errors.Is(err, ErrResolution):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
