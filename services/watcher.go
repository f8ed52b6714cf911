package services

import (
	"reflect"
	"sort"
	"sync"

	"github.com/xairline/xa-datarefs/models"
	"github.com/xairline/xa-datarefs/utils/logger"
)

// ChangeFunc is called from Poll when a watched value changes.
type ChangeFunc func(old, new models.DatarefValue)

// Watcher samples a set of datarefs once per frame and reports changes.
type Watcher interface {
	Watch(desc models.Dataref)
	Subscribe(fn ChangeFunc)
	Poll() int
	Snapshot() []models.DatarefValue
}

type watched struct {
	desc    models.Dataref
	last    models.DatarefValue
	sampled bool
	failing bool
}

type watcher struct {
	Logger    logger.Logger
	store     XPlaneData
	precision int

	mu          sync.Mutex
	entries     map[string]*watched
	order       []string
	subscribers []ChangeFunc
}

func NewWatcher(logger logger.Logger, store XPlaneData, precision int) Watcher {
	return &watcher{
		Logger:    logger,
		store:     store,
		precision: precision,
		entries:   make(map[string]*watched),
	}
}

func (w *watcher) Watch(desc models.Dataref) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.entries[desc.DatarefStr]; ok {
		return
	}
	w.entries[desc.DatarefStr] = &watched{desc: desc}
	w.order = append(w.order, desc.DatarefStr)
	w.Logger.Infof("Watching %s (%s)", desc.DatarefStr, desc.Type)
}

func (w *watcher) Subscribe(fn ChangeFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, fn)
}

type change struct {
	old, new models.DatarefValue
}

// Poll samples every watched dataref and returns the number of changed values.
// Subscribers run after the lock is released.
func (w *watcher) Poll() int {
	w.mu.Lock()
	var changes []change
	for _, name := range w.order {
		e := w.entries[name]
		v, err := ReadValue(w.store, e.desc, w.precision)
		if err != nil {
			if !e.failing {
				w.Logger.Errorf("Error reading %s: %v", name, err)
				e.failing = true
			}
			continue
		}
		e.failing = false
		if e.sampled && reflect.DeepEqual(e.last.Value, v.Value) {
			continue
		}
		changes = append(changes, change{old: e.last, new: v})
		e.last = v
		e.sampled = true
	}
	subscribers := append([]ChangeFunc{}, w.subscribers...)
	w.mu.Unlock()

	for _, c := range changes {
		for _, fn := range subscribers {
			fn(c.old, c.new)
		}
	}
	return len(changes)
}

func (w *watcher) Snapshot() []models.DatarefValue {
	w.mu.Lock()
	defer w.mu.Unlock()
	res := make([]models.DatarefValue, 0, len(w.entries))
	for _, e := range w.entries {
		if e.sampled {
			res = append(res, e.last)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
