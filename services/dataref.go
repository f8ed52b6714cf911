package services

import (
	"fmt"
	"math"
	"sync"

	"github.com/xairline/xa-datarefs/models"
	"github.com/xairline/xa-datarefs/utils/logger"
)

// XPlaneData resolves dataref keys to typed handles. Handles are live: every
// Value call reads the host and every SetValue call writes it.
type XPlaneData interface {
	GetFloat(name string) DataRef[float32]
	GetDouble(name string) DataRef[float64]
	GetInt(name string) DataRef[int]
	GetBool(name string) DataRef[bool]
	GetFloatArray(name string) DataRef[[]float32]
	GetIntArray(name string) DataRef[[]int]
	GetBoolArray(name string) DataRef[[]bool]
	GetByteArray(name string) DataRef[[]byte]
	GetString(name string) DataRef[string]
}

// DataRef is a typed handle to one host dataref.
type DataRef[T any] interface {
	Name() string
	Value() (T, error)
	SetValue(value T) error
	Writable() (bool, error)
}

type handleKey struct {
	name string
	kind models.DatarefType
}

type resolved struct {
	ref   Ref
	types models.HostType
}

type datarefService struct {
	Logger  logger.Logger
	backend Backend

	mu      sync.Mutex
	refs    map[string]resolved
	handles map[handleKey]interface{}
}

func NewDatarefService(logger logger.Logger, backend Backend) XPlaneData {
	logger.Info("Dataref SVC: initializing")
	return &datarefService{
		Logger:  logger,
		backend: backend,
		refs:    make(map[string]resolved),
		handles: make(map[handleKey]interface{}),
	}
}

// resolve returns the cached host ref for name, looking it up on first use. Failed
// lookups are not cached so a dataref registered later by another plugin is found
// on a subsequent call. A cached type mask that does not fit kind is re-read
// before reporting a mismatch.
func (d *datarefService) resolve(name string, kind models.DatarefType) (Ref, error) {
	d.mu.Lock()
	r, ok := d.refs[name]
	if !ok {
		ref, found := d.backend.FindDataRef(name)
		if !found {
			d.mu.Unlock()
			d.Logger.Debugf("Failed to find dataref: %s", name)
			return nil, &ResolutionError{Dataref: name, Reason: ErrNotFound}
		}
		r = resolved{ref: ref, types: d.backend.GetDataRefTypes(ref)}
		d.refs[name] = r
		d.Logger.Debugf("Resolved dataref %s (%s)", name, r.types)
	} else if !r.types.Has(kind.HostTypes()) {
		// the mask may have grown since it was cached
		r.types = d.backend.GetDataRefTypes(r.ref)
		d.refs[name] = r
	}
	d.mu.Unlock()

	if !r.types.Has(kind.HostTypes()) {
		return nil, &ResolutionError{
			Dataref: name,
			Reason:  fmt.Errorf("%w: want %s, host has %s", ErrTypeMismatch, kind, r.types),
		}
	}
	return r.ref, nil
}

type dataref[T any] struct {
	svc   *datarefService
	name  string
	kind  models.DatarefType
	read  func(b Backend, ref Ref) T
	write func(b Backend, ref Ref, value T)
}

func (h *dataref[T]) Name() string {
	return h.name
}

func (h *dataref[T]) Value() (T, error) {
	ref, err := h.svc.resolve(h.name, h.kind)
	if err != nil {
		var zero T
		return zero, err
	}
	return h.read(h.svc.backend, ref), nil
}

func (h *dataref[T]) SetValue(value T) error {
	ref, err := h.svc.resolve(h.name, h.kind)
	if err != nil {
		return err
	}
	if !h.svc.backend.CanWriteDataRef(ref) {
		return fmt.Errorf("%s: %w", h.name, ErrReadOnly)
	}
	h.write(h.svc.backend, ref, value)
	return nil
}

func (h *dataref[T]) Writable() (bool, error) {
	ref, err := h.svc.resolve(h.name, h.kind)
	if err != nil {
		return false, err
	}
	return h.svc.backend.CanWriteDataRef(ref), nil
}

func handle[T any](
	d *datarefService,
	name string,
	kind models.DatarefType,
	read func(b Backend, ref Ref) T,
	write func(b Backend, ref Ref, value T),
) DataRef[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := handleKey{name: name, kind: kind}
	if h, ok := d.handles[key]; ok {
		return h.(DataRef[T])
	}
	h := &dataref[T]{svc: d, name: name, kind: kind, read: read, write: write}
	d.handles[key] = h
	return h
}

func (d *datarefService) GetFloat(name string) DataRef[float32] {
	return handle(d, name, models.TypeFloat,
		func(b Backend, ref Ref) float32 { return b.GetFloatData(ref) },
		func(b Backend, ref Ref, v float32) { b.SetFloatData(ref, v) },
	)
}

func (d *datarefService) GetDouble(name string) DataRef[float64] {
	return handle(d, name, models.TypeDouble,
		func(b Backend, ref Ref) float64 { return b.GetDoubleData(ref) },
		func(b Backend, ref Ref, v float64) { b.SetDoubleData(ref, v) },
	)
}

func (d *datarefService) GetInt(name string) DataRef[int] {
	return handle(d, name, models.TypeInt,
		func(b Backend, ref Ref) int { return b.GetIntData(ref) },
		func(b Backend, ref Ref, v int) { b.SetIntData(ref, v) },
	)
}

// bools are ints on the host: any non-zero value is true
func (d *datarefService) GetBool(name string) DataRef[bool] {
	return handle(d, name, models.TypeBool,
		func(b Backend, ref Ref) bool { return b.GetIntData(ref) != 0 },
		func(b Backend, ref Ref, v bool) { b.SetIntData(ref, boolToInt(v)) },
	)
}

// Array writes replace the host array from offset 0. An empty write is a no-op, as
// in XPLM, and never reaches the backend.
func (d *datarefService) GetFloatArray(name string) DataRef[[]float32] {
	return handle(d, name, models.TypeFloatArray,
		func(b Backend, ref Ref) []float32 { return b.GetFloatArrayData(ref) },
		func(b Backend, ref Ref, v []float32) {
			if len(v) > 0 {
				b.SetFloatArrayData(ref, v)
			}
		},
	)
}

func (d *datarefService) GetIntArray(name string) DataRef[[]int] {
	return handle(d, name, models.TypeIntArray,
		func(b Backend, ref Ref) []int { return b.GetIntArrayData(ref) },
		func(b Backend, ref Ref, v []int) {
			if len(v) > 0 {
				b.SetIntArrayData(ref, v)
			}
		},
	)
}

func (d *datarefService) GetBoolArray(name string) DataRef[[]bool] {
	return handle(d, name, models.TypeBoolArray,
		func(b Backend, ref Ref) []bool {
			raw := b.GetIntArrayData(ref)
			res := make([]bool, len(raw))
			for i, v := range raw {
				res[i] = v != 0
			}
			return res
		},
		func(b Backend, ref Ref, v []bool) {
			if len(v) == 0 {
				return
			}
			raw := make([]int, len(v))
			for i, e := range v {
				raw[i] = boolToInt(e)
			}
			b.SetIntArrayData(ref, raw)
		},
	)
}

func (d *datarefService) GetByteArray(name string) DataRef[[]byte] {
	return handle(d, name, models.TypeByteArray,
		func(b Backend, ref Ref) []byte { return b.GetData(ref) },
		func(b Backend, ref Ref, v []byte) {
			if len(v) > 0 {
				b.SetData(ref, v)
			}
		},
	)
}

// strings are NUL terminated byte data on the host
func (d *datarefService) GetString(name string) DataRef[string] {
	return handle(d, name, models.TypeString,
		func(b Backend, ref Ref) string {
			raw := b.GetData(ref)
			for i, c := range raw {
				if c == 0 {
					return string(raw[:i])
				}
			}
			return string(raw)
		},
		func(b Backend, ref Ref, v string) { b.SetData(ref, append([]byte(v), 0)) },
	)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func dataRoundup(value float64, precision int) float64 {
	if precision == -1 {
		return value
	}
	precisionFactor := math.Pow10(precision)
	return math.Round(value*precisionFactor) / precisionFactor
}
