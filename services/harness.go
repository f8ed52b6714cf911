package services

import (
	"sort"
	"sync"

	"github.com/xairline/xa-datarefs/models"
)

// Harness is an in-memory host used for offline runs and tests. A key may be
// backed by several types at once; its type mask is the union of all of them.
type Harness struct {
	mu   sync.RWMutex
	refs map[string]*harnessRef
}

type harnessRef struct {
	name     string
	readOnly bool

	i  *int
	f  *float32
	d  *float64
	iv []int
	fv []float32
	bv []byte
}

func NewHarness() *Harness {
	return &Harness{refs: make(map[string]*harnessRef)}
}

func (h *Harness) upsert(name string, fn func(r *harnessRef)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.refs[name]
	if !ok {
		r = &harnessRef{name: name}
		h.refs[name] = r
	}
	fn(r)
}

func (h *Harness) SetDataRefi(name string, value int) {
	h.upsert(name, func(r *harnessRef) { r.i = &value })
}

func (h *Harness) SetDataRefiv(name string, values []int) {
	h.upsert(name, func(r *harnessRef) { r.iv = append([]int{}, values...) })
}

func (h *Harness) SetDataReff(name string, value float32) {
	h.upsert(name, func(r *harnessRef) { r.f = &value })
}

func (h *Harness) SetDataReffv(name string, values []float32) {
	h.upsert(name, func(r *harnessRef) { r.fv = append([]float32{}, values...) })
}

func (h *Harness) SetDataRefd(name string, value float64) {
	h.upsert(name, func(r *harnessRef) { r.d = &value })
}

func (h *Harness) SetDataRefbv(name string, values []byte) {
	h.upsert(name, func(r *harnessRef) { r.bv = append([]byte{}, values...) })
}

// SetReadOnly makes writes through the Backend interface fail for name.
func (h *Harness) SetReadOnly(name string) {
	h.upsert(name, func(r *harnessRef) { r.readOnly = true })
}

// Names returns every defined key in sorted order.
func (h *Harness) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.refs))
	for name := range h.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *Harness) ref(ref Ref) *harnessRef {
	r, _ := ref.(*harnessRef)
	return r
}

func (h *Harness) FindDataRef(name string) (Ref, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.refs[name]
	if !ok || r.types() == models.HostTypeUnknown {
		return nil, false
	}
	return r, true
}

func (r *harnessRef) types() models.HostType {
	t := models.HostTypeUnknown
	if r.i != nil {
		t |= models.HostTypeInt
	}
	if r.iv != nil {
		t |= models.HostTypeIntArray
	}
	if r.f != nil {
		t |= models.HostTypeFloat
	}
	if r.fv != nil {
		t |= models.HostTypeFloatArray
	}
	if r.d != nil {
		t |= models.HostTypeDouble
	}
	if r.bv != nil {
		t |= models.HostTypeData
	}
	return t
}

func (h *Harness) GetDataRefTypes(ref Ref) models.HostType {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r := h.ref(ref); r != nil {
		return r.types()
	}
	return models.HostTypeUnknown
}

func (h *Harness) CanWriteDataRef(ref Ref) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r := h.ref(ref)
	return r != nil && !r.readOnly
}

func (h *Harness) GetIntData(ref Ref) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r := h.ref(ref); r != nil && r.i != nil {
		return *r.i
	}
	return 0
}

// Set* calls on a type the ref was not defined with are ignored, as in XPLM.
func (h *Harness) SetIntData(ref Ref, value int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r := h.ref(ref); r != nil && r.i != nil {
		*r.i = value
	}
}

func (h *Harness) GetFloatData(ref Ref) float32 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r := h.ref(ref); r != nil && r.f != nil {
		return *r.f
	}
	return 0
}

func (h *Harness) SetFloatData(ref Ref, value float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r := h.ref(ref); r != nil && r.f != nil {
		*r.f = value
	}
}

func (h *Harness) GetDoubleData(ref Ref) float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r := h.ref(ref); r != nil && r.d != nil {
		return *r.d
	}
	return 0
}

func (h *Harness) SetDoubleData(ref Ref, value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r := h.ref(ref); r != nil && r.d != nil {
		*r.d = value
	}
}

func (h *Harness) GetIntArrayData(ref Ref) []int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r := h.ref(ref); r != nil && r.iv != nil {
		return append([]int{}, r.iv...)
	}
	return nil
}

func (h *Harness) SetIntArrayData(ref Ref, values []int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r := h.ref(ref); r != nil && r.iv != nil {
		r.iv = append([]int{}, values...)
	}
}

func (h *Harness) GetFloatArrayData(ref Ref) []float32 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r := h.ref(ref); r != nil && r.fv != nil {
		return append([]float32{}, r.fv...)
	}
	return nil
}

func (h *Harness) SetFloatArrayData(ref Ref, values []float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r := h.ref(ref); r != nil && r.fv != nil {
		r.fv = append([]float32{}, values...)
	}
}

func (h *Harness) GetData(ref Ref) []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if r := h.ref(ref); r != nil && r.bv != nil {
		return append([]byte{}, r.bv...)
	}
	return nil
}

func (h *Harness) SetData(ref Ref, values []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r := h.ref(ref); r != nil && r.bv != nil {
		r.bv = append([]byte{}, values...)
	}
}
