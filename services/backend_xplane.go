//go:build !test

package services

import (
	"github.com/xairline/goplane/xplm/dataAccess"
	"github.com/xairline/xa-datarefs/models"
)

type xplaneBackend struct{}

// NewXplaneBackend returns a Backend over the live sim. Every call must be made on
// the sim thread.
func NewXplaneBackend() Backend {
	return xplaneBackend{}
}

func (xplaneBackend) FindDataRef(name string) (Ref, bool) {
	ref, ok := dataAccess.FindDataRef(name)
	if !ok {
		return nil, false
	}
	return ref, true
}

func (xplaneBackend) GetDataRefTypes(ref Ref) models.HostType {
	return models.HostType(dataAccess.GetDataRefTypes(ref.(dataAccess.DataRef)))
}

func (xplaneBackend) CanWriteDataRef(ref Ref) bool {
	return dataAccess.CanWriteDataRef(ref.(dataAccess.DataRef))
}

func (xplaneBackend) GetIntData(ref Ref) int {
	return dataAccess.GetIntData(ref.(dataAccess.DataRef))
}

func (xplaneBackend) SetIntData(ref Ref, value int) {
	dataAccess.SetIntData(ref.(dataAccess.DataRef), value)
}

func (xplaneBackend) GetFloatData(ref Ref) float32 {
	return dataAccess.GetFloatData(ref.(dataAccess.DataRef))
}

func (xplaneBackend) SetFloatData(ref Ref, value float32) {
	dataAccess.SetFloatData(ref.(dataAccess.DataRef), value)
}

func (xplaneBackend) GetDoubleData(ref Ref) float64 {
	return dataAccess.GetDoubleData(ref.(dataAccess.DataRef))
}

func (xplaneBackend) SetDoubleData(ref Ref, value float64) {
	dataAccess.SetDoubleData(ref.(dataAccess.DataRef), value)
}

// goplane indexes element zero of the buffer it passes to XPLM. A zero length
// array on the host, or an empty write, would panic on the sim thread, so reads
// of such refs return an empty slice and empty writes are skipped.
func emptyOnPanic[T any](res *[]T) {
	if r := recover(); r != nil {
		*res = []T{}
	}
}

func (xplaneBackend) GetIntArrayData(ref Ref) (res []int) {
	defer emptyOnPanic(&res)
	return dataAccess.GetIntArrayData(ref.(dataAccess.DataRef))
}

func (xplaneBackend) SetIntArrayData(ref Ref, values []int) {
	if len(values) == 0 {
		return
	}
	dataAccess.SetIntArrayData(ref.(dataAccess.DataRef), values)
}

func (xplaneBackend) GetFloatArrayData(ref Ref) (res []float32) {
	defer emptyOnPanic(&res)
	return dataAccess.GetFloatArrayData(ref.(dataAccess.DataRef))
}

func (xplaneBackend) SetFloatArrayData(ref Ref, values []float32) {
	if len(values) == 0 {
		return
	}
	dataAccess.SetFloatArrayData(ref.(dataAccess.DataRef), values)
}

func (xplaneBackend) GetData(ref Ref) (res []byte) {
	defer emptyOnPanic(&res)
	return dataAccess.GetData(ref.(dataAccess.DataRef))
}

func (xplaneBackend) SetData(ref Ref, values []byte) {
	if len(values) == 0 {
		return
	}
	dataAccess.SetData(ref.(dataAccess.DataRef), values)
}
