package services

import "github.com/xairline/xa-datarefs/models"

// Ref is an opaque host handle returned by Backend.FindDataRef.
type Ref interface{}

// Backend is the raw host dataref API. Implementations are goplane's dataAccess
// inside the sim and Harness everywhere else.
type Backend interface {
	FindDataRef(name string) (Ref, bool)
	GetDataRefTypes(ref Ref) models.HostType
	CanWriteDataRef(ref Ref) bool

	GetIntData(ref Ref) int
	SetIntData(ref Ref, value int)
	GetFloatData(ref Ref) float32
	SetFloatData(ref Ref, value float32)
	GetDoubleData(ref Ref) float64
	SetDoubleData(ref Ref, value float64)

	GetIntArrayData(ref Ref) []int
	SetIntArrayData(ref Ref, values []int)
	GetFloatArrayData(ref Ref) []float32
	SetFloatArrayData(ref Ref, values []float32)
	GetData(ref Ref) []byte
	SetData(ref Ref, values []byte)
}
