package models

import (
	"fmt"
	"strings"
)

// DatarefType is the value type a dataref is read and written as.
type DatarefType string

const (
	TypeFloat      DatarefType = "float"
	TypeDouble     DatarefType = "double"
	TypeInt        DatarefType = "int"
	TypeBool       DatarefType = "bool"
	TypeFloatArray DatarefType = "float[]"
	TypeIntArray   DatarefType = "int[]"
	TypeBoolArray  DatarefType = "bool[]"
	TypeByteArray  DatarefType = "byte[]"
	TypeString     DatarefType = "string"
)

// HostType is the XPLM type bitmask reported by the host for a dataref.
type HostType int

const (
	HostTypeUnknown    HostType = 0
	HostTypeInt        HostType = 1
	HostTypeFloat      HostType = 2
	HostTypeDouble     HostType = 4
	HostTypeFloatArray HostType = 8
	HostTypeIntArray   HostType = 16
	HostTypeData       HostType = 32
)

var hostTypes = map[DatarefType]HostType{
	TypeFloat:      HostTypeFloat,
	TypeDouble:     HostTypeDouble,
	TypeInt:        HostTypeInt,
	TypeBool:       HostTypeInt,
	TypeFloatArray: HostTypeFloatArray,
	TypeIntArray:   HostTypeIntArray,
	TypeBoolArray:  HostTypeIntArray,
	TypeByteArray:  HostTypeData,
	TypeString:     HostTypeData,
}

// HostTypes returns the host types able to back t.
func (t DatarefType) HostTypes() HostType {
	return hostTypes[t]
}

func (t DatarefType) IsArray() bool {
	return strings.HasSuffix(string(t), "[]")
}

func (t DatarefType) Valid() bool {
	_, ok := hostTypes[t]
	return ok
}

func (t *DatarefType) UnmarshalText(text []byte) error {
	v := DatarefType(strings.TrimSpace(string(text)))
	if !v.Valid() {
		return fmt.Errorf("unknown dataref type %q", string(text))
	}
	*t = v
	return nil
}

func (h HostType) Has(other HostType) bool {
	return h&other != 0
}

func (h HostType) String() string {
	if h == HostTypeUnknown {
		return "unknown"
	}
	var parts []string
	for _, p := range []struct {
		t    HostType
		name string
	}{
		{HostTypeInt, "int"},
		{HostTypeFloat, "float"},
		{HostTypeDouble, "double"},
		{HostTypeFloatArray, "float[]"},
		{HostTypeIntArray, "int[]"},
		{HostTypeData, "data"},
	} {
		if h.Has(p.t) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}

// Dataref describes one schema entry: a symbolic name, the host key and its type.
type Dataref struct {
	Name        string      `yaml:"name" json:"name"`
	DatarefStr  string      `yaml:"dataref" json:"dataref"`
	Type        DatarefType `yaml:"type" json:"type"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
}

// Namespace is the key without its last path segment.
func (d Dataref) Namespace() string {
	i := strings.LastIndex(d.DatarefStr, "/")
	if i < 0 {
		return ""
	}
	return d.DatarefStr[:i]
}

type DatarefValue struct {
	Name        string      `json:"name" `
	DatarefType DatarefType `json:"dataref_type" `
	Value       interface{} `json:"value" `
}

type SetDatarefValue struct {
	Dataref string      `json:"dataref" `
	Value   interface{} `json:"value" `
}
type SetDatarefValueReq struct {
	Request SetDatarefValue `json:"request" `
}

func (d DatarefValue) GetFloat64() float64 {
	switch v := d.Value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}
