package services

import (
	"fmt"
	"math"
	"reflect"

	"github.com/xairline/xa-datarefs/models"
)

// ReadValue reads desc through store with the accessor matching its type. Float
// values are rounded to precision decimals unless precision is -1. NaN and Inf
// read as nil.
func ReadValue(store XPlaneData, desc models.Dataref, precision int) (models.DatarefValue, error) {
	res := models.DatarefValue{Name: desc.DatarefStr, DatarefType: desc.Type}
	var err error
	switch desc.Type {
	case models.TypeFloat:
		var v float32
		v, err = store.GetFloat(desc.DatarefStr).Value()
		res.Value = jsonFloat(dataRoundup(float64(v), precision))
	case models.TypeDouble:
		var v float64
		v, err = store.GetDouble(desc.DatarefStr).Value()
		res.Value = jsonFloat(dataRoundup(v, precision))
	case models.TypeInt:
		res.Value, err = store.GetInt(desc.DatarefStr).Value()
	case models.TypeBool:
		res.Value, err = store.GetBool(desc.DatarefStr).Value()
	case models.TypeFloatArray:
		var v []float32
		v, err = store.GetFloatArray(desc.DatarefStr).Value()
		res.Value = jsonFloats(v, precision)
	case models.TypeIntArray:
		res.Value, err = store.GetIntArray(desc.DatarefStr).Value()
	case models.TypeBoolArray:
		res.Value, err = store.GetBoolArray(desc.DatarefStr).Value()
	case models.TypeByteArray:
		res.Value, err = store.GetByteArray(desc.DatarefStr).Value()
	case models.TypeString:
		res.Value, err = store.GetString(desc.DatarefStr).Value()
	default:
		return res, fmt.Errorf("%s: unknown dataref type %q", desc.DatarefStr, desc.Type)
	}
	if err != nil {
		return models.DatarefValue{Name: desc.DatarefStr, DatarefType: desc.Type}, err
	}
	return res, nil
}

// jsonFloat maps NaN and Inf, which JSON cannot carry, to nil.
func jsonFloat(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// jsonFloats returns []float64, or []interface{} with nil holes when an element
// is not finite.
func jsonFloats(v []float32, precision int) interface{} {
	values := make([]float64, len(v))
	finite := true
	for i, e := range v {
		values[i] = dataRoundup(float64(e), precision)
		finite = finite && jsonFloat(values[i]) != nil
	}
	if finite {
		return values
	}
	res := make([]interface{}, len(values))
	for i, e := range values {
		res[i] = jsonFloat(e)
	}
	return res
}

// WriteValue converts a JSON shaped value (float64, bool, string, []interface{})
// to the type of desc and writes it through store.
func WriteValue(store XPlaneData, desc models.Dataref, value interface{}) error {
	name := desc.DatarefStr
	invalid := func(err error) error {
		return fmt.Errorf("%s: %w: %v", name, ErrInvalidValue, err)
	}
	switch desc.Type {
	case models.TypeFloat:
		v, err := toFloat64(value)
		if err != nil {
			return invalid(err)
		}
		return store.GetFloat(name).SetValue(float32(v))
	case models.TypeDouble:
		v, err := toFloat64(value)
		if err != nil {
			return invalid(err)
		}
		return store.GetDouble(name).SetValue(v)
	case models.TypeInt:
		v, err := toInt(value)
		if err != nil {
			return invalid(err)
		}
		return store.GetInt(name).SetValue(v)
	case models.TypeBool:
		v, err := toBool(value)
		if err != nil {
			return invalid(err)
		}
		return store.GetBool(name).SetValue(v)
	case models.TypeFloatArray:
		v, err := toSlice(value, func(e interface{}) (float32, error) {
			f, err := toFloat64(e)
			return float32(f), err
		})
		if err != nil {
			return invalid(err)
		}
		return store.GetFloatArray(name).SetValue(v)
	case models.TypeIntArray:
		v, err := toSlice(value, toInt)
		if err != nil {
			return invalid(err)
		}
		return store.GetIntArray(name).SetValue(v)
	case models.TypeBoolArray:
		v, err := toSlice(value, toBool)
		if err != nil {
			return invalid(err)
		}
		return store.GetBoolArray(name).SetValue(v)
	case models.TypeByteArray:
		v, err := toSlice(value, func(e interface{}) (byte, error) {
			i, err := toInt(e)
			if err == nil && (i < 0 || i > 255) {
				err = fmt.Errorf("%d out of byte range", i)
			}
			return byte(i), err
		})
		if err != nil {
			return invalid(err)
		}
		return store.GetByteArray(name).SetValue(v)
	case models.TypeString:
		v, ok := value.(string)
		if !ok {
			return invalid(fmt.Errorf("want string, got %T", value))
		}
		return store.GetString(name).SetValue(v)
	}
	return invalid(fmt.Errorf("unknown dataref type %q", desc.Type))
}

func toFloat64(value interface{}) (float64, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("want number, got %T", value)
}

func toInt(value interface{}) (int, error) {
	if b, ok := value.(bool); ok {
		return boolToInt(b), nil
	}
	f, err := toFloat64(value)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int(f), nil
}

func toBool(value interface{}) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	f, err := toFloat64(value)
	if err != nil {
		return false, fmt.Errorf("want bool, got %T", value)
	}
	return f != 0, nil
}

func toSlice[T any](value interface{}, conv func(interface{}) (T, error)) ([]T, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("want array, got %T", value)
	}
	res := make([]T, rv.Len())
	for i := range res {
		v, err := conv(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}
