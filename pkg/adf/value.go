package adf

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/mcncl/goadf/internal/models"
)

// Value is a generic JSON value: nil, bool, string, a number, Object or Array.
// Numbers may be json.Number, float64, float32 or any Go integer type.
type Value = models.JSONValue

// Object is a generic JSON object.
type Object = models.JSONObject

// Array is a generic JSON array.
type Array = models.JSONArray

// scalar names a JSON shape and converts a generic value into it.
type scalar[T any] struct {
	name string
	conv func(Value) (T, bool)
}

var (
	stringType  = scalar[string]{"a string", asString}
	boolType    = scalar[bool]{"a boolean", asBool}
	int8Type    = scalar[int8]{"an integer in int8 range", asInt8}
	uint16Type  = scalar[uint16]{"an integer in uint16 range", asUint16}
	uint32Type  = scalar[uint32]{"an integer in uint32 range", asUint32}
	float32Type = scalar[float32]{"a finite number in float32 range", asFloat32}
)

func asString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v Value) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt8(v Value) (int8, bool) {
	i, ok := asInt(v, 8)
	return int8(i), ok
}

func asUint16(v Value) (uint16, bool) {
	u, ok := asUint(v, 16)
	return uint16(u), ok
}

func asUint32(v Value) (uint32, bool) {
	u, ok := asUint(v, 32)
	return uint32(u), ok
}

// asInt accepts integral numbers that fit in a signed integer of the given size.
func asInt(v Value, bits int) (int64, bool) {
	var i int64
	switch n := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseInt(string(n), 10, bits)
		return parsed, err == nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		i = int64(n)
	case float32:
		return asInt(float64(n), bits)
	case int:
		i = int64(n)
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case uint, uint8, uint16, uint32, uint64:
		u, ok := asUint(n, 64)
		if !ok || u > math.MaxInt64 {
			return 0, false
		}
		i = int64(u)
	default:
		return 0, false
	}
	limit := int64(1) << (bits - 1)
	if bits < 64 && (i < -limit || i >= limit) {
		return 0, false
	}
	return i, true
}

// asUint accepts non-negative integral numbers that fit in the given size.
func asUint(v Value, bits int) (uint64, bool) {
	var u uint64
	switch n := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseUint(string(n), 10, bits)
		return parsed, err == nil
	case float64:
		if n != math.Trunc(n) || n < 0 || n >= math.MaxUint64 {
			return 0, false
		}
		u = uint64(n)
	case float32:
		return asUint(float64(n), bits)
	case uint:
		u = uint64(n)
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	case int, int8, int16, int32, int64:
		i, ok := asInt(n, 64)
		if !ok || i < 0 {
			return 0, false
		}
		u = uint64(i)
	default:
		return 0, false
	}
	if bits < 64 && u >= uint64(1)<<bits {
		return 0, false
	}
	return u, true
}

func asFloat32(v Value) (float32, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(string(n), 32)
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	default:
		i, ok := asInt(v, 64)
		if !ok {
			return 0, false
		}
		f = float64(i)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return float32(f), true
}

func intNumber(i int64) json.Number {
	return json.Number(strconv.FormatInt(i, 10))
}

func uintNumber(u uint64) json.Number {
	return json.Number(strconv.FormatUint(u, 10))
}

// floatNumber formats with float32 precision so that decoding gives back the same value.
func floatNumber(f float32) json.Number {
	return json.Number(strconv.FormatFloat(float64(f), 'g', -1, 32))
}
