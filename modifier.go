package huelib

import (
	"bytes"
	"encoding/json"
	"math"
)

type adjustOp uint8

const (
	adjustSet adjustOp = iota
	adjustInc
)

// Adjust describes a write to a numeric attribute: either an absolute
// override of the value or a signed increment relative to the attribute's
// current value. A nil *Adjust leaves the attribute untouched. Override and
// increment are mutually exclusive; an Adjust is always one or the other.
type Adjust[T uint8 | uint16] struct {
	op    adjustOp
	value T
	delta int32
}

// Set returns an adjustment that overrides the attribute with v.
func Set[T uint8 | uint16](v T) *Adjust[T] {
	return &Adjust[T]{op: adjustSet, value: v}
}

// Inc returns an adjustment that adds delta to the attribute's current
// value. Negative deltas decrement. The bridge clamps the result to the
// attribute's valid range.
func Inc[T uint8 | uint16](delta int32) *Adjust[T] {
	return &Adjust[T]{op: adjustInc, delta: delta}
}

// XY is a coordinate in CIE color space, serialized as a 2-element array.
type XY struct {
	X float32
	Y float32
}

func (c XY) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float32{c.X, c.Y})
}

func (c *XY) UnmarshalJSON(data []byte) error {
	var pair [2]float32
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// AdjustXY is the Adjust counterpart for the CIE color coordinate pair.
// Increment deltas apply to each component independently.
type AdjustXY struct {
	op    adjustOp
	value XY
	delta XY
}

// SetXY returns an adjustment that overrides the color coordinates.
func SetXY(x, y float32) *AdjustXY {
	return &AdjustXY{op: adjustSet, value: XY{X: x, Y: y}}
}

// IncXY returns an adjustment that shifts each color coordinate by the
// given delta.
func IncXY(dx, dy float32) *AdjustXY {
	return &AdjustXY{op: adjustInc, delta: XY{X: dx, Y: dy}}
}

// wireObject collects (key, value) pairs and marshals them as a JSON object
// in insertion order. encoding/json sorts map keys, which would break the
// fixed field order modifiers serialize with.
type wireObject struct {
	fields []wireField
}

type wireField struct {
	key   string
	value any
}

func (o *wireObject) put(key string, value any) {
	o.fields = append(o.fields, wireField{key: key, value: value})
}

func (o wireObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(field.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// putOpt emits key only when the optional field is set.
func putOpt[T any](o *wireObject, key string, v *T) {
	if v != nil {
		o.put(key, *v)
	}
}

// putAdjust emits either the base key (override) or the base key with the
// "_inc" suffix (increment). Increments are widened one integer rank so the
// full negative range of the base type stays representable; deltas beyond
// that rank are clamped rather than wrapped, matching the clamping the
// bridge applies to the resulting value.
func putAdjust[T uint8 | uint16](o *wireObject, key string, a *Adjust[T]) {
	if a == nil {
		return
	}
	switch a.op {
	case adjustSet:
		o.put(key, a.value)
	case adjustInc:
		switch any(a.value).(type) {
		case uint8:
			o.put(key+"_inc", clampInt16(a.delta))
		default:
			o.put(key+"_inc", a.delta)
		}
	}
}

func clampInt16(d int32) int16 {
	if d > math.MaxInt16 {
		return math.MaxInt16
	}
	if d < math.MinInt16 {
		return math.MinInt16
	}
	return int16(d)
}

func putAdjustXY(o *wireObject, key string, a *AdjustXY) {
	if a == nil {
		return
	}
	switch a.op {
	case adjustSet:
		o.put(key, a.value)
	case adjustInc:
		o.put(key+"_inc", a.delta)
	}
}
