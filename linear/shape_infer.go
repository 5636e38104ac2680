// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"reflect"
	"slices"
)

// InferShape returns the sizes of a nested numeric literal.
// Accepted nodes are slices or arrays (including []any) whose leaves are
// float or integer values; every level must be non-empty and every sibling
// must share the same shape.
//
// Errors:
//   - ErrBadShape for a scalar or nil literal, an empty level, ragged
//     siblings, leaves at mixed depths, or an unsupported leaf type.
//
// Complexity:
//   - Time O(N) over all leaves, Space O(rank).
func InferShape(literal any) ([]int, error) {
	v := reflect.ValueOf(literal)
	if !isList(v) {
		return nil, fmt.Errorf("InferShape(%T): rank 0: %w", literal, ErrBadShape)
	}

	return inferShape(v, nil)
}

// inferShape returns the shape of v; path locates v for error messages.
func inferShape(v reflect.Value, path []int) ([]int, error) {
	v = unwrap(v)
	if !isList(v) {
		if isNumber(v) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("InferShape: leaf at %v has type %v: %w", path, typeOf(v), ErrBadShape)
	}

	n := v.Len()
	if n == 0 {
		return nil, fmt.Errorf("InferShape: empty level at %v: %w", path, ErrBadShape)
	}
	var child []int
	for i := 0; i < n; i++ {
		s, err := inferShape(v.Index(i), append(path, i))
		if err != nil {
			return nil, err
		}
		if i == 0 {
			child = s
			continue
		}
		if !slices.Equal(s, child) {
			return nil, fmt.Errorf("InferShape: element %v has shape %v, sibling 0 has %v: %w",
				append(path, i), s, child, ErrBadShape)
		}
	}

	return append([]int{n}, child...), nil
}

// flattenLiteral copies the leaves of an InferShape-validated literal in
// row-major order.
func flattenLiteral(literal any, n int) []float64 {
	out := make([]float64, 0, n)
	var walk func(v reflect.Value)
	walk = func(v reflect.Value) {
		v = unwrap(v)
		if !isList(v) {
			out = append(out, toFloat(v))
			return
		}
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i))
		}
	}
	walk(reflect.ValueOf(literal))

	return out
}

func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

func isList(v reflect.Value) bool {
	v = unwrap(v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanFloat():
		return v.Float()
	case v.CanInt():
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

func typeOf(v reflect.Value) any {
	if !v.IsValid() {
		return "nil"
	}

	return v.Type()
}
