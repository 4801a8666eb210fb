package maybe

import (
	"reflect"
)

// IsNil reports whether i is nil or holds a typed nil of a nilable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Ptr returns a pointer to v, for feeding literals into OfPtr.
func Ptr[T any](v T) *T {
	return &v
}
