// Package value defines labels and element values shared by the index, store
// and frame packages.
//
// A label is any hashable Go value. Integer kinds are normalized to int so that
// positional labels compare equal regardless of the integer type used to
// address them. The single missing-value marker is nil.
package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ErrUnhashable is returned when a label cannot be used as a map key.
var ErrUnhashable = errors.New("label is not hashable")

// Label identifies a position in an index.
type Label = any

// Kind identifies the concrete kind of an element value.
type Kind uint8

const (
	// KindInt represents an integer value of any size.
	KindInt Kind = iota
	// KindFloat represents a floating point value.
	KindFloat
	// KindBool represents a boolean value.
	KindBool
	// KindString represents a string value.
	KindString
	// KindOther represents any other value.
	KindOther
	// KindMissing represents the missing-value marker.
	KindMissing
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindMissing:
		return "missing"
	default:
		return "other"
	}
}

// KindOf returns the kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindMissing
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return KindInt
	case float32, float64:
		return KindFloat
	case bool:
		return KindBool
	case string:
		return KindString
	default:
		return KindOther
	}
}

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v any) bool {
	return v == nil
}

// IsInteger reports whether l is an integer representable as int and
// returns it. Unsigned values above math.MaxInt are not, and stay distinct
// labels.
func IsInteger(l any) (int, bool) {
	switch v := l.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		if uint64(v) > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if uint64(v) > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uintptr:
		if uint64(v) > math.MaxInt {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// NormalizeLabel validates l and converts integer kinds to int.
func NormalizeLabel(l Label) (Label, error) {
	if i, ok := IsInteger(l); ok {
		return i, nil
	}
	if l == nil {
		return nil, nil
	}
	if !reflect.TypeOf(l).Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrUnhashable, l)
	}
	return l, nil
}

// ToFloat converts a numeric value to float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	if i, ok := IsInteger(v); ok {
		return float64(i), true
	}
	return 0, false
}

// Equal reports whether a and b hold the same value.
// Numeric values are compared by value across integer and float kinds.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	af, aok := ToFloat(a)
	bf, bok := ToFloat(b)
	if aok && bok {
		return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
	}
	if aok != bok {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// Compare returns -1, 0, or 1 ordering a relative to b.
//
// Missing values order after everything else. Numbers compare numerically,
// strings lexically and false orders before true. Values of different kinds
// order by Kind; values of kind other order by their fmt rendering.
func Compare(a, b any) int {
	ka, kb := KindOf(a), KindOf(b)
	if ka == KindInt || ka == KindFloat {
		if kb == KindInt || kb == KindFloat {
			af, _ := ToFloat(a)
			bf, _ := ToFloat(b)
			return compareFloat64(af, bf)
		}
	}
	if ka == KindFloat {
		ka = KindInt
	}
	if kb == KindFloat {
		kb = KindInt
	}
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch ka {
	case KindString:
		return strings.Compare(a.(string), b.(string))
	case KindBool:
		av, bv := a.(bool), b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case KindMissing:
		return 0
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
