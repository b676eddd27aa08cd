package convutil

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseOr parses s as a base 10 integer of type T. It returns def and false
// when s is not a valid T, including values that overflow it.
func ParseOr[T constraints.Integer](s string, def T) (T, bool) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if signed := ^zero < 0; signed {
		v, err := strconv.ParseInt(s, 10, bits)
		if nil != err {
			return def, false
		}
		return T(v), true
	}

	v, err := strconv.ParseUint(s, 10, bits)
	if nil != err {
		return def, false
	}
	return T(v), true
}
