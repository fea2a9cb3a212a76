package cargu

import (
	"reflect"
)

// MaxTupleArity is the largest number of values a tuple field may consume.
const MaxTupleArity = 7

// Tuple fields consume a fixed number of consecutive value tokens, each
// decoded with the codec of its position. Fixed-length arrays such as [2]int
// are accepted as homogeneous tuples.

type Tuple1[A any] struct {
	V1 A
}

type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

type tuple interface {
	isTuple()
}

func (Tuple1[A]) isTuple() {}
func (Tuple2[A, B]) isTuple() {}
func (Tuple3[A, B, C]) isTuple() {}
func (Tuple4[A, B, C, D]) isTuple() {}
func (Tuple5[A, B, C, D, E]) isTuple() {}
func (Tuple6[A, B, C, D, E, F]) isTuple() {}
func (Tuple7[A, B, C, D, E, F, G]) isTuple() {}

var tupleType = reflect.TypeOf((*tuple)(nil)).Elem()

// isTupleType reports whether t is one of the TupleN types or an array.
func isTupleType(t reflect.Type) bool {
	return t.Kind() == reflect.Array || (t.Kind() == reflect.Struct && t.Implements(tupleType))
}

// tupleElems returns the positional element types of a tuple type.
func tupleElems(t reflect.Type) []reflect.Type {
	if t.Kind() == reflect.Array {
		elems := make([]reflect.Type, t.Len())
		for i := range elems {
			elems[i] = t.Elem()
		}
		return elems
	}
	elems := make([]reflect.Type, t.NumField())
	for i := range elems {
		elems[i] = t.Field(i).Type
	}
	return elems
}

// tupleValue builds a value of tuple type t from decoded elements.
func tupleValue(t reflect.Type, elems []interface{}) interface{} {
	v := reflect.New(t).Elem()
	for i, e := range elems {
		if t.Kind() == reflect.Array {
			v.Index(i).Set(reflect.ValueOf(e))
		} else {
			v.Field(i).Set(reflect.ValueOf(e))
		}
	}
	return v.Interface()
}

// tupleParts splits a tuple value into its positional elements.
func tupleParts(v interface{}) []interface{} {
	rv := reflect.ValueOf(v)
	var n int
	if rv.Kind() == reflect.Array {
		n = rv.Len()
	} else {
		n = rv.NumField()
	}
	parts := make([]interface{}, n)
	for i := range parts {
		if rv.Kind() == reflect.Array {
			parts[i] = rv.Index(i).Interface()
		} else {
			parts[i] = rv.Field(i).Interface()
		}
	}
	return parts
}
