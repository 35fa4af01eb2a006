package cmds

import (
	"reflect"
	"strings"
)

// Var defines name to set a value and name+"." to reset it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).
		Desc(strings.Join(desc, " ")).
		Args(reflect.TypeFor[T]().Kind().String()))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines name to turn on and "!"+name to turn off.
func Switch(name string, desc ...string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))

	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).
		Desc(strings.Join(desc, " ")).
		Args(reflect.TypeFor[T]().Kind().String()))
	return &value
}
