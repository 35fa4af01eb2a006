package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
	Hidden      bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Hide leaves the command out of usage output.
func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

// Args names the arguments in usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = append(c.ArgNames, names...)
	return c
}

// Func wraps fn, which takes flag arguments and returns nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch typ := fnValue.Type(); {
	case typ.NumOut() > 1:
		panic(fmt.Errorf("%v: must return at most one value", typ))
	case typ.NumOut() == 1 && typ.Out(0) != errorType:
		panic(fmt.Errorf("%v: must return error", typ))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
