package eval

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
)

const (
	getName   = "get"
	valueName = "v"
	walkName  = "w"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function(getName, func(params ...any) (any, error) {
			return Get(params[0], params[1].(string)), nil
		},
			new(func(any, string) any)),
	}
}

// Get returns the field key of v: a map entry, a list element by index or
// the length of a list. It returns nil when v has no such field.
func Get(v any, key string) any {
	switch x := v.(type) {
	case map[string]any:
		return x[key]
	case map[any]any:
		if r, ok := x[key]; ok {
			return r
		}
		for k, r := range x {
			if fmt.Sprint(k) == key {
				return r
			}
		}
		return nil
	case []any:
		if key == "length" {
			return len(x)
		}
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(x) {
			return nil
		}
		return x[i]
	}
	return nil
}
