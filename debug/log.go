package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/scopepath/spath"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case spath.Path:
			segs := make([]string, len(x))
			for j, s := range x {
				segs[j] = fmt.Sprint(s)
			}
			args[i] = fmt.Sprintf("%v", segs)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
