package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Compile bool
	Eval    bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("SP_DEBUG_RESOLVE")
	d.Compile = boolEnv("SP_DEBUG_COMPILE")
	d.Eval = boolEnv("SP_DEBUG_EVAL")
	d.LSP = boolEnv("SP_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Compile() bool {
	return d.Compile
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}
