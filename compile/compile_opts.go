package compile

// DefaultKeywords are the keywords a template may use unless Keywords says
// otherwise.
var DefaultKeywords = []string{"@root", "@index", "@key", "@first", "@last"}

type compileOpts struct {
	keywords map[string]bool
}

type CompileOption func(*compileOpts)

// Keywords replaces the set of allowed keywords. Each must start with '@'.
func Keywords(kws ...string) CompileOption {
	return func(o *compileOpts) {
		o.keywords = make(map[string]bool, len(kws))
		for _, kw := range kws {
			o.keywords[kw] = true
		}
	}
}

func newOpts(opts []CompileOption) *compileOpts {
	o := &compileOpts{}
	Keywords(DefaultKeywords...)(o)
	for _, f := range opts {
		f(o)
	}
	return o
}
