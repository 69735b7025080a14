package parse

type parseOpts struct {
	filename string
	comments bool
}

type ParseOption func(*parseOpts)

// Filename names the source in error messages.
func Filename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseComments keeps {{! ... }} comments as Comment nodes.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}
