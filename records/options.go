package records

type (
	options struct {
		skipBlank     bool
		commentPrefix string
		failFast      bool
	}

	//Option represents records parsing option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	ret := &options{skipBlank: true}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithSkipBlank controls whether blank lines are skipped, otherwise they are reported as empty input
func WithSkipBlank(flag bool) Option {
	return func(o *options) {
		o.skipBlank = flag
	}
}

// WithComment skips lines starting with prefix
func WithComment(prefix string) Option {
	return func(o *options) {
		o.commentPrefix = prefix
	}
}

// WithFailFast stops parsing after the first invalid line
func WithFailFast() Option {
	return func(o *options) {
		o.failFast = true
	}
}
