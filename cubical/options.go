package cubical

// Options configures Compute. Use DefaultOptions() for the defaults:
//
//	– Method = LinkFind
//	– Logger = NoopLogger()
type Options struct {
	// Method is the reduction strategy: LinkFind or ComputePairs.
	Method Method

	// Logger receives per-dimension and per-run records. Nil means silent.
	Logger *Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Method: LinkFind,
		Logger: NoopLogger(),
	}
}

// WithMethod selects the reduction strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}
	if o.Method != LinkFind && o.Method != ComputePairs {
		return o, ErrMethod
	}

	return o, nil
}
