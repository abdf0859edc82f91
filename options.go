package omnia

// DefaultTemperature is used when no temperature is supplied.
const DefaultTemperature = 0.7

// Options contains configuration for a completion request.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature *float64
	// Extra carries provider-specific parameters forwarded verbatim
	// into the request payload.
	Extra map[string]any
}

// Option is a functional option for configuring completion requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 1.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithExtra adds a provider-specific parameter to the request payload.
func WithExtra(key string, value any) Option {
	return func(o *Options) {
		if o.Extra == nil {
			o.Extra = map[string]any{}
		}
		o.Extra[key] = value
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// TemperatureOrDefault returns the configured temperature, or
// DefaultTemperature when none was set.
func (o *Options) TemperatureOrDefault() float64 {
	if o.Temperature != nil {
		return *o.Temperature
	}
	return DefaultTemperature
}
