package chatmd

// RenderOptions holds options for markdown rendering.
type RenderOptions struct {
	Config *RenderConfig
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		opts.Config = config
	}
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
