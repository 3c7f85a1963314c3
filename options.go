package trirast

import "log/slog"

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	r := trirast.NewForwardRenderer(trirast.WithCores(4))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	cores  int
	logger *slog.Logger
	setup  UpstreamSetupFunc
}

// defaultRendererOptions returns the default renderer options.
// cores of 0 means "use runtime.GOMAXPROCS(0)", resolved when the renderer
// is created.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		cores:  0,
		logger: nil,
		setup:  nil,
	}
}

// WithSetupStage attaches the external transform/clipping/projection stage
// that Draw delegates to. Without one, Draw returns ErrNoSetupStage.
func WithSetupStage(fn UpstreamSetupFunc) RendererOption {
	return func(o *rendererOptions) {
		o.setup = fn
	}
}

// WithCores sets the fixed number of worker threads (Cores in the design
// document) used for the binning and tile-processing phases. If unset or
// non-positive, the renderer uses runtime.GOMAXPROCS(0).
func WithCores(n int) RendererOption {
	return func(o *rendererOptions) {
		o.cores = n
	}
}

// WithRendererLogger attaches a logger to a single Renderer instance,
// overriding the package-level logger configured via SetLogger for that
// instance only.
func WithRendererLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
