package rewrite

// Defaults applied by New when no option overrides them.
const (
	DefaultComponent  = "Label"
	DefaultCreateCall = "createElement"
	DefaultRenderCall = "render"
	DefaultBaseIndent = "\t\t"
)

// Option customises the rewriter configuration.
type Option func(*config)

type config struct {
	component  string
	createCall string
	renderCall string
	baseIndent string
}

func defaultConfig() config {
	return config{
		component:  DefaultComponent,
		createCall: DefaultCreateCall,
		renderCall: DefaultRenderCall,
		baseIndent: DefaultBaseIndent,
	}
}

// WithComponent sets the component identifier the rewriter targets.
func WithComponent(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.component = name
		}
	}
}

// WithCreateCall sets the call token that is rewritten, e.g.
// "React.createElement" for codebases that do not import the helper bare.
func WithCreateCall(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.createCall = name
		}
	}
}

// WithRenderCall sets the wrapper emitted around structured rewrites.
func WithRenderCall(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.renderCall = name
		}
	}
}

// WithBaseIndent sets the indent prefix for emitted blocks. Empty is a
// valid prefix; nesting inside a block always adds one tab per level.
func WithBaseIndent(indent string) Option {
	return func(cfg *config) {
		cfg.baseIndent = indent
	}
}
