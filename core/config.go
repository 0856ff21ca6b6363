package core

import "io"

// builderConfig holds the configurable parameters applied when a Builder
// is constructed or initialized.
//
// Complexity: applying N options is O(N) time, O(1) extra space.
type builderConfig struct {
	trackNames     bool
	skipOptimize   bool
	verboseOptWrit io.Writer
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		trackNames:     true,
		skipOptimize:   false,
		verboseOptWrit: io.Discard,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// BuilderOption customizes a Builder at construction time. As a rule,
// option constructors never panic and ignore nil inputs.
type BuilderOption func(cfg *builderConfig)

// InitOption customizes the behavior of Builder.Initialize. It shares the
// same underlying config type as BuilderOption so that both can be applied
// through the same newBuilderConfig pipeline.
type InitOption = BuilderOption

// WithNames controls whether debug names passed to gate constructors are
// retained. Disabling this stores every name as "", approximating the
// zero-cost-when-disabled behavior of a compile time feature toggle.
func WithNames(track bool) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.trackNames = track
	}
}

// WithSkipOptimization disables the optimizer pipeline during Initialize,
// compacting and initializing the graph exactly as built.
func WithSkipOptimization() InitOption {
	return func(cfg *builderConfig) {
		cfg.skipOptimize = true
	}
}

// WithVerboseOptimization writes a before/after gate count for every
// optimizer pass to w. If w is nil, this option is a no-op.
func WithVerboseOptimization(w io.Writer) InitOption {
	return func(cfg *builderConfig) {
		if w != nil {
			cfg.verboseOptWrit = w
		}
	}
}
