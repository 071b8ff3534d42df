package orchestrator

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-uitree/pkg/catalog"
	"github.com/goliatone/go-uitree/pkg/fallback"
	"github.com/goliatone/go-uitree/pkg/intent"
)

// Option customises the formatter configuration.
type Option func(*Formatter)

// WithCatalog injects a custom component catalog.
func WithCatalog(reg *catalog.Registry) Option {
	return func(f *Formatter) {
		if reg != nil {
			f.catalog = reg
		}
	}
}

// WithMapper injects a custom intent mapper.
func WithMapper(mapper intent.Mapper) Option {
	return func(f *Formatter) {
		if mapper != nil {
			f.mapper = mapper
		}
	}
}

// WithDegrader injects a custom whole-tree degrader.
func WithDegrader(degrader *fallback.Degrader) Option {
	return func(f *Formatter) {
		if degrader != nil {
			f.degrader = degrader
		}
	}
}

// WithLogger injects a structured logger. The default is a no-op logger so
// library consumers opt into output explicitly.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithoutFallback disables whole-tree degradation: fatal issues become hard
// failures instead of Markdown replacements.
func WithoutFallback() Option {
	return func(f *Formatter) { f.enableFallback = false }
}

// WithStrictValidation reports every issue, degradable ones included, as an
// error. Repairs still run unless fallback is also disabled.
func WithStrictValidation() Option {
	return func(f *Formatter) { f.strict = true }
}

// WithVersion overrides the version string stamped into tree metadata.
func WithVersion(version string) Option {
	return func(f *Formatter) {
		if version != "" {
			f.version = version
		}
	}
}

// WithClock overrides the time source used for metadata timestamps.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}
