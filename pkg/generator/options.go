package generator

import (
	"io/fs"

	rendertemplate "github.com/goliatone/go-pagegen/pkg/render/template"
)

const (
	defaultFunctionName    = "Page"
	defaultFrameworkModule = "react"
	defaultIndentWidth     = 2
	defaultMaxDepth        = 256
)

// Option customises the generator configuration.
type Option func(*config)

type config struct {
	functionName     string
	frameworkImport  bool
	frameworkModule  string
	preserveIDs      bool
	listKeys         bool
	indentWidth      int
	maxDepth         int
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

func defaultConfig() config {
	return config{
		functionName:    defaultFunctionName,
		frameworkImport: true,
		frameworkModule: defaultFrameworkModule,
		listKeys:        true,
		indentWidth:     defaultIndentWidth,
		maxDepth:        defaultMaxDepth,
	}
}

// WithFunctionName sets the name of the exported function wrapping the
// rendered tree.
func WithFunctionName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.functionName = name
		}
	}
}

// WithFrameworkImport toggles the baseline framework import line at the top
// of the generated module.
func WithFrameworkImport(enabled bool) Option {
	return func(cfg *config) {
		cfg.frameworkImport = enabled
	}
}

// WithFrameworkModule overrides the module path used for the baseline
// framework import.
func WithFrameworkModule(module string) Option {
	return func(cfg *config) {
		if module != "" {
			cfg.frameworkModule = module
		}
	}
}

// WithPreserveIDs keeps node identifier props as attributes instead of
// stripping them as editor bookkeeping.
func WithPreserveIDs(preserve bool) Option {
	return func(cfg *config) {
		cfg.preserveIDs = preserve
	}
}

// WithListKeys toggles synthesis of stable list-identity attributes from node
// identifiers when rendering list items.
func WithListKeys(enabled bool) Option {
	return func(cfg *config) {
		cfg.listKeys = enabled
	}
}

// WithIndent sets the number of spaces per nesting level.
func WithIndent(width int) Option {
	return func(cfg *config) {
		if width > 0 {
			cfg.indentWidth = width
		}
	}
}

// WithMaxDepth bounds content-tree recursion. Trees nesting deeper fail with
// ErrDepthExceeded instead of risking call-stack exhaustion.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		if depth > 0 {
			cfg.maxDepth = depth
		}
	}
}

// WithTemplatesFS supplies an alternate module-shell template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}
