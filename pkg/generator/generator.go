package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/goliatone/go-pagegen/pkg/codegen"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-pagegen/pkg/schema"
)

const moduleTemplate = "module"

// Generator turns schema-governed content trees into component module source.
// A Generator is safe for concurrent use: per-call state lives in a private
// run, and the schema and configuration are read-only after construction.
type Generator struct {
	schema schema.Schema
	cfg    config
	writer *codegen.Writer
}

// Result carries the two halves of a generation when the caller assembles the
// surrounding module itself.
type Result struct {
	// Body is the rendered expression tree with no indentation applied beyond
	// its own nesting.
	Body string

	// Imports holds the finalized import statements, sorted by module path.
	Imports []string
}

// New builds a generator over the given schema. The schema must cover every
// component type the trees will reference; misses surface at generation time
// as *UnknownComponentTypeError.
func New(sch schema.Schema, options ...Option) (*Generator, error) {
	if sch == nil {
		return nil, fmt.Errorf("generator: schema is required")
	}

	cfg := defaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateRenderer == nil {
		files := cfg.templateFS
		if files == nil {
			files = defaultTemplatesFS()
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(files),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("generator: create template engine: %w", err)
		}
		cfg.templateRenderer = engine
	}

	return &Generator{
		schema: sch,
		cfg:    cfg,
		writer: codegen.NewWriter(cfg.indentWidth),
	}, nil
}

// Generate renders a complete module: import statements, a blank separator,
// and an exported function returning the rendered tree. Any error leaves no
// partial output behind.
func (g *Generator) Generate(ctx context.Context, tree content.Sequence) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r := g.newRun()
	if err := r.registerFramework(); err != nil {
		return "", err
	}

	expr, err := r.resolveSlot(tree, 1)
	if err != nil {
		return "", err
	}

	body := "null"
	if expr != nil {
		body = g.writer.Block(expr, 2)
	} else {
		body = strings.Repeat(" ", g.cfg.indentWidth*2) + "null"
	}

	data := map[string]any{
		"header": headerBlock(r.imports.Finalize()),
		"name":   g.cfg.functionName,
		"indent": strings.Repeat(" ", g.cfg.indentWidth),
		"body":   body,
	}
	out, err := g.cfg.templateRenderer.RenderTemplate(moduleTemplate, data)
	if err != nil {
		return "", fmt.Errorf("generator: render module shell: %w", err)
	}
	return out, nil
}

// GenerateParts renders the tree and imports separately, for callers that
// embed the output in their own file layout instead of the standard module
// shell. The framework import is still included when configured.
func (g *Generator) GenerateParts(ctx context.Context, tree content.Sequence) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	r := g.newRun()
	if err := r.registerFramework(); err != nil {
		return Result{}, err
	}

	expr, err := r.resolveSlot(tree, 1)
	if err != nil {
		return Result{}, err
	}

	body := "null"
	if expr != nil {
		body = g.writer.Block(expr, 0)
	}
	return Result{Body: body, Imports: r.imports.Finalize()}, nil
}

func (g *Generator) newRun() *run {
	return &run{gen: g, imports: codegen.NewImportRegistry()}
}

// registerFramework seeds the import registry with the baseline framework
// default import when enabled.
func (r *run) registerFramework() error {
	if !r.gen.cfg.frameworkImport {
		return nil
	}
	return r.imports.Register(codegen.ImportSpec{
		Path:      r.gen.cfg.frameworkModule,
		LocalName: frameworkLocalName(r.gen.cfg.frameworkModule),
	})
}

// frameworkLocalName derives the default-import binding from a module path:
// the last path segment, camelized. "react" binds as React, "@vendor/ui-kit"
// as UiKit.
func frameworkLocalName(module string) string {
	segment := module
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	segment = strings.NewReplacer("-", "_", ".", "_", "@", "").Replace(segment)
	if segment == "" {
		return "Framework"
	}
	return inflect.Camelize(segment)
}

// headerBlock joins finalized import statements into the block above the
// function, with the separating blank line. No imports means no header at all.
func headerBlock(imports []string) string {
	if len(imports) == 0 {
		return ""
	}
	return strings.Join(imports, "\n") + "\n\n"
}
