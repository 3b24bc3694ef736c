// Package openapi derives component schemas from OpenAPI documents. Teams
// that already describe component prop contracts as OpenAPI component schemas
// can reuse those definitions instead of maintaining a parallel schema file.
//
// Two vendor extensions steer the mapping:
//
//	x-pagegen-component   {output, import: {path, export|local, alias}, skip}
//	x-pagegen-slot        true — marks an array property as a slot field
package openapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-pagegen/pkg/codegen"
	"github.com/goliatone/go-pagegen/pkg/schema"
)

const (
	componentExtensionKey = "x-pagegen-component"
	slotExtensionKey      = "x-pagegen-slot"
)

// Load reads an OpenAPI document from raw bytes and imports its component
// schemas.
func Load(ctx context.Context, raw []byte) (schema.Schema, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return Import(doc)
}

// Import converts the component schemas of a parsed OpenAPI document into a
// generator schema. Schemas that do not describe objects are skipped: a
// component type needs a prop map to be renderable.
func Import(doc *openapi3.T) (schema.Schema, error) {
	if doc == nil || doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("openapi: document declares no component schemas")
	}

	out := make(schema.Schema, len(doc.Components.Schemas))
	for name, ref := range doc.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		src := ref.Value
		if typeOf(src) != "object" {
			continue
		}

		cfg := schema.ComponentConfig{
			Description: schema.SanitizeDescription(src.Description),
		}
		if err := applyComponentExtension(&cfg, src.Extensions); err != nil {
			return nil, fmt.Errorf("openapi: component %q: %w", name, err)
		}

		if len(src.Properties) > 0 {
			cfg.Fields = make(map[string]schema.FieldDescriptor, len(src.Properties))
			for propName, propRef := range src.Properties {
				desc, err := convertProperty(propRef)
				if err != nil {
					return nil, fmt.Errorf("openapi: component %q, property %q: %w", name, propName, err)
				}
				cfg.Fields[propName] = desc
			}
		}
		out[name] = cfg
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("openapi: no object component schemas found")
	}
	return out, nil
}

func convertProperty(ref *openapi3.SchemaRef) (schema.FieldDescriptor, error) {
	if ref == nil || ref.Value == nil {
		return schema.FieldDescriptor{Kind: schema.FieldKindObject}, nil
	}
	src := ref.Value

	if isSlot(src.Extensions) {
		return schema.FieldDescriptor{Kind: schema.FieldKindSlot}, nil
	}

	switch typeOf(src) {
	case "string":
		return schema.FieldDescriptor{Kind: schema.FieldKindText}, nil
	case "integer", "number":
		return schema.FieldDescriptor{Kind: schema.FieldKindNumber}, nil
	case "boolean":
		return schema.FieldDescriptor{Kind: schema.FieldKindBoolean}, nil
	case "array":
		desc := schema.FieldDescriptor{Kind: schema.FieldKindArray}
		if src.Items != nil {
			items, err := convertProperty(src.Items)
			if err != nil {
				return schema.FieldDescriptor{}, err
			}
			desc.Items = &items
		}
		return desc, nil
	case "object", "":
		desc := schema.FieldDescriptor{Kind: schema.FieldKindObject}
		if len(src.Properties) > 0 {
			desc.Fields = make(map[string]schema.FieldDescriptor, len(src.Properties))
			for name, prop := range src.Properties {
				child, err := convertProperty(prop)
				if err != nil {
					return schema.FieldDescriptor{}, err
				}
				desc.Fields[name] = child
			}
		}
		return desc, nil
	default:
		return schema.FieldDescriptor{}, fmt.Errorf("unsupported schema type %q", typeOf(src))
	}
}

func applyComponentExtension(cfg *schema.ComponentConfig, extensions map[string]any) error {
	raw, ok := extensions[componentExtensionKey]
	if !ok {
		return nil
	}
	mapped, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("%s must be an object", componentExtensionKey)
	}

	if output, ok := mapped["output"].(string); ok {
		cfg.OutputName = output
	}
	if skip, ok := mapped["skip"].(bool); ok {
		cfg.Skip = skip
	}
	if imp, ok := mapped["import"].(map[string]any); ok {
		spec, err := importSpecFromExtension(imp)
		if err != nil {
			return err
		}
		cfg.Imports = append(cfg.Imports, spec)
	}
	return nil
}

func importSpecFromExtension(raw map[string]any) (codegen.ImportSpec, error) {
	spec := codegen.ImportSpec{}
	if path, ok := raw["path"].(string); ok {
		spec.Path = path
	}
	if export, ok := raw["export"].(string); ok {
		spec.ExportedName = export
	}
	if alias, ok := raw["alias"].(string); ok {
		spec.Alias = alias
	}
	if local, ok := raw["local"].(string); ok {
		spec.LocalName = local
	}
	if strings.TrimSpace(spec.Path) == "" {
		return codegen.ImportSpec{}, fmt.Errorf("%s import requires a path", componentExtensionKey)
	}
	if spec.LocalName == "" && spec.ExportedName == "" {
		return codegen.ImportSpec{}, fmt.Errorf("%s import requires local or export", componentExtensionKey)
	}
	return spec, nil
}

func isSlot(extensions map[string]any) bool {
	flag, ok := extensions[slotExtensionKey].(bool)
	return ok && flag
}

func typeOf(src *openapi3.Schema) string {
	if src == nil || src.Type == nil {
		return ""
	}
	values := src.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
