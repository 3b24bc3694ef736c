package schema

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagegen/pkg/codegen"
)

// document mirrors the declarative schema format. JSON is accepted as a YAML
// subset, so one decoder covers both editor export flavors.
type document struct {
	Components map[string]componentDoc `yaml:"components"`
}

type componentDoc struct {
	Output      string             `yaml:"output"`
	Description string             `yaml:"description"`
	Skip        bool               `yaml:"skip"`
	Import      *importDoc         `yaml:"import"`
	Imports     []importDoc        `yaml:"imports"`
	Fields      map[string]fieldDoc `yaml:"fields"`
}

type importDoc struct {
	Path   string `yaml:"path"`
	Export string `yaml:"export"`
	Alias  string `yaml:"alias"`
	Local  string `yaml:"local"`
}

type fieldDoc struct {
	Kind   string              `yaml:"kind"`
	Items  *fieldDoc           `yaml:"items"`
	Fields map[string]fieldDoc `yaml:"fields"`
}

// Load reads a schema document from disk.
func Load(path string) (Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %q: %w", path, err)
	}
	return Parse(raw)
}

// LoadFS reads a schema document from an fs.FS entry.
func LoadFS(fsys fs.FS, path string) (Schema, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %q: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a schema document and validates every component entry.
// Transform hooks cannot be expressed declaratively; attach them afterwards
// with Schema.WithTransform.
func Parse(raw []byte) (Schema, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("schema: document is empty")
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	if len(doc.Components) == 0 {
		return nil, fmt.Errorf("schema: document declares no components")
	}

	out := make(Schema, len(doc.Components))
	for name, comp := range doc.Components {
		if name == "" {
			return nil, fmt.Errorf("schema: component with empty type name")
		}
		cfg, err := comp.build(name)
		if err != nil {
			return nil, err
		}
		out[name] = cfg
	}
	return out, nil
}

func (c componentDoc) build(name string) (ComponentConfig, error) {
	cfg := ComponentConfig{
		OutputName:  c.Output,
		Skip:        c.Skip,
		Description: SanitizeDescription(c.Description),
	}

	docs := c.Imports
	if c.Import != nil {
		docs = append([]importDoc{*c.Import}, docs...)
	}
	for _, imp := range docs {
		spec, err := imp.build(name)
		if err != nil {
			return ComponentConfig{}, err
		}
		cfg.Imports = append(cfg.Imports, spec)
	}

	if len(c.Fields) > 0 {
		cfg.Fields = make(map[string]FieldDescriptor, len(c.Fields))
		for fieldName, field := range c.Fields {
			desc, err := field.build(name, fieldName)
			if err != nil {
				return ComponentConfig{}, err
			}
			cfg.Fields[fieldName] = desc
		}
	}
	return cfg, nil
}

func (i importDoc) build(component string) (codegen.ImportSpec, error) {
	if i.Path == "" {
		return codegen.ImportSpec{}, fmt.Errorf("schema: component %q: import requires a path", component)
	}
	if i.Local == "" && i.Export == "" {
		return codegen.ImportSpec{}, fmt.Errorf("schema: component %q: import %q requires local or export", component, i.Path)
	}
	if i.Local != "" && i.Export != "" {
		return codegen.ImportSpec{}, fmt.Errorf("schema: component %q: import %q is both default and named", component, i.Path)
	}
	return codegen.ImportSpec{
		Path:         i.Path,
		ExportedName: i.Export,
		Alias:        i.Alias,
		LocalName:    i.Local,
	}, nil
}

func (f fieldDoc) build(component, field string) (FieldDescriptor, error) {
	kind := FieldKind(f.Kind)
	if !kind.Valid() {
		return FieldDescriptor{}, fmt.Errorf("schema: component %q: field %q has unknown kind %q", component, field, f.Kind)
	}

	desc := FieldDescriptor{Kind: kind}
	if f.Items != nil {
		items, err := f.Items.build(component, field+"[]")
		if err != nil {
			return FieldDescriptor{}, err
		}
		desc.Items = &items
	}
	if len(f.Fields) > 0 {
		desc.Fields = make(map[string]FieldDescriptor, len(f.Fields))
		for sub, child := range f.Fields {
			childDesc, err := child.build(component, field+"."+sub)
			if err != nil {
				return FieldDescriptor{}, err
			}
			desc.Fields[sub] = childDesc
		}
	}
	return desc, nil
}
