package codegen

import (
	"fmt"
	"sort"
	"strings"
)

// ImportSpec declares a module dependency the generated code needs. A spec is
// either a default import (LocalName set) or a named import (ExportedName set,
// with an optional Alias). Path is always required.
type ImportSpec struct {
	Path         string
	ExportedName string
	Alias        string
	LocalName    string
}

// IsDefault reports whether the spec describes a default import.
func (s ImportSpec) IsDefault() bool {
	return s.LocalName != ""
}

// ImportConflictError is returned when two registrations for the same path
// disagree on the default local name, or on the alias for the same exported
// name. Registration fails fast rather than producing ambiguous output.
type ImportConflictError struct {
	Path         string
	ExportedName string
	Existing     string
	Requested    string
}

func (e *ImportConflictError) Error() string {
	if e.ExportedName == "" {
		return fmt.Sprintf("codegen: conflicting default import for %q: have %q, requested %q",
			e.Path, e.Existing, e.Requested)
	}
	return fmt.Sprintf("codegen: conflicting alias for %q from %q: have %q, requested %q",
		e.ExportedName, e.Path, e.Existing, e.Requested)
}

type importEntry struct {
	defaultName string
	named       map[string]string // exported name -> alias ("" for none)
}

// ImportRegistry accumulates import requests during one generation run and
// emits the deduplicated, sorted import statements once traversal completes.
// A registry is owned by a single run and must not be shared between calls.
type ImportRegistry struct {
	entries map[string]*importEntry
}

// NewImportRegistry creates an empty registry.
func NewImportRegistry() *ImportRegistry {
	return &ImportRegistry{entries: make(map[string]*importEntry)}
}

// Register records an import request. Identical re-registration is a no-op;
// conflicting requests fail with *ImportConflictError.
func (r *ImportRegistry) Register(spec ImportSpec) error {
	if strings.TrimSpace(spec.Path) == "" {
		return fmt.Errorf("codegen: import spec requires a path")
	}
	if spec.LocalName == "" && spec.ExportedName == "" {
		return fmt.Errorf("codegen: import spec for %q requires a local or exported name", spec.Path)
	}

	entry, ok := r.entries[spec.Path]
	if !ok {
		entry = &importEntry{named: make(map[string]string)}
		r.entries[spec.Path] = entry
	}

	if spec.IsDefault() {
		if entry.defaultName != "" && entry.defaultName != spec.LocalName {
			return &ImportConflictError{
				Path:      spec.Path,
				Existing:  entry.defaultName,
				Requested: spec.LocalName,
			}
		}
		entry.defaultName = spec.LocalName
		return nil
	}

	if alias, seen := entry.named[spec.ExportedName]; seen && alias != spec.Alias {
		return &ImportConflictError{
			Path:         spec.Path,
			ExportedName: spec.ExportedName,
			Existing:     alias,
			Requested:    spec.Alias,
		}
	}
	entry.named[spec.ExportedName] = spec.Alias
	return nil
}

// Finalize emits one import statement per registered path, sorted by path
// ascending. Within a statement the default specifier precedes named
// specifiers, and named specifiers are ordered by exported name. Entries that
// ended up with no specifiers are dropped.
func (r *ImportRegistry) Finalize() []string {
	paths := make([]string, 0, len(r.entries))
	for path := range r.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	statements := make([]string, 0, len(paths))
	for _, path := range paths {
		entry := r.entries[path]
		specifiers := make([]string, 0, 1+len(entry.named))
		if entry.defaultName != "" {
			specifiers = append(specifiers, entry.defaultName)
		}
		if len(entry.named) > 0 {
			names := make([]string, 0, len(entry.named))
			for name := range entry.named {
				names = append(names, name)
			}
			sort.Strings(names)
			parts := make([]string, 0, len(names))
			for _, name := range names {
				if alias := entry.named[name]; alias != "" {
					parts = append(parts, name+" as "+alias)
				} else {
					parts = append(parts, name)
				}
			}
			specifiers = append(specifiers, "{ "+strings.Join(parts, ", ")+" }")
		}
		if len(specifiers) == 0 {
			continue
		}
		statements = append(statements, "import "+strings.Join(specifiers, ", ")+" from "+quotePath(path)+";")
	}
	return statements
}

func quotePath(path string) string {
	return `"` + strings.ReplaceAll(path, `"`, `\"`) + `"`
}
