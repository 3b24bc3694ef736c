package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const cliSchema = `
components:
  card:
    output: Card
    fields:
      title:
        kind: text
`

const cliOpenAPISpec = `{
  "openapi": "3.0.3",
  "info": {"title": "components", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Hero": {
        "type": "object",
        "x-pagegen-component": {"output": "Hero"},
        "properties": {"heading": {"type": "string"}}
      }
    }
  }
}`

func writeTempFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadSchemaFromDocument(t *testing.T) {
	path := writeTempFile(t, "components.yaml", cliSchema)

	sch, err := loadSchema(context.Background(), path, "")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	if _, ok := sch.Config("card"); !ok {
		t.Fatal("card not registered")
	}
}

func TestLoadSchemaFromOpenAPI(t *testing.T) {
	path := writeTempFile(t, "spec.json", cliOpenAPISpec)

	sch, err := loadSchema(context.Background(), "", path)
	if err != nil {
		t.Fatalf("load openapi schema: %v", err)
	}
	cfg, ok := sch.Config("Hero")
	if !ok {
		t.Fatal("Hero not imported")
	}
	if cfg.OutputName != "Hero" {
		t.Fatalf("output name: %q", cfg.OutputName)
	}
}

func TestLoadSchemaMissingOpenAPIFile(t *testing.T) {
	if _, err := loadSchema(context.Background(), "", filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing document")
	}
}
