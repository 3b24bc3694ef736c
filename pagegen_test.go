package pagegen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pagegen "github.com/goliatone/go-pagegen"
	"github.com/goliatone/go-pagegen/pkg/testsupport"
)

const rootSchema = `
components:
  hero:
    output: Hero
    import:
      path: "@acme/ui"
      export: Hero
    fields:
      heading:
        kind: text
      body:
        kind: slot
  card:
    output: Card
    import:
      path: "@acme/ui"
      export: Card
    fields:
      title:
        kind: text
`

const rootTree = `{
  "content": [
    {
      "type": "hero",
      "props": {
        "id": "h1",
        "heading": "Compose visually",
        "body": [
          {"type": "card", "props": {"id": "c1", "title": "Ship as code"}}
        ]
      }
    }
  ]
}`

func writeFixture(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestGenerateEndToEnd(t *testing.T) {
	sch, err := pagegen.LoadSchema(writeFixture(t, "components.yaml", rootSchema))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	tree, err := pagegen.DecodeTree([]byte(rootTree))
	if err != nil {
		t.Fatalf("decode tree: %v", err)
	}

	module, err := pagegen.Generate(testsupport.Context(), sch, tree,
		pagegen.WithFunctionName("LandingPage"),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, fragment := range []string{
		`import { Card, Hero } from "@acme/ui";`,
		`import React from "react";`,
		"export function LandingPage() {",
		`body={<Card title="Ship as code" />}`,
		`heading="Compose visually"`,
	} {
		if !strings.Contains(module, fragment) {
			t.Fatalf("module missing %q:\n%s", fragment, module)
		}
	}
}

func TestGeneratePartsEndToEnd(t *testing.T) {
	sch, err := pagegen.LoadSchema(writeFixture(t, "components.yaml", rootSchema))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	tree, err := pagegen.DecodeTree([]byte(rootTree))
	if err != nil {
		t.Fatalf("decode tree: %v", err)
	}

	parts, err := pagegen.GenerateParts(testsupport.Context(), sch, tree, pagegen.WithFrameworkImport(false))
	if err != nil {
		t.Fatalf("generate parts: %v", err)
	}
	if len(parts.Imports) != 1 || !strings.Contains(parts.Imports[0], "@acme/ui") {
		t.Fatalf("imports: %v", parts.Imports)
	}
	if !strings.HasPrefix(parts.Body, "<Hero ") {
		t.Fatalf("body: %q", parts.Body)
	}
}
