package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/generator"
	"github.com/goliatone/go-pagegen/pkg/schema"
	schemaopenapi "github.com/goliatone/go-pagegen/pkg/schema/openapi"
)

func main() {
	schemaPath := flag.String("schema", "components.yaml", "component schema path or URL")
	openapiPath := flag.String("openapi", "", "derive the schema from an OpenAPI document instead")
	treePath := flag.String("tree", "page.json", "content tree path")
	output := flag.String("output", "", "output file (stdout if empty)")
	function := flag.String("function", "Page", "exported function name")
	framework := flag.String("framework", "react", "framework module for the baseline import")
	noFramework := flag.Bool("no-framework-import", false, "omit the baseline framework import")
	indent := flag.Int("indent", 2, "spaces per nesting level")
	preserveIDs := flag.Bool("preserve-ids", false, "keep node id props as attributes")
	interactive := flag.Bool("interactive", false, "prompt for inputs instead of using flags")
	flag.Parse()

	ctx := context.Background()

	if *interactive {
		if err := promptInputs(schemaPath, treePath, output, function); err != nil {
			log.Fatalf("prompt failed: %v", err)
		}
	}

	sch, err := loadSchema(ctx, *schemaPath, *openapiPath)
	if err != nil {
		log.Fatalf("load schema: %v", err)
	}

	rawTree, err := os.ReadFile(*treePath)
	if err != nil {
		log.Fatalf("read tree: %v", err)
	}
	tree, err := content.DecodeTree(rawTree)
	if err != nil {
		log.Fatalf("decode tree: %v", err)
	}

	options := []generator.Option{
		generator.WithFunctionName(*function),
		generator.WithFrameworkModule(*framework),
		generator.WithFrameworkImport(!*noFramework),
		generator.WithIndent(*indent),
		generator.WithPreserveIDs(*preserveIDs),
	}
	gen, err := generator.New(sch, options...)
	if err != nil {
		log.Fatalf("create generator: %v", err)
	}

	module, err := gen.Generate(ctx, tree)
	if err != nil {
		log.Fatalf("generate module: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(module), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Module written to %s\n", *output)
	} else {
		fmt.Print(module)
	}
}

func loadSchema(ctx context.Context, schemaPath, openapiPath string) (schema.Schema, error) {
	if openapiPath != "" {
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		return schemaopenapi.Load(ctx, raw)
	}

	path := strings.TrimSpace(schemaPath)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schema.LoadSource(ctx, schema.SourceFromURL(path))
	}
	return schema.Load(path)
}

func promptInputs(schemaPath, treePath, output, function *string) error {
	questions := []*survey.Question{
		{
			Name:     "schema",
			Prompt:   &survey.Input{Message: "Component schema path:", Default: *schemaPath},
			Validate: survey.Required,
		},
		{
			Name:     "tree",
			Prompt:   &survey.Input{Message: "Content tree path:", Default: *treePath},
			Validate: survey.Required,
		},
		{
			Name:   "function",
			Prompt: &survey.Input{Message: "Exported function name:", Default: *function},
		},
		{
			Name:   "output",
			Prompt: &survey.Input{Message: "Output file (empty for stdout):", Default: *output},
		},
	}

	answers := struct {
		Schema   string
		Tree     string
		Function string
		Output   string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	*schemaPath = answers.Schema
	*treePath = answers.Tree
	*output = answers.Output
	if answers.Function != "" {
		*function = answers.Function
	}
	return nil
}
