package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	formkit "github.com/goliatone/go-formkit"
	"github.com/goliatone/go-formkit/pkg/forms"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/openapi"
	"github.com/goliatone/go-formkit/pkg/renderers/tui"
	"github.com/goliatone/go-formkit/pkg/renderers/vanilla"
)

func main() {
	formID := flag.String("form", forms.PersonalInfoID, "built-in form to render (personal-info, employee-registration)")
	rendererName := flag.String("renderer", "vanilla", "renderer to use (vanilla, tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	document := flag.String("openapi", "", "OpenAPI document path; overrides -form")
	operation := flag.String("operation", "", "operation ID inside the OpenAPI document")
	flag.Parse()

	ctx := context.Background()

	def, err := definition(ctx, *formID, *document, *operation)
	if err != nil {
		log.Fatalf("Failed to resolve form: %v", err)
	}

	engine, err := buildEngine()
	if err != nil {
		log.Fatalf("Failed to configure engine: %v", err)
	}

	rendered, err := engine.RenderForm(ctx, def, *rendererName, formkit.RenderOptions{})
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(string(rendered))
}

func buildEngine() (*formkit.Engine, error) {
	htmlRenderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	terminalRenderer, err := tui.New()
	if err != nil {
		return nil, err
	}
	return formkit.New(
		formkit.WithRenderer(htmlRenderer),
		formkit.WithRenderer(terminalRenderer),
		formkit.WithDefaultRenderer(htmlRenderer.Name()),
	)
}

func definition(ctx context.Context, formID, document, operation string) (model.Definition, error) {
	if document != "" {
		return importedDefinition(ctx, document, operation)
	}

	switch formID {
	case forms.PersonalInfoID:
		return forms.PersonalInfoDefinition(), nil
	case forms.EmployeeRegistrationID:
		return forms.EmployeeRegistrationDefinition(), nil
	default:
		return model.Definition{}, fmt.Errorf("unknown form %q", formID)
	}
}

func importedDefinition(ctx context.Context, path, operation string) (model.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Definition{}, err
	}

	operations, err := openapi.New(openapi.Options{}).Operations(ctx, raw)
	if err != nil {
		return model.Definition{}, err
	}
	op, ok := operations[operation]
	if !ok {
		return model.Definition{}, fmt.Errorf("operation %q not found (have %d operations)", operation, len(operations))
	}

	return model.Definition{
		ID:          op.ID,
		Action:      op.Path,
		Method:      op.Method,
		Title:       op.Summary,
		Description: op.Description,
		Schema:      op.Schema,
	}, nil
}
