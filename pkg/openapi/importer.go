// Package openapi imports OpenAPI 3 documents as form schemas: each
// operation's request body becomes a schema.ObjectNode ready for the model
// builder and the form state container.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// Options tune the import pass.
type Options struct {
	// ResolveReferences validates the document and resolves external refs.
	ResolveReferences bool
	// AllowPartialDocuments accepts documents without paths or operations.
	AllowPartialDocuments bool
}

// Operation pairs an OpenAPI operation's identity with the imported request
// schema.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Schema      *schema.ObjectNode
}

// Importer converts OpenAPI documents via kin-openapi.
type Importer struct {
	options Options
}

// New constructs an Importer with the given options.
func New(options Options) *Importer {
	return &Importer{options: options}
}

// Operations parses the raw document and returns the imported operations
// keyed by operationId. Operations without a request body import an empty
// object schema.
func (imp *Importer) Operations(ctx context.Context, raw []byte) (map[string]Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: imp.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if imp.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !imp.options.AllowPartialDocuments {
			return nil, errors.New("openapi: document does not contain any paths")
		}
	}

	operations := make(map[string]Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			collectOperation(operations, "GET", path, item.Get)
			collectOperation(operations, "PUT", path, item.Put)
			collectOperation(operations, "POST", path, item.Post)
			collectOperation(operations, "DELETE", path, item.Delete)
			collectOperation(operations, "PATCH", path, item.Patch)
		}
	}

	if len(operations) == 0 && !imp.options.AllowPartialDocuments {
		return nil, errors.New("openapi: no operations extracted")
	}
	return operations, nil
}

func collectOperation(target map[string]Operation, method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	// requestSchema degrades unsupported constructs to string fields, so a
	// conversion failure here means a broken document rather than an exotic
	// schema; the operation is skipped and lookups report it missing.
	node, err := requestSchema(operation.RequestBody)
	if err != nil {
		return
	}

	target[opID] = Operation{
		ID:          opID,
		Method:      method,
		Path:        path,
		Summary:     operation.Summary,
		Description: operation.Description,
		Schema:      node,
	}
}

func requestSchema(requestBody *openapi3.RequestBodyRef) (*schema.ObjectNode, error) {
	if requestBody == nil || requestBody.Value == nil {
		return schema.Object(), nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return convertObject(mt.Schema)
		}
	}
	for _, mt := range content {
		return convertObject(mt.Schema)
	}
	return schema.Object(), nil
}
