// Package openapi derives confirm-form field descriptors from an OpenAPI
// document. The request body of the confirmation operation is treated as the
// source of truth for which fields the form collects.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-confirmform/pkg/model"
)

// ErrOperationNotFound signals that the document does not define the
// requested operation.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// Options controls document loading.
type Options struct {
	// ResolveReferences validates the document and resolves external refs.
	ResolveReferences bool
}

// DeriveFields loads an OpenAPI document from raw JSON or YAML and converts
// the request body of the operation identified by operationID into field
// descriptors. Property names and formats decide the field type; anything
// unrecognised becomes a custom field carrying the property name.
func DeriveFields(ctx context.Context, data []byte, operationID string, opts Options) ([]model.Field, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return nil, errors.New("openapi: operation id is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.ResolveReferences,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if opts.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body schema", operationID)
	}

	return fieldsFromSchema(schema), nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldsFromSchema(schema *openapi3.Schema) []model.Field {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	fields := make([]model.Field, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		field := model.Field{
			Type:        fieldTypeFor(name, prop),
			Name:        name,
			Label:       prop.Title,
			Placeholder: placeholderFor(prop),
			Required:    required[name],
		}
		fields = append(fields, field)
	}

	sort.Slice(fields, func(i, j int) bool {
		ri, rj := fieldRank(fields[i].Type), fieldRank(fields[j].Type)
		if ri != rj {
			return ri < rj
		}
		return fields[i].Name < fields[j].Name
	})
	return fields
}

// fieldRank keeps the identity field first and the code field last so the
// derived form reads the way the built-in defaults do.
func fieldRank(t model.FieldType) int {
	switch t {
	case model.FieldTypeUsername, model.FieldTypeEmail, model.FieldTypePhone:
		return 0
	case model.FieldTypeCode:
		return 2
	default:
		return 1
	}
}

func fieldTypeFor(name string, prop *openapi3.Schema) model.FieldType {
	if t := model.FieldType(strings.ToLower(strings.TrimSpace(name))); t.Known() {
		return t
	}
	switch prop.Format {
	case "email":
		return model.FieldTypeEmail
	case "phone", "tel":
		return model.FieldTypePhone
	}
	lowered := strings.ToLower(name)
	switch {
	case strings.Contains(lowered, "email"):
		return model.FieldTypeEmail
	case strings.Contains(lowered, "phone"):
		return model.FieldTypePhone
	case strings.Contains(lowered, "code"):
		return model.FieldTypeCode
	}
	return model.FieldType(name)
}

func placeholderFor(prop *openapi3.Schema) string {
	if prop.Example == nil {
		return ""
	}
	if s, ok := prop.Example.(string); ok {
		return s
	}
	return ""
}
