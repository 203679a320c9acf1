// Package validation checks extractions against the ParsedDocument JSON
// schema before they are persisted. Operator edits in the review screen
// go through the same check as parser output.
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

// Ensure SchemaValidator implements the interface.
var _ driven.ExtractionValidator = (*SchemaValidator)(nil)

//go:embed parsed-document.schema.json
var schemaJSON []byte

const schemaURL = "parsed-document.schema.json"

// SchemaValidator validates documents against the embedded schema.
// It is safe for concurrent use.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// New compiles the embedded schema.
func New() (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate returns an error wrapping domain.ErrInvalidExtraction when
// doc does not match the schema.
func (v *SchemaValidator) Validate(doc *domain.ParsedDocument) error {
	if doc == nil {
		return fmt.Errorf("nil document: %w", domain.ErrInvalidExtraction)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidExtraction, err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidExtraction, err)
	}

	if err := v.schema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidExtraction, err)
	}
	return nil
}
