// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package document

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaID is the canonical identifier of the document schema.
const SchemaID = "https://fitchproof.dev/schemas/document.schema.json"

// schemaState holds the compiled schema and sync.Once for thread-safe
// initialization.
var schemaState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

// GenerateSchema generates the JSON Schema for proof documents from
// the Document struct.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Document{})

	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "Fitchproof Document"
	schema.Description = "Schema for fitchproof proof documents"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.In("schema").Hint("failed to marshal schema").Wrap(err)
	}
	data = append(data, '\n')
	return data, nil
}

// LoadJSON validates a JSON document against the generated schema and
// decodes it.
func LoadJSON(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, oops.Code("BAD_JSON").Wrapf(err, "decoding JSON document")
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(raw); err != nil {
		return nil, oops.Code("SCHEMA_VIOLATION").Wrapf(err, "document does not match schema")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, oops.Code("BAD_JSON").Wrapf(err, "decoding JSON document")
	}
	return &doc, nil
}

// compiledSchema returns the cached compiled schema, compiling it on
// first use.
func compiledSchema() (*jschema.Schema, error) {
	schemaState.once.Do(func() {
		schemaState.schema, schemaState.err = compileSchema()
	})
	return schemaState.schema, schemaState.err
}

func compileSchema() (*jschema.Schema, error) {
	schemaBytes, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	var schemaData any
	if err := json.Unmarshal(schemaBytes, &schemaData); err != nil {
		return nil, oops.In("schema").Hint("failed to parse schema JSON").Wrap(err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("document.schema.json", schemaData); err != nil {
		return nil, oops.In("schema").Hint("failed to add schema resource").Wrap(err)
	}

	sch, err := c.Compile("document.schema.json")
	if err != nil {
		return nil, oops.In("schema").Hint("failed to compile schema").Wrap(err)
	}
	return sch, nil
}
