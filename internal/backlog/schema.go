package backlog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var rawSchema string

var documentSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("backlog.schema.json", strings.NewReader(rawSchema)); err != nil {
		panic(fmt.Sprintf("add backlog schema resource: %v", err))
	}
	return compiler.MustCompile("backlog.schema.json")
}

// SchemaJSON returns the backlog document JSON schema.
func SchemaJSON() string {
	return rawSchema
}

// CheckSchema validates the backlog against the document schema. It catches
// structural problems strict decoding cannot, such as a missing project name
// or a task without an id.
func CheckSchema(b *Backlog) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal backlog for schema check: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal backlog for schema check: %w", err)
	}

	if err := documentSchema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("document does not match backlog schema: %s", firstSchemaCause(ve))
		}
		return fmt.Errorf("document does not match backlog schema: %w", err)
	}
	return nil
}

// firstSchemaCause digs out the deepest first cause for a readable message.
func firstSchemaCause(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
}
