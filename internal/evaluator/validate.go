package evaluator

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaOnce sync.Once
	compiledSchemaErr  error
)

// parseResult validates raw provider output against the examiner-response
// schema and decodes it. Returns *ErrInvalidResponse on malformed JSON or
// schema violations.
func parseResult(raw json.RawMessage) (*Result, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := examinerSchema()
	if err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("decode result: %w", err)}
	}
	return &result, nil
}

// examinerSchema compiles the response schema once and caches it.
func examinerSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip the definition to a clean any representation.
		defBytes, err := json.Marshal(responseSchema())
		if err != nil {
			compiledSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", responseSchemaName)
		if err := c.AddResource(url, def); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(url)
	})
	return compiledSchema, compiledSchemaErr
}
