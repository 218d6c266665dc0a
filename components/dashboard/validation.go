package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ConfigValidator checks a panel configuration against its definition.
type ConfigValidator interface {
	Validate(def PanelDefinition, config map[string]any) error
}

// PanelConfigError reports a configuration rejected by a panel schema.
type PanelConfigError struct {
	Code  string
	Cause error
}

func (e *PanelConfigError) Error() string {
	return fmt.Sprintf("dashboard: configuration for %s failed validation: %v", e.Code, e.Cause)
}

func (e *PanelConfigError) Unwrap() error { return e.Cause }

// JSONSchemaValidator validates panel configurations with compiled JSON
// schemas, compiling each definition at most once.
type JSONSchemaValidator struct {
	mu      sync.RWMutex
	schemas map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds an empty validator.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{schemas: make(map[string]*jsonschema.Schema)}
}

// Prepare compiles the schemas of defs up front so a broken definition fails
// at startup instead of on the first render.
func (v *JSONSchemaValidator) Prepare(defs []PanelDefinition) error {
	for _, def := range defs {
		if len(def.Schema) == 0 {
			continue
		}
		if _, err := v.compiled(def); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks config against the schema of def. Panel configurations are
// built in Go with typed slices, so they are normalized through JSON before
// validation.
func (v *JSONSchemaValidator) Validate(def PanelDefinition, config map[string]any) error {
	if len(def.Schema) == 0 {
		return nil
	}
	schema, err := v.compiled(def)
	if err != nil {
		return err
	}
	doc, err := normalizeConfig(config)
	if err != nil {
		return fmt.Errorf("dashboard: normalize config for %s: %w", def.Code, err)
	}
	if err := schema.Validate(doc); err != nil {
		return &PanelConfigError{Code: def.Code, Cause: err}
	}
	return nil
}

func normalizeConfig(config map[string]any) (any, error) {
	doc := map[string]any{}
	if config == nil {
		return doc, nil
	}
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (v *JSONSchemaValidator) compiled(def PanelDefinition) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.schemas[def.Code]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}

	raw, err := json.Marshal(def.Schema)
	if err != nil {
		return nil, fmt.Errorf("dashboard: marshal schema %s: %w", def.Code, err)
	}
	url := def.Code + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("dashboard: load schema %s: %w", def.Code, err)
	}
	schema, err = compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("dashboard: compile schema %s: %w", def.Code, err)
	}

	v.mu.Lock()
	v.schemas[def.Code] = schema
	v.mu.Unlock()
	return schema, nil
}
