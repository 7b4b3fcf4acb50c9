// Where: internal/infra/validate/compose.go
// What: docker-compose.yml syntax and schema checks.
// Why: Catch broken indentation or unknown keys in the generated compose file.
package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

const composeSchemaURL = "mem://schemas/compose.schema.json"

//go:embed schema/compose.schema.json
var composeSchemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Compose checks that content is YAML with a single mapping document that
// satisfies the compose schema subset.
func Compose(content string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("parse compose yaml: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("compose file must be a mapping")
	}

	sch, err := loadComposeSchema()
	if err != nil {
		return err
	}

	jsonData, err := k8syaml.YAMLToJSON([]byte(content))
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return fmt.Errorf("decode compose json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("compose schema: %w", err)
	}
	return nil
}

func loadComposeSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(composeSchemaURL, bytes.NewReader(composeSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load compose schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(composeSchemaURL)
	})
	return compiledSchema, schemaErr
}
