// Package schema загружает описание таблиц (schema.yaml) и проверяет,
// что колонки, по которым строятся фильтры, в нем объявлены.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var fileSchemaJSON string

var fileSchema = jsonschema.MustCompileString("schema.json", fileSchemaJSON)

// Table - описание одной таблицы.
type Table struct {
	Name    string   `yaml:"table"`
	Columns []string `yaml:"columns"`
}

type Schema struct {
	tables []Table
}

// Load читает и валидирует файл схемы.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return s, nil
}

// Parse разбирает YAML и проверяет его структуру по встроенной JSON-схеме.
func Parse(data []byte) (*Schema, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	// jsonschema ждет значения в виде encoding/json, поэтому гоняем через JSON
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert schema to json: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema json: %w", err)
	}
	if err := fileSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var tables []Table
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("invalid schema layout: %w", err)
	}
	return &Schema{tables: tables}, nil
}

// Tables возвращает имена таблиц в порядке объявления.
func (s *Schema) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for _, t := range s.tables {
		names = append(names, t.Name)
	}
	return names
}

// Columns возвращает колонки таблицы.
func (s *Schema) Columns(table string) ([]string, bool) {
	for _, t := range s.tables {
		if t.Name == table {
			return append([]string(nil), t.Columns...), true
		}
	}
	return nil, false
}

// Require проверяет, что таблица объявлена и содержит все перечисленные колонки.
func (s *Schema) Require(table string, columns ...string) error {
	declared, ok := s.Columns(table)
	if !ok {
		return fmt.Errorf("table %q is not declared in schema", table)
	}
	known := make(map[string]struct{}, len(declared))
	for _, c := range declared {
		known[c] = struct{}{}
	}
	var missing []string
	for _, c := range columns {
		if _, ok := known[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %q is missing columns: %s", table, strings.Join(missing, ", "))
	}
	return nil
}
