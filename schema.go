package provenance

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// ValueSchema returns a JSON Schema rendering of a map's value type, for
// diagnostics and documentation of what a store holds. It describes the
// type only, never the stored values; maps and keys themselves are not
// serializable.
func ValueSchema[Value any]() map[string]any {
	return typeToSchema(reflect.TypeOf((*Value)(nil)).Elem())
}

// Schema returns a JSON Schema rendering of the map's value type.
func (m *TaggedMap[Tag, Value]) Schema() map[string]any {
	return ValueSchema[Value]()
}

// Schema returns a JSON Schema rendering of the map's value type.
func (m *Map[Value]) Schema() map[string]any {
	return ValueSchema[Value]()
}

// Schema returns a JSON Schema rendering of the map's value type.
func (m *RuntimeMap[Value]) Schema() map[string]any {
	return ValueSchema[Value]()
}

// typeToSchema converts a reflect.Type to a JSON schema map.
func typeToSchema(t reflect.Type) map[string]any {
	instance := reflect.New(t).Interface()
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}

	schema := reflector.Reflect(instance)

	// Round-trip through JSON to get a plain map.
	data, err := json.Marshal(schema)
	if err != nil {
		return fallbackSchema()
	}

	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return fallbackSchema()
	}

	if _, exists := schemaMap["type"]; !exists {
		schemaMap["type"] = "object"
	}
	if _, exists := schemaMap["properties"]; !exists {
		schemaMap["properties"] = map[string]any{}
	}

	return schemaMap
}

func fallbackSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}
