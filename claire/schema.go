// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"encoding/json"
	"maps"
	"reflect"
	"strconv"
	"strings"
)

const defsPrefix = "#/$defs/"

// GenerateSchema builds a JSON Schema from a Go type using reflection.
// Supported struct tags: json (field name, "-" to skip) and jsonschema
// (description, required, enum=a|b|c, minimum, maximum). Embedded structs
// are flattened into the parent object. Self-referencing struct types are
// emitted once under the root "$defs" and referenced with "$ref".
func GenerateSchema[T any]() json.RawMessage {
	t := reflect.TypeOf((*T)(nil)).Elem()
	g := &schemaGen{
		visiting:  make(map[reflect.Type]string),
		embedding: make(map[reflect.Type]bool),
		recursive: make(map[reflect.Type]bool),
		defined:   make(map[reflect.Type]string),
		names:     make(map[string]reflect.Type),
		defs:      make(map[string]map[string]any),
	}
	root := g.schemaFor(t)
	if len(g.defs) > 0 {
		// The root must stay an inline object; a bare $ref root is
		// replaced by a copy of its definition.
		if ref, ok := root["$ref"].(string); ok {
			root = maps.Clone(g.defs[strings.TrimPrefix(ref, defsPrefix)])
		}
		root["$defs"] = g.defs
	}
	b, _ := json.Marshal(root)
	return b
}

type schemaGen struct {
	visiting  map[reflect.Type]string // struct types on the current path
	embedding map[reflect.Type]bool
	recursive map[reflect.Type]bool
	defined   map[reflect.Type]string
	names     map[string]reflect.Type
	defs      map[string]map[string]any
}

func (g *schemaGen) schemaFor(t reflect.Type) map[string]any {
	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			// []byte is encoded as a base64 string.
			return map[string]any{"type": "string"}
		}
		return map[string]any{
			"type":  "array",
			"items": g.schemaFor(t.Elem()),
		}
	case reflect.Ptr:
		return g.schemaFor(t.Elem())
	case reflect.Struct:
		return g.schemaForStruct(t)
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return map[string]any{
				"type":                 "object",
				"additionalProperties": g.schemaFor(t.Elem()),
			}
		}
		return map[string]any{"type": "object"}
	case reflect.Interface:
		return map[string]any{}
	default:
		return map[string]any{"type": "string"}
	}
}

func (g *schemaGen) schemaForStruct(t reflect.Type) map[string]any {
	if name, ok := g.visiting[t]; ok {
		g.recursive[t] = true
		return map[string]any{"$ref": defsPrefix + name}
	}
	if name, ok := g.defined[t]; ok {
		return map[string]any{"$ref": defsPrefix + name}
	}

	name := g.defName(t)
	g.visiting[t] = name
	properties := make(map[string]any)
	var required []string
	g.collectFields(t, properties, &required)
	delete(g.visiting, t)

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	if !g.recursive[t] {
		delete(g.names, name)
		return schema
	}
	g.defs[name] = schema
	g.defined[t] = name
	return map[string]any{"$ref": defsPrefix + name}
}

// defName returns a $defs key for t that no other type in this schema uses.
func (g *schemaGen) defName(t reflect.Type) string {
	base := sanitizeStructureName(t.Name())
	name := base
	for i := 2; ; i++ {
		other, taken := g.names[name]
		if !taken || other == t {
			break
		}
		name = base + "_" + strconv.Itoa(i)
	}
	g.names[name] = t
	return name
}

func (g *schemaGen) collectFields(t reflect.Type, properties map[string]any, required *[]string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		if field.Anonymous && jsonTag == "" {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if !g.embedding[ft] {
					g.embedding[ft] = true
					g.collectFields(ft, properties, required)
					delete(g.embedding, ft)
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if n, _, _ := strings.Cut(jsonTag, ","); n != "" {
			name = n
		}

		prop := g.schemaFor(field.Type)
		for _, part := range strings.Split(field.Tag.Get("jsonschema"), ",") {
			key, val, _ := strings.Cut(part, "=")
			key, val = strings.TrimSpace(key), strings.TrimSpace(val)
			switch key {
			case "description":
				prop["description"] = val
			case "required":
				*required = append(*required, name)
			case "enum":
				enumVals := strings.Split(val, "|")
				anyVals := make([]any, len(enumVals))
				for j, ev := range enumVals {
					anyVals[j] = strings.TrimSpace(ev)
				}
				prop["enum"] = anyVals
			case "minimum", "maximum":
				if f, err := strconv.ParseFloat(val, 64); err == nil {
					prop[key] = f
				}
			}
		}

		properties[name] = prop
	}
}
