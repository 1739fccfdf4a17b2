// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Structure describes the expected shape of a structured completion: a named
// JSON Schema sent to the backend and used to validate what comes back.
// Create one with [NewStructure] or [StructureFor] and use it through the
// returned pointer only; a copied Structure does not share the compiled schema.
// Structures are immutable once created.
type Structure struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Strict      bool

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

var (
	structureNameRe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

	// structures caches StructureFor results by Go type.
	structures sync.Map
)

// NewStructure creates a [Structure] from a raw JSON Schema document.
func NewStructure(name string, schema json.RawMessage) *Structure {
	return &Structure{Name: sanitizeStructureName(name), Schema: schema}
}

// StructureFor returns the [Structure] whose schema is generated from T.
// See [GenerateSchema] for the supported struct tags. The result is built
// once per type and shared by every caller, so it must not be modified; use
// [NewStructure] with [GenerateSchema] for a customised copy.
func StructureFor[T any]() *Structure {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if s, ok := structures.Load(key); ok {
		return s.(*Structure)
	}
	t := key
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s, _ := structures.LoadOrStore(key, NewStructure(t.Name(), GenerateSchema[T]()))
	return s.(*Structure)
}

func sanitizeStructureName(name string) string {
	name = structureNameRe.ReplaceAllString(name, "_")
	if name == "" {
		return "response"
	}
	return name
}

// Validate checks that the descriptor can be sent to a backend.
func (s *Structure) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: structure is nil", ErrValidation)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: structure name is required", ErrValidation)
	}
	_, err := s.schema()
	return err
}

// ValidateDocument checks doc against the structure's schema.
func (s *Structure) ValidateDocument(doc json.RawMessage) error {
	sch, err := s.schema()
	if err != nil {
		return err
	}
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("%w: structured output is not valid JSON: %v", ErrInvalidResponse, err)
	}
	if err := sch.Validate(value); err != nil {
		return fmt.Errorf("%w: structured output does not match %q: %v", ErrInvalidResponse, s.Name, err)
	}
	return nil
}

func (s *Structure) schema() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		if len(s.Schema) == 0 {
			s.err = fmt.Errorf("%w: structure %q has no schema", ErrValidation, s.Name)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(s.Schema))
		if err != nil {
			s.err = fmt.Errorf("%w: structure %q schema: %v", ErrValidation, s.Name, err)
			return
		}
		c := jsonschema.NewCompiler()
		res := s.Name + ".json"
		if err := c.AddResource(res, doc); err != nil {
			s.err = fmt.Errorf("%w: structure %q schema: %v", ErrValidation, s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(res)
		if s.err != nil {
			s.err = fmt.Errorf("%w: compile structure %q: %v", ErrValidation, s.Name, s.err)
		}
	})
	return s.compiled, s.err
}
