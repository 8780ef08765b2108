// Package schema reads the declarative data model (Prisma style `model Name { ... }`
// blocks) that drives the entity and repository generators.
package schema

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrSchemaNotFound = errors.New("schema file not found")
	ErrNoModels       = errors.New("no models found in schema")
	ErrModelNotFound  = errors.New("model not found in schema")
)

var (
	modelBlockRe = regexp.MustCompile(`(?m)^\s*model\s+(\w+)\s*\{([^}]*)\}`)
	fieldLineRe  = regexp.MustCompile(`^(\w+)\s+(\w+)(\[\])?([?!])?(.*)$`)
)

type Field struct {
	Name       string
	SourceType string
	MappedType string
	Type       FieldType
	IsArray    bool
	IsOptional bool
	IsRequired bool
	IsID       bool
	IsUnique   bool
	HasDefault bool
}

// IsTimestamp reports whether the field is a defaulted created/updated column.
func (f Field) IsTimestamp() bool {
	return f.HasDefault && (strings.Contains(f.Name, "created") || strings.Contains(f.Name, "updated"))
}

type Model struct {
	Name   string
	Fields []Field
}

// IDField returns the first field annotated with @id.
func (m Model) IDField() (Field, bool) {
	for _, f := range m.Fields {
		if f.IsID {
			return f, true
		}
	}
	return Field{}, false
}

// Schema is the registry of parsed models, in first-seen order.
type Schema struct {
	Models []Model
}

// ReadFile parses the schema at path. A schema without models is not an error;
// callers check Empty.
func ReadFile(path string) (*Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSchemaNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "read schema %s", path)
	}
	return Parse(string(content)), nil
}

func Parse(content string) *Schema {
	s := &Schema{}
	for _, m := range modelBlockRe.FindAllStringSubmatch(content, -1) {
		s.Models = append(s.Models, Model{
			Name:   m[1],
			Fields: parseFields(m[2]),
		})
	}
	return s
}

func parseFields(body string) []Field {
	var fields []Field
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "@@") || strings.HasPrefix(trimmed, "//") {
			continue
		}
		m := fieldLineRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		name, rawType, array, modifier, rest := m[1], m[2], m[3], m[4], m[5]
		typ := ParseFieldType(rawType)
		isArray := array == "[]"
		fields = append(fields, Field{
			Name:       name,
			SourceType: rawType,
			MappedType: typ.TSType(isArray),
			Type:       typ,
			IsArray:    isArray,
			IsOptional: modifier == "?",
			IsRequired: modifier == "!",
			IsID:       strings.Contains(rest, "@id"),
			IsUnique:   strings.Contains(rest, "@unique"),
			HasDefault: strings.Contains(rest, "@default"),
		})
	}
	return fields
}

func (s *Schema) Empty() bool {
	return len(s.Models) == 0
}

// Find looks a model up by name, ignoring case.
func (s *Schema) Find(name string) (Model, error) {
	for _, m := range s.Models {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Model{}, errors.Wrapf(ErrModelNotFound, "%q", name)
}

func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.Models))
	for _, m := range s.Models {
		names = append(names, m.Name)
	}
	return names
}
