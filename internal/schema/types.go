package schema

// TypeKind is the closed set of schema scalar types the generators understand.
type TypeKind int

const (
	Unknown TypeKind = iota
	String
	Int
	Float
	Boolean
	DateTime
	JSON
	Bytes
)

var kindsByName = map[string]TypeKind{
	"String":   String,
	"Int":      Int,
	"Float":    Float,
	"Boolean":  Boolean,
	"DateTime": DateTime,
	"Json":     JSON,
	"Bytes":    Bytes,
}

var tsTypes = map[TypeKind]string{
	String:   "string",
	Int:      "number",
	Float:    "number",
	Boolean:  "boolean",
	DateTime: "Date",
	JSON:     "any",
	Bytes:    "Buffer",
	Unknown:  "any",
}

// FieldType keeps the raw schema type next to its kind so that unmapped
// types (relations, enums, BigInt...) are still visible to callers.
type FieldType struct {
	Kind TypeKind
	Raw  string
}

func ParseFieldType(raw string) FieldType {
	return FieldType{Kind: kindsByName[raw], Raw: raw}
}

func (t FieldType) Known() bool {
	return t.Kind != Unknown
}

// TSType maps the schema type to a TypeScript type. Unknown types map to "any".
func (t FieldType) TSType(isArray bool) string {
	ts := tsTypes[t.Kind]
	if isArray {
		return ts + "[]"
	}
	return ts
}

func (t FieldType) String() string {
	return t.Raw
}
