package templates

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Source is where a controller reads an input field from.
type Source string

const (
	SourceBody  Source = "body"
	SourceParam Source = "param"
	SourceQuery Source = "query"
)

// ParseSource folds unknown sources to body.
func ParseSource(s string) Source {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceParam:
		return SourceParam
	case SourceQuery:
		return SourceQuery
	default:
		return SourceBody
	}
}

// InputField is one operator-declared field of a use case.
type InputField struct {
	Name     string
	Type     string
	Optional bool
	Source   Source
}

// TypeOption is a field type offered to the operator.
type TypeOption struct {
	Name        string
	Description string
}

var AvailableTypes = []TypeOption{
	{"string", "Texto simples"},
	{"number", "Número"},
	{"boolean", "Verdadeiro/Falso"},
	{"email", "Email (validado)"},
	{"uuid", "UUID (validado)"},
	{"date", "Data ISO8601"},
	{"array", "Array/Lista"},
	{"any", "Qualquer tipo"},
}

// IsAvailableType reports whether t names one of AvailableTypes.
func IsAvailableType(t string) bool {
	t = strings.ToLower(t)
	for _, opt := range AvailableTypes {
		if opt.Name == t {
			return true
		}
	}
	return false
}

// TSType narrows the declared type for DTO members.
func (f InputField) TSType() string {
	switch strings.ToLower(f.Type) {
	case "email", "uuid":
		return "string"
	case "date":
		return "Date"
	case "array":
		return "any[]"
	default:
		return f.Type
	}
}

// RequestProperty is the express request property holding the field.
func (f InputField) RequestProperty() string {
	switch f.Source {
	case SourceParam:
		return "params"
	case SourceQuery:
		return "query"
	default:
		return "body"
	}
}

func (f InputField) validator() string {
	switch f.Source {
	case SourceParam, SourceQuery:
		return string(f.Source)
	default:
		return string(SourceBody)
	}
}

type predicate struct {
	call    string
	message string
}

const requiredMessage = "é obrigatório"

var typePredicates = map[string]predicate{
	"string":  {"isString", "deve ser uma string"},
	"number":  {"isNumeric", "deve ser um número"},
	"boolean": {"isBoolean", "deve ser um booleano"},
	"email":   {"isEmail", "deve ser um email válido"},
	"uuid":    {"isUUID", "deve ser um UUID válido"},
	"date":    {"isISO8601", "deve ser uma data válida"},
	"array":   {"isArray", "deve ser um array"},
}

// types whose required chain carries a notEmpty predicate
var requiredMessages = map[string]string{
	"string": requiredMessage,
	"number": requiredMessage,
	"email":  requiredMessage,
	"array":  "não pode estar vazio",
}

// ValidationChain builds the express-validator chain for one field. An optional
// field starts with .optional() and drops the notEmpty predicate.
func ValidationChain(f InputField) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%q)", f.validator(), f.Name)
	if f.Optional {
		b.WriteString(".optional()")
	}

	typ := strings.ToLower(f.Type)
	pred, known := typePredicates[typ]
	if known {
		fmt.Fprintf(&b, ".%s().withMessage(\"%s %s\")", pred.call, f.Name, pred.message)
	}
	if f.Optional {
		return b.String()
	}
	if !known {
		fmt.Fprintf(&b, ".notEmpty().withMessage(\"%s %s\")", f.Name, requiredMessage)
	} else if msg, ok := requiredMessages[typ]; ok {
		fmt.Fprintf(&b, ".notEmpty().withMessage(\"%s %s\")", f.Name, msg)
	}
	return b.String()
}

const validationExample = `    // TODO: Configure as validações necessárias
    // Exemplo de validação de body:
    // body("email", "Email inválido").isEmail(),
    // body("name", "Nome é obrigatório").notEmpty(),

    // Exemplo de validação de params:
    // param("id", "ID inválido").isUUID(),

    // Exemplo de validação de query:
    // query("page", "Página deve ser um número").optional().isInt()`

// Validation renders the rule-set of a use case. Only the validators that the
// chains use are imported, in first-use order.
func Validation(camel string, fields []InputField) (string, error) {
	seen := mapset.NewThreadUnsafeSet[string]()
	var imports []string
	use := func(v string) {
		if seen.Add(v) {
			imports = append(imports, v)
		}
	}

	rules := validationExample
	if len(fields) > 0 {
		chains := make([]string, 0, len(fields))
		for _, f := range fields {
			use(f.validator())
			chains = append(chains, "    "+ValidationChain(f))
		}
		rules = strings.Join(chains, ",\n")
	} else {
		use(string(SourceBody))
		use(string(SourceParam))
		use(string(SourceQuery))
	}

	return render(ValidationTemplate, map[string]any{
		"Imports": strings.Join(imports, ", "),
		"Camel":   camel,
		"Rules":   rules,
	})
}
