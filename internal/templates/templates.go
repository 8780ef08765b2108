// Package templates renders the TypeScript artifacts produced by the generators:
// entity, repository interface and implementation, and the five files of a use case.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/schema"
	"github.com/pkg/errors"
)

//go:embed tmpl
var templateFS embed.FS

const (
	EntityTemplate              = "entity.ts.tmpl"
	RepositoryInterfaceTemplate = "repository_interface.ts.tmpl"
	RepositoryImplTemplate      = "repository_impl.ts.tmpl"
	DTOTemplate                 = "dto.ts.tmpl"
	UseCaseTemplate             = "usecase.ts.tmpl"
	ControllerTemplate          = "controller.ts.tmpl"
	IndexTemplate               = "index.ts.tmpl"
	ValidationTemplate          = "validation.ts.tmpl"
)

// Sentinel comments written into fresh artifacts. The patcher removes them once satisfied.
const (
	InjectDependenciesSentinel = "// TODO: Injete as dependências necessárias"
	IndexRepositorySentinel    = "// TODO: Importe e instancie o repositório necessário"
)

const rethrow = "throw new Error(error?.message ?? String(error));"

var tmpl = template.Must(template.ParseFS(templateFS, "tmpl/*.tmpl"))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "render %s", name)
	}
	return buf.String(), nil
}

// Entity renders the entity class of a schema model. Id fields are read-only,
// optional fields are unioned with null, and a defaulted id is generated with uuid
// when the caller does not pass one.
func Entity(model schema.Model) (string, error) {
	props := make([]string, 0, len(model.Fields))
	var omit []string
	for _, f := range model.Fields {
		modifier := "public"
		if f.IsID {
			modifier = "public readonly"
		}
		nullable := ""
		if f.IsOptional {
			nullable = " | null"
		}
		props = append(props, fmt.Sprintf("    %s %s!: %s%s;", modifier, f.Name, f.MappedType, nullable))

		if f.IsID || f.IsTimestamp() {
			omit = append(omit, fmt.Sprintf("%q", f.Name))
		}
	}

	constructorType := "I" + model.Name + "Entity"
	if len(omit) > 0 {
		constructorType = fmt.Sprintf("Omit<%s, %s>", constructorType, strings.Join(omit, " | "))
	}

	var optionalParams, idInit string
	usesUUID := false
	if id, ok := model.IDField(); ok {
		optionalParams = fmt.Sprintf(", %s?: %s", id.Name, id.MappedType)
		if id.HasDefault {
			usesUUID = true
			idInit = fmt.Sprintf("\n        this.%s = %s ?? uuidV4();", id.Name, id.Name)
		} else {
			idInit = fmt.Sprintf("\n        if (%s) {\n            this.%s = %s;\n        }", id.Name, id.Name, id.Name)
		}
	}

	return render(EntityTemplate, map[string]any{
		"Model":           model.Name,
		"UsesUUID":        usesUUID,
		"Properties":      strings.Join(props, "\n"),
		"ConstructorType": constructorType,
		"OptionalParams":  optionalParams,
		"IDInit":          idInit,
	})
}

func repositoryData(entityName, tableName string) map[string]any {
	return map[string]any{
		"Pascal":  common.ToPascalCase(entityName),
		"Camel":   common.ToCamelCase(entityName),
		"Table":   common.ToCamelCase(tableName),
		"Rethrow": rethrow,
	}
}

// RepositoryInterface renders I<Entity>Repository with create, findById, update and delete.
func RepositoryInterface(entityName string) (string, error) {
	return render(RepositoryInterfaceTemplate, repositoryData(entityName, entityName))
}

// RepositoryImplementation renders Postgres<Entity>Repository. Every method rethrows
// failures as a plain Error and disconnects the client in a finally block.
func RepositoryImplementation(entityName, tableName string) (string, error) {
	return render(RepositoryImplTemplate, repositoryData(entityName, tableName))
}

func useCaseData(pascal, camel string) map[string]any {
	return map[string]any{
		"Pascal":         pascal,
		"Camel":          camel,
		"Rethrow":        rethrow,
		"InjectSentinel": InjectDependenciesSentinel,
		"IndexSentinel":  IndexRepositorySentinel,
	}
}

func DTO(pascal string, fields []InputField) (string, error) {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		optional := ""
		if f.Optional {
			optional = "?"
		}
		lines = append(lines, fmt.Sprintf("    %s%s: %s;", f.Name, optional, f.TSType()))
	}
	body := strings.Join(lines, "\n")
	if len(fields) == 0 {
		body = "    // TODO: Adicione os campos necessários\n    id?: string;"
	}
	data := useCaseData(pascal, "")
	data["Fields"] = body
	return render(DTOTemplate, data)
}

// UseCase renders the stateless use case skeleton returning {message, status, data}.
func UseCase(pascal, camel string) (string, error) {
	return render(UseCaseTemplate, useCaseData(pascal, camel))
}

func Controller(pascal, camel string, fields []InputField) (string, error) {
	var extraction string
	if len(fields) > 0 {
		lines := make([]string, 0, len(fields))
		for _, f := range fields {
			lines = append(lines, fmt.Sprintf("                %s: req.%s.%s", f.Name, f.RequestProperty(), f.Name))
		}
		extraction = fmt.Sprintf("const data: I%sDTO = {\n%s\n            };", pascal, strings.Join(lines, ",\n"))
	} else {
		extraction = fmt.Sprintf("// TODO: Extraia os dados necessários de req.body, req.params ou req.query\n"+
			"            const data: I%sDTO = {\n"+
			"                // Exemplo: id: req.params.id\n"+
			"            };", pascal)
	}
	data := useCaseData(pascal, camel)
	data["Extraction"] = extraction
	return render(ControllerTemplate, data)
}

// Index renders the composition root of a use case. Until a repository is injected it
// carries IndexRepositorySentinel.
func Index(pascal, camel string) (string, error) {
	return render(IndexTemplate, useCaseData(pascal, camel))
}
