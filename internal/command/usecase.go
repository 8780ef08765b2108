package command

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"

	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/templates"
)

// artifactTask is one file of a generated use case.
type artifactTask struct {
	FileName string
	Render   func() (string, error)
}

// UseCase scaffolds useCases/<domain>/<camel>/<version>/ with the DTO, use case,
// controller, index and validation files. An existing directory is never touched.
func UseCase(e *Env) error {
	e.UI.Step("🚀", "Gerador de Use Cases")
	e.UI.Blank()

	domain, err := e.Prompt.Input("Digite o nome do domínio", "base")
	if err != nil {
		return err
	}

	e.UI.Info("Formatos aceitos:")
	e.UI.Item("- camelCase: getUserById (recomendado)")
	e.UI.Item("- kebab-case: get-user-by-id")
	e.UI.Item("- snake_case: get_user_by_id")
	name, err := e.Prompt.Input("Digite o nome do use case", "")
	if err != nil {
		return err
	}
	if name == "" {
		e.UI.Fail("Nome do use case é obrigatório!")
		return reported(errors.Wrap(ErrRequired, "use case name"))
	}

	version, err := e.Prompt.Input("Digite a versão", "v1")
	if err != nil {
		return err
	}
	if !semver.IsValid(version) || semver.Major(version) != version {
		e.UI.Fail("Versão %q inválida! Use o formato v1, v2, ...", version)
		return reported(errors.Wrapf(ErrInvalidSelection, "version %q", version))
	}

	pascal := common.ToPascalCase(name)
	camel := common.ToCamelCase(name)
	dir := e.paths().UseCaseDir(domain, camel, version)
	if exists(dir) {
		e.UI.Fail("O use case %q já existe em %q!", name, domain)
		e.UI.Item("Caminho: %s", e.rel(dir))
		return reported(errors.Errorf("use case directory %s already exists", dir))
	}

	e.UI.Step("📝", "Configuração do DTO")
	addFields, err := e.Prompt.Confirm("Deseja adicionar campos ao DTO?", false)
	if err != nil {
		return err
	}
	var fields []templates.InputField
	if addFields {
		if fields, err = collectFields(e); err != nil {
			return err
		}
	}

	tasks := []artifactTask{
		{camel + ".DTO.ts", func() (string, error) { return templates.DTO(pascal, fields) }},
		{camel + ".ts", func() (string, error) { return templates.UseCase(pascal, camel) }},
		{camel + ".controller.ts", func() (string, error) { return templates.Controller(pascal, camel, fields) }},
		{common.UseCaseIndexFile, func() (string, error) { return templates.Index(pascal, camel) }},
		{common.ValidationFile, func() (string, error) { return templates.Validation(camel, fields) }},
	}
	for _, task := range tasks {
		content, err := task.Render()
		if err != nil {
			return err
		}
		if err := e.writeFile(filepath.Join(dir, task.FileName), content); err != nil {
			return err
		}
	}

	e.UI.Blank()
	e.UI.Success("Use case criado com sucesso!")
	e.UI.File("Localização: %s", e.rel(dir))
	e.UI.Step("📝", "Arquivos criados:")
	for _, task := range tasks {
		e.UI.Item("- %s", task.FileName)
	}
	if len(fields) > 0 {
		e.UI.List("Campos do DTO criados:")
		for _, f := range fields {
			optional := ""
			if f.Optional {
				optional = "?"
			}
			e.UI.Item("- %s: %s%s [%s]", f.Name, f.Type, optional, f.Source)
		}
	}

	e.UI.Blank()
	e.UI.Warn("Não esqueça de:")
	steps := []string{"Implementar a lógica do use case"}
	if len(fields) == 0 {
		steps = append(steps, "Configurar as validações em validation.ts")
	}
	steps = append(steps,
		"Criar/usar o repositório necessário (expressgen inject)",
		"Adicionar a rota na API (expressgen route)")
	e.UI.Numbered(steps)
	return nil
}

// collectFields asks for DTO fields until an empty name is given.
func collectFields(e *Env) ([]templates.InputField, error) {
	e.UI.Info("Tipos disponíveis:")
	for _, t := range templates.AvailableTypes {
		e.UI.Item("- %s: %s", t.Name, t.Description)
	}
	e.UI.Info("Fonte: body, param, query (padrão: body)")

	var fields []templates.InputField
	for {
		name, err := e.Prompt.Input("Nome do campo (Enter para finalizar)", "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return fields, nil
		}

		typ, err := e.Prompt.Input("Tipo do campo \""+name+"\"", "string")
		if err != nil {
			return nil, err
		}
		typ = strings.ToLower(typ)
		if !templates.IsAvailableType(typ) {
			e.UI.Warn("Tipo %q desconhecido, usando any.", typ)
			typ = "any"
		}
		optional, err := e.Prompt.Confirm("\""+name+"\" é opcional?", false)
		if err != nil {
			return nil, err
		}
		source, err := e.Prompt.Input("Fonte do campo \""+name+"\" (body/param/query)", string(templates.SourceBody))
		if err != nil {
			return nil, err
		}

		fields = append(fields, templates.InputField{
			Name:     name,
			Type:     typ,
			Optional: optional,
			Source:   templates.ParseSource(source),
		})
		e.UI.Success("Campo %q adicionado!", name)
	}
}
