package command

import (
	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/templates"
)

// Repository generates the repository interface of a model and, on request, its
// Postgres implementation.
func Repository(e *Env, modelName string, force bool) error {
	e.UI.Step("📦", "Gerador de Repositórios")
	e.UI.Blank()

	s, err := e.loadSchema()
	if err != nil {
		return err
	}
	model, err := e.selectModel(s, modelName, "Digite o nome da entidade")
	if err != nil {
		return err
	}

	pascal := common.ToPascalCase(model.Name)
	camel := common.ToCamelCase(model.Name)
	paths := e.paths()

	if entity := paths.EntityFile(camel); !exists(entity) {
		e.UI.Warn("A entity \"%s\" não existe!", camel+common.EntitySuffix)
		stop, err := e.Prompt.Confirm("Deseja criar a entity primeiro?", false)
		if err != nil {
			return err
		}
		if stop {
			e.UI.Info("Execute: expressgen entity %s", model.Name)
			return ErrCancelled
		}
	}

	ifacePath := paths.RepositoryInterfaceFile(pascal)
	ok, err := e.confirmOverwrite(ifacePath, force)
	if err != nil {
		return err
	}
	if !ok {
		e.UI.Fail("Operação cancelada.")
		return ErrCancelled
	}
	content, err := templates.RepositoryInterface(model.Name)
	if err != nil {
		return err
	}
	if err := e.writeFile(ifacePath, content); err != nil {
		return err
	}
	e.UI.Success("Interface criada: %s", e.rel(ifacePath))

	createImpl, err := e.Prompt.Confirm("Deseja criar a implementação?", true)
	if err != nil {
		return err
	}
	if !createImpl {
		e.UI.Success("Interface criada com sucesso!")
		return nil
	}

	implPath := paths.RepositoryImplementationFile(pascal)
	ok, err = e.confirmOverwrite(implPath, force)
	if err != nil {
		return err
	}
	if !ok {
		e.UI.Success("Interface criada com sucesso!")
		return nil
	}
	content, err = templates.RepositoryImplementation(model.Name, model.Name)
	if err != nil {
		return err
	}
	if err := e.writeFile(implPath, content); err != nil {
		return err
	}

	e.UI.Success("Implementação criada: %s", e.rel(implPath))
	e.UI.List("Métodos CRUD criados:")
	e.UI.Item("- create(data): Criar novo registro")
	e.UI.Item("- findById(id): Buscar por ID")
	e.UI.Item("- update(id, data): Atualizar registro")
	e.UI.Item("- delete(id): Deletar registro")
	return nil
}
