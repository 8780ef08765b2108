package command

import (
	"strings"

	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/schema"
	"github.com/Skyenought/expressgen/internal/templates"
)

// Entity generates src/entities/<camel>.entity.ts for a schema model. modelName may
// be empty, in which case the operator is asked.
func Entity(e *Env, modelName string, force bool) error {
	e.UI.Step("🏗️", "Gerador de Entities")
	e.UI.Blank()

	s, err := e.loadSchema()
	if err != nil {
		return err
	}
	model, err := e.selectModel(s, modelName, "Digite o nome da tabela/model")
	if err != nil {
		return err
	}
	for _, f := range model.Fields {
		if !f.Type.Known() {
			e.Log.Debugf("field %s.%s has unmapped type %s", model.Name, f.Name, f.Type)
		}
	}

	path := e.paths().EntityFile(common.ToCamelCase(model.Name))
	ok, err := e.confirmOverwrite(path, force)
	if err != nil {
		return err
	}
	if !ok {
		e.UI.Fail("Operação cancelada.")
		return ErrCancelled
	}

	content, err := templates.Entity(model)
	if err != nil {
		return err
	}
	if err := e.writeFile(path, content); err != nil {
		return err
	}

	e.UI.Blank()
	e.UI.Success("Entity criada com sucesso!")
	e.UI.File("Localização: %s", e.rel(path))
	e.UI.List("Campos criados:")
	for _, f := range model.Fields {
		e.UI.Item("- %s", describeField(f))
	}
	return nil
}

func describeField(f schema.Field) string {
	var badges []string
	if f.IsID {
		badges = append(badges, "ID")
	}
	if f.IsUnique {
		badges = append(badges, "UNIQUE")
	}
	if f.HasDefault {
		badges = append(badges, "DEFAULT")
	}

	desc := f.Name + ": " + f.MappedType
	if f.IsOptional {
		desc += " (opcional)"
	}
	if !f.Type.Known() {
		desc += " (tipo " + f.SourceType + " não mapeado)"
	}
	if len(badges) > 0 {
		desc += " [" + strings.Join(badges, ", ") + "]"
	}
	return desc
}
