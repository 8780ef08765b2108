package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/prompt"
	"github.com/Skyenought/expressgen/internal/routes"
	"github.com/Skyenought/expressgen/internal/scanner"
	"github.com/Skyenought/expressgen/internal/ui"
)

// selectUseCase lists the discovered use cases and asks for one.
func selectUseCase(e *Env) (common.UseCaseDescriptor, error) {
	e.UI.List("Buscando use cases...")
	useCases, err := scanner.FindUseCases(e.paths())
	if err != nil {
		return common.UseCaseDescriptor{}, err
	}
	e.Log.Debugf("found %d use cases", len(useCases))
	if len(useCases) == 0 {
		e.UI.Fail("Nenhum use case encontrado!")
		e.UI.Info("Execute: expressgen usecase")
		return common.UseCaseDescriptor{}, reported(errors.New("no use cases found"))
	}

	names := make([]string, 0, len(useCases))
	for _, uc := range useCases {
		names = append(names, uc.DisplayName())
	}
	e.UI.Step("📦", "Use cases disponíveis:")
	idx, err := e.Prompt.Select("Digite o número do use case", names)
	if err != nil {
		if errors.Is(err, prompt.ErrInvalidChoice) {
			e.UI.Fail("Use case inválido!")
			return common.UseCaseDescriptor{}, reported(errors.Wrap(ErrInvalidSelection, "use case"))
		}
		return common.UseCaseDescriptor{}, err
	}
	selected := useCases[idx]
	e.UI.Success("Use case selecionado: %s", selected.DisplayName())
	return selected, nil
}

// useCaseBaseName is the file name of the use case class without extension.
func useCaseBaseName(uc common.UseCaseDescriptor) (string, error) {
	file, err := scanner.FindUseCaseFile(uc.Path)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(filepath.Base(file), ".ts"), nil
}

// Route registers a controller of an existing use case in the router file of its
// domain, creating the file on first use.
func Route(e *Env) error {
	e.UI.Step("🛣️", "Gerador de Rotas")
	e.UI.Blank()

	uc, err := selectUseCase(e)
	if err != nil {
		return err
	}

	e.UI.Step("📝", "Métodos HTTP disponíveis:")
	idx, err := e.Prompt.Select("Digite o número do método", common.HTTPMethods)
	if err != nil {
		if errors.Is(err, prompt.ErrInvalidChoice) {
			e.UI.Fail("Método inválido!")
			return reported(errors.Wrap(ErrInvalidSelection, "http method"))
		}
		return err
	}
	method := common.HTTPMethods[idx]

	e.UI.Info("Exemplos de paths: /, /:id, /search, /:schoolId/users")
	path, err := e.Prompt.Input("Digite o path da rota", "")
	if err != nil {
		return err
	}
	if path == "" {
		e.UI.Fail("Path é obrigatório!")
		return reported(errors.Wrap(ErrRequired, "route path"))
	}

	useValidation := false
	if scanner.HasValidation(uc) {
		if useValidation, err = e.Prompt.Confirm(ui.GlyphSuccess+" Validação encontrada. Deseja usar?", true); err != nil {
			return err
		}
	} else {
		e.UI.Warn("Nenhuma validação encontrada para este use case.")
	}

	auth, err := selectAuth(e)
	if err != nil {
		return err
	}

	base, err := useCaseBaseName(uc)
	if err != nil {
		e.UI.Fail("Arquivo do use case não encontrado!")
		return reported(err)
	}
	camel := common.ToCamelCase(base)
	routerFile := e.paths().RouterFile(uc.Version, uc.Domain)

	r := routes.Route{
		Method:     method,
		Path:       path,
		Controller: camel + "Controller",
		Auth:       auth,
	}
	if r.ControllerPath, err = common.ImportPath(filepath.Dir(routerFile), filepath.Join(uc.Path, common.UseCaseIndexFile)); err != nil {
		return errors.Wrap(err, "controller import path")
	}
	if useValidation {
		r.Validation = camel + "Validation"
		if r.ValidationPath, err = common.ImportPath(filepath.Dir(routerFile), filepath.Join(uc.Path, common.ValidationFile)); err != nil {
			return errors.Wrap(err, "validation import path")
		}
	}

	if existing, err := os.ReadFile(routerFile); err == nil {
		if dup, ok := routes.Find(routes.Parse(string(existing)), method, path); ok {
			e.UI.Warn("A rota %s %s já está registrada (%s).", method, path, dup.Controller)
			again, err := e.Prompt.Confirm("Adicionar mesmo assim?", false)
			if err != nil {
				return err
			}
			if !again {
				e.UI.Fail("Operação cancelada.")
				return ErrCancelled
			}
		}
	}

	created, report, err := routes.CreateOrUpdate(routerFile, r)
	if err != nil {
		return err
	}
	e.Log.Debugf("router %s created=%t: %s", routerFile, created, report)
	for _, miss := range report.Missed() {
		e.UI.Warn("Não foi possível atualizar %s: âncora não encontrada (%s).", e.rel(routerFile), miss.Name)
	}

	e.UI.Blank()
	e.UI.Success("Rota criada com sucesso!")
	e.UI.File("Arquivo: %s", e.rel(routerFile))
	e.UI.List("Detalhes:")
	e.UI.Item("- Método: %s", method)
	e.UI.Item("- Path: %s", path)
	e.UI.Item("- Controller: %s", r.Controller)
	if r.Validation != "" {
		e.UI.Item("- Validação: %s", r.Validation)
	}
	if auth != routes.AuthNone {
		e.UI.Item("- Autenticação: %s", auth)
	}
	return nil
}

// selectAuth asks whether the route needs a guard. An invalid menu answer falls
// back to no authentication.
func selectAuth(e *Env) (routes.AuthType, error) {
	want, err := e.Prompt.Confirm("Deseja adicionar autenticação?", false)
	if err != nil || !want {
		return routes.AuthNone, err
	}

	e.UI.Step("🔐", "Tipos de autenticação disponíveis:")
	options := make([]string, 0, len(routes.AuthOptions))
	for _, o := range routes.AuthOptions {
		options = append(options, string(o.Type)+" - "+o.Description)
	}
	idx, err := e.Prompt.Select("Digite o número do tipo de autenticação", options)
	if err != nil {
		if errors.Is(err, prompt.ErrInvalidChoice) {
			e.UI.Fail("Tipo de autenticação inválido! Usando sem autenticação.")
			return routes.AuthNone, nil
		}
		return routes.AuthNone, err
	}
	return routes.AuthOptions[idx].Type, nil
}

// ListRoutes prints every route registered in the router files of the project.
func ListRoutes(e *Env) error {
	dir := filepath.Join(e.paths().SourceDir, "api", "routes")
	registered, err := routes.ScanDir(dir)
	if err != nil {
		return err
	}
	if len(registered) == 0 {
		e.UI.Warn("Nenhuma rota registrada em %s.", e.rel(dir))
		return nil
	}

	e.UI.List("Rotas registradas:")
	file := ""
	for _, r := range registered {
		if r.File != file {
			file = r.File
			e.UI.File("%s", e.rel(file))
		}
		line := fmt.Sprintf("%-6s %s -> %s", r.Method, r.Path, r.Controller)
		if len(r.Middlewares) > 0 {
			line += " [" + strings.Join(r.Middlewares, ", ") + "]"
		}
		e.UI.Item("%s", line)
	}
	return nil
}
