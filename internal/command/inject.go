package command

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/patcher"
	"github.com/Skyenought/expressgen/internal/prompt"
	"github.com/Skyenought/expressgen/internal/scanner"
)

// Inject wires a repository into a use case: the interface becomes a constructor
// parameter of the use case class and index.ts instantiates the implementation.
func Inject(e *Env) error {
	e.UI.Step("💉", "Injetor de Dependências")
	e.UI.Blank()

	uc, err := selectUseCase(e)
	if err != nil {
		return err
	}

	e.UI.List("Buscando repositórios...")
	repos, err := scanner.FindRepositories(e.paths())
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		e.UI.Fail("Nenhum repositório encontrado!")
		e.UI.Info("Execute: expressgen repository")
		return reported(errors.New("no repositories found"))
	}
	options := make([]string, 0, len(repos))
	for _, r := range repos {
		status := "✅"
		if !r.Injectable() {
			status = "⚠️ (sem implementação)"
		}
		options = append(options, r.Interface+" "+status)
	}
	e.UI.Step("📦", "Repositórios disponíveis:")
	idx, err := e.Prompt.Select("Digite o número do repositório", options)
	if err != nil {
		if errors.Is(err, prompt.ErrInvalidChoice) {
			e.UI.Fail("Repositório inválido!")
			return reported(errors.Wrap(ErrInvalidSelection, "repository"))
		}
		return err
	}
	repo := repos[idx]
	if !repo.Injectable() {
		e.UI.Fail("O repositório %q não tem implementação!", repo.Interface)
		e.UI.Info("Execute: expressgen repository")
		return reported(errors.Wrapf(ErrInvalidSelection, "repository %s has no implementation", repo.Interface))
	}
	e.UI.Success("Repositório selecionado: %s", repo.Interface)

	useCaseFile, err := scanner.FindUseCaseFile(uc.Path)
	if err != nil {
		e.UI.Fail("Arquivo do use case não encontrado!")
		return reported(err)
	}

	source, err := os.ReadFile(useCaseFile)
	if err != nil {
		return errors.Wrapf(err, "read %s", useCaseFile)
	}
	className, ok := scanner.ParseClassName(string(source))
	if !ok {
		e.UI.Fail("Classe do use case não encontrada em %s!", e.rel(useCaseFile))
		return reported(errors.Errorf("no exported class in %s", useCaseFile))
	}

	e.UI.Step("🔧", "Injetando dependência...")
	useCaseReport, err := patcher.ModifyFile(useCaseFile, func(content string) (string, patcher.Report) {
		return patcher.InjectIntoUseCase(content, repo.Interface)
	})
	if err != nil {
		return err
	}
	e.Log.Debugf("patched %s: %s", useCaseFile, useCaseReport)

	indexFile := filepath.Join(uc.Path, common.UseCaseIndexFile)
	indexReport, err := patcher.ModifyFile(indexFile, func(content string) (string, patcher.Report) {
		return patcher.InjectIntoIndex(content, repo.Interface, repo.Implementation, patcher.UseCaseVarName(className))
	})
	if err != nil {
		return err
	}
	e.Log.Debugf("patched %s: %s", indexFile, indexReport)

	e.UI.Blank()
	if !useCaseReport.Changed() && !indexReport.Changed() {
		e.UI.Info("Nada a fazer: %s já está injetado em %s.", repo.Interface, uc.DisplayName())
	} else {
		e.UI.Success("Dependência injetada com sucesso!")
		e.UI.Step("📝", "Arquivos atualizados:")
		if useCaseReport.Changed() {
			e.UI.Item("- %s", filepath.Base(useCaseFile))
		}
		if indexReport.Changed() {
			e.UI.Item("- %s", common.UseCaseIndexFile)
		}
		e.UI.Info("Alterações:")
		if applied(useCaseReport, patcher.PieceInterfaceImport) {
			e.UI.Item("- Import adicionado: %s", repo.Interface)
		}
		if applied(useCaseReport, patcher.PieceConstructor) {
			e.UI.Item("- Construtor atualizado com: %s", common.RepositoryVarName(repo.Interface))
		}
		if applied(indexReport, patcher.PieceInstantiation) || applied(indexReport, patcher.PieceRepositoryInstance) {
			e.UI.Item("- Index atualizado com instanciação do %s", repo.Implementation)
		}
	}

	for _, miss := range useCaseReport.Missed() {
		e.UI.Warn("%s: %s não encontrado, edite manualmente.", filepath.Base(useCaseFile), miss.Name)
	}
	for _, miss := range indexReport.Missed() {
		e.UI.Warn("%s: %s não encontrado, edite manualmente.", common.UseCaseIndexFile, miss.Name)
	}
	return nil
}

func applied(r patcher.Report, piece string) bool {
	o, ok := r.Outcome(piece)
	return ok && o == patcher.Applied
}
