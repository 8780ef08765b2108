package patcher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Skyenought/expressgen/internal/common"
)

// Piece names reported by InjectIntoIndex.
const (
	PieceImplementationImport = "implementation import"
	PieceInstantiation        = "use case instantiation"
	PieceRepositoryInstance   = "repository instance"
	PieceIndexSentinels       = "placeholder comments"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	semicolonRe  = regexp.MustCompile(`^\s*;`)

	indexSentinels = []*regexp.Regexp{
		regexp.MustCompile(`// TODO: Importe o repositório necessário\n`),
		regexp.MustCompile(`// TODO: Importe e instancie o repositório necessário\n`),
		regexp.MustCompile(`// import.*PostgresExampleRepository.*\n`),
		regexp.MustCompile(`// TODO: Instancie as dependências\n`),
		regexp.MustCompile(`// const exampleRepository.*\n`),
		regexp.MustCompile(`// Injete as dependências aqui\n`),
	}
)

// ImplementationImport is the import line an index needs for a repository implementation.
func ImplementationImport(implementation string) string {
	return fmt.Sprintf(`import { %s } from "../../../../repositories/%s/%s";`,
		implementation, common.ImplementationsDir, implementation)
}

// UseCaseVarName is the variable an index binds the use case instance to,
// e.g. CreateUserUseCase -> createUserUseCase.
func UseCaseVarName(className string) string {
	return common.ToLowerCamel(className)
}

// InjectIntoIndex passes a new implementation instance to the use case built in the
// index file. The implementation import goes before the first live import so that
// leading placeholder comments stay on top.
func InjectIntoIndex(content, repositoryInterface, implementation, useCaseVar string) (string, Report) {
	var report Report
	repoVar := common.RepositoryVarName(repositoryInterface)

	if strings.Contains(content, implementation) {
		report.Add(PieceImplementationImport, AlreadyPresent)
	} else {
		content = insertImport(content, ImplementationImport(implementation), BeforeFirstImport)
		report.Add(PieceImplementationImport, Applied)
	}

	openRe := regexp.MustCompile(`const\s+` + regexp.QuoteMeta(useCaseVar) + `\s*=\s*new\s+(\w+)\s*\(`)
	call, ok := findCall(content, openRe)
	if !ok {
		report.Add(PieceInstantiation, AnchorNotFound)
		return cleanIndex(content, &report), report
	}
	className := openRe.FindStringSubmatch(content[call.start:])[1]
	end := call.end
	if semi := semicolonRe.FindStringIndex(content[end:]); semi != nil {
		end += semi[1]
	}

	args := trimList(whitespaceRe.ReplaceAllString(dropCommentLines(call.args), " "))
	var newArgs string
	switch {
	case strings.Contains(args, repoVar):
		report.Add(PieceInstantiation, AlreadyPresent)
	case args == "":
		newArgs = repoVar
		report.Add(PieceInstantiation, Applied)
	default:
		newArgs = args + ", " + repoVar
		report.Add(PieceInstantiation, Applied)
	}

	var instance string
	if strings.Contains(content, repoVar+" =") {
		report.Add(PieceRepositoryInstance, AlreadyPresent)
	} else {
		instance = fmt.Sprintf("const %s = new %s();\n", repoVar, implementation)
		report.Add(PieceRepositoryInstance, Applied)
	}

	// the instantiation statement is only rewritten when its arguments change
	if newArgs != "" {
		content = content[:call.start] + instance + fmt.Sprintf("const %s = new %s(%s);", useCaseVar, className, newArgs) + content[end:]
	} else if instance != "" {
		content = content[:call.start] + instance + content[call.start:]
	}

	return cleanIndex(content, &report), report
}

func cleanIndex(content string, report *Report) string {
	cleaned := content
	for _, re := range indexSentinels {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = collapseBlankLines(cleaned)
	if cleaned != content {
		report.Add(PieceIndexSentinels, Applied)
	}
	return cleaned
}
