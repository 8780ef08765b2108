package patcher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Skyenought/expressgen/internal/common"
)

// Piece names reported by InjectIntoUseCase.
const (
	PieceInterfaceImport = "interface import"
	PieceConstructor     = "constructor"
	PieceInjectSentinel  = "inject sentinel"
)

var (
	constructorOpenRe  = regexp.MustCompile(`constructor\s*\(`)
	constructorBraceRe = regexp.MustCompile(`^\s*\{`)
	injectSentinelRe   = regexp.MustCompile(`\s*// TODO: Injete as dependências necessárias.*\n`)
)

// InterfaceImport is the import line a use case needs for a repository interface.
func InterfaceImport(repositoryInterface string) string {
	return fmt.Sprintf(`import { %s } from "../../../../repositories/%s";`, repositoryInterface, repositoryInterface)
}

// InjectIntoUseCase adds repositoryInterface as a private constructor parameter of
// the use case class in content, importing it after the existing imports.
func InjectIntoUseCase(content, repositoryInterface string) (string, Report) {
	var report Report
	paramName := common.RepositoryVarName(repositoryInterface)

	if strings.Contains(content, repositoryInterface) {
		report.Add(PieceInterfaceImport, AlreadyPresent)
	} else {
		content = insertImport(content, InterfaceImport(repositoryInterface), AfterLastImport)
		report.Add(PieceInterfaceImport, Applied)
	}

	call, ok := findCall(content, constructorOpenRe)
	var brace []int
	if ok {
		brace = constructorBraceRe.FindStringIndex(content[call.end:])
	}
	if brace == nil {
		report.Add(PieceConstructor, AnchorNotFound)
		return content, report
	}

	params := trimList(dropCommentLines(call.args))
	param := fmt.Sprintf("private %s: %s", paramName, repositoryInterface)
	switch {
	case strings.Contains(params, paramName):
		report.Add(PieceConstructor, AlreadyPresent)
	case params == "":
		content = content[:call.start] + "constructor(" + param + ") {" + content[call.end+brace[1]:]
		report.Add(PieceConstructor, Applied)
	default:
		params = params + ",\n        " + param
		content = content[:call.start] + "constructor(" + params + ") {" + content[call.end+brace[1]:]
		report.Add(PieceConstructor, Applied)
	}

	if injectSentinelRe.MatchString(content) {
		content = injectSentinelRe.ReplaceAllString(content, "\n")
		report.Add(PieceInjectSentinel, Applied)
	}
	return content, report
}
