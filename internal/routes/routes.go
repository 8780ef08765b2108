// Package routes builds the per-domain express router files that register use case
// controllers.
package routes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"github.com/Skyenought/expressgen/internal/patcher"
)

const (
	expressImport        = `import express, { Request, Response, NextFunction } from "express";`
	validatorErrorSymbol = "validatorError"
	validatorErrorImport = `import { validatorError } from "../../../api/middleware/v1/validation/global.validation";`
	routerDecl           = "const router = express.Router();"
	defaultExport        = "export default router;"
)

// Piece names reported by Update.
const (
	PieceImports = "imports"
	PieceRoute   = "route"
)

// AuthType is the guard middleware placed in front of a route. The zero value means
// no authentication.
type AuthType string

const (
	AuthNone     AuthType = ""
	AuthBasic    AuthType = "basicAuth"
	AuthJWT      AuthType = "jwtDecoder"
	AuthCombined AuthType = "authMiddleware"
)

type AuthOption struct {
	Type        AuthType
	Description string
}

// AuthOptions is the auth menu, in display order.
var AuthOptions = []AuthOption{
	{AuthBasic, "Autenticação básica"},
	{AuthJWT, "Autenticação JWT"},
	{AuthCombined, "JWT ou Basic Auth"},
}

// Import returns the import statement of the guard.
func (a AuthType) Import() string {
	switch a {
	case AuthNone:
		return ""
	case AuthBasic:
		return `import { basicAuth } from "../../middleware/v1/guard/basic.mdiddleware";`
	default:
		return fmt.Sprintf(`import { %s } from "../../middleware/v1/guard/jwt.middleware";`, a)
	}
}

// Route is one registration: router.<method>(path, ...middlewares, handler).
type Route struct {
	Method         string
	Path           string
	Controller     string
	ControllerPath string
	// Validation is the rule-set symbol; empty disables validation.
	Validation     string
	ValidationPath string
	Auth           AuthType
}

// Handler renders the registration statement. Middlewares run auth first, then the
// rule-set and the validator error hook.
func (r Route) Handler() string {
	var mw []string
	if r.Auth != AuthNone {
		mw = append(mw, string(r.Auth))
	}
	if r.Validation != "" {
		mw = append(mw, r.Validation, validatorErrorSymbol)
	}
	prefix := ""
	if len(mw) > 0 {
		prefix = strings.Join(mw, ", ") + ", "
	}
	return fmt.Sprintf("router.%s(%q, %s(req: Request, res: Response, next: NextFunction) => {\n"+
		"    return %s.handle(req, res, next);\n"+
		"});", strings.ToLower(r.Method), r.Path, prefix, r.Controller)
}

func (r Route) controllerImport() string {
	return fmt.Sprintf("import { %s } from %q;", r.Controller, r.ControllerPath)
}

func (r Route) validationImport() string {
	return fmt.Sprintf("import { %s } from %q;", r.Validation, r.ValidationPath)
}

// New renders a router file holding only r.
func New(r Route) string {
	imports := []string{expressImport}
	if r.Validation != "" {
		imports = append(imports, r.validationImport(), validatorErrorImport)
	}
	imports = append(imports, r.controllerImport())
	if r.Auth != AuthNone {
		imports = append(imports, r.Auth.Import())
	}
	imports = append(imports, routerDecl)

	return strings.Join(imports, "\n") + "\n\n" + r.Handler() + "\n\n" + defaultExport + "\n"
}

// Update adds r to an existing router file. Imports whose symbol does not appear in
// content yet are placed before the router declaration, and the registration goes
// right before the default export.
func Update(content string, r Route) (string, patcher.Report) {
	var report patcher.Report

	queued := mapset.NewThreadUnsafeSet[string]()
	var imports []string
	need := func(symbol, line string) {
		if strings.Contains(content, symbol) || !queued.Add(symbol) {
			return
		}
		imports = append(imports, line)
	}
	need(r.Controller, r.controllerImport())
	if r.Validation != "" {
		need(r.Validation, r.validationImport())
		need(validatorErrorSymbol, validatorErrorImport)
	}
	if r.Auth != AuthNone {
		need(string(r.Auth), r.Auth.Import())
	}

	switch {
	case len(imports) == 0:
		report.Add(PieceImports, patcher.AlreadyPresent)
	case !strings.Contains(content, routerDecl):
		report.Add(PieceImports, patcher.AnchorNotFound)
	default:
		content = strings.Replace(content, routerDecl, strings.Join(imports, "\n")+"\n"+routerDecl, 1)
		report.Add(PieceImports, patcher.Applied)
	}

	if !strings.Contains(content, defaultExport) {
		report.Add(PieceRoute, patcher.AnchorNotFound)
		return content, report
	}
	content = strings.Replace(content, defaultExport, "\n"+r.Handler()+"\n\n"+defaultExport, 1)
	report.Add(PieceRoute, patcher.Applied)
	return content, report
}

// CreateOrUpdate writes r into the router file at path, creating the file and its
// directory when absent. It reports whether the file was created.
func CreateOrUpdate(path string, r Route) (bool, patcher.Report, error) {
	if _, err := os.Stat(path); err == nil {
		report, err := patcher.ModifyFile(path, func(content string) (string, patcher.Report) {
			return Update(content, r)
		})
		return false, report, err
	} else if !os.IsNotExist(err) {
		return false, patcher.Report{}, errors.Wrapf(err, "stat %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, patcher.Report{}, errors.Wrapf(err, "create dir %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(New(r)), 0o644); err != nil {
		return false, patcher.Report{}, errors.Wrapf(err, "write %s", path)
	}
	var report patcher.Report
	report.Add(PieceImports, patcher.Applied)
	report.Add(PieceRoute, patcher.Applied)
	return true, report, nil
}
