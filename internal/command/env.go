// Package command holds the interactive generators behind the CLI subcommands.
// Each generator sequences prompts, calls the schema reader, the template engine,
// the scanner and the patcher, and writes files.
package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/config"
	"github.com/Skyenought/expressgen/internal/logger"
	"github.com/Skyenought/expressgen/internal/prompt"
	"github.com/Skyenought/expressgen/internal/schema"
	"github.com/Skyenought/expressgen/internal/ui"
)

var (
	// ErrCancelled ends a generator without failure (exit code 0).
	ErrCancelled        = errors.New("operation cancelled")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrRequired         = errors.New("required value missing")
)

// reportedError marks an error whose failure message was already printed.
type reportedError struct {
	error
}

func (r reportedError) Unwrap() error { return r.error }
func (r reportedError) Cause() error  { return r.error }

func reported(err error) error {
	return reportedError{err}
}

// Reported reports whether the generator already showed err to the operator.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// Env carries the collaborators of a generator run.
type Env struct {
	Config *config.Config
	Log    logger.Logger
	UI     *ui.Printer
	Prompt prompt.Prompter
}

func (e *Env) paths() common.ProjectPaths {
	return e.Config.Paths()
}

// rel shortens path for display.
func (e *Env) rel(path string) string {
	if r, err := filepath.Rel(e.Config.Root, path); err == nil {
		return r
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (e *Env) writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create dir %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	e.Log.Debugf("wrote %s (%d bytes)", path, len(content))
	return nil
}

// confirmOverwrite asks before replacing path. force skips the question.
func (e *Env) confirmOverwrite(path string, force bool) (bool, error) {
	if force || !exists(path) {
		return true, nil
	}
	return e.Prompt.Confirm(ui.GlyphWarn+"  \""+filepath.Base(path)+"\" já existe. Sobrescrever?", false)
}

// loadSchema reads the configured schema and lists its models. A missing schema
// or one without models is reported to the operator.
func (e *Env) loadSchema() (*schema.Schema, error) {
	path := e.Config.SchemaPath()
	e.UI.Step("📖", "Lendo %s...", e.rel(path))
	s, err := schema.ReadFile(path)
	if err != nil {
		if errors.Is(err, schema.ErrSchemaNotFound) {
			e.UI.Fail("Arquivo schema.prisma não encontrado!")
			e.UI.Item("Esperado em: %s", path)
			return nil, reported(err)
		}
		return nil, err
	}
	e.Log.Debugf("parsed %d models from %s", len(s.Models), path)
	if s.Empty() {
		e.UI.Fail("Nenhum model encontrado no schema.prisma!")
		return nil, reported(errors.WithStack(schema.ErrNoModels))
	}

	e.UI.List("Models disponíveis:")
	for _, name := range s.Names() {
		e.UI.Item("- %s", name)
	}
	e.UI.Blank()
	return s, nil
}

// selectModel resolves name, asking for it when empty.
func (e *Env) selectModel(s *schema.Schema, name, question string) (schema.Model, error) {
	if name == "" {
		var err error
		if name, err = e.Prompt.Input(question, ""); err != nil {
			return schema.Model{}, err
		}
	}
	if name == "" {
		e.UI.Fail("Nome da entidade é obrigatório!")
		return schema.Model{}, reported(errors.Wrap(ErrRequired, "model name"))
	}
	model, err := s.Find(name)
	if err != nil {
		e.UI.Fail("Model %q não encontrado no schema.prisma!", name)
		e.UI.Info("Models disponíveis: %s", strings.Join(s.Names(), ", "))
		return schema.Model{}, reported(err)
	}
	return model, nil
}
