// Package prompt asks the operator questions, either through interactive survey
// widgets on a terminal or line by line when stdin is piped.
package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrInterrupted is returned when the operator aborts a prompt.
	ErrInterrupted = errors.New("prompt interrupted")
)

type Prompter interface {
	// Input returns the trimmed answer, or def when the answer is empty.
	Input(message, def string) (string, error)
	// Confirm asks a yes/no question. An empty answer yields defaultYes.
	Confirm(message string, defaultYes bool) (bool, error)
	// Select returns the 0-based index of the chosen option.
	Select(message string, options []string) (int, error)
}

// New returns a Survey prompter when in and out are terminals and a Line prompter
// otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	fin, okIn := in.(*os.File)
	fout, okOut := out.(*os.File)
	if okIn && okOut && isTerminal(fin) && isTerminal(fout) {
		return NewSurvey(fin, fout)
	}
	return NewLine(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsAffirmative accepts s and sim, in any case.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim":
		return true
	default:
		return false
	}
}

// IsNegative accepts n, nao and não, in any case.
func IsNegative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "nao", "não":
		return true
	default:
		return false
	}
}

func confirmSuffix(defaultYes bool) string {
	if defaultYes {
		return "(S/n)"
	}
	return "(s/N)"
}

func interpret(answer string, defaultYes bool) bool {
	if defaultYes {
		return !IsNegative(answer)
	}
	return IsAffirmative(answer)
}

func confirmMessage(message string, defaultYes bool) string {
	return fmt.Sprintf("%s %s", message, confirmSuffix(defaultYes))
}
