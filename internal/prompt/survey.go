package prompt

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pkg/errors"
)

// Survey renders prompts with survey widgets.
type Survey struct {
	opts []survey.AskOpt
}

func NewSurvey(in, out *os.File) *Survey {
	return &Survey{opts: []survey.AskOpt{survey.WithStdio(in, out, out)}}
}

func (s *Survey) ask(p survey.Prompt, answer interface{}) error {
	if err := survey.AskOne(p, answer, s.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrInterrupted
		}
		return errors.Wrap(err, "prompt")
	}
	return nil
}

func (s *Survey) Input(message, def string) (string, error) {
	var answer string
	if err := s.ask(&survey.Input{Message: message, Default: def}, &answer); err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return def, nil
	}
	return answer, nil
}

func (s *Survey) Confirm(message string, defaultYes bool) (bool, error) {
	var answer string
	if err := s.ask(&survey.Input{Message: confirmMessage(message, defaultYes)}, &answer); err != nil {
		return false, err
	}
	return interpret(answer, defaultYes), nil
}

func (s *Survey) Select(message string, options []string) (int, error) {
	var idx int
	if err := s.ask(&survey.Select{Message: message, Options: options}, &idx); err != nil {
		return -1, err
	}
	return idx, nil
}
