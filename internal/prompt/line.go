package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Line reads one answer per line. Menus are answered with the 1-based option number.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{r: bufio.NewReader(in), w: out}
}

func (l *Line) readLine(message string) (string, error) {
	fmt.Fprint(l.w, message)
	line, err := l.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, "read answer")
		}
		if line == "" {
			return "", errors.Wrap(ErrInterrupted, "end of input")
		}
	}
	return strings.TrimSpace(line), nil
}

func (l *Line) Input(message, def string) (string, error) {
	label := message + ": "
	if def != "" {
		label = fmt.Sprintf("%s (%s): ", message, def)
	}
	answer, err := l.readLine(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (l *Line) Confirm(message string, defaultYes bool) (bool, error) {
	answer, err := l.readLine(confirmMessage(message, defaultYes) + ": ")
	if err != nil {
		return false, err
	}
	return interpret(answer, defaultYes), nil
}

func (l *Line) Select(message string, options []string) (int, error) {
	for i, o := range options {
		fmt.Fprintf(l.w, "   %d. %s\n", i+1, o)
	}
	answer, err := l.readLine(message + ": ")
	if err != nil {
		return -1, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return -1, errors.Wrapf(ErrInvalidChoice, "%q", answer)
	}
	return n - 1, nil
}
