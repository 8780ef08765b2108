package patcher

import (
	"os"

	"github.com/pkg/errors"
)

// ModifyFile reads path, applies modifier and writes the result back only when the
// text changed. File permissions are preserved.
func ModifyFile(path string, modifier func(content string) (string, Report)) (Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Report{}, errors.Wrapf(err, "stat %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Report{}, errors.Wrapf(err, "read %s", path)
	}

	updated, report := modifier(string(content))
	if updated == string(content) {
		return report, nil
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return report, errors.Wrapf(err, "write %s", path)
	}
	return report, nil
}
