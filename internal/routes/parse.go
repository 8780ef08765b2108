package routes

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/Skyenought/expressgen/internal/common"
)

var registrationRe = regexp.MustCompile(`(?s)router\.(get|post|put|delete|patch)\s*\(\s*["']([^"']*)["']\s*,\s*(.*?)\(\s*req\b.*?return\s+(\w+)\.handle\(`)

// Registered is a route found in an existing router file.
type Registered struct {
	File        string
	Version     string
	Method      string
	Path        string
	Middlewares []string
	Controller  string
}

// Parse extracts the registrations of a router file in source order.
func Parse(content string) []Registered {
	var found []Registered
	for _, m := range registrationRe.FindAllStringSubmatch(content, -1) {
		var mw []string
		for _, name := range strings.Split(m[3], ",") {
			if name = strings.TrimSpace(name); name != "" {
				mw = append(mw, name)
			}
		}
		found = append(found, Registered{
			Method:      strings.ToUpper(m[1]),
			Path:        m[2],
			Middlewares: mw,
			Controller:  m[4],
		})
	}
	return found
}

// Find returns the registration of method and path, if any.
func Find(registered []Registered, method, path string) (Registered, bool) {
	for _, r := range registered {
		if strings.EqualFold(r.Method, method) && r.Path == path {
			return r, true
		}
	}
	return Registered{}, false
}

// ScanDir parses every <domain>.router.ts below dir (api/routes), one version
// directory per level.
func ScanDir(dir string) ([]Registered, error) {
	var all []Registered
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), common.RouterSuffix) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		version := filepath.Base(filepath.Dir(path))
		for _, r := range Parse(string(content)) {
			r.File = path
			r.Version = version
			all = append(all, r)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", dir)
	}
	return all, nil
}
