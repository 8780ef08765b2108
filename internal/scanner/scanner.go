// Package scanner discovers the artifacts already generated in a project: use cases
// laid out as useCases/<domain>/<name>/<version>/ and repository interfaces with
// their Postgres implementations.
package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"

	"github.com/Skyenought/expressgen/internal/common"
)

var classNameRe = regexp.MustCompile(`export\s+class\s+(\w+)\s*{`)

func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read dir %s", dir)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// compareVersions orders semver-like directory names (v1 < v2 < v10) before any
// other name, which sorts lexically.
func compareVersions(a, b string) bool {
	va, vb := semver.IsValid(a), semver.IsValid(b)
	switch {
	case va && vb:
		if c := semver.Compare(a, b); c != 0 {
			return c < 0
		}
		return a < b
	case va != vb:
		return va
	default:
		return a < b
	}
}

// FindUseCases walks domain/name/version under the use cases directory. Only
// version directories holding an index.ts are reported. A project without a use
// cases directory has none.
func FindUseCases(paths common.ProjectPaths) ([]common.UseCaseDescriptor, error) {
	root := paths.UseCasesDir()
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	domains, err := subdirs(root)
	if err != nil {
		return nil, err
	}
	var found []common.UseCaseDescriptor
	for _, domain := range domains {
		names, err := subdirs(filepath.Join(root, domain))
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			versions, err := subdirs(filepath.Join(root, domain, name))
			if err != nil {
				return nil, err
			}
			sort.SliceStable(versions, func(i, j int) bool { return compareVersions(versions[i], versions[j]) })
			for _, version := range versions {
				dir := filepath.Join(root, domain, name, version)
				if _, err := os.Stat(filepath.Join(dir, common.UseCaseIndexFile)); err != nil {
					continue
				}
				found = append(found, common.UseCaseDescriptor{
					Domain:  domain,
					Name:    name,
					Version: version,
					Path:    dir,
				})
			}
		}
	}
	return found, nil
}

// FindRepositories lists I*Repository.ts interfaces and pairs each one with
// implementions/Postgres<Name>Repository.ts when that file exists.
func FindRepositories(paths common.ProjectPaths) ([]common.RepositoryDescriptor, error) {
	dir := paths.RepositoriesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read dir %s", dir)
	}

	var repos []common.RepositoryDescriptor
	for _, e := range entries {
		file := e.Name()
		if e.IsDir() || !strings.HasPrefix(file, "I") || !strings.HasSuffix(file, "Repository.ts") {
			continue
		}
		name := strings.TrimSuffix(file, ".ts")
		repo := common.RepositoryDescriptor{Interface: name, InterfaceFile: file}

		impl := common.ImplementationPfx + name[1:]
		if _, err := os.Stat(filepath.Join(paths.ImplementationsDir(), impl+".ts")); err == nil {
			repo.Implementation = impl
			repo.ImplementationFile = impl + ".ts"
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// FindUseCaseFile returns the file holding the use case class: the first .ts file of
// dir that is neither the controller, the DTO, the index nor the validation.
func FindUseCaseFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "read dir %s", dir)
	}
	for _, e := range entries {
		f := e.Name()
		if e.IsDir() || !strings.HasSuffix(f, ".ts") {
			continue
		}
		if strings.Contains(f, "controller") || strings.Contains(f, "DTO") ||
			f == common.UseCaseIndexFile || f == common.ValidationFile {
			continue
		}
		return filepath.Join(dir, f), nil
	}
	return "", errors.Errorf("no use case file in %s", dir)
}

// ParseClassName returns the first exported class declared in content.
func ParseClassName(content string) (string, bool) {
	m := classNameRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// HasValidation reports whether the use case directory carries a validation rule-set.
func HasValidation(uc common.UseCaseDescriptor) bool {
	_, err := os.Stat(filepath.Join(uc.Path, common.ValidationFile))
	return err == nil
}
