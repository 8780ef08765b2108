package common

import (
	"path/filepath"
)

const (
	EntitySuffix       = ".entity.ts"
	RouterSuffix       = ".router.ts"
	UseCaseIndexFile   = "index.ts"
	ValidationFile     = "validation.ts"
	ImplementationsDir = "implementions"
	ImplementationPfx  = "Postgres"
)

// ProjectPaths locates every generated artifact inside the TypeScript project.
type ProjectPaths struct {
	Root      string
	SourceDir string
}

func NewProjectPaths(root, sourceDir string) ProjectPaths {
	if sourceDir == "" {
		sourceDir = "src"
	}
	return ProjectPaths{Root: root, SourceDir: filepath.Join(root, sourceDir)}
}

func (p ProjectPaths) EntitiesDir() string {
	return filepath.Join(p.SourceDir, "entities")
}

func (p ProjectPaths) EntityFile(camelName string) string {
	return filepath.Join(p.EntitiesDir(), camelName+EntitySuffix)
}

func (p ProjectPaths) RepositoriesDir() string {
	return filepath.Join(p.SourceDir, "repositories")
}

func (p ProjectPaths) RepositoryInterfaceFile(pascalName string) string {
	return filepath.Join(p.RepositoriesDir(), "I"+pascalName+"Repository.ts")
}

func (p ProjectPaths) ImplementationsDir() string {
	return filepath.Join(p.RepositoriesDir(), ImplementationsDir)
}

func (p ProjectPaths) RepositoryImplementationFile(pascalName string) string {
	return filepath.Join(p.ImplementationsDir(), ImplementationPfx+pascalName+"Repository.ts")
}

func (p ProjectPaths) UseCasesDir() string {
	return filepath.Join(p.SourceDir, "useCases")
}

func (p ProjectPaths) UseCaseDir(domain, camelName, version string) string {
	return filepath.Join(p.UseCasesDir(), domain, camelName, version)
}

func (p ProjectPaths) RoutesDir(version string) string {
	return filepath.Join(p.SourceDir, "api", "routes", version)
}

func (p ProjectPaths) RouterFile(version, domain string) string {
	return filepath.Join(p.RoutesDir(version), domain+RouterSuffix)
}

// ImportPath returns the extension-less, slash separated relative import path from fromDir to target.
func ImportPath(fromDir, target string) (string, error) {
	rel, err := filepath.Rel(fromDir, target)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if ext := filepath.Ext(rel); ext == ".ts" {
		rel = rel[:len(rel)-len(ext)]
	}
	if rel[0] != '.' {
		rel = "./" + rel
	}
	return rel, nil
}
