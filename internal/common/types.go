package common

import "strings"

// UseCaseDescriptor points at a generated use case directory (domain/name/version).
type UseCaseDescriptor struct {
	Domain  string
	Name    string
	Version string
	Path    string
}

func (u UseCaseDescriptor) DisplayName() string {
	return u.Domain + "/" + u.Name + "/" + u.Version
}

// RepositoryDescriptor pairs a repository interface with its Postgres implementation.
// Implementation is empty when no implementation file exists.
type RepositoryDescriptor struct {
	Interface          string
	Implementation     string
	InterfaceFile      string
	ImplementationFile string
}

// Injectable reports whether the repository can be wired into a use case.
func (r RepositoryDescriptor) Injectable() bool {
	return r.Implementation != ""
}

// HTTPMethods lists the verbs offered by the route generator, in menu order.
var HTTPMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

func IsHTTPMethod(method string) bool {
	switch strings.ToUpper(method) {
	case "GET", "POST", "PUT", "DELETE", "PATCH":
		return true
	default:
		return false
	}
}
