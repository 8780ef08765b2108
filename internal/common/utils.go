package common

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	camelCaseRe  = regexp.MustCompile(`^[a-z]+[A-Z]`)
	pascalCaseRe = regexp.MustCompile(`^[A-Z](?:[a-z]+[A-Z]|[A-Z]?[a-z]|[A-Z]?$)`)
	wordSplitRe  = regexp.MustCompile(`[-_\s]+`)
	innerUpperRe = regexp.MustCompile(`[a-z][A-Z]`)
)

// IsCamelCase reports whether s starts with a lowercase run followed by an uppercase
// letter and holds no separator.
func IsCamelCase(s string) bool {
	return camelCaseRe.MatchString(s) && !wordSplitRe.MatchString(s)
}

// IsPascalCase reports whether s holds no separator and starts like a PascalCase
// name: an uppercase letter followed by a lowercase run and another uppercase letter,
// or one or two uppercase letters followed by a lowercase one or the end (IPhone, AB).
func IsPascalCase(s string) bool {
	return pascalCaseRe.MatchString(s) && !wordSplitRe.MatchString(s)
}

// ToPascalCase converts camelCase, kebab-case, snake_case or space separated names to PascalCase.
// PascalCase input is returned as is; camelCase input only gets its first letter flipped.
// A separated word keeps its inner case when it already has a word boundary (userById).
func ToPascalCase(s string) string {
	if IsPascalCase(s) {
		return s
	}
	if IsCamelCase(s) {
		return ToUpperFirst(s)
	}

	var b strings.Builder
	for _, word := range wordSplitRe.Split(s, -1) {
		if word == "" {
			continue
		}
		r := []rune(word)
		b.WriteRune(unicode.ToUpper(r[0]))
		if innerUpperRe.MatchString(word) {
			b.WriteString(string(r[1:]))
		} else {
			b.WriteString(strings.ToLower(string(r[1:])))
		}
	}
	return b.String()
}

// ToCamelCase is the lowerCamel sibling of ToPascalCase.
func ToCamelCase(s string) string {
	if IsCamelCase(s) {
		return s
	}
	if IsPascalCase(s) {
		return ToLowerCamel(s)
	}
	return ToLowerCamel(ToPascalCase(s))
}

func ToLowerCamel(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func ToUpperFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// RepositoryBaseName strips the interface prefix and suffix: IUserRepository -> User.
func RepositoryBaseName(interfaceName string) string {
	name := strings.TrimPrefix(interfaceName, "I")
	return strings.TrimSuffix(name, "Repository")
}

// RepositoryVarName is the conventional parameter/variable name for a repository interface,
// e.g. IUserRepository -> userRepository.
func RepositoryVarName(interfaceName string) string {
	return ToCamelCase(RepositoryBaseName(interfaceName)) + "Repository"
}
