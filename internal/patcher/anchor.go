package patcher

import (
	"regexp"
	"strings"
)

// ImportAnchor selects where a new import statement goes.
type ImportAnchor int

const (
	// AfterLastImport places the import right after the last import statement.
	AfterLastImport ImportAnchor = iota
	// BeforeFirstImport places the import right before the first import that is
	// not commented out, keeping leading placeholder comments above it.
	BeforeFirstImport
)

// insertImport adds line at the position chosen by anchor. A file without imports
// gets the line at the top.
func insertImport(content, line string, anchor ImportAnchor) string {
	lines := strings.Split(content, "\n")
	at := 0
	switch anchor {
	case AfterLastImport:
		if end := lastImportEnd(lines); end >= 0 {
			at = end + 1
		}
	case BeforeFirstImport:
		for i, l := range lines {
			if isImportLine(l) {
				at = i
				break
			}
		}
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	out = append(out, lines[at:]...)
	return strings.Join(out, "\n")
}

func isImportLine(l string) bool {
	t := strings.TrimSpace(l)
	return t == "import" || strings.HasPrefix(t, "import ") || strings.HasPrefix(t, "import{")
}

// lastImportEnd returns the index of the line closing the last import statement,
// following multi-line `import {\n a,\n b\n} from "x";` forms.
func lastImportEnd(lines []string) int {
	end := -1
	for i := 0; i < len(lines); i++ {
		if !isImportLine(lines[i]) {
			continue
		}
		j := i
		for j < len(lines)-1 && !importClosed(lines[j]) {
			j++
		}
		end = j
		i = j
	}
	return end
}

func importClosed(l string) bool {
	t := strings.TrimSpace(l)
	return strings.HasSuffix(t, ";") || strings.Contains(t, " from ") || strings.HasPrefix(t, "}") ||
		(strings.HasPrefix(t, "import ") && (strings.Contains(t, `"`) || strings.Contains(t, "'")))
}

// callSpan covers a matched call through its closing parenthesis.
type callSpan struct {
	start, end int
	args       string
}

// findCall locates the first call whose opening is matched by open. The match must
// end with the opening parenthesis.
func findCall(content string, open *regexp.Regexp) (callSpan, bool) {
	loc := open.FindStringIndex(content)
	if loc == nil {
		return callSpan{}, false
	}
	lparen := loc[1] - 1
	rparen := matchParen(content, lparen)
	if rparen < 0 {
		return callSpan{}, false
	}
	return callSpan{start: loc[0], end: rparen + 1, args: content[lparen+1 : rparen]}, true
}

// matchParen returns the index of the parenthesis closing the one at open,
// ignoring parentheses inside string literals and comments, or -1.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch c := s[i]; c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		case '"', '\'', '`':
			i = skipString(s, i, c)
		case '/':
			if i+1 < len(s) && s[i+1] == '/' {
				nl := strings.IndexByte(s[i:], '\n')
				if nl < 0 {
					return -1
				}
				i += nl
			} else if i+1 < len(s) && s[i+1] == '*' {
				end := strings.Index(s[i+2:], "*/")
				if end < 0 {
					return -1
				}
				i += end + 3
			}
		}
	}
	return -1
}

func skipString(s string, i int, quote byte) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}
	return len(s)
}

// trimList trims a captured parameter or argument list, including a trailing comma.
func trimList(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ","))
}

// dropCommentLines removes lines that only hold a // comment.
func dropCommentLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "//") {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}

var blankRunRe = regexp.MustCompile(`\n\n\n+`)

func collapseBlankLines(s string) string {
	return blankRunRe.ReplaceAllString(s, "\n\n")
}
