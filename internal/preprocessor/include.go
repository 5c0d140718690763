package preprocessor

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ---------------- Include matching ----------------

// Regular expression for matching #include directives. Allows pretty liberal
// use of whitespace. Anchored at the start of the line: includes buried
// mid-line or inside comments are not recognized.
var incRE = regexp.MustCompile(`^\s*#\s*include\s*(?:<([^>]+)>|"([^"]+)")`)

// MatchInclude reports whether line is an #include directive and, if so,
// returns the referenced file name with surrounding whitespace stripped.
// Malformed directives (unbalanced delimiters) do not match.
func MatchInclude(line string) (string, bool) {
	m := incRE.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := m[1]
	if name == "" {
		name = m[2]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}

// ---------------- Include resolution ----------------

// resolvePath returns the first directory in dirs holding a file of exactly
// that name. The whole build system relies on forward slashes joining
// cleanly, so candidates are cleaned, never rewritten.
func resolvePath(name string, dirs []string) (string, bool) {
	for _, dir := range dirs {
		cand := filepath.Join(dir, name)
		if fileExists(cand) {
			return cand, true
		}
	}
	return "", false
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

func onChain(chain []string, path string) bool {
	for _, c := range chain {
		if c == path {
			return true
		}
	}
	return false
}
