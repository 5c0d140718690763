package preprocessor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ---------------- Recursive expansion ----------------

// expand walks src line by line, splicing every include that resolves
// against the search path in place of its directive, recursively. chain
// holds the resolved paths already expanded between the root and this call;
// an include already on it is dropped instead of expanded again, which is
// what bounds recursion. Returns the paths spliced in by this call and its
// descendants, in the order encountered.
func (p *Preprocessor) expand(filename string, r io.Reader, w io.Writer, chain []string) ([]string, error) {
	// Always search the directory of the header itself, ahead of the
	// explicit include path, so sibling headers win.
	dirs := append([]string{filepath.Dir(filename)}, p.IncludeDirs...)

	if err := p.writeMarker(w, 1, filename); err != nil {
		return nil, err
	}

	var deps []string
	lr := newLineReader(r)

	lineNo := 0
	for {
		line, hasNL, ok, err := lr.next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if !ok {
			break
		}
		lineNo++

		name, matched := MatchInclude(line)
		if !matched {
			if err := writeLine(w, line, hasNL); err != nil {
				return nil, err
			}
			continue
		}

		path, found := resolvePath(name, dirs)
		if !found {
			// Leave it for a real compiler to resolve later.
			p.Logger.Debug("include not found, passing through",
				"name", name, "file", shortPath(filename), "line", lineNo)
			if err := writeLine(w, line, hasNL); err != nil {
				return nil, err
			}
			continue
		}

		if onChain(chain, path) {
			p.Logger.Debug("include cycle, dropping",
				"path", path, "file", shortPath(filename), "line", lineNo)
			continue
		}

		childDeps, err := p.expandInclude(path, w, chain)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: include %q: %w", shortPath(filename), lineNo, name, err)
		}
		deps = append(deps, path)
		deps = append(deps, childDeps...)

		// Re-attribute everything after the splice to this file again.
		if err := p.writeMarker(w, lineNo+1, filename); err != nil {
			return nil, err
		}
	}

	return deps, nil
}

// expandInclude opens path and expands it with the chain extended by path.
// The chain is copied so sibling includes never see each other's entries,
// and the file is closed before returning on every path.
func (p *Preprocessor) expandInclude(path string, w io.Writer, chain []string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	child := make([]string, len(chain), len(chain)+1)
	copy(child, chain)
	child = append(child, path)

	return p.expand(path, f, w, child)
}

func writeLine(w io.Writer, line string, hasNL bool) error {
	if hasNL {
		line += "\n"
	}
	_, err := io.WriteString(w, line)
	return err
}

// ---------------- Line reading ----------------

type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (lr *lineReader) next() (line string, hasNL bool, ok bool, err error) {
	s, err := lr.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, false, err
	}
	if len(s) == 0 && err == io.EOF {
		return "", false, false, io.EOF
	}
	hasNL = strings.HasSuffix(s, "\n")
	if hasNL {
		s = s[:len(s)-1]
	}
	return s, hasNL, true, nil
}
