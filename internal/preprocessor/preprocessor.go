// Package preprocessor flattens the #include tree of a C/C++-like header
// into a single file. It is a pre-pre-processor: it splices include files
// textually and wraps the result in #define/#undef pairs, but evaluates no
// conditionals and expands no macros. Include guards are not honored;
// inclusion loops are broken by dropping the cyclic directive instead.
package preprocessor

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultMarkerFormat mimics a C preprocessor line-marker directive.
const DefaultMarkerFormat = `# {line} "{file}"`

// ---------------- Preprocessor ----------------

type Preprocessor struct {
	// IncludeDirs is the explicit search path. The directory of the
	// including file is always searched first, before these.
	IncludeDirs []string

	// Symbols are emitted as a #define block before the expanded body and
	// a matching #undef block after it, in this order.
	Symbols []Symbol

	// MarkerFormat is the line-marker template, with {line} and {file}
	// substitution fields. Empty disables marker emission entirely.
	MarkerFormat string

	// RelativeBase, when set, shortens file names in markers and the
	// dependency-rule target against this directory.
	RelativeBase string

	Logger *log.Logger
}

func NewPreprocessor() *Preprocessor {
	return &Preprocessor{
		MarkerFormat: DefaultMarkerFormat,
		Logger:       log.New(io.Discard),
	}
}

// Process writes the #define block, the fully expanded header, and the
// #undef block to w. It returns the path of every file spliced into the
// expansion, in the order encountered; a file reached along several branches
// appears once per splice.
func (p *Preprocessor) Process(filename string, r io.Reader, w io.Writer) ([]string, error) {
	if err := p.writeDefines(w); err != nil {
		return nil, err
	}
	deps, err := p.expand(filename, r, w, []string{filepath.Clean(filename)})
	if err != nil {
		return nil, err
	}
	if err := p.writeUndefs(w); err != nil {
		return nil, err
	}
	return deps, nil
}

func shortPath(p string) string {
	// nicer errors
	if p == "" {
		return p
	}
	return filepath.Base(p)
}
