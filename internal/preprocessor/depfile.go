package preprocessor

import (
	"bytes"
	"fmt"
	"io"
)

// ---------------- Dependency file ----------------

// WriteDepFile writes one make-compatible rule naming target and listing
// every dependency path, backslash-continued, one per line. Dependencies are
// written exactly as accumulated; a header spliced in twice is listed twice.
// With phony set, an empty rule follows for each dependency so the build
// does not break when a header is later removed or renamed.
func (p *Preprocessor) WriteDepFile(w io.Writer, target string, deps []string, phony bool) error {
	var buf bytes.Buffer

	if len(deps) == 0 {
		fmt.Fprintf(&buf, "%s:\n\n", p.displayPath(target))
	} else {
		fmt.Fprintf(&buf, "%s: \\\n", p.displayPath(target))
		for i, dep := range deps {
			if i < len(deps)-1 {
				fmt.Fprintf(&buf, "  %s \\\n", dep)
			} else {
				fmt.Fprintf(&buf, "  %s\n", dep)
			}
		}
		buf.WriteByte('\n')
	}

	if phony {
		for _, dep := range deps {
			fmt.Fprintf(&buf, "%s:\n\n", dep)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
