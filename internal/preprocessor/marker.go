package preprocessor

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// ---------------- Line markers ----------------

// markerFor renders the line-marker template for one source location.
func (p *Preprocessor) markerFor(line int, file string) string {
	r := strings.NewReplacer(
		"{line}", strconv.Itoa(line),
		"{file}", p.displayPath(file),
	)
	return r.Replace(p.MarkerFormat)
}

func (p *Preprocessor) writeMarker(w io.Writer, line int, file string) error {
	if p.MarkerFormat == "" {
		return nil
	}
	_, err := io.WriteString(w, p.markerFor(line, file)+"\n")
	return err
}

// displayPath shortens path against RelativeBase when one is configured.
func (p *Preprocessor) displayPath(path string) string {
	if p.RelativeBase == "" {
		return path
	}
	rel, err := filepath.Rel(p.RelativeBase, path)
	if err != nil {
		return path
	}
	return rel
}
