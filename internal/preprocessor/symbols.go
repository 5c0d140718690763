package preprocessor

import (
	"fmt"
	"io"
	"strings"
)

// ---------------- Symbols ----------------

// A Symbol is one sym[=val] definition. An empty Value emits a bare #define.
type Symbol struct {
	Name  string
	Value string
}

// ParseDefine splits a sym[=val] argument on the first '='.
func ParseDefine(s string) Symbol {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return Symbol{Name: s[:i], Value: s[i+1:]}
	}
	return Symbol{Name: s}
}

func (p *Preprocessor) writeDefines(w io.Writer) error {
	for _, sym := range p.Symbols {
		var err error
		if sym.Value != "" {
			_, err = fmt.Fprintf(w, "#define %s %s\n", sym.Name, sym.Value)
		} else {
			_, err = fmt.Fprintf(w, "#define %s\n", sym.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Preprocessor) writeUndefs(w io.Writer) error {
	for _, sym := range p.Symbols {
		if _, err := fmt.Fprintf(w, "#undef %s\n", sym.Name); err != nil {
			return err
		}
	}
	return nil
}
