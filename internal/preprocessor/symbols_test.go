package preprocessor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type defineTest struct {
	name string
	arg  string
	want Symbol
}

var defineTests = []defineTest{
	{"name and value", "FOO=1", Symbol{Name: "FOO", Value: "1"}},
	{"bare name", "BAR", Symbol{Name: "BAR"}},
	{"empty value", "FOO=", Symbol{Name: "FOO"}},
	{"value containing equals", "A=b=c", Symbol{Name: "A", Value: "b=c"}},
	{"value with spaces", "MSG=hello world", Symbol{Name: "MSG", Value: "hello world"}},
}

func TestParseDefine(t *testing.T) {
	for _, tt := range defineTests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDefine(tt.arg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
