// Released under an MIT license. See LICENSE.

package engine_test

import (
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/skein-lang/skein/internal/common"
	"github.com/skein-lang/skein/internal/common/interface/cell"
	"github.com/skein-lang/skein/internal/common/interface/scope"
	"github.com/skein-lang/skein/internal/engine"
	"github.com/skein-lang/skein/internal/reader"
)

type fixture struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
	Fail  string `yaml:"fail"`
}

func TestEvaluate(t *testing.T) {
	b, err := os.ReadFile("testdata/eval.yaml")
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}

	fixtures := []fixture{}
	if err := yaml.Unmarshal(b, &fixtures); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}

	for _, f := range fixtures {
		f := f

		t.Run(f.Name, func(t *testing.T) {
			s := engine.NewRootScope()

			v, err := evaluate(t, s, f.Input)

			if f.Fail != "" {
				if err == nil {
					t.Fatalf("got %s, want error containing %q",
						common.Render(v), f.Fail)
				}

				if !strings.Contains(err.Error(), f.Fail) {
					t.Fatalf("got error %q, want error containing %q",
						err.Error(), f.Fail)
				}

				return
			}

			if err != nil {
				t.Fatalf("got error %q, want %s", err.Error(), f.Want)
			}

			if got := common.Render(v); got != f.Want {
				t.Errorf("got %s, want %s", got, f.Want)
			}
		})
	}
}

func TestScopeSurvivesFault(t *testing.T) {
	s := engine.NewRootScope()

	if _, err := evaluate(t, s, "(define x 1) no-such-name"); err == nil {
		t.Fatal("expected an unbound variable error")
	}

	v, err := evaluate(t, s, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := common.Render(v); got != "1" {
		t.Errorf("got %s, want 1", got)
	}
}

// evaluate parses text and evaluates each form in s, returning the value of
// the last form. Evaluation stops at the first error.
func evaluate(t *testing.T, s scope.I, text string) (cell.I, error) {
	t.Helper()

	forms, err := reader.New().Scan(text + "\n")
	if err != nil {
		t.Fatalf("parsing %q: %v", text, err)
	}

	if len(forms) == 0 {
		t.Fatalf("no forms in %q", text)
	}

	var v cell.I

	for _, form := range forms {
		v, err = engine.Evaluate(form, s)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}
