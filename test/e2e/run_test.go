package e2e

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/arith/internal/driver"
	"github.com/you-not-fish/arith/internal/eval"
	"github.com/you-not-fish/arith/internal/syntax"
)

// testCase is one entry of testdata/cases.yaml.
type testCase struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Value    string `yaml:"value"`
	Steps    *int   `yaml:"steps"`
	Error    string `yaml:"error"`
	Message  string `yaml:"message"`
	Redex    string `yaml:"redex"`
	MaxSteps int    `yaml:"max_steps"`
	MaxDepth int    `yaml:"max_depth"`
	Lenient  bool   `yaml:"lenient"`
}

func loadCases(t *testing.T) []testCase {
	t.Helper()
	f, err := os.Open("testdata/cases.yaml")
	require.NoError(t, err)
	defer f.Close()

	var cases []testCase
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(&cases))
	require.NotEmpty(t, cases, "no cases in testdata/cases.yaml")
	return cases
}

func quietLogger() logrus.FieldLogger {
	log, _ := logtest.NewNullLogger()
	return log
}

// TestCases runs every case in testdata/cases.yaml through the pipeline.
// Each case is also run with the reference grammar and the big-step
// evaluator, which must agree with the primary result.
func TestCases(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			opts := driver.Options{
				MaxSteps:          tc.MaxSteps,
				MaxDepth:          tc.MaxDepth,
				LenientWhitespace: tc.Lenient,
				Log:               quietLogger(),
			}
			r, err := driver.Run(tc.Input, opts)
			checkCase(t, tc, r, err)

			if tc.MaxDepth == 0 {
				ref := opts
				ref.Reference = true
				_, rerr := driver.Parse(tc.Input, ref)
				assert.Equal(t, tc.Error == "syntax", rerr != nil, "reference grammar: %v", rerr)
				if rerr != nil {
					var serr *syntax.SyntaxError
					assert.True(t, errors.As(rerr, &serr), "reference grammar: %T", rerr)
				}
			}

			if tc.Error != "syntax" && tc.Error != "budget" {
				big := opts
				big.BigStep = true
				br, berr := driver.Run(tc.Input, big)
				if tc.Error == "stuck" {
					var small, stuck *eval.StuckTerm
					require.True(t, errors.As(err, &small))
					require.True(t, errors.As(berr, &stuck), "big-step: %v", berr)
					assert.Equal(t, small.Term.String(), stuck.Term.String(), "big-step term")
					assert.Equal(t, small.Redex.String(), stuck.Redex.String(), "big-step redex")
				} else {
					require.NoError(t, berr)
					assert.Equal(t, tc.Value, br.Value.String(), "big-step value")
				}
			}
		})
	}
}

func checkCase(t *testing.T, tc testCase, r *driver.Result, err error) {
	t.Helper()

	switch tc.Error {
	case "":
		require.NoError(t, err)
		assert.Equal(t, tc.Value, r.Value.String())
		if tc.Steps != nil {
			assert.Equal(t, *tc.Steps, r.Steps)
		}
		return
	case "syntax":
		var serr *syntax.SyntaxError
		require.True(t, errors.As(err, &serr), "want *syntax.SyntaxError, got %v", err)
	case "stuck":
		var stuck *eval.StuckTerm
		require.True(t, errors.As(err, &stuck), "want *eval.StuckTerm, got %v", err)
		if tc.Redex != "" {
			assert.Equal(t, tc.Redex, stuck.Redex.String())
		}
	case "budget":
		var rerr *eval.ResourceExceeded
		require.True(t, errors.As(err, &rerr), "want *eval.ResourceExceeded, got %v", err)
	default:
		t.Fatalf("unknown error kind %q", tc.Error)
	}
	if tc.Message != "" {
		assert.Equal(t, tc.Message, err.Error())
	}
}

// TestGolden evaluates every .arith file in testdata/ and compares the
// result, printed in constructor notation, against the .golden file.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.arith")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no .arith test files found in testdata/")
	}

	var inputs []driver.Input
	for _, file := range files {
		src, err := driver.ReadFile(file)
		require.NoError(t, err)
		inputs = append(inputs, driver.Input{Name: file, Source: src})
	}

	results, err := driver.RunAll(inputs, driver.Options{LenientWhitespace: true, Log: quietLogger()})
	require.NoError(t, err)

	for i, r := range results {
		file := files[i]
		t.Run(strings.TrimSuffix(filepath.Base(file), ".arith"), func(t *testing.T) {
			want, err := os.ReadFile(strings.TrimSuffix(file, ".arith") + ".golden")
			if err != nil {
				t.Fatalf("reading golden file: %v", err)
			}
			got := fmt.Sprintf("Input: %s\nOutput: %s\n", syntax.Debug(r.Term), syntax.Debug(r.Value))
			if got != string(want) {
				t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, want)
			}
		})
	}
}
