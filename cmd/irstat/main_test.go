// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awslabs/ar-ir-tools/analysis"
)

func runWith(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

var hello = filepath.Join("testdata", "hello.ll")

func TestRunReport(t *testing.T) {
	code, stdout, stderr := runWith(hello)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr)
	}
	sections := []string{"MODULE INFO", "GLOBAL VARIABLES", "FUNCTION ANALYSIS", "SUMMARY"}
	last := -1
	for _, s := range sections {
		i := strings.Index(stdout, "\n"+s+"\n")
		if i < 0 {
			t.Fatalf("missing section %s in:\n%s", s, stdout)
		}
		if i < last {
			t.Errorf("section %s is out of order", s)
		}
		last = i
	}
	for _, line := range []string{
		"  Module ID: " + hello + "\n",
		"  Target:    x86_64-unknown-linux-gnu\n",
		"  @.str (constant)\n",
		"      -> @puts\n",
		"  Total functions:                     2\n",
	} {
		if !strings.Contains(stdout, line) {
			t.Errorf("expected %q in report:\n%s", line, stdout)
		}
	}
	if strings.Contains(stdout, "CALL GRAPH") {
		t.Errorf("the call graph is not reported by default")
	}
	if stderr != "" {
		t.Errorf("expected nothing on stderr, got %q", stderr)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	_, first, _ := runWith(hello)
	_, second, _ := runWith(hello)
	if first != second {
		t.Errorf("two runs on the same file produced different outputs")
	}
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join("testdata", "missing.ll")
	code, stdout, stderr := runWith(missing)
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Errorf("no section should be printed, got %q", stdout)
	}
	if !strings.Contains(stderr, missing) {
		t.Errorf("the error should name the path, got %q", stderr)
	}
	if !strings.HasPrefix(stderr, "error: could not read file ") {
		t.Errorf("unexpected error message %q", stderr)
	}
}

func TestRunParseError(t *testing.T) {
	code, stdout, stderr := runWith(filepath.Join("testdata", "garbage.ll"))
	if code != 1 || stdout != "" {
		t.Errorf("expected exit code 1 and no output, got %d and %q", code, stdout)
	}
	if !strings.HasPrefix(stderr, "error: could not parse IR in ") {
		t.Errorf("expected a parse error, got %q", stderr)
	}
}

func TestRunUsage(t *testing.T) {
	code, stdout, stderr := runWith()
	if code != 1 || stdout != "" {
		t.Errorf("expected exit code 1 and no output, got %d and %q", code, stdout)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("expected usage on stderr, got %q", stderr)
	}
	code, _, _ = runWith(hello, hello)
	if code != 1 {
		t.Errorf("expected exit code 1 with two files, got %d", code)
	}
	code, _, _ = runWith("-help")
	if code != 0 {
		t.Errorf("expected exit code 0 for -help, got %d", code)
	}
}

func TestRunWithConfig(t *testing.T) {
	code, stdout, stderr := runWith("-config", filepath.Join("testdata", "callgraph.yaml"), hello)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr)
	}
	if !strings.Contains(stdout, "\nCALL GRAPH\n") {
		t.Errorf("expected a call graph section:\n%s", stdout)
	}
	if strings.Contains(stdout, "\033[") {
		t.Errorf("colors should not be used when the output is not a terminal")
	}
	if !strings.Contains(stdout, "  Reachable from @main: 1 of 1 definition(s)\n") {
		t.Errorf("unexpected call graph:\n%s", stdout)
	}
}

func TestRunWithBadConfig(t *testing.T) {
	code, stdout, stderr := runWith("-config", filepath.Join("testdata", "bad.yaml"), hello)
	if code != 1 || stdout != "" {
		t.Errorf("expected exit code 1 and no output, got %d and %q", code, stdout)
	}
	if !strings.Contains(stderr, "bad.yaml") {
		t.Errorf("the error should name the config file, got %q", stderr)
	}
}

func TestRunVerbose(t *testing.T) {
	code, _, stderr := runWith("-verbose", hello)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stderr, "[DEBUG] ") || !strings.Contains(stderr, "reading "+hello) {
		t.Errorf("expected debug messages on stderr, got %q", stderr)
	}
}

func TestRunJSON(t *testing.T) {
	code, stdout, stderr := runWith("-json", hello)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr)
	}
	var result analysis.Result
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	want := analysis.Result{
		ModuleID:              hello,
		Target:                "x86_64-unknown-linux-gnu",
		NumberOfGlobals:       1,
		NumberOfFunctions:     2,
		NumberOfDefinitions:   1,
		NumberOfDeclarations:  1,
		NumberOfBlocks:        1,
		NumberOfInstructions:  3,
		NumberOfDirectCalls:   1,
		NumberOfIndirectCalls: 0,
	}
	if result != want {
		t.Errorf("got %+v, want %+v", result, want)
	}
}

func TestRunWarnings(t *testing.T) {
	lib := filepath.Join("testdata", "lib.ll")
	code, stdout, stderr := runWith("-config", filepath.Join("testdata", "callgraph.yaml"), lib)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr)
	}
	if !strings.Contains(stdout, "  Reachable from @main: (no @main definition)\n") {
		t.Errorf("unexpected call graph:\n%s", stdout)
	}
	if !strings.Contains(stderr, "[WARN] ") || !strings.Contains(stderr, "no definition of @main") {
		t.Errorf("expected a warning on stderr, got %q", stderr)
	}
	if !strings.Contains(stderr, "[INFO] ") || !strings.Contains(stderr, "callgraph.yaml") {
		t.Errorf("expected the config file to be reported, got %q", stderr)
	}

	code, quiet, stderr := runWith("-config", filepath.Join("testdata", "silent.yaml"), lib)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr)
	}
	if stderr != "" {
		t.Errorf("silence-warn should suppress warnings, got %q", stderr)
	}
	if quiet != stdout {
		t.Errorf("silence-warn should not change the report")
	}
}
