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
	"errors"
	"flag"
	"fmt"
	"io"
)

const usage = `Print structural statistics about an LLVM IR module.

Usage:
  irstat [options] file.ll

The report lists the module information, the global variables, every function with its basic blocks and calls,
and a summary of the definitions and declarations.

The module must use typed pointers (i8*, i32*, ...). Modules with opaque pointer types (ptr), the default of
LLVM 15 and later, are rejected with a parse error.

Examples:
% irstat hello.ll
% irstat -config config.yaml -json hello.ll
`

// errUsage is returned when the command line does not name exactly one IR file.
var errUsage = errors.New("expected exactly one IR file")

// Flags represents the parsed command line.
type Flags struct {
	FlagSet    *flag.FlagSet
	ConfigPath string
	Verbose    bool
	OutputJSON bool
}

// Path returns the path of the IR file to analyze.
func (f Flags) Path() string {
	return f.FlagSet.Arg(0)
}

// NewFlags returns the parsed flags for args. Usage and errors are printed on stderr.
func NewFlags(args []string, stderr io.Writer) (Flags, error) {
	cmd := flag.NewFlagSet("irstat", flag.ContinueOnError)
	cmd.SetOutput(stderr)
	configPath := cmd.String("config", "", "config file path")
	verbose := cmd.Bool("verbose", false, "print debugging information on standard error")
	outputJSON := cmd.Bool("json", false, "output the statistics as JSON instead of the report")
	setUsage(cmd, stderr, usage)
	if err := cmd.Parse(args); err != nil {
		return Flags{}, err
	}
	if cmd.NArg() != 1 {
		cmd.Usage()
		return Flags{}, errUsage
	}
	return Flags{
		FlagSet:    cmd,
		ConfigPath: *configPath,
		Verbose:    *verbose,
		OutputJSON: *outputJSON,
	}, nil
}

// setUsage sets cmd's usage (for --help flag) to output the string cmdUsage
// followed by each flag's documentation.
func setUsage(cmd *flag.FlagSet, w io.Writer, cmdUsage string) {
	cmd.Usage = func() {
		fmt.Fprintf(w, "%s\n", cmdUsage)
		fmt.Fprintf(w, "Options:\n")
		cmd.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "  %s: %s (default: %q)\n", f.Name, f.Usage, f.DefValue)
		})
	}
}
