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

// irstat: a tool for inspecting the structure of LLVM IR modules.
// This is the entry point of irstat.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/awslabs/ar-ir-tools/analysis"
	"github.com/awslabs/ar-ir-tools/analysis/config"
	"github.com/awslabs/ar-ir-tools/analysis/loader"
	"github.com/awslabs/ar-ir-tools/internal/formatutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run runs irstat with the command line arguments args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags, err := NewFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return errExit(stderr, err)
	}

	cfg := config.NewDefault()
	if flags.ConfigPath != "" {
		cfg, err = config.Load(flags.ConfigPath)
		if err != nil {
			return errExit(stderr, fmt.Errorf("failed to load config file %s: %w", flags.ConfigPath, err))
		}
	}
	logGroup := config.NewLogGroup(cfg)
	logGroup.SetAllOutput(stderr)
	if flags.Verbose && logGroup.Level() < config.DebugLevel {
		logGroup.SetLevel(config.DebugLevel)
	}
	if cfg.SourceFile() != "" {
		logGroup.Infof("loaded config from %s", cfg.SourceFile())
	}

	if err := doMain(flags, cfg, logGroup, stdout); err != nil {
		return errExit(stderr, err)
	}
	return 0
}

// doMain loads the module and prints the report. The loader context is disposed on every path.
func doMain(flags Flags, cfg *config.Config, logGroup *config.LogGroup, stdout io.Writer) error {
	ctx := loader.NewContext()
	defer ctx.Dispose()

	logGroup.Debugf("reading %s", flags.Path())
	module, err := ctx.Load(flags.Path())
	if err != nil {
		return err
	}

	opts := analysis.ReportOptions{
		Color:         cfg.Color && formatutil.IsTerminal(stdout),
		SanitizeNames: cfg.SanitizeNames,
		CallGraph:     cfg.ReportCallGraph,
	}

	if !flags.OutputJSON {
		analysis.Report(stdout, module, opts, logGroup)
		return nil
	}

	result := analysis.Report(io.Discard, module, opts, logGroup)
	buf, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}
	fmt.Fprintln(stdout, string(buf))
	return nil
}

func errExit(stderr io.Writer, err error) int {
	msg := "error: " + err.Error()
	fmt.Fprintln(stderr, formatutil.Red.Apply(formatutil.IsTerminal(stderr), msg))
	return 1
}
