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

package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/awslabs/ar-ir-tools/analysis/config"
	"github.com/awslabs/ar-ir-tools/internal/formatutil"
)

// Section titles of the report, in the order they are printed.
const (
	SectionModuleInfo       = "MODULE INFO"
	SectionGlobalVariables  = "GLOBAL VARIABLES"
	SectionFunctionAnalysis = "FUNCTION ANALYSIS"
	SectionSummary          = "SUMMARY"
	SectionCallGraph        = "CALL GRAPH"
)

const separatorWidth = 40

var separator = strings.Repeat("=", separatorWidth)

// ReportOptions control how the report is rendered. The zero value renders the plain report.
type ReportOptions struct {
	// Color renders section titles in bold
	Color bool

	// SanitizeNames escapes non-printable characters in names
	SanitizeNames bool

	// CallGraph appends the CALL GRAPH section after the summary
	CallGraph bool
}

// name renders an IR name as it should be printed.
func (o ReportOptions) name(s string) string {
	if o.SanitizeNames {
		return formatutil.Sanitize(s)
	}
	return s
}

// checkName warns when a name that is printed raw contains non-printable characters.
func (o ReportOptions) checkName(log *config.LogGroup, kind string, s string) {
	if !o.SanitizeNames && !formatutil.IsPrintable(s) {
		log.Warnf("%s name %s contains non-printable characters, set sanitize-names to escape them",
			kind, formatutil.Sanitize(s))
	}
}

// PrintSeparator writes the header of the section named title to w: an empty line, then the title between two
// separator lines.
func PrintSeparator(w io.Writer, title string, opts ReportOptions) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", separator, formatutil.Bold.Apply(opts.Color, title), separator)
}
