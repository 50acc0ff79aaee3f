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

// Package formatutil manipulates string colors and other formatting operations.
package formatutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// A Style wraps a string in terminal escape sequences.
type Style string

var (
	Bold = Style("\033[1m%s\033[0m")
	Red  = Style("\033[1;31m%s\033[0m")
)

// Apply returns the styled arguments if enabled is true, and the plain arguments otherwise.
func (s Style) Apply(enabled bool, args ...interface{}) string {
	if enabled {
		return fmt.Sprintf(string(s), fmt.Sprint(args...))
	}
	return fmt.Sprint(args...)
}

// IsTerminal returns true if w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Sanitize is a simple sanitizer that escapes all non-printable characters and escape sequences
func Sanitize(s string) string {
	r := fmt.Sprintf("%q", s)
	if len(r) >= 2 {
		return r[1 : len(r)-1]
	}
	return r
}

// IsPrintable returns true if every rune of s is printable, as defined by unicode.IsPrint.
func IsPrintable(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) < 0
}
