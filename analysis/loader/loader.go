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

// Package loader reads and parses textual LLVM IR files into read-only ir.Module snapshots.
//
// A Context owns the modules parsed by the IR library. It must be created before any parse attempt and disposed
// exactly once on every path, typically with:
//
//	ctx := loader.NewContext()
//	defer ctx.Dispose()
//	module, err := ctx.Load(path)
package loader

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/awslabs/ar-ir-tools/analysis/ir"
	"github.com/llir/llvm/asm"
	llir "github.com/llir/llvm/ir"
)

// Context owns the object graphs produced by the parser.
type Context struct {
	parsed   []*llir.Module
	disposed bool
}

// NewContext returns a fresh context.
func NewContext() *Context {
	return &Context{}
}

// Load reads the file at path and parses it. The returned error is a *FileReadError if the file could not be
// read, and a *ParseError if its contents are not valid IR. The module identifier is the path.
func (c *Context) Load(path string) (*ir.Module, error) {
	if c.disposed {
		return nil, ErrDisposed
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &FileReadError{Path: path, Err: fmt.Errorf("not a regular file")}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	return c.LoadBytes(path, content)
}

// LoadBytes parses content as textual IR, using identifier as the module identifier.
func (c *Context) LoadBytes(identifier string, content []byte) (*ir.Module, error) {
	if c.disposed {
		return nil, ErrDisposed
	}
	m, err := asm.ParseBytes(identifier, content)
	if err != nil {
		if usesOpaquePointers(content) {
			err = fmt.Errorf("%w: %v", ErrOpaquePointers, err)
		}
		return nil, &ParseError{Path: identifier, Err: err}
	}
	c.parsed = append(c.parsed, m)
	return Snapshot(identifier, m), nil
}

// opaquePointerType matches the ptr type keyword, but not names such as %ptr or @ptr.
var opaquePointerType = regexp.MustCompile(`(?:^|[\s,(\[{<])ptr(?:[\s,)\]}>*]|$)`)

// usesOpaquePointers returns true if some line of content, comments excluded, uses the ptr type.
func usesOpaquePointers(content []byte) bool {
	for _, line := range bytes.Split(content, []byte("\n")) {
		code, _, _ := bytes.Cut(line, []byte(";"))
		if opaquePointerType.Match(code) {
			return true
		}
	}
	return false
}

// NumLoaded returns the number of modules owned by the context.
func (c *Context) NumLoaded() int {
	return len(c.parsed)
}

// Disposed returns true once Dispose has been called.
func (c *Context) Disposed() bool {
	return c.disposed
}

// Dispose releases the parsed modules. Calling Dispose more than once has no effect.
// Snapshots returned by the context remain valid after Dispose.
func (c *Context) Dispose() {
	if c.disposed {
		return
	}
	c.parsed = nil
	c.disposed = true
}
