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

package loader

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awslabs/ar-ir-tools/analysis/ir"
)

func TestLoadValidModule(t *testing.T) {
	ctx := NewContext()
	defer ctx.Dispose()

	path := filepath.Join("testdata", "valid.ll")
	m, err := ctx.Load(path)
	if err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	if ctx.NumLoaded() != 1 {
		t.Errorf("the context should own the parsed module")
	}
	if m.Identifier != path {
		t.Errorf("expected module identifier %q, got %q", path, m.Identifier)
	}
	if m.TargetTriple != "aarch64-apple-macosx13.0.0" {
		t.Errorf("unexpected target triple %q", m.TargetTriple)
	}
	if m.SourceFilename != "valid.c" {
		t.Errorf("unexpected source filename %q", m.SourceFilename)
	}

	if len(m.Globals) != 2 {
		t.Fatalf("expected 2 globals, got %d", len(m.Globals))
	}
	if g := m.Globals[0]; g.Name != "msg" || !g.Constant {
		t.Errorf("expected constant @msg, got %+v", g)
	}
	if g := m.Globals[1]; g.Name != "state" || g.Constant {
		t.Errorf("expected mutable @state, got %+v", g)
	}

	if len(m.Functions) != 4 {
		t.Fatalf("expected 4 functions, got %d", len(m.Functions))
	}
	sink, unnamed, casts, branches := m.Functions[0], m.Functions[1], m.Functions[2], m.Functions[3]
	if sink.Name != "sink" || !sink.IsDeclaration() {
		t.Errorf("expected declaration @sink, got %+v", sink)
	}
	if unnamed.Name != "" || unnamed.IsDeclaration() {
		t.Errorf("expected unnamed definition, got %+v", unnamed)
	}
	if casts.Name != "casts" || len(casts.Blocks) != 1 {
		t.Fatalf("expected @casts with one block, got %+v", casts)
	}
	if branches.Name != "branches" || len(branches.Blocks) != 4 {
		t.Fatalf("expected @branches with four blocks, got %+v", branches)
	}
}

func TestSnapshotCallClassification(t *testing.T) {
	ctx := NewContext()
	defer ctx.Dispose()

	m, err := ctx.Load(filepath.Join("testdata", "valid.ll"))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	insts := m.Functions[2].Blocks[0].Instructions
	if len(insts) != 5 {
		t.Fatalf("expected 4 calls and a terminator, got %d instructions", len(insts))
	}
	for i := 0; i < 4; i++ {
		if !insts[i].IsCall() {
			t.Errorf("instruction %d should be a call, got %s", i, insts[i].Opcode)
		}
	}
	if insts[4].Opcode != ir.OpRet {
		t.Errorf("the terminator should be the last instruction, got %s", insts[4].Opcode)
	}

	if _, ok := ir.CalledFunction(insts[0].Callee); ok {
		t.Errorf("a call through a parameter is indirect")
	}
	if _, ok := ir.CalledFunction(insts[1].Callee); ok {
		t.Errorf("a call through a bitcast constant is indirect")
	}
	if f, ok := ir.CalledFunction(insts[2].Callee); !ok || f.Name != "sink" || f.Index != 0 {
		t.Errorf("expected a direct call to @sink at index 0, got %v", insts[2].Callee)
	}
	if f, ok := ir.CalledFunction(insts[3].Callee); !ok || f.Name != "" || f.Index != 1 {
		t.Errorf("expected a direct call to the unnamed function at index 1, got %v", insts[3].Callee)
	}
}

func TestSnapshotOpcodes(t *testing.T) {
	ctx := NewContext()
	defer ctx.Dispose()

	m, err := ctx.Load(filepath.Join("testdata", "valid.ll"))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	var ops []string
	for _, b := range m.Functions[3].Blocks {
		for _, inst := range b.Instructions {
			ops = append(ops, inst.Opcode.String())
		}
	}
	want := "icmp br add br sub br phi ret"
	if got := strings.Join(ops, " "); got != want {
		t.Errorf("got opcodes %q, want %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	ctx := NewContext()
	defer ctx.Dispose()

	path := filepath.Join("testdata", "does_not_exist.ll")
	_, err := ctx.Load(path)
	var readErr *FileReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected a FileReadError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("the underlying error should be kept, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("the error should name the path, got %q", err.Error())
	}
	if !strings.HasPrefix(err.Error(), "could not read file") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLoadDirectory(t *testing.T) {
	ctx := NewContext()
	defer ctx.Dispose()

	_, err := ctx.Load("testdata")
	var readErr *FileReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected a FileReadError for a directory, got %v", err)
	}
}

func TestLoadInvalidModule(t *testing.T) {
	ctx := NewContext()
	defer ctx.Dispose()

	path := filepath.Join("testdata", "invalid.ll")
	_, err := ctx.Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if parseErr.Path != path || parseErr.Unwrap() == nil {
		t.Errorf("unexpected parse error %+v", parseErr)
	}
	if ctx.NumLoaded() != 0 {
		t.Errorf("a failed parse should not be owned by the context")
	}
	if errors.Is(err, ErrOpaquePointers) {
		t.Errorf("a module without ptr types should not be reported as using opaque pointers")
	}
}

func TestLoadOpaquePointers(t *testing.T) {
	ctx := NewContext()
	defer ctx.Dispose()

	content := "define void @f(ptr %p) {\nentry:\n  call void %p()\n  ret void\n}\n"
	_, err := ctx.LoadBytes("opaque.ll", []byte(content))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if !errors.Is(err, ErrOpaquePointers) {
		t.Errorf("the error should say that opaque pointers are not supported, got %v", err)
	}
	if !strings.Contains(err.Error(), "'ptr'") || !strings.Contains(err.Error(), "opaque.ll") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestUsesOpaquePointers(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"define void @f(ptr %p) {", true},
		{"  %v = load i32, ptr %p, align 4", true},
		{"  store ptr null, ptr %q", true},
		{"declare ptr @malloc(i64)", true},
		{"  %v = load i32, i32* %ptr, align 4", false},
		{"@ptr = global i32 0", false},
		{"  ret void ; returns a ptr value", false},
		{"define i8* @f(i8* %p) {", false},
	}
	for _, test := range tests {
		if got := usesOpaquePointers([]byte(test.line + "\n")); got != test.want {
			t.Errorf("usesOpaquePointers(%q) = %v, want %v", test.line, got, test.want)
		}
	}
}

func TestDispose(t *testing.T) {
	ctx := NewContext()
	if _, err := ctx.LoadBytes("inline.ll", []byte("declare void @f()\n")); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	ctx.Dispose()
	if !ctx.Disposed() || ctx.NumLoaded() != 0 {
		t.Errorf("dispose should release the parsed modules")
	}
	ctx.Dispose()
	if _, err := ctx.Load(filepath.Join("testdata", "valid.ll")); !errors.Is(err, ErrDisposed) {
		t.Errorf("expected ErrDisposed after dispose, got %v", err)
	}
	if _, err := ctx.LoadBytes("inline.ll", []byte("declare void @f()\n")); !errors.Is(err, ErrDisposed) {
		t.Errorf("expected ErrDisposed after dispose, got %v", err)
	}
}
