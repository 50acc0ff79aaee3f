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
	"fmt"
)

// ErrDisposed is returned when loading from a context that has already been disposed.
var ErrDisposed = errors.New("loader context has been disposed")

// ErrOpaquePointers is wrapped by the ParseError of a module that failed to parse and uses opaque pointer types
// (ptr). The IR parser only supports typed pointers such as i8*.
var ErrOpaquePointers = errors.New("opaque pointer types ('ptr') are not supported, only typed pointers are")

// FileReadError is returned when the input file is missing, unreadable or not a regular file.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("could not read file '%s': %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the contents of the input are not valid IR.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse IR in '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
