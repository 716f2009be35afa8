/*
 *  MIT License
 *
 *  Copyright (c) 2025 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package ioutils collects the small filesystem helpers the logger's file
// hook and the test suites share: ensure-path-exists and temp-file handling.
package ioutils

import (
	"os"
	"path/filepath"

	liberr "github.com/nabbar/s3loadgen/errors"
)

// PathCheckCreate ensures path exists: missing parent directories are created
// with pathPerm, and, when isFile is set, a missing final element is created
// as an empty file with filePerm. An existing element is left untouched.
func PathCheckCreate(isFile bool, path string, filePerm, pathPerm os.FileMode) liberr.Error {
	dir := path
	if isFile {
		dir = filepath.Dir(path)
	}

	if inf, err := os.Stat(dir); err == nil && !inf.IsDir() {
		return ErrorPathCheck.Error()
	} else if err != nil {
		if !os.IsNotExist(err) {
			return ErrorPathCheck.Error(err)
		}
		if err = os.MkdirAll(dir, pathPerm); err != nil {
			return ErrorPathCreate.Error(err)
		}
	}

	if !isFile {
		return nil
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return ErrorPathCheck.Error(err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return ErrorPathCreate.Error(err)
	}
	return ErrorPathCreate.IfError(f.Close())
}

// NewTempFile creates an empty file in the system temp directory.
func NewTempFile() (*os.File, liberr.Error) {
	f, e := os.CreateTemp(os.TempDir(), "")
	return f, ErrorFileTempNew.IfError(e)
}

// GetTempFilePath returns the path a NewTempFile handle lives at, or "" for
// a nil handle.
func GetTempFilePath(f *os.File) string {
	if f == nil {
		return ""
	}
	return filepath.Join(os.TempDir(), filepath.Base(f.Name()))
}

// DelTempFile closes and removes a NewTempFile handle, folding both failures
// into one error. A nil handle is a no-op.
func DelTempFile(f *os.File) liberr.Error {
	if f == nil {
		return nil
	}

	n := GetTempFilePath(f)

	return liberr.MakeIfError(
		ErrorFileTempClose.IfError(f.Close()),
		ErrorFileTempRemove.IfError(os.Remove(n)),
	)
}
