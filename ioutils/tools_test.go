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

package ioutils_test

import (
	"os"
	"path/filepath"
	"testing"

	libiot "github.com/nabbar/s3loadgen/ioutils"
)

func TestPathCheckCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := libiot.PathCheckCreate(false, dir, 0o644, 0o755); err != nil {
		t.Fatal(err)
	}

	inf, err := os.Stat(dir)
	if err != nil || !inf.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	// idempotent on an existing path
	if err := libiot.PathCheckCreate(false, dir, 0o644, 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestPathCheckCreateFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "engine.log")

	if err := libiot.PathCheckCreate(true, file, 0o644, 0o755); err != nil {
		t.Fatal(err)
	}

	inf, err := os.Stat(file)
	if err != nil || inf.IsDir() {
		t.Fatalf("file not created: %v", err)
	}
}

func TestPathCheckCreateRejectsFileAsDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := libiot.PathCheckCreate(false, blocker, 0o644, 0o755); err == nil {
		t.Fatal("expected error when a file sits where a directory is needed")
	}
}

func TestTempFileLifecycle(t *testing.T) {
	f, err := libiot.NewTempFile()
	if err != nil {
		t.Fatal(err)
	}

	p := libiot.GetTempFilePath(f)
	if p == "" {
		t.Fatal("GetTempFilePath returned empty path")
	}
	if _, serr := os.Stat(p); serr != nil {
		t.Fatalf("temp file missing: %v", serr)
	}

	if err = libiot.DelTempFile(f); err != nil {
		t.Fatal(err)
	}
	if _, serr := os.Stat(p); !os.IsNotExist(serr) {
		t.Fatal("temp file should be gone after DelTempFile")
	}

	if derr := libiot.DelTempFile(nil); derr != nil {
		t.Fatal("DelTempFile(nil) should be a no-op")
	}
}
