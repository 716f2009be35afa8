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

package perm_test

import (
	"os"
	"testing"

	libprm "github.com/nabbar/s3loadgen/file/perm"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want libprm.Perm
	}{
		{"0644", 0o644},
		{"755", 0o755},
		{"0o600", 0o600},
		{" 0777 ", 0o777},
	}
	for _, c := range cases {
		got, err := libprm.Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "0888", "77777"} {
		if _, err := libprm.Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestFileMode(t *testing.T) {
	if libprm.Perm(0o644).FileMode() != os.FileMode(0o644) {
		t.Fatal("FileMode conversion mismatch")
	}
}

func TestOrDefault(t *testing.T) {
	if libprm.Perm(0).OrDefault(0o600) != 0o600 {
		t.Fatal("zero Perm should yield the default")
	}
	if libprm.Perm(0o644).OrDefault(0o600) != 0o644 {
		t.Fatal("set Perm should win over the default")
	}
}

func TestString(t *testing.T) {
	if got := libprm.Perm(0o644).String(); got != "0644" {
		t.Fatalf("String() = %q", got)
	}
}
