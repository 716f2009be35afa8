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

package size_test

import (
	"testing"

	libsiz "github.com/nabbar/s3loadgen/size"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want libsiz.Size
	}{
		{"0", 0},
		{"1024", 1024},
		{"1K", libsiz.SizeKilo},
		{"16MB", 16 * libsiz.SizeMega},
		{"16MiB", 16 * libsiz.SizeMega},
		{"1.5G", libsiz.SizeGiga + libsiz.SizeGiga/2},
		{" 2KiB ", 2 * libsiz.SizeKilo},
	}

	for _, c := range cases {
		got, err := libsiz.Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "MB", "12XB", "-5K"} {
		if _, err := libsiz.Parse(in); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestInt64RoundTrip(t *testing.T) {
	s := 3 * libsiz.SizeMega
	if s.Int64() != 3<<20 {
		t.Fatalf("Int64() = %d, want %d", s.Int64(), 3<<20)
	}
}
