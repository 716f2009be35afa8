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

package config

import (
	"strconv"
	"strings"

	liberr "github.com/nabbar/s3loadgen/errors"
	"github.com/nabbar/s3loadgen/storage"
)

// ParseObjectSize accepts either a plain integer ("65536") or an inclusive
// range "min~max".
func ParseObjectSize(raw string) (ObjectSize, error) {
	raw = strings.TrimSpace(raw)

	if i := strings.IndexByte(raw, '~'); i >= 0 {
		min, err := strconv.ParseInt(strings.TrimSpace(raw[:i]), 10, 64)
		if err != nil {
			return ObjectSize{}, CodeObjectSize.Error(err)
		}
		max, err := strconv.ParseInt(strings.TrimSpace(raw[i+1:]), 10, 64)
		if err != nil {
			return ObjectSize{}, CodeObjectSize.Error(err)
		}
		if max < min {
			min, max = max, min
		}
		return ObjectSize{Min: min, Max: max}, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ObjectSize{}, CodeObjectSize.Error(err)
	}
	return ObjectSize{Min: n, Max: n}, nil
}

// ParseRanges splits a ';'-separated list of "a-b" | "a-" | "-n" byte-range
// specs into storage.Range values, each carrying the absolute pattern
// offset its first byte should verify against.
func ParseRanges(raw string) ([]storage.Range, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var out []storage.Range
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		r, err := parseOneRange(part)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseOneRange(spec string) (storage.Range, error) {
	if strings.HasPrefix(spec, "-") {
		n, err := strconv.ParseInt(spec[1:], 10, 64)
		if err != nil {
			return storage.Range{}, CodeRange.Error(err)
		}
		// A suffix range "-n" anchors the pattern at 0, which is only
		// correct for objects whose upload began at offset 0.
		return storage.Range{Start: 0, Count: n + 1, Anchor: 0}, nil
	}

	i := strings.IndexByte(spec, '-')
	if i < 0 {
		return storage.Range{}, liberr.New(CodeRange.Uint16(), "range spec missing '-': "+spec)
	}

	start, err := strconv.ParseInt(spec[:i], 10, 64)
	if err != nil {
		return storage.Range{}, CodeRange.Error(err)
	}

	if i == len(spec)-1 {
		return storage.Range{Start: start, Count: 0, Anchor: start}, nil
	}

	end, err := strconv.ParseInt(spec[i+1:], 10, 64)
	if err != nil {
		return storage.Range{}, CodeRange.Error(err)
	}
	return storage.Range{Start: start, Count: end - start + 1, Anchor: start}, nil
}

// ParseMixOperation splits a comma-separated list of test-case codes
// (excluding 900) into a slice.
func ParseMixOperation(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, CodeMixOperation.Error(err)
		}
		if n == CaseMix {
			return nil, liberr.New(CodeMixOperation.Uint16(), "MixOperation must not contain the mix code itself (900)")
		}
		out = append(out, n)
	}
	return out, nil
}
