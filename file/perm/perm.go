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

// Package perm is an octal file-permission value that survives a round trip
// through configuration text: "0644" in, os.FileMode out.
package perm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Perm is a unix permission. The zero value means "unset"; callers supply
// their own default in that case.
type Perm uint32

// Parse reads an octal permission string like "0644" or "755".
func Parse(s string) (Perm, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("perm: empty value")
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("perm: invalid octal value %q: %w", s, err)
	}
	if v > 0o7777 {
		return 0, fmt.Errorf("perm: value %q out of range", s)
	}
	return Perm(v), nil
}

// FileMode converts to the os representation.
func (p Perm) FileMode() os.FileMode {
	return os.FileMode(p)
}

// OrDefault returns p, or def when p is unset.
func (p Perm) OrDefault(def Perm) Perm {
	if p == 0 {
		return def
	}
	return p
}

func (p Perm) String() string {
	return fmt.Sprintf("%04o", uint32(p))
}
