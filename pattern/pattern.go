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

// Package pattern produces the deterministic byte stream the load generator
// writes on upload and checks on download. The stream is a seeded linear
// congruential sequence addressed by absolute offset, so any worker can
// verify bytes produced by any other without sharing state.
package pattern

import libsiz "github.com/nabbar/s3loadgen/size"

const (
	multiplier uint64 = 1664525
	increment  uint64 = 1013904223
	// DefaultSize is the canonical buffer size: 1 MiB, a power of two so the
	// offset-to-index mapping is a mask instead of a modulo.
	DefaultSize = 1 << 20
	// Seed is fixed across the engine: every component must agree on byte 0.
	Seed uint64 = 0
)

// Byte returns the canonical pattern byte for absolute offset o.
func Byte(o uint64) byte {
	return byte((o*multiplier + increment + Seed) % 255)
}

// Source is a materialized window of the infinite pattern stream, sized as a
// power of two so At can resolve any offset with a bitmask instead of a
// division. Workers allocate one Source on entry and free it on exit; it is
// never mutated after New returns.
type Source struct {
	buf  []byte
	mask uint64
}

// New allocates a Source of the given size, which must be a power of two.
// Size 0 defaults to DefaultSize.
func New(size int) (*Source, error) {
	if size == 0 {
		size = DefaultSize
	}
	if size <= 0 || size&(size-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	s := &Source{
		buf:  make([]byte, size),
		mask: uint64(size - 1),
	}

	for i := range s.buf {
		s.buf[i] = Byte(uint64(i))
	}

	return s, nil
}

// Len returns the buffer's size in bytes.
func (s *Source) Len() int {
	return len(s.buf)
}

// Size returns the buffer's size as a formatted binary-unit value, handy
// for logging ("pattern buffer: 1.00MB") without a manual conversion.
func (s *Source) Size() libsiz.Size {
	return libsiz.Size(len(s.buf))
}

// At returns the pattern byte logically at absolute offset o.
func (s *Source) At(o uint64) byte {
	return s.buf[o&s.mask]
}

// Fill copies len(dst) bytes of the pattern, starting at absolute offset o,
// into dst. It returns the number of bytes written, which is always len(dst).
func (s *Source) Fill(dst []byte, o uint64) int {
	n := len(dst)
	for i := 0; i < n; i++ {
		dst[i] = s.At(o + uint64(i))
	}
	return n
}

// Verify reports whether buf matches the pattern starting at absolute offset
// o, and if not, the offset (relative to o) of the first mismatching byte.
func (s *Source) Verify(buf []byte, o uint64) (ok bool, mismatchAt uint64) {
	for i, b := range buf {
		if b != s.At(o+uint64(i)) {
			return false, uint64(i)
		}
	}
	return true, 0
}
