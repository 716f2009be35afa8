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

package worker

import "fmt"

// lcgMultiplier and lcgIncrement are the glibc-style LCG constants behind
// the hashed key-pattern dispersion, distinct from the pattern source's own
// LCG constants in package pattern.
const (
	lcgMultiplier uint64 = 1103515245
	lcgIncrement  uint64 = 12345
	lcgMask       uint64 = 0x7fffffff
	lcgModulo     uint64 = 10000
)

// hashBucket computes the 4-digit dispersion prefix for a given sequence:
// seq*1103515245 + 12345, masked to 31 bits, mod 10000.
func hashBucket(seq int64) uint32 {
	v := (uint64(seq)*lcgMultiplier + lcgIncrement) & lcgMask
	return uint32(v % lcgModulo)
}

// SynthesizeKey builds the object key for one iteration: base pattern
// "{username}-{key_prefix}-{worker_id}-{sequence}", with a 4-digit hashed
// prefix prepended when hashed is set, to disperse the keyspace
// deterministically.
func SynthesizeKey(username, keyPrefix string, workerID int, sequence int64, hashed bool) string {
	base := fmt.Sprintf("%s-%s-%d-%d", username, keyPrefix, workerID, sequence)
	if !hashed {
		return base
	}
	return fmt.Sprintf("%04d%s", hashBucket(sequence), base)
}
