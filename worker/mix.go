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

// MixSelection is the pure result of indexing into a mixed-operation
// schedule: which test-case code runs next, and which per-object sequence
// number it shares with the other operations issued at the same (loop,
// within-op) position.
type MixSelection struct {
	OpCode   int
	Sequence int64
}

// SelectMix treats the nested (loop, op, within-op) counters as one linear
// index k (the count of operations already completed by this worker) and
// returns the operation and per-object sequence for the next one: the
// operation at index k is mixOps[(k / requestsPerThread) mod len(mixOps)].
// The per-object sequence combines loop and within-op
// position only, so that PUT→GET→DELETE triples issued at the same position
// across different ops in mixOps resolve to the same key.
func SelectMix(k int64, requestsPerThread int64, mixOps []int) MixSelection {
	opCount := int64(len(mixOps))
	block := k / requestsPerThread
	opIdx := block % opCount
	loop := block / opCount
	withinOp := k % requestsPerThread

	return MixSelection{
		OpCode:   mixOps[opIdx],
		Sequence: loop*requestsPerThread + withinOp,
	}
}
